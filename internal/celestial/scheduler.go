package celestial

import (
	"math"

	"nightsky/internal/core"
	"nightsky/internal/logging"
	pcore "nightsky/pkg/core"

	"github.com/go-gl/mathgl/mgl32"
)

// Metric kinds reported to a Recorder.
const (
	KindShootingStar = "shooting_star"
	KindSatellite    = "satellite"
	KindTrain        = "train"
)

// Scheduling constants, in seconds and normalized sky units.
const (
	MaxSatellites = 2
	MaxTrains     = 1

	shootingStarSpeed = 0.5
	minShootingLife   = 0.5
	maxShootingLife   = 2.0

	satelliteRetry  = 10
	trainRetry      = 60
	minHeadingX     = 0.5
	ExhaustInterval = 0.05
	exhaustAlpha    = 0.5

	TrainSize        = 7
	trainSpeed       = 0.0096
	trainBrightness  = 0.8
	trainPointSize   = 2
	trainSpacing     = 0.02
	trainInclination = 53
	vSpreadDegrees   = 30
	trainTrailScale  = 1.5
)

// Recorder receives scheduler counters. *observability.SkyCollector
// satisfies it.
type Recorder interface {
	SpawnRecorded(kind string)
	PoolExhaustedRecorded(kind string)
	SetActive(kind string, n int)
}

type noopRecorder struct{}

func (noopRecorder) SpawnRecorded(string)         {}
func (noopRecorder) PoolExhaustedRecorded(string) {}
func (noopRecorder) SetActive(string, int)        {}

// ExhaustSegment is one fading piece of a craft's trail.
type ExhaustSegment struct {
	Start, End mgl32.Vec2
	Lifetime   float32
	Alpha      float32
}

// exhaust emits trail segments on a per-craft cadence.
type exhaust struct {
	timer    float32
	maxLife  float32
	segments []ExhaustSegment
}

func newExhaust(size float32) exhaust {
	return exhaust{maxLife: 1 + (size-2)*0.5}
}

func (e *exhaust) step(prev, cur mgl32.Vec2, dt float32) {
	e.timer += dt
	if e.timer >= ExhaustInterval {
		e.segments = append(e.segments, ExhaustSegment{Start: prev, End: cur, Lifetime: e.maxLife, Alpha: exhaustAlpha})
		e.timer = 0
	}
	kept := e.segments[:0]
	for _, s := range e.segments {
		s.Lifetime -= dt
		s.Alpha = s.Lifetime / e.maxLife * exhaustAlpha
		if s.Lifetime <= 0 || s.Alpha <= 0 {
			continue
		}
		kept = append(kept, s)
	}
	e.segments = kept
}

// ShootingStar is a short-lived streak falling down and to the left.
type ShootingStar struct {
	Pos        mgl32.Vec2
	Velocity   mgl32.Vec2
	Brightness float32
	Lifetime   float32
}

// Satellite is a named craft crossing the sky on a straight line.
type Satellite struct {
	CatalogEntry
	Pos           mgl32.Vec2
	Heading       mgl32.Vec2
	Flagship      bool
	LastDisplayed float32

	trail exhaust
}

// Trail returns the satellite's live exhaust segments.
func (s *Satellite) Trail() []ExhaustSegment { return s.trail.segments }

// Train is a formation of craft sharing one heading.
type Train struct {
	Name          string
	Heading       mgl32.Vec2
	Speed         float32
	Brightness    float32
	Size          float32
	Spacing       float32
	Positions     []mgl32.Vec2
	LastDisplayed float32

	trails []exhaust
}

// Trail returns the exhaust segments of member i.
func (t *Train) Trail(i int) []ExhaustSegment {
	if i < 0 || i >= len(t.trails) {
		return nil
	}
	return t.trails[i].segments
}

// Scheduler spawns and advances the night-only transient objects.
type Scheduler struct {
	rng     *pcore.RNG
	scene   core.Scene
	log     logging.Logger
	metrics Recorder

	shootingTimer  float32
	satelliteTimer float32
	trainTimer     float32

	shootingStars []ShootingStar
	satellites    []*Satellite
	trains        []*Train

	history map[string]float32
}

// NewScheduler returns a scheduler whose timers are already due, so the first
// night tick spawns.
func NewScheduler(scene core.Scene, rng *pcore.RNG, log logging.Logger, metrics Recorder) *Scheduler {
	if metrics == nil {
		metrics = noopRecorder{}
	}
	return &Scheduler{
		rng:     rng,
		scene:   scene,
		log:     logging.OrNoop(log),
		metrics: metrics,
		history: make(map[string]float32),
	}
}

// Reset clears every object, timer and the cooldown history.
func (s *Scheduler) Reset(scene core.Scene) {
	s.scene = scene
	s.shootingTimer, s.satelliteTimer, s.trainTimer = 0, 0, 0
	s.clear()
	clear(s.history)
}

func (s *Scheduler) clear() {
	s.shootingStars = s.shootingStars[:0]
	s.satellites = s.satellites[:0]
	s.trains = s.trains[:0]
}

// Update advances all three schedulers. now is the manager's total time after
// this tick. Outside the night every transient object is dropped at once.
func (s *Scheduler) Update(now, dt float32, tod core.TimeOfDay) {
	if tod != core.Night {
		s.clear()
	} else {
		s.updateShootingStars(dt)
		s.updateSatellites(now, dt)
		s.updateTrains(now, dt)
	}
	s.metrics.SetActive(KindShootingStar, len(s.shootingStars))
	s.metrics.SetActive(KindSatellite, len(s.satellites))
	s.metrics.SetActive(KindTrain, len(s.trains))
}

func (s *Scheduler) updateShootingStars(dt float32) {
	s.shootingTimer -= dt
	if s.shootingTimer <= 0 {
		s.spawnShootingStar()
		s.shootingTimer = s.rng.Range(5, 15)
	}

	kept := s.shootingStars[:0]
	for _, star := range s.shootingStars {
		star.Pos = star.Pos.Add(star.Velocity.Mul(dt))
		star.Lifetime -= dt
		if star.Lifetime <= 0 || star.Pos.X() < 0 || star.Pos.Y() < 0 {
			continue
		}
		star.Brightness = star.Brightness / star.Lifetime * (star.Lifetime - dt)
		kept = append(kept, star)
	}
	s.shootingStars = kept
}

func (s *Scheduler) spawnShootingStar() {
	x := s.rng.Float32()
	angle := float64(mgl32.DegToRad(s.rng.Range(30, 60)))
	velocity := mgl32.Vec2{-float32(math.Cos(angle)), -float32(math.Sin(angle))}.Mul(shootingStarSpeed)
	brightness := s.rng.Range(0.3, 1.2)

	lifetime := float32(minShootingLife) + (brightness-0.3)/0.9*1.5
	lifetime += s.rng.Range(-0.5, 0.5) * 0.2
	lifetime = mgl32.Clamp(lifetime, minShootingLife, maxShootingLife)

	s.shootingStars = append(s.shootingStars, ShootingStar{
		Pos:        mgl32.Vec2{x, 1},
		Velocity:   velocity,
		Brightness: brightness,
		Lifetime:   lifetime,
	})
	s.metrics.SpawnRecorded(KindShootingStar)
}

// Eligible reports whether name may be displayed at time now.
func (s *Scheduler) Eligible(name string, now float32) bool {
	last, ok := s.history[name]
	if !ok {
		return true
	}
	return now-last >= CooldownFor(name)
}

func (s *Scheduler) candidatePool(now float32) []CatalogEntry {
	active := make(map[string]struct{}, len(s.satellites))
	for _, sat := range s.satellites {
		active[sat.Name] = struct{}{}
	}
	var pool []CatalogEntry
	for _, entry := range SatelliteCatalog(s.scene) {
		if _, busy := active[entry.Name]; busy {
			continue
		}
		if !s.Eligible(entry.Name, now) {
			continue
		}
		pool = append(pool, entry)
	}
	return pool
}

func (s *Scheduler) updateSatellites(now, dt float32) {
	s.satelliteTimer -= dt
	if s.satelliteTimer <= 0 && len(s.satellites) < MaxSatellites {
		s.spawnSatellite(now)
	}

	kept := s.satellites[:0]
	for _, sat := range s.satellites {
		prev := sat.Pos
		sat.Pos = sat.Pos.Add(sat.Heading.Mul(sat.Speed * dt))
		if s.scene.IsAlien() {
			sat.trail.step(prev, sat.Pos, dt)
		}
		if !inUnitSquare(sat.Pos) {
			continue
		}
		kept = append(kept, sat)
	}
	s.satellites = kept
}

func (s *Scheduler) spawnSatellite(now float32) {
	fromLeft := s.rng.IntN(2) == 0
	onePixel := float32(1) / core.WindowWidth
	x := 1 - onePixel
	if fromLeft {
		x = onePixel
	}
	y := s.rng.Range(0.3, 0.7)

	pool := s.candidatePool(now)
	if len(pool) == 0 {
		s.satelliteTimer = satelliteRetry
		s.metrics.PoolExhaustedRecorded(KindSatellite)
		s.log.Debug("satellite pool exhausted", logging.Float("time", float64(now)))
		return
	}
	entry := pool[s.rng.IntN(len(pool))]
	s.history[entry.Name] = now

	sat := &Satellite{
		CatalogEntry:  entry,
		Pos:           mgl32.Vec2{x, y},
		Heading:       satelliteHeading(entry.Inclination, fromLeft),
		Flagship:      IsFlagship(entry.Name),
		LastDisplayed: now,
		trail:         newExhaust(entry.Size),
	}
	s.satellites = append(s.satellites, sat)
	s.satelliteTimer = s.rng.Range(60, 120)
	s.metrics.SpawnRecorded(KindSatellite)
	s.log.Debug("satellite spawned",
		logging.String("name", entry.Name),
		logging.Float("x", float64(x)),
		logging.Float("y", float64(y)),
	)
}

// satelliteHeading turns an inclination into a unit heading with at least
// minHeadingX of horizontal motion toward the far edge.
func satelliteHeading(inclination float32, fromLeft bool) mgl32.Vec2 {
	angle := float64(mgl32.DegToRad(90 - inclination))
	dir := float32(-1)
	if fromLeft {
		dir = 1
	}
	h := mgl32.Vec2{dir * float32(math.Cos(angle)), float32(math.Sin(angle))}
	if mgl32.Abs(h.X()) < minHeadingX {
		h[0] = dir * minHeadingX
		h = h.Normalize()
	}
	return h
}

func (s *Scheduler) updateTrains(now, dt float32) {
	s.trainTimer -= dt
	if s.trainTimer <= 0 && len(s.trains) < MaxTrains {
		s.spawnTrain(now)
	}

	kept := s.trains[:0]
	for _, train := range s.trains {
		offScreen := true
		step := train.Heading.Mul(train.Speed * dt)
		for i, pos := range train.Positions {
			next := pos.Add(step)
			train.Positions[i] = next
			if inUnitSquare(next) {
				offScreen = false
			}
			if s.scene.IsAlien() {
				train.trails[i].step(pos, next, dt)
			}
		}
		if offScreen {
			continue
		}
		kept = append(kept, train)
	}
	s.trains = kept
}

func (s *Scheduler) spawnTrain(now float32) {
	name := FleetName(s.scene)
	if !s.fleetReady(name, now) {
		s.trainTimer = trainRetry
		s.metrics.PoolExhaustedRecorded(KindTrain)
		s.log.Debug("fleet cooling down", logging.String("name", name), logging.Float("time", float64(now)))
		return
	}

	fromLeft := s.rng.IntN(2) == 0
	y := s.rng.Range(0.3, 0.7)
	x := float32(1)
	dir := float32(-1)
	if fromLeft {
		x, dir = 0, 1
	}
	angle := float64(mgl32.DegToRad(90 - trainInclination))
	heading := mgl32.Vec2{dir * float32(math.Cos(angle)), float32(math.Sin(angle))}

	train := &Train{
		Name:          name,
		Heading:       heading,
		Speed:         trainSpeed,
		Brightness:    trainBrightness,
		Size:          trainPointSize,
		Spacing:       trainSpacing,
		LastDisplayed: now,
	}
	train.Positions = formation(mgl32.Vec2{x, y}, heading, angle, s.scene.IsAlien())
	train.trails = make([]exhaust, len(train.Positions))
	for i := range train.trails {
		train.trails[i] = newExhaust(train.Size * trainTrailScale)
	}

	s.trains = append(s.trains, train)
	s.history[name] = now
	s.trainTimer = s.rng.Range(60, 300)
	s.metrics.SpawnRecorded(KindTrain)
	s.log.Debug("train spawned", logging.String("name", name), logging.Bool("from_left", fromLeft))
}

func (s *Scheduler) fleetReady(name string, now float32) bool {
	last, ok := s.history[name]
	return !ok || now-last >= FleetCooldown
}

// formation lays out TrainSize members behind leader. The earth fleet flies
// single file; the alien fleet flies a V with ranks alternating sides.
func formation(leader, heading mgl32.Vec2, angle float64, vShape bool) []mgl32.Vec2 {
	positions := make([]mgl32.Vec2, 0, TrainSize)
	positions = append(positions, leader)
	spread := float64(mgl32.DegToRad(vSpreadDegrees))
	for i := 1; i < TrainSize; i++ {
		if !vShape {
			positions = append(positions, leader.Sub(heading.Mul(float32(i)*trainSpacing)))
			continue
		}
		side := -1.0
		if i%2 == 0 {
			side = 1
		}
		rank := float32((i + 1) / 2)
		offset := mgl32.Vec2{
			rank * trainSpacing * float32(math.Cos(angle+side*spread)),
			rank * trainSpacing * float32(math.Sin(angle+side*spread)),
		}
		positions = append(positions, leader.Sub(heading.Mul(rank*trainSpacing)).Add(offset))
	}
	return positions
}

// ShootingStars returns the live shooting stars.
func (s *Scheduler) ShootingStars() []ShootingStar { return s.shootingStars }

// Satellites returns the live satellites.
func (s *Scheduler) Satellites() []*Satellite { return s.satellites }

// Trains returns the live trains.
func (s *Scheduler) Trains() []*Train { return s.trains }

// History returns a copy of the name to last-display-time map.
func (s *Scheduler) History() map[string]float32 {
	out := make(map[string]float32, len(s.history))
	for k, v := range s.history {
		out[k] = v
	}
	return out
}

func inUnitSquare(p mgl32.Vec2) bool {
	return p.X() >= 0 && p.X() <= 1 && p.Y() >= 0 && p.Y() <= 1
}
