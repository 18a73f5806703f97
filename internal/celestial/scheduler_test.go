package celestial

import (
	"math"
	"testing"

	"nightsky/internal/core"
	pcore "nightsky/pkg/core"

	"github.com/go-gl/mathgl/mgl32"
)

type countingRecorder struct {
	spawns    map[string]int
	exhausted map[string]int
	active    map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		spawns:    make(map[string]int),
		exhausted: make(map[string]int),
		active:    make(map[string]int),
	}
}

func (r *countingRecorder) SpawnRecorded(kind string)         { r.spawns[kind]++ }
func (r *countingRecorder) PoolExhaustedRecorded(kind string) { r.exhausted[kind]++ }
func (r *countingRecorder) SetActive(kind string, n int)      { r.active[kind] = n }

type spawnEvent struct {
	name string
	at   float32
}

// runNight steps s through the night and returns every satellite spawn seen.
func runNight(t *testing.T, s *Scheduler, seconds, dt float32) []spawnEvent {
	t.Helper()
	seen := make(map[*Satellite]bool)
	var events []spawnEvent
	var now float32
	for now < seconds {
		now += dt
		s.Update(now, dt, core.Night)
		if n := len(s.Satellites()); n > MaxSatellites {
			t.Fatalf("t=%v: %d satellites active", now, n)
		}
		if n := len(s.Trains()); n > MaxTrains {
			t.Fatalf("t=%v: %d trains active", now, n)
		}
		for _, sat := range s.Satellites() {
			if !seen[sat] {
				seen[sat] = true
				events = append(events, spawnEvent{name: sat.Name, at: sat.LastDisplayed})
			}
		}
	}
	return events
}

func TestSatelliteNamesRespectCooldown(t *testing.T) {
	for _, scene := range []core.Scene{core.Summer, core.Alien} {
		s := NewScheduler(scene, pcore.NewRNG(11), nil, nil)
		events := runNight(t, s, 1500, 0.05)
		if len(events) < 5 {
			t.Fatalf("%v: only %d satellites in 1500s", scene, len(events))
		}
		last := make(map[string]float32)
		for _, e := range events {
			if prev, ok := last[e.name]; ok {
				if gap := e.at - prev; gap < CooldownFor(e.name) {
					t.Fatalf("%v: %s reappeared after %vs, cooldown %v", scene, e.name, gap, CooldownFor(e.name))
				}
			}
			last[e.name] = e.at
		}
	}
}

func TestCooldownTable(t *testing.T) {
	if CooldownFor("INTERNATIONAL SPACE STATION") != FlagshipCooldown {
		t.Fatal("the ISS should use the flagship cooldown")
	}
	if CooldownFor("IKS D'GAVAH (BIRD-OF-PREY)") != FlagshipCooldown {
		t.Fatal("the bird-of-prey should use the flagship cooldown")
	}
	if CooldownFor("HUBBLE SPACE TELESCOPE") != SatelliteCooldown {
		t.Fatal("ordinary satellites use the short cooldown")
	}
}

func TestEligibleTracksHistory(t *testing.T) {
	s := NewScheduler(core.Summer, pcore.NewRNG(1), nil, nil)
	s.history["HUBBLE SPACE TELESCOPE"] = 10
	if s.Eligible("HUBBLE SPACE TELESCOPE", 69.9) {
		t.Fatal("name eligible before its cooldown elapsed")
	}
	if !s.Eligible("HUBBLE SPACE TELESCOPE", 70) {
		t.Fatal("name not eligible once its cooldown elapsed")
	}
	if !s.Eligible("AQUA", 0) {
		t.Fatal("a name never shown should be eligible")
	}
}

func TestExhaustedPoolRetriesShortly(t *testing.T) {
	rec := newCountingRecorder()
	s := NewScheduler(core.Summer, pcore.NewRNG(5), nil, rec)
	for _, e := range SatelliteCatalog(core.Summer) {
		s.history[e.Name] = 100
	}
	s.shootingTimer, s.trainTimer = 1e9, 1e9

	s.Update(100.016, 0.016, core.Night)
	if len(s.Satellites()) != 0 {
		t.Fatal("a satellite spawned from an exhausted pool")
	}
	if s.satelliteTimer != satelliteRetry {
		t.Fatalf("retry timer = %v, want %v", s.satelliteTimer, satelliteRetry)
	}
	if rec.exhausted[KindSatellite] != 1 {
		t.Fatalf("exhausted count = %d, want 1", rec.exhausted[KindSatellite])
	}
}

func TestFleetCooldownDefersTrain(t *testing.T) {
	s := NewScheduler(core.Summer, pcore.NewRNG(5), nil, nil)
	s.history[FleetName(core.Summer)] = 0
	s.shootingTimer, s.satelliteTimer = 1e9, 1e9

	s.Update(100, 0.016, core.Night)
	if len(s.Trains()) != 0 || s.trainTimer != trainRetry {
		t.Fatalf("train spawned during fleet cooldown (timer %v)", s.trainTimer)
	}
	s.trainTimer = 0
	s.Update(300, 0.016, core.Night)
	if len(s.Trains()) != 1 {
		t.Fatal("train did not spawn after the fleet cooldown")
	}
	if got := s.History()[FleetName(core.Summer)]; got != 300 {
		t.Fatalf("fleet history = %v, want 300", got)
	}
}

func TestLeavingNightClearsTransients(t *testing.T) {
	rec := newCountingRecorder()
	s := NewScheduler(core.Summer, pcore.NewRNG(8), nil, rec)
	s.Update(0.016, 0.016, core.Night)
	if rec.spawns[KindShootingStar] != 1 || len(s.Satellites()) != 1 || len(s.Trains()) != 1 {
		t.Fatalf("first night tick should spawn one of each transient: %v", rec.spawns)
	}

	s.Update(0.032, 0.016, core.Dawn)
	if len(s.ShootingStars())+len(s.Satellites())+len(s.Trains()) != 0 {
		t.Fatal("transients survived leaving the night")
	}
	if rec.active[KindSatellite] != 0 || rec.active[KindTrain] != 0 {
		t.Fatalf("active gauges not reset: %v", rec.active)
	}
	if len(s.History()) != 2 {
		t.Fatalf("history = %v, want the satellite and the fleet", s.History())
	}
}

func TestShootingStarSpawnAndDecay(t *testing.T) {
	s := NewScheduler(core.Summer, pcore.NewRNG(21), nil, nil)
	s.shootingTimer, s.satelliteTimer, s.trainTimer = 1e9, 1e9, 1e9
	s.spawnShootingStar()
	stars := s.ShootingStars()
	if len(stars) != 1 {
		t.Fatalf("%d shooting stars after a spawn", len(stars))
	}
	star := stars[0]
	if star.Pos.Y() != 1 || star.Pos.X() < 0 || star.Pos.X() >= 1 {
		t.Fatalf("spawned at %v, want the top edge", star.Pos)
	}
	if star.Lifetime < minShootingLife || star.Lifetime > maxShootingLife {
		t.Fatalf("lifetime %v outside the clamp", star.Lifetime)
	}
	if star.Brightness < 0.3 || star.Brightness >= 1.2 {
		t.Fatalf("brightness %v outside [0.3,1.2)", star.Brightness)
	}
	if speed := star.Velocity.Len(); math.Abs(float64(speed)-shootingStarSpeed) > 1e-4 {
		t.Fatalf("speed = %v, want %v", speed, shootingStarSpeed)
	}
	if star.Velocity.X() >= 0 || star.Velocity.Y() >= 0 {
		t.Fatalf("velocity %v should point down and left", star.Velocity)
	}

	s.shootingStars[0].Pos = mgl32.Vec2{0.5, 1}
	prev := star.Brightness
	s.Update(0.016, 0.016, core.Night)
	if len(s.ShootingStars()) != 1 {
		t.Fatal("shooting star vanished early")
	}
	if got := s.ShootingStars()[0].Brightness; got >= prev {
		t.Fatalf("brightness %v did not decay from %v", got, prev)
	}

	for now := float32(0.032); now < 3; now += 0.016 {
		s.Update(now, 0.016, core.Night)
	}
	if len(s.ShootingStars()) != 0 {
		t.Fatal("shooting star outlived its maximum lifetime")
	}
}

func TestSatelliteHeading(t *testing.T) {
	h := satelliteHeading(51.6, true)
	if math.Abs(float64(h.Len())-1) > 1e-5 || h.X() <= 0 || h.Y() <= 0 {
		t.Fatalf("heading = %v", h)
	}
	angle := float64(mgl32.DegToRad(90 - 51.6))
	if math.Abs(float64(h.X())-math.Cos(angle)) > 1e-5 {
		t.Fatalf("heading x = %v, want %v", h.X(), math.Cos(angle))
	}

	geo := satelliteHeading(0, false)
	if math.Abs(float64(geo.Len())-1) > 1e-5 || geo.X() >= 0 {
		t.Fatalf("geostationary heading = %v", geo)
	}
	want := mgl32.Vec2{-0.5, 1}.Normalize()
	if !geo.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("corrected heading = %v, want %v", geo, want)
	}
}

func TestEarthTrainFliesSingleFile(t *testing.T) {
	angle := float64(mgl32.DegToRad(90 - trainInclination))
	heading := mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}
	leader := mgl32.Vec2{0, 0.5}
	pos := formation(leader, heading, angle, false)
	if len(pos) != TrainSize || pos[0] != leader {
		t.Fatalf("formation = %v", pos)
	}
	for i := 1; i < len(pos); i++ {
		want := leader.Sub(heading.Mul(float32(i) * trainSpacing))
		if !pos[i].ApproxEqualThreshold(want, 1e-6) {
			t.Fatalf("member %d at %v, want %v", i, pos[i], want)
		}
	}
}

func TestAlienTrainFliesV(t *testing.T) {
	angle := float64(mgl32.DegToRad(90 - trainInclination))
	heading := mgl32.Vec2{float32(math.Cos(angle)), float32(math.Sin(angle))}
	leader := mgl32.Vec2{0, 0.5}
	pos := formation(leader, heading, angle, true)
	if len(pos) != TrainSize {
		t.Fatalf("formation has %d members", len(pos))
	}
	// Members pair up by rank at equal distance from the leader.
	for rank := 1; rank <= 3; rank++ {
		a := pos[2*rank-1].Sub(leader).Len()
		b := pos[2*rank].Sub(leader).Len()
		if math.Abs(float64(a-b)) > 1e-5 {
			t.Fatalf("rank %d members at distances %v and %v", rank, a, b)
		}
		want := float32(rank) * trainSpacing * 2 * float32(math.Sin(float64(mgl32.DegToRad(vSpreadDegrees))/2))
		if math.Abs(float64(a-want)) > 1e-5 {
			t.Fatalf("rank %d distance %v, want %v", rank, a, want)
		}
	}
}

func TestTrainLeavesOnlyWhenEveryMemberIsOff(t *testing.T) {
	s := NewScheduler(core.Summer, pcore.NewRNG(2), nil, nil)
	s.shootingTimer, s.satelliteTimer, s.trainTimer = 1e9, 1e9, 1e9
	train := &Train{
		Heading:   mgl32.Vec2{1, 0},
		Positions: []mgl32.Vec2{{1.5, 0.5}, {0.5, 0.5}},
		trails:    make([]exhaust, 2),
	}
	s.trains = append(s.trains, train)

	s.Update(1, 0.016, core.Night)
	if len(s.Trains()) != 1 {
		t.Fatal("train removed while a member is still visible")
	}
	train.Positions[1] = mgl32.Vec2{-0.1, 0.5}
	s.Update(1.016, 0.016, core.Night)
	if len(s.Trains()) != 0 {
		t.Fatal("train kept after every member left the sky")
	}
}

func TestExhaustSegmentsFade(t *testing.T) {
	e := newExhaust(3)
	if e.maxLife != 1.5 {
		t.Fatalf("max life = %v, want 1.5", e.maxLife)
	}
	e.step(mgl32.Vec2{0, 0}, mgl32.Vec2{0.01, 0}, ExhaustInterval)
	if len(e.segments) != 1 {
		t.Fatalf("%d segments after one interval", len(e.segments))
	}
	seg := e.segments[0]
	want := (e.maxLife - ExhaustInterval) / e.maxLife * exhaustAlpha
	if math.Abs(float64(seg.Alpha-want)) > 1e-6 {
		t.Fatalf("alpha = %v, want %v", seg.Alpha, want)
	}
	e.step(mgl32.Vec2{0.01, 0}, mgl32.Vec2{0.02, 0}, 0.01)
	if len(e.segments) != 1 {
		t.Fatal("segment emitted before the interval elapsed")
	}
	if e.segments[0].Alpha >= seg.Alpha {
		t.Fatal("segment did not fade")
	}
	for i := 0; i < 200; i++ {
		e.step(mgl32.Vec2{}, mgl32.Vec2{}, 0.01)
	}
	for _, s := range e.segments {
		if s.Lifetime <= 0 || s.Alpha <= 0 || s.Alpha > exhaustAlpha {
			t.Fatalf("stale segment kept: %+v", s)
		}
	}
	if len(e.segments) > int(e.maxLife/ExhaustInterval)+1 {
		t.Fatalf("%d segments alive, trail is not being pruned", len(e.segments))
	}
}

func TestExhaustCadenceIsPerCraft(t *testing.T) {
	s := NewScheduler(core.Alien, pcore.NewRNG(4), nil, nil)
	s.shootingTimer, s.satelliteTimer, s.trainTimer = 1e9, 1e9, 1e9
	catalog := SatelliteCatalog(core.Alien)
	for i := 0; i < 2; i++ {
		s.satellites = append(s.satellites, &Satellite{
			CatalogEntry: catalog[i],
			Pos:          mgl32.Vec2{0.5, 0.3 + float32(i)*0.2},
			Heading:      mgl32.Vec2{1, 0},
			trail:        newExhaust(catalog[i].Size),
		})
	}
	s.Update(1, ExhaustInterval, core.Night)
	for i, sat := range s.Satellites() {
		if len(sat.Trail()) != 1 {
			t.Fatalf("satellite %d has %d segments, want 1", i, len(sat.Trail()))
		}
	}
}

func TestEarthSatellitesLeaveNoTrail(t *testing.T) {
	s := NewScheduler(core.Summer, pcore.NewRNG(4), nil, nil)
	s.shootingTimer, s.trainTimer = 1e9, 1e9
	for now := float32(0.05); now < 2; now += 0.05 {
		s.Update(now, 0.05, core.Night)
	}
	for _, sat := range s.Satellites() {
		if len(sat.Trail()) != 0 {
			t.Fatalf("%s left a trail in the earth scene", sat.Name)
		}
	}
}
