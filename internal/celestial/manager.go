// Package celestial owns the night sky: the star field and its
// constellations, distant planets, the sun and moon, and the transient
// shooting stars, satellites and fleet trains.
package celestial

import (
	"nightsky/internal/core"
	"nightsky/internal/logging"
	pcore "nightsky/pkg/core"
)

// Toggles controls which label groups are produced.
type Toggles struct {
	ConstellationNames bool
	PlanetNames        bool
	SatelliteNames     bool
	NativeNames        bool
}

// Manager holds every celestial object of one scene.
type Manager struct {
	rng   *pcore.RNG
	scene core.Scene
	log   logging.Logger

	pattern        Pattern
	stars          []Star
	constellations []Constellation
	planets        []Planet
	close          []CloseCelestial

	sched      *Scheduler
	totalTime  float32
	timeFactor float32
	tod        core.TimeOfDay

	toggles Toggles
}

// NewManager builds and initializes a manager for scene. rng is shared with
// the caller and must not be used concurrently.
func NewManager(scene core.Scene, rng *pcore.RNG, log logging.Logger, metrics Recorder) *Manager {
	log = logging.OrNoop(log)
	m := &Manager{
		rng:        rng,
		scene:      scene,
		log:        log,
		sched:      NewScheduler(scene, rng, log, metrics),
		timeFactor: TimeFactor(core.MidDay),
		tod:        core.MidDay,
		toggles:    Toggles{NativeNames: scene.IsAlien()},
	}
	m.Initialize()
	return m
}

// Initialize discards every object and the cooldown history, picks a new
// pattern for the scene and rebuilds the star field.
func (m *Manager) Initialize() {
	m.totalTime = 0
	m.sched.Reset(m.scene)

	patterns := PatternsFor(m.scene)
	m.pattern = patterns[m.rng.IntN(len(patterns))]
	m.stars = GenerateStars(m.rng)
	m.constellations, m.planets = ApplyLayout(m.stars, LayoutFor(m.pattern))
	m.close = closeCelestials(m.scene)
	for i := range m.close {
		m.close[i].place(m.timeFactor, m.tod)
	}

	m.log.Debug("sky initialized",
		logging.String("scene", m.scene.String()),
		logging.String("pattern", m.pattern.String()),
		logging.Int("stars", len(m.stars)),
	)
}

// SetScene switches catalogs and re-initializes. Native names follow the
// alien scene.
func (m *Manager) SetScene(scene core.Scene) {
	m.scene = scene
	m.toggles.NativeNames = scene.IsAlien()
	m.Initialize()
}

// Update advances the clock and the transient objects, then moves the close
// celestials for tod.
func (m *Manager) Update(dt float32, tod core.TimeOfDay) {
	m.totalTime += dt
	m.sched.Update(m.totalTime, dt, tod)
	m.tod = tod
	m.timeFactor = TimeFactor(tod)
	for i := range m.close {
		m.close[i].place(m.timeFactor, tod)
	}
}

// ToggleConstellationNames flips constellation labels.
func (m *Manager) ToggleConstellationNames() {
	m.toggles.ConstellationNames = !m.toggles.ConstellationNames
}

// TogglePlanetNames flips planet labels, including the alien planet.
func (m *Manager) TogglePlanetNames() { m.toggles.PlanetNames = !m.toggles.PlanetNames }

// ToggleSatelliteNames flips satellite and train labels.
func (m *Manager) ToggleSatelliteNames() { m.toggles.SatelliteNames = !m.toggles.SatelliteNames }

// ToggleNativeNames switches between native and English label faces.
func (m *Manager) ToggleNativeNames() { m.toggles.NativeNames = !m.toggles.NativeNames }

func (m *Manager) Toggles() Toggles                  { return m.toggles }
func (m *Manager) Scene() core.Scene                 { return m.scene }
func (m *Manager) Pattern() Pattern                  { return m.pattern }
func (m *Manager) Stars() []Star                     { return m.stars }
func (m *Manager) Constellations() []Constellation   { return m.constellations }
func (m *Manager) Planets() []Planet                 { return m.planets }
func (m *Manager) CloseCelestials() []CloseCelestial { return m.close }
func (m *Manager) ShootingStars() []ShootingStar     { return m.sched.ShootingStars() }
func (m *Manager) Satellites() []*Satellite          { return m.sched.Satellites() }
func (m *Manager) Trains() []*Train                  { return m.sched.Trains() }
func (m *Manager) TotalTime() float32                { return m.totalTime }
func (m *Manager) TimeFactor() float32               { return m.timeFactor }

// History returns a copy of the cooldown history.
func (m *Manager) History() map[string]float32 { return m.sched.History() }

// Eligible reports whether a satellite name could be picked right now.
func (m *Manager) Eligible(name string) bool { return m.sched.Eligible(name, m.totalTime) }
