// Package world ties the terrain tiers, the physics boundary, the sky state
// machine and the celestial manager together and advances them once per
// frame in a fixed order.
package world

import (
	"fmt"

	"nightsky/internal/celestial"
	"nightsky/internal/core"
	"nightsky/internal/logging"
	"nightsky/internal/noise"
	"nightsky/internal/physics"
	"nightsky/internal/sky"
	"nightsky/internal/terrain"
	pcore "nightsky/pkg/core"
)

// Interactive deformation defaults.
const (
	DeformRadius    = 20
	DeformIntensity = 5
)

// Metrics receives world-level events. *observability.SkyCollector
// satisfies it.
type Metrics interface {
	celestial.Recorder
	TerrainRegenerated(tier string)
	TransitionStarted(to string)
	SceneReset(scene string)
}

type noopMetrics struct{}

func (noopMetrics) SpawnRecorded(string)         {}
func (noopMetrics) PoolExhaustedRecorded(string) {}
func (noopMetrics) SetActive(string, int)        {}
func (noopMetrics) TerrainRegenerated(string)    {}
func (noopMetrics) TransitionStarted(string)     {}
func (noopMetrics) SceneReset(string)            {}

type tier struct {
	terrain *terrain.Terrain
	field   *noise.Field
	seed    int64
	pending bool
}

// World owns every simulated subsystem of one window.
type World struct {
	cfg     Config
	rng     *pcore.RNG
	log     logging.Logger
	metrics Metrics

	bottom  tier
	distant tier
	palette TerrainPalette

	physics  *physics.World
	boundary *physics.Boundary

	sky       *sky.Engine
	celestial *celestial.Manager

	tod       core.TimeOfDay
	totalTime float32
}

// New builds both terrain tiers, the physics boundary, the sky and the
// celestial manager. A nil rng is replaced by one seeded from cfg.Seed.
func New(cfg Config, rng *pcore.RNG, log logging.Logger, metrics Metrics) (*World, error) {
	log = logging.OrNoop(log)
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if rng == nil {
		rng = pcore.NewRNG(cfg.Seed)
	}
	w := &World{
		cfg:     cfg,
		rng:     rng,
		log:     log,
		metrics: metrics,
		palette: PaletteFor(cfg.Scene),
		physics: physics.NewWorld(),
		sky:     sky.NewEngine(),
		tod:     core.MidDay,
	}

	var err error
	if w.bottom.terrain, err = terrain.New(cfg.TerrainWidth, cfg.BottomDepth); err != nil {
		return nil, fmt.Errorf("world: bottom terrain: %w", err)
	}
	if w.distant.terrain, err = terrain.New(cfg.TerrainWidth, cfg.DistantDepth); err != nil {
		return nil, fmt.Errorf("world: distant terrain: %w", err)
	}
	w.bottom.field = noise.NewField(cfg.Noise, w.noiseParams(core.Bottom, 0))
	w.distant.field = noise.NewField(cfg.Noise, w.noiseParams(core.Distant, 0))

	w.boundary = physics.NewBoundary(w.physics, physics.DefaultResolution, core.WindowHeight, log)
	if err := w.regenerate(core.Bottom); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	if err := w.regenerate(core.Distant); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}

	w.celestial = celestial.NewManager(cfg.Scene, rng, log, metrics)
	metrics.SceneReset(cfg.Scene.String())
	w.SetTimeOfDay(cfg.TimeOfDay)

	log.Info("world initialized",
		logging.String("scene", cfg.Scene.String()),
		logging.String("time", cfg.TimeOfDay.String()),
		logging.Any("seed", cfg.Seed),
		logging.String("noise", string(w.bottom.field.Kind())),
	)
	return w, nil
}

// Update advances the world by dt seconds: physics, then the sky transition,
// then any pending terrain regenerations, then the celestial objects.
func (w *World) Update(dt float32) {
	w.totalTime += dt
	w.physics.Step(float64(dt))
	w.sky.Advance(dt)

	for _, t := range []core.TerrainTier{core.Bottom, core.Distant} {
		if !w.tier(t).pending {
			continue
		}
		if err := w.regenerate(t); err != nil {
			w.log.Error("terrain regeneration failed", logging.String("tier", t.String()), logging.Err(err))
		}
	}

	// Transients follow the requested time of day, not the committed one.
	w.celestial.Update(dt, w.tod)
}

// SetTimeOfDay requests a sky transition toward tod.
func (w *World) SetTimeOfDay(tod core.TimeOfDay) {
	w.tod = tod
	if !w.sky.SetTimeOfDay(tod) {
		return
	}
	w.metrics.TransitionStarted(tod.String())
	w.log.Debug("time of day requested", logging.String("time", tod.String()))
}

// SetScene swaps the terrain palette and celestial catalogs and schedules
// both tiers for regeneration. It reports false when scene is already active.
func (w *World) SetScene(scene core.Scene) bool {
	if scene == w.cfg.Scene {
		return false
	}
	w.cfg.Scene = scene
	w.palette = PaletteFor(scene)
	w.celestial.SetScene(scene)
	w.metrics.SceneReset(scene.String())
	w.TriggerRegeneration(core.Bottom)
	w.TriggerRegeneration(core.Distant)
	w.log.Info("scene switched", logging.String("scene", scene.String()))
	return true
}

// TriggerRegeneration schedules a fresh noise seed for tier on the next
// Update.
func (w *World) TriggerRegeneration(t core.TerrainTier) {
	if tr := w.tier(t); tr != nil {
		tr.pending = true
	}
}

// ResetNoiseParams restores the default shaping of tier and schedules it for
// regeneration.
func (w *World) ResetNoiseParams(t core.TerrainTier) {
	switch t {
	case core.Bottom:
		w.cfg.Bottom = DefaultBottomParams()
	case core.Distant:
		w.cfg.Distant = DefaultDistantParams()
		w.cfg.Placement = DefaultPlacement()
	}
	w.TriggerRegeneration(t)
}

// Deform raises or lowers the bottom terrain around xWorld and rebuilds the
// physics boundary when any column changed.
func (w *World) Deform(xWorld, radius, intensity float32, add bool) bool {
	if !w.bottom.terrain.Deform(xWorld, radius, intensity, add) {
		return false
	}
	if _, err := w.boundary.Rebuild(w.bottom.terrain); err != nil {
		w.log.Error("boundary rebuild after deform failed", logging.Err(err))
	}
	return true
}

// DeformAtScreen maps a window x coordinate in pixels onto the bottom terrain
// and deforms it with the default radius and intensity.
func (w *World) DeformAtScreen(px float32, add bool) bool {
	columns := float32(w.bottom.terrain.Width() - 1)
	xWorld := px / core.WindowWidth * columns * terrain.ScaleX
	return w.Deform(xWorld, DeformRadius, DeformIntensity, add)
}

// SkylineAt returns the distant skyline height in window pixels under the
// normalized horizontal position x. It satisfies celestial.HeightQuery.
func (w *World) SkylineAt(x float32) (float32, bool) {
	t := w.distant.terrain
	h := t.HeightAtNormalized(x, t.Depth()-1)
	if h == terrain.NoTerrain {
		return 0, false
	}
	return h + w.cfg.Placement.YOffset, true
}

// StarAlpha returns the night-sky visibility for this frame.
func (w *World) StarAlpha() float32 { return w.sky.StarAlpha() }

// Labels builds the enabled celestial captions, hiding the alien planet
// behind the distant skyline.
func (w *World) Labels() []celestial.Label {
	return w.celestial.Labels(w.sky.StarAlpha(), w)
}

func (w *World) tier(t core.TerrainTier) *tier {
	switch t {
	case core.Bottom:
		return &w.bottom
	case core.Distant:
		return &w.distant
	}
	return nil
}

func (w *World) tierParams(t core.TerrainTier) TierParams {
	if t == core.Distant {
		return w.cfg.Distant
	}
	return w.cfg.Bottom
}

func (w *World) noiseParams(t core.TerrainTier, seed int64) noise.Params {
	p := w.tierParams(t)
	return noise.Params{
		Frequency:   p.Frequency,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
		Octaves:     p.Octaves,
		Seed:        seed,
	}
}

func (w *World) heightParams(t core.TerrainTier) terrain.HeightParams {
	p := w.tierParams(t)
	palette := w.palette
	if t == core.Distant {
		palette = palette.Faded(w.cfg.Placement.ColorFade)
	}
	return terrain.HeightParams{Base: p.Base, Min: p.Min, Max: p.Max, Low: palette.Low, High: palette.High}
}

// regenerate draws a new noise seed for tier, rebuilds its mesh and, for the
// bottom tier, replaces the physics boundary.
func (w *World) regenerate(t core.TerrainTier) error {
	tr := w.tier(t)
	tr.pending = false
	tr.seed = w.rng.Int63()
	tr.field.Configure(w.noiseParams(t, tr.seed))
	tr.terrain.Generate(tr.field, w.heightParams(t))
	if t == core.Bottom {
		if _, err := w.boundary.Rebuild(tr.terrain); err != nil {
			return err
		}
	}
	w.metrics.TerrainRegenerated(t.String())
	w.log.Debug("terrain regenerated",
		logging.String("tier", t.String()),
		logging.Any("seed", tr.seed),
		logging.Int("vertices", len(tr.terrain.Vertices())),
	)
	return nil
}

// Seed returns the noise seed the tier was last generated with.
func (w *World) Seed(t core.TerrainTier) (int64, bool) {
	if tr := w.tier(t); tr != nil {
		return tr.seed, true
	}
	return 0, false
}

// Config returns the current configuration, including HUD edits.
func (w *World) Config() Config { return w.cfg }

// Scene returns the active scene.
func (w *World) Scene() core.Scene { return w.cfg.Scene }

// TimeOfDay returns the requested time of day, which may still be fading in.
func (w *World) TimeOfDay() core.TimeOfDay { return w.tod }

// TotalTime returns the simulated seconds since New.
func (w *World) TotalTime() float32 { return w.totalTime }

// Palette returns the bottom terrain colors for the active scene.
func (w *World) Palette() TerrainPalette { return w.palette }

// Bottom returns the near terrain tier.
func (w *World) Bottom() *terrain.Terrain { return w.bottom.terrain }

// Distant returns the far terrain tier.
func (w *World) Distant() *terrain.Terrain { return w.distant.terrain }

// Placement returns the distant tier's offset and fade settings.
func (w *World) Placement() DistantPlacement { return w.cfg.Placement }

// Physics returns the rigid-body world.
func (w *World) Physics() *physics.World { return w.physics }

// Boundary returns the static chain builder for the bottom terrain.
func (w *World) Boundary() *physics.Boundary { return w.boundary }

// Sky returns the time-of-day state machine.
func (w *World) Sky() *sky.Engine { return w.sky }

// Celestial returns the night sky manager.
func (w *World) Celestial() *celestial.Manager { return w.celestial }
