package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// SkyCollector bundles Prometheus metrics for the celestial scheduler, the
// terrain generator and the sky state machine.
type SkyCollector struct {
	gatherer prometheus.Gatherer

	Spawns        *prometheus.CounterVec
	PoolExhausted *prometheus.CounterVec
	Active        *prometheus.GaugeVec
	Regenerations *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	SceneResets   *prometheus.CounterVec
}

// NewSkyCollector registers the metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewSkyCollector(reg prometheus.Registerer) (*SkyCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	spawns, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "celestial_spawns_total",
		Help: "Transient celestial objects spawned, labeled by kind.",
	}, []string{"kind"}), "celestial_spawns_total")
	if err != nil {
		return nil, err
	}
	exhausted, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "celestial_pool_exhausted_total",
		Help: "Spawn attempts deferred because every candidate name was cooling down.",
	}, []string{"kind"}), "celestial_pool_exhausted_total")
	if err != nil {
		return nil, err
	}
	active, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "celestial_active",
		Help: "Transient celestial objects currently alive, labeled by kind.",
	}, []string{"kind"}), "celestial_active")
	if err != nil {
		return nil, err
	}
	regens, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "terrain_regenerations_total",
		Help: "Terrain regenerations, labeled by tier.",
	}, []string{"tier"}), "terrain_regenerations_total")
	if err != nil {
		return nil, err
	}
	transitions, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sky_transitions_total",
		Help: "Time-of-day transitions started, labeled by target state.",
	}, []string{"to"}), "sky_transitions_total")
	if err != nil {
		return nil, err
	}
	resets, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scene_resets_total",
		Help: "Scene initializations, labeled by scene.",
	}, []string{"scene"}), "scene_resets_total")
	if err != nil {
		return nil, err
	}

	return &SkyCollector{
		gatherer:      gatherer,
		Spawns:        spawns,
		PoolExhausted: exhausted,
		Active:        active,
		Regenerations: regens,
		Transitions:   transitions,
		SceneResets:   resets,
	}, nil
}

// Gatherer returns the gatherer backing the collector's registry.
func (c *SkyCollector) Gatherer() prometheus.Gatherer {
	if c == nil || c.gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return c.gatherer
}

// SpawnRecorded counts a spawned object of the given kind.
func (c *SkyCollector) SpawnRecorded(kind string) {
	if c == nil || c.Spawns == nil {
		return
	}
	c.Spawns.WithLabelValues(kind).Inc()
}

// PoolExhaustedRecorded counts a spawn attempt deferred for lack of names.
func (c *SkyCollector) PoolExhaustedRecorded(kind string) {
	if c == nil || c.PoolExhausted == nil {
		return
	}
	c.PoolExhausted.WithLabelValues(kind).Inc()
}

// SetActive publishes the live count for kind.
func (c *SkyCollector) SetActive(kind string, n int) {
	if c == nil || c.Active == nil {
		return
	}
	c.Active.WithLabelValues(kind).Set(float64(n))
}

// TerrainRegenerated counts a regeneration of the named tier.
func (c *SkyCollector) TerrainRegenerated(tier string) {
	if c == nil || c.Regenerations == nil {
		return
	}
	c.Regenerations.WithLabelValues(tier).Inc()
}

// TransitionStarted counts a time-of-day trigger.
func (c *SkyCollector) TransitionStarted(to string) {
	if c == nil || c.Transitions == nil {
		return
	}
	c.Transitions.WithLabelValues(to).Inc()
}

// SceneReset counts a scene initialization.
func (c *SkyCollector) SceneReset(scene string) {
	if c == nil || c.SceneResets == nil {
		return
	}
	c.SceneResets.WithLabelValues(scene).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
