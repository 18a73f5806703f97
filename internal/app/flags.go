package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"nightsky/internal/core"
	"nightsky/internal/noise"
	"nightsky/internal/world"
)

// KeyValues collects repeatable key=value flags.
type KeyValues []string

func (l *KeyValues) String() string {
	return strings.Join(*l, ",")
}

func (l *KeyValues) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the entries; later keys win.
func (l KeyValues) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Scene       string
	Time        string
	Scale       float64
	TPS         int
	Seed        int64
	Noise       string
	LogLevel    string
	HUD         bool
	Textures    string
	MetricsAddr string
	Overrides   KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := world.DefaultConfig()
	return &Config{
		Scene:    def.Scene.String(),
		Time:     def.TimeOfDay.String(),
		Scale:    0.75,
		TPS:      60,
		Seed:     def.Seed,
		Noise:    string(def.Noise),
		Textures: "assets",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Scene, "scene", c.Scene, "scene: summer, fall, winter, spring or alien")
	fs.StringVar(&c.Time, "time", c.Time, "time of day: dawn, midday, dusk or night")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "window size relative to the 1728x972 scene")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the shared random source")
	fs.StringVar(&c.Noise, "noise", c.Noise, "terrain noise: perlin or simplex")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error (default LOG_LEVEL)")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel at startup")
	fs.StringVar(&c.Textures, "textures", c.Textures, "directory holding sun.png, moon.png and alien_planet.png")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve Prometheus metrics on this address when set")
	fs.Var(&c.Overrides, "set", "world parameter override in key=value form (repeatable)")
}

// Validate rejects flag values the world would silently ignore.
func (c *Config) Validate() error {
	if _, err := core.ParseScene(c.Scene); err != nil {
		return err
	}
	if _, err := core.ParseTimeOfDay(c.Time); err != nil {
		return err
	}
	if _, err := noise.ParseKind(c.Noise); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// WorldConfig merges the named flags with the -set overrides, the latter
// taking precedence.
func (c *Config) WorldConfig() world.Config {
	m := map[string]string{
		"scene": c.Scene,
		"time":  c.Time,
		"seed":  strconv.FormatInt(c.Seed, 10),
		"noise": c.Noise,
	}
	for k, v := range c.Overrides.Map() {
		m[k] = v
	}
	return world.FromMap(m)
}
