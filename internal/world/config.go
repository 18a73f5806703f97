package world

import (
	"strconv"

	"nightsky/internal/core"
	"nightsky/internal/noise"
)

// TierParams shapes one terrain tier: the height range noise is mapped onto
// and the fractal controls of its noise field.
type TierParams struct {
	Base float32
	Min  float32
	Max  float32

	Frequency   float64
	Persistence float64
	Lacunarity  float64
	Octaves     int
}

// DistantPlacement positions the distant tier behind the bottom one.
type DistantPlacement struct {
	Z         float32
	YOffset   float32
	ColorFade float32
	DepthFade float32
}

// Config controls terrain dimensions, noise and the starting scene.
type Config struct {
	Scene     core.Scene
	TimeOfDay core.TimeOfDay
	Seed      int64
	Noise     noise.Kind

	TerrainWidth int
	BottomDepth  int
	DistantDepth int

	Bottom    TierParams
	Distant   TierParams
	Placement DistantPlacement
}

// DefaultBottomParams returns the bottom tier defaults.
func DefaultBottomParams() TierParams {
	return TierParams{
		Base:        0,
		Min:         core.WindowHeight * 0.2,
		Max:         core.WindowHeight * 0.4,
		Frequency:   0.6,
		Persistence: 0.45,
		Lacunarity:  1.669,
		Octaves:     8,
	}
}

// DefaultDistantParams returns the distant tier defaults.
func DefaultDistantParams() TierParams {
	return TierParams{
		Base:        0,
		Min:         core.WindowHeight * 0.5,
		Max:         core.WindowHeight * 0.6,
		Frequency:   0.6,
		Persistence: 0.45,
		Lacunarity:  2,
		Octaves:     6,
	}
}

// DefaultPlacement returns the distant tier placement defaults.
func DefaultPlacement() DistantPlacement {
	return DistantPlacement{Z: 250, YOffset: 0, ColorFade: 0.3, DepthFade: 0.567}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Scene:        core.Summer,
		TimeOfDay:    core.MidDay,
		Seed:         1337,
		Noise:        noise.Perlin,
		TerrainWidth: core.WindowWidth + 400,
		BottomDepth:  400,
		DistantDepth: 200,
		Bottom:       DefaultBottomParams(),
		Distant:      DefaultDistantParams(),
		Placement:    DefaultPlacement(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["scene"]; ok {
		if parsed, err := core.ParseScene(v); err == nil {
			c.Scene = parsed
		}
	}
	if v, ok := cfg["time"]; ok {
		if parsed, err := core.ParseTimeOfDay(v); err == nil {
			c.TimeOfDay = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := noise.ParseKind(v); err == nil {
			c.Noise = parsed
		}
	}
	if v, ok := cfg["terrain_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.TerrainWidth = parsed
		}
	}
	if v, ok := cfg["bottom_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.BottomDepth = parsed
		}
	}
	if v, ok := cfg["distant_depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 {
			c.DistantDepth = parsed
		}
	}
	tierFromMap(cfg, "bottom", &c.Bottom)
	tierFromMap(cfg, "distant", &c.Distant)

	if v, ok := cfg["distant_z"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			c.Placement.Z = float32(parsed)
		}
	}
	if v, ok := cfg["distant_y_offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			c.Placement.YOffset = float32(parsed)
		}
	}
	if v, ok := cfg["distant_color_fade"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 && parsed <= 1 {
			c.Placement.ColorFade = float32(parsed)
		}
	}
	if v, ok := cfg["distant_depth_fade"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 && parsed <= 1 {
			c.Placement.DepthFade = float32(parsed)
		}
	}
	return c
}

func tierFromMap(cfg map[string]string, tier string, p *TierParams) {
	if v, ok := cfg[tier+"_base"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			p.Base = float32(parsed)
		}
	}
	if v, ok := cfg[tier+"_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			p.Min = float32(parsed)
		}
	}
	if v, ok := cfg[tier+"_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed >= 0 {
			p.Max = float32(parsed)
		}
	}
	if p.Max < p.Min {
		p.Max = p.Min
	}
	if v, ok := cfg[tier+"_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.Frequency = parsed
		}
	}
	if v, ok := cfg[tier+"_persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.Persistence = parsed
		}
	}
	if v, ok := cfg[tier+"_lacunarity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.Lacunarity = parsed
		}
	}
	if v, ok := cfg[tier+"_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			p.Octaves = parsed
		}
	}
}
