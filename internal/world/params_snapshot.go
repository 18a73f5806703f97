package world

import (
	"strconv"
	"strings"

	"nightsky/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	state := w.sky.State()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				textParam("scene", "Scene", w.cfg.Scene.Title()),
				textParam("time", "Time of day", w.tod.String()),
				int64Param("seed", "Seed", w.cfg.Seed),
				textParam("noise", "Noise", string(w.cfg.Noise)),
				intParam("terrain_width", "Terrain width", w.cfg.TerrainWidth),
			},
		},
		tierGroup("Bottom Terrain", "bottom", w.cfg.Bottom, w.cfg.BottomDepth),
		tierGroup("Distant Terrain", "distant", w.cfg.Distant, w.cfg.DistantDepth),
		{
			Name: "Distant Placement",
			Params: []core.Parameter{
				floatParam("distant_z", "Z position", float64(w.cfg.Placement.Z)),
				floatParam("distant_y_offset", "Y offset", float64(w.cfg.Placement.YOffset)),
				floatParam("distant_color_fade", "Color fade", float64(w.cfg.Placement.ColorFade)),
				floatParam("distant_depth_fade", "Depth fade", float64(w.cfg.Placement.DepthFade)),
			},
		},
		{
			Name: "Sky",
			Params: []core.Parameter{
				boolParam("transitioning", "Transitioning", state.Transitioning),
				floatParam("transition_progress", "Transition progress", float64(state.Progress)),
				floatParam("star_alpha", "Star alpha", float64(w.sky.StarAlpha())),
				textParam("pattern", "Sky pattern", w.celestial.Pattern().String()),
				intParam("satellites", "Satellites", len(w.celestial.Satellites())),
				intParam("trains", "Trains", len(w.celestial.Trains())),
				intParam("shooting_stars", "Shooting stars", len(w.celestial.ShootingStars())),
				floatParam("total_time", "Total time", float64(w.totalTime)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func tierGroup(name, prefix string, p TierParams, depth int) core.ParameterGroup {
	return core.ParameterGroup{
		Name: name,
		Params: []core.Parameter{
			intParam(prefix+"_depth", "Depth", depth),
			floatParam(prefix+"_base", "Base height", float64(p.Base)),
			floatParam(prefix+"_min", "Min height", float64(p.Min)),
			floatParam(prefix+"_max", "Max height", float64(p.Max)),
			floatParam(prefix+"_frequency", "Frequency", p.Frequency),
			floatParam(prefix+"_persistence", "Persistence", p.Persistence),
			floatParam(prefix+"_lacunarity", "Lacunarity", p.Lacunarity),
			intParam(prefix+"_octaves", "Octaves", p.Octaves),
		},
	}
}

// ParameterControls lists the HUD-adjustable noise and placement values.
func (w *World) ParameterControls() []core.ParameterControl {
	var controls []core.ParameterControl
	for _, prefix := range []string{"bottom", "distant"} {
		label := strings.ToUpper(prefix[:1]) + prefix[1:]
		controls = append(controls,
			core.ParameterControl{Key: prefix + "_frequency", Label: label + " frequency", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, HasMin: true, Max: 4, HasMax: true},
			core.ParameterControl{Key: prefix + "_persistence", Label: label + " persistence", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, HasMin: true, Max: 1, HasMax: true},
			core.ParameterControl{Key: prefix + "_lacunarity", Label: label + " lacunarity", Type: core.ParamTypeFloat, Step: 0.1, Min: 1, HasMin: true, Max: 4, HasMax: true},
			core.ParameterControl{Key: prefix + "_octaves", Label: label + " octaves", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 10, HasMax: true},
		)
	}
	controls = append(controls,
		core.ParameterControl{Key: "distant_y_offset", Label: "Distant Y offset", Type: core.ParamTypeFloat, Step: 10, Min: -core.WindowHeight, HasMin: true, Max: core.WindowHeight, HasMax: true},
		core.ParameterControl{Key: "distant_color_fade", Label: "Distant color fade", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		core.ParameterControl{Key: "distant_depth_fade", Label: "Distant depth fade", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
	)
	return controls
}

// SetIntParameter updates an integer noise parameter and schedules the tier
// for regeneration.
func (w *World) SetIntParameter(key string, value int) bool {
	t, p, field, ok := w.splitTierKey(key)
	if !ok || field != "octaves" || value < 1 {
		return false
	}
	p.Octaves = value
	w.TriggerRegeneration(t)
	return true
}

// SetFloatParameter updates a float noise or placement parameter. Noise
// changes schedule the tier for regeneration; color fade recolors the
// distant tier on its next regeneration.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "distant_z":
		w.cfg.Placement.Z = float32(value)
		return true
	case "distant_y_offset":
		w.cfg.Placement.YOffset = float32(value)
		return true
	case "distant_color_fade":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Placement.ColorFade = float32(value)
		w.TriggerRegeneration(core.Distant)
		return true
	case "distant_depth_fade":
		if value < 0 || value > 1 {
			return false
		}
		w.cfg.Placement.DepthFade = float32(value)
		return true
	}

	t, p, field, ok := w.splitTierKey(key)
	if !ok {
		return false
	}
	switch field {
	case "frequency":
		if value <= 0 {
			return false
		}
		p.Frequency = value
	case "persistence":
		if value <= 0 {
			return false
		}
		p.Persistence = value
	case "lacunarity":
		if value <= 0 {
			return false
		}
		p.Lacunarity = value
	case "base":
		p.Base = float32(value)
	case "min":
		if value < 0 || float32(value) > p.Max {
			return false
		}
		p.Min = float32(value)
	case "max":
		if float32(value) < p.Min {
			return false
		}
		p.Max = float32(value)
	default:
		return false
	}
	w.TriggerRegeneration(t)
	return true
}

func (w *World) splitTierKey(key string) (core.TerrainTier, *TierParams, string, bool) {
	prefix, field, ok := strings.Cut(key, "_")
	if !ok {
		return 0, nil, "", false
	}
	switch prefix {
	case "bottom":
		return core.Bottom, &w.cfg.Bottom, field, true
	case "distant":
		return core.Distant, &w.cfg.Distant, field, true
	}
	return 0, nil, "", false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
