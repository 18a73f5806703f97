// Package sky implements the time-of-day state machine that drives sky
// colors, light color, the sun/moon track and night-time star alpha.
package sky

import (
	"nightsky/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// TransitionDuration is the length of a time-of-day change in seconds.
const TransitionDuration = 1.0

// NightAlphaFloor is the lowest star alpha shown while the night is active.
const NightAlphaFloor = 0.5

// Palette holds the fixed targets for one time of day.
type Palette struct {
	Top     mgl32.Vec3
	Bottom  mgl32.Vec3
	Light   mgl32.Vec3
	SunMoon float32
}

// Palettes lists the targets per time of day.
var Palettes = map[core.TimeOfDay]Palette{
	core.Dawn: {
		Top:     mgl32.Vec3{0.8, 0.5, 0.4},
		Bottom:  mgl32.Vec3{1.0, 0.8, 0.7},
		Light:   mgl32.Vec3{0.9, 0.8, 0.7},
		SunMoon: 0.1,
	},
	core.MidDay: {
		Top:     mgl32.Vec3{0.2, 0.4, 0.8},
		Bottom:  mgl32.Vec3{0.5, 0.7, 1.0},
		Light:   mgl32.Vec3{1.0, 1.0, 0.95},
		SunMoon: 0.5,
	},
	core.Dusk: {
		Top:     mgl32.Vec3{0.7, 0.4, 0.3},
		Bottom:  mgl32.Vec3{0.9, 0.6, 0.5},
		Light:   mgl32.Vec3{0.8, 0.7, 0.6},
		SunMoon: 0.1,
	},
	core.Night: {
		Top:     mgl32.Vec3{0.0, 0.0, 0.1},
		Bottom:  mgl32.Vec3{0.0, 0.0, 0.2},
		Light:   mgl32.Vec3{0.3, 0.3, 0.5},
		SunMoon: 0.5,
	},
}

// State is a read-only view of the engine.
type State struct {
	Current       core.TimeOfDay
	Target        core.TimeOfDay
	Transitioning bool
	Progress      float32
	ImmediateFade bool

	Top     mgl32.Vec3
	Bottom  mgl32.Vec3
	Light   mgl32.Vec3
	SunMoon float32
}

// Engine interpolates toward the palette of the requested time of day.
type Engine struct {
	current       core.TimeOfDay
	target        core.TimeOfDay
	transitioning bool
	elapsed       float32
	progress      float32
	immediateFade bool

	top, bottom mgl32.Vec3
	light       mgl32.Vec3
	sunMoon     float32

	targetPalette Palette
}

// NewEngine starts at midday with white light.
func NewEngine() *Engine {
	mid := Palettes[core.MidDay]
	return &Engine{
		current:       core.MidDay,
		target:        core.MidDay,
		top:           mid.Top,
		bottom:        mid.Bottom,
		light:         mgl32.Vec3{1, 1, 1},
		sunMoon:       mid.SunMoon,
		targetPalette: Palette{Top: mid.Top, Bottom: mid.Bottom, Light: mgl32.Vec3{1, 1, 1}, SunMoon: mid.SunMoon},
	}
}

// SetTimeOfDay starts a transition toward tod. It returns false when tod is
// already the active state and nothing changed. Leaving the night for any
// other state raises the immediate-fade flag and resets progress; entering
// the night clears the flag and resets progress.
func (e *Engine) SetTimeOfDay(tod core.TimeOfDay) bool {
	if tod == e.current && (!e.transitioning || tod == e.target) {
		return false
	}
	e.transitioning = true
	e.elapsed = 0
	e.target = tod

	switch {
	case e.current == core.Night && tod != core.Night:
		e.immediateFade = true
		e.progress = 0
	case tod == core.Night:
		e.immediateFade = false
		e.progress = 0
	default:
		e.immediateFade = false
	}
	e.targetPalette = Palettes[tod]
	return true
}

// Advance moves the transition clock forward by dt and blends every channel
// toward its target by min(elapsed/duration, 1).
func (e *Engine) Advance(dt float32) {
	if !e.transitioning {
		return
	}
	e.elapsed += dt
	t := e.elapsed / TransitionDuration
	if t > 1 {
		t = 1
	}
	e.top = mix(e.top, e.targetPalette.Top, t)
	e.bottom = mix(e.bottom, e.targetPalette.Bottom, t)
	e.light = mix(e.light, e.targetPalette.Light, t)
	e.sunMoon += (e.targetPalette.SunMoon - e.sunMoon) * t
	e.progress = t

	if t >= 1 {
		e.top, e.bottom, e.light = e.targetPalette.Top, e.targetPalette.Bottom, e.targetPalette.Light
		e.sunMoon = e.targetPalette.SunMoon
		e.transitioning = false
		e.elapsed = 0
		e.current = e.target
		e.progress = 1
	}
}

// StarAlpha returns the night-sky visibility: zero outside the night, zero
// during an immediate fade, otherwise the transition progress floored at
// NightAlphaFloor.
func (e *Engine) StarAlpha() float32 {
	if e.current != core.Night || e.immediateFade {
		return 0
	}
	alpha := e.progress
	if alpha < NightAlphaFloor {
		alpha = NightAlphaFloor
	}
	return alpha
}

// Current returns the committed time of day.
func (e *Engine) Current() core.TimeOfDay { return e.current }

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return State{
		Current:       e.current,
		Target:        e.target,
		Transitioning: e.transitioning,
		Progress:      e.progress,
		ImmediateFade: e.immediateFade,
		Top:           e.top,
		Bottom:        e.bottom,
		Light:         e.light,
		SunMoon:       e.sunMoon,
	}
}

func mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
