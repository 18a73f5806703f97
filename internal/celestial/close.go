package celestial

import (
	"fmt"
	"math"

	"nightsky/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags the close celestial bodies.
type Kind int

const (
	Sun Kind = iota
	Moon
	AlienPlanet
)

func (k Kind) String() string {
	switch k {
	case Sun:
		return "sun"
	case Moon:
		return "moon"
	case AlienPlanet:
		return "planet"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TextureKey identifies a texture in the renderer's cache.
type TextureKey string

const (
	SunTexture    TextureKey = "textures/sun.png"
	MoonTexture   TextureKey = "textures/moon.png"
	PlanetTexture TextureKey = "textures/alien_planet.png"
)

const (
	sunOpacity = 0.04
	minOpacity = 0.01
)

// CloseCelestial is a large textured body whose position follows the time
// of day.
type CloseCelestial struct {
	Name       string
	Kind       Kind
	Pos        mgl32.Vec2
	Size       float32
	Tint       mgl32.Vec3
	Rotation   float32
	Brightness float32
	Texture    TextureKey
}

func closeCelestials(scene core.Scene) []CloseCelestial {
	moonTint := mgl32.Vec3{1, 1, 1}
	var moonRotation float32
	if scene.IsAlien() {
		moonTint = mgl32.Vec3{0.8, 0.7, 0.9}
		moonRotation = mgl32.DegToRad(90)
	}
	bodies := []CloseCelestial{
		{Name: "SUN", Kind: Sun, Pos: mgl32.Vec2{0.5, 0.8}, Size: 100, Tint: mgl32.Vec3{1, 0.9, 0.7}, Brightness: 1, Texture: SunTexture},
		{Name: "MOON", Kind: Moon, Pos: mgl32.Vec2{0.5, 0.8}, Size: 100, Tint: moonTint, Rotation: moonRotation, Brightness: 1, Texture: MoonTexture},
	}
	if scene.IsAlien() {
		bodies = append(bodies, CloseCelestial{
			Name: "QO'NOS", Kind: AlienPlanet, Pos: mgl32.Vec2{0.85, 0.8}, Size: 60,
			Tint: mgl32.Vec3{0.8, 0.7, 0.9}, Brightness: 0.5, Texture: PlanetTexture,
		})
	}
	return bodies
}

// TimeFactor maps a time of day onto the sun's track: 0 at dawn, 0.5 at
// midday and night, 1 at dusk.
func TimeFactor(tod core.TimeOfDay) float32 {
	switch tod {
	case core.Dawn:
		return 0
	case core.Dusk:
		return 1
	default:
		return 0.5
	}
}

func arc(tf float32) float32 {
	return 0.5 + 0.4*float32(math.Sin(float64(mgl32.DegToRad(tf*180))))
}

// place moves the body along its track for the given factor and time of day.
func (c *CloseCelestial) place(tf float32, tod core.TimeOfDay) {
	switch c.Kind {
	case Sun:
		c.Pos = mgl32.Vec2{0.2 + tf*0.6, arc(tf)}
	case Moon:
		if tod == core.Night {
			tf = 0.5
		}
		c.Pos = mgl32.Vec2{0.1 + tf*0.2, arc(tf)}
	case AlienPlanet:
		c.Pos = mgl32.Vec2{0.2 + tf*0.1, 0.8 - tf*0.1}
	}
}

// Opacity returns how strongly the body is drawn. Bodies below the minimum
// opacity are not drawn at all.
func (c CloseCelestial) Opacity(tod core.TimeOfDay, starAlpha float32) (float32, bool) {
	var opacity float32
	switch c.Kind {
	case Sun:
		if tod == core.Night {
			return 0, false
		}
		opacity = sunOpacity
	case Moon, AlienPlanet:
		switch tod {
		case core.Night:
			opacity = starAlpha
		case core.Dusk:
			opacity = starAlpha * 0.5
		default:
			return 0, false
		}
	}
	if opacity < minOpacity {
		return 0, false
	}
	return opacity, true
}

// DrawScale returns the on-screen edge length in pixels.
func (c CloseCelestial) DrawScale() float32 {
	if c.Kind == AlienPlanet {
		return c.Size * 0.5
	}
	return c.Size
}
