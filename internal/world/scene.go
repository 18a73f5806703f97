package world

import (
	"nightsky/internal/core"

	"github.com/go-gl/mathgl/mgl32"
)

// TerrainPalette colors terrain from its lowest to its highest point.
type TerrainPalette struct {
	Low  mgl32.Vec3
	High mgl32.Vec3
}

var palettes = map[core.Scene]TerrainPalette{
	core.Summer: {Low: mgl32.Vec3{0.5, 0.35, 0.15}, High: mgl32.Vec3{0.2, 0.5, 0.2}},
	core.Fall:   {Low: mgl32.Vec3{0.472, 0.431, 0.345}, High: mgl32.Vec3{0.618, 0.413, 0.193}},
	core.Winter: {Low: mgl32.Vec3{0.3, 0.3, 0.3}, High: mgl32.Vec3{0.9, 0.9, 1}},
	core.Spring: {Low: mgl32.Vec3{0.4, 0.348, 0.242}, High: mgl32.Vec3{0.332, 0.363, 0.211}},
	core.Alien:  {Low: mgl32.Vec3{0.4, 0.1, 0.4}, High: mgl32.Vec3{0.1, 0.5, 0.5}},
}

// PaletteFor returns the terrain palette of scene, falling back to summer.
func PaletteFor(scene core.Scene) TerrainPalette {
	if p, ok := palettes[scene]; ok {
		return p
	}
	return palettes[core.Summer]
}

// Faded darkens both ends of the palette by fade, which is clamped to [0, 1].
func (p TerrainPalette) Faded(fade float32) TerrainPalette {
	k := 1 - mgl32.Clamp(fade, 0, 1)
	return TerrainPalette{Low: p.Low.Mul(k), High: p.High.Mul(k)}
}
