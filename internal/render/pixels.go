package render

import (
	"image/color"

	"nightsky/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// toRGBA converts a [0,1] color and alpha into premultiplied 8-bit RGBA.
func toRGBA(c mgl32.Vec3, alpha float32) color.RGBA {
	a := mgl32.Clamp(alpha, 0, 1)
	to8 := func(v float32) uint8 { return uint8(mgl32.Clamp(v, 0, 1)*a*255 + 0.5) }
	return color.RGBA{R: to8(c.X()), G: to8(c.Y()), B: to8(c.Z()), A: uint8(a*255 + 0.5)}
}

// fillGradientRGBA paints a vertical gradient from top (row 0) to bottom
// (row h-1) into a w*h RGBA buffer.
func fillGradientRGBA(buf []byte, w, h int, top, bottom mgl32.Vec3) {
	for y := 0; y < h; y++ {
		var f float32
		if h > 1 {
			f = float32(y) / float32(h-1)
		}
		col := toRGBA(top.Add(bottom.Sub(top).Mul(f)), 1)
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// fillSilhouetteRGBA paints a terrain silhouette into a w*h RGBA buffer.
// skyline holds one height per sampled column in pixels above the bottom
// edge; columns are stretched across the buffer by nearest index and
// NoTerrain columns stay empty. Pixels under the skyline blend low (bottom)
// to high (at the crest); everything else is cleared to transparent.
func fillSilhouetteRGBA(buf []byte, w, h int, skyline []float32, low, high mgl32.Vec3, alpha float32) {
	for i := range buf[:w*h*4] {
		buf[i] = 0
	}
	if len(skyline) == 0 {
		return
	}
	for x := 0; x < w; x++ {
		idx := 0
		if w > 1 {
			idx = x * (len(skyline) - 1) / (w - 1)
		}
		crest := skyline[idx]
		if crest <= 0 || crest == terrain.NoTerrain {
			continue
		}
		crest = min(crest, float32(h))
		top := h - int(crest)
		for y := top; y < h; y++ {
			f := float32(h-y) / crest
			col := toRGBA(low.Add(high.Sub(low).Mul(f)), alpha)
			base := (y*w + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// screenPoint maps a normalized sky position (y up) onto window pixels
// (y down).
func screenPoint(x, y float32, w, h int) (float32, float32) {
	return x * float32(w), (1 - y) * float32(h)
}
