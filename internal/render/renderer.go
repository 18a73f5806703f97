//go:build ebiten

package render

import (
	"image/color"
	_ "image/png"
	"path/filepath"

	"nightsky/internal/celestial"
	"nightsky/internal/core"
	"nightsky/internal/logging"
	"nightsky/internal/terrain"
	"nightsky/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Renderer draws a world into a window-sized image: sky gradient, close
// celestials, night sky points and trails, both terrain silhouettes and the
// celestial labels.
type Renderer struct {
	w, h int

	sky    *ebiten.Image
	skyBuf []byte

	bottom, distant *ebiten.Image
	terrainBuf      []byte

	textures *TextureCache[*ebiten.Image]
}

// NewRenderer allocates the layer images. Textures are loaded lazily from
// dir; a missing file only hides the body that uses it.
func NewRenderer(dir string, log logging.Logger) *Renderer {
	w, h := core.WindowWidth, core.WindowHeight
	r := &Renderer{
		w:          w,
		h:          h,
		sky:        ebiten.NewImage(1, h),
		skyBuf:     make([]byte, 4*h),
		bottom:     ebiten.NewImage(w, h),
		distant:    ebiten.NewImage(w, h),
		terrainBuf: make([]byte, 4*w*h),
	}
	r.textures = NewTextureCache(func(key celestial.TextureKey) (*ebiten.Image, error) {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, string(key)))
		return img, err
	}, log)
	return r
}

// Draw paints the full frame.
func (r *Renderer) Draw(screen *ebiten.Image, wd *world.World) {
	state := wd.Sky().State()
	starAlpha := wd.StarAlpha()
	c := wd.Celestial()

	r.drawSky(screen, state.Top, state.Bottom)
	r.drawCloseCelestials(screen, c.CloseCelestials(), wd.TimeOfDay(), starAlpha)
	r.drawLines(screen, c.Lines(starAlpha))
	r.drawPoints(screen, c.Points(starAlpha))

	placement := wd.Placement()
	distant := wd.Palette().Faded(placement.ColorFade)
	r.drawTerrain(screen, r.distant, wd.Distant(), placement.YOffset, distant, state.Light, 1-placement.DepthFade)
	r.drawTerrain(screen, r.bottom, wd.Bottom(), 0, wd.Palette(), state.Light, 1)

	r.drawLabels(screen, wd.Labels())
}

func (r *Renderer) drawSky(screen *ebiten.Image, top, bottom mgl32.Vec3) {
	fillGradientRGBA(r.skyBuf, 1, r.h, top, bottom)
	r.sky.WritePixels(r.skyBuf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.w), 1)
	screen.DrawImage(r.sky, op)
}

func (r *Renderer) drawTerrain(screen, layer *ebiten.Image, t *terrain.Terrain, yOffset float32, p world.TerrainPalette, light mgl32.Vec3, alpha float32) {
	skyline := t.Heightmap(r.w)
	if yOffset != 0 {
		for i, h := range skyline {
			if h != terrain.NoTerrain {
				skyline[i] = h + yOffset
			}
		}
	}
	low := mgl32.Vec3{p.Low.X() * light.X(), p.Low.Y() * light.Y(), p.Low.Z() * light.Z()}
	high := mgl32.Vec3{p.High.X() * light.X(), p.High.Y() * light.Y(), p.High.Z() * light.Z()}
	fillSilhouetteRGBA(r.terrainBuf, r.w, r.h, skyline, low, high, alpha)
	layer.WritePixels(r.terrainBuf)
	screen.DrawImage(layer, nil)
}

func (r *Renderer) drawCloseCelestials(screen *ebiten.Image, bodies []celestial.CloseCelestial, tod core.TimeOfDay, starAlpha float32) {
	for _, body := range bodies {
		opacity, ok := body.Opacity(tod, starAlpha)
		if !ok {
			continue
		}
		tex, ok := r.textures.Get(body.Texture)
		if !ok {
			continue
		}
		b := tex.Bounds()
		size := float64(body.DrawScale())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
		op.GeoM.Rotate(float64(body.Rotation))
		x, y := screenPoint(body.Pos.X(), body.Pos.Y(), r.w, r.h)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.Scale(body.Tint.X(), body.Tint.Y(), body.Tint.Z(), 1)
		op.ColorScale.ScaleAlpha(opacity * body.Brightness)
		screen.DrawImage(tex, op)
	}
}

func (r *Renderer) drawPoints(screen *ebiten.Image, points []celestial.PointVertex) {
	for _, p := range points {
		x, y := screenPoint(p.X, p.Y, r.w, r.h)
		col := toRGBA(mgl32.Vec3{p.R, p.G, p.B}, p.Brightness)
		vector.DrawFilledCircle(screen, x, y, p.Size/2, col, true)
	}
}

func (r *Renderer) drawLines(screen *ebiten.Image, lines []celestial.LineVertex) {
	for i := 0; i+1 < len(lines); i += 2 {
		a, b := lines[i], lines[i+1]
		x0, y0 := screenPoint(a.X, a.Y, r.w, r.h)
		x1, y1 := screenPoint(b.X, b.Y, r.w, r.h)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, toRGBA(mgl32.Vec3{a.R, a.G, a.B}, a.Alpha), true)
	}
}

func (r *Renderer) drawLabels(screen *ebiten.Image, labels []celestial.Label) {
	face := basicfont.Face7x13
	for _, l := range labels {
		col := toRGBA(l.Color, 1)
		if l.Native {
			// No native glyphs ship with the binary; tint instead.
			col = color.RGBA{R: col.R, G: col.G / 2, B: col.B, A: col.A}
		}
		text.Draw(screen, l.Text, face, int(l.X), r.h-int(l.Y), col)
	}
}
