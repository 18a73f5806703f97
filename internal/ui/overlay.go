//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"nightsky/internal/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type boundaryProvider interface {
	Boundary() *physics.Boundary
}

type skylineProvider interface {
	SkylineAt(x float32) (float32, bool)
}

// Overlay draws the hotkey help and optional debugging visuals on top of the
// scene.
type Overlay struct {
	source       any
	showHelp     bool
	showBoundary bool
	showSkyline  bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(source any) *Overlay {
	o := &Overlay{source: source}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBoundary = !o.showBoundary
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSkyline = !o.showSkyline
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	h := screen.Bounds().Dy()
	if o.showBoundary {
		if provider, ok := o.source.(boundaryProvider); ok {
			o.drawBoundary(screen, provider.Boundary().Chain().Points(), h)
		}
	}
	if o.showSkyline {
		if provider, ok := o.source.(skylineProvider); ok {
			o.drawSkyline(screen, provider, screen.Bounds().Dx(), h)
		}
	}
	if o.showHelp {
		o.drawHelp(screen)
	}
}

func (o *Overlay) drawBoundary(screen *ebiten.Image, points []physics.Point, h int) {
	pts := boundaryScreenPoints(points, h)
	col := color.RGBA{R: 255, G: 120, B: 40, A: 230}
	for i := 1; i < len(pts); i++ {
		o.drawLine(screen, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 2, col)
	}
	for _, p := range pts {
		o.drawPoint(screen, p.X, p.Y, 4, col)
	}
}

func (o *Overlay) drawSkyline(screen *ebiten.Image, provider skylineProvider, w, h int) {
	pts := skylineScreenPoints(provider.SkylineAt, w, h, skylineStep)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a == nil || b == nil {
			continue
		}
		o.drawLine(screen, a.X, a.Y, b.X, b.Y, 1, heightColor(b.Y, h))
	}
}

func (o *Overlay) drawHelp(screen *ebiten.Image) {
	lines := HelpLines()
	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		width = max(width, text.BoundString(face, line).Dx())
	}
	boxW := float64(width + 2*panelPadding)
	boxH := float64(len(lines)*statusLineHeight + 2*panelPadding)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(boxW, boxH)
	op.GeoM.Translate(panelPadding, panelPadding)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(o.pixel, op)
	y := 2*panelPadding + headerBaseline/2
	for _, line := range lines {
		text.Draw(screen, line, face, 2*panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += statusLineHeight
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

const skylineStep = 8
