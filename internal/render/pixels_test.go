package render

import (
	"errors"
	"image/color"
	"testing"

	"nightsky/internal/celestial"
	"nightsky/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

func pixelAt(buf []byte, w, x, y int) color.RGBA {
	base := (y*w + x) * 4
	return color.RGBA{R: buf[base], G: buf[base+1], B: buf[base+2], A: buf[base+3]}
}

func TestToRGBAClamps(t *testing.T) {
	got := toRGBA(mgl32.Vec3{-1, 0.5, 2}, 1)
	if got != (color.RGBA{R: 0, G: 128, B: 255, A: 255}) {
		t.Fatalf("toRGBA = %v", got)
	}
}

func TestFillGradientRGBA(t *testing.T) {
	const w, h = 3, 5
	buf := make([]byte, w*h*4)
	fillGradientRGBA(buf, w, h, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0})
	if got := pixelAt(buf, w, 1, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("top row = %v", got)
	}
	if got := pixelAt(buf, w, 2, h-1); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("bottom row = %v", got)
	}
	mid := pixelAt(buf, w, 0, 2)
	if mid.R != 128 || mid.B != 128 {
		t.Fatalf("middle row = %v", mid)
	}
}

func TestFillSilhouetteRGBA(t *testing.T) {
	const w, h = 4, 10
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 0xff
	}
	skyline := []float32{5, terrain.NoTerrain, 20, 0}
	fillSilhouetteRGBA(buf, w, h, skyline, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, 1)

	if got := pixelAt(buf, w, 0, 4); got.A != 0 {
		t.Fatalf("pixel above a 5px crest is painted: %v", got)
	}
	if got := pixelAt(buf, w, 0, 5); got.A != 255 || got.R != 255 {
		t.Fatalf("crest pixel = %v, want the high color", got)
	}
	for y := 0; y < h; y++ {
		if pixelAt(buf, w, 1, y).A != 0 || pixelAt(buf, w, 3, y).A != 0 {
			t.Fatalf("empty column painted at row %d", y)
		}
		if pixelAt(buf, w, 2, y).A != 255 {
			t.Fatalf("crest above the buffer should fill column 2, row %d empty", y)
		}
	}
}

func TestScreenPointFlipsY(t *testing.T) {
	x, y := screenPoint(0.25, 1, 100, 50)
	if x != 25 || y != 0 {
		t.Fatalf("screenPoint = %v,%v", x, y)
	}
}

func TestTextureCacheLoadsOnceAndRemembersFailures(t *testing.T) {
	calls := map[celestial.TextureKey]int{}
	cache := NewTextureCache(func(key celestial.TextureKey) (string, error) {
		calls[key]++
		if key == celestial.PlanetTexture {
			return "", errors.New("missing")
		}
		return string(key), nil
	}, nil)

	for i := 0; i < 3; i++ {
		if tex, ok := cache.Get(celestial.SunTexture); !ok || tex != string(celestial.SunTexture) {
			t.Fatalf("Get(sun) = %q, %v", tex, ok)
		}
		if _, ok := cache.Get(celestial.PlanetTexture); ok {
			t.Fatal("failed texture reported as loaded")
		}
	}
	if calls[celestial.SunTexture] != 1 || calls[celestial.PlanetTexture] != 1 {
		t.Fatalf("loader calls = %v, want one per key", calls)
	}
	if cache.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cache.Len())
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	got := toRGBA(mgl32.Vec3{1, 0.5, 0}, 0.5)
	if got.A != 128 || got.R != 128 || got.G != 64 || got.B != 0 {
		t.Fatalf("toRGBA = %v", got)
	}
}
