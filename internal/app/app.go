//go:build ebiten

package app

import (
	"nightsky/internal/core"
	"nightsky/internal/logging"
	"nightsky/internal/render"
	"nightsky/internal/ui"
	"nightsky/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 300

var timeKeys = map[ebiten.Key]core.TimeOfDay{
	ebiten.KeyF4: core.Dawn,
	ebiten.KeyF5: core.MidDay,
	ebiten.KeyF6: core.Dusk,
	ebiten.KeyF7: core.Night,
}

var sceneKeys = map[ebiten.Key]core.Scene{
	ebiten.KeyF8:  core.Fall,
	ebiten.KeyF9:  core.Spring,
	ebiten.KeyF10: core.Summer,
	ebiten.KeyF11: core.Winter,
	ebiten.KeyA:   core.Alien,
}

// Game adapts a world to the ebiten.Game interface.
type Game struct {
	world    *world.World
	renderer *render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay
	clock    *core.FrameClock
	log      logging.Logger

	showHUD bool
}

// New constructs a Game drawing wd with textures from cfg.Textures.
func New(wd *world.World, cfg *Config, log logging.Logger) *Game {
	log = logging.OrNoop(log)
	return &Game{
		world:    wd,
		renderer: render.NewRenderer(cfg.Textures, log),
		hud:      ui.NewHUD(wd, hudTitle(wd.Scene()), hudWidth),
		overlay:  ui.NewOverlay(wd),
		clock:    core.NewFrameClock(core.MaxFrameDelta),
		log:      log,
		showHUD:  cfg.HUD,
	}
}

// Update handles hotkeys and mouse input, then advances the world by the
// capped frame delta.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.overlay.Update()

	consumed := false
	if g.showHUD {
		consumed = g.hud.Update(core.WindowWidth - g.hud.Width())
	}
	if !consumed {
		g.handleMouse()
	}

	g.world.Update(g.clock.Tick())
	return nil
}

func (g *Game) handleKeys() {
	c := g.world.Celestial()
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		c.ToggleConstellationNames()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		c.TogglePlanetNames()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		c.ToggleSatelliteNames()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		c.ToggleNativeNames()
	}
	for key, tod := range timeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.world.SetTimeOfDay(tod)
		}
	}
	for key, scene := range sceneKeys {
		if inpututil.IsKeyJustPressed(key) && g.world.SetScene(scene) {
			g.hud.SetTitle(hudTitle(scene))
			g.log.Info("scene changed", logging.String("scene", scene.String()))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.world.TriggerRegeneration(core.Bottom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.world.TriggerRegeneration(core.Distant)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
}

func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || mx >= core.WindowWidth || my < 0 || my >= core.WindowHeight {
		return
	}
	g.world.DeformAtScreen(float32(mx), left)
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	g.overlay.Draw(screen)
	if g.showHUD {
		g.hud.Draw(screen, core.WindowWidth-g.hud.Width())
	}
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.WindowWidth, core.WindowHeight
}

func hudTitle(scene core.Scene) string {
	return scene.Title() + " Controls"
}
