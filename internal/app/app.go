//go:build ebiten

// Package app adapts the animation engine to the ebiten.Game interface and
// wires keyboard input to the engine's lifecycle contract.
package app

import (
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mrhappynice/mhn-garbage-pages/internal/config"
	"github.com/mrhappynice/mhn-garbage-pages/internal/core"
	"github.com/mrhappynice/mhn-garbage-pages/internal/engine"
	"github.com/mrhappynice/mhn-garbage-pages/internal/render"
	"github.com/mrhappynice/mhn-garbage-pages/internal/ui"
)

var fieldKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Game owns the current engine handle and swaps it wholesale when the user
// switches fields, exercising the destroy/create lifecycle.
type Game struct {
	cfg   *config.Config
	order []string
	name  string

	surface *render.Surface
	eng     *engine.Engine
	hud     *ui.HUD

	vp core.Viewport
}

// New constructs a Game starting on the requested field. The engine is
// created with a zero viewport and defers rendering until the first Layout
// reports a real size.
func New(cfg *config.Config, field string) *Game {
	order := make([]string, 0, len(core.Fields()))
	for name := range core.Fields() {
		order = append(order, name)
	}
	sort.Strings(order)

	g := &Game{
		cfg:     cfg,
		order:   order,
		surface: render.NewSurface(),
		hud:     ui.NewHUD(),
	}
	g.start(field)
	return g
}

// start replaces the current engine with a fresh one for the named field.
func (g *Game) start(name string) {
	factory, ok := core.Fields()[name]
	if !ok {
		name = g.order[0]
		factory = core.Fields()[name]
	}
	if g.eng != nil {
		g.eng.Destroy()
	}
	preset := g.cfg.Preset(name)
	params := core.Params{
		Speed:    preset.Speed,
		Density:  preset.Density,
		Zoom:     preset.Zoom,
		ZoomAuto: preset.ZoomAuto,
		Running:  true,
	}
	g.name = name
	g.eng = engine.New(g.surface, factory(nil), g.vp, params, g.hud.Observe)

	applied := g.eng.Params()
	g.hud.Observe(core.Stats{Speed: applied.Speed, Zoom: applied.Zoom})
}

// Update handles input and runs one engine frame into the offscreen
// surface.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.eng.State().Running {
			g.eng.Pause()
		} else {
			g.eng.Play()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		auto := !g.eng.Params().ZoomAuto
		g.eng.SetParams(core.Patch{ZoomAuto: &auto})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	for i, key := range fieldKeys {
		if i < len(g.order) && inpututil.IsKeyJustPressed(key) {
			g.start(g.order[i])
		}
	}
	g.adjustParams()

	g.eng.Frame(time.Now())
	return nil
}

// adjustParams applies the keyboard parameter nudges.
func (g *Game) adjustParams() {
	p := g.eng.Params()
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		v := p.Speed * 1.1
		g.eng.SetParams(core.Patch{Speed: &v})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		v := p.Speed / 1.1
		g.eng.SetParams(core.Patch{Speed: &v})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		v := p.Zoom + 0.1
		g.eng.SetParams(core.Patch{Zoom: &v})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		v := p.Zoom - 0.1
		g.eng.SetParams(core.Patch{Zoom: &v})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v := p.Density * 1.25
		g.eng.SetParams(core.Patch{Density: &v})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v := p.Density * 0.8
		g.eng.SetParams(core.Patch{Density: &v})
	}
}

// Draw blits the offscreen surface and the HUD to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if img := g.surface.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	g.hud.Draw(screen, g.name, !g.eng.State().Running)
}

// Layout sizes the backing surface in physical pixels and notifies the
// engine of viewport changes in CSS pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.DeviceScaleFactor()
	pw := int(float64(outsideWidth) * dpr)
	ph := int(float64(outsideHeight) * dpr)
	g.surface.Ensure(pw, ph, dpr)

	vp := core.Viewport{W: float64(outsideWidth), H: float64(outsideHeight), DPR: dpr}
	if vp != g.vp {
		g.vp = vp
		g.eng.Resize(vp)
	}
	return pw, ph
}
