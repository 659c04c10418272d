//go:build ebiten

package app

import (
	"image/color"
	"time"

	"sandbox/internal/core"
	"sandbox/internal/render"
	"sandbox/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type framePacer interface {
	StepsPerFrame() int
}

var fallbackPalette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}

// Game adapts a core simulation to the ebiten.Game interface. Each frame runs
// input handling, then painting, then the simulation ticks, then drawing.
type Game struct {
	sim     core.Sim
	brush   core.Painter
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		palette: fallbackPalette,
		scale:   scale,
		seed:    seed,
	}
	if hudWidth > 0 {
		g.hud = ui.NewHUD(sim, hudWidth)
	}
	if p, ok := sim.(core.Painter); ok {
		g.brush = p
	}
	if p, ok := sim.(core.Palette); ok {
		g.palette = p.Palette()
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	onPanel := g.hud.Update(g.sim.Size().W * g.scale)

	if g.brush != nil {
		g.handleBrushKeys()
		if !onPanel {
			g.handlePainting()
		}
	}

	if !g.paused || g.tickOnce {
		steps := 1
		if p, ok := g.sim.(framePacer); ok && !g.tickOnce {
			steps = p.StepsPerFrame()
		}
		for i := 0; i < steps; i++ {
			g.sim.Step()
		}
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handleBrushKeys() {
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.brush.SetPaintMaterial(materialKeys[i])
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.brush.SetBrushRadius(g.brush.BrushRadius() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.brush.SetBrushRadius(g.brush.BrushRadius() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.brush.Clear()
	}
}

func (g *Game) handlePainting() {
	mx, my := ebiten.CursorPosition()
	x, y := CursorToCell(mx, my, g.scale)
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.brush.Paint(x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.brush.Erase(x, y)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
