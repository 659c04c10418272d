//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"sandbox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

type materialNamer interface {
	MaterialName(m uint8) string
}

// Overlay draws the brush preview and the brush readouts on top of the grid.
type Overlay struct {
	sim   core.Sim
	scale int

	showPreview bool
	cursorX     int
	cursorY     int
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{sim: sim, scale: scale, showPreview: true}
}

// Update tracks the cursor and toggles the preview with B.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showPreview = !o.showPreview
	}
	o.cursorX, o.cursorY = ebiten.CursorPosition()
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	painter, ok := o.sim.(core.Painter)
	if !ok {
		return
	}
	tint := o.materialColor(painter.PaintMaterial())

	if o.showPreview {
		o.drawBrush(screen, painter.BrushRadius(), tint)
	}
	o.drawReadout(screen, painter, tint)
}

func (o *Overlay) drawBrush(screen *ebiten.Image, radius int, tint color.RGBA) {
	size := o.sim.Size()
	if o.cursorX < 0 || o.cursorY < 0 || o.cursorX >= size.W*o.scale || o.cursorY >= size.H*o.scale {
		return
	}
	cx, cy := float32(o.cursorX), float32(o.cursorY)
	r := float32(radius * o.scale)
	fill := color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: 60}
	vector.DrawFilledCircle(screen, cx, cy, r, premultiply(fill), true)
	vector.StrokeCircle(screen, cx, cy, r, 1, premultiply(color.RGBA{R: 255, G: 255, B: 255, A: 200}), true)
	vector.StrokeCircle(screen, cx, cy, r+1, 1, premultiply(color.RGBA{A: 200}), true)
}

func (o *Overlay) drawReadout(screen *ebiten.Image, painter core.Painter, tint color.RGBA) {
	const (
		boxX = 10
		boxY = 10
		boxW = 110
		boxH = 46
	)
	vector.DrawFilledRect(screen, boxX, boxY, boxW, boxH, color.RGBA{A: 180}, false)
	vector.StrokeRect(screen, boxX, boxY, boxW, boxH, 1, color.White, false)

	face := basicfont.Face7x13
	text.Draw(screen, "r "+strconv.Itoa(painter.BrushRadius()), face, boxX+8, boxY+18, color.White)

	swatch := color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: 255}
	vector.DrawFilledRect(screen, boxX+8, boxY+25, 15, 15, swatch, false)
	name := strconv.Itoa(int(painter.PaintMaterial()))
	if namer, ok := o.sim.(materialNamer); ok {
		name = namer.MaterialName(painter.PaintMaterial())
	}
	text.Draw(screen, name, face, boxX+30, boxY+37, color.White)
}

func (o *Overlay) materialColor(m uint8) color.RGBA {
	if p, ok := o.sim.(core.Palette); ok {
		palette := p.Palette()
		if int(m) < len(palette) {
			return palette[m]
		}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
