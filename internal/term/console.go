package term

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"sandbox/internal/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	viewHeader = "header"
	viewStatus = "status"
	viewField  = "field"
	viewHelp   = "help"

	leftColumnWidth = 28
	maxCatchUp      = 4
)

type framePacer interface {
	StepsPerFrame() int
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is an interactive terminal sandbox. Every sim access happens on the
// gocui main loop, so painting and ticking never overlap.
type Console struct {
	sim    core.Sim
	brush  core.Painter
	r      *Renderer
	g      *gocui.Gui
	k      []keyBinding
	tps    int
	seed   int64
	paused bool
	done   chan struct{}
}

// NewConsole prepares a console for sim ticking at tps frames per second.
// The terminal is not touched until Start.
func NewConsole(sim core.Sim, tps int, seed int64) *Console {
	c := &Console{
		sim:  sim,
		r:    NewRenderer(DefaultGlyphs, true),
		tps:  tps,
		seed: seed,
		done: make(chan struct{}),
	}
	if p, ok := sim.(core.Painter); ok {
		c.brush = p
	}
	c.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", c.cmdTogglePause, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'r', "R", "Reset", c.cmdReset, ""},
		{'1', "1", "Sand", c.cmdMaterial(1), ""},
		{'2', "2", "Water", c.cmdMaterial(2), ""},
		{'3', "3", "Wall", c.cmdMaterial(3), ""},
		{'4', "4", "Eraser", c.cmdMaterial(0), ""},
		{'+', "+", "Grow brush", c.cmdRadius(1), ""},
		{'-', "-", "Shrink brush", c.cmdRadius(-1), ""},
		{gocui.MouseLeft, "LMB", "Paint", c.cmdPaint, viewField},
		{gocui.MouseRight, "RMB", "Erase", c.cmdErase, viewField},
	}
	return c
}

// Start takes over the terminal and blocks until the user quits.
func (c *Console) Start() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()
	c.g = g
	g.Mouse = true
	g.SetManagerFunc(c.layout)
	for _, kb := range c.k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}

	go c.tickLoop()
	defer close(c.done)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (c *Console) tickLoop() {
	fs := core.NewFixedStep(c.tps)
	poll := time.NewTicker(fs.Interval() / 4)
	defer poll.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-poll.C:
		}
		frames := fs.Pending(maxCatchUp)
		if frames == 0 {
			continue
		}
		c.g.Update(func(*gocui.Gui) error {
			if c.paused {
				return nil
			}
			for i := 0; i < frames; i++ {
				c.advance(c.stepsPerFrame())
			}
			c.render()
			return nil
		})
	}
}

func (c *Console) stepsPerFrame() int {
	if p, ok := c.sim.(framePacer); ok {
		return p.StepsPerFrame()
	}
	return 1
}

func (c *Console) advance(steps int) {
	for i := 0; i < steps; i++ {
		c.sim.Step()
	}
}

func (c *Console) render() {
	if c.g == nil {
		return
	}
	if v, err := c.g.View(viewField); err == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, c.r.Frame(c.sim, maxW, maxH))
	}
	if v, err := c.g.View(viewStatus); err == nil {
		v.Clear()
		mode := aurora.Cyan("running").String()
		if c.paused {
			mode = aurora.Blue("paused").String()
		}
		_, _ = fmt.Fprintln(v, c.r.Prop("Mode", "%s", mode))
		for _, line := range c.r.Status(c.sim) {
			_, _ = fmt.Fprintln(v, line)
		}
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if v, err := g.SetView(viewHeader, -1, -1, maxX, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		title := "falling sand: " + c.sim.Name()
		pad := (maxX - len(title)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprint(v, strings.Repeat(" ", pad)+title)
	}
	if v, err := g.SetView(viewStatus, 0, 1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 1, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Sandbox"
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		for i, k := range c.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprint(v, b.String())
	}
	c.render()
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdTogglePause(_ *gocui.View) error {
	c.paused = !c.paused
	c.render()
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.advance(1)
	c.render()
	return nil
}

func (c *Console) cmdClear(_ *gocui.View) error {
	if c.brush != nil {
		c.brush.Clear()
	}
	c.render()
	return nil
}

func (c *Console) cmdReset(_ *gocui.View) error {
	c.sim.Reset(c.seed)
	c.render()
	return nil
}

func (c *Console) cmdMaterial(m uint8) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		if c.brush != nil {
			c.brush.SetPaintMaterial(m)
		}
		c.render()
		return nil
	}
}

func (c *Console) cmdRadius(delta int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		if c.brush != nil {
			c.brush.SetBrushRadius(c.brush.BrushRadius() + delta)
		}
		c.render()
		return nil
	}
}

func (c *Console) cmdPaint(v *gocui.View) error {
	if c.brush != nil && v != nil {
		x, y := fieldCell(v)
		c.brush.Paint(x, y)
	}
	c.render()
	return nil
}

func (c *Console) cmdErase(v *gocui.View) error {
	if c.brush != nil && v != nil {
		x, y := fieldCell(v)
		c.brush.Erase(x, y)
	}
	c.render()
	return nil
}

// fieldCell converts the click position in the field view to grid coordinates.
func fieldCell(v *gocui.View) (int, int) {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return cx + ox, cy + oy
}
