// Package term renders sims as coloured text and drives them from a terminal.
package term

import (
	"fmt"
	"strings"

	"sandbox/internal/core"

	"github.com/logrusorgru/aurora"
)

// Glyph describes how one cell value is drawn in a terminal.
type Glyph struct {
	Rune  string
	Color aurora.Color
}

// DefaultGlyphs maps the sand material tags to terminal glyphs.
var DefaultGlyphs = []Glyph{
	{Rune: " "},
	{Rune: "▒", Color: aurora.YellowFg},
	{Rune: "≈", Color: aurora.CyanFg},
	{Rune: "█", Color: aurora.WhiteFg},
}

// Renderer turns a sim's active buffer into lines of text.
type Renderer struct {
	au     aurora.Aurora
	glyphs []string
}

// NewRenderer prepares a renderer; colors toggles ANSI escape output.
func NewRenderer(glyphs []Glyph, colors bool) *Renderer {
	au := aurora.NewAurora(colors)
	r := &Renderer{au: au, glyphs: make([]string, len(glyphs))}
	for i, g := range glyphs {
		if g.Color == 0 {
			r.glyphs[i] = g.Rune
			continue
		}
		r.glyphs[i] = au.Colorize(g.Rune, g.Color).String()
	}
	return r
}

// Frame renders at most maxW columns and maxH rows of sim. Non-positive
// limits mean no cropping. Unknown cell values render as '?'.
func (r *Renderer) Frame(sim core.Sim, maxW, maxH int) string {
	size := sim.Size()
	cells := sim.Cells()
	w, h := size.W, size.H
	if maxW > 0 && maxW < w {
		w = maxW
	}
	if maxH > 0 && maxH < h {
		h = maxH
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		row := cells[y*size.W : y*size.W+w]
		for _, c := range row {
			if int(c) < len(r.glyphs) {
				b.WriteString(r.glyphs[c])
				continue
			}
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Prop formats a labelled value the way the status panes show it.
func (r *Renderer) Prop(name, format string, values ...any) string {
	return " " + r.au.Green(name).String() + ": " + fmt.Sprintf(format, values...)
}

// Status lists the sim's parameter snapshot, one group per block.
func (r *Renderer) Status(sim core.Sim) []string {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		size := sim.Size()
		return []string{r.Prop("Size", "%d x %d", size.W, size.H)}
	}
	var lines []string
	for _, group := range provider.Parameters().Groups {
		lines = append(lines, r.au.Bold(group.Name).String())
		for _, p := range group.Params {
			value := p.Value
			if p.Display != "" {
				value = p.Display
			}
			lines = append(lines, r.Prop(p.Label, "%s", value))
		}
	}
	return lines
}
