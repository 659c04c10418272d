package term

import (
	"strings"
	"testing"

	"sandbox/internal/sims/sand"
)

func newSim(t *testing.T, w, h int) *sand.Sim {
	t.Helper()
	sim, err := sand.New(w, h)
	if err != nil {
		t.Fatalf("sand.New: %v", err)
	}
	return sim
}

func TestFramePlain(t *testing.T) {
	sim := newSim(t, 4, 3)
	sim.SetCell(1, 0, sand.Sand)
	sim.SetCell(2, 1, sand.Water)
	for x := 0; x < 4; x++ {
		sim.SetCell(x, 2, sand.Wall)
	}

	r := NewRenderer(DefaultGlyphs, false)
	want := " ▒  \n  ≈ \n████"
	if got := r.Frame(sim, 0, 0); got != want {
		t.Fatalf("Frame =\n%q\nwant\n%q", got, want)
	}
	if got := r.Frame(sim, 2, 1); got != " ▒" {
		t.Fatalf("cropped Frame = %q", got)
	}
}

func TestFrameUnknownGlyph(t *testing.T) {
	sim := newSim(t, 2, 1)
	sim.Cells()[1] = 3
	r := NewRenderer(DefaultGlyphs[:2], false)
	if got := r.Frame(sim, 0, 0); got != " ?" {
		t.Fatalf("Frame = %q", got)
	}
}

func TestFrameColored(t *testing.T) {
	sim := newSim(t, 1, 1)
	sim.SetCell(0, 0, sand.Sand)
	got := NewRenderer(DefaultGlyphs, true).Frame(sim, 0, 0)
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "▒") {
		t.Fatalf("expected ANSI-coloured sand glyph, got %q", got)
	}
}

func TestStatusListsParameters(t *testing.T) {
	sim := newSim(t, 6, 6)
	sim.Paint(3, 3)
	lines := NewRenderer(DefaultGlyphs, false).Status(sim)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Brush", " Material: sand", " Radius: 4", "Population"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("status missing %q:\n%s", want, joined)
		}
	}
}
