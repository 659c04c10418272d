package sand

import (
	"strings"
	"testing"

	"sandbox/internal/core"
)

var glyphs = map[byte]Material{'.': Empty, 's': Sand, 'w': Water, '#': Wall}

// layout builds a sim whose grid matches rows, one string per row using
// '.' empty, 's' sand, 'w' water and '#' wall.
func layout(t *testing.T, src core.RandomSource, rows ...string) *Sim {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = len(rows[0])
	cfg.Height = len(rows)
	cfg.Floor = false
	sim, err := NewWithSource(cfg, src)
	if err != nil {
		t.Fatalf("NewWithSource: %v", err)
	}
	for y, row := range rows {
		if len(row) != cfg.Width {
			t.Fatalf("row %d has width %d, want %d", y, len(row), cfg.Width)
		}
		for x := 0; x < len(row); x++ {
			m, ok := glyphs[row[x]]
			if !ok {
				t.Fatalf("unknown glyph %q", row[x])
			}
			if err := sim.SetCell(x, y, m); err != nil {
				t.Fatalf("SetCell(%d,%d): %v", x, y, err)
			}
		}
	}
	return sim
}

func render(sim *Sim) []string {
	size := sim.Size()
	cells := sim.Cells()
	rows := make([]string, size.H)
	for y := 0; y < size.H; y++ {
		var b strings.Builder
		for x := 0; x < size.W; x++ {
			switch Material(cells[y*size.W+x]) {
			case Sand:
				b.WriteByte('s')
			case Water:
				b.WriteByte('w')
			case Wall:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		rows[y] = b.String()
	}
	return rows
}

func expectGrid(t *testing.T, sim *Sim, want ...string) {
	t.Helper()
	got := render(sim)
	for y := range want {
		if got[y] != want[y] {
			t.Fatalf("grid mismatch at row %d\n got: %s\nwant: %s", y, strings.Join(got, "|"), strings.Join(want, "|"))
		}
	}
}
