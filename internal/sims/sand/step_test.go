package sand

import (
	"slices"
	"testing"

	"sandbox/internal/core"
)

func TestSandFallsOneRowPerTick(t *testing.T) {
	sim := layout(t, core.NewRNG(7),
		"..s..",
		".....",
		".....",
		".....",
		"#####",
	)
	for tick := 1; tick <= 4; tick++ {
		sim.Step()
		want := tick
		if want > 3 {
			want = 3
		}
		if m, _ := sim.CellAt(2, want); m != Sand {
			t.Fatalf("after %d ticks expected sand at (2,%d), grid %v", tick, want, render(sim))
		}
	}
	if m, _ := sim.CellAt(2, 0); m != Empty {
		t.Fatalf("(2,0) = %s after 4 ticks, want empty", m)
	}
	if sim.Ticks() != 4 {
		t.Fatalf("Ticks = %d, want 4", sim.Ticks())
	}
}

func TestSandSinksThroughWater(t *testing.T) {
	sim := layout(t, core.NewRNG(1),
		"#.#",
		"#s#",
		"#w#",
		"###",
	)
	sim.Step()
	expectGrid(t, sim,
		"#.#",
		"#w#",
		"#s#",
		"###",
	)
}

func TestWaterRestsOnSand(t *testing.T) {
	sim := layout(t, core.NewRNG(3),
		"#w#",
		"#s#",
		"###",
	)
	for i := 0; i < 5; i++ {
		sim.Step()
	}
	expectGrid(t, sim,
		"#w#",
		"#s#",
		"###",
	)
}

func TestSandDiagonalFollowsPrimaryDirection(t *testing.T) {
	// Bits: row 2 order, row 1 order, row 0 order, then the sand's diagonal.
	left := layout(t, core.NewScriptedSource(false, false, false, true),
		".s.",
		".#.",
		"...",
	)
	left.Step()
	expectGrid(t, left,
		"...",
		"s#.",
		"...",
	)

	right := layout(t, core.NewScriptedSource(false, false, false, false),
		".s.",
		".#.",
		"...",
	)
	right.Step()
	expectGrid(t, right,
		"...",
		".#s",
		"...",
	)
}

func TestSandDiagonalFallsBackToSecondary(t *testing.T) {
	// Primary (-1) is wall, so the sand takes the +1 diagonal.
	sim := layout(t, core.NewScriptedSource(false, false, false, true),
		".s.",
		"##.",
		"...",
	)
	sim.Step()
	expectGrid(t, sim,
		"...",
		"##s",
		"...",
	)
}

func TestSandDiagonalSwapsWithWater(t *testing.T) {
	// Bits: row 2, row 1, water diagonal, water spread, row 0, sand diagonal.
	sim := layout(t, core.NewScriptedSource(false, false, false, false, false, true),
		".s.",
		"w#.",
		"###",
	)
	sim.Step()
	expectGrid(t, sim,
		".w.",
		"s#.",
		"###",
	)
}

func TestWaterSpreadsUpToTwoCells(t *testing.T) {
	// All-false bits: rows scan right to left and spreading prefers the left.
	sim := layout(t, core.NewScriptedSource(),
		".ww#",
		"####",
	)
	sim.Step()
	expectGrid(t, sim,
		"w.w#",
		"####",
	)
}

func TestWaterDoesNotSpreadThroughSand(t *testing.T) {
	sim := layout(t, core.NewScriptedSource(),
		".sw##",
		"#####",
	)
	sim.Step()
	expectGrid(t, sim,
		".sw##",
		"#####",
	)
}

func TestWaterPrefersFallingOverSpreading(t *testing.T) {
	sim := layout(t, core.NewRNG(11),
		"..w..",
		".....",
		"#####",
	)
	sim.Step()
	expectGrid(t, sim,
		".....",
		"..w..",
		"#####",
	)
}

func TestWaterSlidesDiagonally(t *testing.T) {
	// Bits: row 1 order, row 0 order, water diagonal (+1).
	sim := layout(t, core.NewScriptedSource(false, false, false),
		".w.",
		".#.",
	)
	sim.Step()
	expectGrid(t, sim,
		"...",
		".#w",
	)
}

func TestSandSettlesInShaft(t *testing.T) {
	rows := []string{"#s#"}
	for i := 0; i < 8; i++ {
		rows = append(rows, "#.#")
	}
	rows = append(rows, "###")
	sim := layout(t, core.NewRNG(5), rows...)
	h := sim.Size().H

	for i := 0; i < h; i++ {
		sim.Step()
	}
	rest := append([]uint8(nil), sim.Cells()...)
	sim.Step()
	if !slices.Equal(rest, sim.Cells()) {
		t.Fatalf("sand still moving after %d ticks: %v", h, render(sim))
	}
	if m, _ := sim.CellAt(1, h-2); m != Sand {
		t.Fatalf("sand should rest on the floor, grid %v", render(sim))
	}
}

func TestStepConservesMaterialsAndWalls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Floor = false
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	fill := core.NewRNG(2024)
	cells := sim.Cells()
	for i := range cells {
		cells[i] = uint8(fill.IntN(int(materialCount)))
	}

	var walls []int
	for i, v := range cells {
		if Material(v) == Wall {
			walls = append(walls, i)
		}
	}
	want := sim.Counts()

	for tick := 0; tick < 60; tick++ {
		sim.Step()
		if got := sim.Counts(); got != want {
			t.Fatalf("tick %d: counts %v, want %v", tick, got, want)
		}
		cur := sim.Cells()
		for _, i := range walls {
			if Material(cur[i]) != Wall {
				t.Fatalf("tick %d: wall at index %d became %s", tick, i, Material(cur[i]))
			}
		}
	}
}

func TestClearStaysEmpty(t *testing.T) {
	sim, err := New(20, 12)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.SetBrushRadius(6)
	sim.Paint(10, 6)
	sim.Clear()
	for i := 0; i < 10; i++ {
		sim.Step()
	}
	if filled := sim.Counts().Filled(); filled != 0 {
		t.Fatalf("%d cells filled after Clear and ticking", filled)
	}
}

func TestStepSwapsBuffers(t *testing.T) {
	sim, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	before := &sim.Cells()[0]
	sim.Step()
	if &sim.Cells()[0] == before {
		t.Fatal("Step should hand out the other buffer")
	}
	sim.Step()
	if &sim.Cells()[0] != before {
		t.Fatal("two steps should return to the original buffer")
	}
}
