package sand

import (
	"errors"
	"testing"

	"sandbox/internal/core"
)

func TestNewRejectsNonPositiveSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-3, 4}, {4, -1}} {
		if _, err := New(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d,%d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsEmpty(t *testing.T) {
	sim, err := New(7, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := sim.Size(); got.W != 7 || got.H != 4 {
		t.Fatalf("Size = %+v, want 7x4", got)
	}
	if len(sim.Cells()) != 28 {
		t.Fatalf("len(Cells) = %d, want 28", len(sim.Cells()))
	}
	if filled := sim.Counts().Filled(); filled != 0 {
		t.Fatalf("new sim has %d filled cells", filled)
	}
	if sim.Material() != Sand || sim.BrushRadius() != 4 {
		t.Fatalf("default brush = %s/%d, want sand/4", sim.Material(), sim.BrushRadius())
	}
}

func TestCellAtRejectsOutOfRange(t *testing.T) {
	sim, err := New(4, 4)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := sim.SetCell(3, 3, Water); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if m, err := sim.CellAt(3, 3); err != nil || m != Water {
		t.Fatalf("CellAt(3,3) = %s, %v; want water", m, err)
	}
	for _, c := range [][2]int{{-1, 0}, {4, 0}, {0, 4}, {0, -1}} {
		if _, err := sim.CellAt(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("CellAt(%d,%d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if err := sim.SetCell(0, 0, Material(9)); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("SetCell with bad material err = %v", err)
	}
}

func TestResetLaysFloorAndRestartsTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 6
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	sim.Paint(6, 1)
	sim.Step()
	sim.Reset(0)

	if sim.Ticks() != 0 {
		t.Fatalf("Ticks after Reset = %d", sim.Ticks())
	}
	counts := sim.Counts()
	if counts.Of(Wall) != cfg.Width || counts.Filled() != cfg.Width {
		t.Fatalf("Reset counts = %+v, want only a %d-cell floor", counts, cfg.Width)
	}
	for x := 0; x < cfg.Width; x++ {
		if m, _ := sim.CellAt(x, cfg.Height-1); m != Wall {
			t.Fatalf("floor cell %d = %s", x, m)
		}
	}
}

func TestResetReplaysRandomness(t *testing.T) {
	run := func(sim *Sim) []uint8 {
		sim.Reset(42)
		sim.SetBrushRadius(3)
		sim.Paint(10, 2)
		sim.SetPaintMaterial(uint8(Water))
		sim.Paint(14, 2)
		for i := 0; i < 25; i++ {
			sim.Step()
		}
		return append([]uint8(nil), sim.Cells()...)
	}
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 16
	sim, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	first := run(sim)
	sim.SetPaintMaterial(uint8(Sand))
	second := run(sim)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("cell %d differs between identically seeded runs", i)
		}
	}
}

func TestRegistryBuildsSand(t *testing.T) {
	sim, err := core.Build("sand", map[string]string{"w": "16", "h": "9"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if sim.Name() != "sand" {
		t.Fatalf("Name = %q", sim.Name())
	}
	if got := sim.Size(); got.W != 16 || got.H != 9 {
		t.Fatalf("Size = %+v", got)
	}
	if _, ok := sim.(core.Painter); !ok {
		t.Fatal("sand sim must accept brush input")
	}
	if _, ok := sim.(core.Palette); !ok {
		t.Fatal("sand sim must expose a palette")
	}
}
