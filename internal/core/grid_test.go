package core

import (
	"errors"
	"testing"
)

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	if err := g.Set(3, 2, 7); err != nil {
		t.Fatalf("Set in range: %v", err)
	}
	v, err := g.At(3, 2)
	if err != nil || v != 7 {
		t.Fatalf("At(3,2) = %d, %v; want 7, nil", v, err)
	}
	if g.Cells()[g.Index(3, 2)] != 7 {
		t.Fatal("Set did not write row-major index")
	}

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if _, err := g.At(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d,%d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
		if err := g.Set(c[0], c[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}

func TestByteGridFillAndCopy(t *testing.T) {
	a := NewByteGrid(3, 3)
	a.Fill(2)
	b := NewByteGrid(3, 3)
	b.CopyFrom(a)
	for i, v := range b.Cells() {
		if v != 2 {
			t.Fatalf("cell %d = %d after CopyFrom, want 2", i, v)
		}
	}
	b.Clear()
	for i, v := range b.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear, want 0", i, v)
		}
	}
	if a.Cells()[0] != 2 {
		t.Fatal("CopyFrom must not alias the source buffer")
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -5)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}
