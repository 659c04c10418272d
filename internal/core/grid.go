package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports indexed grid access outside [0,W)x[0,H).
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value stored at (x, y).
func (g *ByteGrid) At(x, y int) (uint8, error) {
	if !g.InBounds(x, y) {
		return 0, g.boundsError(x, y)
	}
	return g.data[g.Index(x, y)], nil
}

// Set stores v at (x, y).
func (g *ByteGrid) Set(x, y int, v uint8) error {
	if !g.InBounds(x, y) {
		return g.boundsError(x, y)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// CopyFrom overwrites the grid with the contents of src. Both grids must have
// the same dimensions.
func (g *ByteGrid) CopyFrom(src *ByteGrid) {
	copy(g.data, src.data)
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	g.Fill(0)
}

func (g *ByteGrid) boundsError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
}
