// Package sand implements a falling-sand automaton over four materials:
// empty space, sand, water and immovable wall.
package sand

import (
	"errors"
	"fmt"

	"sandbox/internal/core"
)

var (
	// ErrInvalidSize reports non-positive grid dimensions at construction.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds reports indexed cell access outside the grid.
	ErrOutOfBounds = core.ErrOutOfBounds
)

// Sim owns the active and scratch buffers plus the brush state.
type Sim struct {
	cfg Config

	w, h int

	active  *core.ByteGrid
	scratch *core.ByteGrid

	material Material
	radius   int

	rng   core.RandomSource
	ticks int
}

// New returns an empty sandbox of the given dimensions using defaults for
// everything else. No floor is laid until Reset is called.
func New(w, h int) (*Sim, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty sandbox seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*Sim, error) {
	return NewWithSource(cfg, core.NewRNG(cfg.Seed))
}

// NewWithSource returns an empty sandbox drawing its coin flips from src.
func NewWithSource(cfg Config, src core.RandomSource) (*Sim, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	material := cfg.PaintMaterial
	if !material.Valid() {
		material = Sand
	}
	return &Sim{
		cfg:      cfg,
		w:        cfg.Width,
		h:        cfg.Height,
		active:   core.NewByteGrid(cfg.Width, cfg.Height),
		scratch:  core.NewByteGrid(cfg.Width, cfg.Height),
		material: material,
		radius:   clampRadius(cfg.BrushRadius),
		rng:      src,
	}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "sand" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.w, H: s.h} }

// Config returns the configuration the sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// Cells exposes the active buffer. It is replaced by the next Step.
func (s *Sim) Cells() []uint8 { return s.active.Cells() }

// Ticks reports how many steps have run since construction or Reset.
func (s *Sim) Ticks() int { return s.ticks }

// CellAt returns the material at (x, y) in the active grid. Coordinates
// outside the grid are a caller bug and yield ErrOutOfBounds.
func (s *Sim) CellAt(x, y int) (Material, error) {
	v, err := s.active.At(x, y)
	if err != nil {
		return Empty, err
	}
	return Material(v), nil
}

// SetCell writes m at (x, y) in the active grid.
func (s *Sim) SetCell(x, y int, m Material) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMaterial, uint8(m))
	}
	return s.active.Set(x, y, uint8(m))
}

// Counts tallies the active grid per material.
func (s *Sim) Counts() Counts { return countCells(s.active.Cells()) }

// Clear sets every cell to Empty.
func (s *Sim) Clear() { s.active.Fill(uint8(Empty)) }

// Reset clears the grid, restarts the random source and lays the floor when
// configured. A zero seed reuses the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	if r, ok := s.rng.(interface{ Seed(int64) }); ok {
		r.Seed(effective)
	}
	s.ticks = 0
	s.active.Clear()
	s.scratch.Clear()
	if s.cfg.Floor {
		s.layFloor()
	}
}

func (s *Sim) layFloor() {
	cells := s.active.Cells()
	row := (s.h - 1) * s.w
	for x := 0; x < s.w; x++ {
		cells[row+x] = uint8(Wall)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) (core.Sim, error) {
		sim, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}
