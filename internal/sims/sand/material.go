package sand

import (
	"errors"
	"fmt"
	"strings"
)

// Material is the tag held by a grid cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Wall

	materialCount
)

// ErrUnknownMaterial reports a material name or value outside the closed set.
var ErrUnknownMaterial = errors.New("unknown material")

var materialNames = [materialCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Wall:  "wall",
}

// Materials lists every material in tag order.
func Materials() []Material {
	return []Material{Empty, Sand, Water, Wall}
}

// Valid reports whether m is one of the four material tags.
func (m Material) Valid() bool { return m < materialCount }

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

// ParseMaterial resolves a material by name ("sand") or tag digit ("1").
func ParseMaterial(s string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range materialNames {
		if key == name {
			return Material(i), nil
		}
	}
	if len(key) == 1 && key[0] >= '0' && key[0] < '0'+byte(materialCount) {
		return Material(key[0] - '0'), nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownMaterial, s)
}

// Counts tallies cells per material.
type Counts [materialCount]int

// Of returns the number of cells holding m.
func (c Counts) Of(m Material) int {
	if !m.Valid() {
		return 0
	}
	return c[m]
}

// Filled returns the number of non-empty cells.
func (c Counts) Filled() int {
	return c[Sand] + c[Water] + c[Wall]
}

func countCells(cells []uint8) Counts {
	var c Counts
	for _, v := range cells {
		if Material(v).Valid() {
			c[v]++
		}
	}
	return c
}
