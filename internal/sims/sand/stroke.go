package sand

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadStroke reports a malformed stroke description.
var ErrBadStroke = errors.New("malformed stroke")

// Stroke is a scripted paint call: a disc of Material centred on (X, Y).
// A zero Radius uses the sim's current brush radius.
type Stroke struct {
	Material Material
	X, Y     int
	Radius   int
}

func (s Stroke) String() string {
	if s.Radius > 0 {
		return fmt.Sprintf("%s@%d,%d:%d", s.Material, s.X, s.Y, s.Radius)
	}
	return fmt.Sprintf("%s@%d,%d", s.Material, s.X, s.Y)
}

// ParseStroke reads "material@x,y" or "material@x,y:radius".
func ParseStroke(spec string) (Stroke, error) {
	name, rest, ok := strings.Cut(strings.TrimSpace(spec), "@")
	if !ok {
		return Stroke{}, fmt.Errorf("%w: %q: missing '@'", ErrBadStroke, spec)
	}
	m, err := ParseMaterial(name)
	if err != nil {
		return Stroke{}, fmt.Errorf("%w: %q: %w", ErrBadStroke, spec, err)
	}
	coords, radius, hasRadius := strings.Cut(rest, ":")
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return Stroke{}, fmt.Errorf("%w: %q: want x,y", ErrBadStroke, spec)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Stroke{}, fmt.Errorf("%w: %q: x: %w", ErrBadStroke, spec, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Stroke{}, fmt.Errorf("%w: %q: y: %w", ErrBadStroke, spec, err)
	}
	st := Stroke{Material: m, X: x, Y: y}
	if hasRadius {
		r, err := strconv.Atoi(strings.TrimSpace(radius))
		if err != nil || r < 1 {
			return Stroke{}, fmt.Errorf("%w: %q: radius must be a positive integer", ErrBadStroke, spec)
		}
		st.Radius = clampRadius(r)
	}
	return st, nil
}

// ParseStrokes parses every entry of specs, stopping at the first error.
func ParseStrokes(specs []string) ([]Stroke, error) {
	out := make([]Stroke, 0, len(specs))
	for _, spec := range specs {
		st, err := ParseStroke(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

// ApplyStroke paints st and then restores the previous brush selection.
func (s *Sim) ApplyStroke(st Stroke) {
	if !st.Material.Valid() {
		return
	}
	radius := s.radius
	if st.Radius > 0 {
		radius = clampRadius(st.Radius)
	}
	s.stamp(st.X, st.Y, radius, st.Material)
}
