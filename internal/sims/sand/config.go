package sand

import "strconv"

// MaxBrushRadius bounds the brush radius a driver may select.
const MaxBrushRadius = 50

// Config controls the sandbox dimensions and initial brush.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Floor lays a row of Wall along the bottom edge on Reset.
	Floor bool
	// StepsPerFrame is how many ticks a driver runs per rendered frame.
	StepsPerFrame int

	BrushRadius   int
	PaintMaterial Material
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:         320,
		Height:        180,
		Seed:          1337,
		Floor:         true,
		StepsPerFrame: 2,
		BrushRadius:   4,
		PaintMaterial: Sand,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall outside their range are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["floor"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Floor = parsed
		}
	}
	if v, ok := cfg["steps_per_frame"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerFrame = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.BrushRadius = clampRadius(parsed)
		}
	}
	if v, ok := cfg["paint_material"]; ok {
		if parsed, err := ParseMaterial(v); err == nil {
			c.PaintMaterial = parsed
		}
	}
	return c
}

func clampRadius(r int) int {
	if r < 1 {
		return 1
	}
	if r > MaxBrushRadius {
		return MaxBrushRadius
	}
	return r
}
