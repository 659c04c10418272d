package sand

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

type hsv struct{ h, s, v float64 }

// Material colours in HSV.
var materialHSV = [materialCount]hsv{
	Empty: {0, 0, 0},
	Sand:  {40, 0.6, 1},
	Water: {200, 0.6, 1},
	Wall:  {0, 0, 136.0 / 255.0},
}

var sandPalette = buildPalette()

// Palette exposes the colour table indexed by material tag.
func (s *Sim) Palette() []color.RGBA { return sandPalette }

// ColorOf returns the display colour of m. Unknown tags render as Empty.
func ColorOf(m Material) color.RGBA {
	if !m.Valid() {
		m = Empty
	}
	return sandPalette[m]
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	for i, c := range materialHSV {
		palette[i] = hsvToRGBA(c.h, c.s, c.v)
	}
	return palette
}

func hsvToRGBA(h, s, v float64) color.RGBA {
	r, g, b, err := colorconv.HSVToRGB(h, s, v)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
