package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values without a palette entry take entry 0. When the palette is empty the
// buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	for i, c := range cells {
		idx := int(c)
		if idx >= len(palette) {
			idx = 0
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// PixelBuffer converts a cell buffer into a reusable RGBA byte slice.
type PixelBuffer struct {
	w, h int
	buf  []byte
}

// NewPixelBuffer allocates a buffer for a w*h grid.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Fill converts cells through palette and returns the RGBA bytes. Cell slices
// of the wrong length leave the previous frame in place.
func (p *PixelBuffer) Fill(cells []uint8, palette []color.RGBA) []byte {
	if len(cells) == p.w*p.h {
		fillPaletteRGBA(p.buf, cells, palette)
	}
	return p.buf
}
