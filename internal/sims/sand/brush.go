package sand

// PaintMaterial returns the tag of the material the brush lays down.
func (s *Sim) PaintMaterial() uint8 { return uint8(s.material) }

// Material returns the selected paint material.
func (s *Sim) Material() Material { return s.material }

// SetPaintMaterial selects the brush material. Values outside the four
// material tags are ignored.
func (s *Sim) SetPaintMaterial(m uint8) {
	if mat := Material(m); mat.Valid() {
		s.material = mat
	}
}

// BrushRadius returns the current brush radius.
func (s *Sim) BrushRadius() int { return s.radius }

// SetBrushRadius sets the brush radius, clamped to [1, MaxBrushRadius].
func (s *Sim) SetBrushRadius(r int) { s.radius = clampRadius(r) }

// Paint stamps a disc of the selected material centred on (cx, cy) into the
// active grid. Parts of the disc outside the grid are clipped.
func (s *Sim) Paint(cx, cy int) {
	s.stamp(cx, cy, s.radius, s.material)
}

// Erase stamps an Empty disc without changing the selected material.
func (s *Sim) Erase(cx, cy int) {
	s.stamp(cx, cy, s.radius, Empty)
}

func (s *Sim) stamp(cx, cy, radius int, m Material) {
	// Reject discs that cannot touch the grid before walking the offsets.
	if cx+radius < 0 || cy+radius < 0 || cx-radius >= s.w || cy-radius >= s.h {
		return
	}
	cells := s.active.Cells()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		y := cy + dy
		if y < 0 || y >= s.h {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := cx + dx
			if x < 0 || x >= s.w {
				continue
			}
			if dx*dx+dy*dy > r2 {
				continue
			}
			cells[y*s.w+x] = uint8(m)
		}
	}
}

// MaterialName returns the display name of a raw material tag.
func (s *Sim) MaterialName(m uint8) string { return Material(m).String() }
