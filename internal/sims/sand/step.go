package sand

// Step advances the sandbox by one tick.
//
// Every cell starts out copied into the scratch buffer. Rows are then visited
// bottom-up, each in a randomly chosen horizontal direction. A cell's
// behaviour is decided by its material in the pre-tick grid, while
// destinations are tested and written in scratch so that moves made earlier
// in the tick immediately block or free later ones. The buffers are swapped
// once every row has been processed.
func (s *Sim) Step() {
	cur := s.active.Cells()
	s.scratch.CopyFrom(s.active)

	w, h := s.w, s.h
	for y := h - 1; y >= 0; y-- {
		leftToRight := s.rng.Bool()
		for i := 0; i < w; i++ {
			x := i
			if !leftToRight {
				x = w - 1 - i
			}
			switch Material(cur[y*w+x]) {
			case Sand:
				s.moveSand(x, y)
			case Water:
				s.moveWater(x, y)
			}
		}
	}

	s.active, s.scratch = s.scratch, s.active
	s.ticks++
}

func (s *Sim) moveSand(x, y int) {
	nxt := s.scratch.Cells()
	w := s.w
	src := y*w + x

	if y+1 < s.h {
		below := src + w
		switch Material(nxt[below]) {
		case Empty:
			nxt[below] = uint8(Sand)
			nxt[src] = uint8(Empty)
			return
		case Water:
			nxt[below] = uint8(Sand)
			nxt[src] = uint8(Water)
			return
		}
	}

	dir := s.diagonalPrimary()
	for _, dx := range [2]int{dir, -dir} {
		nx, ny := x+dx, y+1
		if nx < 0 || nx >= w || ny >= s.h {
			continue
		}
		dst := ny*w + nx
		switch Material(nxt[dst]) {
		case Empty:
			nxt[dst] = uint8(Sand)
			nxt[src] = uint8(Empty)
			return
		case Water:
			nxt[dst] = uint8(Sand)
			nxt[src] = uint8(Water)
			return
		}
	}
}

func (s *Sim) moveWater(x, y int) {
	nxt := s.scratch.Cells()
	w := s.w
	src := y*w + x

	if y+1 < s.h && Material(nxt[src+w]) == Empty {
		nxt[src+w] = uint8(Water)
		nxt[src] = uint8(Empty)
		return
	}

	dir := s.diagonalPrimary()
	for _, dx := range [2]int{dir, -dir} {
		nx, ny := x+dx, y+1
		if nx < 0 || nx >= w || ny >= s.h {
			continue
		}
		dst := ny*w + nx
		if Material(nxt[dst]) == Empty {
			nxt[dst] = uint8(Water)
			nxt[src] = uint8(Empty)
			return
		}
	}

	dirs := [2]int{-1, 1}
	if s.rng.Bool() {
		dirs = [2]int{1, -1}
	}
	row := y * w
	for reach := 1; reach <= 2; reach++ {
		for _, d := range dirs {
			nx := x + d*reach
			if nx < 0 || nx >= w || Material(nxt[row+nx]) != Empty {
				continue
			}
			if !s.pathClear(row, x, d, reach) {
				continue
			}
			nxt[row+nx] = uint8(Water)
			nxt[src] = uint8(Empty)
			return
		}
	}
}

// pathClear reports whether the cells strictly between x and x+d*reach on the
// given row hold only Empty or Water in scratch.
func (s *Sim) pathClear(row, x, d, reach int) bool {
	nxt := s.scratch.Cells()
	for r := 1; r < reach; r++ {
		switch Material(nxt[row+x+d*r]) {
		case Empty, Water:
		default:
			return false
		}
	}
	return true
}

// diagonalPrimary picks which downward diagonal is tried first.
func (s *Sim) diagonalPrimary() int {
	if s.rng.Bool() {
		return -1
	}
	return 1
}
