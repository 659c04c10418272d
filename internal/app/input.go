package app

// CursorToCell maps a screen position to grid coordinates at the given pixel
// scale. Positions left of or above the grid map to negative cells rather
// than being folded onto row or column zero.
func CursorToCell(mx, my, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(mx, scale), floorDiv(my, scale)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// materialKeys maps the number row to material tags: 1 sand, 2 water,
// 3 wall, 4 eraser.
var materialKeys = [4]uint8{1, 2, 3, 0}
