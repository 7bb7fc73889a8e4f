package raster

// Line calls plot for every pixel of the line from (x1,y1) to (x2,y2).
//
// The axis with the larger delta is walked in unit steps (X wins ties) and the
// other coordinate is accumulated with 8 fractional bits and a 0.5 rounding
// bias, so no floating point is involved.
func Line(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	if dx >= dy {
		if x1 > x2 {
			x1, x2 = x2, x1
			y1, y2 = y2, y1
		}
		n := dx
		if n == 0 {
			n = 1
		}
		pos := y1<<fracBits + half
		step := ((y2 - y1) << fracBits) / n
		for x := x1; x <= x2; x++ {
			plot(x, pos>>fracBits)
			pos += step
		}
		return
	}

	if y1 > y2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	pos := x1<<fracBits + half
	step := ((x2 - x1) << fracBits) / dy
	for y := y1; y <= y2; y++ {
		plot(pos>>fracBits, y)
		pos += step
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
