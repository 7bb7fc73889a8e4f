// Package raster holds the scanline polygon filler and the fixed-point line
// stepper shared by the graphics context and the vector font.
//
// The filler records one [min, max] interval per scanline. That is exact for
// convex outlines and for the star-shaped arc, segment and glyph outlines the
// rest of the engine produces; general concave polygons lose their inner gaps.
package raster

import "image"

// Target is a surface the filler can write spans to.
type Target interface {
	Size() (w, h int)
	FillRect(x1, y1, x2, y2 int, c uint32)
}

// ColumnMajor selects the table orientation used by FillPolygon. Column tables
// are sized by width, row tables by height; pick whichever axis is smaller on
// the target panel.
const ColumnMajor = true

// Fixed-point format used by Line and the edge walker.
const (
	fracBits = 8
	half     = 1 << (fracBits - 1)
)

// FillPolygon fills the polygon through pts (implicitly closed) with c.
// Fewer than three vertices draw nothing.
func FillPolygon(dst Target, pts []image.Point, c uint32) {
	if ColumnMajor {
		FillColumns(dst, pts, c)
		return
	}
	FillRows(dst, pts, c)
}

// FillColumns fills pts by building a per-column table of y extents.
func FillColumns(dst Target, pts []image.Point, c uint32) {
	w, _ := dst.Size()
	fill(pts, w, false, func(i, lo, hi int) {
		dst.FillRect(i, lo, i, hi, c)
	})
}

// FillRows fills pts by building a per-row table of x extents.
func FillRows(dst Target, pts []image.Point, c uint32) {
	_, h := dst.Size()
	fill(pts, h, true, func(i, lo, hi int) {
		dst.FillRect(lo, i, hi, i, c)
	})
}

// fill walks every edge once along the major axis (x, or y when byRow is set),
// keeping the minimum and maximum minor-axis value seen per index.
func fill(pts []image.Point, limit int, byRow bool, span func(i, lo, hi int)) {
	if len(pts) < 3 || limit <= 0 {
		return
	}
	major := func(p image.Point) int {
		if byRow {
			return p.Y
		}
		return p.X
	}
	minor := func(p image.Point) int {
		if byRow {
			return p.X
		}
		return p.Y
	}

	lo, hi := major(pts[0]), major(pts[0])
	for _, p := range pts[1:] {
		v := major(p)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	if lo > hi {
		return
	}

	n := hi - lo + 1
	mins := make([]int, n)
	maxs := make([]int, n)
	for i := range mins {
		mins[i] = int(^uint(0) >> 1)
		maxs[i] = -mins[i] - 1
	}
	mark := func(i, v int) {
		i -= lo
		if i < 0 || i >= n {
			return
		}
		if v < mins[i] {
			mins[i] = v
		}
		if v > maxs[i] {
			maxs[i] = v
		}
	}

	prev := pts[len(pts)-1]
	for _, p := range pts {
		a0, b0 := major(prev), minor(prev)
		a1, b1 := major(p), minor(p)
		prev = p
		if a0 > a1 {
			a0, a1 = a1, a0
			b0, b1 = b1, b0
		}
		if a0 == a1 {
			mark(a0, b0)
			mark(a0, b1)
			continue
		}
		pos := b0<<fracBits + half
		step := ((b1 - b0) << fracBits) / (a1 - a0)
		for a := a0; a <= a1; a++ {
			mark(a, pos>>fracBits)
			pos += step
		}
	}

	for i := 0; i < n; i++ {
		if maxs[i] >= mins[i] {
			span(lo+i, mins[i], maxs[i])
		}
	}
}
