package gfx

import (
	"image"
	"math"
)

// DrawCircle outlines a circle of radius r around (x0, y0).
func (c *Context) DrawCircle(x0, y0, r int) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.SetPixel(x0+p[0], y0+p[1], c.fg)
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a circle of radius r around (x0, y0) with horizontal
// spans.
func (c *Context) FillCircle(x0, y0, r int) {
	if r < 0 {
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		c.FillRect(x0-x, y0+y, x0+x, y0+y)
		c.FillRect(x0-x, y0-y, x0+x, y0-y)
		c.FillRect(x0-y, y0+x, x0+y, y0+x)
		c.FillRect(x0-y, y0-x, x0+y, y0-x)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// maxSegmentSweep keeps each filled piece convex.
const maxSegmentSweep = math.Pi / 2

// FillSegment fills the pie slice of radius r around (x0, y0) from angle a0
// to a1, in radians. Angle 0 points along +x and angles grow clockwise on
// screen. The slice is filled as convex pieces of at most a quarter turn.
func (c *Context) FillSegment(x0, y0, r int, a0, a1 float64) {
	if r <= 0 || a0 == a1 {
		return
	}
	if a1 < a0 {
		a0, a1 = a1, a0
	}
	if a1-a0 > 2*math.Pi {
		a1 = a0 + 2*math.Pi
	}
	var buf [24]image.Point
	for a := a0; a < a1; a += maxSegmentSweep {
		end := min(a+maxSegmentSweep, a1)
		// Roughly one vertex per four pixels of arc.
		steps := int(float64(r)*(end-a)/4) + 1
		steps = min(steps, len(buf)-2)
		pts := append(buf[:0], image.Pt(x0, y0))
		for i := 0; i <= steps; i++ {
			t := a + (end-a)*float64(i)/float64(steps)
			pts = append(pts, image.Pt(
				x0+int(math.Round(float64(r)*math.Cos(t))),
				y0+int(math.Round(float64(r)*math.Sin(t))),
			))
		}
		c.FillPolygon(pts)
	}
}
