package gfx

import (
	"image"

	"lcdgfx/raster"
)

// SetPixel writes col at (x, y). Off-surface writes are dropped.
func (c *Context) SetPixel(x, y int, col uint32) {
	if !c.inside(x, y) {
		return
	}
	x, y = c.device(x, y)
	c.setPixel(x, y, col&c.mask)
}

// GetPixel reads (x, y). Off-surface reads and backends that cannot read
// back return 0.
func (c *Context) GetPixel(x, y int) uint32 {
	if !c.inside(x, y) {
		return 0
	}
	x, y = c.device(x, y)
	return c.getPixel(x, y)
}

// FillRect fills the rectangle with corners (x1,y1) and (x2,y2), inclusive,
// with the foreground color.
func (c *Context) FillRect(x1, y1, x2, y2 int) {
	c.FillRectColor(x1, y1, x2, y2, c.fg)
}

// FillRectColor is FillRect with an explicit color.
func (c *Context) FillRectColor(x1, y1, x2, y2 int, col uint32) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, c.w-1), min(y2, c.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	x1, y1 = c.device(x1, y1)
	x2, y2 = c.device(x2, y2)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	c.fillRect(x1, y1, x2, y2, col&c.mask)
}

// Clear fills the whole surface with the background color.
func (c *Context) Clear() {
	c.fg, c.bg = c.bg, c.fg
	c.FillRect(0, 0, c.w-1, c.h-1)
	c.fg, c.bg = c.bg, c.fg
}

// DrawRect outlines the rectangle with the foreground color.
func (c *Context) DrawRect(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	c.FillRect(x1, y1, x2, y1)
	c.FillRect(x1, y2, x2, y2)
	c.FillRect(x1, y1, x1, y2)
	c.FillRect(x2, y1, x2, y2)
}

// DrawLine draws a one pixel line with the foreground color.
func (c *Context) DrawLine(x1, y1, x2, y2 int) {
	switch {
	case y1 == y2, x1 == x2:
		c.FillRect(x1, y1, x2, y2)
	default:
		raster.Line(x1, y1, x2, y2, c.plot)
	}
}

func (c *Context) plot(x, y int) { c.SetPixel(x, y, c.fg) }

// MoveTo sets the cursor used by LineTo.
func (c *Context) MoveTo(x, y int) { c.cx, c.cy = x, y }

// LineTo draws from the cursor to (x, y) and moves the cursor there.
func (c *Context) LineTo(x, y int) {
	c.DrawLine(c.cx, c.cy, x, y)
	c.cx, c.cy = x, y
}

// Cursor returns the LineTo cursor.
func (c *Context) Cursor() (x, y int) { return c.cx, c.cy }

// FillPolygon fills pts with the foreground color. Each scanline is filled
// as one interval, so only convex and star-shaped outlines come out exact.
func (c *Context) FillPolygon(pts []image.Point) {
	raster.FillPolygon(surface{c}, pts, c.fg)
}

// DrawPolygon outlines pts, closing the last vertex back to the first.
func (c *Context) DrawPolygon(pts []image.Point) {
	if len(pts) == 0 {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.DrawLine(a.X, a.Y, b.X, b.Y)
	}
}

// Blit1bpp draws a w×h 1 bpp bitmap with its top-left corner at (x, y).
// Bits are MSB first and rows follow each other without padding. Set bits
// take the foreground color; clear bits take the background color when
// solid is set and are skipped otherwise. A short data slice draws nothing.
func (c *Context) Blit1bpp(x, y, w, h int, data []byte, solid bool) {
	if w <= 0 || h <= 0 || len(data)*8 < w*h {
		return
	}
	if c.flags&transformFlags == 0 && x >= 0 && y >= 0 && x+w <= c.w && y+h <= c.h {
		c.blit(x, y, w, h, data, c.fg, c.bg, solid)
		return
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			bit := j*w + i
			switch {
			case data[bit>>3]&(0x80>>(bit&7)) != 0:
				c.SetPixel(x+i, y+j, c.fg)
			case solid:
				c.SetPixel(x+i, y+j, c.bg)
			}
		}
	}
}

// Scroll moves the surface content by (dx, dy) and fills the uncovered area
// with the background color. It reads pixels back, so on a backend without
// GetPixel the moved content comes out as color 0.
func (c *Context) Scroll(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	if abs(dx) >= c.w || abs(dy) >= c.h {
		c.Clear()
		return
	}
	xs, xe, xi := 0, c.w, 1
	if dx > 0 {
		xs, xe, xi = c.w-1, -1, -1
	}
	ys, ye, yi := 0, c.h, 1
	if dy > 0 {
		ys, ye, yi = c.h-1, -1, -1
	}
	for y := ys; y != ye; y += yi {
		for x := xs; x != xe; x += xi {
			sx, sy := x-dx, y-dy
			if c.inside(sx, sy) {
				c.SetPixel(x, y, c.GetPixel(sx, sy))
			}
		}
	}
	switch {
	case dy > 0:
		c.FillRectColor(0, 0, c.w-1, dy-1, c.bg)
	case dy < 0:
		c.FillRectColor(0, c.h+dy, c.w-1, c.h-1, c.bg)
	}
	switch {
	case dx > 0:
		c.FillRectColor(0, 0, dx-1, c.h-1, c.bg)
	case dx < 0:
		c.FillRectColor(c.w+dx, 0, c.w-1, c.h-1, c.bg)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// surface exposes the context to the fill engine and the font renderers,
// which pass colors explicitly.
type surface struct{ c *Context }

func (s surface) Size() (int, int) { return s.c.Size() }

func (s surface) SetPixel(x, y int, col uint32) { s.c.SetPixel(x, y, col) }

func (s surface) FillRect(x1, y1, x2, y2 int, col uint32) {
	s.c.FillRectColor(x1, y1, x2, y2, col)
}
