package gfx

import (
	"lcdgfx/font"
	"lcdgfx/font/bitmap"
)

// SetFont selects the face used by the text operations. nil restores the
// 4x6 bitmap font.
func (c *Context) SetFont(f font.Face) {
	if f == nil {
		f = bitmap.Font4x6
	}
	c.face = f
}

// Font returns the active face.
func (c *Context) Font() font.Face { return c.face }

// SetSolidText controls whether text paints its background cells.
func (c *Context) SetSolidText(solid bool) { c.solid = solid }

// FontHeight is the line height of the active face.
func (c *Context) FontHeight() int { return c.face.Height() }

func (c *Context) style() font.Style {
	return font.Style{FG: c.fg, BG: c.bg, Solid: c.solid}
}

// DrawChar draws r with its cell's top-left corner at (x, y) and returns the
// advance. Characters without a glyph draw nothing and return 0.
func (c *Context) DrawChar(r rune, x, y int) int {
	return c.face.DrawGlyph(surface{c}, r, x, y, c.style())
}

// DrawString draws str starting at (x, y). A newline returns to x and moves
// down one line. The result is the x position after the last character.
func (c *Context) DrawString(str string, x, y int) int {
	st := c.style()
	s := surface{c}
	px := x
	for _, r := range str {
		if r == '\n' {
			px = x
			y += c.face.Height()
			continue
		}
		px += c.face.DrawGlyph(s, r, px, y, st)
	}
	return px
}

// StringWidth is the width of the widest line of str in the active face.
func (c *Context) StringWidth(str string) int {
	w, line := 0, 0
	for _, r := range str {
		if r == '\n' {
			w = max(w, line)
			line = 0
			continue
		}
		line += c.face.Advance(r)
	}
	return max(w, line)
}
