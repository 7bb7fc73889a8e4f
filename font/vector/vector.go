// Package vector is the scalable polygon-outline font.
//
// Each glyph is a list of closed sub-polygons in a 0..127 design space stored
// as (x, y) byte pairs. Bit 7 of the y byte marks the last vertex of a
// sub-polygon. At render time every vertex is scaled by size/48 and every
// finished sub-polygon goes through the scanline filler, so any point size can
// be drawn from the one table.
package vector

import (
	"image"

	"lcdgfx/font"
	"lcdgfx/raster"
)

const (
	// unitsPerSize is the number of design units that map to one size step.
	unitsPerSize = 48
	// advanceUnits is the denominator for stored advances; advances are kept
	// at twice the design resolution.
	advanceUnits = 96

	lastVertex = 0x80
	coordMask  = 0x7F
)

type glyph struct {
	offset  int // byte offset into Font.verts
	n       int // vertex count
	advance uint8
	ok      bool
}

// Font is a packed vector font.
type Font struct {
	first  rune
	glyphs []glyph
	verts  []byte
}

func (f *Font) lookup(r rune) (glyph, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	i := int(r - f.first)
	if r < f.first || i >= len(f.glyphs) || !f.glyphs[i].ok {
		return glyph{}, false
	}
	return f.glyphs[i], true
}

// Has reports whether r has a glyph.
func (f *Font) Has(r rune) bool {
	_, ok := f.lookup(r)
	return ok
}

// Measure returns the advance of r at the given size, or 0 if r has no glyph.
func (f *Font) Measure(r rune, size int) int {
	g, ok := f.lookup(r)
	if !ok || size <= 0 {
		return 0
	}
	return int(g.advance) * size / advanceUnits
}

// Draw renders r with its cell's top-left corner at (x, y) and returns the
// advance. The baseline sits size pixels below y.
func (f *Font) Draw(s font.Surface, r rune, x, y, size int, c uint32) int {
	g, ok := f.lookup(r)
	if !ok || size <= 0 {
		return 0
	}
	var buf [16]image.Point
	pts := buf[:0]
	end := g.offset + 2*g.n
	if end > len(f.verts) {
		end = len(f.verts) &^ 1
	}
	for i := g.offset; i+1 < end; i += 2 {
		vx := int(f.verts[i] & coordMask)
		vy := f.verts[i+1]
		pts = append(pts, image.Point{
			X: x + vx*size/unitsPerSize,
			Y: y + int(vy&coordMask)*size/unitsPerSize - size>>2,
		})
		if vy&lastVertex != 0 {
			raster.FillPolygon(s, pts, c)
			pts = pts[:0]
		}
	}
	return int(g.advance) * size / advanceUnits
}

// Face returns a font.Face drawing f at a fixed size.
func (f *Font) Face(size int) font.Face {
	return &face{f: f, size: size}
}

type face struct {
	f    *Font
	size int
}

func (fc *face) Height() int        { return fc.size }
func (fc *face) Advance(r rune) int { return fc.f.Measure(r, fc.size) }

func (fc *face) DrawGlyph(s font.Surface, r rune, x, y int, st font.Style) int {
	adv := fc.f.Measure(r, fc.size)
	if adv == 0 {
		return 0
	}
	if st.Solid {
		s.FillRect(x, y, x+adv-1, y+fc.size-1, st.BG)
	}
	return fc.f.Draw(s, r, x, y, fc.size, st.FG)
}
