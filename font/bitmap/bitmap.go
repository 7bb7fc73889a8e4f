// Package bitmap provides the fixed-size bitmap fonts.
//
// Glyphs for a contiguous run of character codes are stored row by row, five
// glyphs side by side in one machine word: the 4x6 font keeps 5 × 3 bits in a
// uint16, the 6x8 font 5 × 6 bits in a uint32. For glyph index i the word for
// row r is words[(i/5)*rows + r] and the glyph occupies bits
// [(i%5)*bits, (i%5+1)*bits). Within a slot, column x is bit (bits-1-x).
package bitmap

import (
	"lcdgfx/font"
	"lcdgfx/internal/bitstream"
)

// GlyphsPerWord is the number of glyphs sharing one packed word.
const GlyphsPerWord = 5

// Font is a packed fixed-size bitmap font.
type Font struct {
	name    string
	first   rune
	count   int
	bits    uint // slot width per glyph row
	rows    int
	advance int

	w16 []uint16
	w32 []uint32
}

// Name identifies the font ("4x6", "6x8").
func (f *Font) Name() string { return f.name }

// First is the lowest character code with a glyph.
func (f *Font) First() rune { return f.first }

// Count is the number of consecutive codes covered starting at First.
func (f *Font) Count() int { return f.count }

// Height implements font.Face.
func (f *Font) Height() int { return f.rows }

// Advance implements font.Face. Every code in range, and the space character,
// advances by the cell width.
func (f *Font) Advance(r rune) int {
	if r == ' ' || f.index(r) >= 0 {
		return f.advance
	}
	return 0
}

func (f *Font) index(r rune) int {
	i := int(r - f.first)
	if r < f.first || i >= f.count {
		return -1
	}
	return i
}

// Row returns the packed row bits of r (column 0 in the most significant slot
// bit). ok is false for codes outside the font.
func (f *Font) Row(r rune, row int) (bits uint32, ok bool) {
	i := f.index(r)
	if i < 0 || row < 0 || row >= f.rows {
		return 0, false
	}
	word := (i/GlyphsPerWord)*f.rows + row
	shift := uint(i%GlyphsPerWord) * f.bits
	if f.w16 != nil {
		return bitstream.Field16(f.w16, word, shift, f.bits)
	}
	return bitstream.Field32(f.w32, word, shift, f.bits)
}

// DrawGlyph implements font.Face. Codes outside the font draw nothing; a
// solid style still clears the cell of the space character.
func (f *Font) DrawGlyph(s font.Surface, r rune, x, y int, st font.Style) int {
	if f.index(r) < 0 {
		if r == ' ' {
			if st.Solid {
				s.FillRect(x, y, x+f.advance-1, y+f.rows-1, st.BG)
			}
			return f.advance
		}
		return 0
	}
	if st.Solid {
		s.FillRect(x, y, x+f.advance-1, y+f.rows-1, st.BG)
	}
	for row := 0; row < f.rows; row++ {
		line, ok := f.Row(r, row)
		if !ok {
			continue
		}
		for col := 0; col < int(f.bits); col++ {
			if line&(1<<(f.bits-1-uint(col))) != 0 {
				s.SetPixel(x+col, y+row, st.FG)
			}
		}
	}
	return f.advance
}

var _ font.Face = (*Font)(nil)
