package bitmap

import (
	"tinygo.org/x/tinyfont"
)

// TinyFont converts f into a tinyfont.Font so tinyfont and tinyterm code can
// use it. Glyphs are positioned like the system font in tinyfont: the
// baseline is the bottom row of the cell.
func (f *Font) TinyFont() *tinyfont.Font {
	glyphs := make([]tinyfont.Glyph, 0, f.count+1)
	glyphs = append(glyphs, f.tinyGlyph(' ', nil))
	for i := 0; i < f.count; i++ {
		r := f.first + rune(i)
		if r == ' ' {
			continue
		}
		glyphs = append(glyphs, f.tinyGlyph(r, f.msbBitmap(r)))
	}
	return &tinyfont.Font{
		BBox:     [4]int8{int8(f.advance), int8(f.rows), 0, int8(1 - f.rows)},
		Glyphs:   glyphs,
		YAdvance: uint8(f.rows),
	}
}

func (f *Font) tinyGlyph(r rune, bits []byte) tinyfont.Glyph {
	g := tinyfont.Glyph{
		Rune:     r,
		Width:    uint8(f.bits),
		Height:   uint8(f.rows),
		XAdvance: uint8(f.advance),
		XOffset:  0,
		YOffset:  int8(1 - f.rows),
		Bitmaps:  bits,
	}
	if bits == nil {
		g.Bitmaps = make([]byte, (int(f.bits)*f.rows+7)/8)
	}
	return g
}

// msbBitmap re-packs r as a continuous MSB-first bit stream, the layout
// tinyfont glyphs use.
func (f *Font) msbBitmap(r rune) []byte {
	out := make([]byte, (int(f.bits)*f.rows+7)/8)
	n := 0
	for row := 0; row < f.rows; row++ {
		line, _ := f.Row(r, row)
		for col := 0; col < int(f.bits); col++ {
			if line&(1<<(f.bits-1-uint(col))) != 0 {
				out[n/8] |= 0x80 >> (n % 8)
			}
			n++
		}
	}
	return out
}
