package pbf

import (
	"io"

	"lcdgfx/font"
	"lcdgfx/internal/bitstream"
)

// byteAt feeds one byte at a time from a bounded region of an io.ReaderAt.
type byteAt struct {
	r        io.ReaderAt
	off, end int64
	b        [1]byte
}

func (s *byteAt) ReadByte() (byte, error) {
	if s.off >= s.end {
		return 0, io.EOF
	}
	if _, err := s.r.ReadAt(s.b[:], s.off); err != nil {
		return 0, err
	}
	s.off++
	return s.b[0], nil
}

// DrawGlyph renders g with its cell origin at (x, y), each source pixel
// drawn as an sx×sy block. Clear pixels are painted with st.BG only when
// st.Solid is set. A raster cut short by the end of the file stops drawing
// where the data runs out.
func (f *Font) DrawGlyph(s font.Surface, g Glyph, x, y, sx, sy int, st font.Style) {
	if sx < 1 {
		sx = 1
	}
	if sy < 1 {
		sy = 1
	}
	w, h := int(g.Width), int(g.Height)
	nbits := int64(w * h)
	end := min(g.bits+(nbits+7)/8, f.size)
	bits := bitstream.NewReader(&byteAt{r: f.r, off: g.bits, end: end})

	ox := x + int(g.Left)*sx
	oy := y + int(g.Top)*sy
	for j := 0; j < h; j++ {
		py := oy + j*sy
		for i := 0; i < w; i++ {
			on, ok := bits.Bit()
			if !ok {
				return
			}
			px := ox + i*sx
			switch {
			case on:
				s.FillRect(px, py, px+sx-1, py+sy-1, st.FG)
			case st.Solid:
				s.FillRect(px, py, px+sx-1, py+sy-1, st.BG)
			}
		}
	}
}

// Face adapts f to font.Face at an integer scale.
func (f *Font) Face(sx, sy int) font.Face {
	return &face{f: f, sx: max(sx, 1), sy: max(sy, 1)}
}

type face struct {
	f      *Font
	sx, sy int
}

func (fc *face) Height() int { return fc.f.LineHeight() * fc.sy }

func (fc *face) Advance(r rune) int {
	g, ok := fc.f.FindGlyph(r)
	if !ok {
		return 0
	}
	return int(g.Advance) * fc.sx
}

func (fc *face) DrawGlyph(s font.Surface, r rune, x, y int, st font.Style) int {
	g, ok := fc.f.FindGlyph(r)
	if !ok {
		return 0
	}
	fc.f.DrawGlyph(s, g, x, y, fc.sx, fc.sy, st)
	return int(g.Advance) * fc.sx
}
