package pbf

import (
	"fmt"
	"io"
	"strings"

	"lcdgfx/font"
)

// Dump writes a human readable listing of the container: the header, then
// every glyph's metrics followed by its raster drawn with '#' and '.'.
func (f *Font) Dump(w io.Writer) error {
	h := f.hdr
	fmt.Fprintf(w, "version %d  line height %d  glyphs %d  wildcard %U\n",
		h.Version, h.LineHeight, h.GlyphCount, rune(h.Wildcard))
	fmt.Fprintf(w, "hash table %d buckets  codepoint %d bytes\n", h.HashTableSize, h.CodepointBytes)

	cps, err := f.Codepoints()
	if err != nil {
		return err
	}
	for _, cp := range cps {
		g, ok := f.FindGlyph(cp)
		if !ok {
			fmt.Fprintf(w, "\n%U: unreadable\n", cp)
			continue
		}
		fmt.Fprintf(w, "\n%U %dx%d left %d top %d advance %d\n",
			cp, g.Width, g.Height, g.Left, g.Top, g.Advance)
		r := &rows{w: int(g.Width), h: int(g.Height)}
		f.DrawGlyph(r, g, -int(g.Left), -int(g.Top), 1, 1, font.Style{FG: 1})
		for _, line := range r.lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// rows collects a glyph raster as text.
type rows struct {
	w, h int
	pix  []bool
}

func (r *rows) Size() (int, int) { return r.w, r.h }

func (r *rows) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	if r.pix == nil {
		r.pix = make([]bool, r.w*r.h)
	}
	r.pix[y*r.w+x] = c != 0
}

func (r *rows) FillRect(x1, y1, x2, y2 int, c uint32) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			r.SetPixel(x, y, c)
		}
	}
}

func (r *rows) lines() []string {
	out := make([]string, r.h)
	var sb strings.Builder
	for y := 0; y < r.h; y++ {
		sb.Reset()
		for x := 0; x < r.w; x++ {
			if r.pix != nil && r.pix[y*r.w+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}
