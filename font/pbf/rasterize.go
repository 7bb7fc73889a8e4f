package pbf

import (
	"fmt"
	"math"

	"lcdgfx/font"
)

// FromFace renders runes with f and returns them cropped to their ink, ready
// for Build. Runes f draws nothing for become empty glyphs that still
// advance.
func FromFace(f font.Face, runes []rune) ([]Source, error) {
	h := f.Height()
	out := make([]Source, 0, len(runes))
	for _, r := range runes {
		adv := f.Advance(r)
		if adv > math.MaxInt8 || h > math.MaxInt8 {
			return nil, fmt.Errorf("pbf: %U is too large (%dx%d)", r, adv, h)
		}
		// Leave a margin of a full line on every side for ink outside the cell.
		m := h
		c := newCapture(adv+2*m, h+2*m)
		f.DrawGlyph(c, r, m, m, font.Style{FG: 1})
		src := Source{Codepoint: r, Advance: int8(adv)}
		if x0, y0, x1, y1, ok := c.ink(); ok {
			w, gh := x1-x0+1, y1-y0+1
			if w > math.MaxUint8 || gh > math.MaxUint8 {
				return nil, fmt.Errorf("pbf: %U ink is %dx%d", r, w, gh)
			}
			src.Width, src.Height = uint8(w), uint8(gh)
			src.Left, src.Top = int8(x0-m), int8(y0-m)
			src.Pix = make([]byte, 0, w*gh)
			for y := y0; y <= y1; y++ {
				src.Pix = append(src.Pix, c.pix[y*c.w+x0:y*c.w+x1+1]...)
			}
		}
		out = append(out, src)
	}
	return out, nil
}

type capture struct {
	w, h int
	pix  []byte
}

func newCapture(w, h int) *capture { return &capture{w: w, h: h, pix: make([]byte, w*h)} }

func (c *capture) Size() (int, int) { return c.w, c.h }

func (c *capture) SetPixel(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || v == 0 {
		return
	}
	c.pix[y*c.w+x] = 1
}

func (c *capture) FillRect(x1, y1, x2, y2 int, v uint32) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.SetPixel(x, y, v)
		}
	}
}

func (c *capture) ink() (x0, y0, x1, y1 int, ok bool) {
	x0, y0, x1, y1 = c.w, c.h, -1, -1
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if c.pix[y*c.w+x] == 0 {
				continue
			}
			x0, y0 = min(x0, x), min(y0, y)
			x1, y1 = max(x1, x), max(y1, y)
		}
	}
	return x0, y0, x1, y1, x1 >= 0
}
