package vector

import (
	"image"
	"testing"

	"lcdgfx/font"
)

type surface struct {
	w, h int
	px   map[image.Point]uint32
}

func newSurface(w, h int) *surface { return &surface{w: w, h: h, px: map[image.Point]uint32{}} }

func (s *surface) Size() (int, int) { return s.w, s.h }

func (s *surface) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.px[image.Pt(x, y)] = c
}

func (s *surface) FillRect(x1, y1, x2, y2 int, c uint32) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.SetPixel(x, y, c)
		}
	}
}

func TestMeasureScalesLinearly(t *testing.T) {
	for _, r := range []rune{'A', 'W', '1', '.', ' '} {
		for _, size := range []int{6, 8, 13, 16, 24, 31, 48} {
			a := Default.Measure(r, size)
			b := Default.Measure(r, 2*size)
			if d := b - 2*a; d < 0 || d > 1 {
				t.Fatalf("%q: Measure(%d)=%d, Measure(%d)=%d", r, size, a, 2*size, b)
			}
		}
	}
	if got := Default.Measure('A', 96); got != 72 {
		t.Fatalf("Measure('A', 96)=%d, want 72", got)
	}
}

func TestLowercaseFoldsToCapitals(t *testing.T) {
	if Default.Measure('q', 20) != Default.Measure('Q', 20) {
		t.Fatalf("lowercase advance differs")
	}
	a := newSurface(64, 64)
	b := newSurface(64, 64)
	Default.Draw(a, 'k', 0, 0, 32, 1)
	Default.Draw(b, 'K', 0, 0, 32, 1)
	if len(a.px) == 0 || len(a.px) != len(b.px) {
		t.Fatalf("'k' drew %d pixels, 'K' %d", len(a.px), len(b.px))
	}
}

func TestMissingGlyphSkipped(t *testing.T) {
	s := newSurface(64, 64)
	for _, r := range []rune{'`', '{', '~', 0x263A} {
		if adv := Default.Draw(s, r, 0, 0, 24, 1); adv != 0 {
			t.Fatalf("%q advanced %d", r, adv)
		}
		if Default.Has(r) {
			t.Fatalf("%q reported present", r)
		}
	}
	if len(s.px) != 0 {
		t.Fatalf("missing glyphs drew %d pixels", len(s.px))
	}
}

func TestSubPolygonsFlushSeparately(t *testing.T) {
	h := newSurface(64, 64)
	Default.Draw(h, 'H', 0, 0, 48, 1)
	tt := newSurface(64, 64)
	Default.Draw(tt, 'T', 0, 0, 48, 1)

	// Both capitals start at the top of the cell; only T has a bar across it.
	if h.px[image.Pt(16, 2)] != 0 {
		t.Fatalf("'H' filled between its verticals")
	}
	if tt.px[image.Pt(16, 2)] != 1 {
		t.Fatalf("'T' top bar missing")
	}
	if h.px[image.Pt(3, 10)] != 1 || h.px[image.Pt(28, 10)] != 1 {
		t.Fatalf("'H' verticals missing")
	}
	if h.px[image.Pt(16, 24)] != 1 {
		t.Fatalf("'H' crossbar missing")
	}
}

func TestGlyphStaysInCell(t *testing.T) {
	for _, size := range []int{12, 24, 48} {
		s := newSurface(200, 200)
		Default.Draw(s, '8', 50, 50, size, 1)
		for p := range s.px {
			if p.X < 50 || p.X >= 50+size || p.Y < 50-size/4 || p.Y > 50+size+size/4 {
				t.Fatalf("size %d: pixel %v outside cell", size, p)
			}
		}
	}
}

func TestFaceSolidBackground(t *testing.T) {
	f := Default.Face(16)
	s := newSurface(32, 32)
	adv := f.DrawGlyph(s, '-', 0, 0, font.Style{FG: 1, BG: 2, Solid: true})
	if adv != 12 {
		t.Fatalf("advance %d, want 12", adv)
	}
	if len(s.px) != 12*16 {
		t.Fatalf("solid cell covered %d pixels", len(s.px))
	}
	if f.Height() != 16 {
		t.Fatalf("height %d", f.Height())
	}
}

func TestEveryCodeInRangeHasGlyph(t *testing.T) {
	for r := rune('!'); r <= '_'; r++ {
		if !Default.Has(r) {
			t.Fatalf("%q has no glyph", r)
		}
		s := newSurface(64, 64)
		if adv := Default.Draw(s, r, 8, 8, 24, 1); adv != 18 {
			t.Fatalf("%q advanced %d", r, adv)
		}
		if len(s.px) == 0 {
			t.Fatalf("%q drew nothing", r)
		}
	}

	// A punctuation lead must not be dropped from a string.
	f := Default.Face(16)
	s := newSurface(64, 32)
	x := f.DrawGlyph(s, '#', 0, 0, font.Style{FG: 1})
	x += f.DrawGlyph(s, '1', x, 0, font.Style{FG: 1})
	if x != 24 {
		t.Fatalf("\"#1\" advanced %d", x)
	}
	for p := range s.px {
		if p.X < 12 {
			return
		}
	}
	t.Fatalf("'#' left no pixels in its cell")
}
