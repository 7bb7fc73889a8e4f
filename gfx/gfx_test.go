package gfx

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"tinygo.org/x/drivers"
)

// pixels implements only SetPixel.
type pixels struct {
	px    map[image.Point]uint32
	calls int
}

func newPixels() *pixels { return &pixels{px: map[image.Point]uint32{}} }

func (p *pixels) SetPixel(x, y int, c uint32) {
	p.calls++
	p.px[image.Pt(x, y)] = c
}

// full implements every optional interface.
type full struct {
	*pixels
	fills, blits, presents int
}

func newFull() *full { return &full{pixels: newPixels()} }

func (f *full) GetPixel(x, y int) uint32 { return f.px[image.Pt(x, y)] }

func (f *full) FillRect(x1, y1, x2, y2 int, c uint32) {
	f.fills++
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			f.px[image.Pt(x, y)] = c
		}
	}
}

func (f *full) Blit1bpp(x, y, w, h int, data []byte, fg, bg uint32, solid bool) {
	f.blits++
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			bit := j*w + i
			if data[bit/8]&(0x80>>(bit%8)) != 0 {
				f.px[image.Pt(x+i, y+j)] = fg
			} else if solid {
				f.px[image.Pt(x+i, y+j)] = bg
			}
		}
	}
}

func (f *full) Present() { f.presents++ }

func mustNew(t *testing.T, cfg Config, b Backend) *Context {
	t.Helper()
	c, err := New(cfg, b)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewRejectsBadConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 0, Height: 10, BPP: 1},
		{Width: 10, Height: -1, BPP: 1},
		{Width: 10, Height: 10, BPP: 0},
		{Width: 10, Height: 10, BPP: 33},
	} {
		if _, err := New(cfg, newPixels()); !errors.Is(err, ErrConfig) {
			t.Fatalf("%+v: err = %v", cfg, err)
		}
	}
	if _, err := New(Config{Width: 1, Height: 1, BPP: 1}, nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("nil backend: %v", err)
	}
}

func TestFillSquare(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 16, Height: 16, BPP: 16}, p)
	c.SetColor(0xFFFF)
	c.FillRect(0, 0, 9, 9)

	if len(p.px) != 100 {
		t.Fatalf("%d pixels written, want 100", len(p.px))
	}
	for pt, v := range p.px {
		if pt.X > 9 || pt.Y > 9 || v != 0xFFFF {
			t.Fatalf("pixel %v = %#x", pt, v)
		}
	}
}

func TestColorsAreMasked(t *testing.T) {
	for _, tc := range []struct {
		bpp  int
		in   uint32
		want uint32
	}{
		{1, 0xFF, 1},
		{3, 0x0E, 6},
		{4, 0x1234, 0x4},
		{16, 0xABCDEF, 0xCDEF},
		{24, 0xFFABCDEF, 0xABCDEF},
		{32, 0xFFFFFFFF, 0xFFFFFFFF},
	} {
		p := newPixels()
		c := mustNew(t, Config{Width: 4, Height: 4, BPP: tc.bpp}, p)
		c.SetPixel(1, 1, tc.in)
		c.SetColor(tc.in)
		c.FillRect(2, 2, 2, 2)
		if got := p.px[image.Pt(1, 1)]; got != tc.want {
			t.Fatalf("bpp %d: SetPixel sent %#x, want %#x", tc.bpp, got, tc.want)
		}
		if got := p.px[image.Pt(2, 2)]; got != tc.want {
			t.Fatalf("bpp %d: FillRect sent %#x, want %#x", tc.bpp, got, tc.want)
		}
		if c.Color() != tc.want {
			t.Fatalf("bpp %d: Color() = %#x", tc.bpp, c.Color())
		}
	}
}

func TestOffSurfaceIsClipped(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 8, Height: 6, BPP: 1}, p)
	for _, pt := range []image.Point{{-1, 0}, {0, -1}, {8, 0}, {0, 6}, {100, 100}} {
		c.SetPixel(pt.X, pt.Y, 1)
		if v := c.GetPixel(pt.X, pt.Y); v != 0 {
			t.Fatalf("GetPixel%v = %d", pt, v)
		}
	}
	if p.calls != 0 {
		t.Fatalf("%d backend writes for off-surface pixels", p.calls)
	}

	c.FillRect(-5, -5, 1, 1)
	c.FillRect(20, 20, 30, 30)
	c.DrawLine(-10, 3, 20, 3)
	if len(p.px) != 4+8 {
		t.Fatalf("%d pixels written", len(p.px))
	}
	for pt := range p.px {
		if pt.X < 0 || pt.Y < 0 || pt.X >= 8 || pt.Y >= 6 {
			t.Fatalf("wrote %v", pt)
		}
	}
}

func TestFillRectCornerOrder(t *testing.T) {
	a, b := newPixels(), newPixels()
	ca := mustNew(t, Config{Width: 20, Height: 20, BPP: 8}, a)
	cb := mustNew(t, Config{Width: 20, Height: 20, BPP: 8}, b)
	ca.FillRect(3, 14, 11, 2)
	cb.FillRect(11, 2, 3, 14)
	if len(a.px) != 9*13 || len(a.px) != len(b.px) {
		t.Fatalf("coverage %d vs %d", len(a.px), len(b.px))
	}
	for pt := range a.px {
		if _, ok := b.px[pt]; !ok {
			t.Fatalf("%v missing after swapping corners", pt)
		}
	}
}

func TestPolygonRectMatchesFillRect(t *testing.T) {
	poly, rect := newPixels(), newPixels()
	cp := mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, poly)
	cr := mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, rect)
	cp.FillPolygon([]image.Point{{4, 5}, {20, 5}, {20, 17}, {4, 17}})
	cr.FillRect(4, 5, 20, 17)
	if len(poly.px) != len(rect.px) {
		t.Fatalf("polygon %d pixels, rect %d", len(poly.px), len(rect.px))
	}
	for pt := range rect.px {
		if _, ok := poly.px[pt]; !ok {
			t.Fatalf("polygon missing %v", pt)
		}
	}
}

func TestClearUsesBackground(t *testing.T) {
	f := newFull()
	c := mustNew(t, Config{Width: 5, Height: 4, BPP: 4}, f)
	c.SetColor(5)
	c.SetBgColor(2)
	c.Clear()
	if len(f.px) != 20 {
		t.Fatalf("%d pixels cleared", len(f.px))
	}
	for pt, v := range f.px {
		if v != 2 {
			t.Fatalf("%v = %d after Clear", pt, v)
		}
	}
	if c.Color() != 5 || c.BgColor() != 2 {
		t.Fatalf("colors changed: fg %d bg %d", c.Color(), c.BgColor())
	}
}

func TestDispatchFallbacks(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 8, Height: 8, BPP: 1}, p)
	c.SetPixel(1, 1, 1)
	if c.GetPixel(1, 1) != 0 {
		t.Fatalf("GetPixel fallback should read 0")
	}
	c.FillRect(0, 0, 1, 1)
	c.Blit1bpp(4, 4, 2, 2, []byte{0b1001_0000}, false)
	c.Present()
	if len(p.px) != 4+2 {
		t.Fatalf("%d pixels", len(p.px))
	}

	f := newFull()
	c = mustNew(t, Config{Width: 8, Height: 8, BPP: 1}, f)
	c.FillRect(0, 0, 7, 7)
	c.Blit1bpp(0, 0, 8, 1, []byte{0xAA}, true)
	c.Present()
	if f.fills != 1 || f.blits != 1 || f.presents != 1 {
		t.Fatalf("fills %d blits %d presents %d", f.fills, f.blits, f.presents)
	}
	if f.calls != 0 {
		t.Fatalf("SetPixel used %d times despite native ops", f.calls)
	}
}

func TestTransformFlags(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 10, Height: 20, BPP: 1, Flags: FlagSwapXY}, p)
	if w, h := c.Size(); w != 20 || h != 10 {
		t.Fatalf("swapped size %dx%d", w, h)
	}
	c.SetPixel(3, 1, 1)
	if p.px[image.Pt(1, 3)] != 1 {
		t.Fatalf("swap: %v", p.px)
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 10, Height: 20, BPP: 1, Flags: FlagInvertX | FlagInvertY}, p)
	c.SetPixel(0, 0, 1)
	c.FillRect(0, 19, 1, 19)
	for _, pt := range []image.Point{{9, 19}, {9, 0}, {8, 0}} {
		if p.px[pt] != 1 {
			t.Fatalf("invert: %v not set in %v", pt, p.px)
		}
	}

	// Blits under a transform take the per-pixel path.
	f := newFull()
	c = mustNew(t, Config{Width: 8, Height: 8, BPP: 1, Flags: FlagInvertX}, f)
	c.Blit1bpp(0, 0, 1, 1, []byte{0x80}, false)
	if f.blits != 0 || f.px[image.Pt(7, 0)] != 1 {
		t.Fatalf("blit under invert: blits %d, %v", f.blits, f.px)
	}
}

func TestDrawLineAndCursor(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 16, Height: 16, BPP: 1}, p)
	c.DrawLine(0, 0, 9, 3)
	if len(p.px) != 10 {
		t.Fatalf("line drew %d pixels", len(p.px))
	}
	if p.px[image.Pt(0, 0)] != 1 || p.px[image.Pt(9, 3)] != 1 {
		t.Fatalf("endpoints missing")
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 16, Height: 16, BPP: 1}, p)
	c.MoveTo(2, 2)
	c.LineTo(2, 6)
	c.LineTo(6, 6)
	if x, y := c.Cursor(); x != 6 || y != 6 {
		t.Fatalf("cursor %d,%d", x, y)
	}
	if len(p.px) != 9 {
		t.Fatalf("L shape drew %d pixels", len(p.px))
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 16, Height: 16, BPP: 1}, p)
	c.DrawRect(1, 1, 4, 3)
	c.DrawPolygon([]image.Point{{10, 10}, {12, 10}, {12, 12}})
	if len(p.px) != 10+6 {
		t.Fatalf("outlines drew %d pixels", len(p.px))
	}
}

func TestTextWithDefaultFont(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 16, Height: 8, BPP: 1}, p)
	if c.FontHeight() != 6 {
		t.Fatalf("default font height %d", c.FontHeight())
	}
	if adv := c.DrawChar('!', 0, 0); adv != 4 {
		t.Fatalf("'!' advance %d", adv)
	}
	for _, pt := range []image.Point{{1, 0}, {1, 1}, {1, 2}, {1, 4}} {
		if p.px[pt] != 1 {
			t.Fatalf("'!' missing %v", pt)
		}
	}
	if len(p.px) != 4 {
		t.Fatalf("'!' drew %d pixels", len(p.px))
	}

	if x := c.DrawString("!!", 0, 0); x != 8 {
		t.Fatalf("DrawString end %d", x)
	}
	if w := c.StringWidth("ab\nabc"); w != 12 {
		t.Fatalf("StringWidth %d", w)
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 16, Height: 8, BPP: 1}, p)
	c.SetSolidText(true)
	c.DrawChar('!', 0, 0)
	if len(p.px) != 4*6 {
		t.Fatalf("solid cell %d pixels", len(p.px))
	}
}

func TestBlit1bpp(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 8, Height: 8, BPP: 4}, p)
	c.SetColor(9)
	c.SetBgColor(3)
	// Two rows of three pixels share one byte: 101 011.
	c.Blit1bpp(2, 2, 3, 2, []byte{0b1010_1100}, true)
	want := map[image.Point]uint32{
		{2, 2}: 9, {3, 2}: 3, {4, 2}: 9,
		{2, 3}: 3, {3, 3}: 9, {4, 3}: 9,
	}
	if len(p.px) != len(want) {
		t.Fatalf("%d pixels", len(p.px))
	}
	for pt, v := range want {
		if p.px[pt] != v {
			t.Fatalf("%v = %d, want %d", pt, p.px[pt], v)
		}
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 8, Height: 8, BPP: 1}, p)
	c.Blit1bpp(6, 6, 4, 4, []byte{0xFF, 0xFF}, false)
	if len(p.px) != 4 {
		t.Fatalf("clipped blit wrote %d pixels", len(p.px))
	}
	c.Blit1bpp(0, 0, 4, 4, []byte{0xFF}, false)
	if len(p.px) != 4 {
		t.Fatalf("short data blit drew")
	}
}

func TestCirclesAndSegments(t *testing.T) {
	p := newPixels()
	c := mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, p)
	c.DrawCircle(8, 8, 3)
	for _, pt := range []image.Point{{11, 8}, {5, 8}, {8, 5}, {8, 11}} {
		if p.px[pt] != 1 {
			t.Fatalf("circle missing %v", pt)
		}
	}
	if _, ok := p.px[image.Pt(8, 8)]; ok {
		t.Fatalf("outline filled its center")
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, p)
	c.FillCircle(10, 10, 4)
	if p.px[image.Pt(10, 10)] != 1 || p.px[image.Pt(14, 10)] != 1 || p.px[image.Pt(10, 6)] != 1 {
		t.Fatalf("filled circle incomplete")
	}
	if _, ok := p.px[image.Pt(14, 14)]; ok {
		t.Fatalf("filled circle covers its bounding corner")
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, p)
	c.FillSegment(16, 16, 8, 0, math.Pi/2)
	if p.px[image.Pt(19, 19)] != 1 {
		t.Fatalf("segment missing its interior")
	}
	for _, pt := range []image.Point{{13, 13}, {13, 19}, {19, 13}} {
		if _, ok := p.px[pt]; ok {
			t.Fatalf("segment leaked into %v", pt)
		}
	}

	p = newPixels()
	c = mustNew(t, Config{Width: 32, Height: 32, BPP: 1}, p)
	c.FillSegment(16, 16, 8, 0, 2*math.Pi)
	for _, pt := range []image.Point{{13, 13}, {13, 19}, {19, 13}, {19, 19}} {
		if p.px[pt] != 1 {
			t.Fatalf("full turn missing %v", pt)
		}
	}
}

func TestScroll(t *testing.T) {
	f := newFull()
	c := mustNew(t, Config{Width: 8, Height: 8, BPP: 8}, f)
	c.SetPixel(2, 5, 9)
	c.SetBgColor(1)
	c.Scroll(0, -2)
	if c.GetPixel(2, 3) != 9 {
		t.Fatalf("pixel did not move up")
	}
	if c.GetPixel(2, 5) != 0 {
		t.Fatalf("old position kept its value")
	}
	for x := 0; x < 8; x++ {
		if c.GetPixel(x, 6) != 1 || c.GetPixel(x, 7) != 1 {
			t.Fatalf("exposed rows not cleared at x=%d", x)
		}
	}
}

func TestDisplayer(t *testing.T) {
	f := newFull()
	c := mustNew(t, Config{Width: 8, Height: 8, BPP: 16}, f)
	d := c.Displayer()
	if w, h := d.Size(); w != 8 || h != 8 {
		t.Fatalf("size %dx%d", w, h)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	d.SetPixel(1, 1, white)
	if c.GetPixel(1, 1) != 0xFFFF {
		t.Fatalf("SetPixel white = %#x", c.GetPixel(1, 1))
	}

	d.SetScroll(2)
	if c.GetPixel(1, 1) != 0 {
		t.Fatalf("content did not follow the scroll register")
	}
	d.SetPixel(0, 2, white)
	if c.GetPixel(0, 0) != 0xFFFF {
		t.Fatalf("row 2 not shown at the top after SetScroll(2)")
	}

	// Rows 0..7 at scroll 2 wrap around the bottom of the screen.
	d.FillRectangle(3, 0, 1, 8, white)
	for y := 0; y < 8; y++ {
		if c.GetPixel(3, y) != 0xFFFF {
			t.Fatalf("wrapped fill missed row %d", y)
		}
	}
	if err := d.SetRotation(drivers.Rotation90); err != nil || c.GetPixel(3, 0) != 0xFFFF {
		t.Fatalf("SetRotation changed the surface: %v", err)
	}
	if err := d.Display(); err != nil || f.presents != 1 {
		t.Fatalf("Display: %v, presents %d", err, f.presents)
	}
}
