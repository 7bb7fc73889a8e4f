package st7789

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"lcdgfx/backend/spilcd"
	"lcdgfx/gfx"
	"lcdgfx/internal/panelsim"
)

const testW, testH = 4, 3

func newPanel(t *testing.T, mode Mode, memH int) (*gfx.Context, *Device, *panelsim.Panel) {
	t.Helper()
	p := panelsim.New(testW, memH)
	cfg := Config{Mode: mode}
	cfg.Controller = spilcd.Controller{Name: "test", Width: testW, Height: testH, MemoryHeight: memH, Init: spilcd.Table()}
	cfg.Bus = p
	cfg.DC = p.DC()
	c, d, err := NewContext(cfg, 0)
	if err != nil {
		t.Fatal(err)
	}
	return c, d, p
}

// visible copies what the panel currently shows.
func visible(p *panelsim.Panel) []uint16 {
	var out []uint16
	for _, row := range p.Visible(testH) {
		out = append(out, row...)
	}
	return out
}

func TestSetupDefinesScrollArea(t *testing.T) {
	_, d, p := newPanel(t, Double, 2*testH)
	if !bytes.Equal(p.Commands(), []byte{spilcd.CmdVSCRDEF, spilcd.CmdVSCSAD}) {
		t.Fatalf("commands % x", p.Commands())
	}
	if !bytes.Equal(p.Log[0].Data, []byte{0, 0, 0, 6, 0, 0}) {
		t.Fatalf("VSCRDEF % x", p.Log[0].Data)
	}
	if d.Shown() != Top || d.VisibleOffset() != 0 {
		t.Fatalf("shown %d at %d", d.Shown(), d.VisibleOffset())
	}
}

func TestDoubleBufferFlip(t *testing.T) {
	c, d, p := newPanel(t, Double, 2*testH)
	colors := []uint32{0xF800, 0x07E0, 0x001F, 0xFFFF}
	for i, col := range colors {
		before := visible(p)
		c.SetColor(col)
		if i%2 == 0 {
			c.FillRect(0, 0, testW-1, testH-1)
		} else {
			for y := 0; y < testH; y++ {
				for x := 0; x < testW; x++ {
					c.SetPixel(x, y, col)
					if !slices.Equal(visible(p), before) {
						t.Fatalf("frame %d: visible frame changed while drawing", i)
					}
				}
			}
		}
		if !slices.Equal(visible(p), before) {
			t.Fatalf("frame %d: visible frame changed before Present", i)
		}
		c.Present()
		for j, v := range visible(p) {
			if v != uint16(col) {
				t.Fatalf("frame %d: pixel %d = %#04x, want %#04x", i, j, v, col)
			}
		}
	}
	if want := []int{0, 3, 0, 3, 0}; !slices.Equal(p.Scrolls, want) {
		t.Fatalf("scroll starts %v, want %v", p.Scrolls, want)
	}
	if d.Shown() != Top {
		t.Fatalf("shown %d after four flips", d.Shown())
	}
}

func TestSingleBufferDrawsVisible(t *testing.T) {
	c, _, p := newPanel(t, Single, 2*testH)
	c.SetPixel(1, 1, 0xABCD)
	if p.At(1, 1) != 0xABCD {
		t.Fatalf("pixel not in visible rows")
	}
	c.Present()
	if len(p.Scrolls) != 1 {
		t.Fatalf("single buffer flipped: %v", p.Scrolls)
	}
}

func TestDoubleNeedsTallMemory(t *testing.T) {
	p := panelsim.New(testW, 5)
	cfg := Config{Mode: Double}
	cfg.Controller = spilcd.Controller{Name: "test", Width: testW, Height: testH, MemoryHeight: 5, Init: spilcd.Table()}
	cfg.Bus = p
	cfg.DC = p.DC()
	if _, err := New(cfg); !errors.Is(err, gfx.ErrConfig) {
		t.Fatalf("err = %v", err)
	}
}

func TestBlitPalettedDoubles(t *testing.T) {
	c, d, p := newPanel(t, Double, 2*testH)
	src := Paletted{
		Width:   2,
		Height:  1,
		BPP:     2,
		Pix:     []byte{0x30}, // indices 0, 3
		Palette: []uint16{0x0000, 0x1111, 0x2222, 0x3333},
	}
	if err := d.BlitPaletted(0, 0, src, 2); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 2; y++ {
		got := []uint16{p.At(0, testH+y), p.At(1, testH+y), p.At(2, testH+y), p.At(3, testH+y)}
		if !slices.Equal(got, []uint16{0, 0, 0x3333, 0x3333}) {
			t.Fatalf("hidden row %d = %04x", y, got)
		}
	}
	c.Present()
	if p.At(3, p.Scroll+1) != 0x3333 || p.At(3, p.Scroll+2) != 0 {
		t.Fatalf("visible frame wrong after flip")
	}
}

func TestBlitPalettedOneBit(t *testing.T) {
	_, d, p := newPanel(t, Single, 2*testH)
	src := Paletted{Width: 4, Height: 3, BPP: 1, Pix: []byte{0x96, 0xF0}, Palette: []uint16{0x0001, 0xFFFF}}
	if err := d.BlitPaletted(0, 0, src, 1); err != nil {
		t.Fatal(err)
	}
	rows := []string{"#..#", ".##.", "####"}
	for y, row := range rows {
		for x, ch := range row {
			want := uint16(0x0001)
			if ch == '#' {
				want = 0xFFFF
			}
			if p.At(x, y) != want {
				t.Fatalf("(%d,%d) = %#04x", x, y, p.At(x, y))
			}
		}
	}
}

func TestBlitPalettedRejects(t *testing.T) {
	_, d, _ := newPanel(t, Double, 2*testH)
	ok := Paletted{Width: 2, Height: 1, BPP: 1, Pix: []byte{0}, Palette: []uint16{0, 1}}
	if err := d.BlitPaletted(0, 0, ok, 3); !errors.Is(err, ErrBounds) {
		t.Fatalf("oversized blit: %v", err)
	}
	bad := ok
	bad.BPP = 3
	if err := d.BlitPaletted(0, 0, bad, 1); !errors.Is(err, gfx.ErrConfig) {
		t.Fatalf("3 bpp: %v", err)
	}
	short := ok
	short.Palette = []uint16{0}
	if err := d.BlitPaletted(0, 0, short, 1); !errors.Is(err, gfx.ErrConfig) {
		t.Fatalf("short palette: %v", err)
	}
}
