package memlcd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"lcdgfx/gfx"
	"lcdgfx/hal"

	"periph.io/x/conn/v3/gpio"
)

type bus struct {
	msgs [][]byte
	err  error
}

func (b *bus) Tx(w, r []byte) error {
	b.msgs = append(b.msgs, append([]byte(nil), w...))
	return b.err
}

type pin struct{ levels []gpio.Level }

func (p *pin) Out(l gpio.Level) error {
	p.levels = append(p.levels, l)
	return nil
}

func TestNewClearsPanel(t *testing.T) {
	b, cs := &bus{}, &pin{}
	if _, err := New(Config{Width: 16, Height: 8, Bus: b, CS: cs}); err != nil {
		t.Fatal(err)
	}
	if len(b.msgs) != 1 || !bytes.Equal(b.msgs[0], []byte{cmdClear, 0}) {
		t.Fatalf("msgs % x", b.msgs)
	}
	if len(cs.levels) != 2 || cs.levels[0] != gpio.High || cs.levels[1] != gpio.Low {
		t.Fatalf("cs %v", cs.levels)
	}
}

func TestPresentSendsDirtyLines(t *testing.T) {
	b := &bus{}
	c, d, err := NewContext(Config{Width: 16, Height: 8, Bus: b})
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 2, 1)
	c.SetColor(1)
	c.FillRect(0, 5, 15, 5)
	if d.DirtyLines() != 2 {
		t.Fatalf("%d dirty lines", d.DirtyLines())
	}
	c.Present()
	want := []byte{
		cmdWrite | cmdVCOM,
		0xC0, 0x80, 0x00, 0x00, // line 3
		0x60, 0xFF, 0xFF, 0x00, // line 6
		0x00,
	}
	if len(b.msgs) != 2 || !bytes.Equal(b.msgs[1], want) {
		t.Fatalf("msgs % x", b.msgs)
	}
	if d.DirtyLines() != 0 {
		t.Fatalf("dirty after present")
	}

	c.Present()
	c.SetPixel(0, 2, 1) // already set
	c.Present()
	if len(b.msgs) != 2 {
		t.Fatalf("clean present sent %d messages", len(b.msgs)-2)
	}
}

// decode reads a write message the way the panel does off an MSB-first bus.
func decode(t *testing.T, msg []byte, stride int) (write bool, lines map[int][]bool) {
	t.Helper()
	write = msg[0]&0x80 != 0
	lines = map[int][]bool{}
	rest := msg[1:]
	for len(rest) >= stride+2 {
		addr := 0
		for bit := 0; bit < 8; bit++ {
			if rest[0]&(0x80>>bit) != 0 {
				addr |= 1 << bit
			}
		}
		px := make([]bool, 0, stride*8)
		for _, b := range rest[1 : 1+stride] {
			for bit := 0; bit < 8; bit++ {
				px = append(px, b&(0x80>>bit) != 0)
			}
		}
		lines[addr] = px
		if rest[1+stride] != 0 {
			t.Fatalf("line %d trailer %#x", addr, rest[1+stride])
		}
		rest = rest[2+stride:]
	}
	if len(rest) != 1 || rest[0] != 0 {
		t.Fatalf("message tail % x", rest)
	}
	return write, lines
}

func TestWireOrderIsMSBFirst(t *testing.T) {
	b := &bus{}
	c, _, err := NewContext(Config{Width: 16, Height: 8, Bus: b})
	if err != nil {
		t.Fatal(err)
	}
	c.SetPixel(0, 0, 1)
	c.SetPixel(9, 7, 1)
	c.Present()
	if !bytes.Equal(b.msgs[1][:4], []byte{cmdWrite | cmdVCOM, 0x80, 0x80, 0x00}) {
		t.Fatalf("msg % x", b.msgs[1])
	}
	write, lines := decode(t, b.msgs[1], 2)
	if !write || len(lines) != 2 {
		t.Fatalf("write %v, lines %v", write, lines)
	}
	for addr, x := range map[int]int{1: 0, 8: 9} {
		px, ok := lines[addr]
		if !ok {
			t.Fatalf("line %d missing", addr)
		}
		for i, on := range px {
			if on != (i == x) {
				t.Fatalf("line %d pixel %d = %v", addr, i, on)
			}
		}
	}
}

func TestVCOMAlternates(t *testing.T) {
	b := &bus{}
	d, err := New(Config{Width: 8, Height: 2, Bus: b})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := d.ToggleVCOM(); err != nil {
			t.Fatal(err)
		}
	}
	got := []byte{b.msgs[1][0], b.msgs[2][0], b.msgs[3][0]}
	if !bytes.Equal(got, []byte{cmdVCOM, 0, cmdVCOM}) {
		t.Fatalf("vcom bits % x", got)
	}
}

func TestPresentErrorLoggedOnce(t *testing.T) {
	var log strings.Builder
	b := &bus{}
	c, _, err := NewContext(Config{Width: 8, Height: 4, Bus: b, Logger: hal.NewLogger(&log)})
	if err != nil {
		t.Fatal(err)
	}
	b.err = errors.New("spi stalled")
	for y := 0; y < 3; y++ {
		c.SetPixel(0, y, 1)
		c.Present()
	}
	if strings.Count(log.String(), "spi stalled") != 1 {
		t.Fatalf("log %q", log.String())
	}
}

func TestBadConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 10, Height: 8, Bus: &bus{}},
		{Width: 8, Height: 300, Bus: &bus{}},
		{Width: 8, Height: 8},
	} {
		if _, err := New(cfg); !errors.Is(err, gfx.ErrConfig) {
			t.Fatalf("%+v: err = %v", cfg, err)
		}
	}
}
