package spilcd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"lcdgfx/gfx"
	"lcdgfx/hal"
	"lcdgfx/internal/panelsim"

	"periph.io/x/conn/v3/gpio"
)

type levels []gpio.Level

func (l *levels) Out(v gpio.Level) error {
	*l = append(*l, v)
	return nil
}

func TestRunInitTable(t *testing.T) {
	var sent []Command
	var slept []time.Duration
	table := []byte{
		0x01, 5, 0,
		0x3A, 0, 1, 0x55,
		0xB6, 10, 3, 1, 2, 3,
		0x00, 0, TableEnd,
		0x29, 0, 0, // after the terminator
	}
	err := RunInitTable(table, func(cmd byte, data []byte) error {
		sent = append(sent, Command{cmd, append([]byte(nil), data...)})
		return nil
	}, func(d time.Duration) { slept = append(slept, d) })
	if err != nil {
		t.Fatal(err)
	}
	if len(sent) != 3 || sent[0].Cmd != 0x01 || sent[1].Cmd != 0x3A || !bytes.Equal(sent[2].Data, []byte{1, 2, 3}) {
		t.Fatalf("sent %+v", sent)
	}
	if len(slept) != 2 || slept[0] != 5*time.Millisecond || slept[1] != 10*time.Millisecond {
		t.Fatalf("slept %v", slept)
	}
}

// Command is used by the table test to record sends.
type Command struct {
	Cmd  byte
	Data []byte
}

func TestRunInitTableTruncated(t *testing.T) {
	for name, table := range map[string][]byte{
		"short data":    {0xB6, 0, 3, 1, 2},
		"no terminator": {0x01, 0, 0},
		"empty":         nil,
		"partial entry": {0x01, 0},
	} {
		t.Run(name, func(t *testing.T) {
			err := RunInitTable(table, func(byte, []byte) error { return nil }, nil)
			if !errors.Is(err, ErrInitTable) {
				t.Fatalf("err = %v", err)
			}
		})
	}
}

func TestRunInitTableStopsOnSendError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := RunInitTable(Table(cmd(1), cmd(2)), func(byte, []byte) error {
		calls++
		return boom
	}, nil)
	if !errors.Is(err, boom) || calls != 1 {
		t.Fatalf("err = %v after %d calls", err, calls)
	}
}

func TestControllerTablesAreWellFormed(t *testing.T) {
	for name, ctl := range Controllers {
		n := 0
		err := RunInitTable(ctl.Init, func(byte, []byte) error {
			n++
			return nil
		}, nil)
		if err != nil || n == 0 {
			t.Fatalf("%s: %d commands, %v", name, n, err)
		}
		if ctl.MemoryHeight < ctl.Height {
			t.Fatalf("%s: memory %d rows for %d visible", name, ctl.MemoryHeight, ctl.Height)
		}
	}
}

func TestNewResetsAndRunsTable(t *testing.T) {
	p := panelsim.New(320, 480)
	var rst levels
	var slept []time.Duration
	d, err := New(Config{
		Controller: ILI9488,
		Bus:        p,
		DC:         p.DC(),
		RST:        &rst,
		Sleep:      func(d time.Duration) { slept = append(slept, d) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := d.Size(); w != 320 || h != 320 {
		t.Fatalf("size %dx%d", w, h)
	}
	want := []byte{0xC0, 0xC1, 0xC5, 0x3A, 0xB1, 0xB6, 0x21, 0x36, 0x11, 0x29}
	if !bytes.Equal(p.Commands(), want) {
		t.Fatalf("commands % x", p.Commands())
	}
	if !bytes.Equal(p.Log[2].Data, []byte{0x00, 0x12, 0x80, 0x40}) {
		t.Fatalf("VMCTRL data % x", p.Log[2].Data)
	}
	if len(rst) != 2 || rst[0] != gpio.Low || rst[1] != gpio.High {
		t.Fatalf("reset %v", rst)
	}
	wantSleep := []time.Duration{64 * time.Millisecond, 140 * time.Millisecond, 120 * time.Millisecond}
	if len(slept) != 3 || slept[0] != wantSleep[0] || slept[1] != wantSleep[1] || slept[2] != wantSleep[2] {
		t.Fatalf("slept %v", slept)
	}
}

func testPanel(t *testing.T, cfg Config) (*gfx.Context, *Device, *panelsim.Panel) {
	t.Helper()
	p := panelsim.New(8, 6)
	cfg.Controller = Controller{Name: "test", Width: 8, Height: 4, MemoryHeight: 6, Init: Table()}
	cfg.Bus = p
	cfg.DC = p.DC()
	c, d, err := NewContext(cfg, 0)
	if err != nil {
		t.Fatal(err)
	}
	return c, d, p
}

func TestFillRectStreamsBigEndian(t *testing.T) {
	c, _, p := testPanel(t, Config{TxBuffer: 4})
	c.SetColor(0xF81F)
	c.FillRect(2, 1, 4, 2)

	if !bytes.Equal(p.Commands(), []byte{CmdCASET, CmdRASET, CmdRAMWR}) {
		t.Fatalf("commands % x", p.Commands())
	}
	if !bytes.Equal(p.Log[0].Data, []byte{0, 2, 0, 4}) || !bytes.Equal(p.Log[1].Data, []byte{0, 1, 0, 2}) {
		t.Fatalf("window % x / % x", p.Log[0].Data, p.Log[1].Data)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			want := uint16(0)
			if x >= 2 && x <= 4 && y >= 1 && y <= 2 {
				want = 0xF81F
			}
			if p.At(x, y) != want {
				t.Fatalf("(%d,%d) = %#04x", x, y, p.At(x, y))
			}
		}
	}
}

func TestSetPixelHonoursOffsets(t *testing.T) {
	c, _, p := testPanel(t, Config{ColOffset: 2, RowOffset: 1})
	c.SetPixel(0, 0, 0x1234)
	c.SetPixel(8, 0, 0xFFFF) // off panel
	if p.At(2, 1) != 0x1234 {
		t.Fatalf("pixel landed elsewhere")
	}
	if len(p.Log) != 3 {
		t.Fatalf("%d commands", len(p.Log))
	}
}

func TestBlitSolidAndTransparent(t *testing.T) {
	_, d, p := testPanel(t, Config{})
	d.FillMemory(0, 0, 7, 3, 0x0F0F)
	d.Blit1bpp(0, 0, 8, 2, []byte{0xA5, 0x0F}, 0xFFFF, 0x0001, true)
	rows := []string{"#.#..#.#", "....####"}
	for y, row := range rows {
		for x, ch := range row {
			want := uint16(0x0001)
			if ch == '#' {
				want = 0xFFFF
			}
			if p.At(x, y) != want {
				t.Fatalf("solid (%d,%d) = %#04x", x, y, p.At(x, y))
			}
		}
	}

	d.Blit1bpp(0, 2, 4, 1, []byte{0x90}, 0xAAAA, 0, false)
	want := []uint16{0xAAAA, 0x0F0F, 0x0F0F, 0xAAAA}
	for x, w := range want {
		if p.At(x, 2) != w {
			t.Fatalf("transparent (%d,2) = %#04x", x, p.At(x, 2))
		}
	}
}

func TestDrawErrorsLoggedOnce(t *testing.T) {
	var log strings.Builder
	c, d, p := testPanel(t, Config{Logger: hal.NewLogger(&log)})
	p.FailAfter = 1
	for i := 0; i < 3; i++ {
		c.SetPixel(i, 0, 0xFFFF)
	}
	if !d.Failed() {
		t.Fatalf("failure not recorded")
	}
	if strings.Count(log.String(), panelsim.ErrInjected.Error()) != 1 {
		t.Fatalf("log %q", log.String())
	}
}

func TestNewRequiresBusAndDC(t *testing.T) {
	if _, err := New(Config{Controller: ST7789}); !errors.Is(err, gfx.ErrConfig) {
		t.Fatalf("err = %v", err)
	}
}
