// Package memlcd drives Sharp-style memory LCDs: reflective 1 bpp panels
// that keep their image and take whole lines over SPI. Drawing goes to a
// local buffer and marks lines dirty; Present sends only those lines.
//
// The panel wants the common electrode (VCOM) polarity to alternate
// regularly, at about 1 Hz or faster. Present flips it on every transfer;
// an idle display should call ToggleVCOM from a ticker.
//
// Messages are laid out for an MSB-first SPI bus, the periph and TinyGo
// default: the mode bits M0..M2 lead the command byte, the gate line address
// goes out bit-reversed because the panel reads it AG0 first, and the
// leftmost pixel of each data byte is bit 7.
package memlcd

import (
	"fmt"
	"math/bits"

	"lcdgfx/backend/memfb"
	"lcdgfx/backend/spilcd"
	"lcdgfx/gfx"
	"lcdgfx/hal"

	"periph.io/x/conn/v3/gpio"
)

const (
	cmdWrite = 0x80
	cmdVCOM  = 0x40
	cmdClear = 0x20
)

// Config describes the panel and its wiring. CS on these panels is active
// high.
type Config struct {
	Width  int
	Height int
	Bus    spilcd.Bus
	CS     spilcd.Pin
	Logger hal.Logger
}

// Display is the backend.
type Display struct {
	fb     *memfb.Buffer
	w, h   int
	stride int
	bus    spilcd.Bus
	cs     spilcd.Pin
	log    hal.Logger
	dirty  []uint64
	vcom   bool
	msg    []byte
	failed bool
}

// New allocates the line buffer and clears the panel.
func New(cfg Config) (*Display, error) {
	if cfg.Bus == nil {
		return nil, fmt.Errorf("memlcd: no bus: %w", gfx.ErrConfig)
	}
	if cfg.Width <= 0 || cfg.Width%8 != 0 || cfg.Height <= 0 || cfg.Height > 255 {
		return nil, fmt.Errorf("memlcd: size %dx%d: %w", cfg.Width, cfg.Height, gfx.ErrConfig)
	}
	fb, err := memfb.New(memfb.Config{Width: cfg.Width, Height: cfg.Height, BPP: 1, Flags: gfx.FlagMSB})
	if err != nil {
		return nil, err
	}
	d := &Display{
		fb:     fb,
		w:      cfg.Width,
		h:      cfg.Height,
		stride: cfg.Width / 8,
		bus:    cfg.Bus,
		cs:     cfg.CS,
		log:    cfg.Logger,
		dirty:  make([]uint64, (cfg.Height+63)/64),
	}
	if err := d.Clear(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewContext returns a 1 bpp context on a new display.
func NewContext(cfg Config) (*gfx.Context, *Display, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: d.w, Height: d.h, BPP: 1}, d)
	if err != nil {
		return nil, nil, err
	}
	return c, d, nil
}

// Bytes is the local image, one bit per pixel, highest bit leftmost.
func (d *Display) Bytes() []byte { return d.fb.Bytes() }

func (d *Display) mark(y1, y2 int) {
	for y := y1; y <= y2; y++ {
		d.dirty[y>>6] |= 1 << (y & 63)
	}
}

// DirtyLines counts the lines waiting for Present.
func (d *Display) DirtyLines() int {
	n := 0
	for _, w := range d.dirty {
		n += bits.OnesCount64(w)
	}
	return n
}

func (d *Display) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	if d.fb.GetPixel(x, y) == c&1 {
		return
	}
	d.fb.SetPixel(x, y, c)
	d.mark(y, y)
}

func (d *Display) GetPixel(x, y int) uint32 { return d.fb.GetPixel(x, y) }

func (d *Display) FillRect(x1, y1, x2, y2 int, c uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, d.w-1), min(y2, d.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	d.fb.FillRect(x1, y1, x2, y2, c)
	d.mark(y1, y2)
}

func (d *Display) mode(cmd byte) byte {
	if d.vcom {
		cmd |= cmdVCOM
	}
	d.vcom = !d.vcom
	return cmd
}

func (d *Display) send(msg []byte) error {
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return err
		}
	}
	err := d.bus.Tx(msg, nil)
	if d.cs != nil {
		if e := d.cs.Out(gpio.Low); err == nil {
			err = e
		}
	}
	return err
}

// Clear blanks the panel memory and the local buffer.
func (d *Display) Clear() error {
	clear(d.fb.Bytes())
	clear(d.dirty)
	if err := d.send([]byte{d.mode(cmdClear), 0x00}); err != nil {
		return fmt.Errorf("memlcd: clear: %w", err)
	}
	return nil
}

// ToggleVCOM flips the electrode polarity without sending image data.
func (d *Display) ToggleVCOM() error {
	return d.send([]byte{d.mode(0), 0x00})
}

// Present sends every dirty line in one write: the command byte, then per
// line its 1-based address (bit-reversed, the panel reads it AG0 first), the
// line's bytes and a zero trailer, then a final zero.
func (d *Display) Present() {
	if d.DirtyLines() == 0 {
		return
	}
	msg := append(d.msg[:0], d.mode(cmdWrite))
	pix := d.fb.Bytes()
	for i, w := range d.dirty {
		for w != 0 {
			y := i*64 + bits.TrailingZeros64(w)
			w &= w - 1
			msg = append(msg, bits.Reverse8(byte(y+1)))
			msg = append(msg, pix[y*d.stride:(y+1)*d.stride]...)
			msg = append(msg, 0x00)
		}
	}
	msg = append(msg, 0x00)
	d.msg = msg
	clear(d.dirty)
	if err := d.send(msg); err != nil && !d.failed {
		d.failed = true
		hal.Logf(d.log, "memlcd: present: %v", err)
	}
}

var (
	_ gfx.PixelGetter = (*Display)(nil)
	_ gfx.RectFiller  = (*Display)(nil)
	_ gfx.Presenter   = (*Display)(nil)
)
