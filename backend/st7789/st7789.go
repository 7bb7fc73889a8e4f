// Package st7789 drives an ST7789 with tear-free double buffering done by
// the controller itself. Panel memory holds two frames stacked vertically;
// drawing goes to the half that is not being scanned out, and Present moves
// the vertical scroll start to that half with a single command.
package st7789

import (
	"errors"
	"fmt"

	"lcdgfx/backend/spilcd"
	"lcdgfx/gfx"
	"lcdgfx/hal"
)

// ErrBounds reports a paletted blit that does not fit on the panel.
var ErrBounds = errors.New("st7789: blit outside the panel")

// Mode selects single or double buffering.
type Mode uint8

const (
	// Single draws straight into the visible rows.
	Single Mode = iota
	// Double draws into the hidden half and flips on Present.
	Double
)

// Half names one of the two frames in panel memory.
type Half uint8

const (
	Top Half = iota
	Bottom
)

func (h Half) other() Half { return h ^ 1 }

// Config is a spilcd configuration plus the buffering mode. Controller
// defaults to spilcd.ST7789. Double buffering needs MemoryHeight of at
// least twice Height.
type Config struct {
	spilcd.Config
	Mode Mode
}

// Device is the backend.
type Device struct {
	lcd    *spilcd.Device
	w, h   int
	mode   Mode
	shown  Half
	log    hal.Logger
	failed bool
}

// New brings the panel up and defines the whole memory as the scroll area.
func New(cfg Config) (*Device, error) {
	if cfg.Controller.Init == nil {
		cfg.Controller = spilcd.ST7789
	}
	lcd, err := spilcd.New(cfg.Config)
	if err != nil {
		return nil, err
	}
	w, h := lcd.Size()
	mem := lcd.MemoryHeight()
	if cfg.Mode == Double && mem < 2*h {
		return nil, fmt.Errorf("st7789: %d memory rows cannot hold two %d-row frames: %w", mem, h, gfx.ErrConfig)
	}
	// VSCRDEF: no fixed areas, every memory row scrolls.
	if err := lcd.Command(spilcd.CmdVSCRDEF, 0, 0, byte(mem>>8), byte(mem), 0, 0); err != nil {
		return nil, fmt.Errorf("st7789: scroll area: %w", err)
	}
	d := &Device{lcd: lcd, w: w, h: h, mode: cfg.Mode, shown: Top, log: cfg.Logger}
	if err := d.scrollTo(d.offset(Top)); err != nil {
		return nil, fmt.Errorf("st7789: scroll start: %w", err)
	}
	return d, nil
}

// NewContext brings the panel up and returns a 16 bpp context on it.
func NewContext(cfg Config, flags gfx.Flags) (*gfx.Context, *Device, error) {
	d, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: d.w, Height: d.h, BPP: spilcd.BPP, Flags: flags}, d)
	if err != nil {
		return nil, nil, err
	}
	return c, d, nil
}

func (d *Device) offset(h Half) int {
	if h == Bottom {
		return d.h
	}
	return 0
}

// target is the half draws land in.
func (d *Device) target() Half {
	if d.mode == Double {
		return d.shown.other()
	}
	return d.shown
}

// Shown is the half being scanned out.
func (d *Device) Shown() Half { return d.shown }

// VisibleOffset is the memory row the panel starts scanning at.
func (d *Device) VisibleOffset() int { return d.offset(d.shown) }

func (d *Device) scrollTo(row int) error {
	return d.lcd.Command(spilcd.CmdVSCSAD, byte(row>>8), byte(row))
}

func (d *Device) fail(err error) {
	if err == nil || d.failed {
		return
	}
	d.failed = true
	hal.Logf(d.log, "st7789: %v", err)
}

func (d *Device) SetPixel(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	y += d.offset(d.target())
	d.fail(d.lcd.FillMemory(x, y, x, y, c))
}

func (d *Device) FillRect(x1, y1, x2, y2 int, c uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, d.w-1), min(y2, d.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	off := d.offset(d.target())
	d.fail(d.lcd.FillMemory(x1, y1+off, x2, y2+off, c))
}

func (d *Device) Blit1bpp(x, y, w, h int, data []byte, fg, bg uint32, solid bool) {
	if !solid {
		for j := 0; j < h; j++ {
			for i := 0; i < w; i++ {
				bit := j*w + i
				if data[bit>>3]&(0x80>>(bit&7)) != 0 {
					d.SetPixel(x+i, y+j, fg)
				}
			}
		}
		return
	}
	off := d.offset(d.target())
	d.fail(d.lcd.BlitMemory1bpp(x, y+off, w, h, data, fg, bg))
}

// Present makes the frame drawn since the last call visible. In Double
// mode it points the scroll start at the half just drawn; the other half
// becomes the draw target. In Single mode it does nothing.
func (d *Device) Present() {
	if d.mode != Double {
		return
	}
	next := d.shown.other()
	if err := d.scrollTo(d.offset(next)); err != nil {
		d.fail(err)
		return
	}
	d.shown = next
}

var (
	_ gfx.RectFiller = (*Device)(nil)
	_ gfx.Blitter    = (*Device)(nil)
	_ gfx.Presenter  = (*Device)(nil)
)
