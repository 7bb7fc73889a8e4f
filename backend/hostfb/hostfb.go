// Package hostfb draws into a hal.Framebuffer, the desktop window's RGB565
// buffer. Pixel writes only mark the frame dirty; Present publishes it once.
package hostfb

import (
	"fmt"

	"lcdgfx/gfx"
	"lcdgfx/hal"
)

// BPP is the color depth of the backend.
const BPP = 16

// Display is a gfx backend over a framebuffer.
type Display struct {
	fb     hal.Framebuffer
	log    hal.Logger
	dirty  bool
	failed bool
}

// New wraps fb. log may be nil.
func New(fb hal.Framebuffer, log hal.Logger) (*Display, error) {
	if fb == nil {
		return nil, fmt.Errorf("hostfb: no framebuffer: %w", gfx.ErrConfig)
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("hostfb: pixel format %d: %w", fb.Format(), gfx.ErrConfig)
	}
	return &Display{fb: fb, log: log}, nil
}

// NewContext wraps fb and returns a 16 bpp context drawing onto it.
func NewContext(fb hal.Framebuffer, log hal.Logger, flags gfx.Flags) (*gfx.Context, *Display, error) {
	d, err := New(fb, log)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: fb.Width(), Height: fb.Height(), BPP: BPP, Flags: flags}, d)
	if err != nil {
		return nil, nil, err
	}
	return c, d, nil
}

// Dirty reports whether the frame changed since the last Present.
func (d *Display) Dirty() bool { return d.dirty }

func (d *Display) offset(x, y int) int {
	buf := d.fb.Buffer()
	if x < 0 || y < 0 || x >= d.fb.Width() || y >= d.fb.Height() {
		return -1
	}
	off := y*d.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return -1
	}
	return off
}

func (d *Display) SetPixel(x, y int, c uint32) {
	off := d.offset(x, y)
	if off < 0 {
		return
	}
	buf := d.fb.Buffer()
	buf[off] = byte(c)
	buf[off+1] = byte(c >> 8)
	d.dirty = true
}

func (d *Display) GetPixel(x, y int) uint32 {
	off := d.offset(x, y)
	if off < 0 {
		return 0
	}
	buf := d.fb.Buffer()
	return uint32(buf[off]) | uint32(buf[off+1])<<8
}

func (d *Display) FillRect(x1, y1, x2, y2 int, c uint32) {
	buf := d.fb.Buffer()
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, d.fb.Width()-1), min(y2, d.fb.Height()-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	lo, hi := byte(c), byte(c>>8)
	stride := d.fb.StrideBytes()
	for y := y1; y <= y2; y++ {
		row := y * stride
		for x := x1; x <= x2; x++ {
			off := row + x*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	d.dirty = true
}

// Present publishes the frame if anything was drawn since the last call.
// The first publish failure is logged; later ones are dropped.
func (d *Display) Present() {
	if !d.dirty {
		return
	}
	d.dirty = false
	if err := d.fb.Present(); err != nil && !d.failed {
		d.failed = true
		hal.Logf(d.log, "hostfb: present: %v", err)
	}
}

var (
	_ gfx.PixelGetter = (*Display)(nil)
	_ gfx.RectFiller  = (*Display)(nil)
	_ gfx.Presenter   = (*Display)(nil)
)
