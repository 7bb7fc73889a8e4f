// Package gfx is the device-independent drawing surface.
//
// A Context owns the logical size, color depth, colors, font and cursor of
// one surface and forwards pixel work to a Backend. A backend only has to
// implement SetPixel; every other operation falls back to a generic version
// when the backend does not provide it. The fallbacks are chosen once in New.
//
// Nothing in the drawing API returns an error: coordinates outside the
// surface are clipped, degenerate shapes draw nothing and unknown characters
// are skipped.
package gfx

import (
	"errors"
	"fmt"

	"lcdgfx/font"
)

var ErrConfig = errors.New("gfx: invalid config")

// Backend is the one operation every display must implement. Coordinates
// are device coordinates inside the configured size and colors are already
// masked to the configured depth.
type Backend interface {
	SetPixel(x, y int, c uint32)
}

// PixelGetter reads back a device pixel.
type PixelGetter interface {
	GetPixel(x, y int) uint32
}

// RectFiller fills the inclusive device rectangle x1..x2, y1..y2.
// Corners are ordered and inside the surface.
type RectFiller interface {
	FillRect(x1, y1, x2, y2 int, c uint32)
}

// Blitter draws a 1 bpp bitmap (MSB first, rows not padded) whose w×h area
// lies entirely inside the surface.
type Blitter interface {
	Blit1bpp(x, y, w, h int, data []byte, fg, bg uint32, solid bool)
}

// Presenter makes the frame drawn so far visible.
type Presenter interface {
	Present()
}

// Flags modify how logical coordinates reach the backend. The layout flags
// are read by memory backends that pack 1 bpp pixels.
type Flags uint16

const (
	FlagInvertX Flags = 1 << iota
	FlagInvertY
	FlagSwapXY
	// FlagVerticalByte packs eight vertically adjacent pixels per byte.
	FlagVerticalByte
	// FlagMSB puts the first pixel of a byte in bit 7.
	FlagMSB
	// FlagZigzag reverses the pixel order of every other row.
	FlagZigzag
)

const transformFlags = FlagInvertX | FlagInvertY | FlagSwapXY

// Config describes a surface. Width and Height are the device size; with
// FlagSwapXY the logical surface is Height×Width.
type Config struct {
	Width  int
	Height int
	BPP    int
	Flags  Flags
	// Font defaults to bitmap.Font4x6.
	Font font.Face
}

// Context is a drawing surface. It is not safe for concurrent use.
type Context struct {
	dw, dh int // device size
	w, h   int // logical size
	bpp    int
	mask   uint32
	flags  Flags

	fg, bg uint32
	face   font.Face
	solid  bool
	cx, cy int

	backend  Backend
	setPixel func(x, y int, c uint32)
	getPixel func(x, y int) uint32
	fillRect func(x1, y1, x2, y2 int, c uint32)
	blit     func(x, y, w, h int, data []byte, fg, bg uint32, solid bool)
	present  func()
}

// New validates cfg and binds the context to b.
func New(cfg Config, b Backend) (*Context, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil backend", ErrConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrConfig, cfg.Width, cfg.Height)
	}
	if cfg.BPP < 1 || cfg.BPP > 32 {
		return nil, fmt.Errorf("%w: %d bpp", ErrConfig, cfg.BPP)
	}

	c := &Context{
		dw:      cfg.Width,
		dh:      cfg.Height,
		w:       cfg.Width,
		h:       cfg.Height,
		bpp:     cfg.BPP,
		mask:    uint32(uint64(1)<<uint(cfg.BPP) - 1),
		flags:   cfg.Flags,
		backend: b,
	}
	if cfg.Flags&FlagSwapXY != 0 {
		c.w, c.h = c.h, c.w
	}
	c.fg = c.mask
	c.SetFont(cfg.Font)
	c.resolve()
	return c, nil
}

// resolve fills the dispatch table from the backend, substituting the
// generic implementation for every optional interface it lacks.
func (c *Context) resolve() {
	b := c.backend
	c.setPixel = b.SetPixel

	if g, ok := b.(PixelGetter); ok {
		c.getPixel = g.GetPixel
	} else {
		c.getPixel = func(int, int) uint32 { return 0 }
	}

	if f, ok := b.(RectFiller); ok {
		c.fillRect = f.FillRect
	} else {
		c.fillRect = c.genericFillRect
	}

	if bl, ok := b.(Blitter); ok {
		c.blit = bl.Blit1bpp
	} else {
		c.blit = c.genericBlit
	}

	if p, ok := b.(Presenter); ok {
		c.present = p.Present
	} else {
		c.present = func() {}
	}
}

func (c *Context) genericFillRect(x1, y1, x2, y2 int, col uint32) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.setPixel(x, y, col)
		}
	}
}

func (c *Context) genericBlit(x, y, w, h int, data []byte, fg, bg uint32, solid bool) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			bit := j*w + i
			on := data[bit>>3]&(0x80>>(bit&7)) != 0
			switch {
			case on:
				c.setPixel(x+i, y+j, fg)
			case solid:
				c.setPixel(x+i, y+j, bg)
			}
		}
	}
}

// Size is the logical size.
func (c *Context) Size() (w, h int) { return c.w, c.h }

// BPP is the color depth.
func (c *Context) BPP() int { return c.bpp }

// Flags returns the flags the context was created with.
func (c *Context) Flags() Flags { return c.flags }

// Mask is the value every color is reduced with before reaching the backend.
func (c *Context) Mask() uint32 { return c.mask }

func (c *Context) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// device maps a logical coordinate to the backend's coordinate space.
func (c *Context) device(x, y int) (int, int) {
	if c.flags&FlagSwapXY != 0 {
		x, y = y, x
	}
	if c.flags&FlagInvertX != 0 {
		x = c.dw - 1 - x
	}
	if c.flags&FlagInvertY != 0 {
		y = c.dh - 1 - y
	}
	return x, y
}

// SetColor sets the foreground color.
func (c *Context) SetColor(col uint32) { c.fg = col & c.mask }

// SetBgColor sets the background color.
func (c *Context) SetBgColor(col uint32) { c.bg = col & c.mask }

// Color returns the foreground color.
func (c *Context) Color() uint32 { return c.fg }

// BgColor returns the background color.
func (c *Context) BgColor() uint32 { return c.bg }

// Present hands the finished frame to the backend.
func (c *Context) Present() { c.present() }
