// Package memfb is a gfx backend over a plain byte slice.
//
// Pixels are packed without row padding: pixel (x, y) starts at bit
// (y*width+x)*bpp. Depths below 8 share bytes, lowest bits first unless
// gfx.FlagMSB is set; depths that are a multiple of 8 are stored little
// endian unless gfx.FlagMSB is set. For 1 bpp, gfx.FlagVerticalByte packs
// eight vertically adjacent pixels into each byte the way page-addressed
// monochrome controllers expect. gfx.FlagZigzag mirrors every odd row.
package memfb

import (
	"fmt"
	"image"

	"lcdgfx/gfx"
	"lcdgfx/palette"
)

// Config describes the buffer layout.
type Config struct {
	Width  int
	Height int
	BPP    int
	Flags  gfx.Flags
	// OnPresent, if set, is called from Present with the buffer when it has
	// changed since the previous call.
	OnPresent func(pix []byte)
}

// Buffer is an in-memory framebuffer.
type Buffer struct {
	w, h   int
	bpp    int
	flags  gfx.Flags
	pix    []byte
	dirty  bool
	onShow func([]byte)
}

// New allocates a zeroed buffer.
func New(cfg Config) (*Buffer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("memfb: size %dx%d: %w", cfg.Width, cfg.Height, gfx.ErrConfig)
	}
	switch {
	case cfg.BPP >= 1 && cfg.BPP <= 8 && 8%cfg.BPP == 0:
	case cfg.BPP == 16 || cfg.BPP == 24 || cfg.BPP == 32:
	default:
		return nil, fmt.Errorf("memfb: %d bpp: %w", cfg.BPP, gfx.ErrConfig)
	}
	if cfg.Flags&gfx.FlagVerticalByte != 0 && cfg.BPP != 1 {
		return nil, fmt.Errorf("memfb: vertical byte layout needs 1 bpp: %w", gfx.ErrConfig)
	}
	n := (cfg.Width*cfg.Height*cfg.BPP + 7) / 8
	if cfg.Flags&gfx.FlagVerticalByte != 0 {
		n = cfg.Width * ((cfg.Height + 7) / 8)
	}
	return &Buffer{
		w:      cfg.Width,
		h:      cfg.Height,
		bpp:    cfg.BPP,
		flags:  cfg.Flags,
		pix:    make([]byte, n),
		onShow: cfg.OnPresent,
	}, nil
}

// NewContext allocates a buffer and a context drawing onto it.
func NewContext(cfg Config) (*gfx.Context, *Buffer, error) {
	b, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: cfg.Width, Height: cfg.Height, BPP: cfg.BPP, Flags: cfg.Flags}, b)
	if err != nil {
		return nil, nil, err
	}
	return c, b, nil
}

// Bytes returns the backing store.
func (b *Buffer) Bytes() []byte { return b.pix }

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) { return b.w, b.h }

// Dirty reports whether anything was written since the last Present.
func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// locate returns the byte index and bit shift of pixel (x, y) for sub-byte
// depths.
func (b *Buffer) locate(x, y int) (int, uint) {
	if b.flags&gfx.FlagZigzag != 0 && y&1 == 1 {
		x = b.w - 1 - x
	}
	if b.flags&gfx.FlagVerticalByte != 0 {
		bit := uint(y & 7)
		if b.flags&gfx.FlagMSB != 0 {
			bit = 7 - bit
		}
		return x + (y>>3)*b.w, bit
	}
	off := (y*b.w + x) * b.bpp
	shift := uint(off & 7)
	if b.flags&gfx.FlagMSB != 0 {
		shift = uint(8 - b.bpp - off&7)
	}
	return off >> 3, shift
}

func (b *Buffer) SetPixel(x, y int, c uint32) {
	if !b.inside(x, y) {
		return
	}
	b.dirty = true
	if b.bpp >= 8 {
		b.putBytes(b.byteOffset(x, y), c)
		return
	}
	i, shift := b.locate(x, y)
	mask := byte(1<<b.bpp-1) << shift
	b.pix[i] = b.pix[i]&^mask | byte(c<<shift)&mask
}

func (b *Buffer) GetPixel(x, y int) uint32 {
	if !b.inside(x, y) {
		return 0
	}
	if b.bpp >= 8 {
		return b.getBytes(b.byteOffset(x, y))
	}
	i, shift := b.locate(x, y)
	return uint32(b.pix[i]>>shift) & (1<<b.bpp - 1)
}

func (b *Buffer) byteOffset(x, y int) int {
	if b.flags&gfx.FlagZigzag != 0 && y&1 == 1 {
		x = b.w - 1 - x
	}
	return (y*b.w + x) * (b.bpp / 8)
}

func (b *Buffer) putBytes(off int, c uint32) {
	n := b.bpp / 8
	for k := 0; k < n; k++ {
		shift := uint(8 * k)
		if b.flags&gfx.FlagMSB != 0 {
			shift = uint(8 * (n - 1 - k))
		}
		b.pix[off+k] = byte(c >> shift)
	}
}

func (b *Buffer) getBytes(off int) uint32 {
	n := b.bpp / 8
	var c uint32
	for k := 0; k < n; k++ {
		shift := uint(8 * k)
		if b.flags&gfx.FlagMSB != 0 {
			shift = uint(8 * (n - 1 - k))
		}
		c |= uint32(b.pix[off+k]) << shift
	}
	return c
}

// FillRect fills whole bytes directly when a row span covers them.
func (b *Buffer) FillRect(x1, y1, x2, y2 int, c uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, b.w-1), min(y2, b.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	b.dirty = true
	if b.bpp == 8 && b.flags&gfx.FlagZigzag == 0 {
		for y := y1; y <= y2; y++ {
			row := b.pix[y*b.w+x1 : y*b.w+x2+1]
			for i := range row {
				row[i] = byte(c)
			}
		}
		return
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			b.SetPixel(x, y, c)
		}
	}
}

// Present reports the buffer to OnPresent if it changed.
func (b *Buffer) Present() {
	if !b.dirty {
		return
	}
	b.dirty = false
	if b.onShow != nil {
		b.onShow(b.pix)
	}
}

// RGBA renders the buffer through palette.ToRGBA.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.w, b.h))
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			img.SetRGBA(x, y, palette.ToRGBA(b.bpp, b.GetPixel(x, y)))
		}
	}
	return img
}

var (
	_ gfx.PixelGetter = (*Buffer)(nil)
	_ gfx.RectFiller  = (*Buffer)(nil)
	_ gfx.Presenter   = (*Buffer)(nil)
)
