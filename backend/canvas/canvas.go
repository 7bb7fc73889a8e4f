// Package canvas is a software backend shaped like a browser canvas: draws
// land in an RGBA image data buffer and Present copies it to the visible
// canvas when, and only when, something changed.
package canvas

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"lcdgfx/gfx"
	"lcdgfx/palette"

	"golang.org/x/image/draw"
)

// Config describes the canvas.
type Config struct {
	Width  int
	Height int
	// BPP is the depth of the colors the context hands over. They are
	// expanded to RGBA with palette.ToRGBA.
	BPP int
	// OnPresent, if set, is called with the visible image after each flip.
	OnPresent func(*image.RGBA)
}

// Canvas is the backend.
type Canvas struct {
	w, h   int
	bpp    int
	vals   []uint32
	data   *image.RGBA
	screen *image.RGBA
	dirty  bool
	flips  int
	onShow func(*image.RGBA)
}

// New allocates a black canvas.
func New(cfg Config) (*Canvas, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.BPP < 1 || cfg.BPP > 32 {
		return nil, fmt.Errorf("canvas: %dx%d at %d bpp: %w", cfg.Width, cfg.Height, cfg.BPP, gfx.ErrConfig)
	}
	r := image.Rect(0, 0, cfg.Width, cfg.Height)
	c := &Canvas{
		w:      cfg.Width,
		h:      cfg.Height,
		bpp:    cfg.BPP,
		vals:   make([]uint32, cfg.Width*cfg.Height),
		data:   image.NewRGBA(r),
		screen: image.NewRGBA(r),
		onShow: cfg.OnPresent,
	}
	black := palette.ToRGBA(cfg.BPP, 0)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			c.data.SetRGBA(x, y, black)
		}
	}
	copy(c.screen.Pix, c.data.Pix)
	return c, nil
}

// NewContext allocates a canvas and a context drawing onto it.
func NewContext(cfg Config, flags gfx.Flags) (*gfx.Context, *Canvas, error) {
	cv, err := New(cfg)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := gfx.New(gfx.Config{Width: cfg.Width, Height: cfg.Height, BPP: cfg.BPP, Flags: flags}, cv)
	if err != nil {
		return nil, nil, err
	}
	return ctx, cv, nil
}

func (c *Canvas) SetPixel(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.vals[y*c.w+x] = v
	c.data.SetRGBA(x, y, palette.ToRGBA(c.bpp, v))
	c.dirty = true
}

func (c *Canvas) GetPixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0
	}
	return c.vals[y*c.w+x]
}

func (c *Canvas) FillRect(x1, y1, x2, y2 int, v uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, c.w-1), min(y2, c.h-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	col := palette.ToRGBA(c.bpp, v)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			c.vals[y*c.w+x] = v
			c.data.SetRGBA(x, y, col)
		}
	}
	c.dirty = true
}

// Present copies the image data to the visible canvas if it changed.
func (c *Canvas) Present() {
	if !c.dirty {
		return
	}
	c.dirty = false
	c.flips++
	copy(c.screen.Pix, c.data.Pix)
	if c.onShow != nil {
		c.onShow(c.screen)
	}
}

// Flips is the number of times Present actually redrew the canvas.
func (c *Canvas) Flips() int { return c.flips }

// Screen returns the visible image. It changes on the next flip.
func (c *Canvas) Screen() *image.RGBA { return c.screen }

// Snapshot returns a copy of the visible image enlarged scale times with
// nearest-neighbor sampling.
func (c *Canvas) Snapshot(scale int) *image.RGBA {
	scale = max(scale, 1)
	dst := image.NewRGBA(image.Rect(0, 0, c.w*scale, c.h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.screen, c.screen.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes Snapshot(scale) to w.
func (c *Canvas) WritePNG(w io.Writer, scale int) error {
	if err := png.Encode(w, c.Snapshot(scale)); err != nil {
		return fmt.Errorf("canvas: encode png: %w", err)
	}
	return nil
}

var (
	_ gfx.PixelGetter = (*Canvas)(nil)
	_ gfx.RectFiller  = (*Canvas)(nil)
	_ gfx.Presenter   = (*Canvas)(nil)
)
