// Package fbdev draws onto a Linux framebuffer device such as /dev/fb0.
//
// Colours arrive at the context's depth and are expanded to RGBA for the
// device. With Buffered set, draws go to an offscreen image and Present
// copies it to the device in one pass; otherwise every pixel is written
// through immediately.
package fbdev

import (
	"fmt"
	"image"
	"image/color"

	"lcdgfx/gfx"
	"lcdgfx/hal"
	"lcdgfx/palette"

	"golang.org/x/image/draw"
)

// Config describes how colours are interpreted and whether to buffer.
type Config struct {
	// BPP of the context's colours. Default 16 (RGB565).
	BPP      int
	Buffered bool
	Logger   hal.Logger
}

// Display is the backend over any draw.Image, normally an open device.
type Display struct {
	dev   draw.Image
	bpp   int
	r     image.Rectangle
	back  *image.RGBA
	dirty bool
	close func() error
}

// New wraps dst. The logical origin is dst.Bounds().Min.
func New(dst draw.Image, cfg Config) (*Display, error) {
	if dst == nil {
		return nil, fmt.Errorf("fbdev: no device: %w", gfx.ErrConfig)
	}
	bpp := cfg.BPP
	if bpp == 0 {
		bpp = 16
	}
	if bpp < 1 || bpp > 32 {
		return nil, fmt.Errorf("fbdev: %d bpp: %w", bpp, gfx.ErrConfig)
	}
	r := dst.Bounds()
	if r.Empty() {
		return nil, fmt.Errorf("fbdev: empty device %v: %w", r, gfx.ErrConfig)
	}
	d := &Display{dev: dst, bpp: bpp, r: r}
	if cfg.Buffered {
		d.back = image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		draw.Copy(d.back, image.Point{}, dst, r, draw.Src, nil)
	}
	hal.Logf(cfg.Logger, "fbdev: %dx%d, %d bpp, buffered %v", r.Dx(), r.Dy(), bpp, cfg.Buffered)
	return d, nil
}

// NewContext wraps dst and returns a context the size of its bounds.
func NewContext(dst draw.Image, cfg Config, flags gfx.Flags) (*gfx.Context, *Display, error) {
	d, err := New(dst, cfg)
	if err != nil {
		return nil, nil, err
	}
	c, err := gfx.New(gfx.Config{Width: d.r.Dx(), Height: d.r.Dy(), BPP: d.bpp, Flags: flags}, d)
	if err != nil {
		return nil, nil, err
	}
	return c, d, nil
}

// Close releases the device if the display opened it.
func (d *Display) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

func (d *Display) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.r.Dx() && y < d.r.Dy()
}

func (d *Display) SetPixel(x, y int, c uint32) {
	if !d.in(x, y) {
		return
	}
	col := palette.ToRGBA(d.bpp, c)
	if d.back != nil {
		d.back.SetRGBA(x, y, col)
		d.dirty = true
		return
	}
	d.dev.Set(d.r.Min.X+x, d.r.Min.Y+y, col)
}

func (d *Display) GetPixel(x, y int) uint32 {
	if !d.in(x, y) {
		return 0
	}
	if d.back != nil {
		return palette.FromRGBA(d.bpp, d.back.RGBAAt(x, y))
	}
	c := color.RGBAModel.Convert(d.dev.At(d.r.Min.X+x, d.r.Min.Y+y)).(color.RGBA)
	return palette.FromRGBA(d.bpp, c)
}

func (d *Display) FillRect(x1, y1, x2, y2 int, c uint32) {
	x1, y1 = max(x1, 0), max(y1, 0)
	x2, y2 = min(x2, d.r.Dx()-1), min(y2, d.r.Dy()-1)
	if x1 > x2 || y1 > y2 {
		return
	}
	src := image.NewUniform(palette.ToRGBA(d.bpp, c))
	if d.back != nil {
		draw.Draw(d.back, image.Rect(x1, y1, x2+1, y2+1), src, image.Point{}, draw.Src)
		d.dirty = true
		return
	}
	draw.Draw(d.dev, image.Rect(x1, y1, x2+1, y2+1).Add(d.r.Min), src, image.Point{}, draw.Src)
}

// Present copies the offscreen image to the device if anything changed.
// Unbuffered displays have nothing to do.
func (d *Display) Present() {
	if d.back == nil || !d.dirty {
		return
	}
	d.dirty = false
	draw.Copy(d.dev, d.r.Min, d.back, d.back.Bounds(), draw.Src, nil)
}

var (
	_ gfx.PixelGetter = (*Display)(nil)
	_ gfx.RectFiller  = (*Display)(nil)
	_ gfx.Presenter   = (*Display)(nil)
)
