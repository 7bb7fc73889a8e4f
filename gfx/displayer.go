package gfx

import (
	"image/color"

	"lcdgfx/palette"

	"tinygo.org/x/drivers"
)

// Displayer adapts a Context to drivers.Displayer and to the display
// contract tinyterm expects, so tinyfont and tinyterm can draw onto any
// surface. Colors are converted to the context's depth with
// palette.FromRGBA.
//
// SetScroll emulates a hardware vertical scroll register: with scroll line
// s, row r written by the caller shows up at screen row (r-s) mod height,
// and moving the register moves the screen content to match. Rows that
// would wrap around come back as background.
type Displayer struct {
	c      *Context
	scroll int
}

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer returns an adapter drawing onto c.
func (c *Context) Displayer() *Displayer { return &Displayer{c: c} }

func (d *Displayer) Size() (x, y int16) {
	w, h := d.c.Size()
	return int16(w), int16(h)
}

func (d *Displayer) row(y int) int {
	_, h := d.c.Size()
	y = (y - d.scroll) % h
	if y < 0 {
		y += h
	}
	return y
}

func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	_, h := d.c.Size()
	if y < 0 || int(y) >= h {
		return
	}
	d.c.SetPixel(int(x), d.row(int(y)), palette.FromRGBA(d.c.bpp, c))
}

// Display presents the context.
func (d *Displayer) Display() error {
	d.c.Present()
	return nil
}

func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	_, h := d.c.Size()
	col := palette.FromRGBA(d.c.bpp, c)
	y0 := max(int(y), 0)
	y1 := min(int(y)+int(height), h) - 1
	x1 := int(x) + int(width) - 1
	if y0 > y1 {
		return nil
	}
	// The scrolled band may wrap past the bottom of the screen.
	top, bot := d.row(y0), d.row(y1)
	if top <= bot {
		d.c.FillRectColor(int(x), top, x1, bot, col)
		return nil
	}
	d.c.FillRectColor(int(x), top, x1, h-1, col)
	d.c.FillRectColor(int(x), 0, x1, bot, col)
	return nil
}

// SetScroll moves the emulated scroll register to line.
func (d *Displayer) SetScroll(line int16) {
	_, h := d.c.Size()
	next := int(line) % h
	if next < 0 {
		next += h
	}
	if next == d.scroll {
		return
	}
	delta := (next - d.scroll + h) % h
	d.scroll = next
	d.c.Scroll(0, -delta)
}

// SetRotation is accepted for interface compatibility. Rotation is fixed by
// the context's flags.
func (d *Displayer) SetRotation(_ drivers.Rotation) error {
	return nil
}

// ScrollUp moves the content up by lines and clears the exposed rows with bg.
func (d *Displayer) ScrollUp(lines int16, bg color.RGBA) error {
	if lines <= 0 {
		return nil
	}
	saved := d.c.bg
	d.c.bg = palette.FromRGBA(d.c.bpp, bg) & d.c.mask
	d.c.Scroll(0, -int(lines))
	d.c.bg = saved
	return nil
}
