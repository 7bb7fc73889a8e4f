package st7789

import (
	"fmt"

	"lcdgfx/gfx"
)

// Paletted is a packed indexed offscreen frame. Pixels are BPP bits each,
// most significant first, with rows running on without padding.
type Paletted struct {
	Width   int
	Height  int
	BPP     int
	Pix     []byte
	Palette []uint16
}

func (p Paletted) validate() error {
	switch p.BPP {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("st7789: paletted depth %d: %w", p.BPP, gfx.ErrConfig)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("st7789: paletted size %dx%d: %w", p.Width, p.Height, gfx.ErrConfig)
	}
	if need := (p.Width*p.Height*p.BPP + 7) / 8; len(p.Pix) < need {
		return fmt.Errorf("st7789: %d pixel bytes, want %d: %w", len(p.Pix), need, gfx.ErrConfig)
	}
	if len(p.Palette) < 1<<p.BPP {
		return fmt.Errorf("st7789: %d palette entries for %d bpp: %w", len(p.Palette), p.BPP, gfx.ErrConfig)
	}
	return nil
}

// index returns the palette index of pixel n.
func (p Paletted) index(n int) int {
	bit := n * p.BPP
	shift := 8 - p.BPP - bit&7
	return int(p.Pix[bit>>3]>>shift) & (1<<p.BPP - 1)
}

// BlitPaletted translates src through its palette into the draw half at
// (x, y), repeating each pixel scale times across and each line scale times
// down. The whole scaled frame goes out in one memory window.
func (d *Device) BlitPaletted(x, y int, src Paletted, scale int) error {
	if err := src.validate(); err != nil {
		return err
	}
	scale = max(scale, 1)
	w, h := src.Width*scale, src.Height*scale
	if x < 0 || y < 0 || x+w > d.w || y+h > d.h {
		return fmt.Errorf("%w: %dx%d at (%d,%d)", ErrBounds, w, h, x, y)
	}
	off := d.offset(d.target())

	// One scaled line, built once per source row and sent scale times.
	line := make([]byte, w*2)
	pos, row, repeat := len(line), -1, scale
	return d.lcd.WriteWindow(x, y+off, x+w-1, y+off+h-1, w*h*2, func(buf []byte) int {
		n := 0
		for n < len(buf) {
			if pos == len(line) {
				if repeat == scale {
					row++
					if row == src.Height {
						break
					}
					d.expand(line, src, row, scale)
					repeat = 0
				}
				repeat++
				pos = 0
			}
			k := copy(buf[n:], line[pos:])
			n += k
			pos += k
		}
		return n
	})
}

func (d *Device) expand(line []byte, src Paletted, row, scale int) {
	base := row * src.Width
	for i := 0; i < src.Width; i++ {
		c := src.Palette[src.index(base+i)]
		hi, lo := byte(c>>8), byte(c)
		for s := 0; s < scale; s++ {
			o := (i*scale + s) * 2
			line[o], line[o+1] = hi, lo
		}
	}
}
