// Package qr draws QR codes onto a gfx context, one filled square per
// module, using the context's foreground for dark modules and its background
// for light ones.
package qr

import (
	"fmt"

	"lcdgfx/gfx"

	qrcode "github.com/skip2/go-qrcode"
)

// Code is an encoded symbol ready to draw.
type Code struct {
	bits [][]bool
}

// Encode builds a medium recovery symbol for text. quiet keeps the four
// module border the standard asks for around the symbol.
func Encode(text string, quiet bool) (*Code, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	q.DisableBorder = !quiet
	return &Code{bits: q.Bitmap()}, nil
}

// Modules is the side length in modules, border included.
func (q *Code) Modules() int { return len(q.bits) }

// Dark reports the module at column x, row y.
func (q *Code) Dark(x, y int) bool {
	if y < 0 || y >= len(q.bits) || x < 0 || x >= len(q.bits[y]) {
		return false
	}
	return q.bits[y][x]
}

// Draw paints the symbol with its top-left corner at (x, y), each module
// scale pixels square, and returns the side length in pixels.
func (q *Code) Draw(c *gfx.Context, x, y, scale int) int {
	if scale < 1 {
		scale = 1
	}
	fg, bg := c.Color(), c.BgColor()
	for my, row := range q.bits {
		py := y + my*scale
		for mx, dark := range row {
			px := x + mx*scale
			col := bg
			if dark {
				col = fg
			}
			c.FillRectColor(px, py, px+scale-1, py+scale-1, col)
		}
	}
	return len(q.bits) * scale
}

// Fit is the largest module scale at which the symbol fits in side pixels,
// or 0 if it does not fit at all.
func (q *Code) Fit(side int) int {
	if len(q.bits) == 0 {
		return 0
	}
	return side / len(q.bits)
}
