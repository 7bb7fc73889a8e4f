// Package xface adapts golang.org/x/image/font faces, including TrueType
// and OpenType fonts, to font.Face. Glyph coverage is thresholded at one
// half: a pixel is either foreground or left alone.
package xface

import (
	"fmt"

	"lcdgfx/font"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face is an x/image face seen as a font.Face. The cell is the face's line
// height with the baseline at its ascent.
type Face struct {
	f      xfont.Face
	height int
	ascent int
}

// New wraps f.
func New(f xfont.Face) *Face {
	m := f.Metrics()
	h := m.Height.Ceil()
	if h <= 0 {
		h = (m.Ascent + m.Descent).Ceil()
	}
	return &Face{f: f, height: h, ascent: m.Ascent.Ceil()}
}

// Parse loads a TrueType or OpenType font at size pixels per em.
func Parse(data []byte, size float64) (*Face, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("xface: parse: %w", err)
	}
	f, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: xfont.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("xface: face: %w", err)
	}
	return New(f), nil
}

func (fc *Face) Height() int { return fc.height }

// Ascent is the baseline's distance from the top of the cell.
func (fc *Face) Ascent() int { return fc.ascent }

func (fc *Face) Advance(r rune) int {
	adv, ok := fc.f.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return adv.Round()
}

func (fc *Face) DrawGlyph(s font.Surface, r rune, x, y int, st font.Style) int {
	dr, mask, mp, adv, ok := fc.f.Glyph(fixed.P(0, fc.ascent), r)
	if !ok {
		return 0
	}
	a := adv.Round()
	if st.Solid && a > 0 {
		s.FillRect(x, y, x+a-1, y+fc.height-1, st.BG)
	}
	for py := dr.Min.Y; py < dr.Max.Y; py++ {
		for px := dr.Min.X; px < dr.Max.X; px++ {
			_, _, _, cov := mask.At(mp.X+px-dr.Min.X, mp.Y+py-dr.Min.Y).RGBA()
			if cov >= 0x8000 {
				s.SetPixel(x+px, y+py, st.FG)
			}
		}
	}
	return a
}

var _ font.Face = (*Face)(nil)
