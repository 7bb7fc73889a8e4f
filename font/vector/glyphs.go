package vector

import "math"

// Design grid. Capitals and digits span yt..yb; the cell top is at y=12 and
// the baseline at y=60 in design units.
const (
	xl, xc, xr = 4, 16, 28
	yt, yq1    = 14, 25
	ym, yq3    = 36, 47
	yb, yd     = 58, 68

	strokeHalf = 3
	monoAdv    = 72 // 36 design units, stored at advanceUnits resolution
)

// stroke is a straight pen stroke between two grid points.
type stroke struct{ x0, y0, x1, y1 int }

func s(x0, y0, x1, y1 int) stroke { return stroke{x0, y0, x1, y1} }

func dot(x, y int) stroke { return stroke{x, y, x, y} }

var (
	top    = s(xl, yt, xr, yt)
	mid    = s(xl, ym, xr, ym)
	bottom = s(xl, yb, xr, yb)
	left   = s(xl, yt, xl, yb)
	right  = s(xr, yt, xr, yb)
	ulft   = s(xl, yt, xl, ym)
	llft   = s(xl, ym, xl, yb)
	urgt   = s(xr, yt, xr, ym)
	lrgt   = s(xr, ym, xr, yb)
	stem   = s(xc, yt, xc, yb)
)

var strokes = map[rune][]stroke{
	' ': nil,
	'!': {s(xc, yt, xc, yq3-4), dot(xc, yb)},
	'"': {s(xc-5, yt, xc-5, yt+8), s(xc+5, yt, xc+5, yt+8)},
	'#': {
		s(xc-5, yq1-5, xc-5, yq3+5), s(xc+5, yq1-5, xc+5, yq3+5),
		s(xl+2, yq1+3, xr-2, yq1+3), s(xl+2, yq3-3, xr-2, yq3-3),
	},
	'$': {top, ulft, mid, lrgt, bottom, s(xc, yt-4, xc, yb+4)},
	'%': {s(xr, yt, xl, yb), dot(xl+2, yt+2), dot(xr-2, yb-2)},
	'&': {
		s(xl+6, yt, xc+4, yt), s(xl+6, yt, xl+6, yq1), s(xc+4, yt, xc+4, yq1),
		s(xl+6, yq1, xr, yb), s(xc+4, yq1, xl, yq3), s(xl, yq3, xl, yb),
		s(xl, yb, xc, yb), s(xc, yb, xr, yq3),
	},
	'\'': {s(xc, yt, xc, yt+8)},
	'(':  {s(xc+4, yt, xc-4, ym), s(xc-4, ym, xc+4, yb)},
	')':  {s(xc-4, yt, xc+4, ym), s(xc+4, ym, xc-4, yb)},
	'*':  {s(xc, yq1, xc, yq3), s(xl+4, yq1+3, xr-4, yq3-3), s(xr-4, yq1+3, xl+4, yq3-3)},
	'+':  {s(xl+4, ym, xr-4, ym), s(xc, ym-10, xc, ym+10)},
	',':  {s(xc, yb, xc-4, yb+10)},
	'-':  {s(xl+4, ym, xr-4, ym)},
	'.':  {dot(xc, yb)},
	'/':  {s(xr, yt, xl, yb)},
	'0':  {top, right, bottom, left, s(xr, yt, xl, yb)},
	'1':  {stem, s(xl+4, yq1, xc, yt), s(xl+4, yb, xr-4, yb)},
	'2':  {top, urgt, mid, llft, bottom},
	'3':  {top, right, s(xl+6, ym, xr, ym), bottom},
	'4':  {ulft, mid, right},
	'5':  {top, ulft, mid, lrgt, bottom},
	'6':  {top, left, mid, lrgt, bottom},
	'7':  {top, s(xr, yt, xc, yb)},
	'8':  {top, left, right, mid, bottom},
	'9':  {top, ulft, right, mid, bottom},
	':':  {dot(xc, yq1+4), dot(xc, yq3+4)},
	';':  {dot(xc, yq1+4), s(xc, yq3+4, xc-4, yb+6)},
	'<':  {s(xr-4, yq1, xl+4, ym), s(xl+4, ym, xr-4, yq3)},
	'=':  {s(xl, ym-6, xr, ym-6), s(xl, ym+6, xr, ym+6)},
	'>':  {s(xl+4, yq1, xr-4, ym), s(xr-4, ym, xl+4, yq3)},
	'?':  {top, s(xr, yt, xr, yq1), s(xr, yq1, xc, ym), s(xc, ym, xc, yq3-2), dot(xc, yb)},
	'@': {
		top, left, bottom, s(xr, yt, xr, ym+6),
		s(xc-4, yq1+4, xr, yq1+4), s(xc-4, yq1+4, xc-4, ym+6), s(xc-4, ym+6, xr, ym+6),
	},
	'A': {s(xl, yb, xc, yt), s(xc, yt, xr, yb), s(xl+5, ym+6, xr-5, ym+6)},
	'B': {
		left, s(xl, yt, xr-6, yt), s(xr-6, yt, xr, yq1), s(xr, yq1, xr-6, ym),
		s(xl, ym, xr-6, ym), s(xr-6, ym, xr, yq3), s(xr, yq3, xr-6, yb), s(xl, yb, xr-6, yb),
	},
	'C': {top, left, bottom},
	'D': {
		left, s(xl, yt, xr-8, yt), s(xr-8, yt, xr, yq1), s(xr, yq1, xr, yq3),
		s(xr, yq3, xr-8, yb), s(xl, yb, xr-8, yb),
	},
	'E':  {left, top, s(xl, ym, xr-4, ym), bottom},
	'F':  {left, top, s(xl, ym, xr-4, ym)},
	'G':  {top, left, bottom, lrgt, s(xc, ym, xr, ym)},
	'H':  {left, right, mid},
	'I':  {stem, s(xl+6, yt, xr-6, yt), s(xl+6, yb, xr-6, yb)},
	'J':  {right, bottom, s(xl, yb, xl, yq3)},
	'K':  {left, s(xr, yt, xl, ym), s(xl+4, ym-2, xr, yb)},
	'L':  {left, bottom},
	'M':  {left, right, s(xl, yt, xc, ym), s(xc, ym, xr, yt)},
	'N':  {left, right, s(xl, yt, xr, yb)},
	'O':  {top, right, bottom, left},
	'P':  {left, top, urgt, mid},
	'Q':  {top, right, bottom, left, s(xc+2, yq3, xr, yb)},
	'R':  {left, top, urgt, mid, s(xc, ym, xr, yb)},
	'S':  {top, ulft, mid, lrgt, bottom},
	'T':  {top, stem},
	'U':  {left, right, bottom},
	'V':  {s(xl, yt, xc, yb), s(xc, yb, xr, yt)},
	'W':  {left, right, s(xl, yb, xc, ym), s(xc, ym, xr, yb)},
	'X':  {s(xl, yt, xr, yb), s(xr, yt, xl, yb)},
	'Y':  {s(xl, yt, xc, ym), s(xr, yt, xc, ym), s(xc, ym, xc, yb)},
	'Z':  {top, s(xr, yt, xl, yb), bottom},
	'[':  {s(xc-4, yt, xc-4, yb), s(xc-4, yt, xr-4, yt), s(xc-4, yb, xr-4, yb)},
	'\\': {s(xl, yt, xr, yb)},
	']':  {s(xc+4, yt, xc+4, yb), s(xl+4, yt, xc+4, yt), s(xl+4, yb, xc+4, yb)},
	'^':  {s(xl+4, yq1, xc, yt), s(xc, yt, xr-4, yq1)},
	'_':  {s(xl, yd, xr, yd)},
}

// Default is the built-in monospaced font covering every code from 32 (' ')
// to 95 ('_'); lowercase letters are drawn with the capitals.
var Default = build(' ', '_', strokes)

func build(first, last rune, src map[rune][]stroke) *Font {
	f := &Font{first: first, glyphs: make([]glyph, last-first+1)}
	for r := first; r <= last; r++ {
		list, ok := src[r]
		if !ok {
			continue
		}
		g := glyph{offset: len(f.verts), advance: monoAdv, ok: true}
		for _, st := range list {
			for i, p := range st.quad() {
				y := byte(p[1])
				if i == 3 {
					y |= lastVertex
				}
				f.verts = append(f.verts, byte(p[0]), y)
				g.n++
			}
		}
		f.glyphs[r-first] = g
	}
	return f
}

// quad expands a stroke into a convex four-vertex outline with square caps.
func (st stroke) quad() [4][2]int {
	dx := float64(st.x1 - st.x0)
	dy := float64(st.y1 - st.y0)
	l := math.Hypot(dx, dy)
	ux, uy := 1.0, 0.0
	if l > 0 {
		ux, uy = dx/l, dy/l
	}
	h := float64(strokeHalf)
	// Along-stroke cap offset and perpendicular half width.
	ax, ay := ux*h, uy*h
	nx, ny := -uy*h, ux*h

	pt := func(x, y float64) [2]int {
		return [2]int{clampCoord(x), clampCoord(y)}
	}
	x0, y0 := float64(st.x0), float64(st.y0)
	x1, y1 := float64(st.x1), float64(st.y1)
	return [4][2]int{
		pt(x0-ax+nx, y0-ay+ny),
		pt(x1+ax+nx, y1+ay+ny),
		pt(x1+ax-nx, y1+ay-ny),
		pt(x0-ax-nx, y0-ay-ny),
	}
}

func clampCoord(v float64) int {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i > coordMask {
		return coordMask
	}
	return i
}
