// Package font defines the contract shared by the glyph providers.
//
// A Face maps a rune to at most one glyph. Runes a face has no glyph for are
// skipped without drawing anything and advance by zero.
package font

// Surface is what glyph renderers draw onto. Coordinates outside the surface
// are clipped by the implementation.
type Surface interface {
	Size() (w, h int)
	SetPixel(x, y int, c uint32)
	FillRect(x1, y1, x2, y2 int, c uint32)
}

// Style carries the colors a glyph is drawn with.
type Style struct {
	FG uint32
	BG uint32
	// Solid paints background pixels too; otherwise they are left untouched.
	Solid bool
}

// Face measures and renders individual characters.
type Face interface {
	// Height is the line height in pixels.
	Height() int
	// Advance is the horizontal distance to the next character.
	Advance(r rune) int
	// DrawGlyph renders r with its top-left cell corner at (x, y) and returns
	// the advance.
	DrawGlyph(s Surface, r rune, x, y int, st Style) int
}

// Width returns the summed advance of every rune in str.
func Width(f Face, str string) int {
	if f == nil {
		return 0
	}
	w := 0
	for _, r := range str {
		w += f.Advance(r)
	}
	return w
}
