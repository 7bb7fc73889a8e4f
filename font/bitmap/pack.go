package bitmap

// New returns a font over pre-packed words (5 glyph slots per word, rows words
// per group). words must be []uint16 or []uint32 to match bits.
func New(name string, first rune, count int, bits uint, rows, advance int, w16 []uint16, w32 []uint32) *Font {
	return &Font{
		name:    name,
		first:   first,
		count:   count,
		bits:    bits,
		rows:    rows,
		advance: advance,
		w16:     w16,
		w32:     w32,
	}
}

// PackRows16 packs row-major glyph art (bit bits-1 = leftmost column) into
// 16-bit words.
func PackRows16(glyphs [][]uint8, bits uint, rows int) []uint16 {
	groups := (len(glyphs) + GlyphsPerWord - 1) / GlyphsPerWord
	words := make([]uint16, groups*rows)
	mask := uint16(1)<<bits - 1
	for i, g := range glyphs {
		shift := uint(i%GlyphsPerWord) * bits
		for r := 0; r < rows && r < len(g); r++ {
			words[(i/GlyphsPerWord)*rows+r] |= (uint16(g[r]) & mask) << shift
		}
	}
	return words
}

// PackColumns32 packs column-major glyph art (one byte per column, bit 0 =
// top row) into 32-bit words with bits-wide slots. Columns beyond the slot
// width are dropped.
func PackColumns32(glyphs [][]uint8, bits uint, rows int) []uint32 {
	groups := (len(glyphs) + GlyphsPerWord - 1) / GlyphsPerWord
	words := make([]uint32, groups*rows)
	for i, cols := range glyphs {
		shift := uint(i%GlyphsPerWord) * bits
		for r := 0; r < rows; r++ {
			var line uint32
			for c, col := range cols {
				if uint(c) >= bits {
					break
				}
				if col&(1<<uint(r)) != 0 {
					line |= 1 << (bits - 1 - uint(c))
				}
			}
			words[(i/GlyphsPerWord)*rows+r] |= line << shift
		}
	}
	return words
}
