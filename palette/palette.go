// Package palette holds the fixed color lookup tables used by the blit paths
// and the conversions between full-depth colors and reduced-depth indices.
//
// Index layouts:
//
//	3-bit: bit2 = red, bit1 = green, bit0 = blue (one bit per channel)
//	4-bit: EGA order (black, blue, green, cyan, red, magenta, brown, light gray,
//	       dark gray, then the bright variants)
//	8-bit: 6x6x6 web cube (index = r*36 + g*6 + b) followed by a 40 step gray ramp
//
// Changing the bit widths of any table requires regenerating the dependent
// remap tables as well.
package palette

// Pal3to16 maps 3-bit indices to RGB565.
var Pal3to16 = [8]uint16{
	0x0000, 0x001F, 0x07E0, 0x07FF, 0xF800, 0xF81F, 0xFFE0, 0xFFFF,
}

// Pal3to12 maps 3-bit indices to RGB444.
var Pal3to12 = [8]uint16{
	0x000, 0x00F, 0x0F0, 0x0FF, 0xF00, 0xF0F, 0xFF0, 0xFFF,
}

// Pal4to16 maps 4-bit indices to RGB565.
var Pal4to16 = [16]uint16{
	0x0000, 0x0015, 0x0540, 0x0555, 0xA800, 0xA815, 0xAAA0, 0xAD55,
	0x52AA, 0x52BF, 0x57EA, 0x57FF, 0xFAAA, 0xFABF, 0xFFEA, 0xFFFF,
}

// Pal4to12 maps 4-bit indices to RGB444.
var Pal4to12 = [16]uint16{
	0x000, 0x00A, 0x0A0, 0x0AA, 0xA00, 0xA0A, 0xA50, 0xAAA,
	0x555, 0x55F, 0x5F5, 0x5FF, 0xF55, 0xF5F, 0xFF5, 0xFFF,
}

// Remap4to3 maps a 4-bit index to the closest 3-bit index.
var Remap4to3 = [16]uint8{
	0, 1, 2, 3, 4, 5, 4, 7,
	0, 1, 2, 3, 4, 5, 6, 7,
}

// Remap3to4 maps a 3-bit index to the bright 4-bit entry of the same hue.
var Remap3to4 = [8]uint8{
	0, 9, 10, 11, 12, 13, 14, 15,
}

// Pal8to16 maps 8-bit indices to RGB565.
var Pal8to16 = build8(RGB565)

// Pal8to12 maps 8-bit indices to RGB444.
var Pal8to12 = build8(RGB444)

func build8(conv func(r, g, b uint8) uint16) [256]uint16 {
	var p [256]uint16
	for i := 0; i < 256; i++ {
		r, g, b := Web8(uint8(i))
		p[i] = conv(r, g, b)
	}
	return p
}

// Web8 expands an 8-bit index to 8-bit channels.
func Web8(i uint8) (r, g, b uint8) {
	if i < 216 {
		return (i / 36) * 51, ((i / 6) % 6) * 51, (i % 6) * 51
	}
	v := uint8((int(i-216) * 255) / 39)
	return v, v, v
}

// Index8 returns the 8-bit web-cube index closest to the given channels.
func Index8(r, g, b uint8) uint8 {
	q := func(v uint8) uint8 { return uint8((int(v) + 25) / 51) }
	return q(r)*36 + q(g)*6 + q(b)
}

// Index3 returns the 3-bit index for the given channels (threshold at half).
func Index3(r, g, b uint8) uint8 {
	var i uint8
	if r >= 0x80 {
		i |= 4
	}
	if g >= 0x80 {
		i |= 2
	}
	if b >= 0x80 {
		i |= 1
	}
	return i
}

// Index4 returns the closest 4-bit index for the given channels.
func Index4(r, g, b uint8) uint8 {
	best := uint8(0)
	bestDist := -1
	for i, c := range Pal4to16 {
		cr, cg, cb := Expand565(c)
		dr := int(cr) - int(r)
		dg := int(cg) - int(g)
		db := int(cb) - int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = uint8(i)
			bestDist = d
		}
	}
	return best
}
