package palette

import "image/color"

// RGB565 packs 8-bit channels as rrrrrggggggbbbbb.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// Expand565 unpacks an RGB565 value to 8-bit channels.
func Expand565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// RGB444 packs 8-bit channels as rrrrggggbbbb.
func RGB444(r, g, b uint8) uint16 {
	return uint16(r>>4)<<8 | uint16(g>>4)<<4 | uint16(b>>4)
}

// Expand444 unpacks an RGB444 value to 8-bit channels.
func Expand444(p uint16) (r, g, b uint8) {
	r = uint8((p>>8)&0xF) * 17
	g = uint8((p>>4)&0xF) * 17
	b = uint8(p&0xF) * 17
	return r, g, b
}

// FromRGBA converts c to a device color of the given depth.
//
// Depths 1, 2 and 8-bit gray have no table and use luminance; 3, 4 and 8 use
// the index tables above.
func FromRGBA(bpp int, c color.RGBA) uint32 {
	switch bpp {
	case 1:
		if luma(c) >= 0x80 {
			return 1
		}
		return 0
	case 2:
		return uint32(luma(c) >> 6)
	case 3:
		return uint32(Index3(c.R, c.G, c.B))
	case 4:
		return uint32(Index4(c.R, c.G, c.B))
	case 8:
		return uint32(Index8(c.R, c.G, c.B))
	case 12:
		return uint32(RGB444(c.R, c.G, c.B))
	case 16:
		return uint32(RGB565(c.R, c.G, c.B))
	case 24:
		return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	case 32:
		return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	// Anything else is treated as a gray level of that depth.
	if bpp <= 0 || bpp > 32 {
		return 0
	}
	return uint32(luma(c)) >> (8 - min(bpp, 8))
}

// ToRGBA converts a device color of the given depth to RGBA.
func ToRGBA(bpp int, v uint32) color.RGBA {
	switch bpp {
	case 1:
		if v&1 != 0 {
			return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
		}
		return color.RGBA{A: 0xFF}
	case 2:
		g := uint8(v&3) * 0x55
		return color.RGBA{R: g, G: g, B: g, A: 0xFF}
	case 3:
		r, g, b := Expand565(Pal3to16[v&7])
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	case 4:
		r, g, b := Expand565(Pal4to16[v&15])
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	case 8:
		r, g, b := Web8(uint8(v))
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	case 12:
		r, g, b := Expand444(uint16(v))
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	case 16:
		r, g, b := Expand565(uint16(v))
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}
	case 24:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
	case 32:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
	}
	if bpp <= 0 || bpp > 32 {
		return color.RGBA{A: 0xFF}
	}
	shift := 8 - min(bpp, 8)
	g := uint8(v << shift)
	return color.RGBA{R: g, G: g, B: g, A: 0xFF}
}

// To565 converts a device color of the given depth to RGB565.
func To565(bpp int, v uint32) uint16 {
	switch bpp {
	case 3:
		return Pal3to16[v&7]
	case 4:
		return Pal4to16[v&15]
	case 8:
		return Pal8to16[v&0xFF]
	case 16:
		return uint16(v)
	}
	c := ToRGBA(bpp, v)
	return RGB565(c.R, c.G, c.B)
}

func luma(c color.RGBA) uint8 {
	return uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
}
