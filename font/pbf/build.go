package pbf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Source is one glyph handed to Build. Pix holds Width*Height pixels row by
// row; any non-zero byte is a set pixel.
type Source struct {
	Codepoint rune
	Width     uint8
	Height    uint8
	Left      int8
	Top       int8
	Advance   int8
	Pix       []byte
}

// Options selects the header written by Build.
type Options struct {
	// Version is 1 or 2. Version 1 always uses a 255-entry hash table and
	// 4-byte codepoints.
	Version        uint8
	LineHeight     uint8
	Wildcard       uint16
	HashTableSize  int
	CodepointBytes int
}

var errTooLarge = errors.New("pbf: bucket offsets exceed 16 bits")

// Build writes a container holding glyphs to w.
func Build(w io.Writer, opt Options, glyphs []Source) error {
	switch opt.Version {
	case 1:
		opt.HashTableSize = defaultHashSize
		opt.CodepointBytes = defaultCodepointBytes
	case 2:
		if opt.HashTableSize < 1 || opt.HashTableSize > 255 {
			return fmt.Errorf("pbf: hash table size %d", opt.HashTableSize)
		}
		if opt.CodepointBytes != 2 && opt.CodepointBytes != 4 {
			return fmt.Errorf("pbf: %d byte codepoints", opt.CodepointBytes)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, opt.Version)
	}
	if len(glyphs) > 0xFFFF {
		return fmt.Errorf("pbf: %d glyphs", len(glyphs))
	}

	seen := make(map[rune]bool, len(glyphs))
	buckets := make([][]int, opt.HashTableSize)
	for i, g := range glyphs {
		if g.Codepoint < 0 || g.Codepoint > maxCodepoint {
			return fmt.Errorf("pbf: codepoint %U out of range", g.Codepoint)
		}
		if seen[g.Codepoint] {
			return fmt.Errorf("pbf: duplicate codepoint %U", g.Codepoint)
		}
		if len(g.Pix) < int(g.Width)*int(g.Height) {
			return fmt.Errorf("pbf: %U: %d pixels for %dx%d", g.Codepoint, len(g.Pix), g.Width, g.Height)
		}
		seen[g.Codepoint] = true
		b := int(g.Codepoint) % opt.HashTableSize
		buckets[b] = append(buckets[b], i)
	}

	// Glyph table, in input order.
	var gt bytes.Buffer
	goff := make([]uint32, len(glyphs))
	for i, g := range glyphs {
		goff[i] = uint32(gt.Len())
		gt.Write([]byte{g.Width, g.Height, byte(g.Left), byte(g.Top), byte(g.Advance)})
		gt.Write(packBits(g.Pix[:int(g.Width)*int(g.Height)]))
	}

	entry := opt.CodepointBytes + glyphOffsetBytes
	var hdr, ht, ot bytes.Buffer

	hdr.WriteByte(opt.Version)
	hdr.WriteByte(opt.LineHeight)
	binary.Write(&hdr, binary.LittleEndian, uint16(len(glyphs)))
	binary.Write(&hdr, binary.LittleEndian, opt.Wildcard)
	if opt.Version == 2 {
		hdr.WriteByte(byte(opt.HashTableSize))
		hdr.WriteByte(byte(opt.CodepointBytes))
	}

	for i, list := range buckets {
		sort.Slice(list, func(a, b int) bool { return glyphs[list[a]].Codepoint < glyphs[list[b]].Codepoint })
		if len(list) > 255 {
			return fmt.Errorf("pbf: bucket %d holds %d glyphs", i, len(list))
		}
		if ot.Len() > 0xFFFF {
			return errTooLarge
		}
		ht.Write([]byte{byte(i), byte(len(list))})
		binary.Write(&ht, binary.LittleEndian, uint16(ot.Len()))
		for _, gi := range list {
			e := make([]byte, entry)
			if opt.CodepointBytes == 2 {
				binary.LittleEndian.PutUint16(e, uint16(glyphs[gi].Codepoint))
			} else {
				binary.LittleEndian.PutUint32(e, uint32(glyphs[gi].Codepoint))
			}
			binary.LittleEndian.PutUint32(e[opt.CodepointBytes:], goff[gi])
			ot.Write(e)
		}
	}

	for _, b := range [][]byte{hdr.Bytes(), ht.Bytes(), ot.Bytes(), gt.Bytes()} {
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// packBits packs pixels LSB first with no row padding.
func packBits(pix []byte) []byte {
	out := make([]byte, (len(pix)+7)/8)
	for i, p := range pix {
		if p != 0 {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}
