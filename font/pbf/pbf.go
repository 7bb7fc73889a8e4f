// Package pbf reads the hash-indexed binary font container.
//
// Layout (all integers little endian):
//
//	header      version u8, line height u8, glyph count u16, wildcard u16,
//	            [v2] hash table size u8, codepoint width u8
//	hash table  size × {hash u8, entry count u8, offset u16}
//	            offset is relative to the offset table
//	offset tbl  glyph count × {codepoint (codepoint width bytes), glyph offset u32}
//	glyph tbl   per glyph: width u8, height u8, left i8, top i8, advance i8,
//	            then width*height bits, LSB first, rows not padded
//
// Version 1 has no explicit hash table size or codepoint width; they default
// to 255 and 4. Version 3 containers are rejected.
//
// Lookups touch only the hash table (read once at Open), one bucket's offset
// entries and the glyph record, so the container can stay on slow storage
// behind an io.ReaderAt.
package pbf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrUnsupportedVersion = errors.New("pbf: unsupported version")
	ErrMalformed          = errors.New("pbf: malformed font")
)

const (
	headerV1 = 6
	headerV2 = 8

	defaultHashSize       = 255
	defaultCodepointBytes = 4

	bucketBytes      = 4
	glyphOffsetBytes = 4
	glyphHeaderBytes = 5

	maxCodepoint = 0xFFFF
)

// Header is the decoded container header.
type Header struct {
	Version        uint8
	LineHeight     uint8
	GlyphCount     uint16
	Wildcard       uint16
	HashTableSize  int
	CodepointBytes int
}

// Layout gives the byte offsets of the container's tables.
type Layout struct {
	HashTable   int64
	OffsetTable int64
	GlyphTable  int64
}

// Glyph is a decoded glyph record.
type Glyph struct {
	Codepoint rune
	Width     uint8
	Height    uint8
	Left      int8
	Top       int8
	Advance   int8

	bits int64 // absolute offset of the raster
}

type bucket struct {
	count  int
	offset int64 // relative to the offset table
}

// Font is an opened container.
type Font struct {
	r      io.ReaderAt
	size   int64
	hdr    Header
	layout Layout
	entry  int // bytes per offset table entry

	buckets []bucket
}

// Open parses the header and hash table of the container in r. size is the
// container length in bytes.
func Open(r io.ReaderAt, size int64) (*Font, error) {
	var raw [headerV2]byte
	if size < headerV1 {
		return nil, fmt.Errorf("%w: %d byte file", ErrMalformed, size)
	}
	n := headerV1
	if size >= headerV2 {
		n = headerV2
	}
	if _, err := r.ReadAt(raw[:n], 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("pbf: read header: %w", err)
	}

	f := &Font{r: r, size: size}
	h := &f.hdr
	h.Version = raw[0]
	h.LineHeight = raw[1]
	h.GlyphCount = binary.LittleEndian.Uint16(raw[2:4])
	h.Wildcard = binary.LittleEndian.Uint16(raw[4:6])

	headerLen := headerV1
	switch h.Version {
	case 1:
		h.HashTableSize = defaultHashSize
		h.CodepointBytes = defaultCodepointBytes
	case 2:
		if n < headerV2 {
			return nil, fmt.Errorf("%w: truncated v2 header", ErrMalformed)
		}
		h.HashTableSize = int(raw[6])
		h.CodepointBytes = int(raw[7])
		headerLen = headerV2
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.HashTableSize == 0 {
		return nil, fmt.Errorf("%w: empty hash table", ErrMalformed)
	}
	if h.CodepointBytes != 2 && h.CodepointBytes != 4 {
		return nil, fmt.Errorf("%w: %d byte codepoints", ErrMalformed, h.CodepointBytes)
	}

	f.entry = h.CodepointBytes + glyphOffsetBytes
	f.layout.HashTable = int64(headerLen)
	f.layout.OffsetTable = f.layout.HashTable + int64(h.HashTableSize*bucketBytes)
	f.layout.GlyphTable = f.layout.OffsetTable + int64(int(h.GlyphCount)*f.entry)
	if f.layout.GlyphTable > size {
		return nil, fmt.Errorf("%w: tables end at %d, file is %d bytes", ErrMalformed, f.layout.GlyphTable, size)
	}

	if err := f.readBuckets(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Font) readBuckets() error {
	n := f.hdr.HashTableSize
	raw := make([]byte, n*bucketBytes)
	if _, err := f.r.ReadAt(raw, f.layout.HashTable); err != nil && err != io.EOF {
		return fmt.Errorf("pbf: read hash table: %w", err)
	}
	tableLen := f.layout.GlyphTable - f.layout.OffsetTable
	f.buckets = make([]bucket, n)
	for i := 0; i < n; i++ {
		e := raw[i*bucketBytes:]
		b := bucket{count: int(e[1]), offset: int64(binary.LittleEndian.Uint16(e[2:4]))}
		if b.count == 0 {
			continue
		}
		if int(e[0]) != i%256 {
			return fmt.Errorf("%w: bucket %d carries hash %d", ErrMalformed, i, e[0])
		}
		if b.offset%int64(f.entry) != 0 || b.offset+int64(b.count*f.entry) > tableLen {
			return fmt.Errorf("%w: bucket %d spans %d+%d entries outside offset table", ErrMalformed, i, b.offset, b.count)
		}
		f.buckets[i] = b
	}
	return nil
}

// Header returns the decoded header.
func (f *Font) Header() Header { return f.hdr }

// Layout returns the table offsets.
func (f *Font) Layout() Layout { return f.layout }

// LineHeight is the font's line height in pixels.
func (f *Font) LineHeight() int { return int(f.hdr.LineHeight) }

// FindGlyph looks up cp: bucket cp % hash size, then a linear scan of that
// bucket's entries. Codepoints above U+FFFF are never found.
func (f *Font) FindGlyph(cp rune) (Glyph, bool) {
	if cp < 0 || cp > maxCodepoint {
		return Glyph{}, false
	}
	b := f.buckets[int(cp)%len(f.buckets)]
	if b.count == 0 {
		return Glyph{}, false
	}
	entries := make([]byte, b.count*f.entry)
	if _, err := f.r.ReadAt(entries, f.layout.OffsetTable+b.offset); err != nil && err != io.EOF {
		return Glyph{}, false
	}
	for i := 0; i < b.count; i++ {
		e := entries[i*f.entry:]
		if f.codepoint(e) != uint32(cp) {
			continue
		}
		off := binary.LittleEndian.Uint32(e[f.hdr.CodepointBytes:])
		return f.readGlyph(cp, f.layout.GlyphTable+int64(off))
	}
	return Glyph{}, false
}

func (f *Font) codepoint(e []byte) uint32 {
	if f.hdr.CodepointBytes == 2 {
		return uint32(binary.LittleEndian.Uint16(e))
	}
	return binary.LittleEndian.Uint32(e)
}

func (f *Font) readGlyph(cp rune, at int64) (Glyph, bool) {
	if at+glyphHeaderBytes > f.size {
		return Glyph{}, false
	}
	var h [glyphHeaderBytes]byte
	if _, err := f.r.ReadAt(h[:], at); err != nil && err != io.EOF {
		return Glyph{}, false
	}
	return Glyph{
		Codepoint: cp,
		Width:     h[0],
		Height:    h[1],
		Left:      int8(h[2]),
		Top:       int8(h[3]),
		Advance:   int8(h[4]),
		bits:      at + glyphHeaderBytes,
	}, true
}

// Codepoints lists every codepoint in the offset table, bucket by bucket.
func (f *Font) Codepoints() ([]rune, error) {
	var out []rune
	for i, b := range f.buckets {
		if b.count == 0 {
			continue
		}
		entries := make([]byte, b.count*f.entry)
		if _, err := f.r.ReadAt(entries, f.layout.OffsetTable+b.offset); err != nil && err != io.EOF {
			return nil, fmt.Errorf("pbf: read bucket %d: %w", i, err)
		}
		for j := 0; j < b.count; j++ {
			out = append(out, rune(f.codepoint(entries[j*f.entry:])))
		}
	}
	return out, nil
}
