// Package bitstream reads packed glyph data without stepping past the end of
// the backing storage.
package bitstream

import "io"

// Reader streams bits LSB-first, refilling one byte at a time.
//
// Once the source is exhausted every further read reports ok=false.
type Reader struct {
	src  io.ByteReader
	cur  byte
	left uint8
	done bool
}

// NewReader returns a bit reader over src.
func NewReader(src io.ByteReader) *Reader {
	return &Reader{src: src}
}

// Bit returns the next bit.
func (r *Reader) Bit() (bit bool, ok bool) {
	if r.left == 0 {
		if r.done {
			return false, false
		}
		b, err := r.src.ReadByte()
		if err != nil {
			r.done = true
			return false, false
		}
		r.cur = b
		r.left = 8
	}
	bit = r.cur&1 != 0
	r.cur >>= 1
	r.left--
	return bit, true
}

// Field16 returns the width-bit slot of words[index] starting at bit shift.
// Out-of-range indices and slots that do not fit the word yield ok=false.
func Field16(words []uint16, index int, shift, width uint) (uint32, bool) {
	if index < 0 || index >= len(words) || width == 0 || shift+width > 16 {
		return 0, false
	}
	return uint32(words[index]>>shift) & (1<<width - 1), true
}

// Field32 is Field16 for 32-bit words.
func Field32(words []uint32, index int, shift, width uint) (uint32, bool) {
	if index < 0 || index >= len(words) || width == 0 || shift+width > 32 {
		return 0, false
	}
	return (words[index] >> shift) & (1<<width - 1), true
}
