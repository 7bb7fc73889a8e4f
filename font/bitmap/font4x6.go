package bitmap

// Font4x6 is a 3x5 pixel font in a 4x6 cell, codes 33 ('!') to 127.
var Font4x6 = New("4x6", 33, len(glyphs4x6), 3, 6, 4, PackRows16(glyphs4x6, 3, 6), nil)

// Row art, bit 2 = leftmost column.
var glyphs4x6 = [][]uint8{
	{0b010, 0b010, 0b010, 0b000, 0b010, 0b000}, // !
	{0b101, 0b101, 0b000, 0b000, 0b000, 0b000}, // "
	{0b101, 0b111, 0b101, 0b111, 0b101, 0b000}, // #
	{0b011, 0b110, 0b111, 0b011, 0b110, 0b000}, // $
	{0b101, 0b001, 0b010, 0b100, 0b101, 0b000}, // %
	{0b010, 0b101, 0b010, 0b101, 0b011, 0b000}, // &
	{0b010, 0b010, 0b000, 0b000, 0b000, 0b000}, // '
	{0b001, 0b010, 0b010, 0b010, 0b001, 0b000}, // (
	{0b100, 0b010, 0b010, 0b010, 0b100, 0b000}, // )
	{0b000, 0b101, 0b010, 0b101, 0b000, 0b000}, // *
	{0b000, 0b010, 0b111, 0b010, 0b000, 0b000}, // +
	{0b000, 0b000, 0b000, 0b010, 0b010, 0b100}, // ,
	{0b000, 0b000, 0b111, 0b000, 0b000, 0b000}, // -
	{0b000, 0b000, 0b000, 0b000, 0b010, 0b000}, // .
	{0b001, 0b001, 0b010, 0b100, 0b100, 0b000}, // /
	{0b111, 0b101, 0b101, 0b101, 0b111, 0b000}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111, 0b000}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111, 0b000}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111, 0b000}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001, 0b000}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111, 0b000}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111, 0b000}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001, 0b000}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111, 0b000}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111, 0b000}, // 9
	{0b000, 0b010, 0b000, 0b010, 0b000, 0b000}, // :
	{0b000, 0b010, 0b000, 0b010, 0b010, 0b100}, // ;
	{0b001, 0b010, 0b100, 0b010, 0b001, 0b000}, // <
	{0b000, 0b111, 0b000, 0b111, 0b000, 0b000}, // =
	{0b100, 0b010, 0b001, 0b010, 0b100, 0b000}, // >
	{0b111, 0b001, 0b011, 0b000, 0b010, 0b000}, // ?
	{0b111, 0b101, 0b111, 0b100, 0b111, 0b000}, // @
	{0b010, 0b101, 0b111, 0b101, 0b101, 0b000}, // A
	{0b110, 0b101, 0b110, 0b101, 0b110, 0b000}, // B
	{0b011, 0b100, 0b100, 0b100, 0b011, 0b000}, // C
	{0b110, 0b101, 0b101, 0b101, 0b110, 0b000}, // D
	{0b111, 0b100, 0b110, 0b100, 0b111, 0b000}, // E
	{0b111, 0b100, 0b110, 0b100, 0b100, 0b000}, // F
	{0b011, 0b100, 0b101, 0b101, 0b011, 0b000}, // G
	{0b101, 0b101, 0b111, 0b101, 0b101, 0b000}, // H
	{0b111, 0b010, 0b010, 0b010, 0b111, 0b000}, // I
	{0b001, 0b001, 0b001, 0b101, 0b010, 0b000}, // J
	{0b101, 0b101, 0b110, 0b101, 0b101, 0b000}, // K
	{0b100, 0b100, 0b100, 0b100, 0b111, 0b000}, // L
	{0b101, 0b111, 0b111, 0b101, 0b101, 0b000}, // M
	{0b110, 0b101, 0b101, 0b101, 0b101, 0b000}, // N
	{0b010, 0b101, 0b101, 0b101, 0b010, 0b000}, // O
	{0b110, 0b101, 0b110, 0b100, 0b100, 0b000}, // P
	{0b010, 0b101, 0b101, 0b111, 0b011, 0b000}, // Q
	{0b110, 0b101, 0b110, 0b101, 0b101, 0b000}, // R
	{0b011, 0b100, 0b010, 0b001, 0b110, 0b000}, // S
	{0b111, 0b010, 0b010, 0b010, 0b010, 0b000}, // T
	{0b101, 0b101, 0b101, 0b101, 0b111, 0b000}, // U
	{0b101, 0b101, 0b101, 0b101, 0b010, 0b000}, // V
	{0b101, 0b101, 0b111, 0b111, 0b101, 0b000}, // W
	{0b101, 0b101, 0b010, 0b101, 0b101, 0b000}, // X
	{0b101, 0b101, 0b010, 0b010, 0b010, 0b000}, // Y
	{0b111, 0b001, 0b010, 0b100, 0b111, 0b000}, // Z
	{0b110, 0b100, 0b100, 0b100, 0b110, 0b000}, // [
	{0b100, 0b100, 0b010, 0b001, 0b001, 0b000}, // \\
	{0b011, 0b001, 0b001, 0b001, 0b011, 0b000}, // ]
	{0b010, 0b101, 0b000, 0b000, 0b000, 0b000}, // ^
	{0b000, 0b000, 0b000, 0b000, 0b111, 0b000}, // _
	{0b100, 0b010, 0b000, 0b000, 0b000, 0b000}, // `
	{0b000, 0b011, 0b101, 0b101, 0b011, 0b000}, // a
	{0b100, 0b110, 0b101, 0b101, 0b110, 0b000}, // b
	{0b000, 0b011, 0b100, 0b100, 0b011, 0b000}, // c
	{0b001, 0b011, 0b101, 0b101, 0b011, 0b000}, // d
	{0b000, 0b010, 0b111, 0b100, 0b011, 0b000}, // e
	{0b001, 0b010, 0b111, 0b010, 0b010, 0b000}, // f
	{0b000, 0b011, 0b101, 0b011, 0b001, 0b110}, // g
	{0b100, 0b110, 0b101, 0b101, 0b101, 0b000}, // h
	{0b010, 0b000, 0b010, 0b010, 0b010, 0b000}, // i
	{0b001, 0b000, 0b001, 0b001, 0b101, 0b010}, // j
	{0b100, 0b101, 0b110, 0b110, 0b101, 0b000}, // k
	{0b110, 0b010, 0b010, 0b010, 0b111, 0b000}, // l
	{0b000, 0b111, 0b111, 0b101, 0b101, 0b000}, // m
	{0b000, 0b110, 0b101, 0b101, 0b101, 0b000}, // n
	{0b000, 0b010, 0b101, 0b101, 0b010, 0b000}, // o
	{0b000, 0b110, 0b101, 0b101, 0b110, 0b100}, // p
	{0b000, 0b011, 0b101, 0b101, 0b011, 0b001}, // q
	{0b000, 0b011, 0b100, 0b100, 0b100, 0b000}, // r
	{0b000, 0b011, 0b110, 0b011, 0b110, 0b000}, // s
	{0b010, 0b111, 0b010, 0b010, 0b001, 0b000}, // t
	{0b000, 0b101, 0b101, 0b101, 0b011, 0b000}, // u
	{0b000, 0b101, 0b101, 0b111, 0b010, 0b000}, // v
	{0b000, 0b101, 0b101, 0b111, 0b111, 0b000}, // w
	{0b000, 0b101, 0b010, 0b010, 0b101, 0b000}, // x
	{0b000, 0b101, 0b101, 0b011, 0b001, 0b110}, // y
	{0b000, 0b111, 0b011, 0b110, 0b111, 0b000}, // z
	{0b011, 0b010, 0b110, 0b010, 0b011, 0b000}, // {
	{0b010, 0b010, 0b010, 0b010, 0b010, 0b000}, // |
	{0b110, 0b010, 0b011, 0b010, 0b110, 0b000}, // }
	{0b000, 0b110, 0b011, 0b000, 0b000, 0b000}, // ~
	{0b111, 0b111, 0b111, 0b111, 0b111, 0b000}, // DEL
}
