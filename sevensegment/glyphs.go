package sevensegment

// Segment bits of the easyC display. The device is active-low: a 0 bit
// lights the segment.
//
//	 --a--
//	|     |
//	f     b
//	|     |
//	 --g--
//	|     |
//	e     c
//	|     |
//	 --d--   dp
const (
	SegG  byte = 1 << 0
	SegF  byte = 1 << 1
	SegE  byte = 1 << 2
	SegD  byte = 1 << 3
	SegC  byte = 1 << 4
	SegB  byte = 1 << 5
	SegA  byte = 1 << 6
	SegDP byte = 1 << 7
)

const (
	// AllOff turns every segment and the dot off.
	AllOff byte = 0xFF
	// AllOn lights every segment and the dot. It is also what an
	// out-of-range digit shows.
	AllOn byte = 0x00
)

var digitGlyphs = [10]byte{
	0xC0, // 0
	0xF9, // 1
	0xA4, // 2
	0xB0, // 3
	0x99, // 4
	0x92, // 5
	0x82, // 6
	0xF8, // 7
	0x80, // 8
	0x90, // 9
}

// Capital letters. Several have no clean rendering on seven segments and
// share or approximate a pattern: K and X reuse H, V reuses U, and M, N,
// Q, W, Y are rough shapes.
var letterGlyphs = [26]byte{
	0x88, // A
	0x80, // B
	0xC6, // C
	0xC0, // D
	0x86, // E
	0x8E, // F
	0xC2, // G
	0x89, // H
	0xCF, // I
	0xE1, // J
	0x89, // K, same as H
	0xC7, // L
	0xEA, // M, approximated
	0xC8, // N, approximated
	0xC0, // O
	0x8C, // P
	0x98, // Q, approximated
	0xCE, // R
	0x92, // S
	0x87, // T
	0xC1, // U
	0xC1, // V, same as U
	0xD5, // W, approximated
	0x89, // X, same as H
	0x91, // Y, approximated
	0xA4, // Z
}

// DigitGlyph returns the segment mask for n. ok is false when n is not a
// single decimal digit.
func DigitGlyph(n byte) (mask byte, ok bool) {
	if int(n) >= len(digitGlyphs) {
		return 0, false
	}
	return digitGlyphs[n], true
}

// LetterGlyph returns the segment mask for the capital letter c. ok is
// false for anything outside 'A'..'Z', lowercase included.
func LetterGlyph(c byte) (mask byte, ok bool) {
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return letterGlyphs[c-'A'], true
}

// NumberMask is DigitGlyph with the out of range fallback applied: every
// segment and the dot lit.
func NumberMask(n byte) byte {
	if mask, ok := DigitGlyph(n); ok {
		return mask
	}
	return AllOn
}

// CharMask is LetterGlyph with the fallback applied: a blank display.
func CharMask(c byte) byte {
	if mask, ok := LetterGlyph(c); ok {
		return mask
	}
	return AllOff
}
