package sevensegment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitGlyphSegments(t *testing.T) {
	// 8 lights every segment but the dot.
	eight, ok := DigitGlyph(8)
	assert.True(t, ok)
	assert.Equal(t, SegDP, eight)

	_, ok = DigitGlyph(10)
	assert.False(t, ok)
}

func TestDigitsNeverLightDot(t *testing.T) {
	for n := byte(0); n <= 9; n++ {
		mask, ok := DigitGlyph(n)
		assert.True(t, ok)
		assert.NotZero(t, mask&SegDP, "digit %d", n)
	}
}

func TestLetterGlyphShared(t *testing.T) {
	h, _ := LetterGlyph('H')
	k, _ := LetterGlyph('K')
	x, _ := LetterGlyph('X')
	u, _ := LetterGlyph('U')
	v, _ := LetterGlyph('V')

	assert.Equal(t, h, k)
	assert.Equal(t, h, x)
	assert.Equal(t, u, v)

	_, ok := LetterGlyph('h')
	assert.False(t, ok)
}
