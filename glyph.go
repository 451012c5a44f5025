package lcdpng

import (
	"fmt"
	"strings"
)

// SegmentBits is the number of bits each character contributes to a
// packed bit-string.
const SegmentBits = 8

// Segments maps the decimal digits to their 7-segment patterns, one bit per
// segment plus one reserved bit.
var Segments = [10]byte{
	0x77, // 0
	0x42, // 1
	0xB6, // 2
	0xD6, // 3
	0xC3, // 4
	0xD5, // 5
	0xF5, // 6
	0x46, // 7
	0xF7, // 8
	0xD7, // 9
}

// BitString is a fixed-width string of '0' and '1' characters, most
// significant bit first.
type BitString string

// Pattern returns the segment pattern of a single digit character.
func Pattern(c byte) (byte, error) {
	if !isDigit(c) {
		return 0, &UnsupportedCharacterError{Char: c}
	}
	return Segments[c-'0'], nil
}

// Pack encodes s as the concatenation of its segment patterns followed by
// one zero pad segment, left-padded with zeros to width bits.
//
// Width must hold at least SegmentBits*(len(s)+1) bits.
func Pack(s string, width int) (BitString, error) {
	if s == "" {
		return "", &InvalidInputError{Input: s, Reason: "nothing to encode"}
	}
	content := SegmentBits * (len(s) + 1)
	if width < content {
		return "", fmt.Errorf("%w: %d bits needed, width is %d", ErrWidthOverflow, content, width)
	}

	var b strings.Builder
	b.Grow(width)
	b.WriteString(strings.Repeat("0", width-content))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) {
			return "", &UnsupportedCharacterError{Char: c, Offset: i}
		}
		fmt.Fprintf(&b, "%08b", Segments[c-'0'])
	}
	b.WriteString(strings.Repeat("0", SegmentBits))
	return BitString(b.String()), nil
}
