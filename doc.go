// Package lcdpng encodes numeric identifiers as 7-segment LCD digit patterns
// and rasterizes them into a single greyscale pixel row.
//
// A row is meant to be shown by a segment LCD driver that reads one pixel per
// segment line. Each identifier produces exactly one row.
//
// # Encoding Pipeline
//
//	identifier → checksum → glyph patterns → packed bit-string → pixel row
//
// - Checksum: the identifier is read backwards as a decimal number, reduced
// modulo 97 and zero padded to 2 digits. The check digits are prepended.
// - Glyphs: every digit maps to an 8-bit segment pattern (see Segments).
// - Packing: patterns are concatenated most significant first, one zero pad
// segment is appended and the result is left-padded with zeros to the row
// width (256 bits by default).
// - Rasterizing: the bit-string is scanned from its last bit. A 0 bit becomes
// 0xFF (light), a 1 bit becomes 0x00 (dark).
//
// # Worked Example
//
// For identifier "1234":
//
//	reversed       4321
//	4321 mod 97    53
//	checksummed    531234
//	patterns       D5 D6 42 B6 D6 C3
//	packed         200 zero bits, the 48 pattern bits, 8 zero pad bits
//
// # Basic Usage
//
//	row, err := lcdpng.Encode("1234")
//	if err != nil {
//		return err
//	}
//	// len(row) == 256
//
// Layouts other than the reference one are described with Opts:
//
//	enc, err := lcdpng.NewEncoder(&lcdpng.Opts{
//		IDLen:       6,
//		Modulus:     101,
//		ChecksumLen: 3,
//		Width:       256,
//	})
//
// # Segment Table
//
//	Digit  Pattern   Bits
//	0      0x77      01110111
//	1      0x42      01000010
//	2      0xB6      10110110
//	3      0xD6      11010110
//	4      0xC3      11000011
//	5      0xD5      11010101
//	6      0xF5      11110101
//	7      0x46      01000110
//	8      0xF7      11110111
//	9      0xD7      11010111
//
// # Errors
//
// All failures are reported as values and can be matched with errors.Is:
//
// - ErrInvalidInput: wrong width, empty or non-digit identifier
// - ErrUnsupportedCharacter: a character without a segment pattern reached Pack
// - ErrMalformedBitString: Rasterize saw a character other than '0' or '1'
// - ErrWidthOverflow: the row width cannot hold the packed segments
// - ErrIOSetup: the batch driver could not prepare its output directory
//
// # Images
//
// EncodeImage wraps the row in a RowImage. It implements image.Image and the
// github.com/boombuler/barcode interfaces, so it can be passed straight to
// image encoders or scaled with barcode.Scale.
package lcdpng
