package lcdpng

import "bytes"

// Sample values of a rasterized row.
const (
	Light byte = 0xFF // segment off
	Dark  byte = 0x00 // segment on
)

// Row is a single raster row of 8-bit greyscale samples.
type Row []byte

// Rasterize expands bits into one sample per bit, scanning from the least
// significant (rightmost) bit. The first pixel of the row is therefore the
// last bit of the string, which keeps the glyph table orientation on screen.
func Rasterize(bits BitString) (Row, error) {
	row := make(Row, len(bits))
	for i := len(bits) - 1; i >= 0; i-- {
		x := len(bits) - 1 - i
		switch c := bits[i]; c {
		case '0':
			row[x] = Light
		case '1':
			row[x] = Dark
		default:
			return nil, &MalformedBitStringError{Char: c, Offset: i}
		}
	}
	return row, nil
}

// Equal reports whether r and o hold the same samples.
func (r Row) Equal(o Row) bool {
	return bytes.Equal(r, o)
}
