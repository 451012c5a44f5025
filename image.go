package lcdpng

import (
	"image"
	"image/color"

	"github.com/boombuler/barcode"
)

// CodeKind names the symbology in barcode metadata.
const CodeKind = "LCD7"

// RowImage presents an encoded row as a one pixel high greyscale image.
// It satisfies barcode.BarcodeIntCS, so the barcode helpers (notably
// barcode.Scale) can stretch it for output.
type RowImage struct {
	Pix Row

	content  string
	checksum int
}

// ColorModel returns color.GrayModel.
func (m *RowImage) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns a len(Pix)×1 rectangle anchored at the origin.
func (m *RowImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(m.Pix), 1)
}

// At returns the sample at (x, 0), or zero outside the bounds.
func (m *RowImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(m.Bounds())) {
		return color.Gray{}
	}
	return color.Gray{Y: m.Pix[x]}
}

// Metadata describes the row as a one-dimensional code.
func (m *RowImage) Metadata() barcode.Metadata {
	return barcode.Metadata{CodeKind: CodeKind, Dimensions: 1}
}

// Content returns the checksummed identifier the row encodes.
func (m *RowImage) Content() string {
	return m.content
}

// CheckSum returns the numeric value of the check digits.
func (m *RowImage) CheckSum() int {
	return m.checksum
}

// Gray copies the row into a standard library image with the given height.
// Heights below one are treated as one.
func (m *RowImage) Gray(height int) *image.Gray {
	if height < 1 {
		height = 1
	}
	img := image.NewGray(image.Rect(0, 0, len(m.Pix), height))
	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:], m.Pix)
	}
	return img
}
