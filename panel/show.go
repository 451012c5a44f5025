// Package panel shows encoded LCD rows on periph.io displays.
//
// A row is one pixel high; Show stretches it over the whole display so the
// segment lines can be checked by eye. The package also carries a small
// SSD1322 OLED driver and its 4-bit nibble image format.
package panel

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/lcdpng"
)

// Show scales row across every line of d with nearest-neighbour sampling
// and draws it. The first sample lands on the left edge.
func Show(d display.Drawer, row lcdpng.Row) error {
	if len(row) == 0 {
		return fmt.Errorf("%w: empty row", lcdpng.ErrInvalidInput)
	}
	src := &lcdpng.RowImage{Pix: row}
	b := d.Bounds()

	var dst draw.Image
	if d.ColorModel() == Gray4Model && b.Dx()%2 == 0 {
		dst = NewNibble(b)
	} else {
		dst = image.NewGray(b)
	}
	draw.NearestNeighbor.Scale(dst, b, src, src.Bounds(), draw.Src, nil)
	return d.Draw(b, dst, b.Min)
}
