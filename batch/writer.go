package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/sergeymakinen/go-bmp"

	"github.com/flavioheleno/lcdpng"
)

// Writer encodes an image into an output stream.
type Writer interface {
	Write(w io.Writer, img image.Image) error
	Ext() string
}

// PNG writes images as PNG. An *image.Gray is stored as 8-bit greyscale.
type PNG struct{}

func (PNG) Write(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

func (PNG) Ext() string { return "png" }

// BMP writes images as Windows bitmaps.
type BMP struct{}

func (BMP) Write(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

func (BMP) Ext() string { return "bmp" }

// WriterFor returns the Writer registered under name.
func WriterFor(name string) (Writer, error) {
	switch name {
	case "", "png":
		return PNG{}, nil
	case "bmp":
		return BMP{}, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", lcdpng.ErrConfig, name)
}
