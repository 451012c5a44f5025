package panel

import (
	"image"
	"image/color"
)

// Gray4 is a 4-bit grey level (0-15). Only the low nibble of Y is used.
type Gray4 struct {
	Y uint8
}

// RGBA scales the nibble to the full 16-bit range.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(y >> 12)}
}

// Gray4Model converts colors to Gray4 using luma weights.
var Gray4Model = color.ModelFunc(toGray4)

// Nibble is a 4-bit greyscale image packing two horizontal pixels per byte,
// left pixel in the high nibble. It is the SSD1322 RAM layout.
type Nibble struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// NewNibble allocates a Nibble image. The width of r must be even.
func NewNibble(r image.Rectangle) *Nibble {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Nibble{Rect: r}
	}
	if w%2 != 0 {
		panic("panel: nibble image width must be even")
	}
	return &Nibble{
		Pix:    make([]byte, w/2*h),
		Stride: w / 2,
		Rect:   r,
	}
}

func (p *Nibble) ColorModel() color.Model { return Gray4Model }

func (p *Nibble) Bounds() image.Rectangle { return p.Rect }

func (p *Nibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the level at (x, y), or zero outside the bounds.
func (p *Nibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	i, shift := p.offset(x, y)
	return Gray4{Y: (p.Pix[i] >> shift) & 0x0F}
}

func (p *Nibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 stores c at (x, y). Writes outside the bounds are dropped.
func (p *Nibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i, shift := p.offset(x, y)
	p.Pix[i] = p.Pix[i]&^(0x0F<<shift) | (c.Y&0x0F)<<shift
}

// offset returns the byte index and nibble shift of (x, y): shift 4 for even
// columns, 0 for odd ones.
func (p *Nibble) offset(x, y int) (int, uint) {
	i := (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	return i, uint(4 * (1 - ((x - p.Rect.Min.X) & 1)))
}
