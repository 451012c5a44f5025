package panel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ramColumns is the width of the SSD1322 display RAM in pixels.
const ramColumns = 480

var errHalted = errors.New("panel: halted")

// Opts is the configuration of an SSD1322 panel.
type Opts struct {
	W int // Width (default: 256, multiple of 8, at most 480)
	H int // Height (default: 64, at most 128)

	Rotated bool // 180° rotation

	// Optional hardware reset pin.
	RST gpio.PinIO
}

// Dev is an SSD1322 4-bit greyscale OLED panel on an SPI bus.
// It implements display.Drawer.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	rect         image.Rectangle
	columnOffset int // Centers narrow panels in the 480 column RAM
	frame        *Nibble

	halted bool
}

// NewSPI connects to an SSD1322 at 10MHz, SPI mode 0, and initializes it.
// opts can be nil for a 256x64 panel.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 256, H: 64}
	}
	// Columns are addressed in groups of four pixels, and a centered window
	// only starts on a group boundary when W is a multiple of 8.
	if opts.W <= 0 || opts.W%8 != 0 || opts.W > ramColumns {
		return nil, errors.New("panel: width must be a multiple of 8 between 8 and 480")
	}
	if opts.H <= 0 || opts.H > 128 {
		return nil, errors.New("panel: height must be between 1 and 128")
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}

	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		columnOffset: (ramColumns - opts.W) / 2,
	}
	d.frame = NewNibble(d.rect)
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("panel: failed to pull RST low: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("panel: failed to pull RST high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	remap := byte(0x14)
	if opts.Rotated {
		remap = 0x06
	}
	cmds := []byte{
		0xFD, 0x12, // Unlock
		0xAE,       // Display off
		0xB3, 0xF2, // Clock divider
		0xCA, byte(opts.H - 1), // MUX ratio
		0xA2, 0x00, // Display offset
		0xA1, 0x00, // Start line
		0xA0, remap, 0x11, // Remap, dual COM
		0xAB, 0x01, // Internal VDD
		0xB4, 0xA0, 0xFD, // VSL
		0xC1, 0xFF, // Contrast
		0xC7, 0x0F, // Master contrast
		0xB9,       // Default grey table
		0xB1, 0xE2, // Phase length
		0xD1, 0x82, 0x20, // Enhancement
		0xBB, 0x1F, // Pre-charge voltage
		0xB6, 0x08, // Second pre-charge
		0xBE, 0x07, // VCOMH
		0xA6, // Normal mode
		0xA9, // Exit partial mode
	}
	if err := d.command(cmds...); err != nil {
		return err
	}
	if err := d.writeFrame(d.frame.Pix); err != nil {
		return err
	}
	return d.command(0xAF) // Display on
}

func (d *Dev) command(cmds ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *Dev) data(b []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(b, nil)
}

// writeFrame sends a full frame; columns are addressed in groups of four
// pixels.
func (d *Dev) writeFrame(pix []byte) error {
	colStart := byte(d.columnOffset / 4)
	colEnd := byte((d.columnOffset+d.rect.Dx())/4 - 1)
	if err := d.command(
		0x15, colStart, colEnd,
		0x75, 0, byte(d.rect.Dy()-1),
		0x5C, // Write RAM
	); err != nil {
		return err
	}
	return d.data(pix)
}

// ColorModel returns Gray4Model.
func (d *Dev) ColorModel() color.Model {
	return Gray4Model
}

// Bounds returns the panel size.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw renders src into the frame buffer and sends the whole frame.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	if img, ok := src.(*Nibble); ok && r == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		copy(d.frame.Pix, img.Pix)
	} else {
		draw.Draw(d.frame, r, src, sp, draw.Src)
	}
	return d.writeFrame(d.frame.Pix)
}

// Frame returns the last frame sent to the panel.
func (d *Dev) Frame() *Nibble {
	return d.frame
}

// Halt turns the display off. The device must be recreated afterwards.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	d.halted = true
	return d.command(0xAE)
}

func (d *Dev) String() string {
	return fmt.Sprintf("panel.SSD1322{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
