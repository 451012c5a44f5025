// Package lcdpng encodes numeric identifiers as 7-segment LCD digit patterns
// and rasterizes them into a single greyscale pixel row.
//
// See the examples for how to use this package.
package lcdpng

import (
	"fmt"
	"strconv"
)

// Default encoding parameters: a 4-digit identifier, a 2-digit checksum
// modulo 97 and a 256 pixel row.
const (
	DefaultIDLen       = 4
	DefaultModulus     = 97
	DefaultChecksumLen = 2
	DefaultWidth       = 256
)

// Opts is the configuration of an Encoder.
type Opts struct {
	IDLen       int // Identifier width in digits (default: 4)
	Modulus     int // Checksum modulus (default: 97)
	ChecksumLen int // Checksum width in digits (default: 2)

	// Row width in pixels (default: 256). It must hold every segment of the
	// checksummed identifier plus the pad segment; the remaining high bits
	// are zero.
	Width int
}

// DefaultOpts returns the reference configuration.
func DefaultOpts() *Opts {
	return &Opts{
		IDLen:       DefaultIDLen,
		Modulus:     DefaultModulus,
		ChecksumLen: DefaultChecksumLen,
		Width:       DefaultWidth,
	}
}

// Validate checks that the options describe a usable layout.
func (o *Opts) Validate() error {
	if o.IDLen < 1 {
		return fmt.Errorf("%w: identifier length must be at least 1, got %d", ErrConfig, o.IDLen)
	}
	if err := checkChecksumParams(o.Modulus, o.ChecksumLen); err != nil {
		return err
	}
	if need := o.contentBits(); o.Width < need {
		return fmt.Errorf("%w: width %d cannot hold %d bits", ErrConfig, o.Width, need)
	}
	return nil
}

func (o *Opts) contentBits() int {
	return SegmentBits * (o.IDLen + o.ChecksumLen + 1)
}

// Encoder turns identifiers into pixel rows. It holds no mutable state and
// is safe for concurrent use.
type Encoder struct {
	opts Opts
}

// NewEncoder returns an Encoder for opts. opts can be nil to use the
// defaults.
func NewEncoder(opts *Opts) (*Encoder, error) {
	if opts == nil {
		opts = DefaultOpts()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{opts: *opts}, nil
}

// Opts returns a copy of the encoder configuration.
func (e *Encoder) Opts() Opts {
	return e.opts
}

// Width returns the length of every row the encoder produces.
func (e *Encoder) Width() int {
	return e.opts.Width
}

// Validate rejects identifiers of the wrong width or containing anything
// other than decimal digits.
func (e *Encoder) Validate(id string) error {
	if len(id) != e.opts.IDLen {
		return &InvalidInputError{Input: id, Reason: fmt.Sprintf("want %d digits, got %d characters", e.opts.IDLen, len(id))}
	}
	for i := 0; i < len(id); i++ {
		if !isDigit(id[i]) {
			return &InvalidInputError{Input: id, Reason: fmt.Sprintf("non-digit %q at offset %d", id[i], i)}
		}
	}
	return nil
}

// Checksummed validates id and returns it with its check digits prepended.
func (e *Encoder) Checksummed(id string) (string, error) {
	if err := e.Validate(id); err != nil {
		return "", err
	}
	return AddChecksum(id, e.opts.Modulus, e.opts.ChecksumLen)
}

// Pack validates id and returns its packed bit-string.
func (e *Encoder) Pack(id string) (BitString, error) {
	s, err := e.Checksummed(id)
	if err != nil {
		return "", err
	}
	return Pack(s, e.opts.Width)
}

// Encode returns the pixel row for id.
func (e *Encoder) Encode(id string) (Row, error) {
	bits, err := e.Pack(id)
	if err != nil {
		return nil, err
	}
	return Rasterize(bits)
}

// EncodeImage returns the pixel row for id wrapped as an image.
func (e *Encoder) EncodeImage(id string) (*RowImage, error) {
	s, err := e.Checksummed(id)
	if err != nil {
		return nil, err
	}
	bits, err := Pack(s, e.opts.Width)
	if err != nil {
		return nil, err
	}
	row, err := Rasterize(bits)
	if err != nil {
		return nil, err
	}
	sum, err := strconv.Atoi(s[:e.opts.ChecksumLen])
	if err != nil {
		return nil, fmt.Errorf("lcdpng: checksum of %q: %w", id, err)
	}
	return &RowImage{Pix: row, content: s, checksum: sum}, nil
}

var defaultEncoder = &Encoder{opts: *DefaultOpts()}

// Encode encodes id with the default options.
func Encode(id string) (Row, error) {
	return defaultEncoder.Encode(id)
}
