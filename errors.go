package lcdpng

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a malformed or wrong-width identifier.
	ErrInvalidInput = errors.New("lcdpng: invalid input")
	// ErrUnsupportedCharacter reports a character with no segment pattern.
	ErrUnsupportedCharacter = errors.New("lcdpng: unsupported character")
	// ErrMalformedBitString reports a bit-string holding something other than '0' and '1'.
	ErrMalformedBitString = errors.New("lcdpng: malformed bit-string")
	// ErrWidthOverflow reports encoded content wider than the requested row width.
	ErrWidthOverflow = errors.New("lcdpng: content exceeds row width")
	// ErrIOSetup reports a failure preparing the output location.
	ErrIOSetup = errors.New("lcdpng: output setup failed")
	// ErrConfig reports invalid encoder options.
	ErrConfig = errors.New("lcdpng: invalid configuration")
)

// InvalidInputError describes an identifier rejected before encoding.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("lcdpng: invalid input %q: %s", e.Input, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnsupportedCharacterError is returned by the glyph encoder when a character
// has no entry in the segment table.
type UnsupportedCharacterError struct {
	Char   byte
	Offset int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("lcdpng: unsupported character %q at offset %d", e.Char, e.Offset)
}

func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// MalformedBitStringError points at the first non-binary character of a
// bit-string.
type MalformedBitStringError struct {
	Char   byte
	Offset int
}

func (e *MalformedBitStringError) Error() string {
	return fmt.Sprintf("lcdpng: malformed bit-string: %q at offset %d", e.Char, e.Offset)
}

func (e *MalformedBitStringError) Is(target error) bool {
	return target == ErrMalformedBitString
}

// IOSetupError wraps the failure to prepare an output path.
type IOSetupError struct {
	Path string
	Err  error
}

func (e *IOSetupError) Error() string {
	return fmt.Sprintf("lcdpng: cannot prepare %s: %s", e.Path, e.Err)
}

func (e *IOSetupError) Unwrap() error {
	return e.Err
}

func (e *IOSetupError) Is(target error) bool {
	return target == ErrIOSetup
}
