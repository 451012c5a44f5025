package lcdpng

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Upper bounds that keep the digit-by-digit accumulation within int.
const (
	MaxModulus     = math.MaxInt / 10
	MaxChecksumLen = 18
)

// Checksum computes the check digits of id: the decimal value of id read
// backwards, modulo modulus, reduced to digits places and zero padded.
//
// The value is accumulated one digit at a time, so identifiers of any length
// are accepted. Trailing zeros of id become leading zeros of the reversed
// number and carry no weight.
func Checksum(id string, modulus, digits int) (string, error) {
	if err := checkChecksumParams(modulus, digits); err != nil {
		return "", err
	}
	if id == "" {
		return "", &InvalidInputError{Input: id, Reason: "empty identifier"}
	}

	sum := 0
	for i := len(id) - 1; i >= 0; i-- {
		c := id[i]
		if !isDigit(c) {
			return "", &InvalidInputError{Input: id, Reason: fmt.Sprintf("non-digit %q at offset %d", c, i)}
		}
		sum = (sum*10 + int(c-'0')) % modulus
	}

	// Keep the result within the configured width.
	limit := 1
	for i := 0; i < digits; i++ {
		limit *= 10
		if limit > modulus {
			break
		}
	}
	sum %= limit

	s := strconv.Itoa(sum)
	if len(s) < digits {
		s = strings.Repeat("0", digits-len(s)) + s
	}
	return s, nil
}

// AddChecksum prepends the check digits of id to id itself.
func AddChecksum(id string, modulus, digits int) (string, error) {
	sum, err := Checksum(id, modulus, digits)
	if err != nil {
		return "", err
	}
	return sum + id, nil
}

func checkChecksumParams(modulus, digits int) error {
	if modulus < 1 || modulus > MaxModulus {
		return fmt.Errorf("%w: modulus must be between 1 and %d, got %d", ErrConfig, MaxModulus, modulus)
	}
	if digits < 1 || digits > MaxChecksumLen {
		return fmt.Errorf("%w: checksum length must be between 1 and %d, got %d", ErrConfig, MaxChecksumLen, digits)
	}
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
