// Package config loads the lcdpng settings from .env files and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/flavioheleno/lcdpng"
)

// Environment variables read by Load.
const (
	EnvIDLen       = "LCDPNG_ID_LEN"
	EnvModulus     = "LCDPNG_MODULUS"
	EnvChecksumLen = "LCDPNG_CHECKSUM_LEN"
	EnvWidth       = "LCDPNG_WIDTH"
	EnvHeight      = "LCDPNG_HEIGHT"
	EnvFormat      = "LCDPNG_FORMAT"
	EnvDebug       = "DEBUG"
)

// DefaultFiles are the .env files consulted when Load is called without
// paths, highest precedence first.
var DefaultFiles = []string{".env.local", ".env"}

// Config holds the encoder layout and output settings.
type Config struct {
	IDLen       int
	Modulus     int
	ChecksumLen int
	Width       int

	Height  int    // Output image height in pixels
	Format  string // "png" or "bmp"
	Verbose bool
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		IDLen:       lcdpng.DefaultIDLen,
		Modulus:     lcdpng.DefaultModulus,
		ChecksumLen: lcdpng.DefaultChecksumLen,
		Width:       lcdpng.DefaultWidth,
		Height:      1,
		Format:      "png",
	}
}

// Load reads the given .env files (DefaultFiles when none are given) into
// the environment and builds a Config from it. Files that do not exist are
// skipped. Variables already set in the environment win over file values,
// and earlier files win over later ones.
func Load(paths ...string) (Config, error) {
	if len(paths) == 0 {
		paths = DefaultFiles
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: loading %s: %w", p, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{EnvIDLen, &c.IDLen},
		{EnvModulus, &c.Modulus},
		{EnvChecksumLen, &c.ChecksumLen},
		{EnvWidth, &c.Width},
		{EnvHeight, &c.Height},
	}
	for _, v := range ints {
		s, ok := lookup(v.key)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", v.key, err)
		}
		*v.dst = n
	}
	if s, ok := lookup(EnvFormat); ok && s != "" {
		c.Format = strings.ToLower(strings.TrimSpace(s))
	}
	if s, ok := lookup(EnvDebug); ok {
		c.Verbose = s == "1"
	}
	return c, c.Validate()
}

// Validate checks the encoder layout and the output settings.
func (c Config) Validate() error {
	if err := c.EncoderOpts().Validate(); err != nil {
		return err
	}
	if c.Height < 1 {
		return fmt.Errorf("%w: height must be at least 1, got %d", lcdpng.ErrConfig, c.Height)
	}
	switch c.Format {
	case "png", "bmp":
	default:
		return fmt.Errorf("%w: unknown format %q", lcdpng.ErrConfig, c.Format)
	}
	return nil
}

// EncoderOpts returns the encoder part of the configuration.
func (c Config) EncoderOpts() *lcdpng.Opts {
	return &lcdpng.Opts{
		IDLen:       c.IDLen,
		Modulus:     c.Modulus,
		ChecksumLen: c.ChecksumLen,
		Width:       c.Width,
	}
}
