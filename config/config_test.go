package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavioheleno/lcdpng"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 4, c.IDLen)
	assert.Equal(t, 97, c.Modulus)
	assert.Equal(t, 2, c.ChecksumLen)
	assert.Equal(t, 256, c.Width)
	assert.Equal(t, 1, c.Height)
	assert.Equal(t, "png", c.Format)
	assert.False(t, c.Verbose)
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(lookupMap(map[string]string{
		EnvIDLen:       "5",
		EnvModulus:     " 83 ",
		EnvChecksumLen: "3",
		EnvWidth:       "128",
		EnvHeight:      "8",
		EnvFormat:      "BMP",
		EnvDebug:       "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		IDLen:       5,
		Modulus:     83,
		ChecksumLen: 3,
		Width:       128,
		Height:      8,
		Format:      "bmp",
		Verbose:     true,
	}, c)

	opts := c.EncoderOpts()
	assert.Equal(t, &lcdpng.Opts{IDLen: 5, Modulus: 83, ChecksumLen: 3, Width: 128}, opts)
}

func TestFromEnvBlankKeepsDefault(t *testing.T) {
	c, err := FromEnv(lookupMap(map[string]string{EnvWidth: "  "}))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"not a number", map[string]string{EnvWidth: "wide"}},
		{"width too small", map[string]string{EnvWidth: "40"}},
		{"zero height", map[string]string{EnvHeight: "0"}},
		{"unknown format", map[string]string{EnvFormat: "gif"}},
		{"zero modulus", map[string]string{EnvModulus: "0"}},
		{"huge modulus", map[string]string{EnvModulus: "4611686018427387904"}},
		{"checksum too wide", map[string]string{EnvChecksumLen: "19", EnvWidth: "512"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(lookupMap(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	base := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("LCDPNG_WIDTH=128\n"), 0o644))
	require.NoError(t, os.WriteFile(base, []byte("LCDPNG_WIDTH=64\nLCDPNG_FORMAT=bmp\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvWidth)
		os.Unsetenv(EnvFormat)
	})

	c, err := Load(local, base, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 128, c.Width, ".env.local should take precedence")
	assert.Equal(t, "bmp", c.Format)
}
