// Package batch reads identifiers line by line and writes one single-row
// image per identifier.
//
// Per-line problems (blank lines, invalid identifiers, duplicates, encoder
// or write failures) are logged and counted; the batch keeps going. Only failing to
// prepare the output directory or to read the input stops a run.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/boombuler/barcode"

	"github.com/flavioheleno/lcdpng"
)

// Stats counts what a run did with its input lines.
type Stats struct {
	Lines      int // Non-blank lines read
	Blank      int // Empty or whitespace-only lines
	Written    int // Images written
	Invalid    int // Lines rejected by validation
	Duplicates int // Identifiers already seen in this run
	Failed     int // Encoding or write failures
}

// Driver turns an identifier list into image files.
type Driver struct {
	enc    *lcdpng.Encoder
	outDir string
	writer Writer
	height int
	log    *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithWriter selects the image format (default: PNG).
func WithWriter(w Writer) Option {
	return func(d *Driver) { d.writer = w }
}

// WithHeight stretches every image to h pixels (default: 1).
func WithHeight(h int) Option {
	return func(d *Driver) { d.height = h }
}

// WithLogger sets the logger used for per-line reports.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// New returns a Driver writing into outDir. enc can be nil to use the
// default encoder layout.
func New(enc *lcdpng.Encoder, outDir string, opts ...Option) (*Driver, error) {
	if enc == nil {
		var err error
		if enc, err = lcdpng.NewEncoder(nil); err != nil {
			return nil, err
		}
	}
	if outDir == "" {
		return nil, fmt.Errorf("%w: empty output directory", lcdpng.ErrConfig)
	}
	d := &Driver{
		enc:    enc,
		outDir: outDir,
		writer: PNG{},
		height: 1,
		log:    slog.Default(),
	}
	for _, o := range opts {
		o(d)
	}
	if d.height < 1 {
		return nil, fmt.Errorf("%w: height must be at least 1, got %d", lcdpng.ErrConfig, d.height)
	}
	return d, nil
}

// Setup creates the output directory and its parents.
func (d *Driver) Setup() error {
	if err := os.MkdirAll(d.outDir, 0o755); err != nil {
		return &lcdpng.IOSetupError{Path: d.outDir, Err: err}
	}
	return nil
}

// Path returns the output file path for id.
func (d *Driver) Path(id string) string {
	return filepath.Join(d.outDir, id+"."+d.writer.Ext())
}

// Run prepares the output directory and processes r line by line in
// source order.
func (d *Driver) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var st Stats
	if err := d.Setup(); err != nil {
		return st, err
	}

	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		lineNo++
		id := strings.TrimSpace(sc.Text())
		if id == "" {
			st.Blank++
			d.log.Warn("blank line, skipped", "line", lineNo)
			continue
		}
		st.Lines++

		if err := d.enc.Validate(id); err != nil {
			st.Invalid++
			d.log.Warn("invalid identifier, skipped", "line", lineNo, "id", id, "error", err)
			continue
		}
		if _, dup := seen[id]; dup {
			st.Duplicates++
			d.log.Warn("duplicate identifier, skipped", "line", lineNo, "id", id)
			continue
		}
		seen[id] = struct{}{}

		path, err := d.Process(id)
		if err != nil {
			st.Failed++
			d.log.Error("failed to convert identifier, skipped", "line", lineNo, "id", id, "error", err)
			continue
		}
		st.Written++
		d.log.Debug("image written", "id", id, "path", path)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("batch: reading input: %w", err)
	}
	return st, nil
}

// Process encodes id and writes its image. It returns the written path.
func (d *Driver) Process(id string) (string, error) {
	img, err := d.enc.EncodeImage(id)
	if err != nil {
		return "", err
	}
	out, err := d.render(img)
	if err != nil {
		return "", err
	}
	path := d.Path(id)
	if err := d.writeFile(path, out); err != nil {
		return "", err
	}
	return path, nil
}

func (d *Driver) render(img *lcdpng.RowImage) (*image.Gray, error) {
	if d.height == 1 {
		return img.Gray(1), nil
	}
	scaled, err := barcode.Scale(img, img.Bounds().Dx(), d.height)
	if err != nil {
		return nil, fmt.Errorf("batch: scaling %s: %w", img.Content(), err)
	}
	dst := image.NewGray(scaled.Bounds())
	draw.Draw(dst, dst.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return dst, nil
}

// writeFile writes into a temporary file next to path and renames it, so a
// failed write never leaves a truncated image behind.
func (d *Driver) writeFile(path string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := d.writer.Write(f, img); err != nil {
		return fmt.Errorf("batch: encoding %s: %w", path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}
