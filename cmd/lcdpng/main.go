// Command lcdpng converts a list of numeric identifiers into single-row LCD
// segment images, one file per identifier.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/flavioheleno/lcdpng"
	"github.com/flavioheleno/lcdpng/batch"
	"github.com/flavioheleno/lcdpng/config"
)

var params = struct {
	input  string
	output string
}{}

func init() {
	flag.Usage = usage
	flag.StringVar(&params.input, "f", "", "text file with one identifier per line")
	flag.StringVar(&params.output, "o", "", "output directory (created if missing)")
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	// Per-line reports go to standard output.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if params.input == "" && flag.NArg() > 0 {
		params.input = flag.Arg(0)
	}
	if params.output == "" && flag.NArg() > 1 {
		params.output = flag.Arg(1)
	}
	if params.input == "" || params.output == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, params.input, params.output, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, input, output string, logger *slog.Logger) error {
	enc, err := lcdpng.NewEncoder(cfg.EncoderOpts())
	if err != nil {
		return err
	}
	w, err := batch.WriterFor(cfg.Format)
	if err != nil {
		return err
	}
	d, err := batch.New(enc, output,
		batch.WithWriter(w),
		batch.WithHeight(cfg.Height),
		batch.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	st, err := d.Run(ctx, f)
	if err != nil {
		if errors.Is(err, lcdpng.ErrIOSetup) {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
		return err
	}
	logger.Info("done",
		"input", input,
		"output", output,
		"written", st.Written,
		"blank", st.Blank,
		"invalid", st.Invalid,
		"duplicates", st.Duplicates,
		"failed", st.Failed,
	)
	return nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "lcdpng - converts %d-digit identifiers into 7-segment LCD row images.\n\n", lcdpng.DefaultIDLen)
	fmt.Fprintf(out, "Usage: %s -f <input> -o <output dir>\n", os.Args[0])
	fmt.Fprintf(out, "       %s <input> <output dir>\n\n", os.Args[0])
	fmt.Fprintf(out, "Layout and format can be changed with %s, %s, %s, %s, %s and %s,\n",
		config.EnvIDLen, config.EnvModulus, config.EnvChecksumLen, config.EnvWidth, config.EnvHeight, config.EnvFormat)
	fmt.Fprintf(out, "set in the environment or in .env.local / .env. %s=1 enables debug logging.\n\n", config.EnvDebug)
	fmt.Fprintf(out, "Flags:\n")
	flag.PrintDefaults()
}
