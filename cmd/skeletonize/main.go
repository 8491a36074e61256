// Command skeletonize thins a raster image to its skeleton and writes an
// annotated PNG with endpoints in blue and branch points in red.
//
// Usage:
//
//	skeletonize -input drawing.png -output skeleton.png -invert -bands 8
//
// Flag defaults can also be read from a YAML file given with -config:
//
//	invert: true
//	bands: 8
//	padding: 24
//	timeout: 30s
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/skeleton"
)

// config holds the parsed command line.
type config struct {
	input     string
	output    string
	threshold uint
	invert    bool
	bands     int
	padding   int
	workers   int
	scale     int
	timeout   time.Duration
	progress  bool
	verbose   bool
	lang      string
	points    string
	file      string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("skeletonize", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.input, "input", "", "input image (PNG, JPEG, GIF, BMP, TIFF or WebP)")
	fs.StringVar(&cfg.output, "output", "skeleton.png", "annotated output PNG")
	fs.UintVar(&cfg.threshold, "threshold", 128, "luminance at or above which a pixel is set (0-255)")
	fs.BoolVar(&cfg.invert, "invert", false, "thin dark strokes on a light background")
	fs.IntVar(&cfg.bands, "bands", 1, "number of horizontal bands thinned concurrently")
	fs.IntVar(&cfg.padding, "padding", 16, "rows of context each band borrows from its neighbours")
	fs.IntVar(&cfg.workers, "workers", 0, "worker goroutines (0 = min(bands, GOMAXPROCS))")
	fs.IntVar(&cfg.scale, "scale", 1, "integer upscaling factor for the output image")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "abort thinning after this long (0 = no limit)")
	fs.BoolVar(&cfg.progress, "progress", false, "print progress to stderr")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.StringVar(&cfg.lang, "lang", "en", "language tag for number formatting in the summary")
	fs.StringVar(&cfg.points, "points", "", "write endpoints and branch points to this YAML file")
	fs.StringVar(&cfg.file, "config", "", "YAML file with defaults for the flags above")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.file != "" {
		fc, err := loadConfig(cfg.file)
		if err != nil {
			return cfg, err
		}
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fc.apply(&cfg, set)
	}
	if cfg.input == "" {
		return cfg, errors.New("skeletonize: -input is required")
	}
	if cfg.threshold > 255 {
		return cfg, fmt.Errorf("skeletonize: threshold %d out of range 0-255", cfg.threshold)
	}
	if cfg.scale < 1 {
		return cfg, ErrInvalidScale
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes the command. It is separate from main for testing.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log := newLogger(stderr, cfg.verbose)
	skeleton.SetLogger(log)
	defer skeleton.SetLogger(nil)

	img, format, err := loadImage(cfg.input)
	if err != nil {
		return err
	}
	log.Info("loaded image", "path", cfg.input, "format", format, "bounds", img.Bounds())

	g, err := skeleton.Binarize(img, uint8(cfg.threshold))
	if err != nil {
		return fmt.Errorf("skeletonize: binarize: %w", err)
	}

	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	opts := []skeleton.Option{
		skeleton.WithInvert(cfg.invert),
		skeleton.WithBands(cfg.bands, cfg.padding),
		skeleton.WithWorkers(cfg.workers),
	}
	if cfg.progress {
		agg := skeleton.NewProgressAggregator(skeleton.EffectiveBands(g.Rows(), cfg.bands), func(p float64) {
			_, _ = fmt.Fprintf(stderr, "\rthinning %5.1f%%", p)
		})
		opts = append(opts, skeleton.WithProgress(agg))
		defer func() { _, _ = fmt.Fprintln(stderr) }()
	}

	a, err := skeleton.Analyze(ctx, g, opts...)
	if err != nil {
		return fmt.Errorf("skeletonize: %w", err)
	}

	out, err := upscale(skeleton.Annotate(a.Skeleton, a.Result), cfg.scale)
	if err != nil {
		return err
	}
	if err := savePNG(cfg.output, out); err != nil {
		return err
	}
	if cfg.points != "" {
		if err := writePoints(cfg.points, cfg.input, a); err != nil {
			return err
		}
	}

	return printSummary(stdout, cfg, a)
}

func printSummary(w io.Writer, cfg config, a *skeleton.Analysis) error {
	tag, err := language.Parse(cfg.lang)
	if err != nil {
		return fmt.Errorf("skeletonize: language %q: %w", cfg.lang, err)
	}
	p := message.NewPrinter(tag)

	lines := []struct {
		format string
		args   []any
	}{
		{"image:         %d x %d\n", []any{a.Skeleton.Cols(), a.Skeleton.Rows()}},
		{"foreground:    %d pixels\n", []any{a.Stats.Foreground}},
		{"skeleton:      %d pixels (%d removed)\n", []any{a.Skeleton.Count(), a.Stats.Removed}},
		{"endpoints:     %d\n", []any{len(a.Endpoints)}},
		{"branch points: %d\n", []any{len(a.BranchPoints)}},
		{"components:    %d\n", []any{a.Components}},
		{"bands:         %d\n", []any{a.Stats.Bands}},
		{"elapsed:       %v\n", []any{a.Stats.Elapsed.Round(time.Millisecond)}},
		{"output:        %s\n", []any{cfg.output}},
	}
	for _, l := range lines {
		if _, err := p.Fprintf(w, l.format, l.args...); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
