package parallel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/gogpu/skeleton/internal/bitgrid"
	"github.com/gogpu/skeleton/internal/thinning"
)

// ErrInvalidBandConfiguration is returned when the band count is below 1 or
// the padding is negative.
var ErrInvalidBandConfiguration = errors.New("parallel: invalid band configuration")

// Config controls how a grid is split.
type Config struct {
	// Bands is the number of horizontal bands. Must be at least 1.
	Bands int

	// Padding is the number of rows borrowed from each neighbour.
	// Must not be negative.
	Padding int

	// Workers bounds the number of bands thinned at once.
	// 0 or negative means min(Bands, GOMAXPROCS).
	Workers int
}

// Validate reports ErrInvalidBandConfiguration for unusable values.
func (c Config) Validate() error {
	if c.Bands < 1 {
		return fmt.Errorf("%w: band count %d < 1", ErrInvalidBandConfiguration, c.Bands)
	}
	if c.Padding < 0 {
		return fmt.Errorf("%w: padding %d < 0", ErrInvalidBandConfiguration, c.Padding)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return min(c.Bands, runtime.GOMAXPROCS(0))
}

// BandObserver is an optional extension of thinning.Observer. When the
// observer passed to Thin implements it, each band reports through
// OnBandProgress with its index instead of through OnProgress.
// Progress is never aggregated across bands here.
type BandObserver interface {
	OnBandProgress(band int, percent float64)
}

// bandReporter forwards a single band's progress to a BandObserver.
type bandReporter struct {
	band int
	obs  BandObserver
}

func (r bandReporter) OnProgress(percent float64) {
	r.obs.OnBandProgress(r.band, percent)
}

// observerFor returns the observer a band should report to.
func observerFor(obs thinning.Observer, band int) thinning.Observer {
	if bo, ok := obs.(BandObserver); ok {
		return bandReporter{band: band, obs: bo}
	}
	return obs
}

// bandResult is what one band hands back to the merge step.
type bandResult struct {
	grid  *bitgrid.Grid
	stats thinning.Stats
	err   error
}

// Coordinator thins grids band by band on a reusable BandPool.
//
// Thread safety: Thin may be called from several goroutines; calls share
// the pool. Close must not run concurrently with Thin.
type Coordinator struct {
	pool *BandPool
}

// NewCoordinator creates a Coordinator backed by workers goroutines.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewCoordinator(workers int) *Coordinator {
	return &Coordinator{pool: NewBandPool(workers)}
}

// Workers returns the number of worker goroutines.
func (c *Coordinator) Workers() int {
	return c.pool.Workers()
}

// Close releases the worker goroutines.
func (c *Coordinator) Close() {
	c.pool.Close()
}

// Thin splits g into cfg.Bands bands, thins them concurrently with opts
// and stitches the owned rows back together. The input grid is not
// modified. cfg.Workers is ignored; the pool size was fixed at creation.
//
// On error (for example a cancelled ctx) the stitched best-effort grid is
// returned along with the first band error.
func (c *Coordinator) Thin(ctx context.Context, g *bitgrid.Grid, cfg Config, opts thinning.Options) (*bitgrid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, bitgrid.ErrInvalidDimensions
	}

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	bands := SplitBands(g.Rows(), cfg.Bands, cfg.Padding)
	log.Debug("parallel: dispatching bands",
		"bands", len(bands),
		"padding", cfg.Padding,
		"workers", c.pool.Workers())
	results := c.pool.Run(bands, func(b Band) bandResult {
		return thinBand(ctx, g, b, opts)
	})

	return merge(g.Rows(), g.Cols(), bands, results, log)
}

// thinBand copies the band's fetched rows and thins them.
func thinBand(ctx context.Context, g *bitgrid.Grid, b Band, opts thinning.Options) bandResult {
	src, err := g.SubRows(b.FetchStart, b.FetchEnd)
	if err != nil {
		return bandResult{err: err}
	}
	bandOpts := opts
	if opts.Observer != nil {
		bandOpts.Observer = observerFor(opts.Observer, b.Index)
	}
	if opts.Logger != nil {
		bandOpts.Logger = opts.Logger.With("band", b.Index)
	}
	out, stats, err := thinning.Thin(ctx, src, bandOpts)
	return bandResult{grid: out, stats: stats, err: err}
}

// merge copies the owned rows of every band into a new grid.
func merge(rows, cols int, bands []Band, results []bandResult, log *slog.Logger) (*bitgrid.Grid, error) {
	out, err := bitgrid.New(rows, cols)
	if err != nil {
		return nil, err
	}

	var firstErr error
	iterations := 0
	for i, b := range bands {
		res := results[i]
		if res.err != nil && firstErr == nil {
			firstErr = fmt.Errorf("band %d: %w", b.Index, res.err)
		}
		if res.grid == nil {
			continue
		}
		if err := out.CopyRows(b.Start, res.grid, b.CoreOffset(), b.Rows()); err != nil {
			return nil, err
		}
		iterations = max(iterations, res.stats.Iterations)
	}

	log.Debug("parallel: bands merged",
		"bands", len(bands),
		"max_iterations", iterations,
		"error", firstErr)
	return out, firstErr
}

// Thin thins g with a temporary Coordinator sized by cfg.Workers.
func Thin(ctx context.Context, g *bitgrid.Grid, cfg Config, opts thinning.Options) (*bitgrid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := NewCoordinator(cfg.workers())
	defer c.Close()
	return c.Thin(ctx, g, cfg, opts)
}
