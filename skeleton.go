package skeleton

import (
	"context"
	"time"

	"github.com/gogpu/skeleton/internal/parallel"
	"github.com/gogpu/skeleton/internal/thinning"
	"github.com/gogpu/skeleton/internal/topology"
)

// Result holds the endpoints and branch points of a skeleton in row-major
// order. A point appears in at most one of the two slices.
type Result = topology.Result

// Stats describes one skeletonization.
type Stats struct {
	// Foreground is the number of foreground pixels before thinning, after
	// applying the polarity.
	Foreground int

	// Removed is the number of foreground pixels deleted by thinning.
	Removed int

	// Bands is the number of bands that were thinned.
	Bands int

	// Elapsed is the wall time spent thinning.
	Elapsed time.Duration
}

// Analysis is the combined output of Analyze.
type Analysis struct {
	// Skeleton is the thinned grid.
	Skeleton *Grid

	// Result lists endpoints and branch points of Skeleton.
	Result

	// Components is the number of 8-connected regions in Skeleton.
	Components int

	Stats Stats
}

// EffectiveBands returns how many bands a grid with the given number of
// rows is split into when count bands are requested. Bands never share a
// row, so the result is at most rows. Size a ProgressAggregator with it.
func EffectiveBands(rows, count int) int {
	return len(parallel.SplitBands(rows, count, 0))
}

// Skeletonize returns the skeleton of g. The input grid is not modified.
//
// Skeleton pixels are 1 in the returned grid regardless of WithInvert.
// If ctx is cancelled the best-effort grid is returned with ctx.Err().
func Skeletonize(ctx context.Context, g *Grid, opts ...Option) (*Grid, error) {
	out, _, err := skeletonize(ctx, g, buildOptions(opts))
	return out, err
}

func skeletonize(ctx context.Context, g *Grid, o options) (*Grid, Stats, error) {
	cfg := parallel.Config{Bands: o.bands, Padding: o.padding, Workers: o.workers}
	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, Stats{}, ErrInvalidDimensions
	}

	log := Logger()
	topts := thinning.Options{
		Invert:   o.invert,
		Observer: o.progress,
		Logger:   log,
	}

	start := time.Now()
	var (
		out   *Grid
		stats Stats
		err   error
	)
	if cfg.Bands == 1 {
		var ts thinning.Stats
		out, ts, err = thinning.Thin(ctx, g, topts)
		stats = Stats{Foreground: ts.InitialForeground, Removed: ts.Removed, Bands: 1}
	} else {
		out, err = parallel.Thin(ctx, g, cfg, topts)
		stats = Stats{
			Foreground: foreground(g, o.invert),
			Bands:      EffectiveBands(g.Rows(), cfg.Bands),
		}
		if out != nil {
			stats.Removed = stats.Foreground - out.Count()
		}
	}
	stats.Elapsed = time.Since(start)

	if err != nil {
		log.Debug("skeleton: stopped early", "error", err)
		return out, stats, err
	}
	log.Info("skeleton: done",
		"rows", g.Rows(),
		"cols", g.Cols(),
		"bands", stats.Bands,
		"foreground", stats.Foreground,
		"removed", stats.Removed,
		"elapsed", stats.Elapsed)
	return out, stats, nil
}

// foreground counts the pixels that thinning treats as foreground.
func foreground(g *Grid, invert bool) int {
	n := g.Count()
	if invert {
		return g.Rows()*g.Cols() - n
	}
	return n
}

// Classify finds the endpoints and branch points of a skeleton. Pixels on
// the outermost rows and columns are never reported.
func Classify(g *Grid) Result {
	return topology.Classify(g)
}

// Components returns the 8-connected foreground regions of g, each in
// row-major order, ordered by their first pixel.
func Components(g *Grid) [][]Point {
	return topology.Components(g)
}

// Analyze skeletonizes g, classifies the skeleton and counts its
// connected components. On error, including cancellation, it returns a nil
// Analysis.
func Analyze(ctx context.Context, g *Grid, opts ...Option) (*Analysis, error) {
	skel, stats, err := skeletonize(ctx, g, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Analysis{
		Skeleton:   skel,
		Result:     topology.Classify(skel),
		Components: len(topology.Components(skel)),
		Stats:      stats,
	}, nil
}
