// Package thinning reduces binary grids to one-pixel-wide skeletons.
//
// The engine repeatedly scans the whole grid, marks every foreground pixel
// that IsRemovable allows to delete in a separate removal mask, and then
// clears all marked pixels at once. Decisions within one scan therefore see
// a single consistent snapshot and do not depend on scan order. The loop
// stops at the first scan that marks nothing.
//
// Pixels on the grid border are processed like interior pixels; neighbours
// outside the grid are read as background.
package thinning

import (
	"context"
	"log/slog"

	"github.com/gogpu/skeleton/internal/bitgrid"
)

// Options configures a single Thin call. The zero value is usable.
type Options struct {
	// Invert treats 0 as foreground and 1 as background.
	Invert bool

	// Observer receives per-row progress. Nil means no reports.
	Observer Observer

	// Pool supplies the removal mask. Nil means bitgrid.Default().
	Pool *bitgrid.Pool

	// Logger receives per-iteration debug records. Nil discards them.
	Logger *slog.Logger
}

// Stats summarises a Thin call.
type Stats struct {
	// Iterations is the number of scans that removed at least one pixel.
	Iterations int

	// InitialForeground is the foreground count before thinning
	// (after inversion, if requested).
	InitialForeground int

	// Removed is the number of pixels deleted.
	Removed int
}

// Thin returns the skeleton of g. The input grid is not modified.
//
// If ctx is cancelled, Thin stops between rows and returns the grid as it
// was after the last completed iteration, together with ctx.Err().
func Thin(ctx context.Context, g *bitgrid.Grid, opts Options) (*bitgrid.Grid, Stats, error) {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil, Stats{}, bitgrid.ErrInvalidDimensions
	}

	obs := opts.Observer
	if obs == nil {
		obs = Nop()
	}
	pool := opts.Pool
	if pool == nil {
		pool = bitgrid.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	work := g.Clone()
	if opts.Invert {
		work.Invert()
	}

	stats := Stats{InitialForeground: work.Count()}
	if stats.InitialForeground == 0 {
		obs.OnProgress(100)
		return work, stats, nil
	}

	mask := pool.Get(work.Rows(), work.Cols())
	defer pool.Put(mask)

	for {
		marked, err := scan(ctx, work, mask, stats, obs)
		if err != nil {
			log.Debug("thinning: cancelled",
				"iterations", stats.Iterations,
				"removed", stats.Removed,
				"error", err)
			return work, stats, err
		}
		if marked == 0 {
			break
		}
		apply(work, mask)
		stats.Iterations++
		stats.Removed += marked
		log.Debug("thinning: iteration",
			"iteration", stats.Iterations,
			"removed", marked,
			"remaining", stats.InitialForeground-stats.Removed)
	}

	obs.OnProgress(100)
	return work, stats, nil
}

// scan marks removable pixels of work in mask and returns how many were
// marked. work is only read; mask is cleared first. Every row reports the
// share removed by earlier passes.
func scan(ctx context.Context, work, mask *bitgrid.Grid, stats Stats, obs Observer) (int, error) {
	mask.Clear()
	marked := 0
	done := percent(stats.Removed, stats.InitialForeground)
	for r := range work.Rows() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		row := work.Row(r)
		dst := mask.Row(r)
		for c, v := range row {
			if v == 0 {
				continue
			}
			if IsRemovable(Sample(work, r, c)) {
				dst[c] = 1
				marked++
			}
		}
		obs.OnProgress(done)
	}
	return marked, nil
}

// apply clears every pixel of work that is set in mask.
func apply(work, mask *bitgrid.Grid) {
	dst := work.Data()
	for i, m := range mask.Data() {
		if m != 0 {
			dst[i] = 0
		}
	}
}

// percent returns 100*part/whole clamped to [0, 100].
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 100
	}
	return min(100, 100*float64(part)/float64(whole))
}
