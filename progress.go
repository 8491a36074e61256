package skeleton

import (
	"sync"

	"github.com/gogpu/skeleton/internal/parallel"
	"github.com/gogpu/skeleton/internal/thinning"
)

// ProgressObserver receives thinning progress as a percentage in [0, 100].
// With more than one band it is called concurrently from every band.
type ProgressObserver = thinning.Observer

// ProgressFunc adapts a function to ProgressObserver.
type ProgressFunc = thinning.ObserverFunc

// BandObserver can be implemented by a ProgressObserver to receive the
// index of the reporting band. OnProgress is then not called.
type BandObserver = parallel.BandObserver

// ProgressAggregator combines per-band reports into one overall percentage,
// the mean of the latest report of every band, and forwards it to a
// function. It is safe for concurrent use.
//
// Example:
//
//	agg := skeleton.NewProgressAggregator(8, func(p float64) {
//	    fmt.Printf("\r%5.1f%%", p)
//	})
//	skel, err := skeleton.Skeletonize(ctx, g,
//	    skeleton.WithBands(8, 16), skeleton.WithProgress(agg))
type ProgressAggregator struct {
	mu     sync.Mutex
	bands  []float64
	last   float64
	report func(float64)
}

// NewProgressAggregator creates an aggregator for the given number of
// bands. Grids with fewer rows than requested bands are split into fewer
// bands, so pass EffectiveBands rather than the requested count.
// Reports that do not raise the overall percentage are dropped.
func NewProgressAggregator(bands int, report func(percent float64)) *ProgressAggregator {
	return &ProgressAggregator{
		bands:  make([]float64, max(bands, 1)),
		last:   -1,
		report: report,
	}
}

// OnProgress treats the report as coming from band 0.
func (a *ProgressAggregator) OnProgress(percent float64) {
	a.OnBandProgress(0, percent)
}

// OnBandProgress records the latest report of band.
func (a *ProgressAggregator) OnBandProgress(band int, percent float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if band < 0 || band >= len(a.bands) {
		return
	}
	a.bands[band] = percent

	var sum float64
	for _, p := range a.bands {
		sum += p
	}
	overall := sum / float64(len(a.bands))
	if overall <= a.last {
		return
	}
	a.last = overall
	if a.report != nil {
		a.report(overall)
	}
}

// Percent returns the last forwarded percentage, or 0 before any report.
func (a *ProgressAggregator) Percent() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return max(a.last, 0)
}
