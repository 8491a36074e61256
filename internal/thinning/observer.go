package thinning

// Observer receives fractional completion reports from the engine.
//
// OnProgress is called with a percentage in [0, 100] after every scanned
// row. When several bands are thinned concurrently the same Observer is
// called from several goroutines, so implementations must be safe for
// concurrent use. The engine never reads anything back from an Observer.
type Observer interface {
	OnProgress(percent float64)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(percent float64)

// OnProgress calls f(percent).
func (f ObserverFunc) OnProgress(percent float64) {
	f(percent)
}

// nopObserver discards all reports.
type nopObserver struct{}

func (nopObserver) OnProgress(float64) {}

// Nop returns an Observer that ignores every report.
func Nop() Observer {
	return nopObserver{}
}
