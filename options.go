package skeleton

// Option configures a Skeletonize or Analyze call.
//
// Example:
//
//	// Single pass over the whole grid
//	skel, err := skeleton.Skeletonize(ctx, g)
//
//	// Eight concurrent bands with 16 rows of borrowed context
//	skel, err := skeleton.Skeletonize(ctx, g, skeleton.WithBands(8, 16))
type Option func(*options)

// options holds the configuration of one call.
type options struct {
	invert   bool
	bands    int
	padding  int
	workers  int
	progress ProgressObserver
}

// defaultOptions returns a single-band, non-inverted configuration.
func defaultOptions() options {
	return options{
		bands:   1,
		padding: 0,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithInvert treats 0 as foreground and 1 as background when invert is true.
func WithInvert(invert bool) Option {
	return func(o *options) {
		o.invert = invert
	}
}

// WithBands splits the grid into count horizontal bands that are thinned
// concurrently, each borrowing padding rows of context from either side.
//
// count must be at least 1 and padding at least 0; other values make
// Skeletonize fail with ErrInvalidBandConfiguration.
func WithBands(count, padding int) Option {
	return func(o *options) {
		o.bands = count
		o.padding = padding
	}
}

// WithWorkers bounds the number of goroutines used for bands.
// Zero or negative means min(bands, GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress installs an observer for progress reports.
func WithProgress(p ProgressObserver) Option {
	return func(o *options) {
		o.progress = p
	}
}
