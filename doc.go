// Package skeleton reduces binary raster images to one-pixel-wide
// skeletons and finds their endpoints and branch points.
//
// # Overview
//
// Thinning follows Hilditch's algorithm. Every pass scans the whole grid,
// marks each foreground pixel whose removal keeps the local connectivity
// intact, and clears all marked pixels at once. Passes repeat until one
// marks nothing.
//
// Every decision in a pass is taken against the same snapshot, so pixels
// that would each be safe to delete alone can all go at once. Thick
// regions normally keep a skeleton, but very small blobs can shrink
// further than expected: a solid 2x2 block is erased completely and an
// L-shaped tromino thins to a single pixel. Single isolated pixels are kept.
//
// # Quick Start
//
//	import "github.com/gogpu/skeleton"
//
//	g, _ := skeleton.ParseGrid(`
//	    ..........
//	    .########.
//	    .########.
//	    .########.
//	    ..........
//	`)
//
//	skel, err := skeleton.Skeletonize(ctx, g)
//	if err != nil {
//	    return err
//	}
//	res := skeleton.Classify(skel)
//	fmt.Println(len(res.Endpoints), len(res.BranchPoints))
//
// # Bands
//
// Large grids can be split into horizontal bands that are thinned
// concurrently:
//
//	skel, err := skeleton.Skeletonize(ctx, g, skeleton.WithBands(8, 16))
//
// Each band borrows padding rows from its neighbours and keeps only its
// own rows after thinning. Features that need more than padding rows of
// context to resolve can differ from a single pass. Use a single band when
// exact results matter.
//
// # Polarity
//
// By default 1 is foreground. WithInvert(true) swaps the roles so that
// strokes encoded as 0 are thinned instead. The returned skeleton always
// uses 1 for skeleton pixels.
//
// # Progress and cancellation
//
// WithProgress installs a ProgressObserver that receives a percentage after
// every scanned row. With more than one band the observer is called from
// several goroutines at once; observers that also implement BandObserver
// receive the band index. The context passed to Skeletonize is checked
// between rows.
//
// # Logging
//
// The package is silent by default. SetLogger installs a [log/slog] logger
// that receives per-iteration and per-band debug records.
package skeleton
