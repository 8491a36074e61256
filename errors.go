package skeleton

import (
	"github.com/gogpu/skeleton/internal/bitgrid"
	"github.com/gogpu/skeleton/internal/parallel"
)

// Errors returned by the package. Test for them with errors.Is.
var (
	// ErrInvalidDimensions is returned for nil grids, grids with zero rows
	// or columns, and ragged row input.
	ErrInvalidDimensions = bitgrid.ErrInvalidDimensions

	// ErrInvalidBandConfiguration is returned when the band count is below
	// one or the padding is negative. No work is started.
	ErrInvalidBandConfiguration = parallel.ErrInvalidBandConfiguration
)
