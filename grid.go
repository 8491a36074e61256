package skeleton

import (
	"github.com/gogpu/skeleton/internal/bitgrid"
	"github.com/gogpu/skeleton/internal/topology"
)

// Grid is a binary raster with values in {0, 1}, stored row-major.
// Reads outside the grid return 0 and writes outside it are ignored.
type Grid = bitgrid.Grid

// Point is a (row, col) pixel coordinate.
type Point = topology.Point

// NewGrid returns an all-background grid of the given size.
func NewGrid(rows, cols int) (*Grid, error) {
	return bitgrid.New(rows, cols)
}

// GridFromRows builds a grid from equal-length rows. Nonzero values
// become 1.
func GridFromRows(rows [][]uint8) (*Grid, error) {
	return bitgrid.FromRows(rows)
}

// GridFromRaw builds a grid from row-major data. The data is copied and
// nonzero values become 1.
func GridFromRaw(data []uint8, rows, cols int) (*Grid, error) {
	return bitgrid.FromRaw(data, rows, cols)
}

// ParseGrid builds a grid from a text picture. '#', '1' and 'X' are
// foreground, any other character is background. Surrounding whitespace on
// each line and blank lines are ignored.
func ParseGrid(picture string) (*Grid, error) {
	return bitgrid.Parse(picture)
}
