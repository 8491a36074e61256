// Package bitgrid provides binary raster storage for skeletonization.
//
// A Grid holds one byte per pixel in row-major order. Every stored value is
// either 0 (background) or 1 (foreground); constructors and setters coerce
// any nonzero input to 1.
package bitgrid

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors for grid operations.
var (
	// ErrInvalidDimensions is returned when rows or columns is non-positive
	// or when row slices have different lengths.
	ErrInvalidDimensions = errors.New("bitgrid: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("bitgrid: data buffer too small")

	// ErrRowRange is returned when a row range falls outside the grid.
	ErrRowRange = errors.New("bitgrid: row range out of bounds")

	// ErrSizeMismatch is returned when two grids must share a width but don't.
	ErrSizeMismatch = errors.New("bitgrid: grid sizes differ")
)

// Grid is a binary raster with fixed dimensions.
//
// Thread safety: Grid is safe for concurrent reads. Writes (Set, Clear,
// Invert, CopyRows) require external synchronization.
type Grid struct {
	data []uint8
	rows int
	cols int
}

// New creates an all-background grid with the given dimensions.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		data: make([]uint8, rows*cols),
		rows: rows,
		cols: cols,
	}, nil
}

// FromRaw creates a grid from row-major data. The data is copied and every
// nonzero value is stored as 1.
func FromRaw(data []uint8, rows, cols int) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) < rows*cols {
		return nil, ErrDataTooSmall
	}
	for i := range g.data {
		g.data[i] = bit(data[i])
	}
	return g, nil
}

// FromRows creates a grid from a slice of equally long rows.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	g, err := New(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimensions, r, len(row), cols)
		}
		dst := g.Row(r)
		for c, v := range row {
			dst[c] = bit(v)
		}
	}
	return g, nil
}

// Parse builds a grid from a textual picture where '#', '1' and 'X' mark
// foreground and any other character is background. Blank lines and
// surrounding whitespace are ignored, which makes it convenient for fixtures.
func Parse(picture string) (*Grid, error) {
	var rows [][]uint8
	for _, line := range strings.Split(picture, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]uint8, len(line))
		for i := range len(line) {
			switch line[i] {
			case '#', '1', 'X':
				row[i] = 1
			}
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]uint8, len(g.data))
	copy(data, g.data)
	return &Grid{data: data, rows: g.rows, cols: g.cols}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// Bounds returns the grid dimensions as (rows, cols).
func (g *Grid) Bounds() (int, int) {
	return g.rows, g.cols
}

// Data returns the raw row-major pixel slice. Writers must keep values in {0,1}.
func (g *Grid) Data() []uint8 {
	return g.data
}

// Row returns the pixels of row r, or nil if r is out of bounds.
// The slice aliases the grid.
func (g *Grid) Row(r int) []uint8 {
	if r < 0 || r >= g.rows {
		return nil
	}
	return g.data[r*g.cols : (r+1)*g.cols]
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the pixel at (r, c). Coordinates outside the grid read as
// background.
func (g *Grid) At(r, c int) uint8 {
	if !g.InBounds(r, c) {
		return 0
	}
	return g.data[r*g.cols+c]
}

// Set stores v at (r, c), coercing nonzero values to 1.
// Out-of-bounds writes are ignored.
func (g *Grid) Set(r, c int, v uint8) {
	if !g.InBounds(r, c) {
		return
	}
	g.data[r*g.cols+c] = bit(v)
}

// Count returns the number of foreground pixels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.data {
		n += int(v)
	}
	return n
}

// Clear sets every pixel to background.
func (g *Grid) Clear() {
	clear(g.data)
}

// Invert swaps foreground and background in place.
func (g *Grid) Invert() {
	for i, v := range g.data {
		g.data[i] = 1 - v
	}
}

// Equal reports whether both grids have the same dimensions and pixels.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// SubRows returns a copy of rows [start, end).
func (g *Grid) SubRows(start, end int) (*Grid, error) {
	if start < 0 || end > g.rows || start >= end {
		return nil, fmt.Errorf("%w: [%d, %d) of %d rows", ErrRowRange, start, end, g.rows)
	}
	data := make([]uint8, (end-start)*g.cols)
	copy(data, g.data[start*g.cols:end*g.cols])
	return &Grid{data: data, rows: end - start, cols: g.cols}, nil
}

// CopyRows copies n rows of src, starting at srcStart, into g starting at
// dstStart.
func (g *Grid) CopyRows(dstStart int, src *Grid, srcStart, n int) error {
	if src.cols != g.cols {
		return fmt.Errorf("%w: %d columns into %d", ErrSizeMismatch, src.cols, g.cols)
	}
	if n < 0 || srcStart < 0 || srcStart+n > src.rows || dstStart < 0 || dstStart+n > g.rows {
		return fmt.Errorf("%w: copy %d rows from %d to %d", ErrRowRange, n, srcStart, dstStart)
	}
	copy(g.data[dstStart*g.cols:(dstStart+n)*g.cols], src.data[srcStart*src.cols:(srcStart+n)*src.cols])
	return nil
}

// Slices returns the grid as a freshly allocated slice of rows.
func (g *Grid) Slices() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := range out {
		out[r] = append([]uint8(nil), g.Row(r)...)
	}
	return out
}

// String renders the grid with '#' for foreground and '.' for background,
// one line per row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		for _, v := range g.Row(r) {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func bit(v uint8) uint8 {
	if v != 0 {
		return 1
	}
	return 0
}
