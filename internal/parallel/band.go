// Package parallel thins large grids as independent horizontal bands.
//
// The grid is cut into contiguous row ranges of roughly equal height. Each
// band is thinned on its own copy of the rows it covers plus up to Padding
// borrowed rows on either side, so pixels near a cut see real neighbours
// instead of background. After all bands finish, only each band's own rows
// are copied back; the borrowed rows are discarded.
//
// Bands never exchange state while thinning. A feature whose thinning
// depends on pixels more than Padding rows into a neighbouring band can
// therefore come out differently than with a single pass. Use one band, or
// a padding at least as large as the thickest stroke, for exact results.
package parallel

// Band is one horizontal slice of a grid.
type Band struct {
	// Index is the band's position from the top, starting at 0.
	Index int

	// Start and End delimit the rows the band owns, [Start, End).
	Start, End int

	// FetchStart and FetchEnd delimit the rows the band reads,
	// [FetchStart, FetchEnd). They extend Start and End by the padding,
	// clamped to the grid.
	FetchStart, FetchEnd int
}

// Rows returns the number of rows the band owns.
func (b Band) Rows() int {
	return b.End - b.Start
}

// FetchRows returns the number of rows the band reads.
func (b Band) FetchRows() int {
	return b.FetchEnd - b.FetchStart
}

// CoreOffset returns the position of Start within the fetched rows.
func (b Band) CoreOffset() int {
	return b.Start - b.FetchStart
}

// Contains reports whether row belongs to the band.
func (b Band) Contains(row int) bool {
	return row >= b.Start && row < b.End
}

// SplitBands divides rows into count bands with the given padding.
//
// Band i owns rows [i*rows/count, (i+1)*rows/count), so band heights differ
// by at most one row and every row belongs to exactly one band. If count
// exceeds rows, it is reduced to rows. Returns nil if rows or count is not
// positive or padding is negative.
func SplitBands(rows, count, padding int) []Band {
	if rows <= 0 || count <= 0 || padding < 0 {
		return nil
	}
	count = min(count, rows)

	bands := make([]Band, count)
	for i := range bands {
		start := i * rows / count
		end := (i + 1) * rows / count
		bands[i] = Band{
			Index:      i,
			Start:      start,
			End:        end,
			FetchStart: max(start-padding, 0),
			FetchEnd:   min(end+padding, rows),
		}
	}
	return bands
}
