// Package topology extracts structural points from a thinned skeleton.
package topology

import (
	"github.com/gogpu/skeleton/internal/bitgrid"
	"github.com/gogpu/skeleton/internal/thinning"
)

// Point is a pixel coordinate.
type Point struct {
	Row, Col int
}

// Kind is the structural role of a skeleton pixel.
type Kind uint8

const (
	// Ordinary is a background pixel, a border pixel, or a skeleton pixel
	// in the middle of a strand.
	Ordinary Kind = iota

	// Endpoint is a skeleton pixel with exactly one foreground neighbour.
	Endpoint

	// BranchPoint is a skeleton pixel where three or more strands meet.
	BranchPoint
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Endpoint:
		return "endpoint"
	case BranchPoint:
		return "branch point"
	default:
		return "ordinary"
	}
}

// Result holds the classified points of a skeleton in row-major order.
// A point appears in at most one of the two slices.
type Result struct {
	Endpoints    []Point
	BranchPoints []Point
}

// KindAt classifies the pixel at (row, col).
//
// Pixels on the outermost rows and columns are always Ordinary: they lack a
// full neighbourhood. Otherwise a foreground pixel with one foreground
// neighbour is an Endpoint, and one with at least three foreground
// neighbours and at least three 0→1 transitions around it is a BranchPoint.
func KindAt(g *bitgrid.Grid, row, col int) Kind {
	if row <= 0 || col <= 0 || row >= g.Rows()-1 || col >= g.Cols()-1 {
		return Ordinary
	}
	if g.At(row, col) == 0 {
		return Ordinary
	}
	n := thinning.Sample(g, row, col)
	count := n.Count()
	switch {
	case count == 1:
		return Endpoint
	case count >= 3 && n.Transitions() >= 3:
		return BranchPoint
	default:
		return Ordinary
	}
}

// Classify scans g and returns its endpoints and branch points.
func Classify(g *bitgrid.Grid) Result {
	var res Result
	if g == nil {
		return res
	}
	for r := 1; r < g.Rows()-1; r++ {
		row := g.Row(r)
		for c := 1; c < g.Cols()-1; c++ {
			if row[c] == 0 {
				continue
			}
			switch KindAt(g, r, c) {
			case Endpoint:
				res.Endpoints = append(res.Endpoints, Point{Row: r, Col: c})
			case BranchPoint:
				res.BranchPoints = append(res.BranchPoints, Point{Row: r, Col: c})
			}
		}
	}
	return res
}
