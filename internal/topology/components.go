package topology

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/gogpu/skeleton/internal/bitgrid"
)

// forward lists the neighbour offsets that follow a pixel in row-major
// order. Linking each pixel to these covers every 8-adjacent pair once.
var forward = [4][2]int{
	{0, 1},  // E
	{1, 1},  // SE
	{1, 0},  // S
	{1, -1}, // SW
}

// PixelGraph returns the undirected graph whose nodes are the foreground
// pixels of g (ID = row*cols + col) and whose edges join 8-adjacent pixels.
func PixelGraph(g *bitgrid.Grid) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	if g == nil {
		return ug
	}
	cols := g.Cols()
	for i, v := range g.Data() {
		if v != 0 {
			ug.AddNode(simple.Node(int64(i)))
		}
	}
	for r := range g.Rows() {
		for c, v := range g.Row(r) {
			if v == 0 {
				continue
			}
			from := simple.Node(int64(r*cols + c))
			for _, d := range forward {
				nr, nc := r+d[0], c+d[1]
				if g.At(nr, nc) == 0 {
					continue
				}
				ug.SetEdge(simple.Edge{F: from, T: simple.Node(int64(nr*cols + nc))})
			}
		}
	}
	return ug
}

// Components returns the 8-connected foreground components of g. Points in
// a component are in row-major order and components are ordered by their
// first point.
func Components(g *bitgrid.Grid) [][]Point {
	if g == nil {
		return nil
	}
	cols := int64(g.Cols())
	groups := topo.ConnectedComponents(PixelGraph(g))

	out := make([][]Point, 0, len(groups))
	for _, nodes := range groups {
		pts := make([]Point, len(nodes))
		for i, n := range nodes {
			id := n.ID()
			pts[i] = Point{Row: int(id / cols), Col: int(id % cols)}
		}
		slices.SortFunc(pts, comparePoints)
		out = append(out, pts)
	}
	slices.SortFunc(out, func(a, b []Point) int {
		return comparePoints(a[0], b[0])
	})
	return out
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}
