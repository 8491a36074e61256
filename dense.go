package skeleton

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gogpu/skeleton/internal/bitgrid"
)

// GridFromMatrix builds a grid from a gonum matrix. Every nonzero element
// becomes 1.
func GridFromMatrix(m mat.Matrix) (*Grid, error) {
	if m == nil {
		return nil, ErrInvalidDimensions
	}
	rows, cols := m.Dims()
	g, err := bitgrid.New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := range rows {
		for c := range cols {
			if m.At(r, c) != 0 {
				g.Set(r, c, 1)
			}
		}
	}
	return g, nil
}

// DenseFromGrid returns g as a gonum matrix of zeros and ones, or nil for
// an empty grid.
func DenseFromGrid(g *Grid) *mat.Dense {
	if g == nil || g.Rows() == 0 || g.Cols() == 0 {
		return nil
	}
	data := make([]float64, len(g.Data()))
	for i, v := range g.Data() {
		data[i] = float64(v)
	}
	return mat.NewDense(g.Rows(), g.Cols(), data)
}
