package thinning

import (
	"testing"

	"github.com/gogpu/skeleton/internal/bitgrid"
)

func TestSample(t *testing.T) {
	g, err := bitgrid.Parse(`
		#.#
		.#.
		##.
	`)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		row, col int
		want     Neighbors
	}{
		//                                   N  NE E  SE S  SW W  NW
		{"center", 1, 1, Neighbors{0, 1, 0, 0, 1, 1, 0, 1}},
		{"top-left corner", 0, 0, Neighbors{0, 0, 0, 1, 0, 0, 0, 0}},
		{"bottom-right corner", 2, 2, Neighbors{0, 0, 0, 0, 0, 0, 1, 1}},
		{"outside grid", -2, -2, Neighbors{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sample(g, tt.row, tt.col); got != tt.want {
				t.Errorf("Sample(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestNeighborsCounting(t *testing.T) {
	tests := []struct {
		name        string
		n           Neighbors
		count       int
		transitions int
		linear      int
	}{
		{"empty", Neighbors{}, 0, 0, 0},
		{"full", Neighbors{1, 1, 1, 1, 1, 1, 1, 1}, 8, 0, 0},
		{"only north", Neighbors{1, 0, 0, 0, 0, 0, 0, 0}, 1, 1, 0},
		{"only northwest", Neighbors{0, 0, 0, 0, 0, 0, 0, 1}, 1, 1, 1},
		{"horizontal line", Neighbors{0, 0, 1, 0, 0, 0, 1, 0}, 2, 2, 2},
		{"plus", Neighbors{1, 0, 1, 0, 1, 0, 1, 0}, 4, 4, 3},
		{"run wrapping north", Neighbors{1, 1, 0, 0, 0, 0, 0, 1}, 3, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.n.Count(); got != tt.count {
				t.Errorf("Count() = %d, want %d", got, tt.count)
			}
			if got := tt.n.Transitions(); got != tt.transitions {
				t.Errorf("Transitions() = %d, want %d", got, tt.transitions)
			}
			if got := tt.n.LinearTransitions(); got != tt.linear {
				t.Errorf("LinearTransitions() = %d, want %d", got, tt.linear)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	n := Neighbors{1, 2, 3, 4, 5, 6, 7, 8}
	if got, want := n.Rotate(1), (Neighbors{2, 3, 4, 5, 6, 7, 8, 1}); got != want {
		t.Errorf("Rotate(1) = %v, want %v", got, want)
	}
	if got, want := n.Rotate(3), (Neighbors{4, 5, 6, 7, 8, 1, 2, 3}); got != want {
		t.Errorf("Rotate(3) = %v, want %v", got, want)
	}
	if got := n.Rotate(8); got != n {
		t.Errorf("Rotate(8) = %v, want identity", got)
	}
}

func TestIsRemovable(t *testing.T) {
	tests := []struct {
		name string
		n    Neighbors
		want bool
	}{
		//                                             N  NE E  SE S  SW W  NW
		{"isolated pixel", Neighbors{0, 0, 0, 0, 0, 0, 0, 0}, false},
		{"line endpoint", Neighbors{0, 0, 1, 0, 0, 0, 0, 0}, false},
		{"line interior", Neighbors{0, 0, 1, 0, 0, 0, 1, 0}, false},
		{"diagonal interior", Neighbors{0, 1, 0, 0, 0, 1, 0, 0}, false},
		{"L bend", Neighbors{1, 0, 0, 0, 0, 0, 1, 0}, false},
		{"blob interior", Neighbors{1, 1, 1, 1, 1, 1, 1, 1}, false},
		{"seven neighbours", Neighbors{1, 1, 1, 1, 1, 1, 1, 0}, false},
		{"top edge of block", Neighbors{0, 0, 1, 1, 1, 1, 1, 0}, true},
		{"north-west corner of block", Neighbors{0, 0, 1, 1, 1, 0, 0, 0}, true},
		{"north east west run", Neighbors{1, 1, 1, 0, 0, 0, 1, 1}, false},
		{"north east south run", Neighbors{1, 1, 1, 1, 1, 0, 0, 0}, false},
		{"junction of three", Neighbors{1, 0, 1, 0, 0, 0, 1, 0}, false},
		{"bottom edge of block", Neighbors{1, 1, 1, 0, 0, 0, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRemovable(tt.n); got != tt.want {
				t.Errorf("IsRemovable(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
