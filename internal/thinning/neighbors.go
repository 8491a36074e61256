package thinning

import "github.com/gogpu/skeleton/internal/bitgrid"

// Neighbor indices in clockwise order starting from north.
// Transition counting depends on this exact order.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Neighbors holds the 8 neighbours of a pixel, indexed by North..NorthWest.
type Neighbors [8]uint8

// offsets maps each neighbour index to its (row, col) displacement.
var offsets = [8][2]int{
	{-1, 0},  // N
	{-1, 1},  // NE
	{0, 1},   // E
	{1, 1},   // SE
	{1, 0},   // S
	{1, -1},  // SW
	{0, -1},  // W
	{-1, -1}, // NW
}

// Sample returns the neighbours of (row, col). Positions outside the grid
// read as background.
func Sample(g *bitgrid.Grid, row, col int) Neighbors {
	var n Neighbors
	for i, d := range offsets {
		n[i] = g.At(row+d[0], col+d[1])
	}
	return n
}

// Count returns the number of foreground neighbours.
func (n Neighbors) Count() int {
	c := 0
	for _, v := range n {
		c += int(v)
	}
	return c
}

// Transitions returns the number of 0→1 steps walking all 8 neighbours
// cyclically, i.e. including the step from NorthWest back to North.
func (n Neighbors) Transitions() int {
	t := 0
	for i := range n {
		if n[i] == 0 && n[(i+1)%8] == 1 {
			t++
		}
	}
	return t
}

// LinearTransitions returns the number of 0→1 steps over the 8 entries in
// order, without wrapping from the last entry back to the first.
func (n Neighbors) LinearTransitions() int {
	t := 0
	for i := range len(n) - 1 {
		if n[i] == 0 && n[i+1] == 1 {
			t++
		}
	}
	return t
}

// Rotate returns the sequence started k positions later, so that
// Rotate(k)[0] == n[k].
func (n Neighbors) Rotate(k int) Neighbors {
	var r Neighbors
	for i := range r {
		r[i] = n[(i+k)%8]
	}
	return r
}
