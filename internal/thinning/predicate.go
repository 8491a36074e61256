package thinning

// Bounds on the number of foreground neighbours of a removable pixel.
// Fewer than 2 means an endpoint or isolated pixel; more than 6 means an
// interior pixel whose removal would punch a hole.
const (
	minNeighbors = 2
	maxNeighbors = 6
)

// IsRemovable reports whether a foreground pixel with neighbours n can be
// deleted without changing the local connectivity of the foreground
// (Hilditch's conditions).
func IsRemovable(n Neighbors) bool {
	b := n.Count()
	if b < minNeighbors || b > maxNeighbors {
		return false
	}
	if n.Transitions() != 1 {
		return false
	}
	if n[North]*n[East]*n[West] != 0 && n.Rotate(1).LinearTransitions() == 1 {
		return false
	}
	if n[North]*n[East]*n[South] != 0 && n.Rotate(3).LinearTransitions() == 1 {
		return false
	}
	return true
}
