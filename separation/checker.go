package separation

import (
	"github.com/lixenwraith/gridoracle/core"
)

// Pathfinder is the distance source a Checker verifies separations
// against. Any of pathfind.Dijkstra, pathfind.ManhattanDijkstra,
// pathfind.AStar or pathfind.CachingDijkstra satisfies it.
type Pathfinder interface {
	FindDistance(a, b core.Node) core.Distance
}

// TrivialDistancer supplies the lower-bound distance a Checker
// compares real distances against to classify a pair as Trivial.
// grid.Graph satisfies this.
type TrivialDistancer interface {
	TrivialDistance(a, b core.Node) core.Distance
}

// Checker verifies the well-separation center property between two
// grid cells: whether the two cells are trivially separated (every
// pair's real distance matches the lower bound), or complex-separated
// through a fixed pair of center nodes, or not well-separated at all.
type Checker struct {
	path    Pathfinder
	trivial TrivialDistancer
}

// NewChecker builds a Checker over a pathfinder and its graph's
// trivial-distance source.
func NewChecker(path Pathfinder, trivial TrivialDistancer) *Checker {
	return &Checker{path: path, trivial: trivial}
}

// Check verifies whether first and second are well-separated. It
// returns false if one cell is a subset or superset of the other
// (overlapping cells are never separated), or if no fixed center pair
// explains every shortest path between the clusters.
func (c *Checker) Check(first, second core.GridCell) (Separation, bool) {
	if first.IsSubsetOf(second) || first.IsSupersetOf(second) {
		return Separation{}, false
	}

	firstCenter, secondCenter, centerDistance, isTrivial := c.findCenterCandidates(first, second)

	if isTrivial {
		return Trivial(first, second), true
	}

	firstNodes := first.Nodes()
	secondNodes := second.Nodes()

	firstToCenter := make([]core.Distance, len(firstNodes))
	for i, n := range firstNodes {
		firstToCenter[i] = c.path.FindDistance(firstCenter, n)
	}
	secondToCenter := make([]core.Distance, len(secondNodes))
	for j, n := range secondNodes {
		secondToCenter[j] = c.path.FindDistance(secondCenter, n)
	}

	for i, source := range firstNodes {
		for j, target := range secondNodes {
			optimal := c.path.FindDistance(source, target)

			if firstToCenter[i] == core.Unreachable ||
				secondToCenter[j] == core.Unreachable ||
				centerDistance == core.Unreachable {
				if optimal == core.Unreachable {
					continue
				}
				return Separation{}, false
			}

			overCenter := firstToCenter[i].Add(centerDistance).Add(secondToCenter[j])
			if optimal != overCenter {
				return Separation{}, false
			}
		}
	}

	return Complex(first, second, firstCenter, secondCenter, centerDistance), true
}

// findCenterCandidates finds the closest node pair between the two
// cells and reports whether every pair in the cells is already
// trivially separated (real distance equals the lower bound
// everywhere, so no center pair is needed at all).
func (c *Checker) findCenterCandidates(first, second core.GridCell) (firstCenter, secondCenter core.Node, minDistance core.Distance, isTrivial bool) {
	minDistance = core.Unreachable
	isTrivial = true

	firstSize := first.Size()
	secondSize := second.Size()
	for i := int64(0); i < firstSize; i++ {
		from := first.At(i)
		for j := int64(0); j < secondSize; j++ {
			to := second.At(j)

			distance := c.path.FindDistance(from, to)
			trivial := c.trivial.TrivialDistance(from, to)
			if trivial != distance {
				isTrivial = false
			}

			if distance < minDistance {
				minDistance = distance
				firstCenter = from
				secondCenter = to
			}
		}
	}
	return firstCenter, secondCenter, minDistance, isTrivial
}
