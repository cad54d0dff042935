// Package separation computes and represents well-separated pairs of
// grid cells: the building block the well-separated pair decomposition
// recurses over, and the unit the distance oracle ultimately answers
// queries from.
package separation

import (
	"fmt"

	"github.com/lixenwraith/gridoracle/core"
)

// Separation is either Trivial — every node in First is the same
// trivial distance from every node in Second as the real shortest
// path, so no center lookup is needed — or Complex, meaning every
// shortest path between the two clusters routes through a fixed pair
// of center nodes at a fixed center-to-center distance.
type Separation struct {
	first, second             core.GridCell
	firstCenter, secondCenter core.Node
	centerDistance            core.Distance
	complex                   bool
}

// Trivial builds a trivial separation between two cells.
func Trivial(first, second core.GridCell) Separation {
	return Separation{first: first, second: second}
}

// Complex builds a complex separation with the given center pair and
// center-to-center distance.
func Complex(first, second core.GridCell, firstCenter, secondCenter core.Node, centerDistance core.Distance) Separation {
	return Separation{
		first:          first,
		second:         second,
		firstCenter:    firstCenter,
		secondCenter:   secondCenter,
		centerDistance: centerDistance,
		complex:        true,
	}
}

// IsTrivial reports whether s is a trivial separation.
func (s Separation) IsTrivial() bool { return !s.complex }

// IsComplex reports whether s is a complex separation.
func (s Separation) IsComplex() bool { return s.complex }

// FirstCluster returns the first cell of the pair.
func (s Separation) FirstCluster() core.GridCell { return s.first }

// SecondCluster returns the second cell of the pair.
func (s Separation) SecondCluster() core.GridCell { return s.second }

// FirstClusterCenter returns the center node of the first cluster.
// Only meaningful when IsComplex is true.
func (s Separation) FirstClusterCenter() core.Node { return s.firstCenter }

// SecondClusterCenter returns the center node of the second cluster.
// Only meaningful when IsComplex is true.
func (s Separation) SecondClusterCenter() core.Node { return s.secondCenter }

// CenterDistance returns the fixed center-to-center distance. Only
// meaningful when IsComplex is true.
func (s Separation) CenterDistance() core.Distance { return s.centerDistance }

// Weight returns the number of ordered node pairs this separation
// answers for in its own orientation: the product of the two cluster
// sizes.
func (s Separation) Weight() int64 {
	return s.first.Size() * s.second.Size()
}

// CanAnswer reports whether this separation covers the ordered pair
// (from, to): from must fall in one cluster and to in the other.
func (s Separation) CanAnswer(from, to core.Node) bool {
	if s.first.Contains(from) && s.second.Contains(to) {
		return true
	}
	return s.first.Contains(to) && s.second.Contains(from)
}

// SwitchSides returns a copy of s with its two clusters (and centers)
// swapped, used by the oracle to store each separation oriented with
// the queried node's cluster first.
func (s Separation) SwitchSides() Separation {
	return Separation{
		first:          s.second,
		second:         s.first,
		firstCenter:    s.secondCenter,
		secondCenter:   s.firstCenter,
		centerDistance: s.centerDistance,
		complex:        s.complex,
	}
}

// IsSubsetOf reports whether s covers a subset of other's node pairs:
// both of s's clusters fall within other's corresponding clusters.
func (s Separation) IsSubsetOf(other Separation) bool {
	return s.first.IsSubsetOf(other.first) && s.second.IsSubsetOf(other.second)
}

// IsSupersetOf reports whether s covers a superset of other's node
// pairs.
func (s Separation) IsSupersetOf(other Separation) bool {
	return other.IsSubsetOf(s)
}

// String renders the separation for logging and test failures.
func (s Separation) String() string {
	if s.IsTrivial() {
		return fmt.Sprintf("trivial(%v, %v)", s.first, s.second)
	}
	return fmt.Sprintf("complex(%v, %v, center=%v/%v, d=%d)", s.first, s.second, s.firstCenter, s.secondCenter, s.centerDistance)
}
