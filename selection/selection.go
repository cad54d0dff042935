// Package selection computes node selections: center-bounded sets of
// nodes on either side of a shortest path's middle node, used to build
// the bucket index the oracle ultimately queries.
package selection

import (
	"sort"

	"github.com/lixenwraith/gridoracle/core"
)

// lessNode orders nodes by Morton code rather than row-major, so nodes
// that are close on the grid land close together in the sorted slice —
// any total order works for the binary search contains() does, but this
// one gives the sorted Left/Right sets spatial locality for free.
func lessNode(a, b core.Node) bool {
	return core.LessMorton(a.ToCorner(), b.ToCorner())
}

// NodeSelection is a (left, right, center) triple: every node in Left
// and every node in Right satisfy the separation center property
// through Center. Left and Right are each sorted in Morton order (see
// lessNode).
// Equality and ordering between selections is by Index alone — the
// node sets exist only to answer CanAnswer queries, not to compare
// selections to each other.
type NodeSelection struct {
	Left, Right []core.Node
	Center      core.Node
	Index       int
}

// CanAnswer reports whether this selection covers the ordered pair
// (u, v): u on one side and v on the other.
func (s NodeSelection) CanAnswer(u, v core.Node) bool {
	if contains(s.Left, u) && contains(s.Right, v) {
		return true
	}
	return contains(s.Right, u) && contains(s.Left, v)
}

func contains(sorted []core.Node, n core.Node) bool {
	i := sort.Search(len(sorted), func(i int) bool { return !lessNode(sorted[i], n) })
	return i < len(sorted) && sorted[i] == n
}

func sortNodes(nodes []core.Node) {
	sort.Slice(nodes, func(i, j int) bool { return lessNode(nodes[i], nodes[j]) })
}
