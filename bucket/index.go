package bucket

import (
	"sort"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/selection"
)

// Index is the arena of computed selections plus, per node, the
// sorted list of selection indices whose left (respectively right)
// side contains that node. Selections are referenced by integer index
// everywhere downstream, sidestepping the cyclic ownership a bucket,
// a per-node list and a selection object would otherwise have to
// share.
type Index struct {
	Selections []selection.NodeSelection
	left       map[core.Node][]int
	right      map[core.Node][]int
}

// BuildIndex indexes a slice of selections (selections[i].Index must
// equal i) into per-node left/right lists.
func BuildIndex(selections []selection.NodeSelection) *Index {
	idx := &Index{
		Selections: selections,
		left:       make(map[core.Node][]int),
		right:      make(map[core.Node][]int),
	}
	for _, sel := range selections {
		for _, n := range sel.Left {
			idx.left[n] = append(idx.left[n], sel.Index)
		}
		for _, n := range sel.Right {
			idx.right[n] = append(idx.right[n], sel.Index)
		}
	}
	for n := range idx.left {
		sort.Ints(idx.left[n])
	}
	for n := range idx.right {
		sort.Ints(idx.right[n])
	}
	return idx
}

// LeftSelections returns the sorted selection indices whose left side
// contains n.
func (idx *Index) LeftSelections(n core.Node) []int { return idx.left[n] }

// RightSelections returns the sorted selection indices whose right
// side contains n.
func (idx *Index) RightSelections(n core.Node) []int { return idx.right[n] }

// SetLeftSelections replaces n's left-selection list.
func (idx *Index) SetLeftSelections(n core.Node, indices []int) { idx.left[n] = indices }

// SetRightSelections replaces n's right-selection list.
func (idx *Index) SetRightSelections(n core.Node, indices []int) { idx.right[n] = indices }

// Nodes returns every node with at least one left or right selection.
func (idx *Index) Nodes() []core.Node {
	seen := make(map[core.Node]struct{})
	for n := range idx.left {
		seen[n] = struct{}{}
	}
	for n := range idx.right {
		seen[n] = struct{}{}
	}
	nodes := make([]core.Node, 0, len(seen))
	for n := range seen {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].Row != nodes[j].Row {
			return nodes[i].Row < nodes[j].Row
		}
		return nodes[i].Col < nodes[j].Col
	})
	return nodes
}

func (idx *Index) rightSetOf(selIdx int) []core.Node { return idx.Selections[selIdx].Right }
func (idx *Index) leftSetOf(selIdx int) []core.Node  { return idx.Selections[selIdx].Left }
