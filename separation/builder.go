package separation

import "github.com/lixenwraith/gridoracle/core"

// CellGraph is the subset of grid.Graph the builder needs: the root
// cell to recurse from, and a walkability test used to prune empty
// sub-cells produced by splitting an odd-sized rectangle.
type CellGraph interface {
	Bounds() core.GridCell
	HasWalkableNode(core.GridCell) bool
}

// Builder runs the recursive well-separated pair decomposition over a
// grid, using a Checker to test candidate cell pairs.
type Builder struct {
	checker *Checker
	graph   CellGraph
}

// NewBuilder builds a Builder over a checker and the graph it checks
// against.
func NewBuilder(checker *Checker, graph CellGraph) *Builder {
	return &Builder{checker: checker, graph: graph}
}

// Build runs the full decomposition, starting from the graph's
// bounding cell paired with itself, and returns every separation
// found. The result is a complete cover: for every ordered pair (u, v)
// of distinct walkable nodes, exactly one separation has u in its
// first cluster and v in its second.
func (b *Builder) Build() []Separation {
	root := b.graph.Bounds()
	return b.calculate(root, root)
}

func (b *Builder) calculate(first, second core.GridCell) []Separation {
	if first == second && first.Size() == 1 {
		return nil
	}

	if !b.graph.HasWalkableNode(first) || !b.graph.HasWalkableNode(second) {
		return nil
	}

	if sep, ok := b.checker.Check(first, second); ok {
		return []Separation{sep}
	}

	if first.Size() == 1 && second.Size() == 1 {
		return []Separation{Complex(first, second, first.At(0), second.At(0), core.Unreachable)}
	}

	if first.Size() < second.Size() {
		return b.calculate(second, first)
	}

	quads := first.Split()
	var out []Separation
	for _, quad := range quads {
		out = append(out, b.calculate(quad, second)...)
	}
	return out
}
