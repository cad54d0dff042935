// Package grid holds the walkable grid graph: a dense bitvector of
// walkable cells plus the neighbour calculators pathfinders relax
// against.
package grid

import (
	"fmt"

	"github.com/lixenwraith/gridoracle/core"
)

// Graph is a dense rectangular grid of walkable/blocked cells. The
// walkable bits are flattened into a single []bool in row-major order,
// the same layout the teacher's spatial grid uses for its occupancy
// mask.
type Graph struct {
	width, height int
	walkable      []bool
	mode          NeighbourMode
}

// New builds a Graph from a row-major walkable matrix. rows must all
// share the same length; New panics otherwise since a ragged map is a
// construction bug, not a runtime condition a caller can recover from.
func New(rows [][]bool, mode NeighbourMode) *Graph {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	flat := make([]bool, width*height)
	for r, row := range rows {
		if len(row) != width {
			panic(fmt.Sprintf("grid: row %d has width %d, want %d", r, len(row), width))
		}
		copy(flat[r*width:(r+1)*width], row)
	}

	return &Graph{width: width, height: height, walkable: flat, mode: mode}
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Mode returns the neighbour connectivity the graph was built with.
func (g *Graph) Mode() NeighbourMode { return g.mode }

// InBounds reports whether a node's coordinates fall within the grid.
func (g *Graph) InBounds(n core.Node) bool {
	return n.Row >= 0 && n.Row < g.height && n.Col >= 0 && n.Col < g.width
}

// Index maps an in-bounds node to its offset in the flat walkable
// slice. Callers must check InBounds first.
func (g *Graph) Index(n core.Node) int {
	return n.Row*g.width + n.Col
}

// IsWalkable reports whether a node is in bounds and not blocked.
func (g *Graph) IsWalkable(n core.Node) bool {
	return g.InBounds(n) && g.walkable[g.Index(n)]
}

// WalkableNeighbours returns the walkable, in-bounds neighbours of n in
// the neighbour mode's fixed emission order. The returned slice is
// freshly allocated per call; hot callers (Dijkstra's inner loop) should
// prefer AppendWalkableNeighbours to avoid per-node allocation.
func (g *Graph) WalkableNeighbours(n core.Node) []core.Node {
	return g.AppendWalkableNeighbours(nil, n)
}

// AppendWalkableNeighbours appends n's walkable neighbours to dst and
// returns the extended slice, letting callers reuse a scratch buffer
// across nodes.
func (g *Graph) AppendWalkableNeighbours(dst []core.Node, n core.Node) []core.Node {
	for _, off := range g.mode.Offsets() {
		candidate := core.Node{Row: n.Row + off.DRow, Col: n.Col + off.DCol}
		if g.IsWalkable(candidate) {
			dst = append(dst, candidate)
		}
	}
	return dst
}

// Nodes returns every walkable node in the grid, in row-major order.
func (g *Graph) Nodes() []core.Node {
	nodes := make([]core.Node, 0, len(g.walkable))
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			n := core.Node{Row: r, Col: c}
			if g.walkable[g.Index(n)] {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// HasWalkableNode reports whether any node within cell is walkable.
// The WSPD builder uses this to prune empty cells (produced, for
// instance, by splitting an odd-width rectangle) before recursing
// further into them.
func (g *Graph) HasWalkableNode(cell core.GridCell) bool {
	size := cell.Size()
	for i := int64(0); i < size; i++ {
		if g.IsWalkable(cell.At(i)) {
			return true
		}
	}
	return false
}

// Bounds returns the cell covering the whole grid's corner lattice,
// the root cell a WSPD build recurses from.
func (g *Graph) Bounds() core.GridCell {
	return core.NewGridCell(
		core.Corner{Row: 0, Col: 0},
		core.Corner{Row: int64(g.height - 1), Col: int64(g.width - 1)},
	)
}

// TrivialDistance returns the Manhattan distance between two nodes
// under 4-connected connectivity, as if no obstacles existed: the
// lower bound every real shortest path must respect, used both as the
// A* heuristic and as the well-separation checker's baseline for
// classifying a pair as Trivial. For 8-connected grids this lower
// bound is undefined (diagonal moves make the obstacle-free distance
// dependent on neighbour order in a way no single closed form
// captures), so it returns core.Unreachable rather than a substituted
// Chebyshev value.
func (g *Graph) TrivialDistance(a, b core.Node) core.Distance {
	if g.mode == AllSurrounding {
		return core.Unreachable
	}
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	return core.Distance(dr + dc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
