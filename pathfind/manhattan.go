package pathfind

import (
	"github.com/lixenwraith/gridoracle/constant"
	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
)

// ManhattanDijkstra is a Dijkstra forced to 4-connected expansion
// regardless of the underlying graph's own neighbour mode. The
// well-separation checker needs a pure Manhattan reference pathfinder
// even when querying an 8-connected graph, since the checker's
// classification compares against Manhattan distance specifically.
type ManhattanDijkstra struct {
	*Dijkstra
}

// NewManhattanDijkstra builds a ManhattanDijkstra over g's walkable
// nodes, ignoring g.Mode().
func NewManhattanDijkstra(g *grid.Graph) *ManhattanDijkstra {
	expand := func(dst []core.Node, n core.Node) []core.Node {
		for _, off := range constant.ManhattanOffsets {
			candidate := core.Node{Row: n.Row + off.DRow, Col: n.Col + off.DCol}
			if g.IsWalkable(candidate) {
				dst = append(dst, candidate)
			}
		}
		return dst
	}
	return &ManhattanDijkstra{Dijkstra: newDijkstra(g, expand)}
}
