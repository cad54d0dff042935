package pathfind

import (
	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
)

// CachingDijkstra precomputes every pairwise distance once at
// construction and answers FindDistance/FindRoute from a dense
// in-memory matrix thereafter. It trades O(n^2) memory (n = number of
// walkable nodes) for O(1) distance lookups, the shape of query load
// the separation builder produces: the same pair of cells is checked
// repeatedly while a WSPD recursion narrows in on its split point.
type CachingDijkstra struct {
	nodeIndex map[core.Node]int
	indexNode []core.Node
	matrix    []core.Distance // row-major n*n
	before    [][]int         // before[s][t]: predecessor index of t on the shortest path from s, or noIndex
}

// NewCachingDijkstra builds the cache by running one Dijkstra per
// walkable node. Construction cost is O(n*(n+m)log n); callers should
// build one CachingDijkstra per grid and reuse it, not rebuild per
// query.
func NewCachingDijkstra(g *grid.Graph) *CachingDijkstra {
	nodes := g.Nodes()
	n := len(nodes)

	c := &CachingDijkstra{
		nodeIndex: make(map[core.Node]int, n),
		indexNode: nodes,
		matrix:    make([]core.Distance, n*n),
		before:    make([][]int, n),
	}
	for i, node := range nodes {
		c.nodeIndex[node] = i
	}

	d := NewDijkstra(g)
	for i := range nodes {
		d.run(i, noIndex)
		row := c.matrix[i*n : i*n+n]
		before := make([]int, n)
		for j := range nodes {
			row[j] = d.dist[j]
			before[j] = d.before[j]
		}
		c.before[i] = before
	}
	return c
}

// FindDistance returns the cached shortest-path distance, or
// core.Unreachable if either node is not part of the grid or no path
// connects them.
func (c *CachingDijkstra) FindDistance(source, target core.Node) core.Distance {
	srcIdx, ok := c.nodeIndex[source]
	if !ok {
		return core.Unreachable
	}
	dstIdx, ok := c.nodeIndex[target]
	if !ok {
		return core.Unreachable
	}
	n := len(c.indexNode)
	return c.matrix[srcIdx*n+dstIdx]
}

// FindRoute reconstructs the cached shortest path, and reports false
// if no such path exists.
func (c *CachingDijkstra) FindRoute(source, target core.Node) (core.Path, bool) {
	srcIdx, ok := c.nodeIndex[source]
	if !ok {
		return core.Path{}, false
	}
	dstIdx, ok := c.nodeIndex[target]
	if !ok {
		return core.Path{}, false
	}
	n := len(c.indexNode)
	if c.matrix[srcIdx*n+dstIdx] == core.Unreachable {
		return core.Path{}, false
	}

	before := c.before[srcIdx]
	nodes := []core.Node{c.indexNode[dstIdx]}
	for cur := dstIdx; cur != srcIdx; {
		cur = before[cur]
		nodes = append(nodes, c.indexNode[cur])
	}
	path := core.NewPath(nodes)
	return path.Reverse(), true
}
