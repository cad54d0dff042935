package selection

import (
	"github.com/lixenwraith/gridoracle/core"
)

// Pathfinder is the distance/route source a Calculator grows
// selections against. pathfind.Dijkstra, pathfind.ManhattanDijkstra,
// pathfind.AStar and pathfind.CachingDijkstra all satisfy it.
type Pathfinder interface {
	FindDistance(a, b core.Node) core.Distance
	FindRoute(a, b core.Node) (core.Path, bool)
}

// NeighbourGraph supplies the connectivity a Calculator's frontier
// expansion walks. grid.Graph satisfies it.
type NeighbourGraph interface {
	AppendWalkableNeighbours(dst []core.Node, n core.Node) []core.Node
	Width() int
	Height() int
	InBounds(n core.Node) bool
	Index(n core.Node) int
}

type nodeDist struct {
	node core.Node
	dist core.Distance
}

// Calculator computes one NodeSelection at a time from a pair of
// starting nodes. A single instance is reused across many calls: its
// settled bitvectors are scratch state, cleared after each Compute
// call via an undo list rather than a full clear.
type Calculator struct {
	path  Pathfinder
	graph NeighbourGraph

	leftSettled, rightSettled []bool
	touched                   []core.Node

	leftSelection, rightSelection []nodeDist
	neighbour                     []core.Node

	nextIndex int
}

// NewCalculator builds a Calculator over a pathfinder and the graph it
// walks neighbours against.
func NewCalculator(path Pathfinder, graph NeighbourGraph) *Calculator {
	n := graph.Width() * graph.Height()
	return &Calculator{
		path:         path,
		graph:        graph,
		leftSettled:  make([]bool, n),
		rightSettled: make([]bool, n),
	}
}

// Compute builds one NodeSelection whose left side grows from
// leftStart and right side from rightStart, both converging on the
// middle node of the shortest path between them. It returns false if
// no path connects the two starting nodes.
func (c *Calculator) Compute(leftStart, rightStart core.Node) (NodeSelection, bool) {
	center, ok := c.calculateCenter(leftStart, rightStart)
	if !ok {
		return NodeSelection{}, false
	}

	leftCandidates := []core.Node{leftStart}
	c.leftSelection = append(c.leftSelection[:0], nodeDist{leftStart, c.path.FindDistance(leftStart, center)})

	rightCandidates := []core.Node{rightStart}
	c.rightSelection = append(c.rightSelection[:0], nodeDist{rightStart, c.path.FindDistance(rightStart, center)})

	for len(leftCandidates) > 0 || len(rightCandidates) > 0 {
		if len(leftCandidates) > 0 {
			current := leftCandidates[0]
			leftCandidates = leftCandidates[1:]

			if dist, ok := c.checkLeftAffiliation(current, center); ok {
				c.leftSelection = append(c.leftSelection, nodeDist{current, dist})

				c.neighbour = c.graph.AppendWalkableNeighbours(c.neighbour[:0], current)
				for _, nb := range c.neighbour {
					if !c.isLeftSettled(nb) {
						c.settleLeft(nb)
						c.touched = append(c.touched, nb)
						leftCandidates = append(leftCandidates, nb)
					}
				}
			}
		}

		if len(rightCandidates) > 0 {
			current := rightCandidates[0]
			rightCandidates = rightCandidates[1:]

			if dist, ok := c.checkRightAffiliation(current, center); ok {
				c.rightSelection = append(c.rightSelection, nodeDist{current, dist})

				c.neighbour = c.graph.AppendWalkableNeighbours(c.neighbour[:0], current)
				for _, nb := range c.neighbour {
					if !c.isRightSettled(nb) {
						c.settleRight(nb)
						c.touched = append(c.touched, nb)
						rightCandidates = append(rightCandidates, nb)
					}
				}
			}
		}
	}

	left := make([]core.Node, len(c.leftSelection))
	for i, nd := range c.leftSelection {
		left[i] = nd.node
	}
	right := make([]core.Node, len(c.rightSelection))
	for i, nd := range c.rightSelection {
		right[i] = nd.node
	}
	sortNodes(left)
	sortNodes(right)

	selection := NodeSelection{Left: left, Right: right, Center: center, Index: c.nextIndex}
	c.nextIndex++

	c.cleanup()
	return selection, true
}

// checkLeftAffiliation reports whether node belongs on the left side:
// its distance to center must combine additively with every
// already-accepted right-side node's distance to center to equal the
// real node-to-node distance. Saturating Add makes the UNREACHABLE
// cases self-consistent: if either leg is UNREACHABLE, the combined
// distance is UNREACHABLE too, which only matches when the real
// distance is also UNREACHABLE.
func (c *Calculator) checkLeftAffiliation(node, center core.Node) (core.Distance, bool) {
	centerDist := c.path.FindDistance(node, center)
	for _, rd := range c.rightSelection {
		actual := c.path.FindDistance(node, rd.node)
		if centerDist.Add(rd.dist) != actual {
			return 0, false
		}
	}
	return centerDist, true
}

// checkRightAffiliation is checkLeftAffiliation's mirror for the right
// side.
func (c *Calculator) checkRightAffiliation(node, center core.Node) (core.Distance, bool) {
	centerDist := c.path.FindDistance(node, center)
	for _, ld := range c.leftSelection {
		actual := c.path.FindDistance(node, ld.node)
		if centerDist.Add(ld.dist) != actual {
			return 0, false
		}
	}
	return centerDist, true
}

func (c *Calculator) calculateCenter(left, right core.Node) (core.Node, bool) {
	path, ok := c.path.FindRoute(left, right)
	if !ok {
		return core.Node{}, false
	}
	return path.MiddleNode(), true
}

func (c *Calculator) cleanup() {
	for _, n := range c.touched {
		if idx, ok := c.indexOf(n); ok {
			c.leftSettled[idx] = false
			c.rightSettled[idx] = false
		}
	}
	c.touched = c.touched[:0]
	c.leftSelection = c.leftSelection[:0]
	c.rightSelection = c.rightSelection[:0]
}

func (c *Calculator) indexOf(n core.Node) (int, bool) {
	if !c.graph.InBounds(n) {
		return 0, false
	}
	return c.graph.Index(n), true
}

func (c *Calculator) settleLeft(n core.Node) {
	if idx, ok := c.indexOf(n); ok {
		c.leftSettled[idx] = true
	}
}

func (c *Calculator) settleRight(n core.Node) {
	if idx, ok := c.indexOf(n); ok {
		c.rightSettled[idx] = true
	}
}

func (c *Calculator) isLeftSettled(n core.Node) bool {
	idx, ok := c.indexOf(n)
	if !ok {
		return true
	}
	return c.leftSettled[idx]
}

func (c *Calculator) isRightSettled(n core.Node) bool {
	idx, ok := c.indexOf(n)
	if !ok {
		return true
	}
	return c.rightSettled[idx]
}
