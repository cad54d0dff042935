package selection

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/gridoracle/core"
)

// AdjacencyGraph tells FullCalculator which ordered pairs are already
// answered trivially by adjacency (distance 1) and so need no
// selection of their own.
type AdjacencyGraph interface {
	NeighbourGraph
	IsWalkable(n core.Node) bool
}

// FullCalculator repeats Calculator.Compute, picking uncovered ordered
// pairs uniformly at random, until every ordered pair of distinct,
// non-adjacent walkable nodes is covered by at least one selection.
type FullCalculator struct {
	calc  *Calculator
	graph AdjacencyGraph
	rng   *rand.Rand
}

// NewFullCalculator builds a FullCalculator. rng may be nil, in which
// case a new source seeded from a fixed value is used — callers that
// need varied runs should pass their own *rand.Rand.
func NewFullCalculator(path Pathfinder, graph AdjacencyGraph, rng *rand.Rand) *FullCalculator {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &FullCalculator{
		calc:  NewCalculator(path, graph),
		graph: graph,
		rng:   rng,
	}
}

// ComputeAll runs the full selection pipeline and returns every
// selection found.
func (f *FullCalculator) ComputeAll() []NodeSelection {
	nodes := f.walkableNodes()
	uncovered := f.uncoveredPairs(nodes)

	var selections []NodeSelection
	for len(uncovered) > 0 {
		pair := f.pickRandom(uncovered)

		selection, ok := f.calc.Compute(pair.u, pair.v)
		if !ok {
			delete(uncovered, pair)
			continue
		}
		selections = append(selections, selection)

		for p := range uncovered {
			if selection.CanAnswer(p.u, p.v) {
				delete(uncovered, p)
			}
		}
	}
	return selections
}

type orderedPair struct {
	u, v core.Node
}

func (f *FullCalculator) walkableNodes() []core.Node {
	width, height := f.graph.Width(), f.graph.Height()
	nodes := make([]core.Node, 0, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			n := core.Node{Row: r, Col: c}
			if f.graph.IsWalkable(n) {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

func (f *FullCalculator) uncoveredPairs(nodes []core.Node) map[orderedPair]struct{} {
	uncovered := make(map[orderedPair]struct{})
	var neighbourBuf []core.Node
	for _, u := range nodes {
		neighbourBuf = f.graph.AppendWalkableNeighbours(neighbourBuf[:0], u)
		adjacent := make(map[core.Node]struct{}, len(neighbourBuf))
		for _, nb := range neighbourBuf {
			adjacent[nb] = struct{}{}
		}
		for _, v := range nodes {
			if u == v {
				continue
			}
			if _, isAdjacent := adjacent[v]; isAdjacent {
				continue
			}
			uncovered[orderedPair{u, v}] = struct{}{}
		}
	}
	return uncovered
}

// pickRandom materializes uncovered into a Morton-ordered slice before
// indexing with rng.Intn: Go's map iteration order is randomized per
// process independent of rng's seed, so indexing straight off a range
// over the map would make a seeded rng pick a different pair on every
// run despite producing the same sequence of indices.
func (f *FullCalculator) pickRandom(uncovered map[orderedPair]struct{}) orderedPair {
	ordered := make([]orderedPair, 0, len(uncovered))
	for p := range uncovered {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.u != b.u {
			return core.LessMorton(a.u.ToCorner(), b.u.ToCorner())
		}
		return core.LessMorton(a.v.ToCorner(), b.v.ToCorner())
	})
	return ordered[f.rng.Intn(len(ordered))]
}
