// Package oracle answers constant-ish-time shortest-path distance
// queries from a built well-separated pair decomposition, without
// ever running a pathfinder again.
package oracle

import (
	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/separation"
)

// Graph is the subset of grid.Graph the oracle needs: adjacency
// (distance-1 answers skip the separation lookup entirely) and the
// trivial-distance fallback for Trivial separations.
type Graph interface {
	AppendWalkableNeighbours(dst []core.Node, n core.Node) []core.Node
	TrivialDistance(a, b core.Node) core.Distance
}

// Oracle answers distance queries from a WSPD: every node maps to the
// separations whose first cluster contains it, oriented so the
// second cluster is always the "other side" the query is looking for.
type Oracle struct {
	graph  Graph
	lookup map[core.Node][]separation.Separation
}

// New builds an Oracle from a graph and the full set of separations a
// Builder produced. Each separation is stored at every node of its
// first cluster, and a side-swapped copy at every node of its second
// cluster, so a lookup by either endpoint finds an entry oriented
// with that endpoint's cluster first.
func New(graph Graph, separations []separation.Separation) *Oracle {
	lookup := make(map[core.Node][]separation.Separation)
	for _, sep := range separations {
		for _, n := range sep.FirstCluster().Nodes() {
			lookup[n] = append(lookup[n], sep)
		}
		mirrored := sep.SwitchSides()
		for _, n := range mirrored.FirstCluster().Nodes() {
			lookup[n] = append(lookup[n], mirrored)
		}
	}
	return &Oracle{graph: graph, lookup: lookup}
}

// FindDistance returns the shortest-path distance between u and v as
// recorded by the WSPD, recursing through at most two center hops.
// Correctness follows from the WSPD invariant: every recursive call
// operates on a strictly smaller separation (center-to-target or
// source-to-center), so it terminates.
func (o *Oracle) FindDistance(u, v core.Node) core.Distance {
	if u == v {
		return 0
	}

	for _, nb := range o.graph.AppendWalkableNeighbours(nil, u) {
		if nb == v {
			return 1
		}
	}

	sep, ok := o.find(u, v)
	if !ok {
		return core.Unreachable
	}

	if sep.IsTrivial() {
		return o.graph.TrivialDistance(u, v)
	}

	ca, cb, d := sep.FirstClusterCenter(), sep.SecondClusterCenter(), sep.CenterDistance()

	switch {
	case u == ca && v == cb:
		return d
	case u == ca:
		return d.Add(o.FindDistance(cb, v))
	case v == cb:
		return d.Add(o.FindDistance(u, ca))
	default:
		return o.FindDistance(u, ca).Add(d).Add(o.FindDistance(cb, v))
	}
}

// find returns the separation stored at u whose second cluster
// contains v.
func (o *Oracle) find(u, v core.Node) (separation.Separation, bool) {
	for _, sep := range o.lookup[u] {
		if sep.SecondCluster().Contains(v) {
			return sep, true
		}
	}
	return separation.Separation{}, false
}
