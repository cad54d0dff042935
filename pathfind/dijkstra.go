// Package pathfind implements the single-source shortest-path engines
// the separation and selection layers query against: a general
// Dijkstra, a 4-connected-only variant, A* with the grid's trivial
// distance as heuristic, a dense all-pairs cache, and a multi-target
// variant that stops once every target has settled.
package pathfind

import (
	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
)

const noIndex = -1

// Dijkstra finds shortest paths over a grid's own neighbour mode. A
// single instance is reused across many queries: its distance/settled/
// predecessor arrays are scratch state, lazily reset between runs so a
// query against a small, localized region does not pay the cost of
// clearing the whole grid.
//
// A Dijkstra is not safe for concurrent use; callers that want
// parallel queries should give each goroutine its own instance (see
// the worker pool, which does exactly that).
type Dijkstra struct {
	g *grid.Graph

	nodeIndex map[core.Node]int
	indexNode []core.Node

	dist    []core.Distance
	settled []bool
	before  []int
	touched []int

	lastSource  int
	lastTarget  int // noIndex when the last run had no early-exit target
	lastSettled bool

	pq        *priorityQueue
	neighbour []core.Node // scratch buffer for expand
	expand    func(dst []core.Node, n core.Node) []core.Node
	astar     bool
	seq       int
}

// NewDijkstra builds a Dijkstra over g's own neighbour mode.
func NewDijkstra(g *grid.Graph) *Dijkstra {
	return newDijkstra(g, g.AppendWalkableNeighbours)
}

func newDijkstra(g *grid.Graph, expand func(dst []core.Node, n core.Node) []core.Node) *Dijkstra {
	nodes := g.Nodes()
	d := &Dijkstra{
		g:          g,
		nodeIndex:  make(map[core.Node]int, len(nodes)),
		indexNode:  nodes,
		dist:       make([]core.Distance, len(nodes)),
		settled:    make([]bool, len(nodes)),
		before:     make([]int, len(nodes)),
		touched:    make([]int, 0, len(nodes)),
		lastSource: noIndex,
		lastTarget: noIndex,
		pq:         newPriorityQueue(),
		expand:     expand,
	}
	for i, n := range nodes {
		d.nodeIndex[n] = i
	}
	for i := range d.dist {
		d.dist[i] = core.Unreachable
		d.before[i] = noIndex
	}
	return d
}

func (d *Dijkstra) indexOf(n core.Node) (int, bool) {
	i, ok := d.nodeIndex[n]
	return i, ok
}

func (d *Dijkstra) resetTouched() {
	for _, i := range d.touched {
		d.dist[i] = core.Unreachable
		d.settled[i] = false
		d.before[i] = noIndex
	}
	d.touched = d.touched[:0]
}

// heuristic returns the A* lower-bound estimate from nbIdx to
// targetIdx. Plain Dijkstra always returns 0, reducing the priority
// order to pure path cost. TrivialDistance is undefined for
// 8-connected grids (see grid.Graph.TrivialDistance); when it reports
// core.Unreachable, heuristic falls back to 0, degrading A* to plain
// Dijkstra ordering rather than folding a sentinel into the priority.
func (d *Dijkstra) heuristic(nbIdx, targetIdx int) core.Distance {
	if !d.astar || targetIdx == noIndex {
		return 0
	}
	h := d.g.TrivialDistance(d.indexNode[nbIdx], d.indexNode[targetIdx])
	if h == core.Unreachable {
		return 0
	}
	return h
}

// run computes shortest distances from sourceIdx, stopping early once
// targetIdx settles if targetIdx != noIndex. Repeated calls with the
// same source (and either no target, or a target already settled by a
// prior call) are no-ops, letting FindDistance and FindRoute share one
// run per source.
func (d *Dijkstra) run(sourceIdx, targetIdx int) {
	if d.lastSource == sourceIdx {
		if targetIdx == noIndex && d.lastSettled {
			return
		}
		if targetIdx != noIndex && d.settled[targetIdx] {
			return
		}
		if targetIdx != noIndex && d.lastTarget == noIndex && d.lastSettled {
			return
		}
	} else {
		d.resetTouched()
	}

	d.lastSource = sourceIdx
	d.lastTarget = targetIdx
	d.lastSettled = false

	if !d.settled[sourceIdx] && d.dist[sourceIdx] == core.Unreachable {
		d.dist[sourceIdx] = 0
		d.touched = append(d.touched, sourceIdx)
		d.seq = 0
		d.pq.reset()
		d.pq.push(sourceIdx, 0, d.seq)
		d.seq++
	}

	for d.pq.Len() > 0 {
		item := d.pq.pop()
		idx := item.index
		if d.settled[idx] {
			continue
		}
		d.settled[idx] = true

		base := d.dist[idx]
		d.neighbour = d.expand(d.neighbour[:0], d.indexNode[idx])
		for _, nb := range d.neighbour {
			nbIdx, ok := d.indexOf(nb)
			if !ok || d.settled[nbIdx] {
				continue
			}
			cand := base.Add(1)
			if d.dist[nbIdx] == core.Unreachable {
				d.touched = append(d.touched, nbIdx)
			} else if !cand.Less(d.dist[nbIdx]) {
				continue
			}
			d.dist[nbIdx] = cand
			d.before[nbIdx] = idx
			d.pq.push(nbIdx, int64(cand)+int64(d.heuristic(nbIdx, targetIdx)), d.seq)
			d.seq++
		}
		// The target's neighbours are already queued, so a later call
		// from the same source can resume this frontier.
		if targetIdx != noIndex && idx == targetIdx {
			d.lastSettled = true
			return
		}
	}
	d.lastSettled = true
}

// FindDistance returns the shortest-path distance between source and
// target, or core.Unreachable if either node is out of bounds, blocked,
// or no path connects them.
func (d *Dijkstra) FindDistance(source, target core.Node) core.Distance {
	srcIdx, ok := d.indexOf(source)
	if !ok {
		return core.Unreachable
	}
	dstIdx, ok := d.indexOf(target)
	if !ok {
		return core.Unreachable
	}
	d.run(srcIdx, dstIdx)
	return d.dist[dstIdx]
}

// FindRoute returns the shortest path from source to target, and false
// if no such path exists.
func (d *Dijkstra) FindRoute(source, target core.Node) (core.Path, bool) {
	srcIdx, ok := d.indexOf(source)
	if !ok {
		return core.Path{}, false
	}
	dstIdx, ok := d.indexOf(target)
	if !ok {
		return core.Path{}, false
	}
	d.run(srcIdx, dstIdx)
	if d.dist[dstIdx] == core.Unreachable {
		return core.Path{}, false
	}
	return d.reconstruct(srcIdx, dstIdx), true
}

func (d *Dijkstra) reconstruct(srcIdx, dstIdx int) core.Path {
	nodes := []core.Node{d.indexNode[dstIdx]}
	for cur := dstIdx; cur != srcIdx; {
		cur = d.before[cur]
		nodes = append(nodes, d.indexNode[cur])
	}
	path := core.NewPath(nodes)
	return path.Reverse()
}

// DistancesFrom computes shortest distances from source to every
// reachable walkable node.
func (d *Dijkstra) DistancesFrom(source core.Node) map[core.Node]core.Distance {
	srcIdx, ok := d.indexOf(source)
	out := make(map[core.Node]core.Distance)
	if !ok {
		return out
	}
	d.run(srcIdx, noIndex)
	for i, n := range d.indexNode {
		if d.dist[i] != core.Unreachable {
			out[n] = d.dist[i]
		}
	}
	return out
}

// FindRoutes returns every shortest path between source and target,
// tied at the minimum distance. It runs the same forward Dijkstra
// FindDistance/FindRoute use, then walks backward from target one step
// at a time, at each step admitting every walkable neighbour whose
// distance equals the minimum distance among that node's neighbours —
// the neighbour strictly closer to source, with ties for "closer"
// fanning the search into multiple paths. Grounded line-for-line on
// original_source/include/Dijkstra.hpp's findRoutes/extractShortestPaths:
// the reference implementation orders partial paths in a priority
// queue by length so the shortest-so-far is always extended first, but
// since every backward step here also reduces distance-to-source by
// exactly one, a single BFS frontier reaches source at the same step
// for every branch, making a plain level-by-level expansion equivalent
// and simpler.
func (d *Dijkstra) FindRoutes(source, target core.Node) []core.Path {
	srcIdx, ok := d.indexOf(source)
	if !ok {
		return nil
	}
	dstIdx, ok := d.indexOf(target)
	if !ok {
		return nil
	}
	d.run(srcIdx, dstIdx)
	if d.dist[dstIdx] == core.Unreachable {
		return nil
	}

	frontier := [][]int{{dstIdx}}
	var complete [][]int

	for len(frontier) > 0 && len(complete) == 0 {
		var next [][]int
		for _, partial := range frontier {
			cur := partial[0]
			if cur == srcIdx {
				complete = append(complete, partial)
				continue
			}

			d.neighbour = d.expand(d.neighbour[:0], d.indexNode[cur])
			minDist := core.Unreachable
			var candidates []int
			for _, nb := range d.neighbour {
				idx, ok := d.indexOf(nb)
				if !ok || d.dist[idx] == core.Unreachable {
					continue
				}
				candidates = append(candidates, idx)
				if d.dist[idx] < minDist {
					minDist = d.dist[idx]
				}
			}
			for _, idx := range candidates {
				if d.dist[idx] != minDist {
					continue
				}
				extended := make([]int, 0, len(partial)+1)
				extended = append(extended, idx)
				extended = append(extended, partial...)
				next = append(next, extended)
			}
		}
		frontier = next
	}

	paths := make([]core.Path, 0, len(complete))
	for _, indices := range complete {
		nodes := make([]core.Node, len(indices))
		for i, idx := range indices {
			nodes[i] = d.indexNode[idx]
		}
		paths = append(paths, core.NewPath(nodes))
	}
	return paths
}
