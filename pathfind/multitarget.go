package pathfind

import (
	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
)

// MultiTargetDijkstra runs a single-source search that stops once every
// target in a set has settled, rather than once the whole grid or one
// target has. Running one Dijkstra per target would repeat the same
// expansion from scratch for each, where one multi-target run shares
// it.
type MultiTargetDijkstra struct {
	d *Dijkstra
}

// NewMultiTargetDijkstra builds a MultiTargetDijkstra over g's own
// neighbour mode.
func NewMultiTargetDijkstra(g *grid.Graph) *MultiTargetDijkstra {
	return &MultiTargetDijkstra{d: NewDijkstra(g)}
}

// FindDistances returns the shortest-path distance from source to each
// of targets. Targets outside the grid map to core.Unreachable.
// Distances to all other reachable nodes are discarded once every
// target has settled, trading full coverage for early exit.
func (m *MultiTargetDijkstra) FindDistances(source core.Node, targets []core.Node) map[core.Node]core.Distance {
	out := make(map[core.Node]core.Distance, len(targets))

	srcIdx, ok := m.d.indexOf(source)
	if !ok {
		for _, t := range targets {
			out[t] = core.Unreachable
		}
		return out
	}

	targetIdx := make(map[int]core.Node, len(targets))
	for _, t := range targets {
		idx, ok := m.d.indexOf(t)
		if !ok {
			out[t] = core.Unreachable
			continue
		}
		targetIdx[idx] = t
	}

	if len(targetIdx) == 0 {
		return out
	}

	m.runUntilAllSettled(srcIdx, targetIdx)

	for idx, node := range targetIdx {
		out[node] = m.d.dist[idx]
	}
	return out
}

// runUntilAllSettled is MultiTargetDijkstra's own expansion loop: it
// cannot reuse Dijkstra.run's single-target early exit, so it drives
// the same scratch state (distance/settled/before/touched arrays,
// priority queue) directly.
func (m *MultiTargetDijkstra) runUntilAllSettled(sourceIdx int, targets map[int]core.Node) {
	d := m.d

	if d.lastSource != sourceIdx {
		d.resetTouched()
	}
	d.lastSource = sourceIdx
	d.lastTarget = noIndex
	d.lastSettled = false

	remaining := 0
	for idx := range targets {
		if !d.settled[idx] {
			remaining++
		}
	}
	if remaining == 0 {
		return
	}

	if !d.settled[sourceIdx] && d.dist[sourceIdx] == core.Unreachable {
		d.dist[sourceIdx] = 0
		d.touched = append(d.touched, sourceIdx)
		d.seq = 0
		d.pq.reset()
		d.pq.push(sourceIdx, 0, d.seq)
		d.seq++
	}

	for d.pq.Len() > 0 && remaining > 0 {
		item := d.pq.pop()
		idx := item.index
		if d.settled[idx] {
			continue
		}
		d.settled[idx] = true
		if _, isTarget := targets[idx]; isTarget {
			remaining--
		}

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
			d.pq.push(nbIdx, int64(cand), d.seq)
			d.seq++
		}
	}
	d.lastSettled = remaining == 0
}
