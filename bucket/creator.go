package bucket

import "github.com/lixenwraith/gridoracle/core"

// Side distinguishes a node's left-selection universe from its
// right-selection universe; the creator runs the same algorithm over
// both independently.
type Side uint8

const (
	Left Side = iota
	Right
)

// Creator groups per-node selection lists into a shared universe of
// SelectionBuckets, so a node stores a handful of bucket references
// instead of its full, possibly long, selection list.
type Creator struct {
	idx       *Index
	remaining map[Side]map[core.Node][]int
	buckets   map[Side]map[core.Node][]Bucket
	nodes     []core.Node
}

// NewCreator builds a Creator over an already-built Index.
func NewCreator(idx *Index) *Creator {
	c := &Creator{
		idx:       idx,
		remaining: map[Side]map[core.Node][]int{Left: {}, Right: {}},
		buckets:   map[Side]map[core.Node][]Bucket{Left: {}, Right: {}},
		nodes:     idx.Nodes(),
	}
	for _, n := range c.nodes {
		c.remaining[Left][n] = append([]int(nil), idx.LeftSelections(n)...)
		c.remaining[Right][n] = append([]int(nil), idx.RightSelections(n)...)
	}
	return c
}

// Build runs the creator to completion: every node's left and right
// remaining lists empty. It returns each node's assigned buckets per
// side.
func (c *Creator) Build() (leftBuckets, rightBuckets map[core.Node][]Bucket) {
	for {
		node, side, ok := c.pickIncomplete()
		if !ok {
			break
		}

		candidate := New(c.remaining[side][node])
		candidate = c.shrink(candidate, side)
		c.assign(candidate, side)
	}
	return c.buckets[Left], c.buckets[Right]
}

func (c *Creator) pickIncomplete() (core.Node, Side, bool) {
	for _, n := range c.nodes {
		if len(c.remaining[Left][n]) > 0 {
			return n, Left, true
		}
		if len(c.remaining[Right][n]) > 0 {
			return n, Right, true
		}
	}
	return core.Node{}, Left, false
}

// shrink iteratively excludes the selection whose removal maximises
// the bucket's reuse count (how many nodes' remaining lists are a
// superset of it), stopping once no exclusion improves reuse. Bucket
// size always drops by exactly one index per exclusion, so
// maximising Δreuse/Δsize reduces to maximising Δreuse.
func (c *Creator) shrink(candidate Bucket, side Side) Bucket {
	currentReuse := c.reuseCount(candidate, side)

	for candidate.Len() > 1 {
		bestIdx := -1
		bestReuse := currentReuse
		for _, idx := range candidate.Indices() {
			trial := candidate.Exclude(idx)
			reuse := c.reuseCount(trial, side)
			if reuse > bestReuse {
				bestReuse = reuse
				bestIdx = idx
			}
		}
		if bestIdx == -1 {
			break
		}
		candidate = candidate.Exclude(bestIdx)
		currentReuse = bestReuse
	}
	return candidate
}

// reuseCount returns how many nodes' remaining side-lists are a
// superset of bucket — how many nodes could adopt it.
func (c *Creator) reuseCount(bucket Bucket, side Side) int {
	if bucket.Len() == 0 {
		return 0
	}
	count := 0
	for _, n := range c.nodes {
		list := New(c.remaining[side][n])
		if list.IsSupersetOf(bucket) {
			count++
		}
	}
	return count
}

// assign hands candidate to every node whose remaining side-list is a
// superset of it, recording the bucket and removing its indices from
// that node's remaining list.
func (c *Creator) assign(candidate Bucket, side Side) {
	if candidate.Len() == 0 {
		return
	}
	for _, n := range c.nodes {
		list := c.remaining[side][n]
		if !New(list).IsSupersetOf(candidate) {
			continue
		}
		c.buckets[side][n] = append(c.buckets[side][n], candidate)
		c.remaining[side][n] = setMinus(list, candidate)
	}
}

func setMinus(list []int, bucket Bucket) []int {
	out := make([]int, 0, len(list))
	for _, idx := range list {
		if !bucket.Contains(idx) {
			out = append(out, idx)
		}
	}
	return out
}
