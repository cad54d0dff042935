package bucket

import "github.com/lixenwraith/gridoracle/core"

// LookupOptimizer reduces a node's per-side selection list to a
// near-minimal set cover over the opposite side: the fewest
// selections whose combined opposite-side node sets still cover every
// node the full list covered.
type LookupOptimizer struct {
	idx *Index
}

// NewLookupOptimizer builds an optimizer over an already-built Index.
func NewLookupOptimizer(idx *Index) *LookupOptimizer {
	return &LookupOptimizer{idx: idx}
}

// OptimizeLeft reduces n's left-selection list, covering the same
// union of right-side nodes with as few selections as possible. keep
// lists indices that must remain in the result regardless of whether
// a smaller cover would drop them.
func (o *LookupOptimizer) OptimizeLeft(n core.Node, keep []int) []int {
	return optimize(o.idx.LeftSelections(n), o.idx.rightSetOf, keep)
}

// OptimizeRight is OptimizeLeft's mirror for n's right-selection list.
func (o *LookupOptimizer) OptimizeRight(n core.Node, keep []int) []int {
	return optimize(o.idx.RightSelections(n), o.idx.leftSetOf, keep)
}

// optimize runs greedy set cover over candidates, where setOf(idx)
// gives the opposite-side node set each candidate contributes.
// Ties are broken by the first candidate in iteration order
// (candidates is already sorted ascending), making the result
// deterministic for a given Index.
func optimize(candidates []int, setOf func(int) []core.Node, keep []int) []int {
	universe := make(map[core.Node]struct{})
	for _, idx := range candidates {
		for _, n := range setOf(idx) {
			universe[n] = struct{}{}
		}
	}

	kept := make(map[int]bool, len(keep))
	covered := make(map[core.Node]struct{}, len(universe))
	result := append([]int(nil), keep...)
	for _, idx := range keep {
		kept[idx] = true
		for _, n := range setOf(idx) {
			covered[n] = struct{}{}
		}
	}

	remaining := make([]int, 0, len(candidates))
	for _, idx := range candidates {
		if !kept[idx] {
			remaining = append(remaining, idx)
		}
	}

	for len(covered) < len(universe) {
		bestIdx := -1
		bestGain := -1
		for _, idx := range remaining {
			gain := 0
			for _, n := range setOf(idx) {
				if _, ok := covered[n]; !ok {
					gain++
				}
			}
			if gain > bestGain {
				bestGain = gain
				bestIdx = idx
			}
		}
		if bestIdx == -1 || bestGain == 0 {
			break
		}

		result = append(result, bestIdx)
		for _, n := range setOf(bestIdx) {
			covered[n] = struct{}{}
		}
		for i, idx := range remaining {
			if idx == bestIdx {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}

	return New(result).Indices()
}
