package bucket

import (
	"testing"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/selection"
)

func TestBucketContainsAndExclude(t *testing.T) {
	b := New([]int{3, 1, 2, 2})
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (dedup)", b.Len())
	}
	if !b.Contains(2) || b.Contains(9) {
		t.Error("Contains behaves incorrectly")
	}
	excluded := b.Exclude(2)
	if excluded.Contains(2) || excluded.Len() != 2 {
		t.Errorf("Exclude(2) = %v, want {1,3}", excluded.Indices())
	}
}

func TestBucketSubsetSuperset(t *testing.T) {
	small := New([]int{1, 2})
	big := New([]int{1, 2, 3})
	if !small.IsSubsetOf(big) || !big.IsSupersetOf(small) {
		t.Error("subset/superset relation incorrect")
	}
	if big.IsSubsetOf(small) {
		t.Error("big should not be a subset of small")
	}
}

func TestBucketMerge(t *testing.T) {
	a := New([]int{1, 2, 3})
	b := New([]int{2, 3, 4})
	merged := a.Merge(b)
	if merged.Len() != 2 || !merged.Contains(2) || !merged.Contains(3) {
		t.Errorf("Merge = %v, want {2,3}", merged.Indices())
	}
}

func TestIndexBuildsLeftRight(t *testing.T) {
	a := core.Node{Row: 0, Col: 0}
	b := core.Node{Row: 0, Col: 4}
	c := core.Node{Row: 4, Col: 4}

	selections := []selection.NodeSelection{
		{Left: []core.Node{a}, Right: []core.Node{b}, Center: core.Node{Row: 0, Col: 2}, Index: 0},
		{Left: []core.Node{a}, Right: []core.Node{c}, Center: core.Node{Row: 2, Col: 2}, Index: 1},
	}
	idx := BuildIndex(selections)

	left := idx.LeftSelections(a)
	if len(left) != 2 || left[0] != 0 || left[1] != 1 {
		t.Errorf("LeftSelections(a) = %v, want [0 1]", left)
	}
	if len(idx.RightSelections(b)) != 1 || idx.RightSelections(b)[0] != 0 {
		t.Errorf("RightSelections(b) = %v, want [0]", idx.RightSelections(b))
	}
}

func TestLookupOptimizerCoversSameUniverse(t *testing.T) {
	a := core.Node{Row: 0, Col: 0}
	b := core.Node{Row: 0, Col: 1}
	c := core.Node{Row: 0, Col: 2}

	selections := []selection.NodeSelection{
		{Left: []core.Node{a}, Right: []core.Node{b, c}, Index: 0},
		{Left: []core.Node{a}, Right: []core.Node{b}, Index: 1},
	}
	idx := BuildIndex(selections)
	opt := NewLookupOptimizer(idx)

	optimized := opt.OptimizeLeft(a, nil)
	if len(optimized) != 1 || optimized[0] != 0 {
		t.Errorf("OptimizeLeft(a) = %v, want [0] (selection 0 alone covers {b,c})", optimized)
	}
}

func TestCreatorAssignsBucketsUntilComplete(t *testing.T) {
	a := core.Node{Row: 0, Col: 0}
	b := core.Node{Row: 0, Col: 1}
	c := core.Node{Row: 1, Col: 0}

	selections := []selection.NodeSelection{
		{Left: []core.Node{a, b}, Right: []core.Node{c}, Index: 0},
		{Left: []core.Node{a}, Right: []core.Node{c}, Index: 1},
	}
	idx := BuildIndex(selections)
	creator := NewCreator(idx)

	leftBuckets, rightBuckets := creator.Build()

	for _, n := range idx.Nodes() {
		if len(creator.remaining[Left][n]) != 0 {
			t.Errorf("node %v has leftover left selections after Build: %v", n, creator.remaining[Left][n])
		}
		if len(creator.remaining[Right][n]) != 0 {
			t.Errorf("node %v has leftover right selections after Build: %v", n, creator.remaining[Right][n])
		}
	}

	if len(leftBuckets[a]) == 0 {
		t.Error("node a has no assigned left buckets")
	}
	if len(rightBuckets[c]) == 0 {
		t.Error("node c has no assigned right buckets")
	}
}

// TestCreatorNeverIncreasesPerNodeBucketCount is the bucket creator's
// core promise: grouping selections into shared buckets never leaves a
// node with more per-side references than it started with, since a
// bucket replaces one or more raw selection indices with a single
// reference.
func TestCreatorNeverIncreasesPerNodeBucketCount(t *testing.T) {
	a := core.Node{Row: 0, Col: 0}
	b := core.Node{Row: 0, Col: 1}
	c := core.Node{Row: 1, Col: 0}
	d := core.Node{Row: 1, Col: 1}
	target := core.Node{Row: 9, Col: 9}

	var selections []selection.NodeSelection
	for i, n := range []core.Node{a, b, c, d} {
		selections = append(selections, selection.NodeSelection{
			Left: []core.Node{n}, Right: []core.Node{target}, Index: i,
		})
	}
	idx := BuildIndex(selections)
	creator := NewCreator(idx)

	before := map[core.Node]int{}
	for _, n := range idx.Nodes() {
		before[n] = len(idx.LeftSelections(n))
	}

	leftBuckets, _ := creator.Build()

	for _, n := range idx.Nodes() {
		if len(leftBuckets[n]) > before[n] {
			t.Errorf("node %v: %d left buckets after Build, more than the %d raw selections it started with",
				n, len(leftBuckets[n]), before[n])
		}
	}
}
