package separation

import (
	"sync"

	"github.com/lixenwraith/gridoracle/core"
)

// ConcurrentBuilder runs WSPD construction with one goroutine per
// top-level quadrant of the root cell, each carrying its own Checker
// (and therefore its own pathfinder scratch state — a Checker is no
// safer for concurrent use than the Pathfinder it wraps). A PairCache
// shared across goroutines skips any (cell, cell) pair more than one
// goroutine would otherwise recheck, mirroring the original's
// WellSeparationCalculatorCache.
type ConcurrentBuilder struct {
	newChecker func() *Checker
	graph      CellGraph
	cache      *PairCache
}

// NewConcurrentBuilder builds a ConcurrentBuilder. newChecker must
// return a fresh, independently-usable Checker each call (typically
// one backed by its own Dijkstra instance).
func NewConcurrentBuilder(newChecker func() *Checker, graph CellGraph, cache *PairCache) *ConcurrentBuilder {
	return &ConcurrentBuilder{newChecker: newChecker, graph: graph, cache: cache}
}

// Build runs the decomposition, splitting the root cell once and
// handing each resulting quadrant pair (quadrant, root) to its own
// goroutine via core.Go, so a panic in one does not take the whole
// build down.
func (b *ConcurrentBuilder) Build() []Separation {
	root := b.graph.Bounds()

	if root.IsAtomic() {
		builder := &Builder{checker: b.newChecker(), graph: b.graph}
		return builder.Build()
	}

	quads := root.Split()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []Separation
	)

	for _, quad := range quads {
		quad := quad
		wg.Add(1)
		core.Go(func() {
			defer wg.Done()
			builder := &cachedBuilder{
				Builder: Builder{checker: b.newChecker(), graph: b.graph},
				cache:   b.cache,
			}
			found := builder.calculate(quad, root)

			mu.Lock()
			results = append(results, found...)
			mu.Unlock()
		})
	}
	wg.Wait()

	return results
}

// cachedBuilder is a Builder whose recursion consults a shared
// PairCache before checking a pair, so concurrent goroutines working
// overlapping quadrants never redo each other's well-separation
// checks.
type cachedBuilder struct {
	Builder
	cache *PairCache
}

func (b *cachedBuilder) calculate(first, second core.GridCell) []Separation {
	if first == second && first.Size() == 1 {
		return nil
	}

	if b.cache.CheckAndMark(first, second) {
		return nil
	}

	if !b.graph.HasWalkableNode(first) || !b.graph.HasWalkableNode(second) {
		return nil
	}

	if sep, ok := b.checker.Check(first, second); ok {
		return []Separation{sep}
	}

	if first.Size() == 1 && second.Size() == 1 {
		return []Separation{Complex(first, second, first.At(0), second.At(0), core.Unreachable)}
	}

	// Swap in place rather than recursing: (second, first) is the
	// mirror of the pair just marked, so the cache would skip it.
	if first.Size() < second.Size() {
		first, second = second, first
	}

	quads := first.Split()
	var out []Separation
	for _, quad := range quads {
		out = append(out, b.calculate(quad, second)...)
	}
	return out
}
