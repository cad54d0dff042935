package separation

import (
	"sync"

	"github.com/lixenwraith/gridoracle/core"
)

type cellPair struct {
	first, second core.GridCell
}

// PairCache deduplicates cell pairs across concurrent WSPD builder
// goroutines: §5 notes that parallel construction needs a
// mutex-guarded {pair -> visited} set so two workers never recheck
// the same (or mirrored) pair. Mirrors the original's
// WellSeparationCalculatorCache, replacing its mutex+unordered_set
// with a Go mutex+map since GridCell is a plain comparable struct and
// needs no custom hash.
type PairCache struct {
	mu    sync.Mutex
	cache map[cellPair]struct{}
}

// NewPairCache returns an empty cache.
func NewPairCache() *PairCache {
	return &PairCache{cache: make(map[cellPair]struct{})}
}

// CheckAndMark reports whether (first, second) — in either order —
// has already been recorded, and if not, records it. Safe for
// concurrent use.
func (c *PairCache) CheckAndMark(first, second core.GridCell) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, seenForward := c.cache[cellPair{first, second}]
	_, seenReverse := c.cache[cellPair{second, first}]
	seen := seenForward || seenReverse

	if !seen {
		c.cache[cellPair{first, second}] = struct{}{}
	}
	return seen
}
