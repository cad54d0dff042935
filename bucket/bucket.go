// Package bucket compresses per-node selection-index lists into a
// smaller universe of shared buckets: the set-cover style compression
// stage between selection computation and the distance oracle's
// lookup tables.
package bucket

import "sort"

// Bucket is a sorted, deduplicated set of selection indices.
type Bucket struct {
	indices []int
}

// New builds a Bucket from a slice of indices, sorting and
// deduplicating them.
func New(indices []int) Bucket {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	cp = dedup(cp)
	return Bucket{indices: cp}
}

func dedup(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of indices in the bucket.
func (b Bucket) Len() int { return len(b.indices) }

// Indices returns the bucket's sorted index slice. Callers must not
// mutate the returned slice.
func (b Bucket) Indices() []int { return b.indices }

// Contains reports whether idx is a member of the bucket.
func (b Bucket) Contains(idx int) bool {
	i := sort.SearchInts(b.indices, idx)
	return i < len(b.indices) && b.indices[i] == idx
}

// IsSubsetOf reports whether every index in b is also in other.
func (b Bucket) IsSubsetOf(other Bucket) bool {
	for _, idx := range b.indices {
		if !other.Contains(idx) {
			return false
		}
	}
	return true
}

// IsSupersetOf reports whether every index in other is also in b.
func (b Bucket) IsSupersetOf(other Bucket) bool {
	return other.IsSubsetOf(b)
}

// Exclude returns a copy of b without idx.
func (b Bucket) Exclude(idx int) Bucket {
	out := make([]int, 0, len(b.indices))
	for _, v := range b.indices {
		if v != idx {
			out = append(out, v)
		}
	}
	return Bucket{indices: out}
}

// Merge returns the intersection of b and other.
func (b Bucket) Merge(other Bucket) Bucket {
	var out []int
	for _, v := range b.indices {
		if other.Contains(v) {
			out = append(out, v)
		}
	}
	return Bucket{indices: out}
}

// FirstIndex returns the smallest index in the bucket. Callers must
// not call this on an empty bucket.
func (b Bucket) FirstIndex() int { return b.indices[0] }

// LastIndex returns the largest index in the bucket. Callers must not
// call this on an empty bucket.
func (b Bucket) LastIndex() int { return b.indices[len(b.indices)-1] }
