package grid

import "github.com/lixenwraith/gridoracle/constant"

// NeighbourMode selects the connectivity used by a GridGraph. It is a
// tagged variant rather than an interface: both arms are trivial,
// inline well, and the hot pathfinding loop never needs dynamic
// dispatch to pick between them.
type NeighbourMode uint8

const (
	// Manhattan connects each node to its 4 orthogonal neighbours.
	Manhattan NeighbourMode = iota
	// AllSurrounding connects each node to its 4 orthogonal and 4
	// diagonal neighbours (8-connected).
	AllSurrounding
)

// Offsets returns the fixed-order neighbour deltas for the mode.
func (m NeighbourMode) Offsets() []constant.Offset {
	switch m {
	case AllSurrounding:
		return constant.AllSurroundingOffsets[:]
	default:
		return constant.ManhattanOffsets[:]
	}
}

// String implements fmt.Stringer for CLI flag validation messages.
func (m NeighbourMode) String() string {
	switch m {
	case AllSurrounding:
		return "all-sourounding"
	default:
		return "manhattan"
	}
}

// ParseNeighbourMode parses the CLI --neighbour-mode flag value.
// Spelling matches spec.md section 6 verbatim, including the upstream
// typo "all-sourounding".
func ParseNeighbourMode(s string) (NeighbourMode, bool) {
	switch s {
	case "manhattan":
		return Manhattan, true
	case "all-sourounding":
		return AllSurrounding, true
	default:
		return Manhattan, false
	}
}
