// Package constant holds grid-wide fixed tables shared across the
// pathfinding, separation and selection layers: neighbour offsets and
// their deterministic emission order.
package constant

// Offset is a row/column delta applied to a node to reach a neighbour.
type Offset struct {
	DRow int
	DCol int
}

// ManhattanOffsets lists the 4-connected neighbour deltas in the fixed
// emission order right, left, up, down. Pathfinders must relax
// neighbours in this order so that priority-queue ties resolve
// deterministically by insertion order.
var ManhattanOffsets = [4]Offset{
	{DRow: 0, DCol: 1},  // right
	{DRow: 0, DCol: -1}, // left
	{DRow: -1, DCol: 0}, // up
	{DRow: 1, DCol: 0},  // down
}

// AllSurroundingOffsets lists the 8-connected neighbour deltas: the four
// Manhattan directions first, then the four diagonals, preserving the
// spec's fixed emission order.
var AllSurroundingOffsets = [8]Offset{
	{DRow: 0, DCol: 1},   // right
	{DRow: 0, DCol: -1},  // left
	{DRow: -1, DCol: 0},  // up
	{DRow: 1, DCol: 0},   // down
	{DRow: -1, DCol: 1},  // up-right
	{DRow: -1, DCol: -1}, // up-left
	{DRow: 1, DCol: 1},   // down-right
	{DRow: 1, DCol: -1},  // down-left
}
