package grid

import (
	"testing"

	"github.com/lixenwraith/gridoracle/core"
)

func rowsFromStrings(lines []string) [][]bool {
	rows := make([][]bool, len(lines))
	for i, line := range lines {
		row := make([]bool, len(line))
		for j, ch := range line {
			row[j] = ch == '.'
		}
		rows[i] = row
	}
	return rows
}

func TestGraphIsWalkable(t *testing.T) {
	g := New(rowsFromStrings([]string{
		"..#",
		".#.",
		"...",
	}), Manhattan)

	cases := []struct {
		n    core.Node
		want bool
	}{
		{core.Node{Row: 0, Col: 0}, true},
		{core.Node{Row: 0, Col: 2}, false},
		{core.Node{Row: 1, Col: 1}, false},
		{core.Node{Row: 2, Col: 2}, true},
		{core.Node{Row: -1, Col: 0}, false},
		{core.Node{Row: 0, Col: 3}, false},
	}
	for _, c := range cases {
		if got := g.IsWalkable(c.n); got != c.want {
			t.Errorf("IsWalkable(%v) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestGraphWalkableNeighboursManhattanOrder(t *testing.T) {
	g := New(rowsFromStrings([]string{
		"...",
		"...",
		"...",
	}), Manhattan)

	got := g.WalkableNeighbours(core.Node{Row: 1, Col: 1})
	want := []core.Node{
		{Row: 1, Col: 2}, // right
		{Row: 1, Col: 0}, // left
		{Row: 0, Col: 1}, // up
		{Row: 2, Col: 1}, // down
	}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGraphWalkableNeighboursAllSurrounding(t *testing.T) {
	g := New(rowsFromStrings([]string{
		"...",
		"...",
		"...",
	}), AllSurrounding)

	got := g.WalkableNeighbours(core.Node{Row: 1, Col: 1})
	if len(got) != 8 {
		t.Fatalf("got %d neighbours, want 8", len(got))
	}
}

func TestGraphWalkableNeighboursAtEdgeExcludesOutOfBounds(t *testing.T) {
	g := New(rowsFromStrings([]string{
		"..",
		"..",
	}), AllSurrounding)

	got := g.WalkableNeighbours(core.Node{Row: 0, Col: 0})
	want := []core.Node{
		{Row: 0, Col: 1}, // right
		{Row: 1, Col: 0}, // down
		{Row: 1, Col: 1}, // down-right
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("neighbour %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGraphTrivialDistanceManhattan(t *testing.T) {
	g := New(rowsFromStrings([]string{"....", "....", "....", "...."}), Manhattan)
	d := g.TrivialDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 3, Col: 2})
	if d != 5 {
		t.Errorf("TrivialDistance = %d, want 5", d)
	}
}

func TestGraphTrivialDistanceAllSurroundingIsUndefined(t *testing.T) {
	g := New(rowsFromStrings([]string{"....", "....", "....", "...."}), AllSurrounding)
	d := g.TrivialDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 3, Col: 2})
	if d != core.Unreachable {
		t.Errorf("TrivialDistance = %d, want core.Unreachable", d)
	}
}

func TestGraphNodesCountsWalkable(t *testing.T) {
	g := New(rowsFromStrings([]string{
		".#.",
		"...",
	}), Manhattan)
	nodes := g.Nodes()
	if len(nodes) != 5 {
		t.Errorf("Nodes() returned %d, want 5", len(nodes))
	}
}

func TestGraphBounds(t *testing.T) {
	g := New(rowsFromStrings([]string{"...", "...", "..."}), Manhattan)
	b := g.Bounds()
	want := core.NewGridCell(core.Corner{Row: 0, Col: 0}, core.Corner{Row: 2, Col: 2})
	if b != want {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestNewPanicsOnRaggedRows(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("New did not panic on ragged rows")
		}
	}()
	New([][]bool{{true, true}, {true}}, Manhattan)
}
