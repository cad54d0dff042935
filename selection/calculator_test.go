package selection

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
	"github.com/lixenwraith/gridoracle/pathfind"
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

func TestCalculatorComputeBasic(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{".....", ".....", ".....", ".....", "....."}), grid.Manhattan)
	d := pathfind.NewDijkstra(g)
	calc := NewCalculator(d, g)

	sel, ok := calc.Compute(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4})
	if !ok {
		t.Fatal("Compute reported no path on an open grid")
	}
	if len(sel.Left) == 0 || len(sel.Right) == 0 {
		t.Error("selection has an empty side")
	}
	if !sel.CanAnswer(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4}) {
		t.Error("selection cannot answer the pair it was built from")
	}
}

func TestCalculatorSelectionAgreesWithDijkstra(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{".....", ".....", ".....", ".....", "....."}), grid.Manhattan)
	d := pathfind.NewDijkstra(g)
	calc := NewCalculator(d, g)

	source := core.Node{Row: 0, Col: 0}
	target := core.Node{Row: 4, Col: 4}
	sel, ok := calc.Compute(source, target)
	if !ok {
		t.Fatal("Compute reported no path")
	}

	ground := pathfind.NewDijkstra(g)
	for _, u := range sel.Left {
		for _, v := range sel.Right {
			du := ground.FindDistance(u, sel.Center)
			dv := ground.FindDistance(sel.Center, v)
			want := ground.FindDistance(u, v)
			if du.Add(dv) != want {
				t.Errorf("center property violated for (%v,%v): du=%d dv=%d want=%d", u, v, du, dv, want)
			}
		}
	}
}

func TestCalculatorReusedAcrossCalls(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{".....", ".....", ".....", ".....", "....."}), grid.Manhattan)
	d := pathfind.NewDijkstra(g)
	calc := NewCalculator(d, g)

	first, ok := calc.Compute(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4})
	if !ok {
		t.Fatal("first Compute failed")
	}
	second, ok := calc.Compute(core.Node{Row: 0, Col: 4}, core.Node{Row: 4, Col: 0})
	if !ok {
		t.Fatal("second Compute failed")
	}
	if first.Index == second.Index {
		t.Error("selection indices did not advance across calls")
	}
}

func TestFullCalculatorCoversEveryNonAdjacentPair(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{"...", "...", "..."}), grid.Manhattan)
	d := pathfind.NewDijkstra(g)
	full := NewFullCalculator(d, g, rand.New(rand.NewSource(42)))

	selections := full.ComputeAll()
	if len(selections) == 0 {
		t.Fatal("ComputeAll produced no selections")
	}

	nodes := g.Nodes()
	for _, u := range nodes {
		neighbours := g.WalkableNeighbours(u)
		adjacent := make(map[core.Node]bool, len(neighbours))
		for _, nb := range neighbours {
			adjacent[nb] = true
		}
		for _, v := range nodes {
			if u == v || adjacent[v] {
				continue
			}
			covered := false
			for _, sel := range selections {
				if sel.CanAnswer(u, v) {
					covered = true
					break
				}
			}
			if !covered {
				t.Errorf("pair (%v,%v) not covered by any selection", u, v)
			}
		}
	}
}
