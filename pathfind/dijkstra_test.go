package pathfind

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
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

func openGrid(mode grid.NeighbourMode) *grid.Graph {
	return grid.New(rowsFromStrings([]string{
		".....",
		".....",
		".....",
		".....",
		".....",
	}), mode)
}

func TestDijkstraFindDistanceOpenGrid(t *testing.T) {
	g := openGrid(grid.Manhattan)
	d := NewDijkstra(g)

	got := d.FindDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4})
	if got != 8 {
		t.Errorf("FindDistance = %d, want 8", got)
	}
}

func TestDijkstraFindDistanceAroundWall(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	}), grid.Manhattan)
	d := NewDijkstra(g)

	got := d.FindDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4})
	if got != 8 {
		t.Errorf("FindDistance = %d, want 8", got)
	}
}

func TestDijkstraUnreachableAcrossSplitGrid(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{
		"..#..",
		"..#..",
		"..#..",
	}), grid.Manhattan)
	d := NewDijkstra(g)

	got := d.FindDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 0, Col: 4})
	if got != core.Unreachable {
		t.Errorf("FindDistance = %d, want Unreachable", got)
	}
}

func TestDijkstraFindRouteReconstructsValidPath(t *testing.T) {
	g := openGrid(grid.Manhattan)
	d := NewDijkstra(g)

	path, ok := d.FindRoute(core.Node{Row: 0, Col: 0}, core.Node{Row: 2, Col: 2})
	if !ok {
		t.Fatal("FindRoute reported no path on an open grid")
	}
	if path.Source() != (core.Node{Row: 0, Col: 0}) || path.Target() != (core.Node{Row: 2, Col: 2}) {
		t.Errorf("path endpoints = %v..%v, want (0,0)..(2,2)", path.Source(), path.Target())
	}
	if path.Length() != 5 {
		t.Errorf("path length = %d, want 5", path.Length())
	}
	for i := 1; i < len(path.Nodes); i++ {
		prev, cur := path.Nodes[i-1], path.Nodes[i]
		dr := prev.Row - cur.Row
		dc := prev.Col - cur.Col
		if dr < 0 {
			dr = -dr
		}
		if dc < 0 {
			dc = -dc
		}
		if dr+dc != 1 {
			t.Errorf("step %d->%d is not grid-adjacent: %v -> %v", i-1, i, prev, cur)
		}
	}
}

func TestDijkstraDistancesFromCoversReachableSet(t *testing.T) {
	g := openGrid(grid.Manhattan)
	d := NewDijkstra(g)

	all := d.DistancesFrom(core.Node{Row: 2, Col: 2})
	if len(all) != 25 {
		t.Errorf("DistancesFrom returned %d nodes, want 25", len(all))
	}
	if all[core.Node{Row: 2, Col: 2}] != 0 {
		t.Errorf("distance to self = %d, want 0", all[core.Node{Row: 2, Col: 2}])
	}
}

func pathIsValid(t *testing.T, p core.Path, source, target core.Node) {
	t.Helper()
	if p.Source() != source {
		t.Errorf("path source = %v, want %v", p.Source(), source)
	}
	if p.Target() != target {
		t.Errorf("path target = %v, want %v", p.Target(), target)
	}
	for i := 1; i < len(p.Nodes); i++ {
		prev, cur := p.Nodes[i-1], p.Nodes[i]
		dr := prev.Row - cur.Row
		if dr < 0 {
			dr = -dr
		}
		dc := prev.Col - cur.Col
		if dc < 0 {
			dc = -dc
		}
		if dr > 1 || dc > 1 || (dr == 0 && dc == 0) {
			t.Errorf("step %d->%d is not grid-adjacent: %v -> %v", i-1, i, prev, cur)
		}
	}
}

// TestDijkstraFindRoutesSingleShortestPath is scenario S1: on a 5x5
// open grid under Manhattan connectivity, (0,0) to (0,4) has exactly
// one shortest path.
func TestDijkstraFindRoutesSingleShortestPath(t *testing.T) {
	g := openGrid(grid.Manhattan)
	d := NewDijkstra(g)

	source := core.Node{Row: 0, Col: 0}
	target := core.Node{Row: 0, Col: 4}

	if dist := d.FindDistance(source, target); dist != 4 {
		t.Fatalf("FindDistance = %d, want 4", dist)
	}

	paths := d.FindRoutes(source, target)
	if len(paths) != 1 {
		t.Fatalf("FindRoutes returned %d paths, want 1", len(paths))
	}
	pathIsValid(t, paths[0], source, target)
	if len(paths[0].Nodes) != 5 {
		t.Errorf("path has %d nodes, want 5 (distance 4 + 1)", len(paths[0].Nodes))
	}
}

// TestDijkstraFindRoutesTiedPathsAroundBarrier is scenario S2: a 5x5
// grid with a single barrier at (0,2) forces the shortest route from
// (0,0) to (0,4) to detour around it, producing 4 tied shortest paths
// of distance 6.
func TestDijkstraFindRoutesTiedPathsAroundBarrier(t *testing.T) {
	rows := rowsFromStrings([]string{
		"..#..",
		".....",
		".....",
		".....",
		".....",
	})
	g := grid.New(rows, grid.Manhattan)
	d := NewDijkstra(g)

	source := core.Node{Row: 0, Col: 0}
	target := core.Node{Row: 0, Col: 4}

	if dist := d.FindDistance(source, target); dist != 6 {
		t.Fatalf("FindDistance = %d, want 6", dist)
	}

	paths := d.FindRoutes(source, target)
	if len(paths) != 4 {
		t.Fatalf("FindRoutes returned %d paths, want 4", len(paths))
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		pathIsValid(t, p, source, target)
		if len(p.Nodes) != 7 {
			t.Errorf("path has %d nodes, want 7 (distance 6 + 1)", len(p.Nodes))
		}
		key := fmt.Sprintf("%v", p.Nodes)
		if seen[key] {
			t.Errorf("duplicate path returned: %v", p.Nodes)
		}
		seen[key] = true
	}
}

// TestDijkstraFindRoutesDiagonalOnly is scenario S3: on a 5x5 open
// grid under 8-connectivity, the shortest route from (0,0) to (4,4)
// has distance 4 and only moves diagonally, since any orthogonal step
// would need an extra move to cover the same row/column displacement.
func TestDijkstraFindRoutesDiagonalOnly(t *testing.T) {
	g := openGrid(grid.AllSurrounding)
	d := NewDijkstra(g)

	source := core.Node{Row: 0, Col: 0}
	target := core.Node{Row: 4, Col: 4}

	if dist := d.FindDistance(source, target); dist != 4 {
		t.Fatalf("FindDistance = %d, want 4", dist)
	}

	paths := d.FindRoutes(source, target)
	if len(paths) == 0 {
		t.Fatal("FindRoutes returned no paths")
	}
	for _, p := range paths {
		pathIsValid(t, p, source, target)
		if len(p.Nodes) != 5 {
			t.Errorf("path has %d nodes, want 5 (distance 4 + 1)", len(p.Nodes))
		}
		for i := 1; i < len(p.Nodes); i++ {
			prev, cur := p.Nodes[i-1], p.Nodes[i]
			if prev.Row == cur.Row || prev.Col == cur.Col {
				t.Errorf("step %d->%d is not diagonal: %v -> %v", i-1, i, prev, cur)
			}
		}
	}
}

func TestDijkstraReusedAcrossDifferentSources(t *testing.T) {
	g := openGrid(grid.Manhattan)
	d := NewDijkstra(g)

	a := d.FindDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 4, Col: 4})
	b := d.FindDistance(core.Node{Row: 4, Col: 0}, core.Node{Row: 0, Col: 4})
	if a != 8 || b != 8 {
		t.Errorf("got a=%d b=%d, want 8 and 8", a, b)
	}
}

func TestManhattanDijkstraIgnoresGraphMode(t *testing.T) {
	g := openGrid(grid.AllSurrounding)
	d := NewManhattanDijkstra(g)

	got := d.FindDistance(core.Node{Row: 0, Col: 0}, core.Node{Row: 2, Col: 2})
	if got != 4 {
		t.Errorf("FindDistance = %d, want 4 (pure Manhattan even though graph is 8-connected)", got)
	}
}

func TestAStarMatchesDijkstraDistance(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{
		".....",
		".###.",
		".....",
		".###.",
		".....",
	}), grid.Manhattan)

	dijkstra := NewDijkstra(g)
	astar := NewAStar(g)

	source := core.Node{Row: 0, Col: 0}
	target := core.Node{Row: 4, Col: 4}
	want := dijkstra.FindDistance(source, target)
	got := astar.FindDistance(source, target)
	if got != want {
		t.Errorf("AStar distance = %d, want %d (Dijkstra's)", got, want)
	}
}

func TestCachingDijkstraMatchesDijkstra(t *testing.T) {
	g := grid.New(rowsFromStrings([]string{
		"....",
		".##.",
		"....",
	}), grid.Manhattan)

	d := NewDijkstra(g)
	cache := NewCachingDijkstra(g)

	for _, src := range g.Nodes() {
		for _, dst := range g.Nodes() {
			want := d.FindDistance(src, dst)
			got := cache.FindDistance(src, dst)
			if got != want {
				t.Errorf("FindDistance(%v,%v) = %d, want %d", src, dst, got, want)
			}
		}
	}
}

func TestCachingDijkstraFindRoute(t *testing.T) {
	g := openGrid(grid.Manhattan)
	cache := NewCachingDijkstra(g)

	path, ok := cache.FindRoute(core.Node{Row: 0, Col: 0}, core.Node{Row: 3, Col: 3})
	if !ok {
		t.Fatal("FindRoute reported no path on an open grid")
	}
	if path.Length() != 7 {
		t.Errorf("path length = %d, want 7", path.Length())
	}
}

func TestMultiTargetDijkstraMatchesIndividualQueries(t *testing.T) {
	g := openGrid(grid.Manhattan)
	single := NewDijkstra(g)
	multi := NewMultiTargetDijkstra(g)

	source := core.Node{Row: 2, Col: 2}
	targets := []core.Node{
		{Row: 0, Col: 0},
		{Row: 4, Col: 4},
		{Row: 0, Col: 4},
	}

	got := multi.FindDistances(source, targets)
	for _, target := range targets {
		want := single.FindDistance(source, target)
		if got[target] != want {
			t.Errorf("FindDistances[%v] = %d, want %d", target, got[target], want)
		}
	}
}

func TestMultiTargetDijkstraOutOfBoundsTarget(t *testing.T) {
	g := openGrid(grid.Manhattan)
	multi := NewMultiTargetDijkstra(g)

	got := multi.FindDistances(core.Node{Row: 0, Col: 0}, []core.Node{{Row: 99, Col: 99}})
	if got[core.Node{Row: 99, Col: 99}] != core.Unreachable {
		t.Errorf("out-of-bounds target = %d, want Unreachable", got[core.Node{Row: 99, Col: 99}])
	}
}
