package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/grid"
	"github.com/lixenwraith/gridoracle/oracle"
	"github.com/lixenwraith/gridoracle/pathfind"
	"github.com/lixenwraith/gridoracle/separation"
	"github.com/lixenwraith/gridoracle/workerpool"
)

// runQuery batch-answers distance queries read from stdin, one pair
// per line as "row1 col1 row2 col2". The built oracle holds no
// mutable state once construction finishes, so every worker shares the
// same instance rather than each owning a private copy.
func runQuery(args []string) {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	graphPath := fs.String("g", "", "path to the map file (required)")
	neighbourStr := fs.String("n", "manhattan", "manhattan|all-sourounding")
	workers := fs.Int("workers", 4, "number of worker goroutines")
	fs.Parse(args)

	if *graphPath == "" {
		logger.Fatal("query: -g is required")
	}
	mode, ok := grid.ParseNeighbourMode(*neighbourStr)
	if !ok {
		logger.Fatalf("query: invalid neighbour mode %q", *neighbourStr)
	}
	if *workers < 1 {
		logger.Fatal("query: -workers must be at least 1")
	}

	g := buildGraph(*graphPath, mode)
	d := pathfind.NewDijkstra(g)
	builder := separation.NewBuilder(separation.NewChecker(d, g), g)
	o := oracle.New(g, builder.Build())

	owned := make([]*oracle.Oracle, *workers)
	for i := range owned {
		owned[i] = o
	}
	pool := workerpool.New(owned)
	defer pool.Close()

	type pair struct{ u, v core.Node }
	var pairs []pair
	var results []<-chan core.Distance

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			logger.Printf("query: skipping malformed line %q", line)
			continue
		}
		u, err1 := parseNode(fields[0], fields[1])
		v, err2 := parseNode(fields[2], fields[3])
		if err1 != nil || err2 != nil {
			logger.Printf("query: skipping malformed line %q", line)
			continue
		}

		p := pair{u, v}
		pairs = append(pairs, p)
		results = append(results, workerpool.Submit(pool, func(ora *oracle.Oracle) core.Distance {
			return ora.FindDistance(p.u, p.v)
		}))
	}
	if err := scanner.Err(); err != nil {
		logger.Fatalf("query: reading stdin: %v", err)
	}

	for i, ch := range results {
		dist := <-ch
		fmt.Printf("(%d,%d)-(%d,%d): %d\n", pairs[i].u.Row, pairs[i].u.Col, pairs[i].v.Row, pairs[i].v.Col, dist)
	}
}

func parseNode(rowStr, colStr string) (core.Node, error) {
	row, err := strconv.Atoi(rowStr)
	if err != nil {
		return core.Node{}, err
	}
	col, err := strconv.Atoi(colStr)
	if err != nil {
		return core.Node{}, err
	}
	return core.Node{Row: row, Col: col}, nil
}
