package main

import (
	"flag"

	"github.com/lixenwraith/gridoracle/grid"
	"github.com/lixenwraith/gridoracle/inspector"
	"github.com/lixenwraith/gridoracle/oracle"
	"github.com/lixenwraith/gridoracle/pathfind"
	"github.com/lixenwraith/gridoracle/separation"
)

func runInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	graphPath := fs.String("g", "", "path to the map file (required)")
	neighbourStr := fs.String("n", "manhattan", "manhattan|all-sourounding")
	fs.Parse(args)

	if *graphPath == "" {
		logger.Fatal("inspect: -g is required")
	}
	mode, ok := grid.ParseNeighbourMode(*neighbourStr)
	if !ok {
		logger.Fatalf("inspect: invalid neighbour mode %q", *neighbourStr)
	}

	g := buildGraph(*graphPath, mode)
	d := pathfind.NewDijkstra(g)
	builder := separation.NewBuilder(separation.NewChecker(d, g), g)
	o := oracle.New(g, builder.Build())

	in, err := inspector.New(g, o)
	if err != nil {
		logger.Fatalf("inspect: %v", err)
	}
	defer in.Close()
	in.Run()
}
