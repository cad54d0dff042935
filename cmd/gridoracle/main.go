// Command gridoracle preprocesses a grid map into a well-separated
// pair decomposition or a node-selection set, and can answer distance
// queries against a built oracle either interactively (inspect) or in
// batch (query).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/gridoracle/chime"
	"github.com/lixenwraith/gridoracle/grid"
	"github.com/lixenwraith/gridoracle/ioformat"
	"github.com/lixenwraith/gridoracle/pathfind"
	"github.com/lixenwraith/gridoracle/selection"
	"github.com/lixenwraith/gridoracle/separation"
)

var logger = log.New(os.Stderr, "[gridoracle] ", log.Ltime|log.Lshortfile)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "inspect":
			runInspect(os.Args[2:])
			return
		case "query":
			runQuery(os.Args[2:])
			return
		}
	}

	var (
		graphPath    string
		modeStr      string
		neighbourStr string
		profilePath  string
		chimeOn      bool
	)

	flag.StringVar(&graphPath, "g", "", "path to the map file (required)")
	flag.StringVar(&graphPath, "graph", "", "path to the map file (required)")
	flag.StringVar(&modeStr, "m", "", "separation|selection (required)")
	flag.StringVar(&modeStr, "mode", "", "separation|selection (required)")
	flag.StringVar(&neighbourStr, "n", "manhattan", "manhattan|all-sourounding")
	flag.StringVar(&neighbourStr, "neighbour-mode", "manhattan", "manhattan|all-sourounding")
	flag.StringVar(&profilePath, "profile", "", "optional TOML profile pre-seeding flag defaults")
	flag.BoolVar(&chimeOn, "chime", false, "play a completion chime once the build finishes")
	flag.Usage = printUsage
	flag.Parse()

	if profilePath != "" {
		applyProfile(profilePath, &neighbourStr, &chimeOn)
	}

	if graphPath == "" || modeStr == "" {
		printUsage()
		os.Exit(2)
	}

	mode, ok := grid.ParseNeighbourMode(neighbourStr)
	if !ok {
		logger.Fatalf("invalid neighbour mode %q", neighbourStr)
	}

	g := buildGraph(graphPath, mode)
	d := pathfind.NewDijkstra(g)

	switch modeStr {
	case "separation":
		builder := separation.NewBuilder(separation.NewChecker(d, g), g)
		seps := builder.Build()
		logger.Printf("WSPD: %d separations built", len(seps))
		if err := ioformat.WriteSeparations(os.Stdout, seps); err != nil {
			logger.Fatalf("write separations: %v", err)
		}
	case "selection":
		full := selection.NewFullCalculator(d, g, nil)
		sels := full.ComputeAll()
		logger.Printf("selections: %d computed", len(sels))
		if err := ioformat.WriteSelections(os.Stdout, sels); err != nil {
			logger.Fatalf("write selections: %v", err)
		}
	default:
		logger.Fatalf("invalid mode %q: want separation or selection", modeStr)
	}

	if chimeOn {
		if err := chime.Init(); err == nil {
			chime.BuildComplete()
			chime.Close()
		} else {
			logger.Printf("chime: audio init failed: %v", err)
		}
	}
}

func buildGraph(path string, mode grid.NeighbourMode) *grid.Graph {
	f, err := os.Open(path)
	if err != nil {
		logger.Fatalf("open graph: %v", err)
	}
	defer f.Close()

	rows, err := ioformat.ParseMap(f)
	if err != nil {
		logger.Fatalf("parse map: %v", err)
	}
	return grid.New(rows, mode)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: gridoracle -g <map> -m {separation|selection} [options]")
	fmt.Fprintln(os.Stderr, "       gridoracle inspect -g <map> [options]")
	fmt.Fprintln(os.Stderr, "       gridoracle query -g <map> [options] < pairs.txt")
	fmt.Fprintln(os.Stderr, "\nOptions:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, "\nInspect controls:")
	fmt.Fprintln(os.Stderr, "  hjkl     move cursor")
	fmt.Fprintln(os.Stderr, "  space    mark/clear source cell")
	fmt.Fprintln(os.Stderr, "  q, Esc, Ctrl+C   quit")
}
