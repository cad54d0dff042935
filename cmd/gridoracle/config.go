package main

import (
	"flag"
	"os"

	"github.com/lixenwraith/gridoracle/toml"
)

// profile is the shape of an optional TOML pre-seed file, mirroring
// the DTO the teacher's genetic/persistence/manager.go decodes into
// before copying fields onto live state.
type profile struct {
	NeighbourMode string `toml:"neighbour_mode"`
	Chime         bool   `toml:"chime"`
}

// applyProfile loads a TOML profile and copies its fields onto flags
// the user did not explicitly pass on the command line. flag.Visit
// only walks flags that were actually set, so a profile value never
// clobbers an explicit -n or --chime the user typed.
func applyProfile(path string, neighbourStr *string, chimeOn *bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatalf("profile: %v", err)
	}

	var p profile
	if err := toml.Unmarshal(data, &p); err != nil {
		logger.Fatalf("profile: %v", err)
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if p.NeighbourMode != "" && !explicit["n"] && !explicit["neighbour-mode"] {
		*neighbourStr = p.NeighbourMode
	}
	if !explicit["chime"] {
		*chimeOn = p.Chime
	}
}
