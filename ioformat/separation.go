package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/separation"
)

// noCenter marks a Trivial separation's absent center pair in the
// output file, keeping every record at exactly two "center:" lines
// regardless of kind.
const noCenter = "none"

// WriteSeparations writes a built WSPD in the file format spec.md
// section 6 describes: every node of the first cluster as "0: (r,c)",
// every node of the second as "1: (r,c)", then two "center:" lines,
// one blank line terminating each record.
func WriteSeparations(w io.Writer, seps []separation.Separation) error {
	bw := bufio.NewWriter(w)
	for _, sep := range seps {
		for _, n := range sep.FirstCluster().Nodes() {
			fmt.Fprintf(bw, "0: (%d, %d)\n", n.Row, n.Col)
		}
		for _, n := range sep.SecondCluster().Nodes() {
			fmt.Fprintf(bw, "1: (%d, %d)\n", n.Row, n.Col)
		}
		if sep.IsComplex() {
			fmt.Fprintf(bw, "center: (%d, %d)\n", sep.FirstClusterCenter().Row, sep.FirstClusterCenter().Col)
			fmt.Fprintf(bw, "center: (%d, %d)\n", sep.SecondClusterCenter().Row, sep.SecondClusterCenter().Col)
		} else {
			fmt.Fprintf(bw, "center: %s\ncenter: %s\n", noCenter, noCenter)
		}
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "ioformat: write separations")
	}
	return nil
}

// ReadSeparations parses the format WriteSeparations produces. Each
// record's cluster node lists are recovered as the bounding cell of
// their coordinates, since a separation's cluster is always an
// axis-aligned rectangle. The center-to-center distance is not part of
// the format, so a complex separation reads back with CenterDistance
// core.Unreachable.
func ReadSeparations(r io.Reader) ([]separation.Separation, error) {
	scanner := bufio.NewScanner(r)
	var out []separation.Separation

	var first, second []core.Node
	var centers []core.Node
	trivial := false

	flush := func() error {
		if len(first) == 0 && len(second) == 0 {
			return nil
		}
		firstCell, err := boundingCell(first)
		if err != nil {
			return err
		}
		secondCell, err := boundingCell(second)
		if err != nil {
			return err
		}
		if trivial {
			out = append(out, separation.Trivial(firstCell, secondCell))
		} else {
			if len(centers) != 2 {
				return errors.Errorf("ioformat: record has %d centers, want 2", len(centers))
			}
			out = append(out, separation.Complex(firstCell, secondCell, centers[0], centers[1], core.Unreachable))
		}
		first, second, centers, trivial = nil, nil, nil, false
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, "0:"):
			n, err := parseNodeLine(line, "0:")
			if err != nil {
				return nil, err
			}
			first = append(first, n)
		case strings.HasPrefix(line, "1:"):
			n, err := parseNodeLine(line, "1:")
			if err != nil {
				return nil, err
			}
			second = append(second, n)
		case strings.HasPrefix(line, "center:"):
			rest := strings.TrimSpace(strings.TrimPrefix(line, "center:"))
			if rest == noCenter {
				trivial = true
				continue
			}
			n, err := parseCoord(rest)
			if err != nil {
				return nil, err
			}
			centers = append(centers, n)
		default:
			return nil, errors.Errorf("ioformat: unrecognized line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ioformat: read separations")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func boundingCell(nodes []core.Node) (core.GridCell, error) {
	if len(nodes) == 0 {
		return core.GridCell{}, errors.New("ioformat: empty cluster")
	}
	minRow, maxRow := nodes[0].Row, nodes[0].Row
	minCol, maxCol := nodes[0].Col, nodes[0].Col
	for _, n := range nodes[1:] {
		if n.Row < minRow {
			minRow = n.Row
		}
		if n.Row > maxRow {
			maxRow = n.Row
		}
		if n.Col < minCol {
			minCol = n.Col
		}
		if n.Col > maxCol {
			maxCol = n.Col
		}
	}
	return core.NewGridCell(
		core.Corner{Row: int64(minRow), Col: int64(minCol)},
		core.Corner{Row: int64(maxRow), Col: int64(maxCol)},
	), nil
}

func parseNodeLine(line, prefix string) (core.Node, error) {
	return parseCoord(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
}

func parseCoord(s string) (core.Node, error) {
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Node{}, errors.Errorf("ioformat: malformed coordinate %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Node{}, errors.Wrapf(err, "ioformat: malformed row in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Node{}, errors.Wrapf(err, "ioformat: malformed col in %q", s)
	}
	return core.Node{Row: row, Col: col}, nil
}
