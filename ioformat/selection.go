package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/gridoracle/core"
	"github.com/lixenwraith/gridoracle/selection"
)

// WriteSelections writes a computed selection set in the format
// spec.md section 6 describes: the separation file shape plus
// terminating "center:" and "index:" lines.
func WriteSelections(w io.Writer, sels []selection.NodeSelection) error {
	bw := bufio.NewWriter(w)
	for _, sel := range sels {
		for _, n := range sel.Left {
			fmt.Fprintf(bw, "0: (%d, %d)\n", n.Row, n.Col)
		}
		for _, n := range sel.Right {
			fmt.Fprintf(bw, "1: (%d, %d)\n", n.Row, n.Col)
		}
		fmt.Fprintf(bw, "center: (%d, %d)\n", sel.Center.Row, sel.Center.Col)
		fmt.Fprintf(bw, "index: %d\n", sel.Index)
		fmt.Fprintln(bw)
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "ioformat: write selections")
	}
	return nil
}

// ReadSelections parses the format WriteSelections produces.
func ReadSelections(r io.Reader) ([]selection.NodeSelection, error) {
	scanner := bufio.NewScanner(r)
	var out []selection.NodeSelection

	var left, right []core.Node
	var center core.Node
	var index int
	haveIndex := false

	flush := func() error {
		if len(left) == 0 && len(right) == 0 {
			return nil
		}
		if !haveIndex {
			return errors.New("ioformat: selection record missing index")
		}
		out = append(out, selection.NodeSelection{
			Left:   left,
			Right:  right,
			Center: center,
			Index:  index,
		})
		left, right, center, index, haveIndex = nil, nil, core.Node{}, 0, false
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
			left = append(left, n)
		case strings.HasPrefix(line, "1:"):
			n, err := parseNodeLine(line, "1:")
			if err != nil {
				return nil, err
			}
			right = append(right, n)
		case strings.HasPrefix(line, "center:"):
			n, err := parseCoord(strings.TrimSpace(strings.TrimPrefix(line, "center:")))
			if err != nil {
				return nil, err
			}
			center = n
		case strings.HasPrefix(line, "index:"):
			v, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "index:")))
			if err != nil {
				return nil, errors.Wrap(err, "ioformat: malformed index line")
			}
			index = v
			haveIndex = true
		default:
			return nil, errors.Errorf("ioformat: unrecognized line %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ioformat: read selections")
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}
