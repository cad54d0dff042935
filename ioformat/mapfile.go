// Package ioformat reads and writes the plain-text file formats that
// feed a grid into the oracle and carry its built separations and
// selections back out.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseMap reads a map file: a header of "height <H>" / "width <W>"
// lines followed by exactly H body rows of W characters, '.' meaning
// walkable and anything else a barrier. Body rows whose length
// differs from W are skipped with a warning rather than rejected,
// matching the map-file tolerance spec.md section 6 describes.
func ParseMap(r io.Reader) ([][]bool, error) {
	scanner := bufio.NewScanner(r)

	height, width, err := parseHeader(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "ioformat: parse map header")
	}

	rows := make([][]bool, 0, height)
	for scanner.Scan() && len(rows) < height {
		line := scanner.Text()
		if len(line) != width {
			log.Printf("ioformat: skipping row %d: length %d, want %d", len(rows), len(line), width)
			continue
		}
		row := make([]bool, width)
		for i, ch := range line {
			row[i] = ch == '.'
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ioformat: read map body")
	}
	if len(rows) == 0 {
		return nil, errors.New("ioformat: map has no usable rows")
	}

	return rows, nil
}

func parseHeader(scanner *bufio.Scanner) (height, width int, err error) {
	var haveHeight, haveWidth bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}

		switch fields[0] {
		case "height":
			h, perr := strconv.Atoi(fields[1])
			if perr != nil {
				return 0, 0, errors.Wrapf(perr, "invalid height %q", fields[1])
			}
			height, haveHeight = h, true
		case "width":
			w, perr := strconv.Atoi(fields[1])
			if perr != nil {
				return 0, 0, errors.Wrapf(perr, "invalid width %q", fields[1])
			}
			width, haveWidth = w, true
		}

		if haveHeight && haveWidth {
			return height, width, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}
	return 0, 0, errors.New("missing height/width header")
}

// WriteMap writes rows back out in the same format ParseMap accepts.
func WriteMap(w io.Writer, rows [][]bool) error {
	if len(rows) == 0 {
		return errors.New("ioformat: cannot write empty map")
	}
	width := len(rows[0])

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "height %d\nwidth %d\n", len(rows), width); err != nil {
		return errors.Wrap(err, "ioformat: write map header")
	}

	buf := make([]byte, width)
	for _, row := range rows {
		for i, walkable := range row {
			if walkable {
				buf[i] = '.'
			} else {
				buf[i] = '#'
			}
		}
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "ioformat: write map row")
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "ioformat: write map row")
		}
	}
	return bw.Flush()
}
