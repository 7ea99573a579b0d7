// Package parse implements the pattern loaders: RLE and Macrocell,
// each producing either live coordinates or quadtree-construction
// instructions that feed the node and universe packages' own
// primitives.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/noctilu/hashlife/rule"
	"github.com/noctilu/hashlife/universe"
)

// RLE is a parsed run-length encoded pattern.
type RLE struct {
	Width, Height int
	Rule          rule.Rule
	Cells         []universe.Position
}

// ParseRLE reads an RLE-format pattern: zero or more '#'-prefixed
// comment lines, a header line "x = W, y = H[, rule = B.../S...]",
// then a run-length body of <count><b|o|$> units terminated by '!'.
// Cells are returned with the origin at the pattern's northwest
// corner; callers offset them into their own coordinate system via
// Universe.SetCellsAlive.
func ParseRLE(r io.Reader) (*RLE, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	headerLine, err := nextHeaderLine(scanner)
	if err != nil {
		return nil, err
	}

	width, height, ru, err := parseRLEHeader(headerLine)
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		body.WriteString(line)
		if strings.Contains(line, "!") {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse: rle: %w", err)
	}

	cells, err := parseRLEBody(body.String())
	if err != nil {
		return nil, err
	}

	return &RLE{Width: width, Height: height, Rule: ru, Cells: cells}, nil
}

// nextHeaderLine skips blank lines and '#' comment lines, returning
// the first remaining line (the "x = .., y = .." header).
func nextHeaderLine(scanner *bufio.Scanner) (string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("parse: rle: %w", err)
	}
	return "", fmt.Errorf("parse: rle: missing header line")
}

func parseRLEHeader(line string) (width, height int, r rule.Rule, err error) {
	r = rule.Life()
	for _, part := range strings.Split(line, ",") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])
		switch key {
		case "x":
			if width, err = strconv.Atoi(val); err != nil {
				return 0, 0, rule.Rule{}, fmt.Errorf("parse: rle: invalid width %q: %w", val, err)
			}
		case "y":
			if height, err = strconv.Atoi(val); err != nil {
				return 0, 0, rule.Rule{}, fmt.Errorf("parse: rle: invalid height %q: %w", val, err)
			}
		case "rule":
			parsed, perr := rule.Parse(val)
			if perr != nil {
				return 0, 0, rule.Rule{}, fmt.Errorf("parse: rle: %w", perr)
			}
			r = parsed
		}
	}
	return width, height, r, nil
}

// parseRLEBody walks the run-length body, tracking a cursor (x, y)
// that 'b' and 'o' advance and '$' resets to the start of the next
// line, the same three-tag state machine as Rle::alive_cells.
func parseRLEBody(body string) ([]universe.Position, error) {
	var cells []universe.Position
	var x, y int64
	i := 0
	for i < len(body) {
		switch c := body[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '!':
			return cells, nil
		case c >= '0' && c <= '9' || c == 'b' || c == 'o' || c == '$':
			start := i
			for i < len(body) && body[i] >= '0' && body[i] <= '9' {
				i++
			}
			reps := 1
			if i > start {
				n, err := strconv.Atoi(body[start:i])
				if err != nil {
					return nil, fmt.Errorf("parse: rle: invalid run count %q: %w", body[start:i], err)
				}
				reps = n
			}
			if i >= len(body) {
				return nil, fmt.Errorf("parse: rle: truncated pattern body")
			}
			tag := body[i]
			i++
			switch tag {
			case 'b':
				x += int64(reps)
			case 'o':
				for k := 0; k < reps; k++ {
					cells = append(cells, universe.Position{X: x, Y: y})
					x++
				}
			case '$':
				x = 0
				y += int64(reps)
			default:
				return nil, fmt.Errorf("parse: rle: invalid pattern tag %q", string(tag))
			}
		default:
			return nil, fmt.Errorf("parse: rle: unexpected character %q", string(c))
		}
	}
	return cells, fmt.Errorf("parse: rle: pattern body missing terminating '!'")
}
