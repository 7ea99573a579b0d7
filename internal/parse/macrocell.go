package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/node"
)

// LoadMacrocell parses a Macrocell-format pattern from r, constructing
// nodes directly in store via CreateLeaf, CreateInterior, and Empty,
// and returns the handle of the final record, which becomes the
// pattern's root.
//
// Arbitrary top levels are accepted: the final record's level need not
// equal any particular "canonical" root level.
func LoadMacrocell(r io.Reader, store *node.Store) (node.Handle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return 0, fmt.Errorf("parse: macrocell: empty input")
	}
	if header := strings.TrimSpace(scanner.Text()); !strings.HasPrefix(header, "[M2]") {
		return 0, fmt.Errorf("parse: macrocell: missing [M2] header, got %q", header)
	}

	var handles []node.Handle
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		h, err := parseMacrocellRecord(store, handles, line)
		if err != nil {
			return 0, err
		}
		handles = append(handles, h)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("parse: macrocell: %w", err)
	}
	if len(handles) == 0 {
		return 0, fmt.Errorf("parse: macrocell: no node records")
	}
	return handles[len(handles)-1], nil
}

func parseMacrocellRecord(store *node.Store, prior []node.Handle, line string) (node.Handle, error) {
	switch line[0] {
	case '.', '*', '$':
		return parseLeafRecord(store, line)
	default:
		return parseInteriorRecord(store, prior, line)
	}
}

// parseLeafRecord decodes a row-by-row 8x8 bitmap: '.' a dead cell,
// '*' a live cell, '$' ends the current row.
func parseLeafRecord(store *node.Store, line string) (node.Handle, error) {
	var bits leaf.Bits
	col, row := 0, 0
	for _, c := range line {
		switch c {
		case '.':
			col++
		case '*':
			if row >= leaf.K || col >= leaf.K {
				return 0, fmt.Errorf("parse: macrocell: leaf record %q exceeds %dx%d", line, leaf.K, leaf.K)
			}
			bits = leaf.Set(bits, col, row, true)
			col++
		case '$':
			row++
			col = 0
		default:
			return 0, fmt.Errorf("parse: macrocell: invalid leaf character %q in %q", string(c), line)
		}
	}
	return store.CreateLeaf(bits), nil
}

// parseInteriorRecord decodes "level nw ne sw se", where each child is
// a 1-based index into previously emitted records, or 0 meaning the
// empty node at level-1.
func parseInteriorRecord(store *node.Store, prior []node.Handle, line string) (node.Handle, error) {
	fields := strings.Fields(line)
	if len(fields) != 5 {
		return 0, fmt.Errorf("parse: macrocell: malformed interior record %q", line)
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("parse: macrocell: invalid level in %q: %w", line, err)
	}
	if level < int(node.BaseLevel) {
		return 0, fmt.Errorf("parse: macrocell: interior record level %d below %d in %q", level, node.BaseLevel, line)
	}

	var children [4]node.Handle
	for i, f := range fields[1:] {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return 0, fmt.Errorf("parse: macrocell: invalid child index in %q: %w", line, err)
		}
		switch {
		case idx == 0:
			children[i] = store.Empty(node.Level(level - 1))
		case idx >= 1 && idx <= len(prior):
			children[i] = prior[idx-1]
		default:
			return 0, fmt.Errorf("parse: macrocell: child index %d out of range in %q", idx, line)
		}
		if store.Level(children[i]) != node.Level(level-1) {
			return 0, fmt.Errorf("parse: macrocell: child %d of %q is level %d, want %d",
				idx, line, store.Level(children[i]), level-1)
		}
	}
	return store.CreateInterior(children[0], children[1], children[2], children[3]), nil
}
