// Package rule describes outer-totalistic two-state cellular automaton
// rules in B(irth)/S(urvival) notation, as found in RLE headers and
// CLI flags.
package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a B/S outer-totalistic rule: Birth[k] is set iff a dead cell
// with k live neighbors is born, Survival[k] iff a live cell with k live
// neighbors survives. Only k in 0..=8 is meaningful (Moore neighborhood).
type Rule struct {
	Birth    [9]bool
	Survival [9]bool
}

// Life is Conway's Game of Life, B3/S23.
func Life() Rule {
	return Rule{
		Birth:    neighborSet(3),
		Survival: neighborSet(2, 3),
	}
}

// HighLife is B36/S23, notable for its replicator pattern.
func HighLife() Rule {
	return Rule{
		Birth:    neighborSet(3, 6),
		Survival: neighborSet(2, 3),
	}
}

func neighborSet(ks ...int) [9]bool {
	var s [9]bool
	for _, k := range ks {
		if k >= 0 && k <= 8 {
			s[k] = true
		}
	}
	return s
}

// Parse reads a rule in "B<digits>/S<digits>" notation, e.g. "B3/S23".
// The order of the B and S clauses is not significant, but both must be
// present.
func Parse(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule: malformed rule string %q: want B<digits>/S<digits>", s)
	}

	var birth, survival []int
	var sawB, sawS bool
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Rule{}, fmt.Errorf("rule: empty clause in %q", s)
		}
		digits, err := parseDigits(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("rule: %w", err)
		}
		switch part[0] {
		case 'B', 'b':
			birth, sawB = digits, true
		case 'S', 's':
			survival, sawS = digits, true
		default:
			return Rule{}, fmt.Errorf("rule: clause %q must start with B or S", part)
		}
	}
	if !sawB || !sawS {
		return Rule{}, fmt.Errorf("rule: %q must contain exactly one B clause and one S clause", s)
	}

	return Rule{Birth: neighborSet(birth...), Survival: neighborSet(survival...)}, nil
}

func parseDigits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		n, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, fmt.Errorf("invalid neighbor count %q", string(r))
		}
		out = append(out, n)
	}
	return out, nil
}

// String renders the rule back in B/S notation.
func (r Rule) String() string {
	var b, s strings.Builder
	b.WriteByte('B')
	s.WriteByte('S')
	for k := 0; k <= 8; k++ {
		if r.Birth[k] {
			fmt.Fprintf(&b, "%d", k)
		}
		if r.Survival[k] {
			fmt.Fprintf(&s, "%d", k)
		}
	}
	return b.String() + "/" + s.String()
}
