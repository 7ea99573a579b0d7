// Package universe implements the L4 layer of the HashLife engine: a
// root node paired with a generation counter, coordinate-to-cell
// addressing, the root-expansion policy that keeps growth ahead of
// both new cells and new generations, and the bulk operations a host
// application drives (get/set cells, bounding box, population).
//
// Everything below this package is a pure, store-threaded value;
// Universe is the one stateful handle a caller holds.
package universe

import (
	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/node"
	"github.com/noctilu/hashlife/rule"
)

// MaxLevel is the largest node level this package will construct by
// expansion. A level-MaxLevel node's coordinate range already covers
// the full int64 axis (see rangeOf), so expansion never needs to go
// further.
const MaxLevel = node.Level(64)

// Cell is a two-state value: a cell is either Dead or Alive.
type Cell bool

// Dead and Alive are the two Cell states.
const (
	Dead  Cell = false
	Alive Cell = true
)

// Position is a signed coordinate pair. The origin is the center of
// the universe; negative coordinates lie to the northwest.
type Position struct {
	X, Y int64
}

// Universe is a root node, the store that owns it, and an elapsed-tick
// counter. The root is expanded as needed to reach requested cells or
// generations; it is never shrunk.
type Universe struct {
	store      *node.Store
	root       node.Handle
	generation bigpop.P
}

// New creates an empty universe under Conway's Life (B3/S23) at
// generation 0.
func New() *Universe {
	return NewWithRule(rule.Life())
}

// NewWithRule creates an empty universe evolving under r.
func NewWithRule(r rule.Rule) *Universe {
	s := node.NewStore(r)
	return &Universe{store: s, root: s.Empty(node.BaseLevel)}
}

// FromRoot wraps an already-built store and root handle in a Universe,
// the constructor pattern loaders use once they have finished
// assembling a tree with the store's own primitives (CreateLeaf,
// CreateInterior, Empty).
func FromRoot(s *node.Store, root node.Handle, generation bigpop.P) *Universe {
	return &Universe{store: s, root: root, generation: generation}
}

// Store returns the node store backing this universe, for callers
// (pattern loaders, renderers) that need its node-construction
// primitives directly.
func (u *Universe) Store() *node.Store { return u.store }

// Root returns the current root handle.
func (u *Universe) Root() node.Handle { return u.root }

// Rule returns the outer-totalistic rule cells evolve under.
func (u *Universe) Rule() rule.Rule { return u.store.Rule() }

// Generation returns the number of elapsed ticks.
func (u *Universe) Generation() bigpop.P { return u.generation }

// Population returns the number of live cells in the universe.
func (u *Universe) Population() bigpop.P { return u.store.Population(u.root) }

// rangeOf returns the inclusive coordinate range [lo, hi] a level-L
// node addresses along either axis. At MaxLevel the formula's own
// int64 wraparound (1<<63 wraps to math.MinInt64, and that minus one
// wraps to math.MaxInt64) already yields the full representable
// range, so no sentinel case is needed.
func rangeOf(level node.Level) (lo, hi int64) {
	half := int64(1) << uint(level-1)
	return -half, half - 1
}

// ensureInRange expands the root until p lies within its addressable
// range, or reports ErrOutOfRange if that would require exceeding
// MaxLevel.
func (u *Universe) ensureInRange(p Position) error {
	for {
		lo, hi := rangeOf(u.store.Level(u.root))
		if p.X >= lo && p.X <= hi && p.Y >= lo && p.Y <= hi {
			return nil
		}
		if u.store.Level(u.root) >= MaxLevel {
			return outOfRangeError(p)
		}
		u.root = u.store.Expand(u.root)
	}
}
