package node

import (
	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/rule"
)

// Store is a hash-consing arena: structurally identical nodes always
// resolve to the same Handle, so equality of content implies equality
// of Handle and subtree comparison is O(1). It also holds the two
// memoization tables the jump/step recursion relies on for its
// superpolynomial speedup.
type Store struct {
	rule rule.Rule

	records []record

	leafIndex     map[leaf.Bits]Handle
	interiorIndex map[quad]Handle
	emptyCache    []Handle // indexed by Level; -1 means unset

	jumpCache map[Handle]Handle
	stepCache map[Handle]Handle

	stepLog2      Level
	stepLog2Valid bool
}

// NewStore creates an empty Store that evolves cells under r.
func NewStore(r rule.Rule) *Store {
	return &Store{
		rule:          r,
		leafIndex:     make(map[leaf.Bits]Handle),
		interiorIndex: make(map[quad]Handle),
		jumpCache:     make(map[Handle]Handle),
		stepCache:     make(map[Handle]Handle),
	}
}

// Rule returns the outer-totalistic rule this store evolves cells
// under.
func (s *Store) Rule() rule.Rule { return s.rule }

// Level returns h's quadtree level.
func (s *Store) Level(h Handle) Level { return s.records[h].level }

// IsLeaf reports whether h is a leaf node.
func (s *Store) IsLeaf(h Handle) bool { return s.records[h].isLeaf }

// Population returns the number of live cells under h.
func (s *Store) Population(h Handle) bigpop.P { return s.records[h].population }

// Bits returns the bit-packed contents of a leaf node. It panics if h
// is not a leaf.
func (s *Store) Bits(h Handle) leaf.Bits {
	r := s.records[h]
	if !r.isLeaf {
		panic("node: Bits: not a leaf")
	}
	return r.bits
}

// Children returns the four quadrants of an interior node. It panics
// if h is a leaf: leaves are the atomic unit of this store and cannot
// be subdivided any further.
func (s *Store) Children(h Handle) (nw, ne, sw, se Handle) {
	r := s.records[h]
	if r.isLeaf {
		panic("node: Children: leaf has no children")
	}
	return r.children.NW, r.children.NE, r.children.SW, r.children.SE
}

// NW, NE, SW, SE are single-quadrant conveniences for Children, used
// heavily by the subregion extraction in recursion.go.
func (s *Store) NW(h Handle) Handle { nw, _, _, _ := s.Children(h); return nw }
func (s *Store) NE(h Handle) Handle { _, ne, _, _ := s.Children(h); return ne }
func (s *Store) SW(h Handle) Handle { _, _, sw, _ := s.Children(h); return sw }
func (s *Store) SE(h Handle) Handle { _, _, _, se := s.Children(h); return se }

// CreateLeaf interns a leaf with the given bit pattern, returning the
// canonical Handle for that pattern.
func (s *Store) CreateLeaf(bits leaf.Bits) Handle {
	if h, ok := s.leafIndex[bits]; ok {
		return h
	}
	h := Handle(len(s.records))
	s.records = append(s.records, record{
		isLeaf:     true,
		level:      Level(leaf.Level),
		bits:       bits,
		population: bigpop.FromUint64(uint64(leaf.Population(bits))),
	})
	s.leafIndex[bits] = h
	return h
}

// CreateInterior interns an interior node from its four same-level
// children, returning the canonical Handle. It panics if the children
// are not all at the same level; that is a caller bug, not an input
// error.
func (s *Store) CreateInterior(nw, ne, sw, se Handle) Handle {
	lvl := s.records[nw].level
	if s.records[ne].level != lvl || s.records[sw].level != lvl || s.records[se].level != lvl {
		panic("node: CreateInterior: children must share a level")
	}
	key := quad{NW: nw, NE: ne, SW: sw, SE: se}
	if h, ok := s.interiorIndex[key]; ok {
		return h
	}
	pop := s.records[nw].population.
		Add(s.records[ne].population).
		Add(s.records[sw].population).
		Add(s.records[se].population)
	h := Handle(len(s.records))
	s.records = append(s.records, record{
		level:      lvl + 1,
		children:   key,
		population: pop,
	})
	s.interiorIndex[key] = h
	return h
}

// Empty returns the canonical empty node at the given level, building
// and caching it lazily.
func (s *Store) Empty(level Level) Handle {
	if level < Level(leaf.Level) {
		panic("node: Empty: level below a leaf")
	}
	for Level(len(s.emptyCache)) <= level {
		s.emptyCache = append(s.emptyCache, -1)
	}
	if s.emptyCache[level] >= 0 {
		return s.emptyCache[level]
	}
	var h Handle
	if level == Level(leaf.Level) {
		h = s.CreateLeaf(leaf.Empty)
	} else {
		child := s.Empty(level - 1)
		h = s.CreateInterior(child, child, child, child)
	}
	s.emptyCache[level] = h
	return h
}

// StepLog2 returns the cutoff level the transient step cache is
// currently keyed on; Step advances 2^(StepLog2()-2) generations.
func (s *Store) StepLog2() Level { return s.stepLog2 }

// SetStepLog2 fixes the cutoff level used by Step. Step results are
// memoized per node for the CURRENT cutoff only: changing it discards
// stepCache (but never jumpCache, which is cutoff-independent since a
// jump always targets a node's own level).
func (s *Store) SetStepLog2(k Level) {
	if s.stepLog2Valid && s.stepLog2 == k {
		return
	}
	s.stepLog2 = k
	s.stepLog2Valid = true
	s.stepCache = make(map[Handle]Handle)
}
