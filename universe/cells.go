package universe

import (
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/node"
)

// Cell addressing recurses into a quadrant by shifting the position
// by a quarter of the node's side length into that quadrant's own
// centered frame, down to a leaf whose bit lives at (x+K/2, y+K/2).

type quadrant int

const (
	quadNW quadrant = iota
	quadNE
	quadSW
	quadSE
)

func quadrantOf(p Position) quadrant {
	switch {
	case p.X < 0 && p.Y < 0:
		return quadNW
	case p.X >= 0 && p.Y < 0:
		return quadNE
	case p.X < 0 && p.Y >= 0:
		return quadSW
	default:
		return quadSE
	}
}

// GetCell returns the cell at (x, y), or Dead if that coordinate lies
// outside the root's current addressable range.
func (u *Universe) GetCell(x, y int64) Cell {
	lo, hi := rangeOf(u.store.Level(u.root))
	if x < lo || x > hi || y < lo || y > hi {
		return Dead
	}
	return getCell(u.store, u.root, Position{X: x, Y: y})
}

func getCell(s *node.Store, h node.Handle, p Position) Cell {
	if s.IsLeaf(h) {
		col := int(p.X) + leaf.K/2
		row := int(p.Y) + leaf.K/2
		return Cell(leaf.Get(s.Bits(h), col, row))
	}
	offset := int64(1) << uint(s.Level(h)-2)
	nw, ne, sw, se := s.Children(h)
	switch quadrantOf(p) {
	case quadNW:
		return getCell(s, nw, Position{p.X + offset, p.Y + offset})
	case quadNE:
		return getCell(s, ne, Position{p.X - offset, p.Y + offset})
	case quadSW:
		return getCell(s, sw, Position{p.X + offset, p.Y - offset})
	default:
		return getCell(s, se, Position{p.X - offset, p.Y - offset})
	}
}

// SetCell sets the cell at (x, y), expanding the root as needed to
// bring that coordinate into range. It returns ErrOutOfRange if no
// representable root (up to MaxLevel) can reach it.
func (u *Universe) SetCell(x, y int64, c Cell) error {
	p := Position{X: x, Y: y}
	if err := u.ensureInRange(p); err != nil {
		return err
	}
	u.root = setCell(u.store, u.root, p, c)
	return nil
}

func setCell(s *node.Store, h node.Handle, p Position, c Cell) node.Handle {
	if s.IsLeaf(h) {
		col := int(p.X) + leaf.K/2
		row := int(p.Y) + leaf.K/2
		return s.CreateLeaf(leaf.Set(s.Bits(h), col, row, bool(c)))
	}
	offset := int64(1) << uint(s.Level(h)-2)
	nw, ne, sw, se := s.Children(h)
	switch quadrantOf(p) {
	case quadNW:
		nw = setCell(s, nw, Position{p.X + offset, p.Y + offset}, c)
	case quadNE:
		ne = setCell(s, ne, Position{p.X - offset, p.Y + offset}, c)
	case quadSW:
		sw = setCell(s, sw, Position{p.X + offset, p.Y - offset}, c)
	default:
		se = setCell(s, se, Position{p.X - offset, p.Y - offset}, c)
	}
	return s.CreateInterior(nw, ne, sw, se)
}
