package universe

import (
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/node"
)

// BoundingBox returns the smallest rectangle enclosing every live
// cell, or ok=false if the universe is empty. Each child's box is
// computed in its own frame, offset back into the parent's, and
// combined via min/max.
func (u *Universe) BoundingBox() (lo, hi Position, ok bool) {
	b := nodeBBox(u.store, u.root)
	if !b.ok {
		return Position{}, Position{}, false
	}
	return Position{X: b.minX, Y: b.minY}, Position{X: b.maxX, Y: b.maxY}, true
}

type bbox struct {
	minX, minY, maxX, maxY int64
	ok                     bool
}

func nodeBBox(s *node.Store, h node.Handle) bbox {
	if s.Population(h).IsZero() {
		return bbox{}
	}
	if s.IsLeaf(h) {
		return leafBBox(s.Bits(h))
	}
	offset := int64(1) << uint(s.Level(h)-2)
	nw, ne, sw, se := s.Children(h)

	result := bbox{}
	merge := func(b bbox, dx, dy int64) {
		if !b.ok {
			return
		}
		b.minX, b.maxX = b.minX+dx, b.maxX+dx
		b.minY, b.maxY = b.minY+dy, b.maxY+dy
		if !result.ok {
			result = b
			return
		}
		result.minX = min(result.minX, b.minX)
		result.minY = min(result.minY, b.minY)
		result.maxX = max(result.maxX, b.maxX)
		result.maxY = max(result.maxY, b.maxY)
	}
	merge(nodeBBox(s, nw), -offset, -offset)
	merge(nodeBBox(s, ne), offset, -offset)
	merge(nodeBBox(s, sw), -offset, offset)
	merge(nodeBBox(s, se), offset, offset)
	return result
}

func leafBBox(bits leaf.Bits) bbox {
	b := bbox{minX: leaf.K, minY: leaf.K, maxX: -1, maxY: -1}
	for row := 0; row < leaf.K; row++ {
		for col := 0; col < leaf.K; col++ {
			if !leaf.Get(bits, col, row) {
				continue
			}
			b.minX, b.maxX = min(b.minX, int64(col)), max(b.maxX, int64(col))
			b.minY, b.maxY = min(b.minY, int64(row)), max(b.maxY, int64(row))
			b.ok = true
		}
	}
	if !b.ok {
		return bbox{}
	}
	b.minX -= leaf.K / 2
	b.maxX -= leaf.K / 2
	b.minY -= leaf.K / 2
	b.maxY -= leaf.K / 2
	return b
}

// ContainsAliveCells reports whether any live cell lies within the
// closed rectangle [lo, hi]. It panics if lo.X > hi.X or lo.Y > hi.Y.
//
// Rather than a nine-way case analysis over which quadrant pair each
// rectangle corner lands in, this clips the query rectangle into each
// child's own coordinate frame and recurses only where the clipped
// rectangle is non-empty; both give the same answer, but clipping
// needs one recursive shape instead of nine.
func (u *Universe) ContainsAliveCells(lo, hi Position) bool {
	if lo.X > hi.X || lo.Y > hi.Y {
		panic("universe: ContainsAliveCells: lo must be <= hi")
	}
	return containsAlive(u.store, u.root, lo, hi)
}

func containsAlive(s *node.Store, h node.Handle, lo, hi Position) bool {
	if s.Population(h).IsZero() {
		return false
	}
	if s.IsLeaf(h) {
		colLo := max(int(lo.X)+leaf.K/2, 0)
		colHi := min(int(hi.X)+leaf.K/2, leaf.K-1)
		rowLo := max(int(lo.Y)+leaf.K/2, 0)
		rowHi := min(int(hi.Y)+leaf.K/2, leaf.K-1)
		for row := rowLo; row <= rowHi; row++ {
			for col := colLo; col <= colHi; col++ {
				if leaf.Get(s.Bits(h), col, row) {
					return true
				}
			}
		}
		return false
	}

	offset := int64(1) << uint(s.Level(h)-2)
	childLo, childHi := rangeOf(s.Level(h) - 1)
	nw, ne, sw, se := s.Children(h)

	// Clip in the parent's frame before shifting: the child's extent
	// expressed in parent coordinates always fits in int64, whereas
	// shifting an extreme query corner first could wrap.
	clipped := func(child node.Handle, dx, dy int64) bool {
		pLoX, pHiX := max(lo.X, childLo-dx), min(hi.X, childHi-dx)
		pLoY, pHiY := max(lo.Y, childLo-dy), min(hi.Y, childHi-dy)
		if pLoX > pHiX || pLoY > pHiY {
			return false
		}
		cLo := Position{X: pLoX + dx, Y: pLoY + dy}
		cHi := Position{X: pHiX + dx, Y: pHiY + dy}
		return containsAlive(s, child, cLo, cHi)
	}
	return clipped(nw, offset, offset) ||
		clipped(ne, -offset, offset) ||
		clipped(sw, offset, -offset) ||
		clipped(se, -offset, -offset)
}
