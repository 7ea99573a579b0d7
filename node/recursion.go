package node

import "github.com/noctilu/hashlife/leaf"

// The jump/step recursion decomposes a node into nine overlapping
// subregions (A..I, a 3x3 tiling at half resolution), folds them into
// four composed quadrants (W, X, Y, Z), and recurses on those. See
// basecase.go for the two levels where the decomposition runs out of
// room to subdivide and falls back to stitching leaf bitmaps directly.

// Jump returns the level(h)-1 node covering the center of h advanced
// 2^(level(h)-2) generations into the future. The result is permanently
// memoized: a jump's generation count is fixed by h's own level, so it
// never needs invalidating.
func (s *Store) Jump(h Handle) Handle {
	if j, ok := s.jumpCache[h]; ok {
		return j
	}
	lvl := s.Level(h)
	if lvl < baseLevel {
		panic("node: Jump: node smaller than the smallest composite node")
	}

	var result Handle
	if lvl <= maxBaseLevel {
		result = s.advanceBase(h, lvl)
	} else {
		nw, ne, sw, se := s.Children(h)

		a := s.Jump(nw)
		b := s.horizJump(ne, nw)
		c := s.Jump(ne)
		d := s.vertJump(nw, sw)
		e := s.Jump(s.CenterSubnode(h))
		f := s.vertJump(ne, se)
		g := s.Jump(sw)
		hh := s.horizJump(se, sw)
		i := s.Jump(se)

		w := s.Jump(s.CreateInterior(a, b, d, e))
		x := s.Jump(s.CreateInterior(b, c, e, f))
		y := s.Jump(s.CreateInterior(d, e, g, hh))
		z := s.Jump(s.CreateInterior(e, f, hh, i))

		result = s.CreateInterior(w, x, y, z)
	}

	s.jumpCache[h] = result
	return result
}

// Step returns the level(h)-1 node covering the center of h advanced
// 2^(StepLog2()-2) generations into the future. Unlike Jump, the
// generation count is a store-wide setting rather than intrinsic to h,
// so results are invalidated whenever SetStepLog2 changes it.
func (s *Store) Step(h Handle) Handle {
	return s.stepTo(h, s.stepLog2)
}

func (s *Store) stepTo(h Handle, cutoff Level) Handle {
	if v, ok := s.stepCache[h]; ok {
		return v
	}
	lvl := s.Level(h)
	if lvl < cutoff {
		panic("node: Step: node level below cutoff")
	}

	var result Handle
	switch {
	case lvl <= maxBaseLevel:
		result = s.advanceBase(h, cutoff)
	case lvl == cutoff:
		result = s.Jump(h)
	default:
		nw, ne, sw, se := s.Children(h)

		a := s.CenterSubnode(nw)
		b := s.NorthSub(h)
		c := s.CenterSubnode(ne)
		d := s.WestSub(h)
		e := s.CenterSubnode(s.CenterSubnode(h))
		f := s.EastSub(h)
		g := s.CenterSubnode(sw)
		hh := s.SouthSub(h)
		i := s.CenterSubnode(se)

		w := s.stepTo(s.CreateInterior(a, b, d, e), cutoff)
		x := s.stepTo(s.CreateInterior(b, c, e, f), cutoff)
		y := s.stepTo(s.CreateInterior(d, e, g, hh), cutoff)
		z := s.stepTo(s.CreateInterior(e, f, hh, i), cutoff)

		result = s.CreateInterior(w, x, y, z)
	}

	s.stepCache[h] = result
	return result
}

// horizJump combines two horizontally adjacent level-L nodes (e east
// of w) into the level-(L-1) node spanning their shared border,
// advanced 2^(L-2) generations.
func (s *Store) horizJump(e, w Handle) Handle {
	eNW, _, eSW, _ := s.Children(e)
	_, wNE, _, wSE := s.Children(w)
	return s.Jump(s.CreateInterior(wNE, eNW, wSE, eSW))
}

// vertJump combines two vertically adjacent level-L nodes (n north of
// south) into the level-(L-1) node spanning their shared border,
// advanced 2^(L-2) generations.
func (s *Store) vertJump(n, south Handle) Handle {
	_, _, nSW, nSE := s.Children(n)
	sNW, sNE, _, _ := s.Children(south)
	return s.Jump(s.CreateInterior(nSW, nSE, sNW, sNE))
}

// CenterSubnode returns the level-(L-1) node covering h's own center,
// with no time advance. Requires level(h) >= baseLevel+1 so that h's
// children can themselves be subdivided.
func (s *Store) CenterSubnode(h Handle) Handle {
	nw := s.SE(s.NW(h))
	ne := s.SW(s.NE(h))
	sw := s.NE(s.SW(h))
	se := s.NW(s.SE(h))
	return s.CreateInterior(nw, ne, sw, se)
}

// centeredHoriz returns the level-(L-1) subnode straddling the border
// between two horizontally adjacent level-L nodes, with no time
// advance.
func (s *Store) centeredHoriz(e, w Handle) Handle {
	nw := s.SE(s.NE(w))
	ne := s.SW(s.NW(e))
	sw := s.NE(s.SE(w))
	se := s.NW(s.SW(e))
	return s.CreateInterior(nw, ne, sw, se)
}

// centeredVert returns the level-(L-1) subnode straddling the border
// between two vertically adjacent level-L nodes, with no time advance.
func (s *Store) centeredVert(n, south Handle) Handle {
	nw := s.SE(s.SW(n))
	ne := s.SW(s.SE(n))
	sw := s.NE(s.NW(south))
	se := s.NW(s.NE(south))
	return s.CreateInterior(nw, ne, sw, se)
}

// NorthSub, SouthSub, EastSub, WestSub return the level-(L-2) subnode
// straddling the center of h's corresponding edge, with no time
// advance. They require level(h) >= baseLevel+2.
func (s *Store) NorthSub(h Handle) Handle { return s.centeredHoriz(s.NE(h), s.NW(h)) }
func (s *Store) SouthSub(h Handle) Handle { return s.centeredHoriz(s.SE(h), s.SW(h)) }
func (s *Store) EastSub(h Handle) Handle  { return s.centeredVert(s.NE(h), s.SE(h)) }
func (s *Store) WestSub(h Handle) Handle  { return s.centeredVert(s.NW(h), s.SW(h)) }

// Expand returns a node one level larger than h, with h's own content
// repositioned to sit exactly in the center of the new node's extent
// and bordered by empty space.
func (s *Store) Expand(h Handle) Handle {
	lvl := s.Level(h)
	if lvl == Level(leaf.Level) {
		return s.expandLeaf(h)
	}

	border := s.Empty(lvl - 1)
	nw0, ne0, sw0, se0 := s.Children(h)

	ne := s.CreateInterior(border, border, ne0, border)
	nw := s.CreateInterior(border, border, border, nw0)
	se := s.CreateInterior(se0, border, border, border)
	sw := s.CreateInterior(border, sw0, border, border)

	return s.CreateInterior(nw, ne, sw, se)
}

// expandLeaf is Expand's base case: a leaf cannot be subdivided by
// Children, so each of its four 4x4 quarters is shifted into the inner
// corner of a fresh leaf instead. The masks select a quarter (rows 0-3
// are the low four bytes, columns 0-3 the high nibble of each row) and
// the shifts move the quarter diagonally by (4, 4) cells, keeping the
// content centered exactly as the interior case does.
func (s *Store) expandLeaf(h Handle) Handle {
	b := s.Bits(h)
	nw := s.CreateLeaf((b & 0x00000000f0f0f0f0) << 28)
	ne := s.CreateLeaf((b & 0x000000000f0f0f0f) << 36)
	sw := s.CreateLeaf((b & 0xf0f0f0f000000000) >> 36)
	se := s.CreateLeaf((b & 0x0f0f0f0f00000000) >> 28)
	return s.CreateInterior(nw, ne, sw, se)
}
