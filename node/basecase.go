package node

import (
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/rule"
)

// A single-cell-leaf HashLife can subdivide nodes all the way down to
// level 0. Our leaves are already 8x8 blocks (leaf.Level == 3), so the
// subregion-extraction trick in recursion.go stops working two levels
// above them: a level-4 node's children are leaves, and leaves cannot
// be subdivided by Children. advanceBase handles exactly the levels
// where that wall is hit (baseLevel and baseLevel+1) by stitching the
// node's leaves into one flat bitmap and running leaf.Step's
// half-adder arithmetic over it directly, generalized to a row array
// instead of a single machine word.
const maxBaseLevel = baseLevel + 1

// advanceBase advances h, a node at baseLevel or baseLevel+1, by
// 2^(cutoff-2) generations and returns the level(h)-1 node covering its
// reliable center.
func (s *Store) advanceBase(h Handle, cutoff Level) Handle {
	grid := s.leafGrid(h)
	width := len(grid) * leaf.K
	gens := 1 << uint(cutoff-2)

	rows := bitsToRows(grid)
	rows = evolveRows(rows, width, s.rule, gens)
	outGrid := rowsToLeafGrid(rows, len(grid)/2)

	return s.assembleGrid(outGrid)
}

// leafGrid flattens h (at baseLevel or baseLevel+1) into a square grid
// of leaf bitmaps in row-major order.
func (s *Store) leafGrid(h Handle) [][]leaf.Bits {
	if s.Level(h) == Level(leaf.Level) {
		return [][]leaf.Bits{{s.Bits(h)}}
	}
	nw, ne, sw, se := s.Children(h)
	top := hstack(s.leafGrid(nw), s.leafGrid(ne))
	bottom := hstack(s.leafGrid(sw), s.leafGrid(se))
	return append(top, bottom...)
}

func hstack(west, east [][]leaf.Bits) [][]leaf.Bits {
	out := make([][]leaf.Bits, len(west))
	for r := range west {
		row := make([]leaf.Bits, 0, len(west[r])+len(east[r]))
		row = append(row, west[r]...)
		row = append(row, east[r]...)
		out[r] = row
	}
	return out
}

// assembleGrid rebuilds a node from a square grid of leaf bitmaps, the
// inverse of leafGrid.
func (s *Store) assembleGrid(grid [][]leaf.Bits) Handle {
	n := len(grid)
	if n == 1 {
		return s.CreateLeaf(grid[0][0])
	}
	half := n / 2
	nw := s.assembleGrid(subGrid(grid, 0, 0, half))
	ne := s.assembleGrid(subGrid(grid, 0, half, half))
	sw := s.assembleGrid(subGrid(grid, half, 0, half))
	se := s.assembleGrid(subGrid(grid, half, half, half))
	return s.CreateInterior(nw, ne, sw, se)
}

func subGrid(grid [][]leaf.Bits, rowOff, colOff, size int) [][]leaf.Bits {
	out := make([][]leaf.Bits, size)
	for r := 0; r < size; r++ {
		out[r] = append([]leaf.Bits(nil), grid[rowOff+r][colOff:colOff+size]...)
	}
	return out
}

// bitsToRows packs an NxN grid of leaves into a row-major array of
// N*leaf.K bits each, using the same "column 0 is the most significant
// bit" convention as a single leaf.Bits row.
func bitsToRows(grid [][]leaf.Bits) []uint64 {
	n := len(grid)
	width := n * leaf.K
	rows := make([]uint64, width)
	for br := 0; br < n; br++ {
		for bc := 0; bc < n; bc++ {
			b := uint64(grid[br][bc])
			lowBit := width - (bc+1)*leaf.K
			for lr := 0; lr < leaf.K; lr++ {
				chunk := (b >> uint(lr*leaf.K)) & (1<<leaf.K - 1)
				rows[br*leaf.K+lr] |= chunk << uint(lowBit)
			}
		}
	}
	return rows
}

// rowsToLeafGrid extracts the reliable center square of an evolved row
// array (one quarter of the total area, offset one quarter in from
// each edge) back into a grid of leaf bitmaps half the original side.
func rowsToLeafGrid(rows []uint64, sideLeaves int) [][]leaf.Bits {
	width := len(rows)
	offset := width / 4
	out := make([][]leaf.Bits, sideLeaves)
	for br := 0; br < sideLeaves; br++ {
		out[br] = make([]leaf.Bits, sideLeaves)
		for bc := 0; bc < sideLeaves; bc++ {
			lowBit := width - offset - (bc+1)*leaf.K
			var b leaf.Bits
			for lr := 0; lr < leaf.K; lr++ {
				absRow := offset + br*leaf.K + lr
				chunk := (rows[absRow] >> uint(lowBit)) & (1<<leaf.K - 1)
				b |= leaf.Bits(chunk) << uint(lr*leaf.K)
			}
			out[br][bc] = b
		}
	}
	return out
}

// evolveRows advances a width-bit-wide row array by gens generations
// under r, treating cells outside the array as dead.
func evolveRows(rows []uint64, width int, r rule.Rule, gens int) []uint64 {
	mask := uint64(1)<<uint(width) - 1
	cur := append([]uint64(nil), rows...)
	for g := 0; g < gens; g++ {
		next := make([]uint64, len(cur))
		for i := range cur {
			var n, s uint64
			if i > 0 {
				n = cur[i-1]
			}
			if i < len(cur)-1 {
				s = cur[i+1]
			}
			alive := cur[i]
			dead := ^alive & mask

			w := (alive << 1) & mask
			e := alive >> 1
			nw := (n << 1) & mask
			ne := n >> 1
			sw := (s << 1) & mask
			se := s >> 1

			counts := sum9(n, s, w, e, nw, ne, sw, se)

			var out uint64
			for k := 0; k <= 8; k++ {
				if r.Birth[k] {
					out |= dead & counts[k]
				}
				if r.Survival[k] {
					out |= alive & counts[k]
				}
			}
			next[i] = out & mask
		}
		cur = next
	}
	return cur
}

// sum9 mirrors leaf.Step's half-adder bit histogram, generalized from
// a single 64-bit word to the wider row array this file stitches
// together from several leaves.
func sum9(addends ...uint64) [9]uint64 {
	var d [4]uint64
	for _, a := range addends {
		c0 := d[0] & a
		d[0] ^= a
		c1 := d[1] & c0
		d[1] ^= c0
		c2 := d[2] & c1
		d[2] ^= c1
		d[3] |= c2
	}
	a0, b0, c0, d0 := ^d[0], ^d[1], ^d[2], ^d[3]
	a1, b1, c1, d1 := d[0], d[1], d[2], d[3]
	return [9]uint64{
		d0 & c0 & b0 & a0,
		d0 & c0 & b0 & a1,
		d0 & c0 & b1 & a0,
		d0 & c0 & b1 & a1,
		d0 & c1 & b0 & a0,
		d0 & c1 & b0 & a1,
		d0 & c1 & b1 & a0,
		d0 & c1 & b1 & a1,
		d1 & c0 & b0 & a0,
	}
}
