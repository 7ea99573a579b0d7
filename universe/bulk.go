package universe

import (
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/node"
)

// SetCellsAlive sets every coordinate in coords alive in a single
// pass, partitioning coords by quadrant at each level (two in-place
// quickselect-style partitions per level) instead of walking the tree
// once per coordinate. coords is not mutated in its original order;
// a private copy is partitioned internally.
func (u *Universe) SetCellsAlive(coords []Position) error {
	if len(coords) == 0 {
		return nil
	}
	for _, p := range coords {
		if err := u.ensureInRange(p); err != nil {
			return err
		}
	}
	buf := append([]Position(nil), coords...)
	u.root = setCellsAlive(u.store, u.root, buf, 0, 0)
	return nil
}

func setCellsAlive(s *node.Store, h node.Handle, coords []Position, offsetX, offsetY int64) node.Handle {
	if len(coords) == 0 {
		return h
	}
	if s.IsLeaf(h) {
		bits := s.Bits(h)
		for _, p := range coords {
			col := int(p.X-offsetX) + leaf.K/2
			row := int(p.Y-offsetY) + leaf.K/2
			bits = leaf.Set(bits, col, row, true)
		}
		return s.CreateLeaf(bits)
	}

	offset := int64(1) << uint(s.Level(h)-2)

	vertCut := partitionVert(coords, offsetY)
	north, south := coords[:vertCut], coords[vertCut:]
	horizCutN := partitionHoriz(north, offsetX)
	nwCoords, neCoords := north[:horizCutN], north[horizCutN:]
	horizCutS := partitionHoriz(south, offsetX)
	swCoords, seCoords := south[:horizCutS], south[horizCutS:]

	nw0, ne0, sw0, se0 := s.Children(h)
	nw := setCellsAlive(s, nw0, nwCoords, offsetX-offset, offsetY-offset)
	ne := setCellsAlive(s, ne0, neCoords, offsetX+offset, offsetY-offset)
	sw := setCellsAlive(s, sw0, swCoords, offsetX-offset, offsetY+offset)
	se := setCellsAlive(s, se0, seCoords, offsetX+offset, offsetY+offset)
	return s.CreateInterior(nw, ne, sw, se)
}

// partitionHoriz reorders coords in place so every element with X <
// pivot comes first, and returns the split index.
func partitionHoriz(coords []Position, pivot int64) int {
	next := 0
	for i := range coords {
		if coords[i].X < pivot {
			coords[i], coords[next] = coords[next], coords[i]
			next++
		}
	}
	return next
}

// partitionVert reorders coords in place so every element with Y <
// pivot comes first, and returns the split index.
func partitionVert(coords []Position, pivot int64) int {
	next := 0
	for i := range coords {
		if coords[i].Y < pivot {
			coords[i], coords[next] = coords[next], coords[i]
			next++
		}
	}
	return next
}
