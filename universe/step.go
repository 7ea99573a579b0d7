package universe

import (
	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/node"
)

// Step advances the universe exactly n generations, decomposing n into
// its set bits and calling StepPow2 once per bit.
func (u *Universe) Step(n uint64) error {
	for k := uint8(0); n != 0; k++ {
		if n&1 != 0 {
			if err := u.StepPow2(k); err != nil {
				return err
			}
		}
		n >>= 1
	}
	return nil
}

// StepPow2 advances the universe exactly 2^k generations:
//  1. pad the root so every live cell sits within 2^(level-3) of the
//     center, keeping the advanced pattern inside the step result;
//  2. expand until the root can reach cutoff := k+2;
//  3. fix the store's step cutoff and compute the new root;
//  4. advance the generation counter by 2^k.
func (u *Universe) StepPow2(k uint8) error {
	cutoff := node.Level(k) + 2
	if cutoff > MaxLevel {
		return ErrInvalidLevel
	}

	if err := u.pad(); err != nil {
		return err
	}
	for u.store.Level(u.root) < cutoff {
		u.root = u.store.Expand(u.root)
	}

	u.store.SetStepLog2(cutoff)
	u.root = u.store.Step(u.root)
	u.generation = u.generation.Add(bigpop.Pow2(uint(k)))
	return nil
}

// pad expands the root until each quadrant's live-cell mass sits
// strictly inside that quadrant's innermost sub-sub-quadrant, i.e.
// within 2^(level-3) of the center. A step result covers only the
// root's center half, and the pattern can spread at up to half a cell
// per generation, so that margin is exactly what keeps the advanced
// pattern inside the region the step can return. The comparisons use
// the cached populations, so each check is O(1) once the root is big
// enough for the sub-sub-quadrants to exist.
func (u *Universe) pad() error {
	for u.needsPadding() {
		if u.store.Level(u.root) >= MaxLevel {
			return ErrEscape
		}
		u.root = u.store.Expand(u.root)
	}
	return nil
}

func (u *Universe) needsPadding() bool {
	s := u.store
	if s.Level(u.root) < node.BaseLevel+2 {
		return true
	}
	nw, ne, sw, se := s.Children(u.root)
	return s.Population(nw) != s.Population(s.SE(s.SE(nw))) ||
		s.Population(ne) != s.Population(s.SW(s.SW(ne))) ||
		s.Population(sw) != s.Population(s.NE(s.NE(sw))) ||
		s.Population(se) != s.Population(s.NW(s.NW(se)))
}
