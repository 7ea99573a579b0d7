package leaf_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/rule"
)

func TestGetSetRoundTrip(t *testing.T) {
	b := leaf.Empty
	for row := 0; row < leaf.K; row++ {
		for col := 0; col < leaf.K; col++ {
			b = leaf.Set(b, col, row, true)
			require.True(t, leaf.Get(b, col, row))
			b = leaf.Set(b, col, row, false)
			require.False(t, leaf.Get(b, col, row))
		}
	}
}

func TestPopulation(t *testing.T) {
	assert.Equal(t, 0, leaf.Population(leaf.Empty))
	assert.Equal(t, leaf.K*leaf.K, leaf.Population(leaf.Full))

	b := leaf.Set(leaf.Empty, 1, 1, true)
	b = leaf.Set(b, 5, 5, true)
	assert.Equal(t, 2, leaf.Population(b))
}

func TestCellsDontAlias(t *testing.T) {
	b := leaf.Set(leaf.Empty, 0, 0, true)
	assert.False(t, leaf.Get(b, 7, 7))
	assert.False(t, leaf.Get(b, 1, 0))
	assert.False(t, leaf.Get(b, 0, 1))
}

// naiveNeighborCount evaluates the Moore neighborhood the slow way,
// treating any coordinate outside the leaf as dead.
func naiveNeighborCount(b leaf.Bits, col, row int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := col+dx, row+dy
			if x < 0 || x >= leaf.K || y < 0 || y >= leaf.K {
				continue
			}
			if leaf.Get(b, x, y) {
				count++
			}
		}
	}
	return count
}

func naiveStep(b leaf.Bits, r rule.Rule) leaf.Bits {
	out := leaf.Empty
	for row := 0; row < leaf.K; row++ {
		for col := 0; col < leaf.K; col++ {
			n := naiveNeighborCount(b, col, row)
			alive := leaf.Get(b, col, row)
			var next bool
			if alive {
				next = r.Survival[n]
			} else {
				next = r.Birth[n]
			}
			out = leaf.Set(out, col, row, next)
		}
	}
	return out
}

// TestRuleCorrectnessAtBase is testable property #10: the bit-parallel
// evolver must agree with the naive per-cell evaluation inside the
// central 6x6 region (the region unaffected by the synthetic dead
// border both implementations impose at the 8x8 edge).
func TestRuleCorrectnessAtBase(t *testing.T) {
	r := rule.Life()
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		b := leaf.Bits(rng.Uint64())
		got := leaf.Step(b, r)
		want := naiveStep(b, r)

		for row := 1; row < leaf.K-1; row++ {
			for col := 1; col < leaf.K-1; col++ {
				assert.Equalf(t, leaf.Get(want, col, row), leaf.Get(got, col, row),
					"trial %d cell (%d,%d) bits=%#016x", trial, col, row, uint64(b))
			}
		}
	}
}

func TestStepNMatchesRepeatedStep(t *testing.T) {
	r := rule.Life()
	rng := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		b := leaf.Bits(rng.Uint64())
		n := trial % (leaf.K / 2)
		got := leaf.StepN(b, r, n)
		want := b
		for i := 0; i < n; i++ {
			want = leaf.Step(want, r)
		}
		assert.Equal(t, want, got)
	}
}

func TestStepNPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() {
		leaf.StepN(leaf.Empty, rule.Life(), leaf.K/2)
	})
}
