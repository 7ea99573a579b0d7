package universe_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctilu/hashlife/internal/parse"
	"github.com/noctilu/hashlife/universe"
)

// sirRobinRLE is Sir Robin, the period-6 knightship found by Tomas
// Rokicki's search in 2018, in standard RLE form.
const sirRobinRLE = `x = 40, y = 40, rule = B3/S23
4b2o$4bo2bo$4bo3bo$6b3o$2b2o6b4o$2bob2o4b4o$bo4bo6b3o$2b4o4b2o3bo$o9b
2o$bo3bo$6b3o2b2o2bo$2b2o7bo4bo$13bob2o$10b2o6bo$11b2ob3obo$10b2o3bo2b
o$10bobo2b2o$10bo2bobobo$10b3o6bo$11bobobo3bo$14b2obobo$11bo6b3o2$11bo
9bo$11bo3bo6bo$12bo5b5o$12b3o$16b2o$13b3o2bo$11bob3obo$10bo3bo2bo$11bo
4b2ob3o$13b4obo4b2o$13bob4o4b2o$19bo$20bo2b2o$20b2o$21b5o$25b2o$19b3o
6bo$20bobo3bobo$19bo3bo3bo$19bo3b2o$18bo6bob3o$19b2o3bo3b2o$20b4o2bo2b
o$22b2o3bo$21bo$21b2obo$20bo$19b5o$19bo4bo$18b3ob3o$18bob5o$18bo$20bo$
16bo4b4o$20b4ob2o$17b3o4bo$24bobo$28bo$24bo2b2o$25b3o$22b2o$21b3o5bo$
24b2o2bobo$21bo2b3obobo$22b2obo2bo$24bobo2b2o$26b2o$22b3o4bo$22b3o4bo$
23b2o3b3o$24b2ob2o$25b2o$25bo2$24b2o$26bo!
`

func loadSirRobin(t *testing.T) *universe.Universe {
	t.Helper()
	pattern, err := parse.ParseRLE(strings.NewReader(sirRobinRLE))
	require.NoError(t, err)

	u := universe.New()
	require.NoError(t, u.SetCellsAlive(pattern.Cells))
	return u
}

func assertTranslated(t *testing.T, before, after []universe.Position, dx, dy int64) {
	t.Helper()
	require.Equal(t, len(before), len(after))
	sort.Slice(before, func(i, j int) bool {
		if before[i].X != before[j].X {
			return before[i].X < before[j].X
		}
		return before[i].Y < before[j].Y
	})
	sort.Slice(after, func(i, j int) bool {
		if after[i].X != after[j].X {
			return after[i].X < after[j].X
		}
		return after[i].Y < after[j].Y
	})
	for i := range before {
		assert.Equal(t, before[i].X+dx, after[i].X, "cell %d x", i)
		assert.Equal(t, before[i].Y+dy, after[i].Y, "cell %d y", i)
	}
}

func positions(coords [][2]int64) []universe.Position {
	out := make([]universe.Position, len(coords))
	for i, c := range coords {
		out[i] = universe.Position{X: c[0], Y: c[1]}
	}
	return out
}

// TestSirRobinTranslatesPerPeriod checks the one-period displacement of
// a genuine large spaceship, not just the small glider: (-1, -2) cells
// every 6 generations.
func TestSirRobinTranslatesPerPeriod(t *testing.T) {
	u := loadSirRobin(t)
	before := positions(aliveCells(u))

	require.NoError(t, u.Step(6))

	after := positions(aliveCells(u))
	assertTranslated(t, before, after, -1, -2)
}

// TestSirRobinTranslatesOverManyPeriods exercises HashLife's whole
// point: a jump 1000 periods into the future should be as exact as one
// period, and (being a single Step call decomposed into set bits of
// 6000) exercise cutoffs well above the leaf base case.
func TestSirRobinTranslatesOverManyPeriods(t *testing.T) {
	u := loadSirRobin(t)
	before := positions(aliveCells(u))

	require.NoError(t, u.Step(6000))

	after := positions(aliveCells(u))
	assertTranslated(t, before, after, -1000, -2000)
}
