package parse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/internal/parse"
	"github.com/noctilu/hashlife/node"
	"github.com/noctilu/hashlife/rule"
	"github.com/noctilu/hashlife/universe"
)

func TestLoadMacrocellSingleLeaf(t *testing.T) {
	const src = "[M2] (hashlife 1.0)\n*.......$.*......\n"
	store := node.NewStore(rule.Life())

	root, err := parse.LoadMacrocell(strings.NewReader(src), store)
	require.NoError(t, err)

	u := universe.FromRoot(store, root, bigpop.Zero)
	assert.Equal(t, universe.Alive, u.GetCell(-4, -4))
	assert.Equal(t, universe.Alive, u.GetCell(-3, -3))
	assert.Equal(t, universe.Dead, u.GetCell(0, 0))
}

func TestLoadMacrocellInteriorRecord(t *testing.T) {
	const src = "[M2] (hashlife 1.0)\n*.......\n........\n4 0 0 1 0\n5 0 0 3 0\n"
	store := node.NewStore(rule.Life())

	root, err := parse.LoadMacrocell(strings.NewReader(src), store)
	require.NoError(t, err)
	assert.Equal(t, node.Level(5), store.Level(root))
	assert.False(t, store.Population(root).IsZero())
}

func TestLoadMacrocellMissingHeaderErrors(t *testing.T) {
	store := node.NewStore(rule.Life())
	_, err := parse.LoadMacrocell(strings.NewReader("not a macrocell file\n"), store)
	assert.Error(t, err)
}

func TestLoadMacrocellChildLevelMismatchErrors(t *testing.T) {
	const src = "[M2] (hashlife 1.0)\n*.......\n4 0 0 1 0\n6 0 0 2 0\n"
	store := node.NewStore(rule.Life())
	_, err := parse.LoadMacrocell(strings.NewReader(src), store)
	assert.Error(t, err)
}

func TestLoadMacrocellBadChildIndexErrors(t *testing.T) {
	const src = "[M2] (hashlife 1.0)\n*.......\n........\n4 0 0 99 0\n"
	store := node.NewStore(rule.Life())
	_, err := parse.LoadMacrocell(strings.NewReader(src), store)
	assert.Error(t, err)
}
