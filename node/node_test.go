package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/leaf"
	"github.com/noctilu/hashlife/node"
	"github.com/noctilu/hashlife/rule"
)

func TestCreateLeafInterning(t *testing.T) {
	s := node.NewStore(rule.Life())
	a := s.CreateLeaf(leaf.Set(leaf.Empty, 0, 0, true))
	b := s.CreateLeaf(leaf.Set(leaf.Empty, 0, 0, true))
	assert.Equal(t, a, b)

	c := s.CreateLeaf(leaf.Set(leaf.Empty, 1, 0, true))
	assert.NotEqual(t, a, c)
}

func TestCreateInteriorInterning(t *testing.T) {
	s := node.NewStore(rule.Life())
	e := s.Empty(node.Level(leaf.Level))
	a := s.CreateInterior(e, e, e, e)
	b := s.CreateInterior(e, e, e, e)
	assert.Equal(t, a, b)
}

func TestCreateInteriorLevelMismatchPanics(t *testing.T) {
	s := node.NewStore(rule.Life())
	leafH := s.CreateLeaf(leaf.Empty)
	interior := s.CreateInterior(leafH, leafH, leafH, leafH)
	assert.Panics(t, func() {
		s.CreateInterior(leafH, interior, leafH, leafH)
	})
}

func TestChildrenPanicsOnLeaf(t *testing.T) {
	s := node.NewStore(rule.Life())
	leafH := s.CreateLeaf(leaf.Empty)
	assert.Panics(t, func() {
		s.Children(leafH)
	})
}

func TestEmptyUniquePerLevel(t *testing.T) {
	s := node.NewStore(rule.Life())
	e4a := s.Empty(4)
	e4b := s.Empty(4)
	assert.Equal(t, e4a, e4b)

	e5 := s.Empty(5)
	assert.NotEqual(t, e4a, e5)
	assert.True(t, s.Population(e5).IsZero())
	assert.Equal(t, node.Level(5), s.Level(e5))
}

func TestPopulationAdditivity(t *testing.T) {
	s := node.NewStore(rule.Life())
	a := s.CreateLeaf(leaf.Set(leaf.Empty, 0, 0, true))
	b := s.CreateLeaf(leaf.Set(leaf.Set(leaf.Empty, 1, 1, true), 2, 2, true))
	e := s.CreateLeaf(leaf.Empty)
	interior := s.CreateInterior(a, b, e, e)
	assert.Equal(t, bigpop.FromUint64(3), s.Population(interior))
}
