// Package node implements the quadtree node store: a hash-consing arena
// over interior nodes and 8x8 leaves (see package leaf), plus the
// memoized jump/step recursion that is the heart of HashLife.
//
// Jump results depend only on a node's own level, so the jump cache
// lives for the life of the store; step results depend on the current
// step cutoff and are discarded whenever it changes.
package node

import (
	"github.com/noctilu/hashlife/internal/bigpop"
	"github.com/noctilu/hashlife/leaf"
)

// Handle names a node inside a Store. The zero Handle is a valid
// handle (the first node ever created); there is no sentinel "nil"
// handle exposed to callers.
type Handle int32

// Level is the quadtree level of a node: a level-L node covers a
// 2^L x 2^L square of cells. Leaves sit at leaf.Level (3); baseLevel
// (4) is the smallest interior node, built directly from four leaves.
type Level int

const baseLevel Level = Level(leaf.Level) + 1

// BaseLevel is the smallest interior level, whose four children are
// leaves. Universe construction starts a root here.
const BaseLevel = baseLevel

type quad struct {
	NW, NE, SW, SE Handle
}

type record struct {
	isLeaf     bool
	level      Level
	bits       leaf.Bits
	children   quad
	population bigpop.P
}
