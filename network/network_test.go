package network_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/network"
	"github.com/katalvlaran/pipemaze/tile"
)

// TestBuild_Square checks that every tile of the 3×3 ring has two edges
// and the centre Ground tile is not a node.
func TestBuild_Square(t *testing.T) {
	n := network.Build(grid.MustParse("S-7", "|.|", "L-J"))

	assert.Equal(t, 8, len(n.Nodes()))
	assert.Equal(t, 8, n.EdgeCount())
	for _, p := range n.Nodes() {
		assert.Equal(t, 2, n.Degree(p), "degree of %v", p)
	}
	assert.False(t, n.HasNode(tile.Pos(1, 1)))
	assert.Equal(t, []tile.Position{tile.Pos(0, 1), tile.Pos(1, 0)}, n.Neighbors(tile.Pos(0, 0)))
}

// TestBuild_Symmetric verifies every edge has its reverse, including the
// ones touching Start.
func TestBuild_Symmetric(t *testing.T) {
	n := network.Build(grid.MustParse(
		"7-F7-",
		".FJ|7",
		"SJLL7",
		"|F--J",
		"LJ.LJ",
	))
	for _, a := range n.Nodes() {
		for _, b := range n.Neighbors(a) {
			assert.True(t, n.HasEdge(b, a), "missing reverse of %v→%v", a, b)
		}
	}
}

// TestBuild_StartRequiresNeighborToFaceBack: a Start surrounded by pipes that
// do not open towards it has no edges.
func TestBuild_StartRequiresNeighborToFaceBack(t *testing.T) {
	n := network.Build(grid.MustParse(
		".|.",
		"-S-",
		".|.",
	))
	// '-' west of S opens east towards S; '|' north of S opens south towards S.
	assert.Equal(t, 4, n.Degree(tile.Pos(1, 1)))

	n = network.Build(grid.MustParse(
		".-.",
		"|S|",
		".-.",
	))
	assert.Equal(t, 0, n.Degree(tile.Pos(1, 1)))
	assert.Nil(t, n.Neighbors(tile.Pos(1, 1)))
}

// TestBuild_NoEdgeToGround: a structural pipe pointing at Ground gets no edge.
func TestBuild_NoEdgeToGround(t *testing.T) {
	n := network.Build(grid.MustParse("-.-"))
	assert.Equal(t, 0, n.EdgeCount())
	assert.Equal(t, 2, len(n.Nodes()))
}

func TestBuild_AllGround(t *testing.T) {
	n := network.Build(grid.MustParse("...", "..."))
	assert.Empty(t, n.Nodes())
	assert.Equal(t, 0, n.EdgeCount())
	assert.Empty(t, n.Components())
}

// TestBuild_RaggedRows treats a missing column like an out-of-bounds cell.
func TestBuild_RaggedRows(t *testing.T) {
	n := network.Build(grid.MustParse("F-7", "|", "L-J"))
	// (0,2) '7' points south at (1,2), which does not exist.
	assert.False(t, n.HasEdge(tile.Pos(0, 2), tile.Pos(1, 2)))
	assert.Equal(t, 1, n.Degree(tile.Pos(0, 2)))
}

// TestComponents separates the loop from debris.
func TestComponents(t *testing.T) {
	n := network.Build(grid.MustParse(
		"S-7.F7",
		"|.|.LJ",
		"L-J.|.",
	))
	comps := n.Components()
	require.Len(t, comps, 3)

	sizes := []int{len(comps[0]), len(comps[1]), len(comps[2])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 4, 8}, sizes)
	assert.Equal(t, tile.Pos(0, 0), comps[0][0], "first component seeds at the top-left pipe")
}
