package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tile"
)

// TestParse_Square checks dimensions, lookups and the start tile on scenario A.
func TestParse_Square(t *testing.T) {
	g, err := grid.Parse([]string{"S-7", "|.|", "L-J"})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 9, g.Len())

	s, err := g.Start()
	require.NoError(t, err)
	assert.Equal(t, tile.Tile{Pos: tile.Pos(0, 0), Kind: tile.Start}, s)

	got, ok := g.At(tile.Pos(2, 2))
	require.True(t, ok)
	assert.Equal(t, tile.NorthWest, got.Kind)

	_, ok = g.At(tile.Pos(3, 0))
	assert.False(t, ok)
}

// TestParse_UnrecognizedSymbol verifies "S-X" fails at column 2 with both sentinels.
func TestParse_UnrecognizedSymbol(t *testing.T) {
	_, err := grid.Parse([]string{"S-X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, grid.ErrMalformedGrid))
	assert.True(t, errors.Is(err, tile.ErrUnrecognizedSymbol))

	var se *tile.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 0, se.Row)
	assert.Equal(t, 2, se.Col)
	assert.Equal(t, 'X', se.Symbol)
}

// TestParse_ErrorNamesRow checks the row shows up for lines past the first.
func TestParse_ErrorNamesRow(t *testing.T) {
	_, err := grid.Parse([]string{"S-7", "|#|", "L-J"})
	var se *tile.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 1, se.Row)
	assert.Equal(t, 1, se.Col)
	assert.Contains(t, err.Error(), "row 1")
}

func TestParse_Empty(t *testing.T) {
	_, err := grid.Parse(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestParse_Ragged accepts rows of differing length without padding.
func TestParse_Ragged(t *testing.T) {
	g, err := grid.Parse([]string{"S-7", "|", "L-J."})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 8, g.Len())
	assert.True(t, g.Has(tile.Pos(1, 0)))
	assert.False(t, g.Has(tile.Pos(1, 2)))
	assert.Equal(t, []string{"S-7", "|", "L-J."}, g.Lines())
}

func TestStart_Invariant(t *testing.T) {
	_, err := grid.MustParse("...", "...").Start()
	assert.ErrorIs(t, err, grid.ErrNoStart)

	_, err = grid.MustParse("S..", "..S").Start()
	assert.ErrorIs(t, err, grid.ErrMultipleStarts)
}

// TestMask replaces everything outside the kept set with Ground.
func TestMask(t *testing.T) {
	g := grid.MustParse("S-7F", "|.||", "L-JL")
	keep := map[tile.Position]bool{
		tile.Pos(0, 0): true, tile.Pos(0, 1): true, tile.Pos(0, 2): true,
		tile.Pos(1, 0): true, tile.Pos(1, 2): true,
		tile.Pos(2, 0): true, tile.Pos(2, 1): true, tile.Pos(2, 2): true,
	}
	m := g.Mask(func(p tile.Position) bool { return keep[p] })

	want := []string{"S-7.", "|.|.", "L-J."}
	if diff := cmp.Diff(want, m.Lines()); diff != "" {
		t.Errorf("Mask lines mismatch (-want +got):\n%s", diff)
	}
	// original untouched
	assert.Equal(t, "S-7F\n|.||\nL-JL", g.String())

	s, err := m.Start()
	require.NoError(t, err)
	assert.Equal(t, tile.Pos(0, 0), s.Pos)
}

func TestTiles_RowMajor(t *testing.T) {
	g := grid.MustParse("S7", "LJ")
	var got []tile.Position
	for _, tl := range g.Tiles() {
		got = append(got, tl.Pos)
	}
	want := []tile.Position{tile.Pos(0, 0), tile.Pos(0, 1), tile.Pos(1, 0), tile.Pos(1, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tiles order mismatch (-want +got):\n%s", diff)
	}
}
