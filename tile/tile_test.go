package tile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipemaze/tile"
)

// TestKindOf_AllSymbols checks the symbol table both ways.
func TestKindOf_AllSymbols(t *testing.T) {
	cases := []struct {
		r    rune
		want tile.PipeKind
	}{
		{'S', tile.Start},
		{'|', tile.Vertical},
		{'-', tile.Horizontal},
		{'L', tile.NorthEast},
		{'J', tile.NorthWest},
		{'F', tile.SouthEast},
		{'7', tile.SouthWest},
		{'.', tile.Ground},
	}
	for _, tc := range cases {
		k, err := tile.KindOf(tc.r)
		require.NoError(t, err, "symbol %q", tc.r)
		assert.Equal(t, tc.want, k)
		assert.Equal(t, tc.r, k.Symbol())
	}

	_, err := tile.KindOf('X')
	assert.ErrorIs(t, err, tile.ErrUnrecognizedSymbol)
}

// TestNew_UnrecognizedSymbol verifies the error carries symbol and column.
func TestNew_UnrecognizedSymbol(t *testing.T) {
	_, err := tile.New('X', tile.Pos(0, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, tile.ErrUnrecognizedSymbol))

	var se *tile.SymbolError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 'X', se.Symbol)
	assert.Equal(t, 2, se.Col)
	assert.Contains(t, err.Error(), "column 2")
}

// TestDirections_PerKind pins the connection rules of every kind.
func TestDirections_PerKind(t *testing.T) {
	assert.Equal(t, []tile.Direction{tile.North, tile.South}, tile.Vertical.Directions())
	assert.Equal(t, []tile.Direction{tile.East, tile.West}, tile.Horizontal.Directions())
	assert.Equal(t, []tile.Direction{tile.North, tile.East}, tile.NorthEast.Directions())
	assert.Equal(t, []tile.Direction{tile.North, tile.West}, tile.NorthWest.Directions())
	assert.Equal(t, []tile.Direction{tile.East, tile.South}, tile.SouthEast.Directions())
	assert.Equal(t, []tile.Direction{tile.South, tile.West}, tile.SouthWest.Directions())
	assert.Len(t, tile.Start.Directions(), 4)
	assert.Empty(t, tile.Ground.Directions())

	for k := tile.Vertical; k <= tile.SouthWest; k++ {
		assert.Len(t, k.Directions(), 2, k.String())
	}
}

// TestNeighbors_ClipsNegative makes sure corner tiles never produce negative positions.
func TestNeighbors_ClipsNegative(t *testing.T) {
	s := tile.Tile{Pos: tile.Pos(0, 0), Kind: tile.Start}
	assert.Equal(t, []tile.Position{tile.Pos(0, 1), tile.Pos(1, 0)}, s.Neighbors())

	j := tile.Tile{Pos: tile.Pos(0, 0), Kind: tile.NorthWest}
	assert.Empty(t, j.Neighbors())

	v := tile.Tile{Pos: tile.Pos(3, 4), Kind: tile.Vertical}
	assert.Equal(t, []tile.Position{tile.Pos(2, 4), tile.Pos(4, 4)}, v.Neighbors())

	g := tile.Tile{Pos: tile.Pos(3, 4), Kind: tile.Ground}
	assert.Nil(t, g.Neighbors())
}

func TestKindFor(t *testing.T) {
	cases := []struct {
		a, b tile.Direction
		want tile.PipeKind
	}{
		{tile.North, tile.South, tile.Vertical},
		{tile.West, tile.East, tile.Horizontal},
		{tile.East, tile.North, tile.NorthEast},
		{tile.North, tile.West, tile.NorthWest},
		{tile.South, tile.East, tile.SouthEast},
		{tile.West, tile.South, tile.SouthWest},
	}
	for _, tc := range cases {
		k, ok := tile.KindFor(tc.a, tc.b)
		require.True(t, ok)
		assert.Equal(t, tc.want, k)
	}
	_, ok := tile.KindFor(tile.North, tile.North)
	assert.False(t, ok)
}

func TestPosition_DirectionTo(t *testing.T) {
	p := tile.Pos(2, 2)
	for _, d := range tile.Directions {
		q, ok := p.Step(d)
		require.True(t, ok)
		got, ok := p.DirectionTo(q)
		require.True(t, ok)
		assert.Equal(t, d, got)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	_, ok := p.DirectionTo(tile.Pos(3, 3))
	assert.False(t, ok, "diagonal is not adjacent")

	_, ok = tile.Pos(0, 5).Step(tile.North)
	assert.False(t, ok)
}

func TestTile_ConnectsTo(t *testing.T) {
	f := tile.Tile{Pos: tile.Pos(1, 1), Kind: tile.SouthEast}
	assert.True(t, f.ConnectsTo(tile.Pos(1, 2)))
	assert.True(t, f.ConnectsTo(tile.Pos(2, 1)))
	assert.False(t, f.ConnectsTo(tile.Pos(0, 1)))
	assert.False(t, f.ConnectsTo(tile.Pos(1, 1)))
	assert.Equal(t, "F@(1,1)", f.String())
}
