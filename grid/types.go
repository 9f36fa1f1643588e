// Package grid defines the parsed pipe maze: a total mapping from Position
// to Tile for every character of the input, plus the sentinel errors raised
// while building it.
package grid

import (
	"errors"

	"github.com/katalvlaran/pipemaze/tile"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no lines.
	ErrEmptyGrid = errors.New("grid: input must have at least one line")
	// ErrMalformedGrid indicates a line holds a character that is not a pipe symbol.
	// It always wraps a *tile.SymbolError carrying row and column.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrNoStart indicates the grid holds no 'S' tile.
	ErrNoStart = errors.New("grid: no start tile")
	// ErrMultipleStarts indicates the grid holds more than one 'S' tile.
	ErrMultipleStarts = errors.New("grid: more than one start tile")
)

// Grid is an immutable position-indexed tile map.
// Rows may differ in length; a column beyond the end of its row is simply
// absent, exactly like a position outside the grid.
type Grid struct {
	// rows[r][c] is the tile at Position{r, c}; kept for row-major iteration.
	rows [][]tile.Tile
	// tiles indexes every tile by position.
	tiles map[tile.Position]tile.Tile
	// starts lists every Start tile in row-major order.
	starts []tile.Position
	// width is the length of the longest row.
	width int
}
