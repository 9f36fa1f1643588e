package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pipemaze/tile"
)

// Parse builds a Grid from text lines, top to bottom. Row index is the line
// index and column index is the rune offset within the line.
// Returns ErrEmptyGrid for no lines and an error wrapping both
// ErrMalformedGrid and the *tile.SymbolError for the first bad character.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:  make([][]tile.Tile, len(lines)),
		tiles: make(map[tile.Position]tile.Tile, len(lines)*len(lines[0])),
	}
	for r, line := range lines {
		row := make([]tile.Tile, 0, len(line))
		c := 0
		for _, ch := range line {
			t, err := tile.New(ch, tile.Pos(r, c))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedGrid, r, err)
			}
			if t.Kind == tile.Start {
				g.starts = append(g.starts, t.Pos)
			}
			row = append(row, t)
			g.tiles[t.Pos] = t
			c++
		}
		g.rows[r] = row
		if c > g.width {
			g.width = c
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}

	return g
}

// At returns the tile at p. ok is false when p is outside the grid or past
// the end of its row.
// Complexity: O(1).
func (g *Grid) At(p tile.Position) (tile.Tile, bool) {
	t, ok := g.tiles[p]

	return t, ok
}

// Has reports whether p names a cell of the grid.
func (g *Grid) Has(p tile.Position) bool {
	_, ok := g.tiles[p]

	return ok
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Width returns the length of the longest row.
func (g *Grid) Width() int { return g.width }

// Len returns the number of cells, which for ragged grids is less than Height×Width.
func (g *Grid) Len() int { return len(g.tiles) }

// Tiles returns all tiles in row-major order.
// Complexity: O(W×H).
func (g *Grid) Tiles() []tile.Tile {
	out := make([]tile.Tile, 0, len(g.tiles))
	for _, row := range g.rows {
		out = append(out, row...)
	}

	return out
}

// Start returns the unique Start tile.
// Returns ErrNoStart or ErrMultipleStarts when the grid breaks that invariant.
func (g *Grid) Start() (tile.Tile, error) {
	switch len(g.starts) {
	case 0:
		return tile.Tile{}, ErrNoStart
	case 1:
		return g.tiles[g.starts[0]], nil
	default:
		return tile.Tile{}, fmt.Errorf("%w: found %d at %v", ErrMultipleStarts, len(g.starts), g.starts)
	}
}

// Mask returns a copy of g where every tile for which keep returns false is
// replaced by Ground. Row lengths are preserved.
// Complexity: O(W×H).
func (g *Grid) Mask(keep func(tile.Position) bool) *Grid {
	out := &Grid{
		rows:  make([][]tile.Tile, len(g.rows)),
		tiles: make(map[tile.Position]tile.Tile, len(g.tiles)),
		width: g.width,
	}
	for r, row := range g.rows {
		cp := make([]tile.Tile, len(row))
		for c, t := range row {
			if !keep(t.Pos) {
				t.Kind = tile.Ground
			}
			if t.Kind == tile.Start {
				out.starts = append(out.starts, t.Pos)
			}
			cp[c] = t
			out.tiles[t.Pos] = t
		}
		out.rows[r] = cp
	}

	return out
}

// Lines renders the grid back to its text form.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.rows))
	var sb strings.Builder
	for r, row := range g.rows {
		sb.Reset()
		for _, t := range row {
			sb.WriteRune(t.Kind.Symbol())
		}
		out[r] = sb.String()
	}

	return out
}

// String implements fmt.Stringer as the newline-joined Lines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
