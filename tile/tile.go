package tile

// Tile is one grid cell: a pipe kind at a fixed position. Tiles are values
// and never change after parsing.
type Tile struct {
	Pos  Position
	Kind PipeKind
}

// New builds the Tile for character r at pos.
// Unknown characters yield a *SymbolError naming r and pos.Col.
func New(r rune, pos Position) (Tile, error) {
	k, err := KindOf(r)
	if err != nil {
		return Tile{}, &SymbolError{Symbol: r, Row: pos.Row, Col: pos.Col}
	}

	return Tile{Pos: pos, Kind: k}, nil
}

// Neighbors returns the absolute positions t's kind connects to, in
// N, E, S, W order. Positions with a negative coordinate are dropped, so a
// Start tile in the top-left corner yields only its east and south cells.
// Complexity: O(1).
func (t Tile) Neighbors() []Position {
	if !t.Kind.Valid() {
		return nil
	}
	dirs := kinds[t.Kind].dirs
	if len(dirs) == 0 {
		return nil
	}
	out := make([]Position, 0, len(dirs))
	for _, d := range dirs {
		if q, ok := t.Pos.Step(d); ok {
			out = append(out, q)
		}
	}

	return out
}

// ConnectsTo reports whether q is one of t's candidate neighbors.
func (t Tile) ConnectsTo(q Position) bool {
	d, ok := t.Pos.DirectionTo(q)
	if !ok {
		return false
	}

	return t.Kind.Connects(d)
}

// String renders the tile as "<symbol>@(row,col)".
func (t Tile) String() string {
	return string(t.Kind.Symbol()) + "@" + t.Pos.String()
}
