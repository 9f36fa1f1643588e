package loop

import "github.com/katalvlaran/pipemaze/tile"

// Len returns the number of tiles on the loop, Start counted once.
func (l *Loop) Len() int { return len(l.tiles) }

// HalfLength returns the farthest along-loop distance from Start, Len()/2.
func (l *Loop) HalfLength() int { return len(l.tiles) / 2 }

// Start returns the start tile as it appeared in the grid (Kind == tile.Start).
func (l *Loop) Start() tile.Tile { return l.tiles[0] }

// StartKind returns the structural shape inferred for Start from its two
// loop neighbors.
func (l *Loop) StartKind() tile.PipeKind { return l.startKind }

// Tiles returns a copy of the loop tiles in walk order, beginning at Start.
func (l *Loop) Tiles() []tile.Tile {
	return append([]tile.Tile(nil), l.tiles...)
}

// Positions returns the loop tile positions in walk order.
func (l *Loop) Positions() []tile.Position {
	out := make([]tile.Position, len(l.tiles))
	for i, t := range l.tiles {
		out[i] = t.Pos
	}

	return out
}

// Contains reports whether p lies on the loop.
func (l *Loop) Contains(p tile.Position) bool {
	_, ok := l.index[p]

	return ok
}

// Kind returns the kind of the loop tile at p, substituting StartKind for
// Start. ok is false when p is not on the loop.
func (l *Loop) Kind(p tile.Position) (tile.PipeKind, bool) {
	i, ok := l.index[p]
	if !ok {
		return tile.Ground, false
	}
	if i == 0 {
		return l.startKind, true
	}

	return l.tiles[i].Kind, true
}

// Index returns the walk order index of p (0 for Start).
func (l *Loop) Index(p tile.Position) (int, bool) {
	i, ok := l.index[p]

	return i, ok
}

// Distance returns the fewest steps along the loop from Start to p.
// Complexity: O(1).
func (l *Loop) Distance(p tile.Position) (int, bool) {
	i, ok := l.index[p]
	if !ok {
		return 0, false
	}

	return min(i, len(l.tiles)-i), true
}

// Farthest returns the loop tiles at distance HalfLength from Start: one
// tile for even loops, which is every loop on a square grid.
func (l *Loop) Farthest() []tile.Tile {
	h := l.HalfLength()
	var out []tile.Tile
	for i, t := range l.tiles {
		if min(i, len(l.tiles)-i) == h {
			out = append(out, t)
		}
	}

	return out
}
