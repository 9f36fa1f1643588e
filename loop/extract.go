package loop

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/network"
	"github.com/katalvlaran/pipemaze/tile"
)

// Extract returns the loop through the grid's unique Start tile.
//
// Behavior:
//  1. Locate Start (grid errors propagate).
//  2. Walk from Start through each connected neighbor in N, E, S, W order.
//  3. Record each walk that returns to Start, keyed by the unordered pair
//     of start neighbors it leaves and re-enters through, so the same
//     circuit found in both directions counts once.
//  4. Zero circuits → ErrNoLoopFound; more than one → ErrAmbiguousLoop
//     unless WithFirstMatch was given.
//  5. Infer Start's shape from its two loop neighbors.
func Extract(n *network.Graph, opts ...Option) (*Loop, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start, err := n.Grid().Start()
	if err != nil {
		return nil, err
	}

	type pair struct{ a, b tile.Position }
	var (
		found []tile.Tile
		seen  = make(map[pair]struct{}, 2)
	)
	for _, first := range n.Neighbors(start.Pos) {
		path, closed, err := walk(n, start, first, o.OnStep)
		if err != nil {
			return nil, err
		}
		if !closed {
			continue
		}
		a, b := path[1].Pos, path[len(path)-1].Pos
		if b.Less(a) {
			a, b = b, a
		}
		if _, dup := seen[pair{a, b}]; dup {
			continue
		}
		seen[pair{a, b}] = struct{}{}
		if found == nil {
			found = path
			if o.FirstMatch {
				break
			}
			continue
		}

		return nil, fmt.Errorf("%w: circuits leave start via %v and %v", ErrAmbiguousLoop, found[1].Pos, first)
	}
	if found == nil {
		return nil, fmt.Errorf("%w: start at %v", ErrNoLoopFound, start.Pos)
	}

	return newLoop(found), nil
}

// walk follows the pipe from start through first until it returns to
// start or stops. The returned path begins with start and never repeats it.
// closed is false for dead ends.
func walk(n *network.Graph, start tile.Tile, first tile.Position, onStep func(tile.Tile, int) error) ([]tile.Tile, bool, error) {
	g := n.Grid()
	path := []tile.Tile{start}
	visited := map[tile.Position]bool{start.Pos: true}
	prev, cur := start.Pos, first

	for {
		t, _ := g.At(cur)
		if onStep != nil {
			if err := onStep(t, len(path)); err != nil {
				return nil, false, err
			}
		}
		path = append(path, t)
		visited[cur] = true

		next, ok := forward(n, prev, cur)
		switch {
		case !ok:
			return path, false, nil // dead end
		case next == start.Pos:
			if len(path) < 4 {
				return path, false, nil
			}
			return path, true, nil
		case visited[next]:
			return path, false, nil // runs into itself without touching start
		}
		prev, cur = cur, next
	}
}

// forward returns the single continuation from cur other than prev.
func forward(n *network.Graph, prev, cur tile.Position) (tile.Position, bool) {
	for _, q := range n.Neighbors(cur) {
		if q != prev {
			return q, true
		}
	}

	return tile.Position{}, false
}

// newLoop indexes path and infers the start tile's shape.
func newLoop(path []tile.Tile) *Loop {
	l := &Loop{
		tiles: path,
		index: make(map[tile.Position]int, len(path)),
	}
	for i, t := range path {
		l.index[t.Pos] = i
	}
	s := path[0].Pos
	d1, _ := s.DirectionTo(path[1].Pos)
	d2, _ := s.DirectionTo(path[len(path)-1].Pos)
	l.startKind, _ = tile.KindFor(d1, d2)

	return l
}
