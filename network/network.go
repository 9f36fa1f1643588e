// Package network derives the connectivity graph of a pipe maze.
//
// What:
//
//   - One node per pipe tile (Ground tiles carry no edges and are left out).
//   - An edge a→b exists when a's kind opens towards b and b's kind opens
//     back towards a. Start opens towards all four directions, so an edge
//     leaving Start only needs the neighbor to point back at it.
//   - Edges are therefore always symmetric; the graph is stored as a plain
//     adjacency list keyed by position.
//
// Why a dedicated structure instead of a general graph: every structural
// tile has at most two edges and Start at most four, so a position-keyed
// adjacency list is all the loop walk and the component scan need.
//
// Complexity:
//
//   - Build:      O(W×H×4) time, O(W×H) memory.
//   - Neighbors:  O(1).
//   - Components: O(V+E).
package network

import (
	"sort"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/tile"
)

// Graph is the immutable connectivity graph of one grid.
type Graph struct {
	grid *grid.Grid
	// adj[p] lists the positions p connects to in N, E, S, W order.
	adj   map[tile.Position][]tile.Position
	edges int
}

// Build computes the connectivity graph of g. It has no error conditions:
// a grid without any mutually facing pipes yields an edgeless graph.
func Build(g *grid.Grid) *Graph {
	n := &Graph{
		grid: g,
		adj:  make(map[tile.Position][]tile.Position),
	}
	for _, t := range g.Tiles() {
		if !t.Kind.IsPipe() {
			continue
		}
		var out []tile.Position
		for _, q := range t.Neighbors() {
			u, ok := g.At(q)
			if !ok || !u.Kind.IsPipe() {
				continue // outside grid, past a short row, or Ground
			}
			if u.ConnectsTo(t.Pos) {
				out = append(out, q)
			}
		}
		n.adj[t.Pos] = out
		n.edges += len(out)
	}

	return n
}

// Grid returns the grid the graph was built from.
func (n *Graph) Grid() *grid.Grid { return n.grid }

// Neighbors returns a copy of the positions p connects to, in N, E, S, W order.
// Unknown or Ground positions return nil.
func (n *Graph) Neighbors(p tile.Position) []tile.Position {
	out := n.adj[p]
	if len(out) == 0 {
		return nil
	}

	return append([]tile.Position(nil), out...)
}

// Degree returns the number of edges leaving p.
func (n *Graph) Degree(p tile.Position) int { return len(n.adj[p]) }

// HasEdge reports whether a connects to b.
func (n *Graph) HasEdge(a, b tile.Position) bool {
	for _, q := range n.adj[a] {
		if q == b {
			return true
		}
	}

	return false
}

// HasNode reports whether p is a pipe tile of the graph.
func (n *Graph) HasNode(p tile.Position) bool {
	_, ok := n.adj[p]

	return ok
}

// Nodes returns every pipe tile position in row-major order.
func (n *Graph) Nodes() []tile.Position {
	out := make([]tile.Position, 0, len(n.adj))
	for p := range n.adj {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// EdgeCount returns the number of undirected edges.
func (n *Graph) EdgeCount() int { return n.edges / 2 }
