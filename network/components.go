package network

import "github.com/katalvlaran/pipemaze/tile"

// Components groups connected pipe tiles: the loop's cluster as well as
// every piece of disconnected debris. Isolated pipes form single-tile
// components. Components are seeded in row-major order and each lists its
// positions in BFS discovery order.
//
// Time:   O(V+E).
// Memory: O(V) for the seen set and output.
func (n *Graph) Components() [][]tile.Position {
	seen := make(map[tile.Position]bool, len(n.adj))
	var comps [][]tile.Position

	for _, p0 := range n.Nodes() {
		if seen[p0] {
			continue
		}
		queue := []tile.Position{p0}
		seen[p0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range n.adj[queue[qi]] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}
