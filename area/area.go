// Package area counts the grid cells strictly enclosed by a pipe loop.
//
// Two formulations are provided and always agree:
//
//   - Interior applies the shoelace formula to the loop's tile centres and
//     converts the polygon area to an interior lattice point count with
//     Pick's theorem: I = A - B/2 + 1, where B is the loop length. O(L).
//   - Enclosed scans every row of the loop's bounding box with the even-odd
//     rule, toggling on loop tiles that open to the north. Loop tiles are
//     excluded by membership, never by parity. O(W×H) over the box, and the
//     only form that yields the cells themselves.
//
// Interior-ness is purely geometric: pipe debris inside the loop counts.
package area

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/tile"
)

// DoubledArea returns twice the signed shoelace area of the polygon through
// the loop's tile centres, in walk order. The sign tells the walk direction:
// positive when it turns clockwise on screen (rows grow downwards).
// Complexity: O(L).
func DoubledArea(l *loop.Loop) int {
	ps := l.Positions()
	n := len(ps)
	sum := 0
	for i, a := range ps {
		b := ps[(i+1)%n]
		sum += a.Col*b.Row - b.Col*a.Row
	}

	return sum
}

// Interior returns the number of grid cells strictly inside the loop.
// Complexity: O(L).
func Interior(l *loop.Loop) int {
	return abs(DoubledArea(l))/2 - l.Len()/2 + 1
}

// Enclosed returns the cells strictly inside the loop in row-major order.
// Start is treated with its inferred shape so crossings at that vertex are
// counted correctly.
func Enclosed(l *loop.Loop) []tile.Position {
	lo, hi := bounds(l)
	var out []tile.Position
	for r := lo.Row; r <= hi.Row; r++ {
		inside := false
		for c := lo.Col; c <= hi.Col; c++ {
			p := tile.Pos(r, c)
			if k, on := l.Kind(p); on {
				if k.Connects(tile.North) {
					inside = !inside
				}
				continue
			}
			if inside {
				out = append(out, p)
			}
		}
	}

	return out
}

// bounds returns the top-left and bottom-right corners of the loop's bounding box.
func bounds(l *loop.Loop) (lo, hi tile.Position) {
	ps := l.Positions()
	lo, hi = ps[0], ps[0]
	for _, p := range ps[1:] {
		lo.Row, lo.Col = min(lo.Row, p.Row), min(lo.Col, p.Col)
		hi.Row, hi.Col = max(hi.Row, p.Row), max(hi.Col, p.Col)
	}

	return lo, hi
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
