// Package tile defines the building blocks of a pipe maze: grid positions,
// compass directions, the eight pipe kinds and the Tile value that binds a
// kind to a position.
//
// Connection rules live here and nowhere else: every other package asks a
// PipeKind which directions it opens towards and a Tile which absolute
// positions it may reach.
//
// Errors:
//
//	ErrUnrecognizedSymbol - a grid character does not name a pipe kind.
package tile

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedSymbol indicates a character that is not one of "S|-LJF7.".
var ErrUnrecognizedSymbol = errors.New("tile: unrecognized symbol")

// SymbolError reports the offending character and where it was found.
// It matches ErrUnrecognizedSymbol under errors.Is.
type SymbolError struct {
	Symbol rune
	Row    int
	Col    int
}

// Error implements the error interface.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("tile: unrecognized symbol %q at column %d", e.Symbol, e.Col)
}

// Unwrap exposes ErrUnrecognizedSymbol to errors.Is.
func (e *SymbolError) Unwrap() error { return ErrUnrecognizedSymbol }

// Position identifies a grid cell by row (top to bottom) and column (left to right).
// Valid positions are never negative. Position is comparable and used as a map key.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position { return Position{Row: row, Col: col} }

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Step returns the position one unit away in direction d.
// ok is false when the result would have a negative coordinate.
func (p Position) Step(d Direction) (Position, bool) {
	dr, dc := d.Offset()
	q := Position{Row: p.Row + dr, Col: p.Col + dc}
	if q.Row < 0 || q.Col < 0 {
		return Position{}, false
	}

	return q, true
}

// DirectionTo reports the direction leading from p to an orthogonally
// adjacent position q. ok is false when q is not adjacent to p.
func (p Position) DirectionTo(q Position) (Direction, bool) {
	for _, d := range Directions {
		dr, dc := d.Offset()
		if p.Row+dr == q.Row && p.Col+dc == q.Col {
			return d, true
		}
	}

	return 0, false
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Direction is one of the four compass directions.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// Directions lists all directions in the fixed N, E, S, W order used for
// every deterministic iteration in this module.
var Directions = [4]Direction{North, East, South, West}

// offsets are (row, col) deltas indexed by Direction.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offset returns the (row, col) delta of one step in d.
func (d Direction) Offset() (dr, dc int) {
	o := offsets[d&3]

	return o[0], o[1]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) & 3
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}
