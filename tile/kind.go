package tile

import "fmt"

// PipeKind is the shape of a single grid cell.
// The zero value is Ground.
type PipeKind uint8

const (
	// Ground connects to nothing ('.').
	Ground PipeKind = iota
	// Start is the designated start tile ('S'). Its real shape is unknown
	// until the loop through it is found, so it offers all four directions.
	Start
	// Vertical connects north and south ('|').
	Vertical
	// Horizontal connects east and west ('-').
	Horizontal
	// NorthEast connects north and east ('L').
	NorthEast
	// NorthWest connects north and west ('J').
	NorthWest
	// SouthEast connects south and east ('F').
	SouthEast
	// SouthWest connects south and west ('7').
	SouthWest
)

// kindSpec is the static description of one PipeKind.
type kindSpec struct {
	symbol rune
	name   string
	dirs   []Direction
}

var kinds = [...]kindSpec{
	Ground:     {'.', "Ground", nil},
	Start:      {'S', "Start", []Direction{North, East, South, West}},
	Vertical:   {'|', "Vertical", []Direction{North, South}},
	Horizontal: {'-', "Horizontal", []Direction{East, West}},
	NorthEast:  {'L', "NorthEast", []Direction{North, East}},
	NorthWest:  {'J', "NorthWest", []Direction{North, West}},
	SouthEast:  {'F', "SouthEast", []Direction{East, South}},
	SouthWest:  {'7', "SouthWest", []Direction{South, West}},
}

// KindOf maps a grid character to its PipeKind.
// Unknown characters return ErrUnrecognizedSymbol.
func KindOf(r rune) (PipeKind, error) {
	for k, spec := range kinds {
		if spec.symbol == r {
			return PipeKind(k), nil
		}
	}

	return Ground, ErrUnrecognizedSymbol
}

// KindFor returns the structural kind whose two openings are a and b.
// ok is false when a == b.
func KindFor(a, b Direction) (PipeKind, bool) {
	for k := Vertical; k <= SouthWest; k++ {
		if k.Connects(a) && k.Connects(b) && a != b {
			return k, true
		}
	}

	return Ground, false
}

// Valid reports whether k is one of the eight declared kinds.
func (k PipeKind) Valid() bool {
	return int(k) < len(kinds)
}

// Symbol returns the grid character of k.
func (k PipeKind) Symbol() rune {
	if !k.Valid() {
		return '?'
	}

	return kinds[k].symbol
}

// String implements fmt.Stringer.
func (k PipeKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("PipeKind(%d)", uint8(k))
	}

	return kinds[k].name
}

// Directions returns the directions k opens towards, in N, E, S, W order.
// Start returns all four, Ground none. The slice is a fresh copy.
func (k PipeKind) Directions() []Direction {
	if !k.Valid() {
		return nil
	}

	return append([]Direction(nil), kinds[k].dirs...)
}

// Connects reports whether k opens towards d.
func (k PipeKind) Connects(d Direction) bool {
	if !k.Valid() {
		return false
	}
	for _, x := range kinds[k].dirs {
		if x == d {
			return true
		}
	}

	return false
}

// IsPipe reports whether k carries any connection (everything except Ground).
func (k PipeKind) IsPipe() bool {
	return k != Ground && k.Valid()
}
