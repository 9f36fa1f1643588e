// Package loop extracts the closed pipe loop running through the start tile.
//
// What:
//
//   - Extract walks from Start through each of its connected neighbors. On
//     every structural tile there is exactly one way forward once the tile
//     arrived from is excluded, so each walk is linear and either closes
//     back on Start or dies at a dead end.
//   - The start tile's real shape is inferred from the two loop tiles
//     adjacent to it.
//   - Loop exposes the ordered tiles, the half-length metric and the
//     along-loop distance of every loop tile from Start.
//
// Errors:
//
//   - ErrNoLoopFound:   no walk from Start returns to Start.
//   - ErrAmbiguousLoop: Start closes more than one distinct circuit.
//   - grid.ErrNoStart / grid.ErrMultipleStarts propagate unchanged.
//
// Complexity: O(L) per walk, at most four walks (L = loop length).
package loop

import (
	"errors"

	"github.com/katalvlaran/pipemaze/tile"
)

var (
	// ErrNoLoopFound indicates no simple cycle passes through Start.
	ErrNoLoopFound = errors.New("loop: no loop through start")

	// ErrAmbiguousLoop indicates Start closes more than one distinct cycle.
	ErrAmbiguousLoop = errors.New("loop: more than one loop through start")
)

// Option configures optional behavior of Extract.
type Option func(*Options)

// Options holds the tunables of Extract.
type Options struct {
	// FirstMatch accepts the first closing loop in N, E, S, W order of the
	// start's neighbors instead of returning ErrAmbiguousLoop.
	FirstMatch bool

	// OnStep, if non-nil, is called for every tile a walk steps onto, with
	// the number of steps taken from Start. Abandoned walks are reported too.
	// Returning an error aborts Extract with that error.
	OnStep func(t tile.Tile, step int) error
}

// DefaultOptions returns strict extraction without hooks.
func DefaultOptions() Options {
	return Options{
		FirstMatch: false,
		OnStep:     nil,
	}
}

// WithFirstMatch returns an Option that resolves ambiguous starts by taking
// the first loop found instead of failing.
func WithFirstMatch() Option {
	return func(o *Options) {
		o.FirstMatch = true
	}
}

// WithOnStep returns an Option that installs fn as the per-step hook.
func WithOnStep(fn func(t tile.Tile, step int) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Loop is the ordered cycle through Start. tiles[0] is Start and the cycle
// closes from tiles[len-1] back to tiles[0]; Start is stored once.
type Loop struct {
	tiles     []tile.Tile
	index     map[tile.Position]int
	startKind tile.PipeKind
}
