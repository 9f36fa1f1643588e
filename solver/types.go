// Package solver runs the full pipe maze pipeline: parse the grid, build the
// connectivity graph, extract the loop and measure it.
//
// Solve handles one grid synchronously. Batch runs many independent grids
// concurrently, memoises results by grid content and records per-grid
// failures instead of aborting the run.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/loop"
)

// ErrUnknownMethod indicates an unrecognised containment method name.
var ErrUnknownMethod = errors.New("solver: unknown containment method")

// Method selects how the enclosed cell count is computed.
type Method int

const (
	// Shoelace uses the shoelace area and Pick's theorem, O(loop length).
	Shoelace Method = iota
	// Scanline uses the even-odd row scan over the loop's bounding box.
	Scanline
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Shoelace:
		return "shoelace"
	case Scanline:
		return "scanline"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "shoelace" or "scanline" (case-insensitive) to a Method.
// The empty string selects Shoelace.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shoelace", "pick":
		return Shoelace, nil
	case "scanline", "raycast":
		return Scanline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Result holds the two loop statistics together with the structures they
// were derived from.
type Result struct {
	Grid *grid.Grid
	Loop *loop.Loop
	// HalfLength is the farthest along-loop distance from Start.
	HalfLength int
	// Interior is the number of cells strictly enclosed by the loop.
	Interior int
}

// Option configures Solve.
type Option func(*Options)

// Options holds the tunables of Solve.
type Options struct {
	Method      Method
	LoopOptions []loop.Option
}

// DefaultOptions returns Shoelace counting with strict loop extraction.
func DefaultOptions() Options {
	return Options{Method: Shoelace}
}

// WithMethod selects the containment method.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithLoopOptions forwards options to loop.Extract.
func WithLoopOptions(opts ...loop.Option) Option {
	return func(o *Options) {
		o.LoopOptions = append(o.LoopOptions, opts...)
	}
}
