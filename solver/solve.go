package solver

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/area"
	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/loop"
	"github.com/katalvlaran/pipemaze/network"
)

// Solve parses lines and returns the loop's half-length and interior count.
// Errors from any stage are returned wrapped; use errors.Is with the
// sentinels of grid, tile and loop to tell them apart.
func Solve(lines []string, opts ...Option) (*Result, error) {
	g, err := grid.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("solver: parse: %w", err)
	}

	return SolveGrid(g, opts...)
}

// SolveGrid runs the pipeline on an already parsed grid.
func SolveGrid(g *grid.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l, err := loop.Extract(network.Build(g), o.LoopOptions...)
	if err != nil {
		return nil, fmt.Errorf("solver: extract: %w", err)
	}

	res := &Result{
		Grid:       g,
		Loop:       l,
		HalfLength: l.HalfLength(),
	}
	switch o.Method {
	case Scanline:
		res.Interior = len(area.Enclosed(l))
	case Shoelace:
		res.Interior = area.Interior(l)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMethod, o.Method)
	}

	return res, nil
}
