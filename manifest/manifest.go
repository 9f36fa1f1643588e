// Package manifest loads batches of pipe maze grids.
//
// A manifest is an HCL file naming the grids to solve, either by path to a
// plain text grid file or inline as a list of rows:
//
//	workers = 4
//	method  = "shoelace"
//
//	puzzle "sample" {
//	  path   = "inputs/sample.txt"
//	  render = "out/sample.png"
//	}
//
//	puzzle "inline" {
//	  rows = ["S-7", "|.|", "L-J"]
//	}
//
// Relative paths resolve against the manifest's directory.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/pipemaze/solver"
)

// ErrInvalidManifest indicates a manifest that parses but breaks a rule.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")

// Manifest is a decoded batch description.
type Manifest struct {
	// Workers bounds concurrent solves; 0 leaves the choice to the caller.
	Workers int
	// Method names the containment method; empty leaves the choice to the caller.
	Method string
	// Puzzles in declaration order.
	Puzzles []Puzzle
	// dir is the base for relative paths.
	dir string
}

// Puzzle is one entry of a manifest. Exactly one of Path and Rows is set.
type Puzzle struct {
	Name   string
	Path   string
	Rows   []string
	Render string
}

// hclFile represents the top-level structure of a manifest for decoding.
type hclFile struct {
	Workers *int         `hcl:"workers,optional"`
	Method  *string      `hcl:"method,optional"`
	Puzzles []*hclPuzzle `hcl:"puzzle,block"`
}

type hclPuzzle struct {
	Name   string   `hcl:"name,label"`
	Path   *string  `hcl:"path,optional"`
	Rows   []string `hcl:"rows,optional"`
	Render *string  `hcl:"render,optional"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to parse %s: %w", path, diags)
	}

	return decode(f.Body, path)
}

// Parse decodes manifest source. filename is used in diagnostics and as the
// base for relative paths.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to parse %s: %w", filename, diags)
	}

	return decode(f.Body, filename)
}

func decode(body hcl.Body, filename string) (*Manifest, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to decode %s: %w", filename, diags)
	}

	m := &Manifest{dir: filepath.Dir(filename)}
	if parsed.Workers != nil {
		if *parsed.Workers < 1 {
			return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidManifest, *parsed.Workers)
		}
		m.Workers = *parsed.Workers
	}
	if parsed.Method != nil {
		if _, err := solver.ParseMethod(*parsed.Method); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		m.Method = *parsed.Method
	}

	seen := make(map[string]bool, len(parsed.Puzzles))
	for _, hp := range parsed.Puzzles {
		if seen[hp.Name] {
			return nil, fmt.Errorf("%w: duplicate puzzle %q", ErrInvalidManifest, hp.Name)
		}
		seen[hp.Name] = true

		p := Puzzle{Name: hp.Name, Rows: hp.Rows}
		if hp.Path != nil {
			p.Path = m.resolve(*hp.Path)
		}
		if hp.Render != nil {
			p.Render = m.resolve(*hp.Render)
		}
		switch {
		case p.Path == "" && len(p.Rows) == 0:
			return nil, fmt.Errorf("%w: puzzle %q needs path or rows", ErrInvalidManifest, hp.Name)
		case p.Path != "" && len(p.Rows) > 0:
			return nil, fmt.Errorf("%w: puzzle %q sets both path and rows", ErrInvalidManifest, hp.Name)
		}
		m.Puzzles = append(m.Puzzles, p)
	}

	return m, nil
}

// resolve makes a relative path relative to the manifest directory.
func (m *Manifest) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(m.dir, path)
}

// SolverPuzzles reads every grid and returns them ready for a solver.Batch.
// The first unreadable file aborts with its error.
func (m *Manifest) SolverPuzzles() ([]solver.Puzzle, error) {
	out := make([]solver.Puzzle, 0, len(m.Puzzles))
	for _, p := range m.Puzzles {
		lines := p.Rows
		if p.Path != "" {
			var err error
			if lines, err = ReadFile(p.Path); err != nil {
				return nil, fmt.Errorf("manifest: puzzle %q: %w", p.Name, err)
			}
		}
		out = append(out, solver.Puzzle{Name: p.Name, Lines: lines})
	}

	return out, nil
}
