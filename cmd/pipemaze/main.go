// Command pipemaze measures the closed pipe loop of one or more pipe maze
// grids. For each grid it prints the farthest along-loop distance from the
// start tile and the number of cells the loop encloses.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/katalvlaran/pipemaze/internal/config"
	"github.com/katalvlaran/pipemaze/internal/ctxlog"
	"github.com/katalvlaran/pipemaze/manifest"
	"github.com/katalvlaran/pipemaze/render"
	"github.com/katalvlaran/pipemaze/solver"
)

// errPuzzlesFailed reports that at least one grid could not be solved.
var errPuzzlesFailed = errors.New("one or more puzzles failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var ee *config.ExitError
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.Message)
			os.Exit(ee.Code)
		}
		if !errors.Is(err, errPuzzlesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// run is the testable core of main. Results go to outW, logs and usage to errW.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, exit, err := config.Load(args, errW)
	if err != nil {
		return err
	}
	if exit {
		return nil
	}

	logger := ctxlog.New(errW, cfg.LogFormat, cfg.LogLevel)
	ctx = ctxlog.WithLogger(ctx, logger)

	puzzles, renders, workers, method, err := collect(cfg)
	if err != nil {
		return err
	}

	batch, err := solver.NewBatch(
		solver.WithWorkers(workers),
		solver.WithSolveOptions(solver.WithMethod(method)),
	)
	if err != nil {
		return err
	}

	outcomes, err := batch.Run(ctx, puzzles)
	if err != nil {
		return err
	}

	failed := false
	for _, o := range outcomes {
		if o.Err != nil {
			failed = true
			fmt.Fprintf(outW, "%s: error: %v\n", o.Name, o.Err)
			continue
		}
		fmt.Fprintf(outW, "%s: half-length=%d interior=%d\n", o.Name, o.Result.HalfLength, o.Result.Interior)

		if path := renders[o.Name]; path != "" {
			if err := writeImage(path, o.Result); err != nil {
				failed = true
				logger.Error("Render failed.", "puzzle", o.Name, "path", path, "error", err)
				continue
			}
			logger.Info("Rendered.", "puzzle", o.Name, "path", path)
		}
	}
	if failed {
		return errPuzzlesFailed
	}

	return nil
}

// collect gathers the puzzles to solve from either the manifest or the single
// grid file. Manifest settings take precedence over flags and environment.
func collect(cfg *config.Config) ([]solver.Puzzle, map[string]string, int, solver.Method, error) {
	workers, method := cfg.Workers, cfg.Method
	renders := make(map[string]string)

	if cfg.ManifestPath == "" {
		lines, err := manifest.ReadFile(cfg.InputPath)
		if err != nil {
			return nil, nil, 0, 0, err
		}
		name := filepath.Base(cfg.InputPath)
		renders[name] = cfg.RenderPath

		return []solver.Puzzle{{Name: name, Lines: lines}}, renders, workers, method, nil
	}

	m, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	if m.Workers > 0 {
		workers = m.Workers
	}
	if m.Method != "" {
		// already validated by manifest.Load
		method, _ = solver.ParseMethod(m.Method)
	}
	for _, p := range m.Puzzles {
		renders[p.Name] = p.Render
	}
	puzzles, err := m.SolverPuzzles()
	if err != nil {
		return nil, nil, 0, 0, err
	}

	return puzzles, renders, workers, method, nil
}

func writeImage(path string, res *solver.Result) error {
	img, err := render.Image(res)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return render.Save(path, img)
}
