package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipemaze/internal/ctxlog"
	"github.com/katalvlaran/pipemaze/loop"
)

// ErrInvalidBatch indicates a BatchOption with an out-of-range value.
var ErrInvalidBatch = errors.New("solver: invalid batch option")

// Puzzle is one named grid submitted to a Batch.
type Puzzle struct {
	Name  string
	Lines []string
}

// Outcome is the per-puzzle result of a Batch run. Exactly one of Result
// and Err is set.
type Outcome struct {
	Name   string
	Result *Result
	Err    error
	// Cached is true when Result came from the batch's memo instead of a fresh solve.
	Cached bool
}

// BatchOption configures a Batch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	workers   int
	cacheSize int
	solveOpts []Option
}

// WithWorkers bounds the number of grids solved at once. Must be positive.
func WithWorkers(n int) BatchOption {
	return func(c *batchConfig) { c.workers = n }
}

// WithCacheSize sets the number of memoised results. Must be positive.
func WithCacheSize(n int) BatchOption {
	return func(c *batchConfig) { c.cacheSize = n }
}

// WithSolveOptions sets the options every grid is solved with.
// A loop.WithOnStep hook disables the result memo so the hook sees every
// solve; the hook is called from several workers at once and must be safe
// for concurrent use.
func WithSolveOptions(opts ...Option) BatchOption {
	return func(c *batchConfig) { c.solveOpts = append(c.solveOpts, opts...) }
}

// Batch solves many independent grids concurrently. Every grid gets its own
// pipeline; the only shared state is the result memo, which is safe for
// concurrent use. Results are immutable, so memoised ones are shared as is.
type Batch struct {
	workers   int
	solveOpts []Option
	keyPrefix string
	// cache is nil when results must not be memoised.
	cache *lru.Cache[string, *Result]
}

// NewBatch builds a Batch. Defaults: one worker per CPU, 128 memoised results,
// default solve options.
func NewBatch(opts ...BatchOption) (*Batch, error) {
	cfg := batchConfig{
		workers:   runtime.NumCPU(),
		cacheSize: 128,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidBatch, cfg.workers)
	}
	if cfg.cacheSize < 1 {
		return nil, fmt.Errorf("%w: cache size must be positive, got %d", ErrInvalidBatch, cfg.cacheSize)
	}
	b := &Batch{
		workers:   cfg.workers,
		solveOpts: cfg.solveOpts,
	}
	key, cacheable := optionsKey(cfg.solveOpts)
	if cacheable {
		cache, err := lru.New[string, *Result](cfg.cacheSize)
		if err != nil {
			return nil, err
		}
		b.keyPrefix, b.cache = key, cache
	}

	return b, nil
}

// Run solves every puzzle and returns one Outcome per puzzle, in input order.
// A failing grid is reported on its Outcome and does not stop the others.
// The returned error is non-nil only when ctx is cancelled; outcomes of
// puzzles never started are left with Err set to the context error.
func (b *Batch) Run(ctx context.Context, puzzles []Puzzle) ([]Outcome, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Batch started.", "puzzles", len(puzzles), "workers", b.workers)
	began := time.Now()

	out := make([]Outcome, len(puzzles))
	for i, p := range puzzles {
		out[i] = Outcome{Name: p.Name}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.workers)
	for i, p := range puzzles {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				out[i].Err = err
				return err
			}
			out[i] = b.solve(egCtx, p)
			return nil
		})
	}
	waitErr := eg.Wait()
	if err := ctx.Err(); err != nil || waitErr != nil {
		if err == nil {
			err = waitErr
		}
		for i := range out {
			if out[i].Result == nil && out[i].Err == nil {
				out[i].Err = err
			}
		}
		logger.Warn("Batch cancelled.", "error", err)
		return out, err
	}

	failed := 0
	for _, o := range out {
		if o.Err != nil {
			failed++
		}
	}
	logger.Info("Batch finished.", "puzzles", len(puzzles), "failed", failed, "elapsed", time.Since(began))

	return out, nil
}

// solve runs one puzzle through the memo.
func (b *Batch) solve(ctx context.Context, p Puzzle) Outcome {
	logger := ctxlog.FromContext(ctx).With("puzzle", p.Name)
	var key string
	if b.cache != nil {
		key = b.key(p.Lines)
		if res, ok := b.cache.Get(key); ok {
			logger.Debug("Result served from cache.")
			return Outcome{Name: p.Name, Result: res, Cached: true}
		}
	}

	res, err := Solve(p.Lines, b.solveOpts...)
	if err != nil {
		logger.Warn("Puzzle failed.", "error", err)
		return Outcome{Name: p.Name, Err: err}
	}
	if b.cache != nil {
		b.cache.Add(key, res)
	}
	logger.Debug("Puzzle solved.", "loop", res.Loop.Len(), "half_length", res.HalfLength, "interior", res.Interior)

	return Outcome{Name: p.Name, Result: res}
}

// key identifies a grid's content under the batch's solve options. Every
// row is length-prefixed, so rows holding a newline cannot alias a split grid.
func (b *Batch) key(lines []string) string {
	h := sha256.New()
	h.Write([]byte(b.keyPrefix))
	h.Write([]byte(strconv.Itoa(len(lines)) + "#"))
	for _, l := range lines {
		h.Write([]byte(strconv.Itoa(len(l)) + ":"))
		h.Write([]byte(l))
	}

	return hex.EncodeToString(h.Sum(nil))
}

// optionsKey renders the parts of opts that change a result. It reports
// false when an OnStep hook is set, since a memoised result would skip it.
func optionsKey(opts []Option) (string, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lo := loop.DefaultOptions()
	for _, opt := range o.LoopOptions {
		opt(&lo)
	}

	if lo.OnStep != nil {
		return "", false
	}

	return o.Method.String() + "|" + strconv.FormatBool(lo.FirstMatch) + "|", true
}
