package solver

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/latticewalk/classify"
	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/extrapolate"
	"github.com/katalvlaran/latticewalk/lattice"
	"github.com/katalvlaran/latticewalk/tiling"
)

// Result is a count together with the strategy that produced it.
type Result struct {
	Count    int
	Strategy classify.Strategy
	Elapsed  time.Duration
}

// Options holds Solver tunables.
type Options struct {
	Strategy  classify.Strategy
	Threshold int
	Verify    bool
	Parallel  bool
	Logger    *log.Logger
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// DefaultOptions returns automatic classification with the default threshold,
// verification on, serial passes and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Strategy:  classify.Auto,
		Threshold: classify.DefaultThreshold,
		Verify:    true,
		Logger:    log.New(io.Discard),
	}
}

// WithStrategy forces a strategy instead of classifying.
func WithStrategy(s classify.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithThreshold sets the budget below which the exact count is used.
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Threshold = n
		}
	}
}

// WithVerify toggles the fourth-sample check of quadratic extrapolation.
func WithVerify(v bool) Option {
	return func(o *Options) { o.Verify = v }
}

// WithParallel toggles concurrent BFS passes in the tile decomposer.
func WithParallel(p bool) Option {
	return func(o *Options) { o.Parallel = p }
}

// WithLogger sets the logger used for strategy and timing events.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Solver counts reachable cells. It is safe for concurrent use.
type Solver struct {
	opts  Options
	cache *tiling.Cache
}

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var tileOpts []tiling.Option
	if o.Parallel {
		tileOpts = append(tileOpts, tiling.WithParallel())
	}
	return &Solver{opts: o, cache: tiling.NewCache(tileOpts...)}
}

// Solve parses text and counts the cells reachable in exactly budget steps
// with a default Solver.
func Solve(text string, budget int) (int, error) {
	return New().Solve(text, budget)
}

// Solve parses text and counts the cells reachable in exactly budget steps.
func (s *Solver) Solve(text string, budget int) (int, error) {
	l, err := lattice.Parse(text)
	if err != nil {
		return 0, err
	}
	res, err := s.Count(l, budget)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Strategy reports the strategy Count would use for budget on l.
//
// A forced strategy is returned as is. Otherwise the structural choice of
// classify.Classify is refined against the tile decomposer it would use: a
// lattice the decomposer rejects is extrapolated instead, and budgets below
// the decomposer's warm-up are counted exactly.
func (s *Solver) Strategy(l *lattice.Lattice, budget int) classify.Strategy {
	if s.opts.Strategy != classify.Auto {
		return s.opts.Strategy
	}
	strategy := classify.Classify(l, budget, s.opts.Threshold)
	v, ok := variant(strategy)
	if !ok {
		return strategy
	}
	d, err := s.cache.Get(l, v)
	switch {
	case err != nil:
		return classify.Quadratic
	case budget < d.Warmup():
		return classify.Exact
	default:
		return strategy
	}
}

// variant maps a tile strategy to its decomposer variant.
func variant(s classify.Strategy) (tiling.Variant, bool) {
	switch s {
	case classify.OpenBorder:
		return tiling.Border, true
	case classify.OpenCross:
		return tiling.Cross, true
	default:
		return 0, false
	}
}

// Count counts the cells of the tiling reachable from l's start in exactly
// budget steps.
func (s *Solver) Count(l *lattice.Lattice, budget int) (Result, error) {
	if l == nil {
		return Result{}, distance.ErrLatticeNil
	}
	if budget < 0 {
		return Result{}, fmt.Errorf("%w: %d", distance.ErrNegativeBudget, budget)
	}

	strategy := s.Strategy(l, budget)
	logger := s.opts.Logger.With("strategy", strategy, "budget", budget)
	logger.Debug("counting", "rows", l.Rows(), "cols", l.Cols(), "start", l.Start())

	began := time.Now()
	count, err := s.count(l, budget, strategy, logger)
	res := Result{Count: count, Strategy: strategy, Elapsed: time.Since(began)}
	if err != nil {
		logger.Debug("strategy failed", "err", err)
		return res, fmt.Errorf("solver: %s strategy: %w", strategy, err)
	}
	logger.Debug("counted", "count", count, "elapsed", res.Elapsed)

	return res, nil
}

func (s *Solver) count(l *lattice.Lattice, budget int, strategy classify.Strategy, logger *log.Logger) (int, error) {
	switch strategy {
	case classify.Exact:
		return distance.CountExact(l, budget)
	case classify.Quadratic:
		est, err := extrapolate.Extrapolate(l, budget, extrapolate.WithVerify(s.opts.Verify))
		if err != nil {
			return 0, err
		}
		logger.Debug("fitted", "tiles", est.Tiles, "remainder", est.Remainder, "samples", est.Samples)
		return est.Count, nil
	case classify.OpenBorder, classify.OpenCross:
		v, _ := variant(strategy)
		return s.decompose(l, budget, v)
	default:
		return 0, fmt.Errorf("%w: %v", classify.ErrUnknownStrategy, strategy)
	}
}

func (s *Solver) decompose(l *lattice.Lattice, budget int, v tiling.Variant) (int, error) {
	d, err := s.cache.Get(l, v)
	if err != nil {
		return 0, err
	}
	return d.Count(budget)
}
