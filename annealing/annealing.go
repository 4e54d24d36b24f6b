package annealing

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust"
	"github.com/hupe1980/capclust/distance"
)

// Compile-time check to ensure Solver satisfies the family contract.
var _ capclust.Clusterer = (*Solver)(nil)

// Solver clusters points into k clusters whose sizes approximately match a
// target distribution, via deterministic annealing. Construct with New, fit
// with Fit, then read Labels/Centers or call Predict on new points.
//
// A Solver is not safe for concurrent use: Fit and Rebalance mutate fitted
// state. Predict does not mutate and may run concurrently with itself.
type Solver struct {
	k        int
	lambda   []float64
	opts     Options
	pairwise distance.PairwiseFunc
	rng      *rand.Rand

	logger  *capclust.Logger
	metrics capclust.MetricsCollector

	// fitted state
	fitted   bool
	centers  *mat.Dense
	labels   []int
	eta      []float64
	demand   []float64
	beta     float64
	capacity []float64
}

// New creates a new deterministic annealing solver for k clusters with the
// given target size distribution (length k, non-negative, summing to 1
// within 3-decimal rounding).
func New(k int, distribution []float64, optFns ...func(o *Options)) (*Solver, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := capclust.ValidateBasicOptions(k, opts.MaxIters); err != nil {
		return nil, err
	}
	if err := capclust.ValidateDistribution(distribution, k); err != nil {
		return nil, err
	}
	if len(opts.Temperatures) == 0 {
		opts.Temperatures = DefaultTemperatures
	}
	for i, t := range opts.Temperatures {
		if t <= 0 || (i > 0 && t >= opts.Temperatures[i-1]) {
			return nil, &capclust.TemperatureScheduleError{Index: i, Value: t}
		}
	}

	pairwise := opts.Distance
	if pairwise == nil {
		var err error
		pairwise, err = distance.PairwiseProvider(opts.Metric)
		if err != nil {
			return nil, err
		}
	}

	logger := opts.Logger
	if logger == nil {
		if opts.Debug {
			logger = capclust.NewTextLogger(slog.LevelDebug)
		} else {
			logger = capclust.NoopLogger()
		}
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = capclust.NoopMetricsCollector{}
	}

	lambda := make([]float64, k)
	copy(lambda, distribution)

	return &Solver{
		k:        k,
		lambda:   lambda,
		opts:     opts,
		pairwise: pairwise,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		logger:   logger,
		metrics:  metrics,
	}, nil
}

// K returns the cluster count.
func (s *Solver) K() int { return s.k }

// Distribution returns a copy of the target size distribution.
func (s *Solver) Distribution() []float64 {
	out := make([]float64, len(s.lambda))
	copy(out, s.lambda)
	return out
}

// Labels returns the hard labels of the last Fit call, or nil before Fit.
func (s *Solver) Labels() []int {
	if !s.fitted {
		return nil
	}
	out := make([]int, len(s.labels))
	copy(out, s.labels)
	return out
}

// Centers returns a copy of the fitted k×d cluster centers, or nil before
// Fit.
func (s *Solver) Centers() *mat.Dense {
	if !s.fitted {
		return nil
	}
	return mat.DenseCopyOf(s.centers)
}

// Fit computes the constrained clustering of x (n×d). It blocks until the
// temperature schedule is exhausted or a level satisfies the early-exit
// condition, honoring ctx cancellation between iterations. The fitted state
// is replaced on success and left untouched on error.
func (s *Solver) Fit(ctx context.Context, x *mat.Dense, optFns ...func(o *capclust.FitOptions)) error {
	start := time.Now()

	var fitOpts capclust.FitOptions
	for _, fn := range optFns {
		fn(&fitOpts)
	}

	n, _ := x.Dims()

	// Center initialization samples k distinct points per level.
	if n < s.k {
		err := &capclust.PointCountError{K: s.k, N: n}
		s.metrics.RecordFit(time.Since(start), err)
		s.logger.LogFit(ctx, n, 0, false, time.Since(start), err)
		return err
	}

	demand, err := capclust.NormalizeDemands(fitOpts.DemandsProb, n)
	if err != nil {
		s.metrics.RecordFit(time.Since(start), err)
		s.logger.LogFit(ctx, n, 0, false, time.Since(start), err)
		return err
	}
	if err := capclust.ValidateAnchors(fitOpts.FixedPoints, s.k, n); err != nil {
		s.metrics.RecordFit(time.Since(start), err)
		s.logger.LogFit(ctx, n, 0, false, time.Since(start), err)
		return err
	}
	anchors := newAnchorSet(fitOpts.FixedPoints)
	capacity := capacities(n, s.lambda)

	var (
		selected candidate
		levels   int
	)
	if s.opts.SpeculativeLevels > 1 {
		selected, levels, err = s.runSpeculative(ctx, x, demand, anchors, capacity)
	} else {
		selected, levels, err = s.runSequential(ctx, x, demand, anchors, capacity)
	}
	if err != nil {
		s.metrics.RecordFit(time.Since(start), err)
		s.logger.LogFit(ctx, n, levels, false, time.Since(start), err)
		return err
	}

	s.fitted = true
	s.labels = selected.labels
	s.centers = selected.centers
	s.eta = selected.eta
	s.beta = selected.beta
	s.demand = demand
	s.capacity = capacity

	s.metrics.RecordFit(time.Since(start), nil)
	s.logger.LogFit(ctx, n, levels, selected.satisfied, time.Since(start), nil)
	return nil
}

// Predict assigns labels to new points using the fitted centers, eta and
// final inverse temperature: one Gibbs update, argmax per row. No multiplier
// refinement, no temperature decay, and no capacity enforcement — predicted
// label counts may violate capacity even though training labels did.
func (s *Solver) Predict(ctx context.Context, x *mat.Dense) ([]int, error) {
	start := time.Now()
	n, d := x.Dims()

	if !s.fitted {
		err := capclust.ErrNotFitted
		s.metrics.RecordPredict(time.Since(start), err)
		s.logger.LogPredict(ctx, n, err)
		return nil, err
	}
	if _, cd := s.centers.Dims(); cd != d {
		err := &capclust.DimensionMismatchError{Expected: cd, Actual: d}
		s.metrics.RecordPredict(time.Since(start), err)
		s.logger.LogPredict(ctx, n, err)
		return nil, err
	}

	dists := s.pairwise(x, s.centers)
	gibbs := updateGibbs(s.eta, dists, s.beta)
	labels := argmaxRows(gibbs)

	s.metrics.RecordPredict(time.Since(start), nil)
	s.logger.LogPredict(ctx, n, nil)
	return labels, nil
}
