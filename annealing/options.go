package annealing

import (
	"github.com/hupe1980/capclust"
	"github.com/hupe1980/capclust/distance"
)

// DefaultTemperatures is the default annealing schedule. Each level starts a
// fresh inner optimization; later levels approach the hard-assignment limit.
var DefaultTemperatures = []float64{1000, 100, 10, 1, 0.1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7, 1e-8}

// Options contains configuration options for the annealing solver.
type Options struct {
	// MaxIters is the inner-loop iteration budget per temperature level.
	// Must be at least 1.
	MaxIters int

	// Temperatures is the annealing schedule: positive, strictly decreasing.
	// Nil means DefaultTemperatures.
	Temperatures []float64

	// Seed seeds the solver's random number generator. Identical seeds,
	// inputs and schedule produce identical results.
	Seed int64

	// Metric selects the built-in pairwise distance when Distance is nil.
	// It is also the metric recorded in model snapshots.
	Metric distance.Metric

	// Distance overrides the built-in pairwise distance capability.
	// Nil means the Metric's provider.
	Distance distance.PairwiseFunc

	// LabelsUnchangedThreshold ends a temperature level early after the hard
	// labels have been unchanged for this many consecutive iterations.
	// 0 disables stagnation detection (the default).
	LabelsUnchangedThreshold int

	// SpeculativeLevels runs up to this many temperature levels concurrently.
	// Values <= 1 run the schedule sequentially. The selected result is
	// identical either way.
	SpeculativeLevels int

	// Progress receives per-iteration observability events. Nil disables
	// progress reporting. Wrap with capclust.NewThrottledProgress for
	// rate-limited sinks. When SpeculativeLevels > 1 the sink is called from
	// multiple goroutines and must be safe for concurrent use.
	Progress capclust.ProgressSink

	// Logger configures structured logging. Nil disables logging.
	Logger *capclust.Logger

	// Metrics configures operational metrics collection. Nil disables it.
	Metrics capclust.MetricsCollector

	// Debug enables a debug-level text logger when no Logger is set.
	Debug bool
}

// DefaultOptions contains the default configuration options for the solver.
var DefaultOptions = Options{
	MaxIters: 1000,
	Seed:     42,
	Metric:   distance.MetricEuclidean,
}
