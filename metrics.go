package capclust

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    fitCounter   prometheus.Counter
//	    fitHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordFit(duration time.Duration, err error) {
//	    p.fitCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordFit is called after each fit operation.
	// duration is the total time taken, err is nil if successful.
	RecordFit(duration time.Duration, err error)

	// RecordLevel is called after each completed temperature level.
	// iterations is the number of inner-loop steps run and satisfied reports
	// whether the level's result met capacity.
	RecordLevel(level, iterations int, satisfied bool, duration time.Duration)

	// RecordPredict is called after each predict operation.
	RecordPredict(duration time.Duration, err error)

	// RecordRebalance is called after each rebalancing pass.
	// moves is the number of points reassigned.
	RecordRebalance(moves int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(time.Duration, error)            {}
func (NoopMetricsCollector) RecordLevel(int, int, bool, time.Duration) {}
func (NoopMetricsCollector) RecordPredict(time.Duration, error)        {}
func (NoopMetricsCollector) RecordRebalance(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount        atomic.Int64
	FitErrors       atomic.Int64
	FitTotalNanos   atomic.Int64
	LevelCount      atomic.Int64
	LevelIterations atomic.Int64
	LevelsSatisfied atomic.Int64
	PredictCount    atomic.Int64
	PredictErrors   atomic.Int64
	RebalanceCount  atomic.Int64
	RebalanceMoves  atomic.Int64
	RebalanceErrors atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordLevel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLevel(level, iterations int, satisfied bool, duration time.Duration) {
	b.LevelCount.Add(1)
	b.LevelIterations.Add(int64(iterations))
	if satisfied {
		b.LevelsSatisfied.Add(1)
	}
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(duration time.Duration, err error) {
	b.PredictCount.Add(1)
	if err != nil {
		b.PredictErrors.Add(1)
	}
}

// RecordRebalance implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebalance(moves int, duration time.Duration, err error) {
	b.RebalanceCount.Add(1)
	b.RebalanceMoves.Add(int64(moves))
	if err != nil {
		b.RebalanceErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:        b.FitCount.Load(),
		FitErrors:       b.FitErrors.Load(),
		FitAvgNanos:     b.getAvgFitNanos(),
		LevelCount:      b.LevelCount.Load(),
		LevelIterations: b.LevelIterations.Load(),
		LevelsSatisfied: b.LevelsSatisfied.Load(),
		PredictCount:    b.PredictCount.Load(),
		PredictErrors:   b.PredictErrors.Load(),
		RebalanceCount:  b.RebalanceCount.Load(),
		RebalanceMoves:  b.RebalanceMoves.Load(),
		RebalanceErrors: b.RebalanceErrors.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFitNanos() int64 {
	count := b.FitCount.Load()
	if count == 0 {
		return 0
	}
	return b.FitTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount        int64
	FitErrors       int64
	FitAvgNanos     int64
	LevelCount      int64
	LevelIterations int64
	LevelsSatisfied int64
	PredictCount    int64
	PredictErrors   int64
	RebalanceCount  int64
	RebalanceMoves  int64
	RebalanceErrors int64
}
