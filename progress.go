package capclust

import (
	"golang.org/x/time/rate"
)

// IterationInfo describes one inner-loop iteration of an annealing fit.
// It is passed to the progress sink after the iteration's state has been
// computed and has no functional effect on the optimization.
type IterationInfo struct {
	// Level is the index of the current temperature level.
	Level int

	// Iteration is the inner-loop step within the level.
	Iteration int

	// Temperature is the temperature after this iteration's decay.
	Temperature float64

	// RealizedClusters is the number of distinct hard labels present.
	RealizedClusters int

	// Satisfied reports whether the capacity check passed this iteration.
	Satisfied bool
}

// ProgressSink receives observational callbacks during a fit. Implementations
// must not retain or mutate solver state; they are write-only observers
// (e.g. a progress bar, a log, a test recorder).
type ProgressSink interface {
	// OnLevelStart is called when a temperature level begins.
	OnLevelStart(level int, temperature float64)

	// OnIteration is called after every inner-loop iteration.
	OnIteration(info IterationInfo)

	// OnLevelEnd is called when a temperature level finishes, with the number
	// of iterations run.
	OnLevelEnd(level, iterations int)
}

// NoopProgress is a ProgressSink that ignores all events.
type NoopProgress struct{}

func (NoopProgress) OnLevelStart(int, float64) {}
func (NoopProgress) OnIteration(IterationInfo) {}
func (NoopProgress) OnLevelEnd(int, int)       {}

// SlogProgress is a ProgressSink that forwards events to a Logger at debug
// level. Useful as a minimal built-in replacement for a progress bar.
type SlogProgress struct {
	Logger *Logger
}

func (p *SlogProgress) OnLevelStart(level int, temperature float64) {
	p.Logger.Debug("level started", "level", level, "temperature", temperature)
}

func (p *SlogProgress) OnIteration(info IterationInfo) {
	p.Logger.Debug("iteration",
		"level", info.Level,
		"iteration", info.Iteration,
		"temperature", info.Temperature,
		"realized_clusters", info.RealizedClusters,
		"satisfied", info.Satisfied,
	)
}

func (p *SlogProgress) OnLevelEnd(level, iterations int) {
	p.Logger.Debug("level finished", "level", level, "iterations", iterations)
}

// ThrottledProgress wraps a ProgressSink and drops OnIteration events that
// exceed a rate limit. Level start/end events always pass through. Inner
// loops can run hundreds of thousands of iterations per second; without a
// throttle a logging sink dominates the fit's runtime.
type ThrottledProgress struct {
	sink    ProgressSink
	limiter *rate.Limiter
}

// NewThrottledProgress creates a ThrottledProgress emitting at most
// eventsPerSecond OnIteration events.
func NewThrottledProgress(sink ProgressSink, eventsPerSecond float64) *ThrottledProgress {
	return &ThrottledProgress{
		sink:    sink,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
	}
}

func (t *ThrottledProgress) OnLevelStart(level int, temperature float64) {
	t.sink.OnLevelStart(level, temperature)
}

func (t *ThrottledProgress) OnIteration(info IterationInfo) {
	if t.limiter.Allow() {
		t.sink.OnIteration(info)
	}
}

func (t *ThrottledProgress) OnLevelEnd(level, iterations int) {
	t.sink.OnLevelEnd(level, iterations)
}

// Compile-time checks to ensure sinks satisfy ProgressSink.
var (
	_ ProgressSink = NoopProgress{}
	_ ProgressSink = (*SlogProgress)(nil)
	_ ProgressSink = (*ThrottledProgress)(nil)
)
