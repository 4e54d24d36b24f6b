package annealing

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust"
)

// candidate is the outcome of one temperature level: the solution it
// converged to plus the bookkeeping the scheduler selects on.
type candidate struct {
	labels     []int
	centers    *mat.Dense
	eta        []float64
	beta       float64
	iterations int
	realized   int
	satisfied  bool
}

// levelRNG derives the random generator for one temperature level. Per-level
// seeding keeps sequential and speculative execution bit-identical.
func (s *Solver) levelRNG(level int) *rand.Rand {
	return rand.New(rand.NewSource(s.opts.Seed + int64(level)))
}

// runLevel runs the inner fixed-point loop for one temperature level.
func (s *Solver) runLevel(ctx context.Context, level int, x *mat.Dense, demand []float64, anchors anchorSet, capacity []float64) (candidate, error) {
	start := time.Now()
	temperature := s.opts.Temperatures[level]

	if s.opts.Progress != nil {
		s.opts.Progress.OnLevelStart(level, temperature)
	}

	st := initLevelState(x, s.k, s.lambda, anchors, s.levelRNG(level), temperature)

	var (
		iters     int
		unchanged int
		prev      []int
		counts    []int
		sat       bool
	)
	for i := 0; i < s.opts.MaxIters; i++ {
		select {
		case <-ctx.Done():
			return candidate{}, ctx.Err()
		default:
		}

		st = step(st, x, s.lambda, demand, anchors, s.pairwise)
		iters++

		counts = countLabels(st.labels, s.k)
		sat = satisfied(counts, capacity)

		if s.opts.Progress != nil {
			s.opts.Progress.OnIteration(capclust.IterationInfo{
				Level:            level,
				Iteration:        i,
				Temperature:      st.t,
				RealizedClusters: realizedClusters(counts),
				Satisfied:        sat,
			})
		}

		if sat {
			break
		}

		if s.opts.LabelsUnchangedThreshold > 0 {
			if prev != nil && equalLabels(prev, st.labels) {
				unchanged++
				if unchanged >= s.opts.LabelsUnchangedThreshold {
					break
				}
			} else {
				unchanged = 0
			}
		}
		prev = st.labels
	}

	if s.opts.Progress != nil {
		s.opts.Progress.OnLevelEnd(level, iters)
	}

	realized := realizedClusters(counts)
	s.metrics.RecordLevel(level, iters, sat, time.Since(start))
	s.logger.LogLevel(ctx, level, temperature, iters, realized)

	return candidate{
		labels:     st.labels,
		centers:    st.centers,
		eta:        st.eta,
		beta:       st.beta,
		iterations: iters,
		realized:   realized,
		satisfied:  sat,
	}, nil
}

// runSequential walks the schedule in order and stops at the first level
// whose result realizes all k clusters. If none does, the level with the
// smallest realized-count deviation wins.
func (s *Solver) runSequential(ctx context.Context, x *mat.Dense, demand []float64, anchors anchorSet, capacity []float64) (candidate, int, error) {
	var candidates []candidate

	for level := range s.opts.Temperatures {
		cand, err := s.runLevel(ctx, level, x, demand, anchors, capacity)
		if err != nil {
			return candidate{}, level, err
		}
		candidates = append(candidates, cand)

		if cand.realized == s.k {
			return cand, level + 1, nil
		}
	}

	return bestByDeviation(candidates, s.k), len(s.opts.Temperatures), nil
}

// runSpeculative runs all temperature levels concurrently, bounded by
// SpeculativeLevels workers, then selects exactly the level sequential
// execution would have selected: the earliest level realizing all k
// clusters, else the minimal-deviation fallback.
func (s *Solver) runSpeculative(ctx context.Context, x *mat.Dense, demand []float64, anchors anchorSet, capacity []float64) (candidate, int, error) {
	candidates := make([]candidate, len(s.opts.Temperatures))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.SpeculativeLevels)

	for level := range s.opts.Temperatures {
		level := level
		g.Go(func() error {
			cand, err := s.runLevel(gctx, level, x, demand, anchors, capacity)
			if err != nil {
				return err
			}
			candidates[level] = cand
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, 0, err
	}

	for level, cand := range candidates {
		if cand.realized == s.k {
			return cand, level + 1, nil
		}
	}
	return bestByDeviation(candidates, s.k), len(candidates), nil
}

// bestByDeviation selects the candidate with minimal |realized − k|,
// earliest level winning ties.
func bestByDeviation(candidates []candidate, k int) candidate {
	best := 0
	bestDiff := abs(candidates[0].realized - k)
	for i, cand := range candidates[1:] {
		if diff := abs(cand.realized - k); diff < bestDiff {
			best = i + 1
			bestDiff = diff
		}
	}
	return candidates[best]
}

func equalLabels(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
