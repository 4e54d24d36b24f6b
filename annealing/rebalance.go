package annealing

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust"
)

// ErrRebalanceBudget is returned when rebalancing cannot satisfy capacity
// within its round budget. The fitted labels are left unchanged in that case.
var ErrRebalanceBudget = errors.New("rebalance: capacity still violated after round budget")

// rebalanceRoundBudget bounds the outer rebalancing loop. Moves between a
// cluster's two nearest neighbors can oscillate on adversarial inputs, so
// the loop must not be unbounded.
const rebalanceRoundBudget = 1000

// Rebalance redistributes excess points from overloaded clusters to their
// nearest alternative clusters until capacity is satisfied. It is an
// explicitly invoked post-processing step over the fitted labels — Fit never
// calls it, because it can break the nearest-center semantics Predict
// implies. x must be the point set of the last Fit call.
//
// On success the fitted labels are replaced with the rebalanced labels and
// returned. Overloaded clusters hand their excess to a randomly chosen one
// of their two nearest neighbor clusters (by center-to-center distance),
// moving the points with the smallest relative distance penalty first.
func (s *Solver) Rebalance(ctx context.Context, x *mat.Dense) ([]int, error) {
	start := time.Now()

	if !s.fitted {
		s.metrics.RecordRebalance(0, time.Since(start), capclust.ErrNotFitted)
		return nil, capclust.ErrNotFitted
	}
	n, _ := x.Dims()
	if n != len(s.labels) {
		err := &capclust.DemandLengthError{Expected: len(s.labels), Actual: n}
		s.metrics.RecordRebalance(0, time.Since(start), err)
		return nil, err
	}

	dists := s.pairwise(x, s.centers)
	adjacent := s.adjacentClusters()

	labels := make([]int, len(s.labels))
	copy(labels, s.labels)

	var moves int
	for round := 0; ; round++ {
		counts := countLabels(labels, s.k)
		if satisfied(counts, s.capacity) {
			break
		}
		if round >= rebalanceRoundBudget {
			s.metrics.RecordRebalance(moves, time.Since(start), ErrRebalanceBudget)
			s.logger.LogRebalance(ctx, moves, round, ErrRebalanceBudget)
			return nil, ErrRebalanceBudget
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		order := make([]int, 0, s.k)
		for j := 0; j < s.k; j++ {
			if counts[j] > 0 {
				order = append(order, j)
			}
		}
		s.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		for _, clusterID := range order {
			excess := counts[clusterID] - int(math.Floor(s.capacity[clusterID]))
			if excess <= 0 {
				continue
			}
			neighbors := adjacent[clusterID]
			if len(neighbors) == 0 {
				continue
			}
			target := neighbors[s.rng.Intn(len(neighbors))]

			members := make([]int, 0, counts[clusterID])
			for p, l := range labels {
				if l == clusterID {
					members = append(members, p)
				}
			}
			// Smallest relative penalty first: distance to the target minus
			// distance to the current cluster.
			sort.Slice(members, func(a, b int) bool {
				pa, pb := members[a], members[b]
				da := dists.At(pa, target) - dists.At(pa, clusterID)
				db := dists.At(pb, target) - dists.At(pb, clusterID)
				return da < db
			})
			if excess > len(members) {
				excess = len(members)
			}
			for _, p := range members[:excess] {
				labels[p] = target
			}
			counts[clusterID] -= excess
			counts[target] += excess
			moves += excess
		}
	}

	s.labels = labels
	s.metrics.RecordRebalance(moves, time.Since(start), nil)
	s.logger.LogRebalance(ctx, moves, 0, nil)

	out := make([]int, len(labels))
	copy(out, labels)
	return out, nil
}

// adjacentClusters maps every cluster to its two nearest other clusters by
// center-to-center distance.
func (s *Solver) adjacentClusters() [][]int {
	centerDists := s.pairwise(s.centers, s.centers)

	adjacent := make([][]int, s.k)
	for j := 0; j < s.k; j++ {
		order := make([]int, s.k)
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return centerDists.At(j, order[a]) < centerDists.At(j, order[b])
		})
		// order[0] is the cluster itself.
		limit := 3
		if limit > s.k {
			limit = s.k
		}
		adjacent[j] = order[1:limit]
	}
	return adjacent
}
