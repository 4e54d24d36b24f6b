package annealing

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/capclust/distance"
)

// levelState is the explicit, immutable-per-step state of one temperature
// level's inner loop. Each step consumes a state and returns its successor;
// nothing is mutated in place, which keeps individual steps testable in
// isolation.
type levelState struct {
	t       float64
	beta    float64
	eta     []float64
	centers *mat.Dense
	gibbs   *mat.Dense
	labels  []int
}

// initLevelState seeds a fresh state for a temperature level: centers are k
// distinct points sampled at random (overridden by anchor means), eta is
// reset to the target distribution.
func initLevelState(x *mat.Dense, k int, lambda []float64, anchors anchorSet, rng *rand.Rand, temperature float64) levelState {
	n, d := x.Dims()

	centers := mat.NewDense(k, d, nil)
	perm := rng.Perm(n)
	for j := 0; j < k; j++ {
		centers.SetRow(j, x.RawRowView(perm[j]))
	}
	anchors.applyCenters(centers, x)

	eta := make([]float64, k)
	copy(eta, lambda)

	return levelState{
		t:       temperature,
		beta:    0,
		eta:     eta,
		centers: centers,
		gibbs:   nil,
		labels:  nil,
	}
}

// step advances the inner loop by one iteration: eta fixed-point step, Gibbs
// update, anchor enforcement, center update, temperature decay, hard labels.
func step(s levelState, x *mat.Dense, lambda, demand []float64, anchors anchorSet, pairwise distance.PairwiseFunc) levelState {
	beta := 1 / s.t

	dists := pairwise(x, s.centers)
	eta := updateEta(lambda, s.eta, demand, dists, beta)
	gibbs := updateGibbs(eta, dists, beta)
	anchors.applyGibbs(gibbs)
	centers := updateCenters(demand, gibbs, x, s.centers)
	anchors.applyCenters(centers, x)

	return levelState{
		t:       s.t * 0.999,
		beta:    beta,
		eta:     eta,
		centers: centers,
		gibbs:   gibbs,
		labels:  argmaxRows(gibbs),
	}
}
