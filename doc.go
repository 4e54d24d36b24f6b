// Package capclust provides clustering algorithms with per-cluster capacity
// (size-ratio) constraints for Go.
//
// Ordinary clustering (e.g. k-means) minimizes distortion without any control
// over how many points end up in each cluster. Capclust solves the variant
// where each cluster's share of the population must approximately match a
// prescribed target fraction, optionally with some points pinned ("anchored")
// to specific clusters:
//
//   - annealing: entropy-regularized deterministic annealing solver that
//     drives a decreasing temperature schedule and couples soft (Gibbs)
//     assignments with capacity-enforcing multipliers
//   - distance: pluggable pairwise distance capability (default Euclidean)
//   - modelstore: persistence for fitted models (in-memory, local filesystem)
//
// # Quick Start
//
//	ctx := context.Background()
//	solver, err := annealing.New(2, []float64{0.5, 0.5},
//	    func(o *annealing.Options) {
//	        o.Seed = 42
//	    })
//	if err != nil {
//	    panic(err)
//	}
//	if err := solver.Fit(ctx, points); err != nil {
//	    panic(err)
//	}
//	labels := solver.Labels()
//	centers := solver.Centers()
//
// Anchor points to a cluster for the duration of one fit:
//
//	err = solver.Fit(ctx, points, func(o *capclust.FitOptions) {
//	    o.FixedPoints = map[int][]int{0: {3, 7}}
//	})
//
// Capacity satisfaction is best effort: the solver keeps the first
// temperature level at which every cluster is populated within capacity, and
// otherwise falls back to the level with the smallest deviation in realized
// cluster count. Predictions on new data are never capacity-enforced.
package capclust
