// Package distance provides the pluggable distance capability used by the
// clustering solvers.
//
// Solvers consume distances exclusively through PairwiseFunc, a single
// operation computing the full pairwise matrix between two point sets. Any
// point-pair metric can be lifted into a PairwiseFunc with Pairwise, so
// alternative metrics (e.g. Mahalanobis) can be substituted without touching
// the solvers.
//
// # Supported Metrics
//
//   - MetricEuclidean: Euclidean (L2) distance (default)
//   - MetricSquaredEuclidean: squared Euclidean distance
//   - MetricManhattan: Manhattan (L1) distance
//   - MetricCosine: cosine distance (1 - cosine similarity)
//
// # Usage
//
//	pairwise, err := distance.PairwiseProvider(distance.MetricEuclidean)
//	d := pairwise(x, centers) // n×k matrix
//
//	custom := distance.Pairwise(func(a, b []float64) float64 { ... })
package distance
