// Package annealing implements deterministic annealing for clustering with
// per-cluster capacity constraints.
//
// The solver relaxes hard cluster assignment into a temperature-controlled
// soft (Gibbs) assignment and couples it with per-cluster multipliers (eta)
// that steer assignment mass toward a target size distribution. A decreasing
// temperature schedule sharpens the assignment level by level; each level
// runs an inner fixed-point loop over three updates:
//
//   - eta: one fixed-point step matching demand-weighted soft-assignment
//     mass to the target distribution
//   - Gibbs: Boltzmann-like softmax over negative scaled distances,
//     reweighted by eta
//   - centers: demand-weighted centroids of the soft assignment
//
// The inner loop breaks as soon as the hard labels satisfy capacity (every
// cluster populated, none above its capacity). The scheduler keeps the first
// level whose result realizes all k clusters; if no level does, it falls
// back to the level with the smallest deviation in realized cluster count.
// Capacity satisfaction is therefore best effort.
//
// Points can be anchored to clusters for the duration of one fit; anchored
// points keep their labels through every iteration and dominate their
// cluster's center.
//
// Temperature levels are independent, so the solver optionally runs them
// speculatively in parallel (Options.SpeculativeLevels); per-level seeding
// keeps the result identical to sequential execution.
package annealing
