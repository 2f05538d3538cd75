// Package mcl implements Monte Carlo localization: estimating a robot's
// pose on an occupancy grid with a particle population.
//
// What:
//
//   - Map wraps a rectangular occupancy grid (true = obstacle). It
//     samples uniform random poses over the free cells and ray-casts
//     range readings from a pose toward one of four sensor directions.
//   - Pose is a grid position plus a heading (north, east, south, west).
//   - Localize performs one filter step: move every particle through the
//     caller's motion model, weigh it by the product of sensor
//     likelihoods over the observed range readings, and resample the
//     population by weight. A nil population bootstraps from uniform
//     random poses.
//
// Why:
//
//   - The motion and sensor models are plain functions supplied by the
//     caller, so the same filter serves exact kinematics, noisy odometry
//     or any range-sensor error profile.
//
// Determinism:
//
//	All randomness flows through the supplied *rand.Rand; a nil source
//	falls back to the package defaults with a fixed seed, so runs
//	without an explicit source are reproducible.
//
// Errors:
//
//   - ErrEmptyGrid:      a map with no rows or no columns.
//   - ErrNonRectangular: grid rows of unequal length.
//   - ErrNoFreeCell:     a fully occupied grid, which cannot be sampled.
//   - ErrSensorIndex:    a ray-cast direction outside 0..3.
//   - ErrSensorCount:    more range readings than sensor directions.
//   - ErrParticleCount:  a non-positive population size.
//   - ErrPopulationSize: a supplied population whose length differs
//     from the requested size.
//   - ErrNilModel:       a missing motion or sensor model.
package mcl
