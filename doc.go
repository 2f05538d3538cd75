// Package bayes is your in-memory toolkit for reasoning under uncertainty —
// from discrete probability distributions to Bayesian-network inference and
// temporal state estimation.
//
// 🚀 What is bayes?
//
//	A modern, deterministic-by-default library that brings together:
//		• Distributions: single-variable and joint discrete mass tables
//		• Network model: explicit-table and boolean-shorthand CPT nodes
//		• Factor algebra: pointwise product, sum-out, elimination residuals
//		• Exact inference: full-joint enumeration & variable elimination
//		• Sampling: prior, rejection, likelihood weighting, Gibbs
//		• Temporal models: 2-state HMM smoothing, particle filtering, MCL
//
// ✨ Why choose bayes?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every stochastic routine takes a seeded RNG
//   - Fail-fast – sentinel errors for every precondition, no silent repair
//   - Extensible – networks are plain values; nodes are a small interface
//
// Under the hood, everything is organized in focused subpackages:
//
//	probdist/ — ProbDist & JointProbDist mass tables with normalization
//	bayesnet/ — conditional probability tables, nodes & topological nets
//	factor/   — unnormalized variable-indexed tables for elimination
//	exact/    — enumeration ask & variable elimination
//	sampling/ — prior, rejection, likelihood-weighting & Gibbs estimators
//	hmm/      — forward/backward, fixed-lag smoothing & particle filter
//	mcl/      — occupancy-grid maps & Monte Carlo localization
//	rng/      — deterministic randomness & weighted resampling primitives
//
// Quick ASCII example (the classic alarm network):
//
//	  Burglary   Earthquake
//	       \       /
//	        Alarm
//	       /     \
//	  JohnCalls  MaryCalls
//
// Dive into the package docs for full examples, complexity notes and the
// error contracts of every algorithm.
//
//	go get github.com/katalvlaran/bayes
package bayes
