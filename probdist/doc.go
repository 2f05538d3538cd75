// Package probdist implements discrete probability distributions:
// single-variable mass tables (Dist) and joint tables over a fixed
// ordered set of variables (Joint).
//
// What:
//
//   - Dist maps a value of one named random variable to a probability mass.
//   - Joint maps a tuple of values, aligned to an ordered variable list,
//     to a probability mass, and records each variable's observed domain.
//   - Event is a {variable: value} assignment shared by every inference
//     algorithm in this module; extension is copy-on-write.
//
// Why:
//
//   - Query answers: every ask-style algorithm returns a normalized Dist.
//   - Full-joint models: Joint backs enumeration over small joint tables.
//   - Evidence plumbing: Event projections convert between tuple and
//     mapping forms without aliasing caller state.
//
// Complexity:
//
//   - P / Set:      O(1) amortized.
//   - Normalize:    O(k), k = number of distinct values.
//   - EventValues:  O(len(variables)).
//
// Errors:
//
//   - ErrZeroMass:        normalizing a distribution whose total mass is 0.
//   - ErrArity:           a value tuple does not match the variable count.
//   - ErrUnboundVariable: an event lacks a value for a required variable.
//
// Absence is zero mass: looking up a value never assigned returns 0, not
// an error. Nothing here is goroutine-safe; distributions are cheap,
// short-lived values.
package probdist
