// Package factor implements the unnormalized, variable-indexed tables that
// variable elimination manipulates.
//
// What:
//
//   - Factor ranges over an explicit ordered variable set and maps value
//     tuples to unnormalized real values.
//   - PointwiseProduct combines two factors over the union of their
//     variables; each result entry is the product of the inputs' values
//     under their own projections of the joint assignment.
//   - SumOut eliminates one variable by summing the table over that
//     variable's full domain with the rest held fixed.
//   - Normalize converts a single-variable residual into a probdist.Dist;
//     a multi-variable residual is a contract violation, not a value.
//
// Why:
//
//   - Elimination order correctness: forcing the final residual down to
//     one variable makes a mis-ordered elimination an explicit failure.
//   - Decoupling: factors enumerate domains through the small Domains
//     interface, so the algebra does not depend on the network type.
//
// Complexity (d = max domain size, k = variable count):
//
//   - PointwiseProduct: O(d^|union|) time and memory.
//   - SumOut:           O(d^k) time, O(d^(k−1)) memory.
//   - Normalize:        O(d).
//
// Errors:
//
//   - ErrArity:         a value tuple does not match the variable count.
//   - ErrMissingEntry:  a lookup for an assignment outside the table.
//   - ErrMultiVariable: Normalize on a factor with ≠ 1 variable.
//
// Factors are intermediates: built, combined and discarded within a
// single elimination run, never persisted.
package factor
