// Package bayesnet models discrete Bayesian networks: conditional
// probability tables attached to variables, and a topologically ordered
// node collection with parent/child bookkeeping.
//
// What:
//
//   - Node is the capability every conditional distribution exposes:
//     its variable, parents, value domain and P(X=value | parents=event).
//   - TableNode holds an explicit CPT over an arbitrary finite domain;
//     the domain is derived as the value set common to every row.
//   - BoolNode is the boolean specialization with two construction
//     shorthands (Prior, Rows), normalized once into a canonical
//     {parent tuple → {true: p, false: 1−p}} table.
//   - Net is an ordered node collection; parents must be added before
//     children, so declaration order is always a topological order.
//
// Why:
//
//   - Exact inference walks Net.Variables in topological order and asks
//     each node for conditional probabilities under a partial event.
//   - Sampling draws ancestrally along the same order.
//   - Gibbs resampling reads Net.Children to form Markov blankets.
//
// Errors:
//
//   - ErrDuplicateVariable:   adding a variable already in the net.
//   - ErrUnknownParent:       a node references a parent not yet added.
//   - ErrUnknownVariable:     looking up a variable the net does not hold.
//   - ErrEmptyCPT:            a node constructed with no table rows.
//   - ErrRowArity:            a row's parent tuple does not match arity.
//   - ErrInconsistentDomain:  CPT rows disagree on the value domain.
//   - ErrRowKey:              a boolean row key holds a non-'T'/'F' rune.
//   - ErrProbRange:           a table probability outside [0,1].
//   - ErrShorthandArity:      a Prior shorthand used with parents.
//   - ErrMissingRow:          a lookup for a parent tuple with no row.
//   - ErrValueNotInDomain:    a lookup for a value outside the domain.
//
// Nets and nodes are immutable once built (Add aside) and safe for
// concurrent readers during inference.
package bayesnet
