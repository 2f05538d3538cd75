package exact

import (
	"fmt"

	"github.com/katalvlaran/bayes/bayesnet"
	"github.com/katalvlaran/bayes/probdist"
)

// EnumerateJointAsk returns the distribution of X given the observations
// e, computed against the explicit joint distribution P: for each value
// of X, the masses of all entries consistent with e are summed, then the
// result is normalized across X's values.
// Returns ErrQueryInEvidence when X is observed.
// Complexity: O(d^h), h = number of hidden variables.
func EnumerateJointAsk(X string, e probdist.Event, P *probdist.Joint) (*probdist.Dist, error) {
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("EnumerateJointAsk(%q): %w", X, ErrQueryInEvidence)
	}

	var hiddenVars []string
	for _, v := range P.Variables() {
		if hidden(v, []string{X}, e) {
			hiddenVars = append(hiddenVars, v)
		}
	}

	q := probdist.New(X)
	for _, xi := range P.Values(X) {
		p, err := enumerateJoint(hiddenVars, e.Extend(X, xi), P)
		if err != nil {
			return nil, fmt.Errorf("EnumerateJointAsk(%q): %w", X, err)
		}
		q.Set(xi, p)
	}
	if err := q.Normalize(); err != nil {
		return nil, fmt.Errorf("EnumerateJointAsk(%q): %w", X, err)
	}
	return q, nil
}

// enumerateJoint sums P over every assignment of the remaining variables,
// extending e copy-on-write so sibling branches never alias.
func enumerateJoint(variables []string, e probdist.Event, P *probdist.Joint) (float64, error) {
	if len(variables) == 0 {
		return P.AtEvent(e)
	}
	Y, rest := variables[0], variables[1:]
	var sum float64
	for _, y := range P.Values(Y) {
		p, err := enumerateJoint(rest, e.Extend(Y, y), P)
		if err != nil {
			return 0, err
		}
		sum += p
	}
	return sum, nil
}

// EnumerationAsk returns the distribution of X given evidence e in the
// network bn, by full recursive enumeration of the network's joint.
// Returns ErrQueryInEvidence when X is observed and
// bayesnet.ErrUnknownVariable when X is not a network variable.
// Complexity: O(d^n).
func EnumerationAsk(X string, e probdist.Event, bn *bayesnet.Net) (*probdist.Dist, error) {
	if _, observed := e[X]; observed {
		return nil, fmt.Errorf("EnumerationAsk(%q): %w", X, ErrQueryInEvidence)
	}
	domain, err := bn.VariableValues(X)
	if err != nil {
		return nil, fmt.Errorf("EnumerationAsk: %w", err)
	}

	q := probdist.New(X)
	for _, xi := range domain {
		p, err := enumerateAll(bn.Variables(), e.Extend(X, xi), bn)
		if err != nil {
			return nil, fmt.Errorf("EnumerationAsk(%q): %w", X, err)
		}
		q.Set(xi, p)
	}
	if err := q.Normalize(); err != nil {
		return nil, fmt.Errorf("EnumerationAsk(%q): %w", X, err)
	}
	return q, nil
}

// enumerateAll returns the sum over hidden-variable assignments of the
// joint probability of variables, consistent with e. variables must be in
// topological order so every node's parents are bound before its own
// conditional is read.
func enumerateAll(variables []string, e probdist.Event, bn *bayesnet.Net) (float64, error) {
	if len(variables) == 0 {
		return 1, nil
	}
	Y, rest := variables[0], variables[1:]
	node, err := bn.Node(Y)
	if err != nil {
		return 0, err
	}

	if y, observed := e[Y]; observed {
		p, err := node.P(y, e)
		if err != nil {
			return 0, err
		}
		tail, err := enumerateAll(rest, e, bn)
		if err != nil {
			return 0, err
		}
		return p * tail, nil
	}

	var sum float64
	for _, y := range node.Values() {
		ey := e.Extend(Y, y)
		p, err := node.P(y, ey)
		if err != nil {
			return 0, err
		}
		tail, err := enumerateAll(rest, ey, bn)
		if err != nil {
			return 0, err
		}
		sum += p * tail
	}
	return sum, nil
}
