package probdist

import (
	"fmt"
	"strings"
)

// Joint is a discrete probability distribution over an ordered tuple of
// variables. Entries are keyed by value tuples aligned positionally with
// the variable list; an Event form is accepted wherever a tuple is.
// Per variable, the distinct values seen so far are tracked in insertion
// order so full-joint enumeration can walk each variable's domain.
//
// Example:
//
//	j := probdist.NewJoint("X", "Y")
//	_ = j.Set(0.25, 1, 1)
//	p, _ := j.At(1, 1) // 0.25
type Joint struct {
	variables []string
	prob      map[string]float64
	seen      map[string][]Value
	seenSet   map[string]map[Value]struct{}
}

// NewJoint returns an empty joint distribution over the given variables,
// in the given order.
func NewJoint(variables ...string) *Joint {
	vars := make([]string, len(variables))
	copy(vars, variables)
	return &Joint{
		variables: vars,
		prob:      make(map[string]float64),
		seen:      make(map[string][]Value),
		seenSet:   make(map[string]map[Value]struct{}),
	}
}

// Variables returns the ordered variable list. The slice is a copy.
func (j *Joint) Variables() []string {
	out := make([]string, len(j.variables))
	copy(out, j.variables)
	return out
}

// At returns P(vals), where vals aligns positionally with Variables().
// Unseen tuples have zero mass. Returns ErrArity on length mismatch.
func (j *Joint) At(vals ...Value) (float64, error) {
	if len(vals) != len(j.variables) {
		return 0, fmt.Errorf("Joint.At: got %d values for %d variables: %w",
			len(vals), len(j.variables), ErrArity)
	}
	return j.prob[tupleKey(vals)], nil
}

// AtEvent returns P(e), projecting e onto the joint's variable order.
// Every joint variable must be bound in e.
func (j *Joint) AtEvent(e Event) (float64, error) {
	vals, err := EventValues(e, j.variables)
	if err != nil {
		return 0, fmt.Errorf("Joint.AtEvent: %w", err)
	}
	return j.prob[tupleKey(vals)], nil
}

// Set assigns P(vals) = p and records each value under its variable's
// observed domain. Returns ErrArity on length mismatch.
func (j *Joint) Set(p float64, vals ...Value) error {
	if len(vals) != len(j.variables) {
		return fmt.Errorf("Joint.Set: got %d values for %d variables: %w",
			len(vals), len(j.variables), ErrArity)
	}
	j.prob[tupleKey(vals)] = p
	for i, name := range j.variables {
		j.observe(name, vals[i])
	}
	return nil
}

// SetEvent assigns P(e) = p, projecting e onto the joint's variable order.
func (j *Joint) SetEvent(e Event, p float64) error {
	vals, err := EventValues(e, j.variables)
	if err != nil {
		return fmt.Errorf("Joint.SetEvent: %w", err)
	}
	return j.Set(p, vals...)
}

// Values returns the distinct values observed so far for the variable, in
// insertion order. Unknown variables have an empty domain.
func (j *Joint) Values(varname string) []Value {
	out := make([]Value, len(j.seen[varname]))
	copy(out, j.seen[varname])
	return out
}

// observe records v as part of varname's domain, once.
func (j *Joint) observe(varname string, v Value) {
	set, ok := j.seenSet[varname]
	if !ok {
		set = make(map[Value]struct{})
		j.seenSet[varname] = set
	}
	if _, dup := set[v]; dup {
		return
	}
	set[v] = struct{}{}
	j.seen[varname] = append(j.seen[varname], v)
}

// String implements fmt.Stringer.
func (j *Joint) String() string {
	return fmt.Sprintf("P(%s)", strings.Join(j.variables, ", "))
}
