// Package probdist defines the value, event and error types shared by the
// distribution tables and by every inference package in this module.
package probdist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for distribution operations.
var (
	// ErrZeroMass indicates an attempt to normalize a distribution whose
	// total mass is exactly zero (e.g. every rejection sample discarded).
	ErrZeroMass = errors.New("probdist: cannot normalize zero total mass")
	// ErrArity indicates a value tuple whose length does not match the
	// distribution's variable count.
	ErrArity = errors.New("probdist: value tuple does not match variable count")
	// ErrUnboundVariable indicates an event that assigns no value to a
	// variable the operation requires.
	ErrUnboundVariable = errors.New("probdist: event does not bind required variable")
)

// Value is a single outcome of a discrete random variable. Values must be
// comparable (bool, string, int, ...); booleans are the common case for
// Bayesian-network variables.
type Value = any

// Event assigns values to named variables. Evidence, samples and partial
// assignments during enumeration are all Events.
type Event map[string]Value

// Extend returns a copy of e with name bound to v. The receiver is never
// mutated, so recursive enumeration can branch without aliasing.
// Complexity: O(len(e)).
func (e Event) Extend(name string, v Value) Event {
	out := make(Event, len(e)+1)
	for k, ev := range e {
		out[k] = ev
	}
	out[name] = v
	return out
}

// EventValues projects e onto the ordered variable list, returning one
// value per variable. Returns ErrUnboundVariable if any variable is absent.
// Complexity: O(len(variables)).
func EventValues(e Event, variables []string) ([]Value, error) {
	vals := make([]Value, len(variables))
	for i, name := range variables {
		v, ok := e[name]
		if !ok {
			return nil, fmt.Errorf("EventValues: %q: %w", name, ErrUnboundVariable)
		}
		vals[i] = v
	}
	return vals, nil
}

// tupleKey encodes a value tuple as a map key. The unit separator keeps
// adjacent encodings from colliding.
func tupleKey(vals []Value) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%#v\x1f", v)
	}
	return b.String()
}

// displayKey is the sort key used when rendering a distribution.
func displayKey(v Value) string { return fmt.Sprint(v) }
