package factor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bayes/probdist"
)

// Factor is an unnormalized table over an ordered variable set, keyed by
// value tuples aligned with Vars(). Entries hold plain real values; no
// normalization invariant applies until the factor is reduced to a single
// variable and converted to a distribution.
type Factor struct {
	vars  []string
	table map[string]entry
}

// entry keeps the decoded value tuple beside its table value so factors
// can be converted and re-projected without a domain lookup.
type entry struct {
	vals []probdist.Value
	p    float64
}

// New returns an empty factor over the given variables, in order.
func New(vars ...string) *Factor {
	vs := make([]string, len(vars))
	copy(vs, vars)
	return &Factor{vars: vs, table: make(map[string]entry)}
}

// Vars returns the factor's ordered variables. The slice is a copy.
func (f *Factor) Vars() []string {
	out := make([]string, len(f.vars))
	copy(out, f.vars)
	return out
}

// Set assigns the table value for the given value tuple.
// Returns ErrArity on length mismatch.
func (f *Factor) Set(p float64, vals ...probdist.Value) error {
	if len(vals) != len(f.vars) {
		return fmt.Errorf("Factor.Set: got %d values for %d variables: %w",
			len(vals), len(f.vars), ErrArity)
	}
	vs := make([]probdist.Value, len(vals))
	copy(vs, vals)
	f.table[tupleKey(vs)] = entry{vals: vs, p: p}
	return nil
}

// At returns the table value for the given value tuple. An assignment the
// table does not cover is ErrMissingEntry, never a default.
func (f *Factor) At(vals ...probdist.Value) (float64, error) {
	if len(vals) != len(f.vars) {
		return 0, fmt.Errorf("Factor.At: got %d values for %d variables: %w",
			len(vals), len(f.vars), ErrArity)
	}
	e, ok := f.table[tupleKey(vals)]
	if !ok {
		return 0, fmt.Errorf("Factor.At: %v: %w", vals, ErrMissingEntry)
	}
	return e.p, nil
}

// AtEvent returns the table value under ev's projection onto the factor's
// variables. Every factor variable must be bound in ev.
func (f *Factor) AtEvent(ev probdist.Event) (float64, error) {
	vals, err := probdist.EventValues(ev, f.vars)
	if err != nil {
		return 0, fmt.Errorf("Factor.AtEvent: %w", err)
	}
	e, ok := f.table[tupleKey(vals)]
	if !ok {
		return 0, fmt.Errorf("Factor.AtEvent: %v: %w", vals, ErrMissingEntry)
	}
	return e.p, nil
}

// Total returns the sum of all table values.
func (f *Factor) Total() float64 {
	var total float64
	for _, e := range f.table {
		total += e.p
	}
	return total
}

// Mentions reports whether varname is one of the factor's variables.
func (f *Factor) Mentions(varname string) bool {
	for _, v := range f.vars {
		if v == varname {
			return true
		}
	}
	return false
}

// PointwiseProduct multiplies f and g. The result ranges over the union
// of their variable sets (f's order first, then g's remainder); each
// result value is the product of the inputs' values under their own
// projections of the joint assignment, enumerated over dom.
// Complexity: O(d^|union|).
func (f *Factor) PointwiseProduct(g *Factor, dom Domains) (*Factor, error) {
	union := make([]string, 0, len(f.vars)+len(g.vars))
	union = append(union, f.vars...)
	for _, v := range g.vars {
		if !f.Mentions(v) {
			union = append(union, v)
		}
	}

	out := New(union...)
	events, err := AllEvents(union, dom, nil)
	if err != nil {
		return nil, fmt.Errorf("PointwiseProduct: %w", err)
	}
	for _, ev := range events {
		pf, err := f.AtEvent(ev)
		if err != nil {
			return nil, fmt.Errorf("PointwiseProduct: %w", err)
		}
		pg, err := g.AtEvent(ev)
		if err != nil {
			return nil, fmt.Errorf("PointwiseProduct: %w", err)
		}
		vals, _ := probdist.EventValues(ev, union)
		if err := out.Set(pf*pg, vals...); err != nil {
			return nil, fmt.Errorf("PointwiseProduct: %w", err)
		}
	}
	return out, nil
}

// SumOut eliminates varname by summing the table over its full domain,
// with the remaining variables held fixed.
// Complexity: O(d^k).
func (f *Factor) SumOut(varname string, dom Domains) (*Factor, error) {
	rest := make([]string, 0, len(f.vars))
	for _, v := range f.vars {
		if v != varname {
			rest = append(rest, v)
		}
	}
	domain, err := dom.VariableValues(varname)
	if err != nil {
		return nil, fmt.Errorf("SumOut(%q): %w", varname, err)
	}

	out := New(rest...)
	events, err := AllEvents(rest, dom, nil)
	if err != nil {
		return nil, fmt.Errorf("SumOut(%q): %w", varname, err)
	}
	for _, ev := range events {
		var sum float64
		for _, val := range domain {
			p, err := f.AtEvent(ev.Extend(varname, val))
			if err != nil {
				return nil, fmt.Errorf("SumOut(%q): %w", varname, err)
			}
			sum += p
		}
		vals, _ := probdist.EventValues(ev, rest)
		if err := out.Set(sum, vals...); err != nil {
			return nil, fmt.Errorf("SumOut(%q): %w", varname, err)
		}
	}
	return out, nil
}

// Normalize converts a single-variable factor into a normalized
// distribution by direct relabeling. A factor still ranging over more (or
// fewer) than one variable is ErrMultiVariable: extracting an answer from
// a multi-variable residual means the elimination order was wrong.
func (f *Factor) Normalize() (*probdist.Dist, error) {
	if len(f.vars) != 1 {
		return nil, fmt.Errorf("Factor.Normalize: %d variables remain: %w",
			len(f.vars), ErrMultiVariable)
	}
	freqs := make(map[probdist.Value]float64, len(f.table))
	for _, e := range f.table {
		freqs[e.vals[0]] = e.p
	}
	d, err := probdist.FromFreqs(f.vars[0], freqs)
	if err != nil {
		return nil, fmt.Errorf("Factor.Normalize: %w", err)
	}
	return d, nil
}

// tupleKey encodes a value tuple as a table key.
func tupleKey(vals []probdist.Value) string {
	var b strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&b, "%#v\x1f", v)
	}
	return b.String()
}
