package probdist

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// normTolerance is the slack within which a total mass counts as already
// normalized and Normalize leaves the table untouched.
const normTolerance = 1e-9

// Dist is a discrete probability distribution over the values of a single
// named random variable. Values are discovered on first assignment and
// their insertion order is preserved for display.
//
// Example:
//
//	d := probdist.New("Flip")
//	d.Set("H", 0.25)
//	d.Set("T", 0.75)
//	_ = d.P("H") // 0.25
type Dist struct {
	varname string
	prob    map[Value]float64
	values  []Value
}

// New returns an empty distribution over the variable varname.
func New(varname string) *Dist {
	return &Dist{
		varname: varname,
		prob:    make(map[Value]float64),
	}
}

// FromFreqs builds a distribution from value→frequency pairs and
// normalizes it. Returns ErrZeroMass when the frequencies sum to zero.
// Values are inserted in a stable (display-sorted) order so results are
// reproducible regardless of map iteration.
// Complexity: O(k log k).
func FromFreqs(varname string, freqs map[Value]float64) (*Dist, error) {
	d := New(varname)
	ordered := make([]Value, 0, len(freqs))
	for v := range freqs {
		ordered = append(ordered, v)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return displayKey(ordered[i]) < displayKey(ordered[j])
	})
	for _, v := range ordered {
		d.Set(v, freqs[v])
	}
	if err := d.Normalize(); err != nil {
		return nil, fmt.Errorf("FromFreqs: %w", err)
	}
	return d, nil
}

// Var returns the name of the random variable.
func (d *Dist) Var() string { return d.varname }

// P returns the probability mass assigned to v, or 0 if v was never
// assigned. Absence is zero mass, not an error.
func (d *Dist) P(v Value) float64 { return d.prob[v] }

// Set assigns P(v) = p, recording v's insertion order on first sight.
func (d *Dist) Set(v Value, p float64) {
	if _, seen := d.prob[v]; !seen {
		d.values = append(d.values, v)
	}
	d.prob[v] = p
}

// Values returns the assigned values in insertion order. The slice is a
// copy; mutating it does not affect the distribution.
func (d *Dist) Values() []Value {
	out := make([]Value, len(d.values))
	copy(out, d.values)
	return out
}

// Normalize scales every mass so the total is 1. If the total is already
// within normTolerance of 1 the table is left untouched. Returns
// ErrZeroMass when the total is exactly 0; the distribution is never
// silently coerced to uniform.
// Complexity: O(k).
func (d *Dist) Normalize() error {
	var total float64
	for _, p := range d.prob {
		total += p
	}
	if math.Abs(total-1) <= normTolerance {
		return nil
	}
	if total == 0 {
		return ErrZeroMass
	}
	for v := range d.prob {
		d.prob[v] /= total
	}
	return nil
}

// Approx renders the distribution as "value: prob" pairs, rounded to three
// significant digits and sorted by value display, matching across runs.
func (d *Dist) Approx() string {
	ordered := d.Values()
	sort.Slice(ordered, func(i, j int) bool {
		return displayKey(ordered[i]) < displayKey(ordered[j])
	})
	parts := make([]string, len(ordered))
	for i, v := range ordered {
		parts[i] = fmt.Sprintf("%v: %.3g", v, d.prob[v])
	}
	return strings.Join(parts, ", ")
}

// String implements fmt.Stringer.
func (d *Dist) String() string { return fmt.Sprintf("P(%s)", d.varname) }
