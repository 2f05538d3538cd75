package hmm

import (
	"fmt"
	"math"
)

// Model is a two-state Hidden Markov Model with boolean observations.
//
// transition[i][j] is P(X_{t+1}=j | X_t=i). sensor[0] holds the
// per-state likelihood of observing true, sensor[1] of observing false.
// All fields are fixed at construction.
type Model struct {
	transition [2][2]float64
	sensor     [2][2]float64
	prior      [2]float64
}

// New validates the matrices and builds a Model. opts may be nil, in
// which case DefaultOptions apply (a uniform prior).
//
// Transition rows and the prior must each sum to 1 within 1e-9;
// every entry must lie in [0,1]. Sensor rows are likelihood vectors
// and carry no mass constraint.
func New(transition, sensor [2][2]float64, opts *Options) (*Model, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if transition[i][j] < 0 || transition[i][j] > 1 {
				return nil, fmt.Errorf("New: transition[%d][%d]=%v: %w", i, j, transition[i][j], ErrProbRange)
			}
			if sensor[i][j] < 0 || sensor[i][j] > 1 {
				return nil, fmt.Errorf("New: sensor[%d][%d]=%v: %w", i, j, sensor[i][j], ErrProbRange)
			}
		}
		if m := transition[i][0] + transition[i][1]; math.Abs(m-1) > rowMassTolerance {
			return nil, fmt.Errorf("New: transition row %d sums to %v: %w", i, m, ErrRowMass)
		}
	}
	for i, p := range o.Prior {
		if p < 0 || p > 1 {
			return nil, fmt.Errorf("New: prior[%d]=%v: %w", i, p, ErrProbRange)
		}
	}
	if m := o.Prior[0] + o.Prior[1]; math.Abs(m-1) > rowMassTolerance {
		return nil, fmt.Errorf("New: prior sums to %v: %w", m, ErrRowMass)
	}
	return &Model{transition: transition, sensor: sensor, prior: o.Prior}, nil
}

// Prior returns the initial state distribution.
func (m *Model) Prior() [2]float64 { return m.prior }

// Transition returns the transition matrix, row per source state.
func (m *Model) Transition() [2][2]float64 { return m.transition }

// SensorDist returns the per-state likelihood vector of the given
// observation value.
func (m *Model) SensorDist(ev bool) [2]float64 {
	if ev {
		return m.sensor[0]
	}
	return m.sensor[1]
}

// normalize2 scales a two-component vector to unit mass.
func normalize2(v [2]float64) ([2]float64, error) {
	total := v[0] + v[1]
	if total == 0 {
		return [2]float64{}, ErrZeroBelief
	}
	return [2]float64{v[0] / total, v[1] / total}, nil
}
