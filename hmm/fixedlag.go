package hmm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FixedLagSmoother performs online smoothing with a fixed delay: after
// each new observation at time t it emits the smoothed posterior for
// time t−d, once t exceeds the lag depth d.
//
// Internally it keeps the running forward belief and a 2×2 bridging
// matrix that relates the forward message at the trailing window edge
// to the evidence inside the window. Advancing the window multiplies
// the inverses of the sensor and transition matrices at the trailing
// edge and the fresh ones at the front.
//
// Not safe for concurrent use.
type FixedLagSmoother struct {
	m        *Model
	d        int
	t        int
	f        [2]float64
	bridge   *mat.Dense
	trans    *mat.Dense
	evidence []bool
}

// NewFixedLagSmoother builds a smoother with the given lag depth d ≥ 1.
func NewFixedLagSmoother(m *Model, d int) (*FixedLagSmoother, error) {
	if d < 1 {
		return nil, fmt.Errorf("NewFixedLagSmoother: d=%d: %w", d, ErrLag)
	}
	t := m.transition
	return &FixedLagSmoother{
		m: m,
		d: d,
		f: m.prior,
		bridge: mat.NewDense(2, 2, []float64{
			1, 0,
			0, 1,
		}),
		trans: mat.NewDense(2, 2, []float64{
			t[0][0], t[0][1],
			t[1][0], t[1][1],
		}),
	}, nil
}

// Observe folds one observation into the window. The returned bool is
// true once the smoother has seen more than d observations; from then
// on the accompanying vector is the smoothed posterior for the state d
// steps behind the newest observation.
func (s *FixedLagSmoother) Observe(ev bool) ([2]float64, bool, error) {
	s.evidence = append(s.evidence, ev)
	front := sensorDiag(s.m, ev)

	if s.t > s.d {
		f, err := Forward(s.m, s.f, ev)
		if err != nil {
			return [2]float64{}, false, fmt.Errorf("Observe: %w", err)
		}
		s.f = f

		trailing := sensorDiag(s.m, s.evidence[s.t-s.d-1])
		var invSensor, invTrans mat.Dense
		if err := invSensor.Inverse(trailing); err != nil {
			return [2]float64{}, false, fmt.Errorf("Observe: trailing sensor matrix: %w", err)
		}
		if err := invTrans.Inverse(s.trans); err != nil {
			return [2]float64{}, false, fmt.Errorf("Observe: transition matrix: %w", err)
		}
		// B ← O⁻¹ T⁻¹ B T O, dropping the trailing step and adding the new one.
		var a, b, c, next mat.Dense
		a.Mul(&invSensor, &invTrans)
		b.Mul(&a, s.bridge)
		c.Mul(&b, s.trans)
		next.Mul(&c, front)
		s.bridge = &next
	} else {
		var a, next mat.Dense
		a.Mul(s.bridge, s.trans)
		next.Mul(&a, front)
		s.bridge = &next
	}
	s.t++

	if s.t <= s.d {
		return [2]float64{}, false, nil
	}
	b := s.bridge
	out, err := normalize2([2]float64{
		s.f[0]*b.At(0, 0) + s.f[1]*b.At(1, 0),
		s.f[0]*b.At(0, 1) + s.f[1]*b.At(1, 1),
	})
	if err != nil {
		return [2]float64{}, false, fmt.Errorf("Observe: %w", err)
	}
	return out, true, nil
}

// sensorDiag is the diagonal observation matrix of a boolean evidence
// value under the model's sensor likelihoods.
func sensorDiag(m *Model, ev bool) *mat.Dense {
	d := m.SensorDist(ev)
	return mat.NewDense(2, 2, []float64{
		d[0], 0,
		0, d[1],
	})
}
