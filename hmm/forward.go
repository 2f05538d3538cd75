package hmm

import "fmt"

// Forward advances a filtered belief by one time step and folds in one
// observation: normalize(sensor(ev) ⊙ (f[0]·T₀ + f[1]·T₁)).
func Forward(m *Model, f [2]float64, ev bool) ([2]float64, error) {
	t := m.transition
	prediction := [2]float64{
		f[0]*t[0][0] + f[1]*t[1][0],
		f[0]*t[0][1] + f[1]*t[1][1],
	}
	sensor := m.SensorDist(ev)
	out, err := normalize2([2]float64{
		sensor[0] * prediction[0],
		sensor[1] * prediction[1],
	})
	if err != nil {
		return [2]float64{}, fmt.Errorf("Forward: %w", err)
	}
	return out, nil
}

// Backward passes a backward message one step toward the past, folding
// in the observation made at the later step.
func Backward(m *Model, b [2]float64, ev bool) ([2]float64, error) {
	t := m.transition
	sensor := m.SensorDist(ev)
	weighted := [2]float64{sensor[0] * b[0], sensor[1] * b[1]}
	out, err := normalize2([2]float64{
		weighted[0]*t[0][0] + weighted[1]*t[0][1],
		weighted[0]*t[1][0] + weighted[1]*t[1][1],
	})
	if err != nil {
		return [2]float64{}, fmt.Errorf("Backward: %w", err)
	}
	return out, nil
}

// ForwardBackward smooths a full observation sequence: it returns the
// posterior state distribution at every time step 1..len(ev), in time
// order, given all observations. The input slice is read only; an empty
// sequence yields an empty result.
func ForwardBackward(m *Model, ev []bool) ([][2]float64, error) {
	n := len(ev)
	forward := make([][2]float64, n+1)
	forward[0] = m.prior
	for i := 1; i <= n; i++ {
		f, err := Forward(m, forward[i-1], ev[i-1])
		if err != nil {
			return nil, fmt.Errorf("ForwardBackward: step %d: %w", i, err)
		}
		forward[i] = f
	}

	smoothed := make([][2]float64, n)
	b := [2]float64{1, 1}
	for i := n; i >= 1; i-- {
		s, err := normalize2([2]float64{forward[i][0] * b[0], forward[i][1] * b[1]})
		if err != nil {
			return nil, fmt.Errorf("ForwardBackward: step %d: %w", i, err)
		}
		smoothed[i-1] = s
		b, err = Backward(m, b, ev[i-1])
		if err != nil {
			return nil, fmt.Errorf("ForwardBackward: step %d: %w", i, err)
		}
	}
	return smoothed, nil
}
