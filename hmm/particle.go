package hmm

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/bayes/rng"
)

// ParticleFilter approximates one filtering step with n particles:
// propagate the prior through the transition model, draw particle
// states from the propagated belief, weigh each particle by its sensor
// likelihood times its propagated probability, normalize, and resample
// with replacement by weight.
//
// Weights are rounded to 4 decimal digits after normalization. r may be
// nil, in which case a fixed-seed generator is used.
func ParticleFilter(m *Model, ev bool, n int, r *rand.Rand) ([]State, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ParticleFilter: n=%d: %w", n, ErrParticleCount)
	}
	if r == nil {
		r = rng.New(0)
	}

	t := m.transition
	dist := [2]float64{
		m.prior[0]*t[0][0] + m.prior[1]*t[1][0],
		m.prior[0]*t[0][1] + m.prior[1]*t[1][1],
	}

	particles := make([]State, n)
	for i := range particles {
		if !rng.Bernoulli(dist[0], r) {
			particles[i] = StateB
		}
	}

	sensor := m.SensorDist(ev)
	weights := make([]float64, n)
	total := 0.0
	for i, p := range particles {
		weights[i] = sensor[p] * dist[p]
		total += weights[i]
	}
	if total == 0 {
		return nil, fmt.Errorf("ParticleFilter: %w", ErrZeroBelief)
	}
	for i := range weights {
		weights[i] = math.Round(weights[i]/total*1e4) / 1e4
	}

	out, err := rng.WeightedSample(n, particles, weights, r)
	if err != nil {
		return nil, fmt.Errorf("ParticleFilter: %w", err)
	}
	return out, nil
}
