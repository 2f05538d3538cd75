package mcl

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/rng"
)

// Localize performs one Monte Carlo localization step on n particles:
// each particle is advanced through the motion model under control u,
// weighted by the product of sensor likelihoods over the observed range
// readings z (reading j against a ray cast in sensor direction j), and
// the population is resampled with replacement by weight.
//
// A nil population bootstraps n uniform random poses; a non-nil one
// must have exactly n particles. r may be nil, in which case a
// fixed-seed generator is used.
func Localize(u Control, z []int, n int, motion MotionModel, sensor SensorModel, m *Map, population []Pose, r *rand.Rand) ([]Pose, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Localize: n=%d: %w", n, ErrParticleCount)
	}
	if len(z) > 4 {
		return nil, fmt.Errorf("Localize: %d readings: %w", len(z), ErrSensorCount)
	}
	if motion == nil || sensor == nil {
		return nil, fmt.Errorf("Localize: %w", ErrNilModel)
	}
	if r == nil {
		r = rng.New(0)
	}
	if population == nil {
		population = make([]Pose, n)
		for i := range population {
			population[i] = m.RandomPose(r)
		}
	} else if len(population) != n {
		return nil, fmt.Errorf("Localize: population of %d, n=%d: %w",
			len(population), n, ErrPopulationSize)
	}

	moved := make([]Pose, n)
	weights := make([]float64, n)
	for i, p := range population {
		moved[i] = motion(p, u, r)
		w := 1.0
		for j, observed := range z {
			predicted, err := m.RayCast(j, moved[i])
			if err != nil {
				return nil, fmt.Errorf("Localize: %w", err)
			}
			w *= sensor(observed, predicted)
		}
		weights[i] = w
	}

	out, err := rng.WeightedSample(n, moved, weights, r)
	if err != nil {
		return nil, fmt.Errorf("Localize: %w", err)
	}
	return out, nil
}
