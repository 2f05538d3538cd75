package hmm

import "errors"

// rowMassTolerance bounds how far a transition row or prior may drift
// from unit mass before construction fails.
const rowMassTolerance = 1e-9

var (
	// ErrProbRange reports a transition, sensor or prior entry outside [0,1].
	ErrProbRange = errors.New("hmm: probability outside [0,1]")

	// ErrRowMass reports a transition row or prior whose entries do not
	// sum to 1 within rowMassTolerance.
	ErrRowMass = errors.New("hmm: row mass does not sum to 1")

	// ErrZeroBelief reports a belief update whose components all vanish,
	// leaving nothing to normalize.
	ErrZeroBelief = errors.New("hmm: belief normalizes to zero mass")

	// ErrLag reports a fixed-lag depth below 1.
	ErrLag = errors.New("hmm: lag depth must be at least 1")

	// ErrParticleCount reports a non-positive particle population size.
	ErrParticleCount = errors.New("hmm: particle count must be positive")
)

// Options carries the optional knobs of Model construction.
type Options struct {
	// Prior is the initial state distribution; must sum to 1.
	Prior [2]float64
}

// DefaultOptions returns the canonical defaults: a uniform prior.
func DefaultOptions() Options {
	return Options{Prior: [2]float64{0.5, 0.5}}
}

// State labels one of the two hidden states of a particle population.
type State uint8

const (
	// StateA is the first hidden state (index 0 in belief vectors).
	StateA State = iota
	// StateB is the second hidden state (index 1 in belief vectors).
	StateB
)

// String renders the state label for diagnostics and tests.
func (s State) String() string {
	if s == StateA {
		return "A"
	}
	return "B"
}
