package mcl

import (
	"errors"
	"math/rand"
)

var (
	// ErrEmptyGrid reports an occupancy grid with no rows or no columns.
	ErrEmptyGrid = errors.New("mcl: occupancy grid is empty")

	// ErrNonRectangular reports grid rows of unequal length.
	ErrNonRectangular = errors.New("mcl: occupancy grid is not rectangular")

	// ErrNoFreeCell reports a grid with every cell occupied.
	ErrNoFreeCell = errors.New("mcl: occupancy grid has no free cell")

	// ErrSensorIndex reports a ray-cast direction outside 0..3.
	ErrSensorIndex = errors.New("mcl: sensor index outside 0..3")

	// ErrSensorCount reports more range readings than the four sensor
	// directions a pose carries.
	ErrSensorCount = errors.New("mcl: more than 4 range readings")

	// ErrParticleCount reports a non-positive particle population size.
	ErrParticleCount = errors.New("mcl: particle count must be positive")

	// ErrPopulationSize reports a supplied population whose length does
	// not match the requested particle count.
	ErrPopulationSize = errors.New("mcl: population length does not match particle count")

	// ErrNilModel reports a missing motion or sensor model.
	ErrNilModel = errors.New("mcl: motion and sensor models must be non-nil")
)

// Heading is a compass direction on the grid.
type Heading uint8

const (
	// North decreases the row index.
	North Heading = iota
	// East increases the column index.
	East
	// South increases the row index.
	South
	// West decreases the column index.
	West
)

// String renders the heading for diagnostics.
func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	default:
		return "W"
	}
}

// Pose is a kinematic state: a grid cell plus a heading.
type Pose struct {
	Row, Col int
	Heading  Heading
}

// Control is one motion command: a translation vector expressed in the
// robot's frame and a number of quarter-turn rotations applied first.
type Control struct {
	V [2]int
	W int
}

// MotionModel advances a pose under a control, possibly with noise
// drawn from r.
type MotionModel func(p Pose, u Control, r *rand.Rand) Pose

// SensorModel returns the likelihood of an observed range reading given
// the range the map predicts for a candidate pose.
type SensorModel func(observed, predicted int) float64
