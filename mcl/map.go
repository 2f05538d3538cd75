package mcl

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bayes/rng"
)

// Map is a rectangular occupancy grid. A true cell is an obstacle.
// The grid is deep-copied at construction and never mutated.
type Map struct {
	cells [][]bool
	rows  int
	cols  int
	free  [][2]int
}

// NewMap validates and copies an occupancy grid. The grid must be
// non-empty, rectangular and contain at least one free cell.
func NewMap(cells [][]bool) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("NewMap: %w", ErrEmptyGrid)
	}
	cols := len(cells[0])

	m := &Map{
		cells: make([][]bool, len(cells)),
		rows:  len(cells),
		cols:  cols,
	}
	for i, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("NewMap: row %d has %d cells, want %d: %w",
				i, len(row), cols, ErrNonRectangular)
		}
		m.cells[i] = append([]bool(nil), row...)
		for j, occupied := range row {
			if !occupied {
				m.free = append(m.free, [2]int{i, j})
			}
		}
	}
	if len(m.free) == 0 {
		return nil, fmt.Errorf("NewMap: %w", ErrNoFreeCell)
	}
	return m, nil
}

// Rows returns the grid height.
func (m *Map) Rows() int { return m.rows }

// Cols returns the grid width.
func (m *Map) Cols() int { return m.cols }

// Occupied reports whether the cell is an obstacle. Cells outside the
// grid count as occupied.
func (m *Map) Occupied(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return true
	}
	return m.cells[row][col]
}

// RandomPose draws a pose uniformly over the free cells and the four
// headings. r may be nil, in which case a fixed-seed generator is used.
func (m *Map) RandomPose(r *rand.Rand) Pose {
	if r == nil {
		r = rng.New(0)
	}
	cell, _ := rng.Choice(m.free, r) // free is never empty after NewMap
	return Pose{Row: cell[0], Col: cell[1], Heading: Heading(r.Intn(4))}
}

// RayCast returns the number of cells from the pose to the nearest
// obstacle or grid boundary along one of four sensor directions.
//
// Sensor 0 points along the heading, 1 to the right, 2 backward and 3
// to the left. A pose on an occupied or out-of-range cell reads 0.
func (m *Map) RayCast(sensor int, p Pose) (int, error) {
	if sensor < 0 || sensor > 3 {
		return 0, fmt.Errorf("RayCast: sensor %d: %w", sensor, ErrSensorIndex)
	}
	// Offsets for heading North; each quarter turn maps (dr,dc) to (dc,-dr).
	dr, dc := 0, 0
	if sensor%2 == 0 {
		dr = sensor - 1
	} else {
		dc = 2 - sensor
	}
	for h := 0; h < int(p.Heading); h++ {
		dr, dc = dc, -dr
	}

	row, col, steps := p.Row, p.Col, 0
	for !m.Occupied(row, col) {
		row += dr
		col += dc
		steps++
	}
	return steps, nil
}
