package sensor

import (
	"errors"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrBadRadius is returned when a RangeSensor is built with a non-positive radius.
var ErrBadRadius = errors.New("sensor: radius must be positive and finite")

// Sensor reports the obstacles observable from a position in an environment.
// Implementations must not mutate env.
type Sensor interface {
	Sense(env *grid.Environment, at orb.Point) Reading
}

// Reading is the set of obstacles detected by one Sense call.
type Reading struct {
	obstacles map[grid.Cell]struct{}
}

// NewReading builds a Reading from cells. Duplicates collapse.
func NewReading(cells ...grid.Cell) Reading {
	r := Reading{obstacles: make(map[grid.Cell]struct{}, len(cells))}
	for _, c := range cells {
		r.obstacles[c] = struct{}{}
	}

	return r
}

// Has reports whether c was detected as an obstacle.
func (r Reading) Has(c grid.Cell) bool {
	_, ok := r.obstacles[c]

	return ok
}

// Len returns the number of detected obstacles.
func (r Reading) Len() int { return len(r.obstacles) }

// Cells returns the detected obstacles sorted by (Y, X).
func (r Reading) Cells() []grid.Cell {
	out := make([]grid.Cell, 0, len(r.obstacles))
	for c := range r.obstacles {
		out = append(out, c)
	}
	grid.SortCells(out)

	return out
}

// CellPoint converts a cell to its continuous centre.
func CellPoint(c grid.Cell) orb.Point {
	return orb.Point{float64(c.X), float64(c.Y)}
}
