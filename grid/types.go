// Package grid defines core types, neighbour offsets, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridnav.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a cell outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBadDensity indicates a scatter density outside [0,1].
	ErrBadDensity = errors.New("grid: density must be within [0,1]")
	// ErrBadFormat indicates a malformed environment document.
	ErrBadFormat = errors.New("grid: malformed environment document")
)

// Cell is an integer grid coordinate. Equality is by value, so Cell is
// usable directly as a map key.
type Cell struct {
	X, Y int
}

// Add returns the component-wise sum of c and d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Sub returns the component-wise difference c - d.
func (c Cell) Sub(d Cell) Cell {
	return Cell{X: c.X - d.X, Y: c.Y - d.Y}
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Canonical axis-aligned offsets. Y grows downward, matching screen space.
var (
	Down  = Cell{X: 0, Y: 1}
	Up    = Cell{X: 0, Y: -1}
	Right = Cell{X: 1, Y: 0}
	Left  = Cell{X: -1, Y: 0}
)

// Offsets4 is the fixed neighbour enumeration order shared by every planner:
// Down, Up, Right, Left. Deterministic tie-breaks depend on it.
var Offsets4 = [4]Cell{Down, Up, Right, Left}

// IsUnit reports whether d is one of the four axis-aligned unit offsets.
func IsUnit(d Cell) bool {
	return (d.X == 0 && (d.Y == 1 || d.Y == -1)) || (d.Y == 0 && (d.X == 1 || d.X == -1))
}

// Adjacent reports whether a and b differ by exactly one 4-connected step.
func Adjacent(a, b Cell) bool {
	return IsUnit(b.Sub(a))
}

// ManhattanDistance returns |dx| + |dy| between a and b.
func ManhattanDistance(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
