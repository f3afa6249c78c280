package grid

import (
	"fmt"
	"math"
	"sort"
)

// Environment holds the dimensions, obstacle set, start, and goal of
// a planning session. Planners only read it; editors mutate it between runs.
type Environment struct {
	width, height int
	obstacles     map[Cell]struct{}
	start, goal   Cell
	hasStart      bool
	hasGoal       bool
	version       uint64
}

// NewEnvironment constructs an open width×height environment with no
// obstacles and no start or goal.
// Returns ErrBadDimensions if either dimension is not positive.
// Complexity: O(1).
func NewEnvironment(width, height int) (*Environment, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	return &Environment{
		width:     width,
		height:    height,
		obstacles: make(map[Cell]struct{}),
	}, nil
}

// MustEnvironment is like NewEnvironment but panics on invalid dimensions.
// Intended for tests and examples.
func MustEnvironment(width, height int) *Environment {
	env, err := NewEnvironment(width, height)
	if err != nil {
		panic(err)
	}

	return env
}

// Width returns the number of columns.
func (e *Environment) Width() int { return e.width }

// Height returns the number of rows.
func (e *Environment) Height() int { return e.height }

// Version is incremented by every mutation. Caches keyed on an environment
// compare versions to detect staleness.
func (e *Environment) Version() uint64 { return e.version }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (e *Environment) InBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

// IsValid reports whether (x,y) is in bounds and not an obstacle.
// Complexity: O(1).
func (e *Environment) IsValid(x, y int) bool {
	if !e.InBounds(x, y) {
		return false
	}
	_, blocked := e.obstacles[Cell{X: x, Y: y}]

	return !blocked
}

// IsValidCell is IsValid for a Cell.
func (e *Environment) IsValidCell(c Cell) bool {
	return e.IsValid(c.X, c.Y)
}

// IsValidPoint reports whether the continuous position (x,y) lies inside
// [0,width)×[0,height) and its nearest cell is not an obstacle.
func (e *Environment) IsValidPoint(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if x < 0 || y < 0 || x >= float64(e.width) || y >= float64(e.height) {
		return false
	}

	return !e.IsObstacle(RoundPoint(x, y))
}

// RoundPoint maps a continuous position to its nearest cell.
func RoundPoint(x, y float64) Cell {
	return Cell{X: int(math.Round(x)), Y: int(math.Round(y))}
}

// IsObstacle reports whether c is in the obstacle set.
func (e *Environment) IsObstacle(c Cell) bool {
	_, ok := e.obstacles[c]

	return ok
}

// ObstacleCount returns the number of obstacle cells.
func (e *Environment) ObstacleCount() int { return len(e.obstacles) }

// Obstacles returns the obstacle cells sorted by (Y, X).
// Complexity: O(k log k) for k obstacles.
func (e *Environment) Obstacles() []Cell {
	out := make([]Cell, 0, len(e.obstacles))
	for c := range e.obstacles {
		out = append(out, c)
	}
	SortCells(out)

	return out
}

// SortCells orders cells by (Y, X) in place.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}

// AddObstacle marks c as blocked. Returns ErrOutOfBounds for cells outside the grid.
func (e *Environment) AddObstacle(c Cell) error {
	if !e.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: obstacle %v", ErrOutOfBounds, c)
	}
	if _, ok := e.obstacles[c]; !ok {
		e.obstacles[c] = struct{}{}
		e.version++
	}

	return nil
}

// RemoveObstacle clears c. Removing a free cell is a no-op.
func (e *Environment) RemoveObstacle(c Cell) {
	if _, ok := e.obstacles[c]; ok {
		delete(e.obstacles, c)
		e.version++
	}
}

// ClearObstacles removes every obstacle.
func (e *Environment) ClearObstacles() {
	if len(e.obstacles) == 0 {
		return
	}
	e.obstacles = make(map[Cell]struct{})
	e.version++
}

// AddBoundary surrounds the grid with a one-cell-thick wall of obstacles on
// its outermost rows and columns.
// Complexity: O(W + H).
func (e *Environment) AddBoundary() {
	for x := 0; x < e.width; x++ {
		_ = e.AddObstacle(Cell{X: x, Y: 0})
		_ = e.AddObstacle(Cell{X: x, Y: e.height - 1})
	}
	for y := 0; y < e.height; y++ {
		_ = e.AddObstacle(Cell{X: 0, Y: y})
		_ = e.AddObstacle(Cell{X: e.width - 1, Y: y})
	}
}

// SetStart sets the start cell. Returns ErrOutOfBounds for cells outside the grid.
// The start may coincide with an obstacle; planners then simply find no moves.
func (e *Environment) SetStart(c Cell) error {
	if !e.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: start %v", ErrOutOfBounds, c)
	}
	e.start, e.hasStart = c, true
	e.version++

	return nil
}

// SetGoal sets the goal cell. Returns ErrOutOfBounds for cells outside the grid.
func (e *Environment) SetGoal(c Cell) error {
	if !e.InBounds(c.X, c.Y) {
		return fmt.Errorf("%w: goal %v", ErrOutOfBounds, c)
	}
	e.goal, e.hasGoal = c, true
	e.version++

	return nil
}

// ClearStart unsets the start cell.
func (e *Environment) ClearStart() {
	e.start, e.hasStart = Cell{}, false
	e.version++
}

// ClearGoal unsets the goal cell.
func (e *Environment) ClearGoal() {
	e.goal, e.hasGoal = Cell{}, false
	e.version++
}

// Start returns the start cell and whether it is set.
func (e *Environment) Start() (Cell, bool) { return e.start, e.hasStart }

// Goal returns the goal cell and whether it is set.
func (e *Environment) Goal() (Cell, bool) { return e.goal, e.hasGoal }

// Endpoints returns start and goal when both are set.
func (e *Environment) Endpoints() (start, goal Cell, ok bool) {
	return e.start, e.goal, e.hasStart && e.hasGoal
}

// Neighbors returns the valid 4-neighbours of c in Offsets4 order.
// Complexity: O(1).
func (e *Environment) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(Offsets4))
	for _, d := range Offsets4 {
		n := c.Add(d)
		if e.IsValidCell(n) {
			out = append(out, n)
		}
	}

	return out
}

// Clone returns a deep copy. The clone starts at version 0.
func (e *Environment) Clone() *Environment {
	c := &Environment{
		width:     e.width,
		height:    e.height,
		obstacles: make(map[Cell]struct{}, len(e.obstacles)),
		start:     e.start,
		goal:      e.goal,
		hasStart:  e.hasStart,
		hasGoal:   e.hasGoal,
	}
	for k := range e.obstacles {
		c.obstacles[k] = struct{}{}
	}

	return c
}
