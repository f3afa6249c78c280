package bug

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/sensor"
)

// bug is the mutable state of one run.
type bug struct {
	variant     Variant
	env         *grid.Environment
	opts        Options
	bound       int
	start, goal grid.Cell

	cur     grid.Cell
	path    []grid.Cell
	mode    string
	heading grid.Cell
	hit     grid.Cell
	reading sensor.Reading
	count   int
	done    bool
}

// Next performs one iteration: sense, optionally switch mode, move.
func (b *bug) Next() (planner.Step, bool) {
	if b.done {
		return planner.Step{}, false
	}
	b.count++
	b.sense()
	ahead := b.seekCell(b.cur)

	if b.mode == ModeBoundaryFollow && b.canLeave(ahead) {
		b.switchMode(ModeGoalSeek)
	}

	moved := false
	if b.mode == ModeGoalSeek {
		if b.free(ahead) {
			b.advance(ahead)
			moved = true
		} else {
			b.hit = b.cur
			b.heading = turnRight(ahead.Sub(b.cur))
			b.switchMode(ModeBoundaryFollow)
		}
	}
	if !moved && !b.follow() {
		b.opts.Logf("%s: stuck at %v after %d steps", b.variant, b.cur, b.count)
		return b.finish(planner.Stuck), true
	}

	switch {
	case b.cur == b.goal:
		b.opts.Logf("%s: goal %v reached after %d steps", b.variant, b.goal, b.count)
		return b.finish(planner.Reached), true
	case b.count >= b.bound:
		b.opts.Logf("%s: step bound %d exceeded", b.variant, b.bound)
		return b.finish(planner.BoundExceeded), true
	}

	return b.frame(planner.Running), true
}

// canLeave evaluates the variant's leave condition.
func (b *bug) canLeave(ahead grid.Cell) bool {
	closer := distance(b.cur, b.goal) < distance(b.hit, b.goal)
	switch b.variant {
	case Bug0:
		return b.free(ahead)
	case Bug1:
		return b.free(ahead) && closer
	default:
		if b.opts.MLine && b.mlineDistance(b.cur) > MLineTolerance {
			return false
		}
		return closer
	}
}

// advance moves onto next, then for Bug2 keeps going along the m-line for
// up to StepSize cells in total, stopping early at the goal or a blocked cell.
func (b *bug) advance(next grid.Cell) {
	b.moveTo(next)
	if b.variant != Bug2 {
		return
	}
	for i := 1; i < b.opts.StepSize && b.cur != b.goal; i++ {
		b.sense()
		n := b.seekCell(b.cur)
		if !b.free(n) {
			return
		}
		b.moveTo(n)
	}
}

// follow takes one left-hand wall-following step. Returns false when boxed in.
func (b *bug) follow() bool {
	h := b.heading
	for _, d := range [4]grid.Cell{turnLeft(h), h, turnRight(h), {X: -h.X, Y: -h.Y}} {
		n := b.cur.Add(d)
		if b.free(n) {
			b.heading = d
			b.moveTo(n)
			return true
		}
	}

	return false
}

// seekCell returns the goal-seek successor of c.
func (b *bug) seekCell(c grid.Cell) grid.Cell {
	if b.variant == Bug2 {
		return b.mlineCell(c)
	}
	dx, dy := b.goal.X-c.X, b.goal.Y-c.Y
	if abs(dx) >= abs(dy) {
		return grid.Cell{X: c.X + sign(dx), Y: c.Y}
	}

	return grid.Cell{X: c.X, Y: c.Y + sign(dy)}
}

// mlineCell picks, among the neighbours of c that reduce the Manhattan
// distance to the goal, the one nearest the start–goal segment. Ties keep
// Offsets4 order.
func (b *bug) mlineCell(c grid.Cell) grid.Cell {
	here := grid.ManhattanDistance(c, b.goal)
	best, bestD := c, 0.0
	found := false
	for _, d := range grid.Offsets4 {
		n := c.Add(d)
		if grid.ManhattanDistance(n, b.goal) >= here {
			continue
		}
		if md := b.mlineDistance(n); !found || md < bestD {
			best, bestD, found = n, md, true
		}
	}

	return best
}

func (b *bug) mlineDistance(c grid.Cell) float64 {
	return planar.DistanceFromSegment(sensor.CellPoint(b.start), sensor.CellPoint(b.goal), sensor.CellPoint(c))
}

// sense refreshes the reading at the current cell.
func (b *bug) sense() {
	b.reading = b.opts.Sensor.Sense(b.env, sensor.CellPoint(b.cur))
}

// free reports whether c is neither sensed as an obstacle nor invalid.
func (b *bug) free(c grid.Cell) bool {
	return !b.reading.Has(c) && b.env.IsValidCell(c)
}

func (b *bug) moveTo(c grid.Cell) {
	b.cur = c
	b.path = append(b.path, c)
}

func (b *bug) switchMode(mode string) {
	b.opts.Logf("%s: %s -> %s at %v", b.variant, b.mode, mode, b.cur)
	b.mode = mode
}

// frame snapshots the state. The path is clipped so that later appends
// never show through an earlier frame.
func (b *bug) frame(status planner.Status) planner.Step {
	return planner.Step{
		Path:   b.path[:len(b.path):len(b.path)],
		Count:  b.count,
		Status: status,
		Mode:   b.mode,
	}
}

func (b *bug) finish(status planner.Status) planner.Step {
	b.done = true
	return b.frame(status)
}

// turnLeft rotates d a quarter turn counter-clockwise on screen (y down).
func turnLeft(d grid.Cell) grid.Cell { return grid.Cell{X: d.Y, Y: -d.X} }

// turnRight rotates d a quarter turn clockwise on screen (y down).
func turnRight(d grid.Cell) grid.Cell { return grid.Cell{X: -d.Y, Y: d.X} }

func distance(a, b grid.Cell) float64 {
	return planar.Distance(sensor.CellPoint(a), sensor.CellPoint(b))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
