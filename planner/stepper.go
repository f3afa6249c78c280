package planner

import (
	"iter"

	"github.com/katalvlaran/gridnav/grid"
)

// empty is the Stepper of an unplannable run.
type empty struct{}

func (empty) Next() (Step, bool) { return Step{}, false }

// Empty returns a Stepper that yields no frames. Planners return it when the
// environment lacks a start, a goal, or a required sensor.
func Empty() Stepper { return empty{} }

// arrived yields a single Reached frame.
type arrived struct {
	cell grid.Cell
	done bool
}

func (a *arrived) Next() (Step, bool) {
	if a.done {
		return Step{}, false
	}
	a.done = true

	return Step{Path: []grid.Cell{a.cell}, Count: 0, Status: Reached}, true
}

// Arrived returns a Stepper for a run whose start already is the goal:
// one frame with a single-cell path and Count 0.
func Arrived(at grid.Cell) Stepper { return &arrived{cell: at} }

// Collect drains s and returns every frame.
func Collect(s Stepper) []Step {
	var out []Step
	for step, ok := s.Next(); ok; step, ok = s.Next() {
		out = append(out, step)
	}

	return out
}

// Last drains s and returns its final frame; ok is false if s yielded nothing.
func Last(s Stepper) (last Step, ok bool) {
	for step, more := s.Next(); more; step, more = s.Next() {
		last, ok = step, true
	}

	return last, ok
}

// All adapts s to a range-over-func sequence. Breaking out of the loop simply
// stops advancing s.
func All(s Stepper) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for step, ok := s.Next(); ok; step, ok = s.Next() {
			if !yield(step) {
				return
			}
		}
	}
}

// Extend returns a fresh path equal to path with c appended. The input is
// never aliased, so frames yielded earlier stay valid.
func Extend(path []grid.Cell, c grid.Cell) []grid.Cell {
	out := make([]grid.Cell, len(path)+1)
	copy(out, path)
	out[len(path)] = c

	return out
}
