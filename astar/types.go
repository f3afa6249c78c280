package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Name is the registry name of the planner.
const Name = "astar"

// ErrBadWeight indicates a negative or non-finite heuristic weight.
var ErrBadWeight = errors.New("astar: heuristic weight must be finite and non-negative")

// Options configures the A* planner.
type Options struct {
	planner.Options
	// HeuristicWeight scales the Manhattan estimate. Default 1.0.
	HeuristicWeight float64
}

// Option represents a functional option for configuring A*.
type Option func(*Options)

// DefaultOptions returns weight 1.0 and the shared planner defaults.
func DefaultOptions() Options {
	return Options{Options: planner.DefaultOptions(), HeuristicWeight: 1.0}
}

// WithHeuristicWeight sets w in f = g + w·h.
func WithHeuristicWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			planner.Violation(&o.Options, "%w (%g)", ErrBadWeight, w)
			return
		}
		o.HeuristicWeight = w
	}
}

// WithMaxSteps forwards to planner.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) { planner.WithMaxSteps(n)(&o.Options) }
}

// WithLogger forwards to planner.WithLogger.
func WithLogger(fn planner.Logf) Option {
	return func(o *Options) { planner.WithLogger(fn)(&o.Options) }
}

// Manhattan is the grid heuristic |dx| + |dy|.
func Manhattan(c, goal grid.Cell) float64 {
	return float64(grid.ManhattanDistance(c, goal))
}
