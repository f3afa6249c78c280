package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridnav/planner"
)

// Name is the registry name of the planner.
const Name = "dijkstra"

// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
var ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

// Options configures the Dijkstra planner.
//
// Options – shared step bound and logger.
// MaxCost – optional cap on route cost; 0 means no cap.
type Options struct {
	planner.Options
	MaxCost int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and the shared planner defaults.
func DefaultOptions() Options {
	return Options{Options: planner.DefaultOptions()}
}

// WithMaxCost caps the cost of explored routes. Negative values are an
// ErrOptionViolation wrapping ErrBadMaxCost.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			planner.Violation(&o.Options, "%w (%d)", ErrBadMaxCost, c)
			return
		}
		o.MaxCost = c
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
