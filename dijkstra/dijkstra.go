package dijkstra

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/bestfirst"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is a uniform-cost search planner. It holds only configuration.
type Planner struct {
	opts Options
}

// New builds a Dijkstra planner, returning ErrOptionViolation for invalid options.
func New(opts ...Option) (*Planner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Err(); err != nil {
		return nil, err
	}

	return &Planner{opts: o}, nil
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return Name }

// Plan returns a stepper that finalizes one cell per Next call.
func (p *Planner) Plan(env *grid.Environment) planner.Stepper {
	return bestfirst.Plan(bestfirst.Config{
		Name:    Name,
		MaxCost: p.opts.MaxCost,
		Options: p.opts.Options,
	}, env)
}
