package astar

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/bestfirst"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is an A* planner with a weighted Manhattan heuristic.
type Planner struct {
	opts Options
}

// New builds an A* planner, returning ErrOptionViolation for invalid options.
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

// Weight returns the configured heuristic weight.
func (p *Planner) Weight() float64 { return p.opts.HeuristicWeight }

// Plan returns a stepper that finalizes one cell per Next call.
func (p *Planner) Plan(env *grid.Environment) planner.Stepper {
	w := p.opts.HeuristicWeight

	return bestfirst.Plan(bestfirst.Config{
		Name:      Name,
		Heuristic: func(c, goal grid.Cell) float64 { return w * Manhattan(c, goal) },
		Options:   p.opts.Options,
	}, env)
}
