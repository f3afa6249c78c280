package bug

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is a Bug0, Bug1, or Bug2 planner. Safe to reuse across runs as
// long as its sensor is.
type Planner struct {
	variant Variant
	opts    Options
}

// New builds a planner of the given variant. Returns ErrOptionViolation for
// invalid options and ErrBadVariant for an unknown variant.
func New(v Variant, opts ...Option) (*Planner, error) {
	if v < Bug0 || v > Bug2 {
		return nil, fmt.Errorf("%w: %d", ErrBadVariant, int(v))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Err(); err != nil {
		return nil, err
	}

	return &Planner{variant: v, opts: o}, nil
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return p.variant.String() }

// Variant returns the configured variant.
func (p *Planner) Variant() Variant { return p.variant }

// Plan returns a stepper performing one sense-act iteration per Next call.
func (p *Planner) Plan(env *grid.Environment) planner.Stepper {
	if env == nil || p.opts.Sensor == nil {
		return planner.Empty()
	}
	start, goal, ok := env.Endpoints()
	if !ok {
		return planner.Empty()
	}
	if start == goal {
		return planner.Arrived(start)
	}

	return &bug{
		variant: p.variant,
		env:     env,
		opts:    p.opts,
		bound:   p.opts.Bound(DefaultMaxSteps),
		start:   start,
		goal:    goal,
		cur:     start,
		path:    []grid.Cell{start},
		mode:    ModeGoalSeek,
	}
}
