// Package randomwalk provides a seeded random walk planner: a baseline that
// moves to a uniformly chosen free neighbour each step until it stumbles on
// the goal, boxes itself in, or runs out of steps.
package randomwalk

import (
	"math/rand"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/sensor"
)

// Name is the registry name of the planner.
const Name = "randomwalk"

// DefaultMaxSteps is the move ceiling.
const DefaultMaxSteps = 1000

// Options configures the random walk.
type Options struct {
	planner.Options
	// Seed initializes the per-run generator; equal seeds give equal walks.
	Seed int64
	// Sensor, when set, additionally rules out sensed obstacles.
	Sensor sensor.Sensor
}

// Option represents a functional option for configuring the walk.
type Option func(*Options)

// DefaultOptions returns seed 1, no sensor, and bound 1000.
func DefaultOptions() Options {
	return Options{Options: planner.DefaultOptions(), Seed: 1}
}

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSensor filters candidate moves through s.
func WithSensor(s sensor.Sensor) Option {
	return func(o *Options) { o.Sensor = s }
}

// WithMaxSteps forwards to planner.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) { planner.WithMaxSteps(n)(&o.Options) }
}

// WithLogger forwards to planner.WithLogger.
func WithLogger(fn planner.Logf) Option {
	return func(o *Options) { planner.WithLogger(fn)(&o.Options) }
}

// Planner is a random walk planner.
type Planner struct {
	opts Options
}

// New builds a random walk planner.
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

// Plan returns a stepper that makes one random move per Next call. Every
// run starts a fresh generator from the configured seed.
func (p *Planner) Plan(env *grid.Environment) planner.Stepper {
	if env == nil {
		return planner.Empty()
	}
	start, goal, ok := env.Endpoints()
	if !ok {
		return planner.Empty()
	}
	if start == goal {
		return planner.Arrived(start)
	}

	return &walk{
		env:   env,
		goal:  goal,
		opts:  p.opts,
		bound: p.opts.Bound(DefaultMaxSteps),
		rng:   rand.New(rand.NewSource(p.opts.Seed)),
		cur:   start,
		path:  []grid.Cell{start},
	}
}

type walk struct {
	env   *grid.Environment
	goal  grid.Cell
	opts  Options
	bound int
	rng   *rand.Rand
	cur   grid.Cell
	path  []grid.Cell
	count int
	done  bool
}

func (w *walk) Next() (planner.Step, bool) {
	if w.done {
		return planner.Step{}, false
	}

	candidates := w.env.Neighbors(w.cur)
	if w.opts.Sensor != nil {
		reading := w.opts.Sensor.Sense(w.env, sensor.CellPoint(w.cur))
		kept := candidates[:0]
		for _, c := range candidates {
			if !reading.Has(c) {
				kept = append(kept, c)
			}
		}
		candidates = kept
	}
	if len(candidates) == 0 {
		w.opts.Logf("randomwalk: stuck at %v after %d moves", w.cur, w.count)
		return w.finish(planner.Stuck), true
	}

	w.count++
	w.cur = candidates[w.rng.Intn(len(candidates))]
	w.path = append(w.path, w.cur)

	switch {
	case w.cur == w.goal:
		w.opts.Logf("randomwalk: goal reached after %d moves", w.count)
		return w.finish(planner.Reached), true
	case w.count >= w.bound:
		w.opts.Logf("randomwalk: move bound %d exceeded", w.bound)
		return w.finish(planner.BoundExceeded), true
	}

	return w.frame(planner.Running), true
}

func (w *walk) frame(status planner.Status) planner.Step {
	return planner.Step{Path: w.path[:len(w.path):len(w.path)], Count: w.count, Status: status}
}

func (w *walk) finish(status planner.Status) planner.Step {
	w.done = true
	return w.frame(status)
}
