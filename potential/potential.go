package potential

import (
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is a potential field planner. Safe to reuse across runs.
type Planner struct {
	opts Options
}

// New builds a potential field planner, returning ErrOptionViolation for invalid options.
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

// Plan returns a stepper that advances the position by one StepSize per Next call.
// The first frame is the start position with Count 0.
func (p *Planner) Plan(env *grid.Environment) planner.Stepper {
	if env == nil {
		return planner.Empty()
	}
	start, goal, ok := env.Endpoints()
	if !ok {
		return planner.Empty()
	}

	f := &field{
		env:   env,
		opts:  p.opts,
		bound: p.opts.Bound(DefaultMaxPathLength),
		pos:   toVec(start),
		goal:  toVec(goal),
	}
	if p.opts.Sensor == nil {
		for _, c := range env.Obstacles() {
			f.all = append(f.all, toVec(c))
		}
	}

	return f
}

// field holds the mutable state of one run.
type field struct {
	env   *grid.Environment
	opts  Options
	bound int
	all   []r2.Vec

	pos, goal  r2.Vec
	trajectory orb.LineString
	cells      []grid.Cell
	count      int
	started    bool
	done       bool
}

// Next advances one step and returns the frame.
func (f *field) Next() (planner.Step, bool) {
	if f.done {
		return planner.Step{}, false
	}
	if !f.started {
		f.started = true
		f.record(f.pos)
		if r2.Norm(r2.Sub(f.goal, f.pos)) <= f.opts.StepSize {
			return f.finish(planner.Reached), true
		}
		return f.frame(planner.Running), true
	}

	f.count++
	force := r2.Add(f.attractive(), f.repulsive())
	if r2.Norm(force) == 0 {
		f.opts.Logf("potential: zero resultant force at (%.3f,%.3f)", f.pos.X, f.pos.Y)
		return f.finish(planner.Stuck), true
	}

	next := r2.Add(f.pos, r2.Scale(f.opts.StepSize, r2.Unit(force)))
	if !f.env.IsValidPoint(next.X, next.Y) {
		f.opts.Logf("potential: collision at (%.3f,%.3f)", next.X, next.Y)
		return f.finish(planner.Collision), true
	}
	f.pos = next
	f.record(next)

	switch {
	case len(f.trajectory) > f.bound:
		f.opts.Logf("potential: trajectory exceeded %d points", f.bound)
		return f.finish(planner.BoundExceeded), true
	case r2.Norm(r2.Sub(f.goal, f.pos)) <= f.opts.StepSize:
		f.opts.Logf("potential: goal reached after %d steps", f.count)
		return f.finish(planner.Reached), true
	}

	return f.frame(planner.Running), true
}

// attractive returns k_a·(goal − p).
func (f *field) attractive() r2.Vec {
	return r2.Scale(f.opts.AttractiveGain, r2.Sub(f.goal, f.pos))
}

// repulsive sums the repulsion of every visible obstacle within d0.
func (f *field) repulsive() r2.Vec {
	var total r2.Vec
	d0 := f.opts.MinRepulsiveDistance
	for _, o := range f.visible() {
		away := r2.Sub(f.pos, o)
		d := r2.Norm(away)
		if d == 0 || d > d0 {
			continue
		}
		mag := f.opts.RepulsiveGain * (1/d - 1/d0) / (d * d)
		total = r2.Add(total, r2.Scale(mag/d, away))
	}

	return total
}

// visible returns the obstacles that repel at the current position.
func (f *field) visible() []r2.Vec {
	if f.opts.Sensor == nil {
		return f.all
	}
	cells := f.opts.Sensor.Sense(f.env, orb.Point{f.pos.X, f.pos.Y}).Cells()
	out := make([]r2.Vec, len(cells))
	for i, c := range cells {
		out[i] = toVec(c)
	}

	return out
}

// record appends p to the trajectory and its rounded cell to the path.
func (f *field) record(p r2.Vec) {
	f.trajectory = append(f.trajectory, orb.Point{p.X, p.Y})
	c := grid.RoundPoint(p.X, p.Y)
	if n := len(f.cells); n == 0 || f.cells[n-1] != c {
		f.cells = append(f.cells, c)
	}
}

// frame snapshots the state. Slices are clipped so later appends never
// write into memory visible through an earlier frame.
func (f *field) frame(status planner.Status) planner.Step {
	return planner.Step{
		Path:       f.cells[:len(f.cells):len(f.cells)],
		Trajectory: f.trajectory[:len(f.trajectory):len(f.trajectory)],
		Count:      f.count,
		Status:     status,
	}
}

func (f *field) finish(status planner.Status) planner.Step {
	f.done = true
	return f.frame(status)
}

func toVec(c grid.Cell) r2.Vec { return r2.Vec{X: float64(c.X), Y: float64(c.Y)} }
