package brushfire

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is the brushfire planner. Safe to reuse across runs.
type Planner struct {
	opts planner.Options
}

// New builds a brushfire planner. Returns ErrOptionViolation for invalid options.
func New(opts ...planner.Option) (*Planner, error) {
	o, err := planner.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &Planner{opts: o}, nil
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return Name }

// Plan returns a stepper over both phases. The default bound is twice the
// grid area: at most one frame per cell in each phase.
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

	w, h := env.Width(), env.Height()
	b := &burner{
		env:   env,
		start: start,
		goal:  goal,
		opts:  p.opts,
		bound: p.opts.Bound(2 * w * h),
		wave:  newWave(env, goal),
	}

	return b
}

// burner holds the mutable state of one run.
type burner struct {
	env         *grid.Environment
	start, goal grid.Cell
	opts        planner.Options
	bound       int
	wave        *wave
	path        []grid.Cell
	count       int
	done        bool
}

// Next advances the wavefront by one entry, or the descent by one cell.
func (b *burner) Next() (planner.Step, bool) {
	if b.done {
		return planner.Step{}, false
	}
	b.count++

	if b.wave.pending() {
		b.wave.step()
		status := planner.Running
		if b.count >= b.bound {
			status = b.stop(planner.BoundExceeded)
		}
		return planner.Step{Count: b.count, Status: status, Distances: snapshot(b.wave.dist)}, true
	}

	if b.path == nil {
		b.path = []grid.Cell{b.start}
		b.opts.Logf("brushfire: transform complete after %d steps, start distance %d", b.count-1, at(b.wave.dist, b.start))
	}

	cur := b.path[len(b.path)-1]
	next, ok := b.descend(cur)
	if !ok {
		return b.frame(b.stop(planner.Stuck)), true
	}
	b.path = planner.Extend(b.path, next)

	status := planner.Running
	switch {
	case next == b.goal:
		status = b.stop(planner.Reached)
	case b.count >= b.bound:
		status = b.stop(planner.BoundExceeded)
	}

	return b.frame(status), true
}

// descend picks the first neighbour of c, in Offsets4 order, whose distance
// is finite and strictly smaller than c's.
func (b *burner) descend(c grid.Cell) (grid.Cell, bool) {
	here := at(b.wave.dist, c)
	if here == Unreached {
		return grid.Cell{}, false
	}
	for _, d := range grid.Offsets4 {
		n := c.Add(d)
		if !b.env.IsValidCell(n) {
			continue
		}
		if v := at(b.wave.dist, n); v != Unreached && v < here {
			return n, true
		}
	}

	return grid.Cell{}, false
}

func (b *burner) frame(status planner.Status) planner.Step {
	return planner.Step{Path: b.path, Count: b.count, Status: status, Distances: b.wave.dist}
}

func (b *burner) stop(status planner.Status) planner.Status {
	b.done = true
	b.opts.Logf("brushfire: %v after %d steps", status, b.count)

	return status
}
