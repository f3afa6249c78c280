package dfs

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is a depth-first search planner. Safe to reuse across runs.
type Planner struct {
	opts planner.Options
}

// New builds a DFS planner. Returns ErrOptionViolation for invalid options.
func New(opts ...planner.Option) (*Planner, error) {
	o, err := planner.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &Planner{opts: o}, nil
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return Name }

// Plan returns a stepper over env.
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

	n := env.Width() * env.Height()
	w := &walker{
		env:     env,
		goal:    goal,
		opts:    p.opts,
		bound:   p.opts.Bound(n),
		visited: map[grid.Cell]bool{start: true},
	}
	w.stack = append(w.stack, frame{cell: start, path: []grid.Cell{start}})

	return w
}

// walker holds the mutable state of one DFS run.
type walker struct {
	env     *grid.Environment
	goal    grid.Cell
	opts    planner.Options
	bound   int
	stack   []frame
	visited map[grid.Cell]bool
	count   int
	done    bool
}

// Next pops one cell, expands it, and returns its frame.
func (w *walker) Next() (planner.Step, bool) {
	if w.done || len(w.stack) == 0 {
		return planner.Step{}, false
	}

	top := w.stack[len(w.stack)-1]
	w.stack[len(w.stack)-1] = frame{}
	w.stack = w.stack[:len(w.stack)-1]
	w.count++

	if top.cell == w.goal {
		w.done = true
		w.opts.Logf("dfs: goal %v reached after %d steps", w.goal, w.count)
		return planner.Step{Path: top.path, Count: w.count, Status: planner.Reached}, true
	}

	for _, d := range grid.Offsets4 {
		nbr := top.cell.Add(d)
		if !w.env.IsValidCell(nbr) || w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.stack = append(w.stack, frame{cell: nbr, path: planner.Extend(top.path, nbr)})
	}

	status := planner.Running
	switch {
	case len(w.stack) == 0:
		status = planner.Exhausted
		w.opts.Logf("dfs: stack exhausted after %d steps", w.count)
	case w.count >= w.bound:
		status = planner.BoundExceeded
		w.opts.Logf("dfs: step bound %d exceeded", w.bound)
	}
	w.done = status.Terminal()

	return planner.Step{Path: top.path, Count: w.count, Status: status}, true
}
