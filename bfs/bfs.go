package bfs

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Planner is a breadth-first search planner. It holds only configuration,
// so one Planner may serve many runs.
type Planner struct {
	opts planner.Options
}

// New builds a BFS planner. Returns ErrOptionViolation for invalid options.
func New(opts ...planner.Option) (*Planner, error) {
	o, err := planner.Apply(opts...)
	if err != nil {
		return nil, err
	}

	return &Planner{opts: o}, nil
}

// Name implements planner.Planner.
func (p *Planner) Name() string { return Name }

// Plan returns a stepper over env. Missing start or goal yields an empty run;
// start == goal yields a single Reached frame.
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
		queue:   make([]entry, 0, n),
		visited: make(map[grid.Cell]bool, n),
	}
	w.visited[start] = true
	w.queue = append(w.queue, entry{cell: start, path: []grid.Cell{start}})

	return w
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	env     *grid.Environment
	goal    grid.Cell
	opts    planner.Options
	bound   int
	queue   []entry
	visited map[grid.Cell]bool
	count   int
	done    bool
}

// Next dequeues one cell, expands it, and returns its frame.
func (w *walker) Next() (planner.Step, bool) {
	if w.done || len(w.queue) == 0 {
		return planner.Step{}, false
	}

	item := w.dequeue()
	w.count++

	if item.cell == w.goal {
		w.done = true
		w.opts.Logf("bfs: goal %v reached after %d steps", w.goal, w.count)
		return planner.Step{Path: item.path, Count: w.count, Status: planner.Reached}, true
	}

	w.enqueueNeighbors(item)

	status := planner.Running
	switch {
	case len(w.queue) == 0:
		status = planner.Exhausted
		w.opts.Logf("bfs: frontier exhausted after %d steps", w.count)
	case w.count >= w.bound:
		status = planner.BoundExceeded
		w.opts.Logf("bfs: step bound %d exceeded", w.bound)
	}
	w.done = status.Terminal()

	return planner.Step{Path: item.path, Count: w.count, Status: status}, true
}

// dequeue pops the oldest frontier entry.
func (w *walker) dequeue() entry {
	item := w.queue[0]
	w.queue[0] = entry{}
	w.queue = w.queue[1:]

	return item
}

// enqueueNeighbors appends every valid, unvisited neighbour of item in
// Down, Up, Right, Left order, marking each visited immediately.
func (w *walker) enqueueNeighbors(item entry) {
	for _, d := range grid.Offsets4 {
		nbr := item.cell.Add(d)
		if !w.env.IsValidCell(nbr) || w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.queue = append(w.queue, entry{cell: nbr, path: planner.Extend(item.path, nbr)})
	}
}
