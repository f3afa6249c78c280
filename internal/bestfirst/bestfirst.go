// Package bestfirst implements the stepwise best-first search shared by the
// dijkstra and astar planners: a min-heap keyed by g + h(cell) over uniform
// unit edge costs, with lazy decrease-key.
//
// Each frontier entry carries its cost-so-far g and its own route. A push
// happens only when it improves the best known g for a cell. Popped entries
// whose cell is already finalized are stale and are discarded silently, so
// only finalizing pops consume a step and yield a frame.
package bestfirst

import (
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/pqueue"
	"github.com/katalvlaran/gridnav/planner"
)

// Heuristic estimates the remaining cost from c to goal. It must be
// non-negative; zero everywhere reduces the search to Dijkstra.
type Heuristic func(c, goal grid.Cell) float64

// Config parameterizes one best-first run.
type Config struct {
	// Name prefixes log lines.
	Name string
	// Heuristic is added to g to form the heap key; nil means zero.
	Heuristic Heuristic
	// MaxCost, when positive, stops expansion into cells whose cost would exceed it.
	MaxCost int
	// Options carries the shared step bound and logger.
	Options planner.Options
}

// entry is one frontier record.
type entry struct {
	cell grid.Cell
	g    int
	path []grid.Cell
}

// Search is the mutable state of one best-first run.
type Search struct {
	name    string
	env     *grid.Environment
	goal    grid.Cell
	h       Heuristic
	maxCost int
	opts    planner.Options
	bound   int
	open    pqueue.Queue[entry]
	best    map[grid.Cell]int
	closed  map[grid.Cell]bool
	count   int
	done    bool
}

// Plan validates env and returns a stepper configured by cfg.
func Plan(cfg Config, env *grid.Environment) planner.Stepper {
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
	h := cfg.Heuristic
	if h == nil {
		h = func(grid.Cell, grid.Cell) float64 { return 0 }
	}

	n := env.Width() * env.Height()
	s := &Search{
		name:    cfg.Name,
		env:     env,
		goal:    goal,
		h:       h,
		maxCost: cfg.MaxCost,
		opts:    cfg.Options,
		bound:   cfg.Options.Bound(n),
		best:    map[grid.Cell]int{start: 0},
		closed:  make(map[grid.Cell]bool, n),
	}
	s.open.Push(entry{cell: start, g: 0, path: []grid.Cell{start}}, h(start, goal))

	return s
}

// Next finalizes one cell and returns its frame.
func (s *Search) Next() (planner.Step, bool) {
	if s.done {
		return planner.Step{}, false
	}

	cur, ok := s.popLive()
	if !ok {
		s.done = true
		return planner.Step{}, false
	}
	s.closed[cur.cell] = true
	s.count++

	if cur.cell == s.goal {
		s.done = true
		s.opts.Logf("%s: goal %v reached at cost %d after %d steps", s.name, s.goal, cur.g, s.count)
		return planner.Step{Path: cur.path, Count: s.count, Status: planner.Reached}, true
	}

	s.relax(cur)

	status := planner.Running
	switch {
	case !s.hasLive():
		status = planner.Exhausted
		s.opts.Logf("%s: frontier exhausted after %d steps", s.name, s.count)
	case s.count >= s.bound:
		status = planner.BoundExceeded
		s.opts.Logf("%s: step bound %d exceeded", s.name, s.bound)
	}
	s.done = status.Terminal()

	return planner.Step{Path: cur.path, Count: s.count, Status: status}, true
}

// relax pushes every neighbour of cur whose tentative cost improves on the best known.
func (s *Search) relax(cur entry) {
	g := cur.g + 1
	if s.maxCost > 0 && g > s.maxCost {
		return
	}
	for _, d := range grid.Offsets4 {
		nbr := cur.cell.Add(d)
		if !s.env.IsValidCell(nbr) || s.closed[nbr] {
			continue
		}
		if old, seen := s.best[nbr]; seen && g >= old {
			continue
		}
		s.best[nbr] = g
		s.open.Push(entry{cell: nbr, g: g, path: planner.Extend(cur.path, nbr)}, float64(g)+s.h(nbr, s.goal))
	}
}

// popLive pops entries until one for an unfinalized cell appears.
func (s *Search) popLive() (entry, bool) {
	for {
		e, _, ok := s.open.Pop()
		if !ok {
			return entry{}, false
		}
		if !s.closed[e.cell] {
			return e, true
		}
	}
}

// hasLive drops stale entries from the heap top and reports whether a live one remains.
func (s *Search) hasLive() bool {
	for {
		e, _, ok := s.open.Peek()
		if !ok {
			return false
		}
		if !s.closed[e.cell] {
			return true
		}
		s.open.Pop()
	}
}
