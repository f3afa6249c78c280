// Package bfs provides a stepwise breadth-first search planner over a grid.Environment,
// yielding one frame per dequeued cell and terminating on the first route to the goal.
//
// What
//
//   - Explore cells in non-decreasing hop distance from the start.
//   - Each dequeue increments the step counter and yields the route to that cell.
//   - Neighbours are enqueued in the fixed order Down, Up, Right, Left and marked
//     visited at enqueue time, so every cell enters the frontier at most once.
//   - The terminal frame is Reached (goal dequeued), Exhausted (frontier empty),
//     or BoundExceeded (WithMaxSteps ceiling hit).
//
// Why
//
//   - The first route to the goal is a shortest path in edge count.
//   - The frame stream shows the wavefront growing ring by ring.
//
// Complexity (N = width×height)
//
//   - Time:   O(N) dequeues, O(N·L) path copying for routes of length L.
//   - Memory: O(N·L) for the frontier routes and visited set.
//
// Usage
//
//	p, _ := bfs.New()
//	last, _ := planner.Last(p.Plan(env))
//	if last.Status == planner.Reached { /* last.Path is shortest */ }
package bfs
