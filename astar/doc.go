// Package astar provides a stepwise A* planner over a grid.Environment.
//
// A* is best-first search keyed by f = g + w·h, where g is the cost so far
// (1 per 4-connected move) and h is the Manhattan distance to the goal.
// With the default weight w = 1 the heuristic is admissible and consistent,
// so the first route to the goal is optimal; w = 0 degrades to Dijkstra and
// w > 1 trades optimality for fewer expansions.
//
// Ties on f pop in insertion order. Stale heap entries are discarded without
// yielding a frame, exactly as in package dijkstra.
package astar
