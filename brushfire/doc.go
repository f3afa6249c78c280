// Package brushfire provides a two-phase planner: a 4-connected distance
// transform grown outward from the goal, followed by gradient descent from
// the start.
//
// Phase 1 processes one wavefront queue entry per step and yields a snapshot
// of the distance grid (indexed [y][x], -1 = unreached) with an empty path.
// Phase 2 walks from the start, each step moving to the first neighbour in
// Down, Up, Right, Left order whose distance is strictly smaller than the
// current cell's. It reaches the goal exactly when the start was reached by
// phase 1, and is Stuck otherwise.
//
// Phase-2 frames share the final distance grid; it is never written again.
//
// Transform exposes phase 1 on its own for callers that only need the field.
package brushfire
