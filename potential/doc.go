// Package potential provides an artificial potential field planner that moves
// a continuous-valued position through a grid.Environment.
//
// Each step sums an attractive force toward the goal,
//
//	F_att = k_a · (goal − p)
//
// and a repulsive force from every visible obstacle o within distance d0,
//
//	F_rep = k_r · (1/d − 1/d0) / d² · (p − o)/d,   d = |p − o|,
//
// normalizes the resultant to unit length, and advances by StepSize along it.
// Obstacles at d == 0 contribute nothing. Without a sensor every obstacle is
// visible; with one, only those reported by each Sense call.
//
// Termination:
//
//   - Reached:       |p − goal| ≤ StepSize.
//   - Collision:     the next position is out of bounds or rounds to an obstacle.
//   - Stuck:         the resultant force is exactly zero.
//   - BoundExceeded: the trajectory holds more points than the bound
//     (default 1000), the usual symptom of a local minimum or oscillation.
//
// Frames carry the continuous positions in Step.Trajectory and the rounded
// cells visited, without consecutive repeats, in Step.Path. Rounded cells
// need not be 4-adjacent.
package potential
