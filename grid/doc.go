// Package grid models a rectangular world of cells with static obstacles,
// a start cell, and a goal cell, the shared input of every planner in gridnav.
//
// What:
//
//   - Environment holds width, height, an obstacle set, and optional start/goal.
//   - A cell is valid iff it lies inside [0,width)×[0,height) and is not an obstacle.
//   - Neighbors enumerates valid 4-neighbours in the fixed order Down, Up, Right, Left.
//   - Reachable and Components flood-fill free space (ground truth for planners).
//   - Scatter fills random obstacles; Load/Save persist environments as JSON.
//
// Boundary policy:
//
//	Environments are open. NewEnvironment never inserts walls; AddBoundary adds a
//	one-cell perimeter on request. Planners never mutate an Environment.
//
// Complexity:
//
//   - IsValid, InBounds, IsObstacle: O(1).
//   - Reachable, Components:         O(W×H), Memory: O(W×H).
//   - Obstacles:                     O(k log k) for k obstacles.
//
// Errors:
//
//   - ErrBadDimensions: non-positive width or height.
//   - ErrOutOfBounds:   obstacle, start, or goal outside the grid.
//   - ErrBadDensity:    Scatter density outside [0,1].
//   - ErrBadFormat:     malformed JSON document.
package grid
