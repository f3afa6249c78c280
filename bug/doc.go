// Package bug provides the Bug0, Bug1, and Bug2 reactive planners. They know
// nothing about the map beyond what a sensor.Sensor reports around the
// current cell, and alternate between two modes:
//
//   - goal-seek: step toward the goal. Bug0 and Bug1 take one axis-aligned
//     step along the dominant axis of the goal direction (ties go to x). Bug2
//     follows the start–goal line ("m-line"), advancing up to StepSize cells,
//     each the distance-reducing neighbour nearest the m-line.
//   - boundary-follow: a left-hand wall follower. On contact the heading turns
//     right of the blocked direction, then each step tries left, forward,
//     right, and back relative to the heading and takes the first free cell.
//
// A cell is free when the sensor does not report it and the environment
// says it is valid, so the planners also stop at obstacles the sensor cannot
// see yet (contact detection).
//
// Leave conditions, checked at the start of each boundary-follow step:
//
//	Bug0: the goal-seek cell ahead is free.
//	Bug1: the cell ahead is free and the bug is strictly closer to the goal than the hit point.
//	Bug2: strictly closer than the hit point and, with WithMLine, within 0.5 of the m-line.
//
// Bug1 leaves at the first point closer than the hit point instead of
// completing a full circuit of the obstacle first.
//
// Every Next call performs one iteration and yields the path after it. The
// run is Reached when the goal is entered, Stuck when no move is free, and
// BoundExceeded after MaxSteps iterations (default 2000). Without a sensor
// the run is empty.
package bug
