// Package sensor provides range-limited obstacle sensing for reactive planners.
//
// What:
//
//   - Sensor is a single-method capability: Sense(env, at) returns the obstacles
//     a robot standing at a continuous position can detect.
//   - Reading is the detected obstacle set with O(1) membership tests.
//   - RangeSensor reports every obstacle within a Euclidean radius, backed by an
//     R-tree that is rebuilt only when the environment changes.
//
// Complexity (k = obstacles, m = obstacles in the query window):
//
//   - Index build: O(k log k), once per environment version.
//   - Sense:       O(log k + m).
//
// Errors:
//
//   - ErrBadRadius if the radius is not a positive finite number.
package sensor
