// Package planner defines the contract shared by every gridnav motion planner:
// a Planner turns an Environment into a Stepper, and a Stepper yields one Step
// per logical algorithm step until it reaches a terminal Status.
//
// What
//
//   - Planner.Plan(env) returns a resumable Stepper; nothing runs until Next is called.
//   - Stepper.Next() returns (Step, true) for every frame, then (Step{}, false) forever.
//   - Exactly one frame carries a terminal Status (Reached, Stuck, Exhausted,
//     BoundExceeded, Collision); it is always the last frame.
//   - Unplannable inputs (missing start, goal, or a required sensor) yield no frames.
//   - start == goal yields a single frame: one-cell path, Count 0, Reached.
//
// Cancellation
//
//	A driver cancels a run by no longer calling Next. Steppers hold no goroutines,
//	files, or locks between calls, so abandoning one is always safe.
//
// Options
//
//   - WithMaxSteps(n):  safety ceiling on yielded frames (0 = planner default).
//   - WithLogger(fn):   diagnostic printf-style hook; no-op by default.
//
// Errors
//
//   - ErrOptionViolation if an Option is invalid (e.g. negative MaxSteps).
//     Expected planning outcomes are never errors; they are Status values.
package planner
