// Package gridnav is a collection of grid-world path planners that share one
// stepwise, resumable contract: every planner hands back a Stepper whose
// frames can be inspected, rendered, or abandoned at any point.
//
// 🚀 What is gridnav?
//
//	A small 2-D planning toolkit that brings together:
//		• Environment: width×height grid, obstacle set, start & goal, JSON codec
//		• Sensors: range-limited obstacle detection over an R-tree, or omniscient
//		• Uninformed search: BFS, DFS
//		• Informed search: Dijkstra, weighted A*
//		• Reactive: potential field, Bug0, Bug1, Bug2, random walk
//		• Distance transforms: brushfire wavefront + gradient descent
//
// ✨ Why gridnav?
//
//   - One contract – every planner yields planner.Step frames until a terminal status
//   - Deterministic – fixed neighbour order Down, Up, Right, Left everywhere
//   - Resumable – stop after any frame, keep the Stepper, continue later
//   - Concurrent-safe planners – per-run state lives in the Stepper only
//
// Subpackages:
//
//	grid/       - Cell, Environment, neighbour offsets, scatter, components
//	sensor/     - Sensor contract, RangeSensor, Omniscient
//	planner/    - Step, Status, Stepper, Planner & shared options
//	bfs/, dfs/  - uninformed search
//	dijkstra/   - uniform-cost search with optional cost ceiling
//	astar/      - Manhattan-guided search with heuristic weight
//	potential/  - continuous attractive/repulsive field descent
//	brushfire/  - distance transform and descent
//	bug/        - Bug0, Bug1, Bug2 reactive navigation
//	randomwalk/ - seeded random exploration baseline
//	cmd/gridplan - command-line runner with ASCII, PNG and JSON trace output
//
// Quick ASCII example (S start, G goal, # obstacle, * path):
//
//	S#..
//	*#..
//	***G
//
//	go get github.com/katalvlaran/gridnav
package gridnav
