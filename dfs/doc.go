// Package dfs provides a stepwise depth-first search planner over a grid.Environment.
//
// The frontier is a LIFO stack: neighbours are pushed in Down, Up, Right, Left
// order and the most recently pushed cell is expanded next, so the search
// dives along Left first and backtracks when a branch dead-ends. Cells are
// marked visited when pushed; each cell is expanded at most once.
//
// Routes are valid but not shortest in general. Use bfs for edge-count
// optimality. Each frame carries the route from the start to the cell
// just popped.
//
// Complexity: O(N) pops for N = width×height; memory O(N·L).
package dfs
