// Package dijkstra provides a stepwise uniform-cost search planner over a grid.Environment.
//
// Overview:
//
//   - Every 4-connected move costs 1, so cells are finalized in non-decreasing
//     order of cost-so-far g, and the first route to the goal is a minimum-cost one.
//   - The frontier is a min-heap keyed by g with first-inserted-wins ties, using
//     a "lazy decrease-key" strategy: a cheaper route to a queued cell pushes a
//     duplicate entry, and outdated entries are discarded when popped.
//   - Only finalizing pops consume a step; discarded entries yield no frame.
//
// Options:
//
//   - WithMaxSteps(n): cap the number of finalized cells (default width×height).
//   - WithLogger(fn):   receive termination diagnostics.
//   - WithMaxCost(c):   never expand beyond cost c; the run ends Exhausted
//     when every cell within the cap is finalized.
//
// Performance and complexity (N = width×height):
//
//   - Time:  O(N log N) heap operations; each cell is finalized at most once.
//   - Space: O(N·L) for queued routes of length L, O(N) for cost and closed maps.
//
// Example usage:
//
//	p, err := dijkstra.New(dijkstra.WithMaxCost(40))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for step := range planner.All(p.Plan(env)) {
//	    fmt.Println(step.Count, step.Status)
//	}
package dijkstra
