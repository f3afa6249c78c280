package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// ExamplePlanner_Plan finds a minimum-cost route across an open 5×5 grid.
// Uniform-cost search finalizes every cell cheaper than the goal first.
func ExamplePlanner_Plan() {
	env := grid.MustEnvironment(5, 5)
	_ = env.SetStart(grid.Cell{X: 1, Y: 1})
	_ = env.SetGoal(grid.Cell{X: 3, Y: 3})

	p, _ := dijkstra.New()
	last, _ := planner.Last(p.Plan(env))
	fmt.Println(last.Status, last.Count)
	fmt.Println(last.Path)
	// Output:
	// reached 20
	// [(1,1) (1,2) (1,3) (2,3) (3,3)]
}
