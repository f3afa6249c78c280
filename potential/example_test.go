package potential_test

import (
	"fmt"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/potential"
)

// ExamplePlanner_Plan drives the position down a free corridor in 0.1 steps.
func ExamplePlanner_Plan() {
	env := grid.MustEnvironment(6, 1)
	_ = env.SetStart(grid.Cell{X: 0, Y: 0})
	_ = env.SetGoal(grid.Cell{X: 5, Y: 0})

	p, _ := potential.New()
	last, _ := planner.Last(p.Plan(env))
	fmt.Println(last.Status, last.Count, len(last.Trajectory))
	fmt.Println(last.Path)
	// Output:
	// reached 50 51
	// [(0,0) (1,0) (2,0) (3,0) (4,0) (5,0)]
}
