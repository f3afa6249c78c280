package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
	"github.com/katalvlaran/gridnav/planner"
)

func TestNew_Errors(t *testing.T) {
	_, err := dijkstra.New(dijkstra.WithMaxCost(-1))
	require.ErrorIs(t, err, planner.ErrOptionViolation)
	require.ErrorIs(t, err, dijkstra.ErrBadMaxCost)

	_, err = dijkstra.New(dijkstra.WithMaxSteps(-1))
	require.ErrorIs(t, err, planner.ErrOptionViolation)
}

func TestPlan_Degenerate(t *testing.T) {
	p, err := dijkstra.New()
	require.NoError(t, err)
	assert.Equal(t, "dijkstra", p.Name())
	require.Empty(t, planner.Collect(p.Plan(grid.MustEnvironment(4, 4))))

	at := grid.Cell{X: 3, Y: 3}
	frames := planner.Collect(p.Plan(plantest.Open(t, 4, 4, at, at)))
	require.Len(t, frames, 1)
	assert.Equal(t, planner.Reached, frames[0].Status)
}

// TestPlan_OpenGrid finds a 5-cell optimal route and finalizes cells in cost order.
func TestPlan_OpenGrid(t *testing.T) {
	start, goal := grid.Cell{X: 1, Y: 1}, grid.Cell{X: 3, Y: 3}
	env := plantest.Open(t, 5, 5, start, goal)
	p, _ := dijkstra.New()
	frames := plantest.RequireContract(t, p.Plan(env))

	last := frames[len(frames)-1]
	require.Equal(t, planner.Reached, last.Status)
	require.Len(t, last.Path, 5)
	plantest.RequireConnected(t, env, last.Path)

	prev := 0
	for _, f := range frames {
		require.GreaterOrEqual(t, len(f.Path)-1, prev)
		prev = len(f.Path) - 1
	}
}

// TestPlan_MatchesBFS agrees with BFS on route length over scattered layouts.
func TestPlan_MatchesBFS(t *testing.T) {
	d, _ := dijkstra.New()
	b, _ := bfs.New()
	for seed := int64(1); seed <= 10; seed++ {
		env := plantest.Open(t, 15, 10, grid.Cell{X: 0, Y: 9}, grid.Cell{X: 14, Y: 0})
		require.NoError(t, env.Scatter(plantest.Rand(seed), 0.3))

		dl, _ := planner.Last(d.Plan(env))
		bl, _ := planner.Last(b.Plan(env))
		require.Equal(t, bl.Status, dl.Status, "seed %d", seed)
		if dl.Status == planner.Reached {
			assert.Len(t, dl.Path, len(bl.Path), "seed %d", seed)
			plantest.RequireConnected(t, env, dl.Path)
		}
	}
}

func TestPlan_Unreachable(t *testing.T) {
	env := plantest.Walled(t, 5, 5, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4},
		grid.Cell{X: 3, Y: 4}, grid.Cell{X: 4, Y: 3})
	p, _ := dijkstra.New()
	frames := plantest.RequireContract(t, p.Plan(env))
	last := frames[len(frames)-1]
	assert.Equal(t, planner.Exhausted, last.Status)
	assert.Equal(t, 22, last.Count)
}

// TestPlan_MaxCost keeps the run within the cost cap.
func TestPlan_MaxCost(t *testing.T) {
	env := plantest.Open(t, 9, 9, grid.Cell{X: 4, Y: 4}, grid.Cell{X: 0, Y: 0})
	p, err := dijkstra.New(dijkstra.WithMaxCost(2))
	require.NoError(t, err)
	frames := plantest.RequireContract(t, p.Plan(env))

	// cells within Manhattan distance 2 of the centre
	require.Len(t, frames, 13)
	assert.Equal(t, planner.Exhausted, frames[12].Status)
	for _, f := range frames {
		assert.LessOrEqual(t, len(f.Path)-1, 2)
	}
}

func TestPlan_MaxSteps(t *testing.T) {
	env := plantest.Open(t, 9, 9, grid.Cell{X: 4, Y: 4}, grid.Cell{X: 0, Y: 0})
	p, _ := dijkstra.New(dijkstra.WithMaxSteps(5))
	frames := plantest.RequireContract(t, p.Plan(env))
	require.Len(t, frames, 5)
	assert.Equal(t, planner.BoundExceeded, frames[4].Status)
}
