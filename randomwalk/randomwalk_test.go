package randomwalk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/randomwalk"
	"github.com/katalvlaran/gridnav/sensor"
)

func TestNew_Errors(t *testing.T) {
	_, err := randomwalk.New(randomwalk.WithMaxSteps(-1))
	require.ErrorIs(t, err, planner.ErrOptionViolation)
}

func TestPlan_Degenerate(t *testing.T) {
	p, _ := randomwalk.New()
	require.Empty(t, planner.Collect(p.Plan(grid.MustEnvironment(2, 2))))

	at := grid.Cell{X: 1, Y: 1}
	frames := planner.Collect(p.Plan(plantest.Open(t, 2, 2, at, at)))
	require.Len(t, frames, 1)
	assert.Equal(t, planner.Reached, frames[0].Status)
}

// TestPlan_Deterministic replays the same walk for the same seed.
func TestPlan_Deterministic(t *testing.T) {
	env := plantest.Open(t, 8, 8, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 7, Y: 7})
	a, _ := randomwalk.New(randomwalk.WithSeed(42))
	b, _ := randomwalk.New(randomwalk.WithSeed(42))

	fa := plantest.RequireContract(t, a.Plan(env))
	fb := plantest.RequireContract(t, b.Plan(env))
	assert.Equal(t, fa, fb)
	assert.Equal(t, fa, planner.Collect(a.Plan(env)))

	last := fa[len(fa)-1]
	plantest.RequireConnected(t, env, last.Path)
	assert.Equal(t, last.Count, len(last.Path)-1)
}

// TestPlan_Corridor can only ever reach the goal in a one-cell-wide dead end.
func TestPlan_Corridor(t *testing.T) {
	env := plantest.Open(t, 2, 1, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 1, Y: 0})
	p, _ := randomwalk.New()
	frames := planner.Collect(p.Plan(env))
	require.Len(t, frames, 1)
	assert.Equal(t, planner.Reached, frames[0].Status)
	assert.Equal(t, 1, frames[0].Count)
}

func TestPlan_Bound(t *testing.T) {
	goal := grid.Cell{X: 5, Y: 5}
	env := plantest.Open(t, 6, 6, grid.Cell{X: 0, Y: 0}, goal)
	plantest.Enclose(t, env, goal)

	p, _ := randomwalk.New(randomwalk.WithSeed(7))
	frames := plantest.RequireContract(t, p.Plan(env))
	require.Len(t, frames, randomwalk.DefaultMaxSteps)
	assert.Equal(t, planner.BoundExceeded, frames[len(frames)-1].Status)
}

func TestPlan_Stuck(t *testing.T) {
	start := grid.Cell{X: 2, Y: 2}
	env := plantest.Open(t, 5, 5, start, grid.Cell{X: 0, Y: 0})
	plantest.Enclose(t, env, start)
	p, _ := randomwalk.New(randomwalk.WithSensor(sensor.Omniscient{}))
	frames := planner.Collect(p.Plan(env))
	require.Len(t, frames, 1)
	assert.Equal(t, planner.Stuck, frames[0].Status)
	assert.Zero(t, frames[0].Count)
}
