package potential_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/potential"
	"github.com/katalvlaran/gridnav/sensor"
)

func TestNew_Errors(t *testing.T) {
	cases := map[string]struct {
		opt  potential.Option
		want error
	}{
		"negative gain":  {potential.WithGains(-1, 1), potential.ErrBadGain},
		"zero distance":  {potential.WithMinRepulsiveDistance(0), potential.ErrBadDistance},
		"zero step":      {potential.WithStepSize(0), potential.ErrBadStepSize},
		"negative bound": {potential.WithMaxSteps(-1), planner.ErrOptionViolation},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := potential.New(tc.opt)
			require.ErrorIs(t, err, planner.ErrOptionViolation)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPlan_Degenerate(t *testing.T) {
	p, err := potential.New()
	require.NoError(t, err)
	require.Empty(t, planner.Collect(p.Plan(grid.MustEnvironment(3, 3))))

	at := grid.Cell{X: 1, Y: 1}
	frames := planner.Collect(p.Plan(plantest.Open(t, 3, 3, at, at)))
	require.Len(t, frames, 1)
	assert.Equal(t, planner.Reached, frames[0].Status)
	assert.Zero(t, frames[0].Count)
	assert.Equal(t, orb.LineString{{1, 1}}, frames[0].Trajectory)
}

// TestPlan_OpenGrid travels the diagonal in fixed-length steps and stops within one step.
func TestPlan_OpenGrid(t *testing.T) {
	env := plantest.Open(t, 10, 10, grid.Cell{X: 1, Y: 1}, grid.Cell{X: 8, Y: 8})
	p, _ := potential.New()
	frames := plantest.RequireContract(t, p.Plan(env))

	first, last := frames[0], frames[len(frames)-1]
	assert.Zero(t, first.Count)
	assert.Equal(t, orb.LineString{{1, 1}}, first.Trajectory)

	require.Equal(t, planner.Reached, last.Status)
	assert.Equal(t, 98, last.Count)
	require.Len(t, last.Trajectory, 99)
	end := last.Trajectory[len(last.Trajectory)-1]
	assert.LessOrEqual(t, planar.Distance(end, orb.Point{8, 8}), potential.DefaultStepSize)

	for i := 1; i < len(last.Trajectory); i++ {
		assert.InDelta(t, potential.DefaultStepSize, planar.Distance(last.Trajectory[i-1], last.Trajectory[i]), 1e-9)
	}
	assert.Equal(t, grid.Cell{X: 1, Y: 1}, last.Path[0])
	assert.Equal(t, grid.Cell{X: 8, Y: 8}, last.Path[len(last.Path)-1])
}

// TestPlan_FramesStable ensures an earlier frame is not rewritten by later steps.
func TestPlan_FramesStable(t *testing.T) {
	env := plantest.Open(t, 6, 1, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 5, Y: 0})
	p, _ := potential.New()
	s := p.Plan(env)
	s.Next()
	second, _ := s.Next()
	want := append(orb.LineString(nil), second.Trajectory...)
	planner.Collect(s)
	assert.Equal(t, want, second.Trajectory)
}

// TestPlan_LocalMinimum oscillates in front of a head-on obstacle until the bound.
func TestPlan_LocalMinimum(t *testing.T) {
	env := plantest.Walled(t, 10, 10, grid.Cell{X: 1, Y: 5}, grid.Cell{X: 8, Y: 5}, grid.Cell{X: 4, Y: 5})
	p, _ := potential.New()
	last, ok := planner.Last(p.Plan(env))
	require.True(t, ok)
	assert.Equal(t, planner.BoundExceeded, last.Status)
	assert.Len(t, last.Trajectory, potential.DefaultMaxPathLength+1)
}

// TestPlan_WalledGoal never reports Reached for a goal ringed by obstacles.
func TestPlan_WalledGoal(t *testing.T) {
	goal := grid.Cell{X: 7, Y: 7}
	env := plantest.Open(t, 10, 10, grid.Cell{X: 1, Y: 1}, goal)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx != 0 || dy != 0 {
				require.NoError(t, env.AddObstacle(grid.Cell{X: goal.X + dx, Y: goal.Y + dy}))
			}
		}
	}
	for _, gains := range [][2]float64{{5, 100}, {5, 0}, {50, 1}} {
		p, err := potential.New(potential.WithGains(gains[0], gains[1]), potential.WithMaxSteps(400))
		require.NoError(t, err)
		frames := plantest.RequireContract(t, p.Plan(env))
		last := frames[len(frames)-1]
		assert.NotEqual(t, planner.Reached, last.Status, "gains %v", gains)
		for _, pt := range last.Trajectory {
			assert.True(t, env.IsValidPoint(pt[0], pt[1]), "point %v", pt)
		}
	}
}

// TestPlan_Collision stops before entering an obstacle when repulsion is off.
func TestPlan_Collision(t *testing.T) {
	env := plantest.Walled(t, 10, 1, grid.Cell{X: 1, Y: 0}, grid.Cell{X: 6, Y: 0}, grid.Cell{X: 3, Y: 0})
	p, _ := potential.New(potential.WithGains(5, 0))
	last, _ := planner.Last(p.Plan(env))
	require.Equal(t, planner.Collision, last.Status)
	end := last.Trajectory[len(last.Trajectory)-1]
	assert.Less(t, end[0], 2.6)
	assert.Equal(t, []grid.Cell{{X: 1, Y: 0}, {X: 2, Y: 0}}, last.Path)
}

// TestPlan_ZeroForce is Stuck when nothing pulls or pushes.
func TestPlan_ZeroForce(t *testing.T) {
	env := plantest.Open(t, 5, 5, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 4})
	p, _ := potential.New(potential.WithGains(0, 0))
	frames := planner.Collect(p.Plan(env))
	require.Len(t, frames, 2)
	assert.Equal(t, planner.Stuck, frames[1].Status)
	assert.Equal(t, 1, frames[1].Count)
}

// TestPlan_SensorLimitsRepulsion ignores obstacles outside the sensor range.
func TestPlan_SensorLimitsRepulsion(t *testing.T) {
	env := plantest.Walled(t, 10, 10, grid.Cell{X: 1, Y: 5}, grid.Cell{X: 8, Y: 5}, grid.Cell{X: 4, Y: 5})
	rs, err := sensor.NewRangeSensor(0.5)
	require.NoError(t, err)

	// a 0.5 radius never sees the obstacle before contact, so the run collides
	p, _ := potential.New(potential.WithSensor(rs))
	last, _ := planner.Last(p.Plan(env))
	assert.Equal(t, planner.Collision, last.Status)
}
