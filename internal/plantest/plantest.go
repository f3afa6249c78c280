// Package plantest holds fixtures and assertions shared by planner tests.
package plantest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Open returns an obstacle-free w×h environment with start and goal set.
func Open(t testing.TB, w, h int, start, goal grid.Cell) *grid.Environment {
	t.Helper()
	env, err := grid.NewEnvironment(w, h)
	require.NoError(t, err)
	require.NoError(t, env.SetStart(start))
	require.NoError(t, env.SetGoal(goal))

	return env
}

// Walled returns Open(w,h,start,goal) with the given obstacles added.
func Walled(t testing.TB, w, h int, start, goal grid.Cell, obstacles ...grid.Cell) *grid.Environment {
	t.Helper()
	env := Open(t, w, h, start, goal)
	for _, c := range obstacles {
		require.NoError(t, env.AddObstacle(c))
	}

	return env
}

// Enclose surrounds c with obstacles on all four sides, skipping out-of-bounds cells.
func Enclose(t testing.TB, env *grid.Environment, c grid.Cell) {
	t.Helper()
	for _, d := range grid.Offsets4 {
		n := c.Add(d)
		if env.InBounds(n.X, n.Y) {
			require.NoError(t, env.AddObstacle(n))
		}
	}
}

// RequireConnected fails unless consecutive cells of path are 4-adjacent
// and every cell is free.
func RequireConnected(t testing.TB, env *grid.Environment, path []grid.Cell) {
	t.Helper()
	for i, c := range path {
		require.Truef(t, env.IsValidCell(c), "path[%d]=%v is not free", i, c)
		if i > 0 {
			require.Truef(t, grid.Adjacent(path[i-1], c), "path[%d]=%v and path[%d]=%v are not adjacent", i-1, path[i-1], i, c)
		}
	}
}

// RequireContract drains s and checks the frame stream invariants: every
// frame before the last is Running, the last is terminal, and the step
// counter never decreases. Returns the frames.
func RequireContract(t testing.TB, s planner.Stepper) []planner.Step {
	t.Helper()
	frames := planner.Collect(s)
	for i, f := range frames {
		if i < len(frames)-1 {
			require.Equalf(t, planner.Running, f.Status, "frame %d", i)
		} else {
			require.Truef(t, f.Status.Terminal(), "last frame status %v", f.Status)
		}
		if i > 0 {
			require.GreaterOrEqualf(t, f.Count, frames[i-1].Count, "frame %d count regressed", i)
		}
	}
	_, more := s.Next()
	require.False(t, more, "stepper yielded after its terminal frame")

	return frames
}

// Rand returns a deterministic source for scattered fixtures.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
