package grid_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
)

// wallEnv builds a 5×3 grid split by a full vertical wall at x=2:
//
//	. . # . .
//	. . # . .
//	. . # . .
func wallEnv(t *testing.T) *grid.Environment {
	t.Helper()
	env := grid.MustEnvironment(5, 3)
	for y := 0; y < 3; y++ {
		require.NoError(t, env.AddObstacle(grid.Cell{X: 2, Y: y}))
	}

	return env
}

func TestReachable(t *testing.T) {
	env := wallEnv(t)
	dist := env.Reachable(grid.Cell{X: 0, Y: 0})

	assert.Len(t, dist, 6)
	assert.Equal(t, 0, dist[grid.Cell{X: 0, Y: 0}])
	assert.Equal(t, 3, dist[grid.Cell{X: 1, Y: 2}])
	_, ok := dist[grid.Cell{X: 3, Y: 0}]
	assert.False(t, ok, "cells across the wall are unreachable")

	assert.Empty(t, env.Reachable(grid.Cell{X: 2, Y: 0}), "obstacle origin")
	assert.Equal(t, -1, env.ShortestDistance(grid.Cell{X: 0, Y: 0}, grid.Cell{X: 4, Y: 0}))
	assert.Equal(t, 2, env.ShortestDistance(grid.Cell{X: 3, Y: 0}, grid.Cell{X: 4, Y: 1}))
}

func TestComponents(t *testing.T) {
	env := wallEnv(t)
	comps := env.Components()
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{6, 6}, sizes)
	assert.Equal(t, grid.Cell{X: 0, Y: 0}, comps[0][0])
	assert.Equal(t, grid.Cell{X: 3, Y: 0}, comps[1][0])
}

func TestScatter(t *testing.T) {
	env := grid.MustEnvironment(10, 10)
	require.NoError(t, env.SetStart(grid.Cell{X: 0, Y: 0}))
	require.NoError(t, env.SetGoal(grid.Cell{X: 9, Y: 9}))

	require.ErrorIs(t, env.Scatter(rand.New(rand.NewSource(1)), 1.5), grid.ErrBadDensity)

	require.NoError(t, env.Scatter(rand.New(rand.NewSource(7)), 1))
	assert.Equal(t, 98, env.ObstacleCount(), "every cell except start and goal")

	require.NoError(t, env.Scatter(rand.New(rand.NewSource(7)), 0.3))
	first := env.Obstacles()
	require.NoError(t, env.Scatter(rand.New(rand.NewSource(7)), 0.3))
	assert.Equal(t, first, env.Obstacles(), "same seed, same layout")
	assert.False(t, env.IsObstacle(grid.Cell{X: 0, Y: 0}))
	assert.False(t, env.IsObstacle(grid.Cell{X: 9, Y: 9}))
}
