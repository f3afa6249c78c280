package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/brushfire"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
	"github.com/katalvlaran/gridnav/internal/render"
	"github.com/katalvlaran/gridnav/planner"
)

// TestASCII_Path overlays a path, obstacles, and endpoints.
func TestASCII_Path(t *testing.T) {
	env := plantest.Walled(t, 4, 3, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 3, Y: 2}, grid.Cell{X: 1, Y: 0}, grid.Cell{X: 1, Y: 1})
	step := planner.Step{Path: []grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}}}

	want := "S#..\n" +
		"*#..\n" +
		"***G\n"
	assert.Equal(t, want, render.ASCII(env, step))
}

// TestASCII_Distances marks reached cells of a brushfire frame.
func TestASCII_Distances(t *testing.T) {
	env := plantest.Open(t, 3, 1, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 0})
	step := planner.Step{Distances: [][]int{{-1, 1, 0}}}
	assert.Equal(t, "S+G\n", render.ASCII(env, step))
}

// TestASCII_Nil renders nothing without an environment and ignores stray cells.
func TestASCII_Nil(t *testing.T) {
	assert.Empty(t, render.ASCII(nil, planner.Step{}))

	env := grid.MustEnvironment(2, 1)
	assert.Equal(t, "..\n", render.ASCII(env, planner.Step{Path: []grid.Cell{{X: 5, Y: 5}}}))
}

// TestASCII_Planner renders the final frame of a real run.
func TestASCII_Planner(t *testing.T) {
	env := plantest.Open(t, 3, 3, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 2, Y: 2})
	p, err := bfs.New()
	require.NoError(t, err)
	last, ok := planner.Last(p.Plan(env))
	require.True(t, ok)
	require.Equal(t, planner.Reached, last.Status)

	out := render.ASCII(env, last)
	assert.Len(t, out, 12)
	assert.Equal(t, 1, countRune(out, render.GlyphStart))
	assert.Equal(t, 1, countRune(out, render.GlyphGoal))
	assert.Equal(t, 3, countRune(out, render.GlyphPath))
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}

	return n
}

// TestFigure_Errors rejects a nil environment.
func TestFigure_Errors(t *testing.T) {
	_, err := render.Figure(nil, planner.Step{}, "x")
	require.Error(t, err)
}

// TestSavePNG writes a non-empty image for each kind of frame.
func TestSavePNG(t *testing.T) {
	env := plantest.Walled(t, 6, 4, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 5, Y: 3}, grid.Cell{X: 2, Y: 1}, grid.Cell{X: 2, Y: 2})

	p, err := brushfire.New()
	require.NoError(t, err)
	fire, ok := planner.Last(p.Plan(env))
	require.True(t, ok)
	require.NotEmpty(t, fire.Distances)

	cases := []struct {
		name string
		step planner.Step
	}{
		{"empty", planner.Step{}},
		{"brushfire", fire},
		{"trajectory", planner.Step{Trajectory: orb.LineString{{0, 0}, {0.5, 0.2}, {1.1, 0.4}}}},
	}
	dir := t.TempDir()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".png")
			require.NoError(t, render.SavePNG(path, env, tc.step, tc.name))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
