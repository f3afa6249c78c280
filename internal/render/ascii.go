// Package render draws planner frames as ASCII text or PNG figures.
package render

import (
	"strings"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Glyphs used by ASCII.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphPath     = '*'
	GlyphReached  = '+'
)

// ASCII renders env with the frame overlaid, one line per row. Start and
// goal take precedence over the path, the path over brushfire distances.
func ASCII(env *grid.Environment, step planner.Step) string {
	if env == nil {
		return ""
	}
	w, h := env.Width(), env.Height()
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w)
		for x := range rows[y] {
			switch {
			case env.IsObstacle(grid.Cell{X: x, Y: y}):
				rows[y][x] = GlyphObstacle
			case y < len(step.Distances) && x < len(step.Distances[y]) && step.Distances[y][x] >= 0:
				rows[y][x] = GlyphReached
			default:
				rows[y][x] = GlyphFree
			}
		}
	}
	for _, c := range step.Path {
		if env.InBounds(c.X, c.Y) {
			rows[c.Y][c.X] = GlyphPath
		}
	}
	if s, ok := env.Start(); ok {
		rows[s.Y][s.X] = GlyphStart
	}
	if g, ok := env.Goal(); ok {
		rows[g.Y][g.X] = GlyphGoal
	}

	var b strings.Builder
	b.Grow((w + 1) * h)
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}
