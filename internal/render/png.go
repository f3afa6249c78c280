package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

var (
	obstacleColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	pathColor     = color.RGBA{R: 30, G: 110, B: 220, A: 255}
	trajColor     = color.RGBA{R: 220, G: 120, B: 20, A: 255}
	startColor    = color.RGBA{R: 20, G: 160, B: 60, A: 255}
	goalColor     = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// flipY maps a grid row to plot space, where y grows upward.
func flipY(env *grid.Environment, y float64) float64 {
	return float64(env.Height()-1) - y
}

// distanceGrid adapts a brushfire distance grid to plotter.GridXYZ.
type distanceGrid struct {
	env  *grid.Environment
	dist [][]int
}

func (g distanceGrid) Dims() (c, r int) { return g.env.Width(), g.env.Height() }
func (g distanceGrid) X(c int) float64  { return float64(c) }
func (g distanceGrid) Y(r int) float64  { return float64(r) }

// Z reads rows bottom-up so that row 0 of the plot is the last grid row.
func (g distanceGrid) Z(c, r int) float64 {
	y := g.env.Height() - 1 - r
	if y >= len(g.dist) || c >= len(g.dist[y]) || g.dist[y][c] < 0 {
		return math.NaN()
	}
	return float64(g.dist[y][c])
}

// spread reports whether dist holds at least two distinct reached values;
// the heat map palette needs a non-empty range.
func spread(dist [][]int) bool {
	lo, hi := -1, -1
	for _, row := range dist {
		for _, d := range row {
			if d < 0 {
				continue
			}
			if lo < 0 || d < lo {
				lo = d
			}
			if d > hi {
				hi = d
			}
		}
	}

	return hi > lo && lo >= 0
}

// Figure builds a plot of env with the frame overlaid: a distance heat map
// when the frame carries one, obstacles as squares, the path as a line, the
// continuous trajectory when present, and start and goal markers.
func Figure(env *grid.Environment, step planner.Step, title string) (*plot.Plot, error) {
	if env == nil {
		return nil, fmt.Errorf("render: nil environment")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "rows (top = 0)"
	p.X.Min, p.X.Max = -0.5, float64(env.Width())-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(env.Height())-0.5

	if spread(step.Distances) {
		hm := plotter.NewHeatMap(distanceGrid{env: env, dist: step.Distances}, palette.Heat(16, 1))
		hm.NaN = color.Transparent
		p.Add(hm)
	}

	if obs := env.Obstacles(); len(obs) > 0 {
		pts := make(plotter.XYs, len(obs))
		for i, c := range obs {
			pts[i] = plotter.XY{X: float64(c.X), Y: flipY(env, float64(c.Y))}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("render: obstacles: %w", err)
		}
		sc.GlyphStyle.Shape = draw.BoxGlyph{}
		sc.GlyphStyle.Color = obstacleColor
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
	}

	if len(step.Path) > 1 {
		pts := make(plotter.XYs, len(step.Path))
		for i, c := range step.Path {
			pts[i] = plotter.XY{X: float64(c.X), Y: flipY(env, float64(c.Y))}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: path: %w", err)
		}
		line.Color = pathColor
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add("path", line)
	}

	if len(step.Trajectory) > 1 {
		pts := make(plotter.XYs, len(step.Trajectory))
		for i, pt := range step.Trajectory {
			pts[i] = plotter.XY{X: pt.X(), Y: flipY(env, pt.Y())}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("render: trajectory: %w", err)
		}
		line.Color = trajColor
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add("trajectory", line)
	}

	for _, m := range []struct {
		label string
		get   func() (grid.Cell, bool)
		color color.Color
	}{
		{"start", env.Start, startColor},
		{"goal", env.Goal, goalColor},
	} {
		c, ok := m.get()
		if !ok {
			continue
		}
		sc, err := plotter.NewScatter(plotter.XYs{{X: float64(c.X), Y: flipY(env, float64(c.Y))}})
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", m.label, err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = m.color
		sc.GlyphStyle.Radius = vg.Points(5)
		p.Add(sc)
		p.Legend.Add(m.label, sc)
	}

	p.Legend.Top = true
	p.Legend.Left = false

	return p, nil
}

// SavePNG writes Figure(env, step, title) to path. The image is sized at
// a quarter inch per cell, with a 4 inch minimum side.
func SavePNG(path string, env *grid.Environment, step planner.Step, title string) error {
	p, err := Figure(env, step, title)
	if err != nil {
		return err
	}
	side := func(n int) vg.Length {
		return vg.Length(math.Max(4, float64(n)/4)) * vg.Inch
	}
	if err := p.Save(side(env.Width()), side(env.Height()), path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}
