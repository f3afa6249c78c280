package brushfire

import "github.com/katalvlaran/gridnav/grid"

// Name is the registry name of the planner.
const Name = "brushfire"

// Unreached marks a cell the wavefront never touched.
const Unreached = -1

// newDistances allocates a height×width grid filled with Unreached.
func newDistances(w, h int) [][]int {
	rows := make([][]int, h)
	cells := make([]int, w*h)
	for i := range cells {
		cells[i] = Unreached
	}
	for y := range rows {
		rows[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}

	return rows
}

// snapshot deep-copies d.
func snapshot(d [][]int) [][]int {
	if len(d) == 0 {
		return nil
	}
	w := len(d[0])
	out := make([][]int, len(d))
	cells := make([]int, w*len(d))
	for y, row := range d {
		copy(cells[y*w:], row)
		out[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}

	return out
}

// at reads d at c; out-of-range cells are Unreached.
func at(d [][]int, c grid.Cell) int {
	if c.Y < 0 || c.Y >= len(d) || c.X < 0 || c.X >= len(d[c.Y]) {
		return Unreached
	}

	return d[c.Y][c.X]
}
