package brushfire

import "github.com/katalvlaran/gridnav/grid"

// wave is an incremental multi-source breadth-first distance transform.
type wave struct {
	env   *grid.Environment
	dist  [][]int
	queue []grid.Cell
}

// newWave seeds the transform with distance 0 at every in-bounds seed.
// Seeds need not be free: a blocked goal still radiates into free cells.
func newWave(env *grid.Environment, seeds ...grid.Cell) *wave {
	wv := &wave{env: env, dist: newDistances(env.Width(), env.Height())}
	for _, s := range seeds {
		if env.InBounds(s.X, s.Y) && wv.dist[s.Y][s.X] == Unreached {
			wv.dist[s.Y][s.X] = 0
			wv.queue = append(wv.queue, s)
		}
	}

	return wv
}

func (wv *wave) pending() bool { return len(wv.queue) > 0 }

// step pops one cell and labels its unlabelled free neighbours.
func (wv *wave) step() {
	c := wv.queue[0]
	wv.queue = wv.queue[1:]
	d := wv.dist[c.Y][c.X] + 1
	for _, off := range grid.Offsets4 {
		n := c.Add(off)
		if wv.env.IsValidCell(n) && wv.dist[n.Y][n.X] == Unreached {
			wv.dist[n.Y][n.X] = d
			wv.queue = append(wv.queue, n)
		}
	}
}

// Transform returns the 4-connected hop distance from the nearest seed to
// every cell, indexed [y][x], with Unreached for cells no seed can reach.
// Out-of-bounds seeds are ignored.
//
// Time:   O(W·H).
// Memory: O(W·H).
func Transform(env *grid.Environment, seeds ...grid.Cell) [][]int {
	if env == nil {
		return nil
	}
	wv := newWave(env, seeds...)
	for wv.pending() {
		wv.step()
	}

	return wv.dist
}
