package grid

// Reachable returns the 4-connected hop distance from `from` to every valid
// cell reachable from it, including `from` itself at distance 0.
// If `from` is not a valid cell the result is empty.
//
// Time:   O(W·H).
// Memory: O(W·H) for the queue and output.
func (e *Environment) Reachable(from Cell) map[Cell]int {
	dist := make(map[Cell]int)
	if !e.IsValidCell(from) {
		return dist
	}
	dist[from] = 0
	queue := []Cell{from}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range e.Neighbors(u) {
			if _, seen := dist[v]; !seen {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// ShortestDistance returns the 4-connected hop count between a and b, or
// -1 if b is unreachable from a.
func (e *Environment) ShortestDistance(a, b Cell) int {
	if d, ok := e.Reachable(a)[b]; ok {
		return d
	}

	return -1
}

// Components finds all contiguous regions of free cells under 4-connectivity.
// Each component lists its cells in discovery order; components are ordered
// by their first cell in row-major scan order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (e *Environment) Components() [][]Cell {
	seen := make([]bool, e.width*e.height)
	var comps [][]Cell

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			if !e.IsValid(x, y) || seen[e.index(x, y)] {
				continue
			}
			c0 := Cell{X: x, Y: y}
			seen[e.index(x, y)] = true
			queue := []Cell{c0}

			for qi := 0; qi < len(queue); qi++ {
				for _, v := range e.Neighbors(queue[qi]) {
					if i := e.index(v.X, v.Y); !seen[i] {
						seen[i] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// index maps (x,y) to a row-major index: y*width + x.
func (e *Environment) index(x, y int) int {
	return y*e.width + x
}
