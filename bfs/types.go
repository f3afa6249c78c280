package bfs

import "github.com/katalvlaran/gridnav/grid"

// Name is the registry name of the planner.
const Name = "bfs"

// entry pairs a frontier cell with the route that reached it.
type entry struct {
	cell grid.Cell
	path []grid.Cell
}
