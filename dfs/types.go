package dfs

import "github.com/katalvlaran/gridnav/grid"

// Name is the registry name of the planner.
const Name = "dfs"

// frame pairs a stacked cell with the route that reached it.
type frame struct {
	cell grid.Cell
	path []grid.Cell
}
