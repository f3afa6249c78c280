package grid

import (
	"fmt"
	"math/rand"
)

// Scatter replaces the obstacle set with random obstacles: every cell other
// than the start and goal becomes blocked with probability density.
// Cells are visited in row-major order, so a fixed rng seed reproduces the layout.
// Returns ErrBadDensity if density is outside [0,1].
func (e *Environment) Scatter(rng *rand.Rand, density float64) error {
	if density < 0 || density > 1 {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	e.ClearObstacles()
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			c := Cell{X: x, Y: y}
			if (e.hasStart && c == e.start) || (e.hasGoal && c == e.goal) {
				continue
			}
			if rng.Float64() < density {
				_ = e.AddObstacle(c)
			}
		}
	}

	return nil
}
