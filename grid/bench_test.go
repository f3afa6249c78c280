package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridnav/grid"
)

// BenchmarkReachable measures a full flood fill on a 200×200 grid
// with 25% random obstacles.
// Complexity: O(W×H)
func BenchmarkReachable(b *testing.B) {
	env := grid.MustEnvironment(200, 200)
	_ = env.Scatter(rand.New(rand.NewSource(42)), 0.25)
	env.RemoveObstacle(grid.Cell{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = env.Reachable(grid.Cell{})
	}
}
