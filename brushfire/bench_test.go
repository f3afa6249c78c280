package brushfire_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/brushfire"
	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
)

func BenchmarkTransform(b *testing.B) {
	env := plantest.Open(b, 128, 128, grid.Cell{X: 0, Y: 0}, grid.Cell{X: 127, Y: 127})
	if err := env.Scatter(plantest.Rand(1), 0.2); err != nil {
		b.Fatal(err)
	}
	goal, _ := env.Goal()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		brushfire.Transform(env, goal)
	}
}
