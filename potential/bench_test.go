package potential_test

import (
	"testing"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/plantest"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/potential"
	"github.com/katalvlaran/gridnav/sensor"
)

func BenchmarkPlan(b *testing.B) {
	env := plantest.Open(b, 40, 40, grid.Cell{X: 2, Y: 2}, grid.Cell{X: 37, Y: 37})
	if err := env.Scatter(plantest.Rand(3), 0.05); err != nil {
		b.Fatal(err)
	}
	rs, _ := sensor.NewRangeSensor(2)
	all, _ := potential.New()
	sensed, _ := potential.New(potential.WithSensor(rs))

	b.Run("all-obstacles", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			planner.Last(all.Plan(env))
		}
	})
	b.Run("range-sensor", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			planner.Last(sensed.Plan(env))
		}
	})
}
