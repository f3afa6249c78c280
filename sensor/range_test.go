package sensor_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/sensor"
)

func TestNewRangeSensor_Errors(t *testing.T) {
	for _, r := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := sensor.NewRangeSensor(r)
		if !errors.Is(err, sensor.ErrBadRadius) {
			t.Errorf("NewRangeSensor(%v) error = %v; want ErrBadRadius", r, err)
		}
	}
}

// TestRangeSensor_Sense checks the inclusive Euclidean radius on a diagonal layout.
func TestRangeSensor_Sense(t *testing.T) {
	env := grid.MustEnvironment(10, 10)
	for _, c := range []grid.Cell{{X: 5, Y: 5}, {X: 7, Y: 5}, {X: 8, Y: 8}, {X: 5, Y: 3}, {X: 0, Y: 0}} {
		require.NoError(t, env.AddObstacle(c))
	}
	s, err := sensor.NewRangeSensor(2)
	require.NoError(t, err)

	got := s.Sense(env, orb.Point{5, 5}).Cells()
	want := []grid.Cell{{X: 5, Y: 3}, {X: 5, Y: 5}, {X: 7, Y: 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sense mismatch (-want +got):\n%s", diff)
	}

	// (8,8) is sqrt(8)≈2.83 from (6,6): outside radius 2.
	r := s.Sense(env, orb.Point{6, 6})
	assert.True(t, r.Has(grid.Cell{X: 5, Y: 5}))
	assert.False(t, r.Has(grid.Cell{X: 8, Y: 8}))

	// Continuous positions work too.
	assert.True(t, s.Sense(env, orb.Point{0.5, 1.5}).Has(grid.Cell{X: 0, Y: 0}))
}

// TestRangeSensor_Rebuild verifies the index tracks environment edits.
func TestRangeSensor_Rebuild(t *testing.T) {
	env := grid.MustEnvironment(5, 5)
	s, err := sensor.NewRangeSensor(1.5)
	require.NoError(t, err)

	assert.Zero(t, s.Sense(env, orb.Point{2, 2}).Len())

	require.NoError(t, env.AddObstacle(grid.Cell{X: 3, Y: 3}))
	assert.True(t, s.Sense(env, orb.Point{2, 2}).Has(grid.Cell{X: 3, Y: 3}))

	env.RemoveObstacle(grid.Cell{X: 3, Y: 3})
	assert.Zero(t, s.Sense(env, orb.Point{2, 2}).Len())

	other := grid.MustEnvironment(5, 5)
	require.NoError(t, other.AddObstacle(grid.Cell{X: 2, Y: 1}))
	assert.Equal(t, 1, s.Sense(other, orb.Point{2, 2}).Len(), "switching environments rebuilds")
	assert.Zero(t, s.Sense(nil, orb.Point{2, 2}).Len())
}

// TestRangeSensor_Concurrent exercises the cache from several goroutines.
func TestRangeSensor_Concurrent(t *testing.T) {
	env := grid.MustEnvironment(20, 20)
	env.AddBoundary()
	s, err := sensor.NewRangeSensor(3)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r := s.Sense(env, orb.Point{1, float64(1 + i)})
			assert.True(t, r.Has(grid.Cell{X: 0, Y: 1 + i}))
		}(i)
	}
	wg.Wait()
}

func TestOmniscient(t *testing.T) {
	env := grid.MustEnvironment(30, 30)
	require.NoError(t, env.AddObstacle(grid.Cell{X: 29, Y: 29}))
	r := sensor.Omniscient{}.Sense(env, orb.Point{0, 0})
	assert.True(t, r.Has(grid.Cell{X: 29, Y: 29}))
	assert.Equal(t, "RangeSensor(radius=2.5)", mustSensor(t, 2.5).String())
}

func mustSensor(t *testing.T, r float64) *sensor.RangeSensor {
	t.Helper()
	s, err := sensor.NewRangeSensor(r)
	require.NoError(t, err)

	return s
}
