package sensor

import (
	"fmt"
	"math"
	"sync"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridnav/grid"
)

// obstacleEntry wraps an obstacle cell for R-tree storage.
type obstacleEntry struct {
	cell grid.Cell
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacleEntry) Bounds() rtreego.Rect {
	return o.bbox
}

// RangeSensor detects every obstacle whose cell centre lies within Radius
// (Euclidean, inclusive) of the query position. It is safe for concurrent use.
type RangeSensor struct {
	radius float64

	mu      sync.Mutex
	env     *grid.Environment
	version uint64
	tree    *rtreego.Rtree
}

// cellExtent is the side of the square box stored for each obstacle cell;
// windowSlack widens the query box so obstacles exactly at Radius are kept.
const (
	cellExtent  = 1e-6
	windowSlack = 1e-3
)

// NewRangeSensor returns a sensor with the given detection radius.
// Returns ErrBadRadius if radius is not positive and finite.
func NewRangeSensor(radius float64) (*RangeSensor, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadRadius, radius)
	}

	return &RangeSensor{radius: radius}, nil
}

// Radius returns the detection radius.
func (s *RangeSensor) Radius() float64 { return s.radius }

// String implements fmt.Stringer.
func (s *RangeSensor) String() string {
	return fmt.Sprintf("RangeSensor(radius=%g)", s.radius)
}

// Sense returns the obstacles within Radius of at.
func (s *RangeSensor) Sense(env *grid.Environment, at orb.Point) Reading {
	s.mu.Lock()
	tree := s.index(env)
	s.mu.Unlock()

	reading := NewReading()
	if tree == nil {
		return reading
	}

	reach := s.radius + windowSlack
	window, err := rtreego.NewRect(
		rtreego.Point{at.X() - reach, at.Y() - reach},
		[]float64{2 * reach, 2 * reach},
	)
	if err != nil {
		return reading
	}
	for _, item := range tree.SearchIntersect(window) {
		entry := item.(*obstacleEntry)
		if planar.Distance(at, CellPoint(entry.cell)) <= s.radius {
			reading.obstacles[entry.cell] = struct{}{}
		}
	}

	return reading
}

// index returns the R-tree for env, rebuilding it when env or its version
// changed since the last call. Callers hold s.mu.
func (s *RangeSensor) index(env *grid.Environment) *rtreego.Rtree {
	if env == nil {
		return nil
	}
	if s.tree != nil && s.env == env && s.version == env.Version() {
		return s.tree
	}

	obstacles := env.Obstacles()
	objs := make([]rtreego.Spatial, 0, len(obstacles))
	for _, c := range obstacles {
		bbox, err := rtreego.NewRect(
			rtreego.Point{float64(c.X), float64(c.Y)},
			[]float64{cellExtent, cellExtent},
		)
		if err != nil {
			continue
		}
		objs = append(objs, &obstacleEntry{cell: c, bbox: bbox})
	}
	s.tree = rtreego.NewTree(2, 25, 50, objs...)
	s.env = env
	s.version = env.Version()

	return s.tree
}

// Omniscient is a Sensor that reports every obstacle regardless of distance.
type Omniscient struct{}

// Sense returns all obstacles of env.
func (Omniscient) Sense(env *grid.Environment, _ orb.Point) Reading {
	if env == nil {
		return NewReading()
	}

	return NewReading(env.Obstacles()...)
}

var (
	_ Sensor = (*RangeSensor)(nil)
	_ Sensor = Omniscient{}
)
