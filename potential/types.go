package potential

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/sensor"
)

// Name is the registry name of the planner.
const Name = "potential"

// Default tuning.
const (
	DefaultAttractiveGain       = 5.0
	DefaultRepulsiveGain        = 100.0
	DefaultMinRepulsiveDistance = 2.0
	DefaultStepSize             = 0.1
	DefaultMaxPathLength        = 1000
)

// Sentinel errors for invalid tuning.
var (
	ErrBadGain     = errors.New("potential: gains must be finite and non-negative")
	ErrBadDistance = errors.New("potential: min repulsive distance must be finite and positive")
	ErrBadStepSize = errors.New("potential: step size must be finite and positive")
)

// Options configures the potential field planner.
type Options struct {
	planner.Options
	AttractiveGain       float64
	RepulsiveGain        float64
	MinRepulsiveDistance float64
	StepSize             float64
	// Sensor limits the obstacles that repel; nil means all obstacles.
	Sensor sensor.Sensor
}

// Option represents a functional option for configuring the planner.
type Option func(*Options)

// DefaultOptions returns the default gains, step, and bound.
func DefaultOptions() Options {
	return Options{
		Options:              planner.DefaultOptions(),
		AttractiveGain:       DefaultAttractiveGain,
		RepulsiveGain:        DefaultRepulsiveGain,
		MinRepulsiveDistance: DefaultMinRepulsiveDistance,
		StepSize:             DefaultStepSize,
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithGains sets the attractive and repulsive gains.
func WithGains(attractive, repulsive float64) Option {
	return func(o *Options) {
		if !finite(attractive) || !finite(repulsive) || attractive < 0 || repulsive < 0 {
			planner.Violation(&o.Options, "%w (%g, %g)", ErrBadGain, attractive, repulsive)
			return
		}
		o.AttractiveGain, o.RepulsiveGain = attractive, repulsive
	}
}

// WithMinRepulsiveDistance sets the influence radius d0 of obstacles.
func WithMinRepulsiveDistance(d0 float64) Option {
	return func(o *Options) {
		if !finite(d0) || d0 <= 0 {
			planner.Violation(&o.Options, "%w (%g)", ErrBadDistance, d0)
			return
		}
		o.MinRepulsiveDistance = d0
	}
}

// WithStepSize sets the distance travelled per step.
func WithStepSize(step float64) Option {
	return func(o *Options) {
		if !finite(step) || step <= 0 {
			planner.Violation(&o.Options, "%w (%g)", ErrBadStepSize, step)
			return
		}
		o.StepSize = step
	}
}

// WithSensor restricts repulsion to sensed obstacles.
func WithSensor(s sensor.Sensor) Option {
	return func(o *Options) { o.Sensor = s }
}

// WithMaxSteps overrides the trajectory length bound.
func WithMaxSteps(n int) Option {
	return func(o *Options) { planner.WithMaxSteps(n)(&o.Options) }
}

// WithLogger forwards to planner.WithLogger.
func WithLogger(fn planner.Logf) Option {
	return func(o *Options) { planner.WithLogger(fn)(&o.Options) }
}
