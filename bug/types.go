package bug

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/sensor"
)

// Variant selects the leave policy.
type Variant int

const (
	// Bug0 leaves the boundary as soon as the way ahead is free.
	Bug0 Variant = iota
	// Bug1 also requires progress past the hit point.
	Bug1
	// Bug2 follows the m-line and requires progress past the hit point.
	Bug2
)

// String returns "bug0", "bug1", or "bug2".
func (v Variant) String() string {
	switch v {
	case Bug0, Bug1, Bug2:
		return fmt.Sprintf("bug%d", int(v))
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Mode names reported in Step.Mode.
const (
	ModeGoalSeek       = "goal-seek"
	ModeBoundaryFollow = "boundary-follow"
)

// DefaultMaxSteps is the iteration ceiling.
const DefaultMaxSteps = 2000

// MLineTolerance is the distance within which a cell counts as on the m-line.
const MLineTolerance = 0.5

// Sentinel errors.
var (
	ErrBadVariant  = errors.New("bug: unknown variant")
	ErrBadStepSize = errors.New("bug: step size must be at least 1")
)

// Options configures a bug planner.
type Options struct {
	planner.Options
	// Sensor is required; Plan yields nothing without one.
	Sensor sensor.Sensor
	// StepSize is the number of cells Bug2 advances per goal-seek step.
	StepSize int
	// MLine adds the m-line proximity test to the Bug2 leave condition.
	MLine bool
}

// Option represents a functional option for configuring a bug planner.
type Option func(*Options)

// DefaultOptions returns StepSize 1, no m-line test, bound 2000, and no sensor.
func DefaultOptions() Options {
	return Options{Options: planner.DefaultOptions(), StepSize: 1}
}

// WithSensor attaches the sensor that reveals obstacles.
func WithSensor(s sensor.Sensor) Option {
	return func(o *Options) { o.Sensor = s }
}

// WithStepSize sets the Bug2 goal-seek stride in cells.
func WithStepSize(n int) Option {
	return func(o *Options) {
		if n < 1 {
			planner.Violation(&o.Options, "%w (%d)", ErrBadStepSize, n)
			return
		}
		o.StepSize = n
	}
}

// WithMLine toggles the Bug2 m-line leave test.
func WithMLine(on bool) Option {
	return func(o *Options) { o.MLine = on }
}

// WithMaxSteps forwards to planner.WithMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) { planner.WithMaxSteps(n)(&o.Options) }
}

// WithLogger forwards to planner.WithLogger.
func WithLogger(fn planner.Logf) Option {
	return func(o *Options) { planner.WithLogger(fn)(&o.Options) }
}
