package planner

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/gridnav/grid"
)

// ErrOptionViolation is returned by planner constructors when an invalid Option is supplied.
var ErrOptionViolation = errors.New("planner: invalid option supplied")

// Status classifies a Step. Every status except Running is terminal.
type Status int

const (
	// Running marks an intermediate frame.
	Running Status = iota
	// Reached marks a final frame whose path ends at (or, for continuous planners, within a step of) the goal.
	Reached
	// Stuck marks a final frame where no valid move was available.
	Stuck
	// Exhausted marks a final frame where the search frontier emptied without reaching the goal.
	Exhausted
	// BoundExceeded marks a final frame cut off by the safety step ceiling.
	BoundExceeded
	// Collision marks a final frame where the next move would leave free space.
	Collision
)

var statusNames = [...]string{"running", "reached", "stuck", "exhausted", "bound-exceeded", "collision"}

// String implements fmt.Stringer.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}

	return statusNames[s]
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool { return s != Running }

// Step is one observable frame of a planning run.
//
// Path is the current root-to-frontier route (search planners) or the cells
// visited so far (reactive planners). Count is the algorithm's step counter.
// Trajectory holds continuous positions for the potential field planner.
// Distances holds the brushfire distance grid indexed [y][x], -1 = unreached.
// Mode names the reactive mode of bug planners.
//
// Slices in a Step are owned by the stepper and must be treated as read-only.
type Step struct {
	Path       []grid.Cell
	Count      int
	Status     Status
	Trajectory orb.LineString
	Distances  [][]int
	Mode       string
}

// Tail returns the last cell of Path and whether Path is non-empty.
func (s Step) Tail() (grid.Cell, bool) {
	if len(s.Path) == 0 {
		return grid.Cell{}, false
	}

	return s.Path[len(s.Path)-1], true
}

// Stepper is a resumable planning run. Each Next call advances exactly one
// logical step and returns its frame; ok is false once the run is over.
type Stepper interface {
	Next() (step Step, ok bool)
}

// Planner builds a Stepper for an environment. Planners keep no per-run state,
// so one Planner may serve many concurrent runs.
type Planner interface {
	Name() string
	Plan(env *grid.Environment) Stepper
}

// Logf is a printf-style diagnostic sink, compatible with log.Printf.
type Logf func(format string, args ...any)

// Options holds settings shared by every planner.
type Options struct {
	// MaxSteps caps the number of yielded frames; 0 selects the planner default.
	MaxSteps int
	// Logf receives diagnostics such as mode switches.
	Logf Logf

	err error
}

// Option configures shared planner settings via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with MaxSteps 0 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		Logf:     func(string, ...any) {},
	}
}

// Apply folds opts into a fresh Options and surfaces any recorded violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Err returns the first recorded option violation, if any. Packages that embed
// Options in their own option struct check it after applying their options.
func (o Options) Err() error { return o.err }

// Bound returns MaxSteps, or def when MaxSteps is 0.
func (o Options) Bound(def int) int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}

	return def
}

// WithMaxSteps sets the safety ceiling on yielded frames.
//
//	n > 0:  limit to n frames
//	n == 0: planner default
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger registers a diagnostic sink. A nil fn keeps the no-op logger.
func WithLogger(fn Logf) Option {
	return func(o *Options) {
		if fn != nil {
			o.Logf = fn
		}
	}
}

// Violation records err as an option violation. Planner packages use it to
// build their own validated options on top of Options.
func Violation(o *Options, format string, args ...any) {
	o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
}
