// Package catalog builds planners by name from a tuning config.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/bfs"
	"github.com/katalvlaran/gridnav/brushfire"
	"github.com/katalvlaran/gridnav/bug"
	"github.com/katalvlaran/gridnav/dfs"
	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/internal/config"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/potential"
	"github.com/katalvlaran/gridnav/randomwalk"
	"github.com/katalvlaran/gridnav/sensor"
)

// ErrUnknownPlanner is returned by Build for names not in Names().
var ErrUnknownPlanner = errors.New("catalog: unknown planner")

type builder func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error)

var builders = map[string]builder{
	bfs.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		return wrap(bfs.New(planner.WithMaxSteps(cfg.GetMaxSteps()), planner.WithLogger(logf)))
	},
	dfs.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		return wrap(dfs.New(planner.WithMaxSteps(cfg.GetMaxSteps()), planner.WithLogger(logf)))
	},
	dijkstra.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		return wrap(dijkstra.New(
			dijkstra.WithMaxCost(cfg.GetMaxCost()),
			dijkstra.WithMaxSteps(cfg.GetMaxSteps()),
			dijkstra.WithLogger(logf),
		))
	},
	astar.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		return wrap(astar.New(
			astar.WithHeuristicWeight(cfg.GetHeuristicWeight()),
			astar.WithMaxSteps(cfg.GetMaxSteps()),
			astar.WithLogger(logf),
		))
	},
	potential.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		s, err := optionalSensor(cfg)
		if err != nil {
			return nil, err
		}
		return wrap(potential.New(
			potential.WithGains(cfg.GetAttractiveGain(), cfg.GetRepulsiveGain()),
			potential.WithMinRepulsiveDistance(cfg.GetMinRepulsiveDistance()),
			potential.WithStepSize(cfg.GetStepSize()),
			potential.WithSensor(s),
			potential.WithMaxSteps(cfg.GetMaxSteps()),
			potential.WithLogger(logf),
		))
	},
	brushfire.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		return wrap(brushfire.New(planner.WithMaxSteps(cfg.GetMaxSteps()), planner.WithLogger(logf)))
	},
	bug.Bug0.String(): bugBuilder(bug.Bug0),
	bug.Bug1.String(): bugBuilder(bug.Bug1),
	bug.Bug2.String(): bugBuilder(bug.Bug2),
	randomwalk.Name: func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		s, err := optionalSensor(cfg)
		if err != nil {
			return nil, err
		}
		return wrap(randomwalk.New(
			randomwalk.WithSeed(cfg.GetSeed()),
			randomwalk.WithSensor(s),
			randomwalk.WithMaxSteps(cfg.GetMaxSteps()),
			randomwalk.WithLogger(logf),
		))
	},
}

func bugBuilder(v bug.Variant) builder {
	return func(cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
		s, err := requiredSensor(cfg)
		if err != nil {
			return nil, err
		}
		return wrap(bug.New(v,
			bug.WithSensor(s),
			bug.WithStepSize(cfg.GetBugStepSize()),
			bug.WithMLine(cfg.GetMLine()),
			bug.WithMaxSteps(cfg.GetMaxSteps()),
			bug.WithLogger(logf),
		))
	}
}

// optionalSensor returns a RangeSensor only when sensor_radius is set and positive.
func optionalSensor(cfg *config.PlannerConfig) (sensor.Sensor, error) {
	if cfg.SensorRadius == nil || *cfg.SensorRadius == 0 {
		return nil, nil
	}

	return rangeSensor(*cfg.SensorRadius)
}

// requiredSensor returns a RangeSensor of the configured radius, or an
// omniscient sensor when the radius is 0.
func requiredSensor(cfg *config.PlannerConfig) (sensor.Sensor, error) {
	r := cfg.GetSensorRadius()
	if r == 0 {
		return sensor.Omniscient{}, nil
	}

	return rangeSensor(r)
}

func rangeSensor(r float64) (sensor.Sensor, error) {
	s, err := sensor.NewRangeSensor(r)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// wrap returns a nil interface, not a typed nil, when err is set.
func wrap[P planner.Planner](p P, err error) (planner.Planner, error) {
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Names returns the registered planner names in sorted order.
func Names() []string {
	out := make([]string, 0, len(builders))
	for name := range builders {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Build constructs the named planner. A nil cfg selects every default and a
// nil logf the no-op logger.
func Build(name string, cfg *config.PlannerConfig, logf planner.Logf) (planner.Planner, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPlanner, name, Names())
	}
	if cfg == nil {
		cfg = config.EmptyPlannerConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", name, err)
	}

	return b(cfg, logf)
}
