// Package config loads planner tuning parameters from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/gridnav/astar"
	"github.com/katalvlaran/gridnav/bug"
	"github.com/katalvlaran/gridnav/potential"
)

// DefaultConfigPath is the path to the canonical tuning defaults file.
const DefaultConfigPath = "config/planner.defaults.json"

// maxFileSize caps tuning files at 1 MiB.
const maxFileSize = 1 * 1024 * 1024

// PlannerConfig holds the tunables of every planner. All fields are
// optional; the Get* methods supply defaults for anything left unset, so
// partial files are safe.
type PlannerConfig struct {
	// A* params
	HeuristicWeight *float64 `json:"heuristic_weight,omitempty"`

	// Dijkstra params
	MaxCost *int `json:"max_cost,omitempty"`

	// Potential field params
	AttractiveGain       *float64 `json:"attractive_gain,omitempty"`
	RepulsiveGain        *float64 `json:"repulsive_gain,omitempty"`
	MinRepulsiveDistance *float64 `json:"min_repulsive_distance,omitempty"`
	StepSize             *float64 `json:"step_size,omitempty"`

	// Bug family params
	BugStepSize *int  `json:"bug_step_size,omitempty"`
	MLine       *bool `json:"m_line,omitempty"`

	// Sensor params; 0 means no sensor for planners where one is optional
	SensorRadius *float64 `json:"sensor_radius,omitempty"`

	// Shared params
	MaxSteps *int   `json:"max_steps,omitempty"` // 0 selects each planner's own bound
	Seed     *int64 `json:"seed,omitempty"`
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }
func ptrInt64(v int64) *int64       { return &v }
func ptrBool(v bool) *bool          { return &v }

// EmptyPlannerConfig returns a PlannerConfig with all fields set to nil.
func EmptyPlannerConfig() *PlannerConfig {
	return &PlannerConfig{}
}

// DefaultPlannerConfig returns a PlannerConfig with every field set to its default.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		HeuristicWeight:      ptrFloat64(1.0),
		MaxCost:              ptrInt(0),
		AttractiveGain:       ptrFloat64(potential.DefaultAttractiveGain),
		RepulsiveGain:        ptrFloat64(potential.DefaultRepulsiveGain),
		MinRepulsiveDistance: ptrFloat64(potential.DefaultMinRepulsiveDistance),
		StepSize:             ptrFloat64(potential.DefaultStepSize),
		BugStepSize:          ptrInt(1),
		MLine:                ptrBool(false),
		SensorRadius:         ptrFloat64(1.5),
		MaxSteps:             ptrInt(0),
		Seed:                 ptrInt64(1),
	}
}

// LoadPlannerConfig loads a PlannerConfig from a JSON file.
// The file must have a .json extension and be at most 1 MiB.
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyPlannerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that every set value is in range.
func (c *PlannerConfig) Validate() error {
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"heuristic_weight", c.HeuristicWeight},
		{"attractive_gain", c.AttractiveGain},
		{"repulsive_gain", c.RepulsiveGain},
		{"sensor_radius", c.SensorRadius},
	} {
		if f.v != nil && (!finite(*f.v) || *f.v < 0) {
			return fmt.Errorf("%s must be finite and non-negative, got %v", f.name, *f.v)
		}
	}

	if c.MinRepulsiveDistance != nil && (!finite(*c.MinRepulsiveDistance) || *c.MinRepulsiveDistance <= 0) {
		return fmt.Errorf("min_repulsive_distance must be positive, got %v", *c.MinRepulsiveDistance)
	}
	if c.StepSize != nil && (!finite(*c.StepSize) || *c.StepSize <= 0) {
		return fmt.Errorf("step_size must be positive, got %v", *c.StepSize)
	}
	if c.BugStepSize != nil && *c.BugStepSize < 1 {
		return fmt.Errorf("bug_step_size must be at least 1, got %d", *c.BugStepSize)
	}
	if c.MaxSteps != nil && *c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be non-negative, got %d", *c.MaxSteps)
	}
	if c.MaxCost != nil && *c.MaxCost < 0 {
		return fmt.Errorf("max_cost must be non-negative, got %d", *c.MaxCost)
	}

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// GetHeuristicWeight returns the heuristic_weight value or the default.
func (c *PlannerConfig) GetHeuristicWeight() float64 {
	if c.HeuristicWeight == nil {
		return astar.DefaultOptions().HeuristicWeight
	}
	return *c.HeuristicWeight
}

// GetMaxCost returns the max_cost value or the default (no cap).
func (c *PlannerConfig) GetMaxCost() int {
	if c.MaxCost == nil {
		return 0
	}
	return *c.MaxCost
}

// GetAttractiveGain returns the attractive_gain value or the default.
func (c *PlannerConfig) GetAttractiveGain() float64 {
	if c.AttractiveGain == nil {
		return potential.DefaultAttractiveGain
	}
	return *c.AttractiveGain
}

// GetRepulsiveGain returns the repulsive_gain value or the default.
func (c *PlannerConfig) GetRepulsiveGain() float64 {
	if c.RepulsiveGain == nil {
		return potential.DefaultRepulsiveGain
	}
	return *c.RepulsiveGain
}

// GetMinRepulsiveDistance returns the min_repulsive_distance value or the default.
func (c *PlannerConfig) GetMinRepulsiveDistance() float64 {
	if c.MinRepulsiveDistance == nil {
		return potential.DefaultMinRepulsiveDistance
	}
	return *c.MinRepulsiveDistance
}

// GetStepSize returns the step_size value or the default.
func (c *PlannerConfig) GetStepSize() float64 {
	if c.StepSize == nil {
		return potential.DefaultStepSize
	}
	return *c.StepSize
}

// GetBugStepSize returns the bug_step_size value or the default.
func (c *PlannerConfig) GetBugStepSize() int {
	if c.BugStepSize == nil {
		return bug.DefaultOptions().StepSize
	}
	return *c.BugStepSize
}

// GetMLine returns the m_line value or the default.
func (c *PlannerConfig) GetMLine() bool {
	if c.MLine == nil {
		return false
	}
	return *c.MLine
}

// GetSensorRadius returns the sensor_radius value or the default.
func (c *PlannerConfig) GetSensorRadius() float64 {
	if c.SensorRadius == nil {
		return 1.5
	}
	return *c.SensorRadius
}

// GetMaxSteps returns the max_steps value or 0 (planner default).
func (c *PlannerConfig) GetMaxSteps() int {
	if c.MaxSteps == nil {
		return 0
	}
	return *c.MaxSteps
}

// GetSeed returns the seed value or the default.
func (c *PlannerConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 1
	}
	return *c.Seed
}
