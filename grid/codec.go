package grid

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// document is the on-disk JSON shape: keys width, height, obstacles, start, goal,
// with cells encoded as [x, y] pairs and unset endpoints as null.
type document struct {
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Obstacles [][2]int `json:"obstacles"`
	Start     *[2]int  `json:"start"`
	Goal      *[2]int  `json:"goal"`
}

// MarshalJSON encodes the environment. Obstacles are emitted in (Y, X) order.
func (e *Environment) MarshalJSON() ([]byte, error) {
	doc := document{
		Width:     e.width,
		Height:    e.height,
		Obstacles: make([][2]int, 0, len(e.obstacles)),
	}
	for _, c := range e.Obstacles() {
		doc.Obstacles = append(doc.Obstacles, [2]int{c.X, c.Y})
	}
	if e.hasStart {
		doc.Start = &[2]int{e.start.X, e.start.Y}
	}
	if e.hasGoal {
		doc.Goal = &[2]int{e.goal.X, e.goal.Y}
	}

	return json.Marshal(doc)
}

// UnmarshalJSON decodes an environment document, replacing the receiver's state.
// Returns ErrBadFormat for invalid dimensions or out-of-bounds cells.
func (e *Environment) UnmarshalJSON(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	fresh, err := NewEnvironment(doc.Width, doc.Height)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	for _, xy := range doc.Obstacles {
		if err := fresh.AddObstacle(Cell{X: xy[0], Y: xy[1]}); err != nil {
			return fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}
	if doc.Start != nil {
		if err := fresh.SetStart(Cell{X: doc.Start[0], Y: doc.Start[1]}); err != nil {
			return fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}
	if doc.Goal != nil {
		if err := fresh.SetGoal(Cell{X: doc.Goal[0], Y: doc.Goal[1]}); err != nil {
			return fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
	}
	fresh.version = e.version + 1
	*e = *fresh

	return nil
}

// Load reads an environment from a .json file.
func Load(path string) (*Environment, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".json" {
		return nil, fmt.Errorf("environment file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read environment file: %w", err)
	}
	var env Environment
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	return &env, nil
}

// Save writes e to path as indented JSON.
func Save(path string, e *Environment) error {
	data, err := json.MarshalIndent(e, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode environment: %w", err)
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write environment file: %w", err)
	}

	return nil
}
