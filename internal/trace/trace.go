// Package trace records the frames of a planning run and exports them as JSON.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/planner"
)

// Frame is the compact form of one recorded planner.Step. Cells are [x, y]
// pairs, matching the environment document.
type Frame struct {
	Index    int         `json:"index"`
	Count    int         `json:"count"`
	Status   string      `json:"status"`
	Tail     *[2]int     `json:"tail,omitempty"`
	PathLen  int         `json:"path_len"`
	Mode     string      `json:"mode,omitempty"`
	Position *[2]float64 `json:"position,omitempty"`
}

// Run is the exported trace of a single planning run.
type Run struct {
	RunID       string            `json:"run_id"`
	Planner     string            `json:"planner"`
	StartedAt   time.Time         `json:"started_at"`
	DurationMs  int64             `json:"duration_ms"`
	Environment *grid.Environment `json:"environment"`
	Frames      []Frame           `json:"frames"`
	Status      string            `json:"status"`
	Count       int               `json:"count"`
	Path        [][2]int          `json:"path"`
}

// Recorder accumulates frames. The final frame is always recorded; other
// frames are kept when their index is a multiple of Every.
type Recorder struct {
	run   Run
	every int
	index int
	last  planner.Step
	seen  bool
}

// NewRecorder starts a run trace for plannerName over env with a fresh run ID.
// every <= 1 records every frame.
func NewRecorder(plannerName string, env *grid.Environment, every int) *Recorder {
	if every < 1 {
		every = 1
	}

	return &Recorder{
		run: Run{
			RunID:       uuid.New().String(),
			Planner:     plannerName,
			StartedAt:   time.Now(),
			Environment: env,
			Frames:      []Frame{},
			Path:        [][2]int{},
		},
		every: every,
	}
}

// RunID returns the identifier assigned to this run.
func (r *Recorder) RunID() string { return r.run.RunID }

// Observe records s if it falls on the sampling interval or is terminal.
func (r *Recorder) Observe(s planner.Step) {
	if r.index%r.every == 0 || s.Status.Terminal() {
		r.run.Frames = append(r.run.Frames, compact(r.index, s))
	}
	r.index++
	r.last, r.seen = s, true
}

// Drain observes every remaining frame of s and returns the last one.
func (r *Recorder) Drain(s planner.Stepper) (planner.Step, bool) {
	for step := range planner.All(s) {
		r.Observe(step)
	}

	return r.last, r.seen
}

// Finish closes the trace and returns it. An empty run keeps status "none".
func (r *Recorder) Finish() Run {
	out := r.run
	out.DurationMs = time.Since(out.StartedAt).Milliseconds()
	out.Status = "none"
	if r.seen {
		out.Status = r.last.Status.String()
		out.Count = r.last.Count
		out.Path = pairs(r.last.Path)
	}
	out.Frames = slices.Clone(out.Frames)

	return out
}

// Encode writes run as indented JSON to w.
func Encode(w io.Writer, run Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(run)
}

// WriteFile writes run as indented JSON to path.
func WriteFile(path string, run Run) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := Encode(f, run); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode trace: %w", err)
	}

	return f.Close()
}

func compact(index int, s planner.Step) Frame {
	f := Frame{
		Index:   index,
		Count:   s.Count,
		Status:  s.Status.String(),
		PathLen: len(s.Path),
		Mode:    s.Mode,
	}
	if c, ok := s.Tail(); ok {
		f.Tail = &[2]int{c.X, c.Y}
	}
	if n := len(s.Trajectory); n > 0 {
		pt := s.Trajectory[n-1]
		f.Position = &[2]float64{pt.X(), pt.Y()}
	}

	return f
}

func pairs(cells []grid.Cell) [][2]int {
	out := make([][2]int, len(cells))
	for i, c := range cells {
		out[i] = [2]int{c.X, c.Y}
	}

	return out
}
