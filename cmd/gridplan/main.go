// Command gridplan runs one planner over a grid environment and prints its
// frames as ASCII. The environment comes from a JSON document (-env) or is
// generated from -width, -height, -density, and -seed.
//
// Exit status is 0 when the goal is reached, 1 for any other outcome or a
// runtime failure, and 2 for usage errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/internal/catalog"
	"github.com/katalvlaran/gridnav/internal/config"
	"github.com/katalvlaran/gridnav/internal/render"
	"github.com/katalvlaran/gridnav/internal/trace"
	"github.com/katalvlaran/gridnav/planner"
)

const (
	exitReached = 0
	exitFailed  = 1
	exitUsage   = 2
)

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("usage")

// Config holds the parsed command line.
type Config struct {
	EnvPath    string
	Width      int
	Height     int
	Density    float64
	Seed       int64
	Walls      bool
	Start      string
	Goal       string
	Algo       string
	ConfigPath string
	Sensor     float64
	Every      int
	PNGPath    string
	TracePath  string
	SavePath   string
	Verbose    bool

	set map[string]bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitUsage
		}
		fmt.Fprintf(stderr, "gridplan: %v\n", err)
		return exitUsage
	}

	status, err := execute(cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "gridplan: %v\n", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFailed
	}
	if status != planner.Reached {
		return exitFailed
	}

	return exitReached
}

func parseFlags(args []string, stderr io.Writer) (Config, error) {
	cfg := Config{}
	fs := flag.NewFlagSet("gridplan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.EnvPath, "env", "", "Path to an environment JSON document")
	fs.IntVar(&cfg.Width, "width", 20, "Generated grid width")
	fs.IntVar(&cfg.Height, "height", 20, "Generated grid height")
	fs.Float64Var(&cfg.Density, "density", 0.2, "Generated obstacle density in [0,1]")
	fs.Int64Var(&cfg.Seed, "seed", 1, "Seed for obstacle generation")
	fs.BoolVar(&cfg.Walls, "walls", false, "Surround a generated grid with a boundary wall")
	fs.StringVar(&cfg.Start, "start", "", "Start cell as x,y")
	fs.StringVar(&cfg.Goal, "goal", "", "Goal cell as x,y")
	fs.StringVar(&cfg.Algo, "algo", "astar", "Planner: "+strings.Join(catalog.Names(), ", "))
	fs.StringVar(&cfg.ConfigPath, "config", "", "Path to a planner tuning JSON file")
	fs.Float64Var(&cfg.Sensor, "sensor", 0, "Sensor radius; overrides sensor_radius from -config")
	fs.IntVar(&cfg.Every, "every", 0, "Print every Nth frame (0 prints only the final frame)")
	fs.StringVar(&cfg.PNGPath, "png", "", "Write the final frame as a PNG figure")
	fs.StringVar(&cfg.TracePath, "trace", "", "Write the run trace as JSON")
	fs.StringVar(&cfg.SavePath, "save", "", "Write the environment as JSON")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.Every < 0 {
		return cfg, fmt.Errorf("-every must be non-negative, got %d", cfg.Every)
	}
	cfg.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	return cfg, nil
}

func execute(cfg Config, stdout, stderr io.Writer) (planner.Status, error) {
	logger := log.New(stderr, "", log.LstdFlags)
	logf := func(string, ...any) {}
	if cfg.Verbose {
		logf = logger.Printf
	}

	env, err := buildEnvironment(cfg)
	if err != nil {
		return planner.Running, err
	}
	if cfg.SavePath != "" {
		if err := grid.Save(cfg.SavePath, env); err != nil {
			return planner.Running, err
		}
		logf("environment saved to %s", cfg.SavePath)
	}

	tuning := config.EmptyPlannerConfig()
	if cfg.ConfigPath != "" {
		if tuning, err = config.LoadPlannerConfig(cfg.ConfigPath); err != nil {
			return planner.Running, fmt.Errorf("%w: %v", errUsage, err)
		}
	}
	if cfg.set["sensor"] {
		r := cfg.Sensor
		tuning.SensorRadius = &r
	}

	p, err := catalog.Build(cfg.Algo, tuning, logf)
	if err != nil {
		return planner.Running, fmt.Errorf("%w: %v", errUsage, err)
	}

	rec := trace.NewRecorder(p.Name(), env, cfg.Every)
	logf("run %s: %s on %dx%d with %d obstacles", rec.RunID(), p.Name(), env.Width(), env.Height(), env.ObstacleCount())

	var (
		last  planner.Step
		index int
	)
	for step := range planner.All(p.Plan(env)) {
		rec.Observe(step)
		last = step
		if cfg.Every > 0 && index%cfg.Every == 0 && !step.Status.Terminal() {
			printFrame(stdout, index, env, step)
		}
		index++
	}
	run := rec.Finish()

	if cfg.TracePath != "" {
		if err := trace.WriteFile(cfg.TracePath, run); err != nil {
			return planner.Running, err
		}
		logf("trace written to %s", cfg.TracePath)
	}

	if index == 0 {
		fmt.Fprintf(stdout, "%s: no frames (start or goal unset)\n", p.Name())
		return planner.Running, nil
	}
	printFrame(stdout, index-1, env, last)
	fmt.Fprintf(stdout, "%s: %s after %d steps, path %d cells\n", p.Name(), last.Status, last.Count, len(last.Path))
	if last.Status != planner.Reached {
		start, goal, _ := env.Endpoints()
		if d := env.ShortestDistance(start, goal); d < 0 {
			fmt.Fprintf(stdout, "goal %v is unreachable from %v\n", goal, start)
		} else {
			fmt.Fprintf(stdout, "goal %v is %d moves away\n", goal, d)
		}
	}

	if cfg.PNGPath != "" {
		title := fmt.Sprintf("%s: %s", p.Name(), last.Status)
		if err := render.SavePNG(cfg.PNGPath, env, last, title); err != nil {
			return last.Status, err
		}
		logf("figure written to %s", cfg.PNGPath)
	}

	return last.Status, nil
}

func printFrame(w io.Writer, index int, env *grid.Environment, step planner.Step) {
	mode := ""
	if step.Mode != "" {
		mode = " mode=" + step.Mode
	}
	fmt.Fprintf(w, "frame %d: count=%d status=%s%s\n", index, step.Count, step.Status, mode)
	fmt.Fprint(w, render.ASCII(env, step))
}

// buildEnvironment loads -env or generates a grid, then applies -start and
// -goal. Generated grids default to opposite corners, inset by the wall;
// with -walls neither endpoint may sit on the perimeter.
func buildEnvironment(cfg Config) (*grid.Environment, error) {
	var env *grid.Environment
	if cfg.EnvPath != "" {
		loaded, err := grid.Load(cfg.EnvPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		env = loaded
	} else {
		generated, err := grid.NewEnvironment(cfg.Width, cfg.Height)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		env = generated
		inset := 0
		if cfg.Walls {
			inset = 1
		}
		if err := env.SetStart(grid.Cell{X: inset, Y: inset}); err != nil {
			return nil, fmt.Errorf("%w: default start: %v", errUsage, err)
		}
		if err := env.SetGoal(grid.Cell{X: env.Width() - 1 - inset, Y: env.Height() - 1 - inset}); err != nil {
			return nil, fmt.Errorf("%w: default goal: %v", errUsage, err)
		}
	}

	for _, ep := range []struct {
		flag, value string
		set         func(grid.Cell) error
	}{
		{"start", cfg.Start, env.SetStart},
		{"goal", cfg.Goal, env.SetGoal},
	} {
		if ep.value == "" {
			continue
		}
		c, err := parseCell(ep.value)
		if err != nil {
			return nil, fmt.Errorf("%w: -%s: %v", errUsage, ep.flag, err)
		}
		if err := ep.set(c); err != nil {
			return nil, fmt.Errorf("%w: -%s: %v", errUsage, ep.flag, err)
		}
	}

	if cfg.EnvPath == "" {
		if err := env.Scatter(rand.New(rand.NewSource(cfg.Seed)), cfg.Density); err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		if cfg.Walls {
			start, goal, _ := env.Endpoints()
			for _, c := range []grid.Cell{start, goal} {
				if onPerimeter(env, c) {
					return nil, fmt.Errorf("%w: endpoint %v lies under the -walls boundary", errUsage, c)
				}
			}
			env.AddBoundary()
		}
	}

	return env, nil
}

func onPerimeter(env *grid.Environment, c grid.Cell) bool {
	return c.X == 0 || c.Y == 0 || c.X == env.Width()-1 || c.Y == env.Height()-1
}

// parseCell reads "x,y".
func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad y in %q: %w", s, err)
	}

	return grid.Cell{X: x, Y: y}, nil
}
