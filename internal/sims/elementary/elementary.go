package elementary

import (
	"fmt"

	"wolfram-ca/internal/core"
)

// Display describes the space a viewer offers to the automaton. FixedCenter
// seeding sizes the grid from ViewportWidth; Random seeding uses ScreenWidth
// so that resizing the viewport never disturbs a random first row.
type Display struct {
	ViewportWidth int
	ScreenWidth   int
}

// Frame is an immutable snapshot of one regeneration: the grid, the
// parameters that produced it, and the canvas dimensions it renders to.
type Frame struct {
	grid     *core.Grid
	table    RuleTable
	cfg      Config
	canvas   core.Size
	sequence uint64
}

// Grid exposes the generated cells. Callers must treat it as read-only.
func (f *Frame) Grid() *core.Grid { return f.grid }

// Table returns the decoded rule table.
func (f *Frame) Table() RuleTable { return f.table }

// Config returns the parameters that produced the frame.
func (f *Frame) Config() Config { return f.cfg }

// Cols returns the number of cells per generation.
func (f *Frame) Cols() int { return f.grid.W }

// Rows returns the number of generations.
func (f *Frame) Rows() int { return f.grid.H }

// CellSize returns the pixel edge length of a cell.
func (f *Frame) CellSize() int { return f.cfg.CellSize }

// Canvas returns the pixel dimensions the frame should be rendered at.
func (f *Frame) Canvas() core.Size { return f.canvas }

// Sequence increases by one for every regeneration of the owning Automaton.
func (f *Frame) Sequence() uint64 { return f.sequence }

// CenterScroll returns the horizontal scroll offset that centers the canvas
// in a viewport of the given width. Vertical scrolling always restarts at 0.
func (f *Frame) CenterScroll(viewportWidth int) int {
	off := (f.canvas.W - viewportWidth) / 2
	if off < 0 {
		return 0
	}
	return off
}

// Automaton owns the current frame and rebuilds it from scratch whenever a
// parameter or, for FixedCenter seeding, the viewport width changes.
// Callers must serialize access.
type Automaton struct {
	cfg     Config
	display Display
	rng     *core.RNG
	frame   *Frame
	seq     uint64
}

// New creates an automaton and generates its first frame. It panics when cfg
// or display violate the generator's preconditions; use Config.Validate and
// CheckDisplay beforehand when the values come from user input.
func New(cfg Config, display Display) *Automaton {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("elementary.New: %v", err))
	}
	if err := CheckDisplay(cfg, display); err != nil {
		panic(fmt.Sprintf("elementary.New: %v", err))
	}
	a := &Automaton{cfg: cfg, display: display, rng: core.NewRNG(cfg.Seed)}
	a.regenerate()
	return a
}

// CheckDisplay reports whether display can hold at least one cell for the
// seeding mode selected by cfg.
func CheckDisplay(cfg Config, display Display) error {
	w := availableWidth(cfg.Seeding, display)
	if cfg.CellSize > 0 && w < cfg.CellSize {
		return fmt.Errorf("width %d for cell size %d: %w", w, cfg.CellSize, ErrWidth)
	}
	return nil
}

func availableWidth(policy SeedPolicy, d Display) int {
	if policy == Random {
		return d.ScreenWidth
	}
	return d.ViewportWidth
}

// Config returns the active parameters.
func (a *Automaton) Config() Config { return a.cfg }

// Display returns the last display dimensions reported to the automaton.
func (a *Automaton) Display() Display { return a.display }

// Frame returns the latest complete frame.
func (a *Automaton) Frame() *Frame { return a.frame }

// Configure validates cfg and, when accepted, regenerates the frame. A change
// of Seed restarts the random stream. Rejected values leave the current frame
// untouched.
func (a *Automaton) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := CheckDisplay(cfg, a.display); err != nil {
		return err
	}
	if cfg.Seed != a.cfg.Seed {
		a.rng = core.NewRNG(cfg.Seed)
	}
	a.cfg = cfg
	a.regenerate()
	return nil
}

// Regenerate discards the current frame and builds a new one with the active
// parameters. Random seeding draws a fresh first row from the stream.
func (a *Automaton) Regenerate() *Frame {
	a.regenerate()
	return a.frame
}

// OnDimensionsChanged records a new viewport width. In FixedCenter mode any
// change of width triggers a regeneration; Random mode
// keeps its screen-bound grid. Widths that cannot hold a single cell are
// recorded but do not regenerate. It reports whether a new frame was built.
func (a *Automaton) OnDimensionsChanged(viewportWidth int) bool {
	prev := a.display.ViewportWidth
	a.display.ViewportWidth = viewportWidth
	if a.cfg.Seeding == Random || viewportWidth == prev {
		return false
	}
	if viewportWidth < a.cfg.CellSize {
		return false
	}
	a.regenerate()
	return true
}

// OnScreenChanged records a new screen width, used when a viewer moves to a
// different monitor. Random mode regenerates to the new bound.
func (a *Automaton) OnScreenChanged(screenWidth int) bool {
	prev := a.display.ScreenWidth
	a.display.ScreenWidth = screenWidth
	if a.cfg.Seeding != Random || screenWidth == prev || screenWidth < a.cfg.CellSize {
		return false
	}
	a.regenerate()
	return true
}

func (a *Automaton) regenerate() {
	cfg := a.cfg
	width := availableWidth(cfg.Seeding, a.display)
	cols := width / cfg.CellSize
	table := Decode(cfg.Rule)
	grid := Generate(table, cfg.Steps, cols, cfg.Seeding, a.rng)

	canvas := core.Size{W: cols * cfg.CellSize, H: cfg.Steps * cfg.CellSize}
	if cfg.Seeding == Random {
		canvas.W = width
	}
	a.seq++
	a.frame = &Frame{grid: grid, table: table, cfg: cfg, canvas: canvas, sequence: a.seq}
}

// Parameters describes the active configuration for on-screen display.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	f := a.frame
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rule",
			Params: []core.Parameter{
				core.IntParam("rule", "Rule", a.cfg.Rule),
				core.StringParam("table", "Table", f.table.String()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", a.cfg.Steps),
				core.IntParam("cell", "Cell size", a.cfg.CellSize),
				core.IntParam("cols", "Columns", f.Cols()),
				core.StringParam("seeding", "Seeding", a.cfg.Seeding.String()),
				core.BoolParam("random", "Randomize", a.cfg.Seeding == Random),
				core.Int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
	}}
}

// ParameterControls lists the values a viewer may adjust interactively.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 255, HasMin: true, HasMax: true},
		{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "cell", Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "random", Label: "Randomize", Type: core.ParamTypeBool, Step: 1, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies a single parameter change through Configure.
func (a *Automaton) SetIntParameter(key string, value int) error {
	cfg := a.cfg
	switch key {
	case "rule":
		cfg.Rule = value
	case "steps":
		cfg.Steps = value
	case "cell":
		cfg.CellSize = value
	case "random":
		cfg.Seeding = FixedCenter
		if value != 0 {
			cfg.Seeding = Random
		}
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	return a.Configure(cfg)
}
