// Package app wires the controller, renderer and HUD into an ebiten.Game
// and holds the configuration shared by the binaries.
package app

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"cgol/internal/core"
	"cgol/internal/pattern"
	"cgol/internal/render"
	"cgol/internal/sim"
)

// Store backends.
const (
	StoreFile   = "file"
	StoreBadger = "badger"
)

// Config represents the command-line parameters for the application. Every
// field can also come from a YAML file named by File; explicit flags win.
type Config struct {
	File string `yaml:"-"`

	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
	Border   int `yaml:"border"`
	TPS      int `yaml:"tps"`

	StepFrames   int           `yaml:"step_frames"`
	StepInterval time.Duration `yaml:"step_interval"`
	PauseOnEdit  bool          `yaml:"pause_on_edit"`

	SaveDir string `yaml:"save_dir"`
	Store   string `yaml:"store"`
	Watch   bool   `yaml:"watch"`

	MetricsAddr string `yaml:"metrics_addr"`
	Pattern     string `yaml:"pattern"`
	Seed        int64  `yaml:"seed"`
	Verbose     bool   `yaml:"verbose"`

	// Noise holds perlin settings for the randomize key: scale, threshold
	// and octaves.
	Noise map[string]string `yaml:"noise"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       50,
		Height:      50,
		CellSize:    render.DefaultCellSize,
		Border:      render.DefaultBorder,
		TPS:         60,
		PauseOnEdit: true,
		SaveDir:     ".",
		Store:       StoreFile,
		Pattern:     "empty",
		Seed:        42,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(filename string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to read file: %s", filename)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %s", filename)
	}
	cfg.File = filename
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "YAML config file")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.Border, "border", c.Border, "border between cells in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.StepFrames, "step-frames", c.StepFrames, "frames skipped between generations (0 = every frame)")
	fs.DurationVar(&c.StepInterval, "step-interval", c.StepInterval, "time between generations, overrides -step-frames")
	fs.BoolVar(&c.PauseOnEdit, "pause-on-edit", c.PauseOnEdit, "pause when a cell is clicked while running")
	fs.StringVar(&c.SaveDir, "save-dir", c.SaveDir, "directory holding save slots")
	fs.StringVar(&c.Store, "store", c.Store, "slot store: file or badger")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "reload slots edited on disk")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", c.MetricsAddr, "serve prometheus metrics on this address")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: empty, random, noise, glider, blinker, block")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "debug logging")
}

// Overlay loads c.File, if set, and re-applies every flag for which changed
// reports true, so the command line beats the file.
func (c *Config) Overlay(fs *flag.FlagSet, changed func(name string) bool) error {
	if c.File == "" {
		return nil
	}
	loaded, err := LoadConfig(c.File)
	if err != nil {
		return err
	}

	tmp := flag.NewFlagSet("overlay", flag.ContinueOnError)
	loaded.Bind(tmp)
	var setErr error
	fs.VisitAll(func(f *flag.Flag) {
		if setErr != nil || f.Name == "config" || !changed(f.Name) {
			return
		}
		if tmp.Lookup(f.Name) == nil {
			return
		}
		setErr = tmp.Set(f.Name, f.Value.String())
	})
	if setErr != nil {
		return errors.Wrap(setErr, "[Config.Overlay] failed to reapply flag")
	}
	*c = *loaded
	return nil
}

// Visited returns a changed func reporting flags set on the command line.
func Visited(fs *flag.FlagSet) func(string) bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return func(name string) bool { return set[name] }
}

// Validate rejects configurations no component can run with.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Border < 0:
		return errors.Errorf("border must not be negative, got %d", c.Border)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	case c.StepFrames < 0 || c.StepInterval < 0:
		return errors.New("step cadence must not be negative")
	case c.Store != StoreFile && c.Store != StoreBadger:
		return errors.Errorf("unknown store %q", c.Store)
	}
	return nil
}

// Size is the grid size in cells.
func (c *Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// Layout is the pixel layout for the renderer.
func (c *Config) Layout() render.Layout {
	return render.Layout{CellSize: c.CellSize, Border: c.Border}
}

// Frames resolves the step cadence, preferring StepInterval when set.
func (c *Config) Frames() int {
	if c.StepInterval > 0 {
		return core.FramesFor(c.StepInterval, c.TPS)
	}
	return c.StepFrames
}

// Sim builds the controller configuration.
func (c *Config) Sim() sim.Config {
	return sim.Config{
		StepFrames:  c.Frames(),
		PauseOnEdit: c.PauseOnEdit,
		Footprint:   c.Layout().Footprint(),
		Noise:       pattern.FromMap(c.Noise),
	}
}
