package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"conway-life/internal/core"
	"conway-life/internal/life"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	MenuCols int     `json:"menu_cols"`
	CellSize int     `json:"cell_size"`
	TPS      int     `json:"tps"`
	StepRate int     `json:"step_rate"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`

	File string `json:"-"`
}

// NewConfig returns a Config matching the classic 900x600 window.
func NewConfig() *Config {
	l := life.DefaultLayout()
	return &Config{
		Width:    l.Width,
		Height:   l.Height,
		MenuCols: l.Col0,
		CellSize: 10,
		TPS:      60,
		Density:  life.DefaultDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells, walls included")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells, walls included")
	fs.IntVar(&c.MenuCols, "menu-cols", c.MenuCols, "columns reserved for the menu")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.StepRate, "step-rate", c.StepRate, "generations per second while running (0 = one per frame)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize (0 = time based)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability a cell is born on randomize")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// Parse reads args into fs. When a config file is named, it is loaded and
// args are parsed again so explicit flags win over file values.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	if c.File == "" {
		return c.Validate()
	}
	if err := c.LoadFile(c.File); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Config.Parse] failed to parse flags")
	}
	return c.Validate()
}

// LoadFile overlays values from a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Layout converts the grid settings into a life.Layout.
func (c *Config) Layout() life.Layout {
	return life.Layout{Width: c.Width, Height: c.Height, Col0: c.MenuCols, Row0: 1}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.StepRate < 0 {
		return errors.Errorf("step rate must not be negative, got %d", c.StepRate)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be within [0,1], got %v", c.Density)
	}
	if !c.Layout().Valid() {
		return errors.Errorf("grid %dx%d with %d menu columns leaves no playable cells", c.Width, c.Height, c.MenuCols)
	}
	return nil
}

// EffectiveSeed resolves a zero seed to the current time.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewSession builds a universe and session from the configuration.
func (c *Config) NewSession() *Session {
	u := life.New(c.Layout(), c.EffectiveSeed())
	u.SetDensity(c.Density)
	var pace *core.FixedStep
	if c.StepRate > 0 && c.StepRate < c.TPS {
		pace = core.NewFixedStep(c.StepRate)
	}
	return NewSession(u, pace)
}
