package app

import (
	"flag"
	"fmt"
	"time"

	"github.com/apex/log"

	"game-of-life/internal/session"
	"game-of-life/internal/stats"
	"game-of-life/internal/theme"
)

// Config represents the command-line parameters shared by the interactive
// frontends.
type Config struct {
	W       int
	H       int
	Density float64
	Speed   float64
	Scale   float64
	TPS     int
	Seed    int64
	Pattern string
	Load    string
	Save    string
	Theme   string
	History int

	LogLevel  string
	LogFormat string
	LogFile   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := session.DefaultOptions()
	return &Config{
		W:         def.Width,
		H:         def.Height,
		Density:   def.Density,
		Speed:     def.Speed,
		Scale:     def.CellSize,
		TPS:       60,
		Save:      "game_of_life.json",
		Theme:     theme.Dark.String(),
		History:   stats.DefaultHistory,
		LogLevel:  "info",
		LogFormat: "cli",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.W, "w", c.W, "grid width in cells")
	fs.IntVar(&c.H, "h", c.H, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive after randomize")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "generations per second while running")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial soup (0 uses the clock)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "preset to load at start-up")
	fs.StringVar(&c.Load, "load", c.Load, "file to load at start-up and on Ctrl+O (.json or .rle)")
	fs.StringVar(&c.Save, "save", c.Save, "file written on Ctrl+S (.json or .rle)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "color theme: dark or light")
	fs.IntVar(&c.History, "history", c.History, "population samples kept for statistics")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn, error or fatal")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "cli, json or discard")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file instead of stderr")
}

// SessionOptions converts the flags into session options.
func (c *Config) SessionOptions(logger log.Interface, clock func() time.Time) (session.Options, error) {
	kind, err := theme.Parse(c.Theme)
	if err != nil {
		return session.Options{}, fmt.Errorf("-theme: %w", err)
	}
	if c.TPS <= 0 {
		return session.Options{}, fmt.Errorf("-tps must be positive, got %d", c.TPS)
	}
	return session.Options{
		Width:    c.W,
		Height:   c.H,
		Density:  c.Density,
		Speed:    c.Speed,
		CellSize: c.Scale,
		Seed:     c.Seed,
		Theme:    kind,
		History:  c.History,
		Logger:   logger,
		Clock:    clock,
	}, nil
}

// NewSession builds a session from the flags and applies -pattern or -load.
func (c *Config) NewSession(logger log.Interface) (*session.Session, error) {
	opts, err := c.SessionOptions(logger, nil)
	if err != nil {
		return nil, err
	}
	s := session.New(opts)
	switch {
	case c.Load != "":
		if err := s.Load(c.Load); err != nil {
			return nil, err
		}
	case c.Pattern != "":
		if err := s.LoadPattern(c.Pattern); err != nil {
			return nil, err
		}
	}
	return s, nil
}
