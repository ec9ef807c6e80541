// Package savestate persists a full session as JSON: grid size, generation,
// sparse live-cell coordinates and the run settings. SaveFile and LoadFile
// also route ".rle" paths to the RLE codec.
package savestate

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"game-of-life/pkg/rle"
	"game-of-life/pkg/sims/life"
)

// Version is written into every saved state.
var Version = "0.1.0"

// ErrInvalidState is wrapped by every validation failure.
var ErrInvalidState = errors.New("invalid game state")

// Settings are the run parameters restored alongside the grid.
type Settings struct {
	UpdateSpeed float64 `json:"update_speed"`
	CellSize    float64 `json:"cell_size"`
	Density     float64 `json:"density"`
}

// DefaultSettings mirrors the application's start-up values.
func DefaultSettings() Settings {
	return Settings{UpdateSpeed: 10, CellSize: 10, Density: 0.3}
}

// State is the on-disk JSON document.
type State struct {
	Version    string   `json:"version"`
	CreatedAt  string   `json:"created_at"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Generation int      `json:"generation"`
	AliveCells [][2]int `json:"alive_cells"`
	Settings   Settings `json:"settings"`
}

// FromGrid snapshots g.
func FromGrid(g *life.Grid, generation int, settings Settings) *State {
	alive := g.AliveCells()
	cells := make([][2]int, len(alive))
	for i, pt := range alive {
		cells[i] = [2]int{pt.X, pt.Y}
	}
	return &State{
		Version:    Version,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Width:      g.Width(),
		Height:     g.Height(),
		Generation: generation,
		AliveCells: cells,
		Settings:   settings,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Validate checks dimensions, settings ranges and that every live cell lies
// on the grid.
func (s *State) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return invalid("grid dimensions cannot be zero")
	}
	if s.Generation < 0 {
		return invalid("generation cannot be negative")
	}
	if s.Settings.UpdateSpeed <= 0 || s.Settings.UpdateSpeed > 100 {
		return invalid("update speed must be between 1-100")
	}
	if s.Settings.CellSize <= 0 || s.Settings.CellSize > 100 {
		return invalid("cell size must be between 0-100")
	}
	if s.Settings.Density < 0 || s.Settings.Density > 1 {
		return invalid("density must be between 0-1")
	}
	for _, c := range s.AliveCells {
		if c[0] < 0 || c[1] < 0 || c[0] >= s.Width || c[1] >= s.Height {
			return invalid("cell coordinates (%d, %d) exceed grid bounds (%d, %d)", c[0], c[1], s.Width, s.Height)
		}
	}
	return nil
}

// Grid rebuilds the saved grid.
func (s *State) Grid() (*life.Grid, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, invalid("grid dimensions cannot be zero")
	}
	g := life.New(s.Width, s.Height)
	g.SetDensity(s.Settings.Density)
	for _, c := range s.AliveCells {
		if !g.InBounds(c[0], c[1]) {
			return nil, invalid("cell coordinates (%d, %d) exceed grid bounds (%d, %d)", c[0], c[1], s.Width, s.Height)
		}
		g.SetCell(c[0], c[1], life.Alive)
	}
	return g, nil
}

// Save validates s and writes it to path as indented JSON.
func Save(path string, s *State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and validates the state at path.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Format names the encoding chosen for a path.
type Format int

const (
	// FormatJSON writes the whole State document.
	FormatJSON Format = iota
	// FormatRLE stores only the live cells, as a Life RLE pattern.
	FormatRLE
)

func (f Format) String() string {
	if f == FormatRLE {
		return "rle"
	}
	return "json"
}

// FormatFor picks RLE for ".rle" paths and JSON for everything else,
// including ".gol" and extensionless paths.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".rle") {
		return FormatRLE
	}
	return FormatJSON
}

// ExportName is the #N line written when a grid is saved as RLE.
const ExportName = "Exported Pattern"

// SaveFile writes g to path in the format FormatFor selects.
func SaveFile(path string, g *life.Grid, generation int, settings Settings) (Format, error) {
	format := FormatFor(path)
	if format == FormatRLE {
		return format, rle.WriteFile(path, rle.FromGrid(g, ExportName))
	}
	return format, Save(path, FromGrid(g, generation, settings))
}

// Loaded holds whichever document LoadFile decoded; exactly one field is set.
type Loaded struct {
	State   *State
	Pattern *rle.Pattern
}

// LoadFile reads path in the format FormatFor selects.
func LoadFile(path string) (Loaded, error) {
	if FormatFor(path) == FormatRLE {
		p, err := rle.ReadFile(path)
		if err != nil {
			return Loaded{}, err
		}
		return Loaded{Pattern: p}, nil
	}
	s, err := Load(path)
	if err != nil {
		return Loaded{}, err
	}
	return Loaded{State: s}, nil
}
