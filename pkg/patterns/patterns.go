// Package patterns holds the preset stencils offered by the pattern library.
package patterns

import (
	"strings"
	"unicode/utf8"
)

// Pattern is a named stencil. Rows use 'O' for live cells and spaces for dead
// ones, the format accepted by life.Grid.LoadPattern.
type Pattern struct {
	Name        string
	Description string
	Rows        []string
}

// Category groups related patterns for presentation.
type Category struct {
	Name     string
	Patterns []Pattern
}

// Size returns the stencil's bounding box. Width is the longest row.
func (p Pattern) Size() (w, h int) {
	for _, row := range p.Rows {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w, len(p.Rows)
}

// Offset returns the placement that centres the stencil on a gridW x gridH
// grid. Stencils larger than the grid are anchored at the origin.
func (p Pattern) Offset(gridW, gridH int) (x, y int) {
	w, h := p.Size()
	if gridW > w {
		x = (gridW - w) / 2
	}
	if gridH > h {
		y = (gridH - h) / 2
	}
	return x, y
}

// Built-in presets, grouped as oscillators, spaceships, guns and
// methuselahs. Categories groups them and All lists them in display order.
var (
	Blinker = Pattern{
		Name:        "Blinker",
		Description: "Simple oscillator, period 2",
		Rows:        []string{"OOO"},
	}
	Toad = Pattern{
		Name:        "Toad",
		Description: "Oscillator, period 2",
		Rows:        []string{" OOO", "OOO "},
	}
	Beacon = Pattern{
		Name:        "Beacon",
		Description: "Oscillator, period 2",
		Rows:        []string{"OO  ", "O   ", "   O", "  OO"},
	}
	Pulsar = Pattern{
		Name:        "Pulsar",
		Description: "Classic oscillator, period 3",
		Rows: []string{
			"  OOO   OOO  ",
			"             ",
			"O    O O    O",
			"O    O O    O",
			"O    O O    O",
			"  OOO   OOO  ",
			"             ",
			"  OOO   OOO  ",
			"O    O O    O",
			"O    O O    O",
			"O    O O    O",
			"             ",
			"  OOO   OOO  ",
		},
	}
	Pentadecathlon = Pattern{
		Name:        "Pentadecathlon",
		Description: "Oscillator, period 15",
		Rows: []string{
			"  O    O  ",
			"OO OOOO OO",
			"  O    O  ",
		},
	}

	Glider = Pattern{
		Name:        "Glider",
		Description: "Smallest spaceship, moves diagonally",
		Rows:        []string{" O ", "  O", "OOO"},
	}
	LWSS = Pattern{
		Name:        "LWSS",
		Description: "Lightweight spaceship",
		Rows:        []string{" OOOO", "O   O", "    O", "O  O "},
	}
	MWSS = Pattern{
		Name:        "MWSS",
		Description: "Middleweight spaceship",
		Rows:        []string{"  O   ", " OOOO ", "O    O", "     O", "O   O "},
	}
	HWSS = Pattern{
		Name:        "HWSS",
		Description: "Heavyweight spaceship",
		Rows:        []string{"   O   ", "  OOOO ", " O    O", "      O", " O   O "},
	}

	GosperGliderGun = Pattern{
		Name:        "Gosper Gun",
		Description: "Classic glider gun, period 30",
		Rows: []string{
			"                        O           ",
			"                      O O           ",
			"            OO      OO            OO",
			"           O   O    OO            OO",
			"OO        O     O   OO              ",
			"OO        O   O OO    O O           ",
			"          O     O       O           ",
			"           O   O                    ",
			"            OO                      ",
		},
	}
	SimkinGliderGun = Pattern{
		Name:        "Simkin Gun",
		Description: "Glider gun, period 120",
		Rows: []string{
			"OO   OO                ",
			"OO   OO                ",
			"                       ",
			"    OO                 ",
			"    OO                 ",
			"                       ",
			"                       ",
			"                       ",
			"                       ",
			"                       ",
			"                OO  OO ",
			"                OO  OO ",
			"                       ",
			"                       ",
			"                   OOOO",
			"                 OO   O",
			"                 O     ",
			"                  O   O",
			"                   OOOO",
		},
	}

	RPentomino = Pattern{
		Name:        "R-Pentomino",
		Description: "Complex evolution from simple start",
		Rows:        []string{" OO", "OO ", " O "},
	}
	Diehard = Pattern{
		Name:        "Diehard",
		Description: "Dies after 130 generations",
		Rows:        []string{"      O ", "OO      ", " O   OOO"},
	}
	Acorn = Pattern{
		Name:        "Acorn",
		Description: "Grows into complex pattern",
		Rows:        []string{" O     ", "   O   ", "OO  OOO"},
	}
	Block = Pattern{
		Name:        "Block",
		Description: "Still life - never changes",
		Rows:        []string{"OO", "OO"},
	}
)

// Categories returns the library grouped the way the presets panel shows it.
func Categories() []Category {
	return []Category{
		{Name: "Oscillators", Patterns: []Pattern{Blinker, Toad, Beacon, Pulsar, Pentadecathlon}},
		{Name: "Spaceships", Patterns: []Pattern{Glider, LWSS, MWSS, HWSS}},
		{Name: "Guns", Patterns: []Pattern{GosperGliderGun, SimkinGliderGun}},
		{Name: "Miscellaneous", Patterns: []Pattern{RPentomino, Diehard, Acorn, Block}},
	}
}

// All flattens Categories in display order.
func All() []Pattern {
	var out []Pattern
	for _, c := range Categories() {
		out = append(out, c.Patterns...)
	}
	return out
}

// Names lists every pattern name in display order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a pattern by name. Matching ignores case, spaces, dashes and
// underscores, so "gosper-gun" finds "Gosper Gun".
func Lookup(name string) (Pattern, bool) {
	key := normalize(name)
	if key == "" {
		return Pattern{}, false
	}
	for _, p := range All() {
		if normalize(p.Name) == key {
			return p, true
		}
	}
	return Pattern{}, false
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
