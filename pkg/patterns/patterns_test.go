package patterns

import (
	"slices"
	"testing"

	"game-of-life/pkg/sims/life"
)

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"glider":      "Glider",
		"Gosper Gun":  "Gosper Gun",
		"gosper-gun":  "Gosper Gun",
		"r_pentomino": "R-Pentomino",
		" LWSS ":      "LWSS",
	}
	for in, want := range cases {
		p, ok := Lookup(in)
		if !ok || p.Name != want {
			t.Errorf("Lookup(%q) = %q, %v; want %q", in, p.Name, ok, want)
		}
	}
	if _, ok := Lookup("nonexistent"); ok {
		t.Error("unknown name should not match")
	}
	if _, ok := Lookup(""); ok {
		t.Error("empty name should not match")
	}
}

func TestNamesUnique(t *testing.T) {
	names := Names()
	if len(names) != 15 {
		t.Fatalf("library holds %d patterns, want 15", len(names))
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(names) {
		t.Fatal("pattern names must be unique")
	}
}

func TestSizeAndOffset(t *testing.T) {
	w, h := GosperGliderGun.Size()
	if w != 36 || h != 9 {
		t.Fatalf("gosper gun size = %dx%d, want 36x9", w, h)
	}
	x, y := Glider.Offset(10, 10)
	if x != 3 || y != 3 {
		t.Fatalf("glider offset = (%d,%d), want (3,3)", x, y)
	}
	x, y = GosperGliderGun.Offset(20, 5)
	if x != 0 || y != 0 {
		t.Fatalf("oversize stencil offset = (%d,%d), want origin", x, y)
	}
}

func TestPopulations(t *testing.T) {
	want := map[string]int{
		"Blinker":     3,
		"Glider":      5,
		"Block":       4,
		"Pulsar":      48,
		"Gosper Gun":  36,
		"R-Pentomino": 5,
		"Acorn":       7,
		"Diehard":     7,
	}
	for name, pop := range want {
		p, _ := Lookup(name)
		w, h := p.Size()
		g := life.New(w, h)
		g.LoadPattern(p.Rows, 0, 0)
		if g.Population() != pop {
			t.Errorf("%s population = %d, want %d", name, g.Population(), pop)
		}
	}
}

func TestOscillatorPeriods(t *testing.T) {
	periods := map[string]int{
		"Blinker":        2,
		"Toad":           2,
		"Beacon":         2,
		"Pulsar":         3,
		"Pentadecathlon": 15,
		"Block":          1,
	}
	for name, period := range periods {
		p, _ := Lookup(name)
		w, h := p.Size()
		g := life.New(w+8, h+8)
		g.LoadPattern(p.Rows, 4, 4)
		start := g.Clone()
		for i := 0; i < period; i++ {
			g.NextGeneration()
		}
		if !g.Equal(start) {
			t.Errorf("%s did not return to its start after %d generations", name, period)
		}
	}
}
