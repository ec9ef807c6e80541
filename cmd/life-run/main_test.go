package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"game-of-life/pkg/rle"
	"game-of-life/pkg/savestate"
)

func testOptions() options {
	return options{width: 20, height: 20, density: 0.3, gens: 4, window: 5, workers: 2}
}

func TestRunSoupSettlesEmptyBoard(t *testing.T) {
	cfg := surveyConfig{width: 10, height: 10, density: 0, maxGens: 50, window: 5}
	res, err := runSoup(context.Background(), cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !res.settled || res.settleAt != 0 || res.final != 0 {
		t.Fatalf("empty soup = %+v", res)
	}
}

func TestSurveyIsReproducible(t *testing.T) {
	cfg := surveyConfig{width: 24, height: 24, density: 0.35, baseSeed: 100, soups: 6, workers: 3, maxGens: 300, window: 20}
	a, err := survey(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := survey(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 6 {
		t.Fatalf("results = %d, want 6", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	for i := 1; i < len(a); i++ {
		if a[i-1].settled && !a[i].settled {
			t.Fatal("active soups should sort first")
		}
	}
}

func TestSurveyHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := surveyConfig{width: 50, height: 50, density: 0.4, soups: 4, workers: 2, maxGens: 10000, window: 10000}
	if _, err := survey(ctx, cfg); err == nil {
		t.Fatal("cancelled survey should fail")
	}
}

func TestRunSurveyOutput(t *testing.T) {
	opts := testOptions()
	opts.soups = 3
	opts.seed = 7
	var out strings.Builder
	if err := runSurvey(context.Background(), opts, &out); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "seed="); n != 3 {
		t.Fatalf("printed %d results, want 3:\n%s", n, out.String())
	}
}

func TestRunSingleWritesRLE(t *testing.T) {
	opts := testOptions()
	opts.pattern = "blinker"
	opts.gens = 1
	opts.out = filepath.Join(t.TempDir(), "out.rle")
	if err := runSingle(opts, time.Now); err != nil {
		t.Fatal(err)
	}
	p, err := rle.ReadFile(opts.out)
	if err != nil {
		t.Fatal(err)
	}
	if p.Population() != 3 || p.Width != 20 {
		t.Fatalf("saved pattern %dx%d pop %d", p.Width, p.Height, p.Population())
	}
}

func TestRunSingleFromState(t *testing.T) {
	dir := t.TempDir()
	first := testOptions()
	first.seed = 11
	first.out = filepath.Join(dir, "a.json")
	if err := runSingle(first, time.Now); err != nil {
		t.Fatal(err)
	}

	second := testOptions()
	second.load = first.out
	second.out = filepath.Join(dir, "b.json")
	if err := runSingle(second, time.Now); err != nil {
		t.Fatal(err)
	}
	st, err := savestate.Load(second.out)
	if err != nil {
		t.Fatal(err)
	}
	if st.Generation != 8 {
		t.Fatalf("generation = %d, want 8", st.Generation)
	}
}

func TestInitialGridUnknownPattern(t *testing.T) {
	opts := testOptions()
	opts.pattern = "nope"
	if _, _, err := initialGrid(opts, time.Now); err == nil {
		t.Fatal("unknown pattern should fail")
	}
}
