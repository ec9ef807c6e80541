package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/apex/log"

	"game-of-life/internal/logging"
	"game-of-life/internal/stats"
	"game-of-life/pkg/patterns"
	"game-of-life/pkg/savestate"
	"game-of-life/pkg/sims/life"
)

type options struct {
	width   int
	height  int
	density float64
	seed    int64
	pattern string
	load    string
	gens    int
	out     string

	soups     int
	workers   int
	window    int
	threshold int

	logLevel  string
	logFormat string
}

func (o *options) bind(fs *flag.FlagSet) {
	fs.IntVar(&o.width, "w", 64, "grid width for random soups and presets")
	fs.IntVar(&o.height, "h", 64, "grid height for random soups and presets")
	fs.Float64Var(&o.density, "density", 0.3, "fraction of cells alive in a random soup")
	fs.Int64Var(&o.seed, "seed", 0, "soup seed (0 uses the clock); first seed of a survey")
	fs.StringVar(&o.pattern, "pattern", "", "start from a preset instead of a soup")
	fs.StringVar(&o.load, "load", "", "start from a .json state or .rle pattern")
	fs.IntVar(&o.gens, "gens", 100, "generations to advance; the survey's cap per soup")
	fs.StringVar(&o.out, "out", "", "write the final grid here (.json or .rle)")
	fs.IntVar(&o.soups, "soups", 0, "run a survey of this many random soups instead")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "soups simulated in parallel")
	fs.IntVar(&o.window, "window", 30, "generations the population must hold steady to count as settled")
	fs.IntVar(&o.threshold, "threshold", 0, "population drift tolerated within the window")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn, error or fatal")
	fs.StringVar(&o.logFormat, "log-format", "cli", "cli, json or discard")
}

func main() {
	var opts options
	opts.bind(flag.CommandLine)
	flag.Parse()

	if err := logging.Setup(logging.Options{Level: opts.logLevel, Format: opts.logFormat}); err != nil {
		log.WithError(err).Fatal("logging")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	if opts.soups > 0 {
		err = runSurvey(ctx, opts, os.Stdout)
	} else {
		err = runSingle(opts, time.Now)
	}
	if err != nil {
		log.WithError(err).Fatal("life-run")
	}
}

func runSurvey(ctx context.Context, opts options, out io.Writer) error {
	cfg := surveyConfig{
		width:     opts.width,
		height:    opts.height,
		density:   opts.density,
		baseSeed:  opts.seed,
		soups:     opts.soups,
		workers:   opts.workers,
		maxGens:   opts.gens,
		window:    opts.window,
		threshold: opts.threshold,
	}
	if cfg.baseSeed == 0 {
		cfg.baseSeed = time.Now().UnixNano()
	}
	log.WithFields(log.Fields{
		"soups":   cfg.soups,
		"workers": cfg.workers,
		"size":    fmt.Sprintf("%dx%d", cfg.width, cfg.height),
		"gens":    cfg.maxGens,
	}).Info("survey started")

	start := time.Now()
	results, err := survey(ctx, cfg)
	if err != nil {
		return err
	}
	settled := 0
	for _, r := range results {
		if r.settled {
			settled++
		}
		fmt.Fprintln(out, r)
	}
	log.WithFields(log.Fields{
		"settled":  settled,
		"active":   len(results) - settled,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Info("survey finished")
	return nil
}

func initialGrid(opts options, now func() time.Time) (*life.Grid, int, error) {
	switch {
	case opts.load != "":
		loaded, err := savestate.LoadFile(opts.load)
		if err != nil {
			return nil, 0, err
		}
		if loaded.Pattern != nil {
			g, err := loaded.Pattern.Grid()
			return g, 0, err
		}
		g, err := loaded.State.Grid()
		return g, loaded.State.Generation, err
	case opts.pattern != "":
		p, ok := patterns.Lookup(opts.pattern)
		if !ok {
			return nil, 0, fmt.Errorf("unknown pattern %q", opts.pattern)
		}
		g := life.NewWithConfig(life.Config{Width: opts.width, Height: opts.height, Density: opts.density})
		x, y := p.Offset(g.Width(), g.Height())
		g.LoadPattern(p.Rows, x, y)
		return g, 0, nil
	}
	seed := opts.seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	g := life.NewWithConfig(life.Config{Width: opts.width, Height: opts.height, Density: opts.density})
	g.RandomizeSeeded(opts.density, seed)
	log.WithField("seed", seed).Debug("random soup")
	return g, 0, nil
}

func runSingle(opts options, now func() time.Time) error {
	g, generation, err := initialGrid(opts, now)
	if err != nil {
		return err
	}
	hist := stats.New(opts.gens + 1)
	hist.Add(g.Population())
	for i := 0; i < opts.gens; i++ {
		g.NextGeneration()
		hist.Add(g.Population())
	}
	generation += opts.gens

	fields := log.Fields{"generation": generation}
	if v, ok := hist.Current(); ok {
		fields["population"] = v
	}
	if v, ok := hist.Max(); ok {
		fields["max"] = v
	}
	if v, ok := hist.Min(); ok {
		fields["min"] = v
	}
	if v, ok := hist.Average(); ok {
		fields["average"] = fmt.Sprintf("%.2f", v)
	}
	log.WithFields(fields).Info("run finished")

	if opts.out == "" {
		return nil
	}
	settings := savestate.DefaultSettings()
	settings.Density = g.Density()
	format, err := savestate.SaveFile(opts.out, g, generation, settings)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"path": opts.out, "format": format.String()}).Info("saved")
	return nil
}
