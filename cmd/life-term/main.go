package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/gdamore/tcell/v2"

	"game-of-life/internal/app"
	"game-of-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	// The screen owns stderr, so logs go to -log-file or nowhere.
	closer, err := cfg.SetupLogging("discard")
	if err != nil {
		log.WithError(err).Fatal("logging")
	}
	defer closer.Close()

	sess, err := cfg.NewSession(log.Log)
	if err != nil {
		log.WithError(err).Fatal("start-up")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("creating screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("initializing screen")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(screen, app.NewController(sess, cfg, log.Log), log.Log)
	if err := t.Run(ctx, cfg.TPS); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("terminal")
	}
}
