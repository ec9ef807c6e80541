//go:build ebiten

package main

import (
	"flag"

	"github.com/apex/log"

	"game-of-life/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	closer, err := cfg.SetupLogging("")
	if err != nil {
		log.WithError(err).Fatal("logging")
	}
	defer closer.Close()

	sess, err := cfg.NewSession(log.Log)
	if err != nil {
		log.WithError(err).Fatal("start-up")
	}
	log.WithFields(log.Fields{
		"width":  sess.Grid().Width(),
		"height": sess.Grid().Height(),
		"speed":  sess.Speed(),
	}).Info("starting")

	if err := app.Run(app.NewController(sess, cfg, log.Log), cfg.TPS); err != nil {
		log.WithError(err).Fatal("run")
	}
}
