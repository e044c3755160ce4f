//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"chunk-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("[LIFE] ")

	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	// Unlike the terminal front end, the window leaves stderr free.
	logger := log.Default()
	if cfg.LogFile != "" {
		l, closer, err := cfg.OpenLog()
		if err != nil {
			log.Fatal(err)
		}
		defer closer.Close()
		logger = l
	}

	u, err := app.NewUniverse(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}
	game := app.NewGame(u, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("chunk-life - " + cfg.Pattern)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
