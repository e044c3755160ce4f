package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"chunk-life/internal/app"
)

func main() {
	log.SetPrefix("[LIFE] ")
	if err := run(); err != nil {
		// Reached only after the terminal has been restored.
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}
	logger, closer, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.RunTerminal(ctx, cfg, logger)
}
