package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"survivor/pkg/server"
	"survivor/pkg/shared/config"
	"survivor/pkg/shared/logging"
	"survivor/pkg/sim"
)

func main() {
	configPath := flag.String("config", "survivor.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simLog := logging.For(logger, "sim")
	world, err := sim.NewWorld(sim.Options{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
		Seed:   cfg.Seed,
		Logger: &simLog,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create world")
	}

	runner := server.NewRunner(world, server.RunnerOptions{
		TickRate: cfg.Headless.TickRate,
		MaxTicks: cfg.Headless.MaxTicks,
		Logger:   &logger,
	})
	stats := runner.Run(ctx)

	logger.Info().
		Str("run", world.ID().String()).
		Bool("game_over", stats.Over).
		Msg("Headless run done")
}
