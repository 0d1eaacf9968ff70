package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"survivor/pkg/client"
	"survivor/pkg/shared/config"
	"survivor/pkg/shared/logging"
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

	game, err := client.NewGame(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to start game")
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("Game loop exited")
	}
}
