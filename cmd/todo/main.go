package main

import (
	"errors"
	"fmt"
	"os"

	"todolist/internal/config"
	"todolist/internal/logging"
	"todolist/internal/ui"
)

func main() {
	configPath := config.ResolveConfigPath()
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Printf("failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	if err := ui.Run(cfg, logger.Logger, firstLaunch); err != nil {
		logger.Error("program failed", "err", err)
		fmt.Printf("error running program: %v\n", err)
		os.Exit(1)
	}
}
