package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"bot-atelier/internal/config"
	"bot-atelier/internal/game"
	"bot-atelier/internal/logger"
	"bot-atelier/internal/save"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to the config file")
	savePath := flag.String("save", "save.yaml", "path to the save file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	rec, err := save.Load(*savePath)
	if err != nil {
		log.Error("save file unreadable", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(cfg, log, rec, *savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		log.Error("session not saved", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
