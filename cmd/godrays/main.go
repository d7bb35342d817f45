// Package main is the entry point for the godrays renderer.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/godrays/internal/config"
	"github.com/Faultbox/godrays/internal/game"
	"github.com/Faultbox/godrays/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fatal("Config error", err)
		return 1
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fatal("Config error", err)
			return 1
		}
		fmt.Printf("wrote %s\n", path)
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fatal("Logger error", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== godrays ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		fatal("Startup error", err)
		return 1
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		fatal("Render error", err)
		return 1
	}

	logger.Info("closed normally")
	return 0
}

// fatal reports a setup failure on stderr and in a native message box.
func fatal(title string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", title, err)
	dialog.Message("%v", err).Title(game.Title + ": " + title).Error()
}
