// Package main is the entry point for the positional light demo.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/poslight/internal/app"
	"github.com/Faultbox/poslight/internal/config"
	"github.com/Faultbox/poslight/internal/engine/shader"
	"github.com/Faultbox/poslight/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Save config error: %v\n", err)
			return 1
		}
		fmt.Println("config written to", config.ConfigDir())
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("=== Position light example ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		// A broken shader is reported but is not a process failure.
		var se *shader.Error
		if errors.As(err, &se) {
			logger.Error("shader failed", zap.String("stage", se.Stage), zap.String("path", se.Path),
				zap.String("log", se.Log), zap.Error(se.Err))
			return 0
		}
		logger.Error("failed to start", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("main loop error", zap.Error(err))
		return 1
	}

	logger.Info("closed normally")
	return 0
}
