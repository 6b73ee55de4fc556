// Package main is the entry point for the shapeview demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/shapeview/internal/config"
	"github.com/Faultbox/shapeview/internal/demo"
	"github.com/Faultbox/shapeview/internal/logger"
)

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitStartup = 2
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Parse CLI flags first
	flags, err := config.ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	// Load configuration
	cfg, configPath, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return exitError
	}

	if flags.WriteConfig != "" {
		if err := cfg.SaveTo(flags.WriteConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return exitError
		}
		fmt.Printf("config written to %s\n", flags.WriteConfig)
		return exitOK
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitError
	}
	defer logger.Sync()

	logger.Info("=== shapeview ===", zap.String("config", configPath))
	logger.Sugar.Debugf("Config: %+v", cfg)

	// Create and run the demo
	app, err := demo.New(cfg)
	if err != nil {
		logger.Error("failed to start demo", zap.Error(err))
		var startupErr *demo.StartupError
		if errors.As(err, &startupErr) {
			return exitStartup
		}
		return exitError
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("demo error", zap.Error(err))
		return exitError
	}

	logger.Info("demo closed normally")
	return exitOK
}
