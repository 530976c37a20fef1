package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"folio/internal/app"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp contains the main application logic
func runApp() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOutput, err := logger.Output(cfg, hasNoUIFlag(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := createApp(cfg, logOutput)
	application.Run()
}

// hasNoUIFlag checks if the command prints to the terminal instead of starting the TUI
func hasNoUIFlag(args []string) bool {
	for i, arg := range args {
		if arg == "--no-ui" {
			return true
		}

		if i == 0 && (arg == "render" || arg == "r") {
			return true
		}
	}

	return false
}

// loadConfig wraps config.Load for easier testing
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// createApp creates the FX application with the given config
func createApp(cfg *config.Config, logOutput io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, logOutput)),
		fx.Supply(cfg, logger.Sink{Writer: logOutput}),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config, w io.Writer) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: w}
		}

		return fxevent.NopLogger
	}
}
