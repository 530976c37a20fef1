package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"

	"folio/internal/app/cli"
	"folio/internal/config/logger"
)

// App represents the main application container
type App struct {
	cli  cli.CLI
	sink logger.Sink
	log  logger.Logger
	done chan struct{}
}

// NewApp creates a new application instance with its dependencies
func NewApp(cli cli.CLI, sink logger.Sink, log logger.Logger) *App {
	return &App{
		cli:  cli,
		sink: sink,
		log:  log,
		done: make(chan struct{}),
	}
}

// Run executes the application
func (a *App) Run() {
	exitCode := a.execute()
	close(a.done)

	os.Exit(exitCode)
}

// execute runs the CLI, closes the log sink and returns exit code - extracted for testing
func (a *App) execute() int {
	exitCode, err := a.cli.Execute()
	if err != nil {
		a.log.Debug().Err(err).Msgf("Exiting with code %d", exitCode)
	}

	if err := a.sink.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to close log file: %v\n", err)
	}

	return exitCode
}

// Register registers the application's lifecycle hooks with fx
func Register(lifecycle fx.Lifecycle, app *App) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-app.done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
