package logger

import (
	"io"
	"os"

	"go.uber.org/fx"

	"folio/internal/config"
)

// Sink is the writer the application logger writes to
type Sink struct {
	io.Writer
}

// Close closes the sink when it is a log file; standard streams and other writers are left open
func (s Sink) Close() error {
	f, ok := s.Writer.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return nil
	}

	return f.Close()
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(newFromSink),
)

func newFromSink(cfg *config.Config, sink Sink) Logger {
	return NewLoggerWithOutput(cfg, sink.Writer)
}
