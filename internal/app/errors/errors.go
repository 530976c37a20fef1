package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidImageTimeout = errors.New("images timeout must be positive")
	ErrInvalidImageWorkers = errors.New("images workers must be positive")

	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownView    = errors.New("unknown view")

	ErrConfigExists          = errors.New("config file already exists")
	ErrFailedToOpenLogFile   = errors.New("failed to open log file")
	ErrImageUnavailable      = errors.New("image unavailable")
	ErrFailedToCreateRequest = errors.New("failed to create request")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
