package config

import "time"

// app constants
const (
	AppName        = "folio"
	AppDescription = "personal portfolio in your terminal"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	FileName  = "folio.yaml"
	EnvPrefix = "FOLIO"

	Version = "1.2.0"
)

// images constants
const (
	DefaultImageTimeout = 3 * time.Second
	DefaultImageWorkers = 4
)
