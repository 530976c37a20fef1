package config

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"folio/internal/app/errors"
)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	logFormats = []string{"console", "json"}
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
		File   string `yaml:"file" mapstructure:"file"`
	} `yaml:"logging" mapstructure:"logging"`
	UI struct {
		Mouse     bool `yaml:"mouse" mapstructure:"mouse"`
		AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`
	} `yaml:"ui" mapstructure:"ui"`
	Images struct {
		Probe   bool          `yaml:"probe" mapstructure:"probe"`
		Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
		Workers int           `yaml:"workers" mapstructure:"workers"`
	} `yaml:"images" mapstructure:"images"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.UI.Mouse = true
	cfg.UI.AltScreen = true

	cfg.Images.Probe = false
	cfg.Images.Timeout = DefaultImageTimeout
	cfg.Images.Workers = DefaultImageWorkers

	return cfg
}

// Load loads the configuration from folio.yaml in the working directory
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given path, falling back to defaults when it is absent
func LoadFile(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()
	v := newViper(cfg)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper creates a viper instance seeded with defaults so env overrides apply to every key
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("ui.mouse", cfg.UI.Mouse)
	v.SetDefault("ui.alt_screen", cfg.UI.AltScreen)
	v.SetDefault("images.probe", cfg.Images.Probe)
	v.SetDefault("images.timeout", cfg.Images.Timeout)
	v.SetDefault("images.workers", cfg.Images.Workers)

	return v
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateImages(); err != nil {
		return err
	}

	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	if !slices.Contains(logLevels, c.Logging.Level) {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidLogLevel, c.Logging.Level)
	}

	if !slices.Contains(logFormats, c.Logging.Format) {
		return fmt.Errorf("%w: '%s' (must be 'console' or 'json')", errors.ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// validateImages validates image probe settings
func (c *Config) validateImages() error {
	if c.Images.Timeout <= 0 {
		return errors.ErrInvalidImageTimeout
	}

	if c.Images.Workers <= 0 {
		return errors.ErrInvalidImageWorkers
	}

	return nil
}

// normalize trims whitespace and lowercases enumerated values
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.File = strings.TrimSpace(c.Logging.File)
}
