package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"

	"folio/internal/app/errors"
	"folio/internal/config"
	"folio/internal/config/logger"
)

const templatePath = "templates/folio.yaml.tmpl"

//go:embed templates/folio.yaml.tmpl
var templateFS embed.FS

// Options contains the configuration for generating folio.yaml
type Options struct {
	Path   string
	Config *config.Config
}

// DefaultOptions returns the defaults written by folio init
func DefaultOptions() Options {
	return Options{
		Path:   config.FileName,
		Config: config.DefaultConfig(),
	}
}

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

// Generator defines the interface for generating folio.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance; dry runs print to stdout
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// templateData is what the template renders
type templateData struct {
	AppName   string
	Version   string
	EnvPrefix string
	Body      string
}

// Generate creates a folio.yaml file from the template
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("%w: %s, use --force to overwrite", errors.ErrConfigExists, opts.Path)
		}
	}

	data, err := render(opts.Config)
	if err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(data)
		return err
	}

	if err := os.WriteFile(opts.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

// render marshals cfg and wraps it with the commented header
func render(cfg *config.Config) ([]byte, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.FileName).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{
		AppName:   config.AppName,
		Version:   config.Version,
		EnvPrefix: config.EnvPrefix,
		Body:      string(body),
	}); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}
