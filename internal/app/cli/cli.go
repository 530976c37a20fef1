//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"

	"folio/internal/app/errors"
	"folio/internal/app/generator"
	"folio/internal/app/ui/components"
	"folio/internal/app/ui/navigation"
	"folio/internal/app/ui/sections"
	"folio/internal/app/ui/wire"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	args      []string
	cfg       *config.Config
	ui        wire.UI
	nav       navigation.Navigator
	renderer  *sections.Renderer
	generator generator.Generator
	out       io.Writer
	errOut    io.Writer
	width     func() int
	now       func() time.Time
	log       logger.Logger
}

// NewCLI creates a new cli instance reading the process arguments
func NewCLI(
	cfg *config.Config,
	ui wire.UI,
	nav navigation.Navigator,
	renderer *sections.Renderer,
	gen generator.Generator,
	log logger.Logger,
) CLI {
	return &cli{
		args:      os.Args[1:],
		cfg:       cfg,
		ui:        ui,
		nav:       nav,
		renderer:  renderer,
		generator: gen,
		out:       os.Stdout,
		errOut:    os.Stderr,
		width:     terminalWidth,
		now:       time.Now,
		log:       log.WithComponent("CLI"),
	}
}

// Execute parses the arguments, runs the command and returns the exit code
func (c *cli) Execute() (int, error) {
	opts, err := Parse(c.args)
	if err != nil {
		return c.handleUnknown(err)
	}

	c.log.Debug().Msgf("Running command '%s'", opts.Type)

	switch opts.Type {
	case CommandHelp:
		err = c.handleHelp()
	case CommandVersion:
		err = c.handleVersion()
	case CommandInit:
		err = c.handleInit(opts)
	case CommandRender:
		err = c.handleRender(opts.View)
	default:
		if opts.NoUI {
			err = c.handleRender(opts.View)
		} else {
			err = c.handleRun(opts.View)
		}
	}

	if err != nil {
		c.log.Error().Err(err).Msgf("Command '%s' failed", opts.Type)
		fmt.Fprintln(c.errOut, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// handleRun starts the TUI on the requested view; pending image checks are cancelled once it exits
func (c *cli) handleRun(name string) error {
	if err := c.nav.SwitchTo(c.resolveView(name)); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	program, err := c.ui(ctx)
	if err != nil {
		return err
	}

	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// handleRender prints one section followed by the footer
func (c *cli) handleRender(name string) error {
	width := components.ContentWidth(c.width())
	view := c.resolveView(name)

	c.log.Debug().Msgf("Rendering %s at width %d", view, width)

	_, err := fmt.Fprintf(c.out, "%s\n\n%s\n", c.renderer.Render(view, width), c.renderer.Footer(width, c.now().Year()))

	return err
}

// handleInit writes the config template
func (c *cli) handleInit(opts *Options) error {
	if err := c.generator.Generate(generator.DefaultOptions(), opts.Force, opts.DryRun); err != nil {
		return err
	}

	if !opts.DryRun {
		fmt.Fprintf(c.out, "%s %s\n", commandName.Render("Generated"), config.FileName)
	}

	return nil
}

// handleHelp displays help information
func (c *cli) handleHelp() error {
	c.log.Debug().Msg("Displaying help information")
	_, err := fmt.Fprint(c.out, RenderUsage())

	return err
}

// handleVersion displays version information
func (c *cli) handleVersion() error {
	c.log.Debug().Msg("Displaying version information")
	_, err := fmt.Fprintf(c.out, "%s\n\n", RenderTitle())

	return err
}

// handleUnknown reports arguments cobra could not parse
func (c *cli) handleUnknown(err error) (int, error) {
	c.log.Debug().Err(err).Msg("Unknown command")

	fmt.Fprintln(c.errOut, RenderError(err))
	fmt.Fprintf(c.errOut, "Use '%s' for more information.\n", commandName.Render(config.AppName+" help"))

	return 1, fmt.Errorf("%w: %w", errors.ErrUnknownCommand, err)
}

// resolveView maps a view name to a view; empty or unknown names open home
func (c *cli) resolveView(name string) navigation.View {
	if name == "" {
		return navigation.ViewHome
	}

	view, ok := navigation.ParseView(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		c.log.Warn().Msgf("Unknown view '%s', opening %s", name, navigation.ViewHome)
		return navigation.ViewHome
	}

	return view
}

// terminalWidth returns the stdout width, or the default when stdout is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return components.DefaultWidth
	}

	return width
}
