package wire

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"folio/internal/app/ui/navigation"
	"folio/internal/app/ui/portfolio"
	"folio/internal/app/ui/sections"
	"folio/internal/app/worker"
	"folio/internal/config"
	"folio/internal/config/logger"
	"folio/internal/content"
)

// UI creates a Bubble Tea program for the TUI
type UI func(ctx context.Context) (*tea.Program, error)

// Module aggregates all UI modules and provides the UI factory
var Module = fx.Options(
	content.Module,
	navigation.Module,
	sections.Module,
	worker.Module,
	fx.Provide(NewUI),
)

// UIParams contains dependencies for creating the UI factory
type UIParams struct {
	fx.In

	Config    *config.Config
	Navigator navigation.Navigator
	Renderer  *sections.Renderer
	Pool      worker.Pool
	Logger    logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(params UIParams) UI {
	return func(ctx context.Context) (*tea.Program, error) {
		model := portfolio.NewModel(
			ctx,
			params.Navigator,
			params.Renderer,
			portfolio.NewProber(params.Config, params.Pool, params.Logger),
			params.Logger,
		)

		p := tea.NewProgram(model, programOptions(ctx, params.Config)...)

		params.Logger.Debug().Msg("TUI: Program created via factory")

		return p, nil
	}
}

// programOptions maps the ui settings to program options
func programOptions(ctx context.Context, cfg *config.Config) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}

	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	return opts
}
