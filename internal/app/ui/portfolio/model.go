package portfolio

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
	"folio/internal/app/ui/navigation"
	"folio/internal/app/ui/sections"
	"folio/internal/config/logger"
)

// Model represents the Bubble Tea model for the portfolio UI
type Model struct {
	ctx      context.Context
	nav      navigation.Navigator
	renderer *sections.Renderer
	prober   *Prober
	now      func() time.Time

	ui struct {
		height   int
		width    int
		ready    bool
		keys     components.KeyMap
		help     help.Model
		viewport viewport.Model
	}

	log logger.Logger
}

// NewModel creates a new portfolio UI model; a nil prober leaves every image as declared
func NewModel(
	ctx context.Context,
	nav navigation.Navigator,
	renderer *sections.Renderer,
	prober *Prober,
	log logger.Logger,
) Model {
	log = log.WithComponent("UI")

	m := Model{
		ctx:      ctx,
		nav:      nav,
		renderer: renderer,
		prober:   prober,
		now:      time.Now,
		log:      log,
	}

	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.viewport = viewport.New(0, 0)

	log.Debug().Msg("Created model")

	return m
}

// Init starts the image probes when probing is enabled
func (m Model) Init() tea.Cmd {
	if m.prober == nil {
		return nil
	}

	images := m.renderer.Images()
	ids := images.IDs()
	cmds := make([]tea.Cmd, 0, len(ids))

	for _, id := range ids {
		img, ok := images.Get(id)
		if !ok || img.Src == "" {
			continue
		}

		cmds = append(cmds, probeCmd(m.ctx, m.prober, id, img.Src))
	}

	return tea.Batch(cmds...)
}

// contentWidth returns the width the sections are rendered at
func (m Model) contentWidth() int {
	return components.ContentWidth(m.ui.width)
}

// layout sizes the viewport to the room left between the nav bar and the footer
func (m *Model) layout() {
	helpHeight := lipgloss.Height(m.renderHelp())
	height := m.ui.height - components.NavHeight - (components.FooterHeight - 1) - helpHeight

	m.ui.viewport.Width = m.ui.width
	m.ui.viewport.Height = max(height, 1)
}

// refreshContent renders the current view into the viewport
func (m *Model) refreshContent() {
	m.ui.viewport.SetContent(m.renderContent())
}
