package portfolio

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/app/ui/navigation"
)

// imageFailedMsg reports a picture element whose source could not be loaded
type imageFailedMsg struct {
	id  string
	err error
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.ready = true

		m.layout()
		m.refreshContent()

		return m, nil

	case imageFailedMsg:
		if m.renderer.Images().Fail(msg.id) {
			m.log.Warn().Err(msg.err).Msgf("Image '%s' failed, showing fallback", msg.id)
			m.refreshContent()
		}

		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys

	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.log.Warn().Msg("Force quit requested, exiting immediately")
		return m, tea.Quit

	case key.Matches(msg, keys.Quit):
		m.log.Info().Msg("Quit requested")
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		m.layout()

		return m, nil

	case key.Matches(msg, keys.Home):
		return m.switchTo(navigation.ViewHome)

	case key.Matches(msg, keys.About):
		return m.switchTo(navigation.ViewAbout)

	case key.Matches(msg, keys.Skills):
		return m.switchTo(navigation.ViewSkills)

	case key.Matches(msg, keys.Projects):
		return m.switchTo(navigation.ViewProjects)

	case key.Matches(msg, keys.Contact):
		return m.switchTo(navigation.ViewContact)

	case key.Matches(msg, keys.Next):
		m.nav.Next()
		return m.showCurrent()

	case key.Matches(msg, keys.Prev):
		m.nav.Prev()
		return m.showCurrent()

	case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
		return m.scroll(msg)
	}

	switch msg.String() {
	case "pgup", "pgdown", "home", "end":
		return m.scroll(msg)
	}

	return m, nil
}

// handleMouse switches views on a click in the nav bar and scrolls on the wheel
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
		if view, ok := m.viewAt(msg.X); ok {
			return m.switchTo(view)
		}

		return m, nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		return m.scroll(msg)
	}

	return m, nil
}

// scroll hands msg to the viewport
func (m Model) scroll(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.ui.viewport, cmd = m.ui.viewport.Update(msg)

	return m, cmd
}

// switchTo selects view and shows it from the top
func (m Model) switchTo(view navigation.View) (tea.Model, tea.Cmd) {
	if err := m.nav.SwitchTo(view); err != nil {
		m.log.Warn().Err(err).Msgf("Failed to switch to %s", view)
	}

	return m.showCurrent()
}

// showCurrent renders the selected view and scrolls back to its top
func (m Model) showCurrent() (tea.Model, tea.Cmd) {
	m.refreshContent()
	m.ui.viewport.GotoTop()

	return m, nil
}
