package portfolio

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
	"folio/internal/app/ui/navigation"
)

// navGap separates the nav bar entries
const navGap = "  "

// navItem is one clickable entry of the nav bar
type navItem struct {
	label string
	view  navigation.View
}

// navZone is the column range a nav entry occupies on the first row
type navZone struct {
	start int
	end   int
	view  navigation.View
}

// View renders the UI
func (m Model) View() string {
	if !m.ui.ready {
		return "Initializing…"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderNav(),
		components.RenderLine(m.ui.width),
		m.ui.viewport.View(),
		components.RenderLine(m.ui.width),
		m.renderer.Footer(m.ui.width, m.now().Year()),
		m.renderHelp(),
	)
}

// navItems lists the nav bar entries; the brand leads back home
func (m Model) navItems() []navItem {
	items := []navItem{{label: m.renderer.Content().Profile.Name, view: navigation.ViewHome}}

	for _, v := range navigation.Views {
		if v == navigation.ViewHome {
			continue
		}

		items = append(items, navItem{label: v.Label(), view: v})
	}

	return items
}

// renderNavItems renders each nav entry with the current one highlighted
func (m Model) renderNavItems() []string {
	current := m.nav.CurrentView()
	items := m.navItems()
	rendered := make([]string, 0, len(items))

	for i, item := range items {
		switch {
		case i == 0:
			rendered = append(rendered, components.BrandStyle.Render(item.label))
		case item.view == current:
			rendered = append(rendered, components.NavActiveStyle.Render(item.label))
		default:
			rendered = append(rendered, components.NavItemStyle.Render(item.label))
		}
	}

	return rendered
}

// renderNav renders the nav bar row, cut with an ellipsis when it does not fit
func (m Model) renderNav() string {
	return components.Truncate(strings.Join(m.renderNavItems(), navGap), m.navWidth())
}

// navWidth is the number of columns the nav bar may use
func (m Model) navWidth() int {
	return max(m.ui.width, 1)
}

// navZones computes where each visible nav entry sits on the first row.
// Entries past the cut get no zone; the ellipsis cell is not clickable.
func (m Model) navZones() []navZone {
	items := m.navItems()
	rendered := m.renderNavItems()

	limit := lipgloss.Width(strings.Join(rendered, navGap))
	if limit > m.navWidth() {
		limit = m.navWidth() - 1
	}

	zones := make([]navZone, 0, len(items))
	x := 0

	for i, item := range items {
		start := x
		end := min(x+lipgloss.Width(rendered[i]), limit)
		x += lipgloss.Width(rendered[i]) + len(navGap)

		if start >= end {
			continue
		}

		zones = append(zones, navZone{start: start, end: end, view: item.view})
	}

	return zones
}

// viewAt returns the view whose nav entry covers column x
func (m Model) viewAt(x int) (navigation.View, bool) {
	for _, zone := range m.navZones() {
		if x >= zone.start && x < zone.end {
			return zone.view, true
		}
	}

	return navigation.ViewHome, false
}

// renderContent renders the current view centered in the terminal
func (m Model) renderContent() string {
	content := m.renderer.Render(m.nav.CurrentView(), m.contentWidth())
	return lipgloss.PlaceHorizontal(m.ui.width, lipgloss.Center, content)
}

// renderHelp renders the help text with keybindings
func (m Model) renderHelp() string {
	return components.HelpStyle.Render(m.ui.help.View(m.ui.keys))
}
