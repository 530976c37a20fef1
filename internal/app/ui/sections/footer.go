package sections

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
)

// Footer renders the copyright block for the given year
func (r *Renderer) Footer(width, year int) string {
	style := components.FooterStyle.Width(width).Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.Render(fmt.Sprintf("© %d %s. All rights reserved.", year, r.content.Profile.Name)),
		style.Render(r.content.Tagline),
	)
}
