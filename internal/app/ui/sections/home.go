package sections

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
)

// Call-to-action labels with the key that performs them
const (
	viewWorkLabel  = "View My Work"
	viewWorkKey    = "p"
	contactMeLabel = "Contact Me"
	contactMeKey   = "c"
)

// Home renders the landing hero card
func (r *Renderer) Home(width int) string {
	profile := r.content.Profile

	greeting := components.BrandStyle.Render("Hi, I'm ") + components.CardTitleStyle.Render(profile.Name)
	headline := components.AccentStyle.Render(profile.Headline + ".")

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Center,
		button(viewWorkLabel, viewWorkKey, components.ButtonStyle),
		"  ",
		button(contactMeLabel, contactMeKey, components.SecondaryButtonStyle),
	)

	inner := width - components.HeroStyle.GetHorizontalFrameSize()
	body := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	hero := components.HeroStyle.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		body.Render(greeting),
		"",
		body.Render(headline),
		"",
		body.Render(buttons),
	))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, hero)
}

func button(label, key string, style lipgloss.Style) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		style.Render(label),
		components.MutedStyle.Render("["+key+"]"),
	)
}
