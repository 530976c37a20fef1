package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
)

// Contact renders direct contact details and external profiles
func (r *Renderer) Contact(width int) string {
	contact := r.content.Contact
	inner := width - components.CardStyle.GetHorizontalFrameSize()
	center := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center)

	profiles := make([]string, 0, len(contact.Profiles))
	for _, p := range contact.Profiles {
		profiles = append(profiles, components.Hyperlink(p.Label, p.URL, components.LinkStyle))
	}

	card := lipgloss.JoinVertical(
		lipgloss.Center,
		center.Render(components.BodyStyle.Render("Feel free to reach out directly:")),
		"",
		center.Render(components.BodyStyle.Render("📧 Email: ")+components.Hyperlink(contact.Email, contact.MailtoURI(), components.LinkStyle)),
		center.Render(components.BodyStyle.Render("📞 Phone: ")+components.Hyperlink(contact.Phone, contact.PhoneURI, components.LinkStyle)),
		"",
		center.Render(components.MutedStyle.Render("You can also find me on:")),
		center.Render(strings.Join(profiles, "   ")),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.RenderSectionTitle("Contact Me", width),
		components.CardStyle.Width(width-2).Render(card),
	)
}
