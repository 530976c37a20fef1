package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
	"folio/internal/content"
)

// Link labels on every project card
const (
	liveDemoLabel = "Live Demo"
	repoLabel     = "GitHub"
)

// Projects renders one card per project in source order
func (r *Renderer) Projects(width int) string {
	projects := r.content.Projects

	grid := components.Grid(width, len(projects), func(i, cellWidth int) string {
		return r.renderProject(i, projects[i], cellWidth)
	})

	return lipgloss.JoinVertical(lipgloss.Left, components.RenderSectionTitle("My Projects", width), grid)
}

func (r *Renderer) renderProject(i int, project content.Project, width int) string {
	inner := width - components.CardStyle.GetHorizontalFrameSize()

	card := lipgloss.JoinVertical(
		lipgloss.Left,
		r.image(ProjectImageID(i)).Render(inner, components.CardImageHeight),
		"",
		components.CardTitleStyle.Width(inner).Render(project.Title),
		"",
		components.BodyStyle.Width(inner).Render(project.Description),
		"",
		renderBadges(project.Tags, inner),
		"",
		components.Hyperlink(liveDemoLabel, project.LiveLink, components.ButtonStyle)+
			"  "+
			components.Hyperlink(repoLabel, project.RepoLink, components.SecondaryButtonStyle),
	)

	return components.CardStyle.Width(width - 2).Render(card)
}

// renderBadges renders one badge per tag, flowing onto new lines when width runs out
func renderBadges(tags []string, width int) string {
	var (
		lines   []string
		current []string
		used    int
	)

	for _, tag := range tags {
		badge := components.BadgeStyle.Render(tag)
		badgeWidth := lipgloss.Width(badge)

		if len(current) > 0 && used+1+badgeWidth > width {
			lines = append(lines, strings.Join(current, " "))
			current, used = nil, 0
		}

		if len(current) > 0 {
			used++
		}

		current = append(current, badge)
		used += badgeWidth
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}

	return strings.Join(lines, "\n")
}
