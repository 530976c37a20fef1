package sections

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/app/ui/components"
	"folio/internal/content"
)

const bullet = "•"

// Skills renders one card per category with every entry in source order
func (r *Renderer) Skills(width int) string {
	categories := r.content.Skills

	grid := components.Grid(width, len(categories), func(i, cellWidth int) string {
		return renderCategory(categories[i], cellWidth)
	})

	return lipgloss.JoinVertical(lipgloss.Left, components.RenderSectionTitle("My Skills", width), grid)
}

func renderCategory(category content.SkillCategory, width int) string {
	inner := width - components.CardStyle.GetHorizontalFrameSize()

	lines := make([]string, 0, len(category.Entries)+1)
	lines = append(lines, components.CategoryTitleStyle.Width(inner).Render(category.Name))

	for _, entry := range category.Entries {
		lines = append(lines, renderEntry(entry, inner))
	}

	return components.CardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderEntry renders a plain label as text and a labeled link as a hyperlink.
// Long labels wrap under the first line instead of being cut; every wrapped line of a link points at the same URL.
func renderEntry(entry content.SkillEntry, width int) string {
	prefix := components.BulletStyle.Render(bullet) + " "
	indent := strings.Repeat(" ", lipgloss.Width(prefix))

	lines := strings.Split(ansi.Wrap(entry.Label, max(width-len(indent), 1), ""), "\n")

	for i, line := range lines {
		line = strings.TrimRight(line, " ")

		if entry.IsLink() {
			line = components.Hyperlink(line, entry.URL, components.LinkStyle)
		} else {
			line = components.BodyStyle.Render(line)
		}

		if i == 0 {
			lines[i] = prefix + line
		} else {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}
