package sections

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"folio/internal/app/ui/components"
)

// About renders the biography with the profile picture
func (r *Renderer) About(width int) string {
	profile := r.content.Profile
	photo := r.image(AboutPhotoID).Render(components.ProfileImageWidth, components.ProfileImageHeight)

	textWidth := width
	sideBySide := width >= components.TwoColumnWidth
	if sideBySide {
		textWidth = width - components.ProfileImageWidth - components.GridGap*2
	}

	quote := components.QuoteStyle.
		Width(textWidth).
		Render("“" + profile.Quote + "” — " + profile.QuoteAuthor)

	text := lipgloss.JoinVertical(lipgloss.Left, r.markdownParagraphs(profile.Bio, textWidth), quote)

	var body string
	if sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, photo, strings.Repeat(" ", components.GridGap*2), text)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, lipgloss.PlaceHorizontal(width, lipgloss.Center, photo), "", text)
	}

	return lipgloss.JoinVertical(lipgloss.Left, components.RenderSectionTitle("About Me", width), body)
}

// markdownParagraphs renders the bio through glamour, falling back to plain text if glamour fails
func (r *Renderer) markdownParagraphs(paragraphs []string, width int) string {
	source := strings.Join(paragraphs, "\n\n")

	md, err := r.markdownRenderer(width)
	if err == nil {
		var out string

		out, err = md.Render(source)
		if err == nil {
			return strings.TrimRight(out, "\n")
		}
	}

	r.log.Warn().Err(err).Msg("Markdown rendering failed, using plain text")

	plain := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		plain = append(plain, components.BodyStyle.Width(width).Render(strings.ReplaceAll(p, "**", "")))
	}

	return strings.Join(plain, "\n\n")
}

// markdownRenderer returns a glamour renderer for width, rebuilding it only when width changes
func (r *Renderer) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if r.markdown.renderer != nil && r.markdown.width == width {
		return r.markdown.renderer, nil
	}

	md, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		return nil, err
	}

	r.markdown.width = width
	r.markdown.renderer = md

	return md, nil
}
