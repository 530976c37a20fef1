package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Hyperlink renders label as an OSC 8 terminal hyperlink to url; terminals open it in the browser
func Hyperlink(label, url string, style lipgloss.Style) string {
	return termenv.Hyperlink(url, style.Render(label))
}
