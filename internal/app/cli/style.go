package cli

import (
	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
)

// Headline - High-emphasis text for section headers
var (
	headlineLarge = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2DD4BF")).MarginTop(1)
)

// Title - Medium-emphasis text for titles and subtitles
var (
	titleMedium = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EEAD4"))
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5E7EB"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB"))
)

// Label - Small text for labels, captions, and supplementary content
var (
	labelLarge = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Italic(true).MarginTop(1)
)

// Semantic styles - mapped to the typography scale
var (
	sectionHeader = headlineLarge.MarginBottom(1)
	helpText      = labelLarge

	commandName = titleMedium
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FBBF24"))
	errorLabel  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F87171"))

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2DD4BF"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderError renders an error line for stderr
func RenderError(err error) string {
	return errorLabel.Render("Error:") + " " + err.Error()
}
