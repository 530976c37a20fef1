package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/config"
)

// usageLine is one command with its description
type usageLine struct {
	command string
	desc    string
}

var (
	usageLines = []usageLine{
		{command: config.AppName, desc: "Open the portfolio"},
		{command: config.AppName + " --view=<VIEW>", desc: "Open the portfolio on a section"},
		{command: config.AppName + " render [VIEW]", desc: "Print a section to stdout"},
		{command: config.AppName + " --no-ui --view=<VIEW>", desc: "Same as render"},
		{command: config.AppName + " init [--force] [--dry-run]", desc: "Generate " + config.FileName},
		{command: config.AppName + " version", desc: "Show version"},
		{command: config.AppName + " help", desc: "Show help"},
	}

	exampleLines = []usageLine{
		{command: config.AppName + " --view=projects", desc: "Start on the projects"},
		{command: config.AppName + " render skills | less -R", desc: "Page through the skills"},
		{command: config.AppName + " init --dry-run", desc: "Preview the config template"},
	}
)

// RenderUsage renders the help screen
func RenderUsage() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		renderLines(usageLines, commandName),
		sectionHeader.Render("Examples:"),
		renderLines(exampleLines, exampleCode),
		helpText.Render("Views: home, about, skills, projects, contact"),
	) + "\n"
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l.command))
	}

	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		pad := width - lipgloss.Width(l.command) + 4
		rendered = append(rendered, bodyMedium.Render(fmt.Sprintf("  %s%*s%s", style.Render(l.command), pad, "", l.desc)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
