package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// SectionTitleStyle for the banner heading each section
	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgPrimary).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(FgBorder).
				Padding(0, 2).
				MarginBottom(1)

	// CardStyle for bordered content cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	// HeroStyle for the home card
	HeroStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(1, 4).
			Align(lipgloss.Center)

	// CardTitleStyle for card headings
	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgText)

	// CategoryTitleStyle for skill category headings
	CategoryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(FgText).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(BgBadge)

	// BodyStyle for paragraphs
	BodyStyle = lipgloss.NewStyle().
			Foreground(FgBody)

	// MutedStyle for captions
	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// QuoteStyle for the closing quote
	QuoteStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Italic(true)

	// AccentStyle for highlighted inline text
	AccentStyle = lipgloss.NewStyle().
			Foreground(FgAccent)

	// BulletStyle for list bullets
	BulletStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)

	// LinkStyle for hyperlink labels
	LinkStyle = lipgloss.NewStyle().
			Foreground(FgPrimary).
			Underline(true)

	// BadgeStyle for project tags
	BadgeStyle = lipgloss.NewStyle().
			Foreground(BadgeText).
			Background(BgBadge).
			Bold(true).
			Padding(0, 1)

	// ButtonStyle for the primary call to action
	ButtonStyle = lipgloss.NewStyle().
			Foreground(FgText).
			Background(BgButton).
			Bold(true).
			Padding(0, 3)

	// SecondaryButtonStyle for the secondary call to action
	SecondaryButtonStyle = ButtonStyle.
				Background(BgButtonAlt)

	// ImageStyle for picture placeholders
	ImageStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Foreground(FgMuted).
			Align(lipgloss.Center, lipgloss.Center)

	// BrandStyle for the name in the nav bar
	BrandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// NavItemStyle for inactive nav labels
	NavItemStyle = lipgloss.NewStyle().
			Foreground(FgBody).
			Padding(0, 1)

	// NavActiveStyle for the current nav label
	NavActiveStyle = NavItemStyle.
			Foreground(FgText).
			Background(BgActive).
			Bold(true)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// FooterStyle for the copyright block
	FooterStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Padding(0, 1)
)
