package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#2DD4BF") // Teal - headings, accents, focus
	FgAccent  = lipgloss.Color("#5EEAD4") // Light teal - headline, hovered links
	FgText    = lipgloss.Color("#F3F4F6") // Near white - body emphasis
	FgBody    = lipgloss.Color("#D1D5DB") // Light gray - body text
	FgMuted   = lipgloss.Color("#9CA3AF") // Gray - captions, footer
	FgBorder  = lipgloss.Color("#374151") // Dark gray - card borders

	// Background colors
	BgBadge     = lipgloss.Color("#0F766E") // Dark teal - tag badges
	BgButton    = lipgloss.Color("#0D9488") // Teal - primary button
	BgButtonAlt = lipgloss.Color("#374151") // Gray - secondary button
	BgNav       = lipgloss.Color("#1F2937") // Slate - nav bar
	BgActive    = lipgloss.Color("#0D9488") // Teal - active nav item
)

// BadgeText is the foreground used on badges
var BadgeText = lipgloss.AdaptiveColor{Light: "#F0FDFA", Dark: "#CCFBF1"}
