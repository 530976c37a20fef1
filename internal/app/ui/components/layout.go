package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderSectionTitle renders a centered section banner spanning width
func RenderSectionTitle(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, SectionTitleStyle.Render(title))
}

// Columns returns how many grid columns fit in width
func Columns(width int) int {
	switch {
	case width >= ThreeColumnWidth:
		return 3
	case width >= TwoColumnWidth:
		return 2
	default:
		return 1
	}
}

// CellWidth returns the width of a single grid cell for the given total width
func CellWidth(width, columns int) int {
	if columns < 1 {
		columns = 1
	}

	cell := (width - GridGap*(columns-1)) / columns
	if cell < MinImageWidth {
		cell = MinImageWidth
	}

	return cell
}

// Grid lays out count cells row by row, preserving order left to right
func Grid(width, count int, cell func(i, cellWidth int) string) string {
	if count == 0 {
		return ""
	}

	columns := Columns(width)
	cellWidth := CellWidth(width, columns)
	gap := strings.Repeat(" ", GridGap)

	rows := make([]string, 0, (count+columns-1)/columns)

	for start := 0; start < count; start += columns {
		end := min(start+columns, count)
		cells := make([]string, 0, 2*(end-start))

		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, gap)
			}

			cells = append(cells, cell(i, cellWidth))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n\n")
}

// ContentWidth clamps the terminal width to the readable content width
func ContentWidth(width int) int {
	if width <= 0 {
		width = DefaultWidth
	}

	width -= 2 * ContentPadding

	switch {
	case width > MaxContentWidth:
		return MaxContentWidth
	case width < MinContentWidth:
		return MinContentWidth
	default:
		return width
	}
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut.
// Escape sequences are kept intact, so styled input stays well formed.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	return ansi.Truncate(s, maxWidth, "…")
}
