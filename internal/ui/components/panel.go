package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/ui/theme"
)

// ContentWidth is the column width screens lay their panels out at.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 72)
}

// Panel wraps content in a rounded card cw columns wide.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// Center places content in the middle of the content area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
