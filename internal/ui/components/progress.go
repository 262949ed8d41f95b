package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/ui/theme"
)

// ProgressBar is a labelled horizontal bar for a 0-100 value.
type ProgressBar struct {
	Label string
	// Percent is a fraction in [0, 1].
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View fits label, bar and percentage into Width columns. The bar never
// shrinks below four cells.
func (p ProgressBar) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(p.Percent*100+0.5))
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-len(suffix), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	b.WriteString(lipgloss.NewStyle().Foreground(p.color()).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))
	if suffix != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix))
	}
	return b.String()
}

// color grades the fill: weak values in rose, strong ones in green.
func (p ProgressBar) color() color.Color {
	switch {
	case p.Percent >= 0.7:
		return theme.Success
	case p.Percent >= 0.5:
		return theme.Secondary
	default:
		return theme.Error
	}
}
