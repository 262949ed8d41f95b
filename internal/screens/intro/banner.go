package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bizpro/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗███████╗██████╗ ██████╗  ██████╗
 ██╔══██╗██║╚══███╔╝██╔══██╗██╔══██╗██╔═══██╗
 ██████╔╝██║  ███╔╝ ██████╔╝██████╔╝██║   ██║
 ██╔══██╗██║ ███╔╝  ██╔═══╝ ██╔══██╗██║   ██║
 ██████╔╝██║███████╗██║     ██║  ██║╚██████╔╝
 ╚═════╝ ╚═╝╚══════╝╚═╝     ╚═╝  ╚═╝ ╚═════╝`

const bannerCompact = "B I Z P R O"

// RenderBanner falls back to spaced letters below 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
