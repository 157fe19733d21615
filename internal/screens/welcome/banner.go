package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/keedam/preloadquiz/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝
 ██║   ██║██║   ██║██║  ███╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝
 ╚██████╔╝╚██████╔╝██║███████╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "P R E L O A D   Q U I Z"

// RenderBanner returns the banner styled in the primary color, falling
// back to plain letters below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
