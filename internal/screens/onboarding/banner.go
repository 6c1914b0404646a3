package onboarding

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pteprep/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ████████╗███████╗
 ██╔══██╗╚══██╔══╝██╔════╝
 ██████╔╝   ██║   █████╗
 ██╔═══╝    ██║   ██╔══╝
 ██║        ██║   ███████╗
 ╚═╝        ╚═╝   ╚══════╝  P R E P`

const bannerCompact = "P T E  P R E P"

// bannerMinWidth is the narrowest card that fits bannerArt.
const bannerMinWidth = 40

// renderBanner shows the large banner on the first step only, and the
// compact one everywhere else or when the card is too narrow.
func renderBanner(width int, first bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	if !first || width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
