package home

import (
	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

const bannerArt = `
 ┏━┓╻ ╻╻╺━┓┏┳┓┏━┓╺┳╸┏━╸╻ ╻
 ┃┓┃┃ ┃┃┏━┛┃┃┃┣━┫ ┃ ┃  ┣━┫
 ┗┻┛┗━┛╹┗━╸╹ ╹╹ ╹ ╹ ┗━╸╹ ╹`

const bannerCompact = "Q U I Z M A T C H"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 32 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 32 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
