package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// Smallest terminal the quiz renders in. Questions and the result card
// wrap comfortably at this size.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// Frame is one full screen: a header bar, the active screen's body and a
// footer of key hints.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
}

var barStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// Header renders the top bar: app name on the left, title centered, status
// on the right.
func (f Frame) Header(width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  quizmatch")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(f.Title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status + "  ")

	inner := max(width-2, 0)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return barStyle.Width(width).Render(line)
}

// Footer renders the key hints.
func (f Frame) Footer(width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return barStyle.Width(width).Render("  " + strings.Join(parts, "   "))
}

// BodyHeight returns the rows left for the body once the header and footer
// are drawn at width.
func (f Frame) BodyHeight(width, height int) int {
	return max(height-lipgloss.Height(f.Header(width))-lipgloss.Height(f.Footer(width)), 0)
}

// Render composes the frame around body, padding the body to fill the
// terminal.
func (f Frame) Render(body string, width, height int) string {
	header := f.Header(width)
	footer := f.Footer(width)
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	padded := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(body)
	return header + "\n" + padded + "\n" + footer
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf(
				"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
				MinWidth, MinHeight, width, height,
			)))
}
