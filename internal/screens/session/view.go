package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/ui/components"
	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

func questionCounter(current, total int) string {
	return fmt.Sprintf("Q %d/%d", current, total)
}

func (s *SessionScreen) View(width, height int) string {
	if s.finishing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Calculating your result...")
	}

	var b strings.Builder

	// Progress line.
	bar := components.NewProgressBar(
		questionCounter(min(s.attempt.CurrentIndex+1, s.attempt.Total()), s.attempt.Total()),
		s.attempt.Progress(), true, min(width-4, 70))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Dimension tag for the current question.
	if q, ok := s.attempt.Current(); ok {
		if d, ok := s.attempt.Quiz.Dimension(q.Dimension); ok {
			tag := strings.TrimSpace(d.Emoji + " " + d.Name)
			if tag != "" {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Secondary).Render(tag)))
				b.WriteString("\n\n")
			}
		}
	}

	block := lipgloss.NewStyle().Width(min(width-8, 70)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Warning.Render(s.errMsg)))
	}

	return b.String()
}
