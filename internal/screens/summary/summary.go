package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/session"
	"github.com/dayoumin/mbti-sub003/internal/ui/components"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// SummaryScreen displays the selected result and per-dimension levels.
type SummaryScreen struct {
	summary *session.Summary
	saveErr error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. saveErr, when non-nil, is surfaced as a
// note that the attempt was not recorded.
func New(summary *session.Summary, saveErr error) *SummaryScreen {
	return &SummaryScreen{summary: summary, saveErr: saveErr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Your Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Heading.
	heading := "Your result"
	if sum.Nickname != "" {
		heading = fmt.Sprintf("%s's result", sum.Nickname)
	}
	b.WriteString(center(theme.Subtitle.Render(heading)))
	b.WriteString("\n\n")

	// Result name.
	name := strings.TrimSpace(sum.Result.Emoji + " " + sum.Outcome.Result.Name)
	b.WriteString(center(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(name)))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(matchLine(sum.Outcome))))
	b.WriteString("\n\n")

	textWidth := min(width-8, 64)
	if sum.Result.Description != "" {
		b.WriteString(center(lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.Text).
			Render(sum.Result.Description)))
		b.WriteString("\n\n")
	}
	if len(sum.Result.Traits) > 0 {
		traits := make([]string, len(sum.Result.Traits))
		for i, t := range sum.Result.Traits {
			traits[i] = "#" + t
		}
		b.WriteString(center(lipgloss.NewStyle().
			Width(textWidth).
			Foreground(theme.Secondary).
			Render(strings.Join(traits, "  "))))
		b.WriteString("\n\n")
	}

	// Dimensions divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(textWidth, 0)))
	b.WriteString(center(theme.Hint.Render("Dimensions")))
	b.WriteString("\n")
	b.WriteString(center(divider))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, d := range sum.Dimensions {
		labelWidth = max(labelWidth, lipgloss.Width(dimensionLabel(d)))
	}
	for _, d := range sum.Dimensions {
		bar := components.NewProgressBar(
			lipgloss.NewStyle().Width(labelWidth).Render(dimensionLabel(d)),
			d.Percent/100, true, textWidth)
		bar.Fill = theme.LevelColor(d.Level)
		bar.Suffix = theme.LevelBadge(d.Level)
		b.WriteString(center(bar.View()))
		b.WriteString("\n")
	}

	if sum.Answered < sum.Total {
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render(
			fmt.Sprintf("%d of %d questions answered", sum.Answered, sum.Total))))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(center(theme.Warning.Render("This result was not saved to history.")))
		b.WriteString("\n")
	}

	return b.String()
}

func dimensionLabel(d session.DimensionResult) string {
	return strings.TrimSpace(d.Emoji + " " + d.Name)
}

// matchLine describes how the result was chosen.
func matchLine(o matching.Outcome) string {
	switch o.Phase {
	case matching.PhaseExact:
		return o.Phase.DisplayName()
	case matching.PhasePartial:
		return fmt.Sprintf("%s (%d of %d traits)", o.Phase.DisplayName(), o.Satisfied, len(o.Result.Condition))
	}
	return o.Phase.DisplayName()
}
