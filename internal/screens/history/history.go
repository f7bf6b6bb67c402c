package history

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/store"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// recentLimit caps how many attempts the screen loads.
const recentLimit = 50

type historyLoadedMsg struct {
	Attempts     []store.AttemptRecord
	Distribution []store.ResultCount
	Err          error
}

// HistoryScreen displays past attempts and how often each result came up.
type HistoryScreen struct {
	repo     store.AttemptRepo
	titles   map[string]string
	quizzes  []*quiz.Quiz
	attempts []store.AttemptRecord
	dist     []store.ResultCount
	selected int
	expanded map[int]bool
	showDist bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. quizzes supply display titles and
// dimension order; attempts at unknown quizzes show their raw ID.
func New(repo store.AttemptRepo, quizzes []*quiz.Quiz) *HistoryScreen {
	titles := make(map[string]string, len(quizzes))
	for _, q := range quizzes {
		titles[q.ID] = q.Title
	}
	return &HistoryScreen{
		repo:     repo,
		titles:   titles,
		quizzes:  quizzes,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := repo.Recent(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		dist, err := repo.Distribution(ctx, store.QueryOpts{})
		if err != nil {
			return historyLoadedMsg{Attempts: attempts}
		}

		return historyLoadedMsg{Attempts: attempts, Distribution: dist}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Results"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.dist = msg.Distribution
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.showDist = !s.showDist
			return s, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No attempts yet. Take a quiz!")
	}
	if s.showDist {
		return s.renderDistribution(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		who := a.Nickname
		if who == "" {
			who = "anonymous"
		}
		line := fmt.Sprintf("%s%s  %-18s  %-12s  %s",
			prefix, a.CreatedAt.Local().Format("Jan 02 15:04"), s.quizTitle(a.QuizID), who, a.ResultName)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderDetail(a)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderDetail lists each dimension's score and level for one attempt.
func (s *HistoryScreen) renderDetail(a store.AttemptRecord) string {
	var lines []string
	for _, dim := range s.dimensionOrder(a) {
		level, _ := matching.ParseLevel(a.Levels[dim])
		lines = append(lines, fmt.Sprintf("    %-12s %3d  %s",
			dim, a.Scores[dim], theme.LevelBadge(level)))
	}
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("    %s · %d matched · %s",
		a.Phase, a.Satisfied, a.Duration.Round(time.Second))))
	return strings.Join(lines, "\n")
}

// dimensionOrder returns the attempt's dimensions in quiz order when the
// quiz is known, otherwise sorted by key.
func (s *HistoryScreen) dimensionOrder(a store.AttemptRecord) []string {
	for _, q := range s.quizzes {
		if q.ID == a.QuizID {
			return q.DimensionKeys()
		}
	}
	keys := make([]string, 0, len(a.Scores))
	for k := range a.Scores {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *HistoryScreen) renderDistribution(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render("Results across all attempts")))
	b.WriteString("\n\n")
	for _, rc := range s.dist {
		line := fmt.Sprintf("%-20s %4d  %5.1f%%", rc.ResultName, rc.Count, rc.Share*100)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Body.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) quizTitle(id string) string {
	if t, ok := s.titles[id]; ok {
		return t
	}
	return id
}
