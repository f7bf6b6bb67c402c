package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/screens/history"
	"github.com/dayoumin/mbti-sub003/internal/screens/intro"
	sessionscreen "github.com/dayoumin/mbti-sub003/internal/screens/session"
	sess "github.com/dayoumin/mbti-sub003/internal/session"
	"github.com/dayoumin/mbti-sub003/internal/store"
	"github.com/dayoumin/mbti-sub003/internal/ui/components"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// HomeScreen lists the available quizzes.
type HomeScreen struct {
	quizzes  []*quiz.Quiz
	attempts store.AttemptRepo
	menu     components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. attempts may be nil, in which case results
// are not saved and history is unavailable.
func New(quizzes []*quiz.Quiz, attempts store.AttemptRepo) *HomeScreen {
	h := &HomeScreen{quizzes: quizzes, attempts: attempts}

	items := make([]components.MenuItem, 0, len(quizzes)+2)
	for _, q := range quizzes {
		items = append(items, components.MenuItem{
			Label:  q.Title,
			Hint:   fmt.Sprintf("%d questions", len(q.Questions)),
			Action: h.startQuiz(q),
		})
	}
	items = append(items,
		components.MenuItem{
			Label:    "History",
			Disabled: attempts == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(attempts, quizzes)}
				}
			},
		},
		components.MenuItem{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	)

	h.menu = components.NewMenu(items)
	return h
}

// StartScreen returns the screen that begins q: nickname entry followed
// by the question flow.
func StartScreen(q *quiz.Quiz, attempts store.AttemptRepo) screen.Screen {
	return intro.New(q, func(nickname string) screen.Screen {
		a := sess.New(q)
		a.Nickname = nickname
		return sessionscreen.New(a, attempts)
	})
}

func (h *HomeScreen) startQuiz(q *quiz.Quiz) func() tea.Cmd {
	return func() tea.Cmd {
		next := StartScreen(q, h.attempts)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: next}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.menu.Init()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width), "")

	if len(h.quizzes) == 0 {
		sections = append(sections, theme.Hint.Render("No quizzes loaded."), "")
	} else if h.menu.Selected < len(h.quizzes) {
		q := h.quizzes[h.menu.Selected]
		desc := q.Description
		if desc == "" {
			desc = dimensionLine(q)
		}
		sections = append(sections,
			lipgloss.NewStyle().
				Width(min(width-8, 60)).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(desc),
			"")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func dimensionLine(q *quiz.Quiz) string {
	names := make([]string, 0, len(q.Dimensions))
	for _, d := range q.Dimensions {
		name := d.Name
		if name == "" {
			name = d.Key
		}
		names = append(names, strings.TrimSpace(d.Emoji+" "+name))
	}
	return strings.Join(names, " · ")
}
