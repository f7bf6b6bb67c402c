package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/ui/components"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
	"github.com/dayoumin/mbti-sub003/internal/ui/theme"
)

// MaxNicknameLen bounds the nickname field.
const MaxNicknameLen = 20

// IntroScreen introduces a quiz and asks for an optional nickname before
// handing over to the question flow.
type IntroScreen struct {
	quiz         *quiz.Quiz
	input        components.TextInput
	startFactory func(nickname string) screen.Screen
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen for q. startFactory builds the screen that
// replaces this one once the nickname is confirmed.
func New(q *quiz.Quiz, startFactory func(nickname string) screen.Screen) *IntroScreen {
	return &IntroScreen{
		quiz:         q,
		input:        components.NewTextInput("nickname (optional)", MaxNicknameLen),
		startFactory: startFactory,
	}
}

func (s *IntroScreen) Title() string {
	return s.quiz.Title
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.transition()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// Nickname returns the trimmed nickname typed so far.
func (s *IntroScreen) Nickname() string {
	return s.input.Value()
}

func (s *IntroScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.startFactory(s.Nickname())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	q := s.quiz
	var sections []string

	sections = append(sections, theme.Title.Render(q.Title))
	if q.Description != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Width(min(width-8, 60)).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(q.Description))
	}

	sections = append(sections, "")
	for _, d := range q.Dimensions {
		name := d.Name
		if name == "" {
			name = d.Key
		}
		line := strings.TrimSpace(d.Emoji + " " + name)
		if d.Description != "" {
			line += theme.Hint.Render("  " + d.Description)
		}
		sections = append(sections, theme.Body.Render(line))
	}

	sections = append(sections, "",
		theme.Subtitle.Render(fmt.Sprintf("%d questions", len(q.Questions))),
		"",
		theme.Body.Render("Nickname: ")+s.input.View(),
		"",
		theme.Hint.Render("press enter to begin"),
	)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
