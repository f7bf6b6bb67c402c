package intro

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{ nickname string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "play" }
func (s *stubScreen) Title() string                          { return "Play" }

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:          "demo",
		Title:       "Demo Quiz",
		Description: "A tiny quiz.",
		Dimensions: []quiz.Dimension{
			{Key: "energy", Name: "Energy", Emoji: "⚡"},
		},
		Questions: []quiz.Question{
			{ID: "q1", Dimension: "energy", Text: "?", Options: []quiz.Option{{Text: "a", Score: 1}, {Text: "b", Score: 5}}},
		},
	}
}

func newTestIntro() (*IntroScreen, *[]string) {
	var calls []string
	s := New(testQuiz(), func(nickname string) screen.Screen {
		calls = append(calls, nickname)
		return &stubScreen{nickname: nickname}
	})
	return s, &calls
}

func typeText(s *IntroScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterEmitsReplace(t *testing.T) {
	s, calls := newTestIntro()
	typeText(s, "mina")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	next, ok := msg.Screen.(*stubScreen)
	if !ok {
		t.Fatalf("expected stub screen, got %T", msg.Screen)
	}
	if next.nickname != "mina" {
		t.Errorf("nickname = %q, want %q", next.nickname, "mina")
	}
	if len(*calls) != 1 {
		t.Errorf("factory calls = %d, want 1", len(*calls))
	}
}

func TestEmptyNicknameAllowed(t *testing.T) {
	s, calls := newTestIntro()
	typeText(s, "   ")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if (*calls)[0] != "" {
		t.Errorf("nickname = %q, want empty", (*calls)[0])
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	s, calls := newTestIntro()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second Enter should not emit another transition")
	}
	if len(*calls) != 1 {
		t.Errorf("factory calls = %d, want 1", len(*calls))
	}
}

func TestViewShowsQuiz(t *testing.T) {
	s, _ := newTestIntro()
	view := s.View(80, 24)
	for _, want := range []string{"Demo Quiz", "A tiny quiz.", "Energy", "1 questions"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Title() != "Demo Quiz" {
		t.Errorf("Title = %q", s.Title())
	}
}
