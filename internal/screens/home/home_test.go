package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screens/intro"
)

func TestMenuListsBuiltins(t *testing.T) {
	quizzes := quiz.Builtin()
	h := New(quizzes, nil)

	if got, want := len(h.menu.Items), len(quizzes)+2; got != want {
		t.Fatalf("menu items = %d, want %d", got, want)
	}
	view := h.View(100, 30)
	for _, q := range quizzes {
		if !strings.Contains(view, q.Title) {
			t.Errorf("view missing quiz %q", q.Title)
		}
	}
}

func TestHistoryDisabledWithoutRepo(t *testing.T) {
	h := New(quiz.Builtin(), nil)
	history := h.menu.Items[len(h.menu.Items)-2]
	if history.Label != "History" || !history.Disabled {
		t.Errorf("history item = %+v, want disabled History", history)
	}
}

func TestEnterPushesIntro(t *testing.T) {
	h := New(quiz.Builtin(), nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*intro.IntroScreen); !ok {
		t.Errorf("expected intro screen, got %T", push.Screen)
	}
}

func TestNoQuizzes(t *testing.T) {
	h := New(nil, nil)
	if !strings.Contains(h.View(80, 24), "No quizzes loaded") {
		t.Error("expected empty-state message")
	}
}
