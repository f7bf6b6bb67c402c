package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screens/intro"
)

func TestStartOpensQuizOverHome(t *testing.T) {
	q, ok := quiz.BuiltinByID("energy-style")
	if !ok {
		t.Fatal("builtin energy-style missing")
	}
	m := newAppModel(Options{Quizzes: quiz.Builtin(), Start: q})

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*intro.IntroScreen); !ok {
		t.Errorf("active = %T, want intro screen", m.router.Active())
	}
}

func TestEscPopsAboveRoot(t *testing.T) {
	m := newAppModel(Options{Quizzes: quiz.Builtin(), Start: quiz.Builtin()[0]})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newAppModel(Options{Quizzes: quiz.Builtin()})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command at root")
	}
}

func TestViewRendersFrame(t *testing.T) {
	m := newAppModel(Options{Quizzes: quiz.Builtin()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	frame := updated.(AppModel).render()
	if !strings.Contains(frame, "quizmatch") {
		t.Error("expected header in frame")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestRenderEmptyBeforeResize(t *testing.T) {
	m := newAppModel(Options{})
	if m.render() != "" {
		t.Error("expected empty frame before the first resize")
	}
}
