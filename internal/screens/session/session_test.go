package session

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screens/summary"
	sess "github.com/dayoumin/mbti-sub003/internal/session"
	"github.com/dayoumin/mbti-sub003/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	saved []*store.AttemptRecord
	err   error
}

func (m *mockAttemptRepo) Save(_ context.Context, rec *store.AttemptRecord) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, rec)
	return nil
}
func (m *mockAttemptRepo) Recent(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return nil, nil
}
func (m *mockAttemptRepo) Distribution(_ context.Context, _ store.QueryOpts) ([]store.ResultCount, error) {
	return nil, nil
}
func (m *mockAttemptRepo) Delete(_ context.Context, _ store.QueryOpts) (int64, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func options() []quiz.Option {
	return []quiz.Option{{Text: "never", Score: 1}, {Text: "sometimes", Score: 3}, {Text: "always", Score: 5}}
}

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:    "mini",
		Title: "Mini",
		Dimensions: []quiz.Dimension{
			{Key: "energy", Name: "Energy"},
			{Key: "social", Name: "Social"},
		},
		Questions: []quiz.Question{
			{ID: "e1", Dimension: "energy", Text: "Energy one", Options: options()},
			{ID: "e2", Dimension: "energy", Text: "Energy two", Options: options()},
			{ID: "s1", Dimension: "social", Text: "Social one", Options: options()},
		},
		Results: []quiz.Result{
			{Name: "Spark", Condition: quiz.Condition{{Dimension: "energy", Level: matching.LevelHigh}}},
			{Name: "Plain"},
		},
	}
}

func testSessionScreen() (*SessionScreen, *mockAttemptRepo) {
	repo := &mockAttemptRepo{}
	a := sess.New(testQuiz())
	a.Nickname = "tester"
	return New(a, repo), repo
}

// answerAll presses the given option numbers in order and returns the
// command produced by the final answer.
func answerAll(t *testing.T, s *SessionScreen, keys ...rune) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.Update(keyPress(k))
	}
	return cmd
}

func TestNumberKeyAnswersAndAdvances(t *testing.T) {
	s, _ := testSessionScreen()

	s.Update(keyPress('3'))

	if s.attempt.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", s.attempt.CurrentIndex)
	}
	if c, ok := s.attempt.Choice("e1"); !ok || c != 2 {
		t.Errorf("Choice(e1) = %d, %v; want 2, true", c, ok)
	}
	if s.choice.Question != "Energy two" {
		t.Errorf("question = %q, want %q", s.choice.Question, "Energy two")
	}
}

func TestArrowsAndEnter(t *testing.T) {
	s, _ := testSessionScreen()

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))

	if c, ok := s.attempt.Choice("e1"); !ok || c != 1 {
		t.Errorf("Choice(e1) = %d, %v; want 1, true", c, ok)
	}
}

func TestOutOfRangeNumberIgnored(t *testing.T) {
	s, _ := testSessionScreen()

	s.Update(keyPress('9'))

	if s.attempt.Answered() != 0 {
		t.Errorf("Answered = %d, want 0", s.attempt.Answered())
	}
}

func TestBackPreselectsPreviousAnswer(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(keyPress('2'))

	s.Update(specialKey(tea.KeyLeft))

	if s.attempt.CurrentIndex != 0 {
		t.Fatalf("CurrentIndex = %d, want 0", s.attempt.CurrentIndex)
	}
	if s.choice.Previous != 1 || s.choice.Selected != 1 {
		t.Errorf("Previous/Selected = %d/%d, want 1/1", s.choice.Previous, s.choice.Selected)
	}

	// Re-answering replaces the earlier choice without double counting.
	s.Update(keyPress('3'))
	if s.attempt.Answered() != 1 {
		t.Errorf("Answered = %d, want 1", s.attempt.Answered())
	}
	if got := s.attempt.Scores()["energy"]; got != 5 {
		t.Errorf("energy score = %d, want 5", got)
	}
}

func TestBackAtFirstQuestionIsNoop(t *testing.T) {
	s, _ := testSessionScreen()
	s.Update(specialKey(tea.KeyLeft))
	if s.attempt.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.attempt.CurrentIndex)
	}
}

func TestFinishSavesAndShowsSummary(t *testing.T) {
	s, repo := testSessionScreen()

	cmd := answerAll(t, s, '3', '3', '1')
	if cmd == nil {
		t.Fatal("expected finish command after last answer")
	}
	if !s.finishing {
		t.Error("expected finishing state")
	}

	saved, ok := cmd().(attemptSavedMsg)
	if !ok {
		t.Fatalf("expected attemptSavedMsg")
	}
	if saved.Err != nil {
		t.Fatalf("unexpected save error: %v", saved.Err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d attempts, want 1", len(repo.saved))
	}
	rec := repo.saved[0]
	if rec.ResultName != "Spark" || rec.Nickname != "tester" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Scores["energy"] != 10 || rec.Scores["social"] != 1 {
		t.Errorf("scores = %v", rec.Scores)
	}

	_, next := s.Update(saved)
	if next == nil {
		t.Fatal("expected replace command")
	}
	replace, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", replace.Screen)
	}
}

func TestKeysIgnoredWhileFinishing(t *testing.T) {
	s, _ := testSessionScreen()
	answerAll(t, s, '1', '1', '1')

	_, cmd := s.Update(keyPress('2'))
	if cmd != nil {
		t.Error("expected no command while finishing")
	}
}

func TestSaveFailureStillShowsResult(t *testing.T) {
	s, repo := testSessionScreen()
	repo.err = errors.New("disk full")

	cmd := answerAll(t, s, '1', '1', '1')
	saved, ok := cmd().(attemptSavedMsg)
	if !ok {
		t.Fatal("expected attemptSavedMsg")
	}
	if saved.Err == nil {
		t.Error("expected save error to be reported")
	}
	if saved.Summary == nil || saved.Summary.Result.Name != "Plain" {
		t.Errorf("expected fallback result Plain, got %+v", saved.Summary)
	}
}

func TestNilRepoSkipsSaving(t *testing.T) {
	s := New(sess.New(testQuiz()), nil)
	cmd := answerAll(t, s, '1', '1', '1')
	saved, ok := cmd().(attemptSavedMsg)
	if !ok || saved.Err != nil || saved.Summary == nil {
		t.Errorf("unexpected message %+v", saved)
	}
}

func TestStatusAndHints(t *testing.T) {
	s, _ := testSessionScreen()
	if got := s.Status(); got != "Q 1/3" {
		t.Errorf("Status = %q, want %q", got, "Q 1/3")
	}
	if n := len(s.KeyHints()); n != 3 {
		t.Errorf("KeyHints on first question = %d, want 3", n)
	}
	s.Update(keyPress('1'))
	if got := s.Status(); got != "Q 2/3" {
		t.Errorf("Status = %q, want %q", got, "Q 2/3")
	}
	if n := len(s.KeyHints()); n != 4 {
		t.Errorf("KeyHints after first answer = %d, want 4", n)
	}
}

func TestViewRenders(t *testing.T) {
	s, _ := testSessionScreen()
	if s.View(80, 20) == "" {
		t.Error("expected non-empty view")
	}
}
