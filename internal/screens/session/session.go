package session

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/dayoumin/mbti-sub003/internal/router"
	"github.com/dayoumin/mbti-sub003/internal/screen"
	"github.com/dayoumin/mbti-sub003/internal/screens/summary"
	sess "github.com/dayoumin/mbti-sub003/internal/session"
	"github.com/dayoumin/mbti-sub003/internal/store"
	"github.com/dayoumin/mbti-sub003/internal/ui/components"
	"github.com/dayoumin/mbti-sub003/internal/ui/layout"
)

// SessionScreen walks the respondent through the quiz questions.
type SessionScreen struct {
	attempt   *sess.Attempt
	attempts  store.AttemptRepo
	choice    components.MultiChoice
	finishing bool
	errMsg    string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for an attempt. attempts may be nil, in
// which case the finished attempt is not persisted.
func New(attempt *sess.Attempt, attempts store.AttemptRepo) *SessionScreen {
	s := &SessionScreen{
		attempt:  attempt,
		attempts: attempts,
	}
	s.loadQuestion()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	return s.attempt.Quiz.Title
}

// Status shows question progress in the header.
func (s *SessionScreen) Status() string {
	current := min(s.attempt.CurrentIndex+1, s.attempt.Total())
	return questionCounter(current, s.attempt.Total())
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.finishing {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
	}
	if s.attempt.CurrentIndex > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary, msg.Err)}
		}

	case attemptFailedMsg:
		s.finishing = false
		s.errMsg = msg.Err.Error()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finishing {
		return s, nil
	}

	switch msg.String() {
	case "left", "b", "backspace":
		if s.attempt.Back() {
			s.loadQuestion()
		}
		return s, nil
	}

	s.choice, _ = s.choice.Update(msg)
	idx, ok := s.choice.Chosen()
	if !ok {
		return s, nil
	}
	return s.submitAnswer(idx)
}

// submitAnswer records the chosen option and moves on, finishing the
// attempt after the last question.
func (s *SessionScreen) submitAnswer(idx int) (screen.Screen, tea.Cmd) {
	if err := s.attempt.AnswerCurrent(idx); err != nil {
		s.errMsg = err.Error()
		s.loadQuestion()
		return s, nil
	}
	s.errMsg = ""

	if s.attempt.Complete() {
		s.finishing = true
		return s, s.finish()
	}
	s.loadQuestion()
	return s, nil
}

// loadQuestion resets the selector for the current question, preselecting
// an earlier answer when revisiting.
func (s *SessionScreen) loadQuestion() {
	q, ok := s.attempt.Current()
	if !ok {
		s.choice = components.MultiChoice{}
		return
	}
	options := make([]string, len(q.Options))
	for i, o := range q.Options {
		options[i] = o.Text
	}
	previous := -1
	if c, ok := s.attempt.Choice(q.ID); ok {
		previous = c
	}
	s.choice = components.NewMultiChoice(q.Text, options, previous)
}

// finish scores the attempt and persists it off the update loop.
func (s *SessionScreen) finish() tea.Cmd {
	attempt := s.attempt
	repo := s.attempts
	return func() tea.Msg {
		sum, err := attempt.Finish()
		if err != nil {
			return attemptFailedMsg{Err: err}
		}
		if repo == nil {
			return attemptSavedMsg{Summary: sum}
		}
		if err := repo.Save(context.Background(), sum.Record()); err != nil {
			slog.Warn("Failed to save attempt", "quiz", sum.QuizID, "error", err)
			return attemptSavedMsg{Summary: sum, Err: err}
		}
		return attemptSavedMsg{Summary: sum}
	}
}
