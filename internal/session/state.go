package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

var (
	// ErrIncomplete is returned by Finish while questions remain unanswered.
	ErrIncomplete = errors.New("session: not every question has been answered")
	// ErrUnknownQuestion is returned when answering a question not in the quiz.
	ErrUnknownQuestion = errors.New("session: unknown question")
)

// Attempt tracks one respondent's answers to one quiz.
type Attempt struct {
	// Quiz is the content being answered.
	Quiz *quiz.Quiz

	// Nickname optionally identifies the respondent.
	Nickname string

	// StartTime is when the attempt began.
	StartTime time.Time

	// CurrentIndex is the question being shown, an index into Quiz.Questions.
	CurrentIndex int

	// answers maps question ID to the chosen option index.
	answers map[string]int
}

// New starts an attempt at q.
func New(q *quiz.Quiz) *Attempt {
	return &Attempt{
		Quiz:      q,
		StartTime: time.Now(),
		answers:   make(map[string]int, len(q.Questions)),
	}
}

// Answer records the chosen option for a question, replacing any earlier
// choice.
func (a *Attempt) Answer(questionID string, option int) error {
	qu, ok := a.Quiz.Question(questionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if option < 0 || option >= len(qu.Options) {
		return fmt.Errorf("question %q: option %d out of range [0, %d)", questionID, option, len(qu.Options))
	}
	a.answers[questionID] = option
	return nil
}

// Choice returns the option chosen for a question, if any.
func (a *Attempt) Choice(questionID string) (int, bool) {
	opt, ok := a.answers[questionID]
	return opt, ok
}

// Current returns the question at CurrentIndex.
func (a *Attempt) Current() (quiz.Question, bool) {
	if a.CurrentIndex < 0 || a.CurrentIndex >= len(a.Quiz.Questions) {
		return quiz.Question{}, false
	}
	return a.Quiz.Questions[a.CurrentIndex], true
}

// AnswerCurrent answers the current question and advances to the next one.
func (a *Attempt) AnswerCurrent(option int) error {
	qu, ok := a.Current()
	if !ok {
		return fmt.Errorf("no current question (index %d)", a.CurrentIndex)
	}
	if err := a.Answer(qu.ID, option); err != nil {
		return err
	}
	if a.CurrentIndex < len(a.Quiz.Questions) {
		a.CurrentIndex++
	}
	return nil
}

// Back moves to the previous question. It reports whether it moved.
func (a *Attempt) Back() bool {
	if a.CurrentIndex == 0 {
		return false
	}
	a.CurrentIndex--
	return true
}

// Answered returns the number of answered questions.
func (a *Attempt) Answered() int {
	return len(a.answers)
}

// Total returns the number of questions in the quiz.
func (a *Attempt) Total() int {
	return len(a.Quiz.Questions)
}

// Progress returns the answered fraction in [0, 1].
func (a *Attempt) Progress() float64 {
	if a.Total() == 0 {
		return 0
	}
	return float64(a.Answered()) / float64(a.Total())
}

// Complete reports whether every question has an answer.
func (a *Attempt) Complete() bool {
	return a.Answered() == a.Total()
}

// Scores sums the chosen option scores per dimension. Every declared
// dimension is present, unanswered ones at zero. The returned map is fresh.
func (a *Attempt) Scores() matching.ScoreMap {
	scores := make(matching.ScoreMap, len(a.Quiz.Dimensions))
	for _, d := range a.Quiz.Dimensions {
		scores[d.Key] = 0
	}
	for _, qu := range a.Quiz.Questions {
		opt, ok := a.answers[qu.ID]
		if !ok {
			continue
		}
		scores[qu.Dimension] += qu.Options[opt].Score
	}
	return scores
}
