package session

import (
	"errors"
	"testing"

	"github.com/dayoumin/mbti-sub003/internal/matching"
	"github.com/dayoumin/mbti-sub003/internal/quiz"
)

// testQuiz has three dimensions with three questions each; option i scores
// i*2+1 (1, 3, 5).
func testQuiz() *quiz.Quiz {
	opts := []quiz.Option{{Text: "low", Score: 1}, {Text: "mid", Score: 3}, {Text: "high", Score: 5}}
	q := &quiz.Quiz{
		ID:    "test",
		Title: "Test",
		Dimensions: []quiz.Dimension{
			{Key: "energy", Name: "Energy"},
			{Key: "social", Name: "Social"},
			{Key: "focus"},
		},
		Results: []quiz.Result{
			{Name: "에너자이저", Condition: quiz.Condition{
				{Dimension: "energy", Level: matching.LevelHigh},
				{Dimension: "social", Level: matching.LevelHigh},
			}},
			{Name: "사교적", Condition: quiz.Condition{{Dimension: "social", Level: matching.LevelHigh}}},
			{Name: "기본형"},
		},
	}
	for _, dim := range []string{"energy", "social", "focus"} {
		for i := 1; i <= 3; i++ {
			q.Questions = append(q.Questions, quiz.Question{
				ID:        dim + string(rune('0'+i)),
				Dimension: dim,
				Text:      dim,
				Options:   opts,
			})
		}
	}
	return q
}

func answerAll(t *testing.T, a *Attempt, choice map[string]int) {
	t.Helper()
	for _, qu := range a.Quiz.Questions {
		if err := a.Answer(qu.ID, choice[qu.Dimension]); err != nil {
			t.Fatalf("Answer(%s): %v", qu.ID, err)
		}
	}
}

func TestAttempt_ScoresAndFinish(t *testing.T) {
	a := New(testQuiz())
	// energy 5+5+5=15, social 15, focus 1+1+1=3
	answerAll(t, a, map[string]int{"energy": 2, "social": 2, "focus": 0})

	if !a.Complete() {
		t.Fatal("expected complete attempt")
	}
	scores := a.Scores()
	want := matching.ScoreMap{"energy": 15, "social": 15, "focus": 3}
	for k, v := range want {
		if scores[k] != v {
			t.Errorf("scores[%s] = %d, want %d", k, scores[k], v)
		}
	}

	sum, err := a.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if sum.Result.Name != "에너자이저" {
		t.Errorf("result = %q, want 에너자이저", sum.Result.Name)
	}
	if sum.Outcome.Phase != matching.PhaseExact {
		t.Errorf("phase = %s, want exact", sum.Outcome.Phase)
	}
	if len(sum.Dimensions) != 3 {
		t.Fatalf("dimensions = %d, want 3", len(sum.Dimensions))
	}
	if d := sum.Dimensions[2]; d.Name != "focus" || d.MaxScore != 15 || d.Level != matching.LevelLow {
		t.Errorf("focus dimension = %+v", d)
	}
	if sum.Answered != 9 || sum.Total != 9 {
		t.Errorf("answered %d/%d, want 9/9", sum.Answered, sum.Total)
	}
}

func TestAttempt_FinishIncomplete(t *testing.T) {
	a := New(testQuiz())
	if err := a.Answer("energy1", 2); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	_, err := a.Finish()
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}

	sum, err := a.FinishPartial()
	if err != nil {
		t.Fatalf("FinishPartial: %v", err)
	}
	// energy 5/15 = 33% low; nothing high anywhere.
	if sum.Result.Name != "기본형" || sum.Outcome.Phase != matching.PhaseFallback {
		t.Errorf("got %q (%s), want 기본형 (fallback)", sum.Result.Name, sum.Outcome.Phase)
	}
}

func TestAttempt_AnswerErrors(t *testing.T) {
	a := New(testQuiz())
	if err := a.Answer("nope", 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question err = %v", err)
	}
	if err := a.Answer("energy1", 3); err == nil {
		t.Error("expected out-of-range option error")
	}
	if err := a.Answer("energy1", -1); err == nil {
		t.Error("expected negative option error")
	}
}

func TestAttempt_ReanswerReplaces(t *testing.T) {
	a := New(testQuiz())
	_ = a.Answer("energy1", 0)
	_ = a.Answer("energy1", 2)
	if a.Answered() != 1 {
		t.Errorf("answered = %d, want 1", a.Answered())
	}
	if got := a.Scores()["energy"]; got != 5 {
		t.Errorf("energy = %d, want 5", got)
	}
	if opt, ok := a.Choice("energy1"); !ok || opt != 2 {
		t.Errorf("Choice = %d, %v; want 2, true", opt, ok)
	}
}

func TestAttempt_Navigation(t *testing.T) {
	a := New(testQuiz())
	if a.Back() {
		t.Error("Back at first question should not move")
	}

	for i := 0; i < a.Total(); i++ {
		if err := a.AnswerCurrent(1); err != nil {
			t.Fatalf("AnswerCurrent #%d: %v", i, err)
		}
	}
	if _, ok := a.Current(); ok {
		t.Error("expected no current question after the last answer")
	}
	if err := a.AnswerCurrent(0); err == nil {
		t.Error("expected error answering past the end")
	}
	if !a.Back() {
		t.Fatal("Back should move from the end")
	}
	qu, ok := a.Current()
	if !ok || qu.ID != "focus3" {
		t.Errorf("current = %q, %v; want focus3", qu.ID, ok)
	}
	if a.Progress() != 1 {
		t.Errorf("progress = %v, want 1", a.Progress())
	}
}

func TestAttempt_ScoresIncludeEveryDimension(t *testing.T) {
	a := New(testQuiz())
	scores := a.Scores()
	if len(scores) != 3 {
		t.Errorf("scores = %v, want all three dimensions at zero", scores)
	}
}

func TestSummary_Record(t *testing.T) {
	a := New(testQuiz())
	a.Nickname = "tester"
	answerAll(t, a, map[string]int{"energy": 0, "social": 2, "focus": 1})

	sum, err := a.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	rec := sum.Record()
	if rec.QuizID != "test" || rec.Nickname != "tester" {
		t.Errorf("unexpected identity: %+v", rec)
	}
	if rec.ResultName != "사교적" || rec.Phase != "exact" {
		t.Errorf("result = %q (%s), want 사교적 (exact)", rec.ResultName, rec.Phase)
	}
	if rec.Levels["social"] != "high" || rec.Levels["focus"] != "high" || rec.Levels["energy"] != "low" {
		t.Errorf("levels = %v", rec.Levels)
	}
	if rec.Scores["focus"] != 9 {
		t.Errorf("focus score = %d, want 9", rec.Scores["focus"])
	}
}
