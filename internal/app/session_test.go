package app_test

import (
	"errors"
	"testing"
	"time"

	"quixie-quiz-service/internal/app"
	"quixie-quiz-service/internal/domain"
)

type staticComposer struct{ text string }

func (c staticComposer) Compose(domain.Quiz, []domain.AnswerRecord) string { return c.text }

func threeQuestionQuiz() domain.Quiz {
	return domain.Quiz{
		ID:       "quiz-1",
		Title:    "World Capitals Challenge",
		Category: domain.CategoryGeneralKnowledge,
		Questions: []domain.Question{
			{
				ID:            "q1",
				Text:          "Capital of France?",
				Options:       []domain.Option{{Text: "Paris"}, {Text: "Lyon"}},
				CorrectAnswer: "Paris",
			},
			{
				ID:            "q2",
				Text:          "Capital of Japan?",
				Options:       []domain.Option{{Text: "Tokyo"}, {Text: "Osaka"}},
				CorrectAnswer: "Tokyo",
			},
			{
				ID:            "q3",
				Text:          "Capital of Canada?",
				Options:       []domain.Option{{Text: "Ottawa"}, {Text: "Toronto"}},
				CorrectAnswer: "Ottawa",
			},
		},
	}
}

// newIdleSession builds a session whose timer effectively never fires.
func newIdleSession(t *testing.T, quiz domain.Quiz) *app.Session {
	t.Helper()
	session, err := app.NewSessionWithTiming(quiz, "user-1", staticComposer{text: "analysis"}, 3600, time.Hour)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func waitForPhase(t *testing.T, updates <-chan app.Snapshot, phase app.Phase) app.Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				t.Fatalf("snapshot channel closed before phase %s", phase)
			}
			if snap.Phase == phase {
				return snap
			}
		case <-deadline:
			t.Fatalf("timed out waiting for phase %s", phase)
		}
	}
}

func TestFullPlaythroughProducesOneRecordPerQuestion(t *testing.T) {
	session := newIdleSession(t, threeQuestionQuiz())
	defer session.Close()

	answers := []string{"Paris", "Tokyo", "Ottawa"}
	for _, answer := range answers {
		session.Submit(answer)
		session.Advance()
	}

	snap := session.Snapshot()
	if snap.Phase != app.PhaseComplete {
		t.Fatalf("expected complete phase, got %s", snap.Phase)
	}
	if len(snap.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(snap.Records))
	}

	result := session.Result()
	if result == nil {
		t.Fatalf("expected result after completion")
	}
	if result.Score != 3 || result.TotalQuestions != 3 {
		t.Fatalf("expected 3/3, got %d/%d", result.Score, result.TotalQuestions)
	}
	if result.Analysis != "analysis" {
		t.Fatalf("expected composed analysis, got %q", result.Analysis)
	}
	if result.QuizID != "quiz-1" || result.UserID != "user-1" {
		t.Fatalf("unexpected result identity: %+v", result)
	}
}

func TestDoubleSubmitIsNoOp(t *testing.T) {
	session := newIdleSession(t, threeQuestionQuiz())
	defer session.Close()

	session.Submit("Paris")
	session.Submit("Lyon")

	snap := session.Snapshot()
	if len(snap.Records) != 1 {
		t.Fatalf("expected single record, got %d", len(snap.Records))
	}
	if !snap.Records[0].Correct || *snap.Records[0].SelectedAnswer != "Paris" {
		t.Fatalf("expected the first submission to win, got %+v", snap.Records[0])
	}
}

func TestTimeoutRecordsNilSelection(t *testing.T) {
	quiz := threeQuestionQuiz()
	session, err := app.NewSessionWithTiming(quiz, "user-1", staticComposer{}, 1, 2*time.Millisecond)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()

	updates, cancel := session.Subscribe()
	defer cancel()

	snap := waitForPhase(t, updates, app.PhaseFeedback)
	record := snap.Records[0]
	if record.SelectedAnswer != nil {
		t.Fatalf("expected nil selection on timeout, got %v", *record.SelectedAnswer)
	}
	if record.Correct {
		t.Fatalf("expected timed-out answer to be incorrect")
	}
	if record.CorrectAnswer != "Paris" {
		t.Fatalf("expected canonical answer captured, got %q", record.CorrectAnswer)
	}

	// A late submit after the timeout must not add or alter records.
	session.Submit("Paris")
	after := session.Snapshot()
	if len(after.Records) != 1 || after.Records[0].SelectedAnswer != nil {
		t.Fatalf("late submit mutated the log: %+v", after.Records)
	}
}

func TestAnswerTimeoutWrongScenario(t *testing.T) {
	quiz := threeQuestionQuiz()
	// 100ms allowance: answered questions settle immediately, the timed-out
	// one expires quickly without racing the submits.
	session, err := app.NewSessionWithTiming(quiz, "user-1", staticComposer{}, 100, time.Millisecond)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	defer session.Close()

	updates, cancel := session.Subscribe()
	defer cancel()

	// Q1 answered correctly before the deadline.
	session.Submit("Paris")
	waitForPhase(t, updates, app.PhaseFeedback)
	session.Advance()

	// Q2 times out.
	waitForPhase(t, updates, app.PhaseFeedback)
	session.Advance()

	// Q3 answered incorrectly.
	session.Submit("Toronto")
	session.Advance()

	snap := waitForPhase(t, updates, app.PhaseComplete)
	if snap.Running.Score != 1 || snap.Running.Total != 3 {
		t.Fatalf("expected 1/3, got %+v", snap.Running)
	}
	records := snap.Records
	if !records[0].Correct || *records[0].SelectedAnswer != "Paris" {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].Correct || records[1].SelectedAnswer != nil {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if records[2].Correct || *records[2].SelectedAnswer != "Toronto" {
		t.Fatalf("unexpected third record: %+v", records[2])
	}
}

func TestGoBackIsViewOnly(t *testing.T) {
	session := newIdleSession(t, threeQuestionQuiz())
	defer session.Close()

	// goBack at index 0 is a no-op.
	session.GoBack()
	if snap := session.Snapshot(); snap.Index != 0 || snap.Phase != app.PhaseAwaitingAnswer {
		t.Fatalf("goBack at index 0 changed state: %+v", snap)
	}

	session.Submit("Paris")
	session.Advance()

	session.GoBack()
	snap := session.Snapshot()
	if snap.Index != 0 {
		t.Fatalf("expected index 0 after goBack, got %d", snap.Index)
	}
	if len(snap.Records) != 1 || !snap.Records[0].Correct {
		t.Fatalf("goBack altered the answer log: %+v", snap.Records)
	}

	// Re-answering a visited question is forbidden.
	session.Submit("Lyon")
	snap = session.Snapshot()
	if len(snap.Records) != 1 || *snap.Records[0].SelectedAnswer != "Paris" {
		t.Fatalf("revisit submit mutated the log: %+v", snap.Records)
	}

	// Advance returns to the frontier and play continues.
	session.Advance()
	if snap := session.Snapshot(); snap.Index != 1 || snap.Phase != app.PhaseAwaitingAnswer {
		t.Fatalf("expected to return to question 1, got %+v", snap)
	}
	session.Submit("Tokyo")
	if snap := session.Snapshot(); len(snap.Records) != 2 || !snap.Records[1].Correct {
		t.Fatalf("expected second record after returning forward, got %+v", snap.Records)
	}
}

func TestAdvanceBeforeAnswerIsNoOp(t *testing.T) {
	session := newIdleSession(t, threeQuestionQuiz())
	defer session.Close()

	session.Advance()
	snap := session.Snapshot()
	if snap.Index != 0 || snap.Phase != app.PhaseAwaitingAnswer || len(snap.Records) != 0 {
		t.Fatalf("advance before answering changed state: %+v", snap)
	}
}

func TestInvalidQuizFailsFast(t *testing.T) {
	empty := domain.Quiz{ID: "empty"}
	if _, err := app.NewSession(empty, "user-1", staticComposer{}); !errors.Is(err, domain.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz for empty quiz, got %v", err)
	}

	oneOption := threeQuestionQuiz()
	oneOption.Questions[0].Options = oneOption.Questions[0].Options[:1]
	if _, err := app.NewSession(oneOption, "user-1", staticComposer{}); !errors.Is(err, domain.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz for single-option question, got %v", err)
	}

	noMatch := threeQuestionQuiz()
	noMatch.Questions[1].CorrectAnswer = "Kyoto"
	if _, err := app.NewSession(noMatch, "user-1", staticComposer{}); !errors.Is(err, domain.ErrInvalidQuiz) {
		t.Fatalf("expected ErrInvalidQuiz for unmatched correct answer, got %v", err)
	}
}

func TestRunningScoreRecomputedPerTransition(t *testing.T) {
	session := newIdleSession(t, threeQuestionQuiz())
	defer session.Close()

	if snap := session.Snapshot(); snap.Running.Score != 0 || snap.Running.Total != 0 {
		t.Fatalf("expected 0/0 before any answer, got %+v", snap.Running)
	}

	session.Submit("Paris")
	if snap := session.Snapshot(); snap.Running.Score != 1 || snap.Running.Total != 1 {
		t.Fatalf("expected 1/1 after first answer, got %+v", snap.Running)
	}

	session.Advance()
	session.Submit("Osaka")
	if snap := session.Snapshot(); snap.Running.Score != 1 || snap.Running.Total != 2 {
		t.Fatalf("expected 1/2 after wrong answer, got %+v", snap.Running)
	}
}
