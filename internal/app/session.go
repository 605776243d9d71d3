package app

import (
	"log"
	"sync"
	"time"

	"quixie-quiz-service/internal/domain"
)

// DefaultQuestionSeconds is the per-question allowance before the deadline
// timer forces progression.
const DefaultQuestionSeconds = 30

// Phase names the state the session is in for the current question.
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaitingAnswer"
	PhaseFeedback       Phase = "feedback"
	PhaseComplete       Phase = "complete"
)

// AnalysisComposer derives the free-text analysis for a completed session.
type AnalysisComposer interface {
	Compose(quiz domain.Quiz, answers []domain.AnswerRecord) string
}

// Snapshot is the read-only view the presentation layer observes.
type Snapshot struct {
	Phase          Phase
	Index          int
	TotalQuestions int
	Remaining      int
	Records        []domain.AnswerRecord
	Running        Score
	Result         *domain.Result
}

// Session drives one play-through of a quiz for one user. It exclusively owns
// the answer log; callers interact through Submit, Advance, GoBack and the
// snapshot subscription. All operations complete synchronously against the
// current state and invalid transitions are logged no-ops so UI races stay
// harmless.
type Session struct {
	key      string
	quiz     domain.Quiz
	userID   string
	composer AnalysisComposer
	timer    *DeadlineTimer
	seconds  int
	now      func() time.Time

	mu          sync.RWMutex
	phase       Phase
	index       int
	records     []domain.AnswerRecord
	result      *domain.Result
	subscribers map[chan Snapshot]struct{}
}

// NewSession starts a session with the default 30s allowance and 1s ticks.
// It fails fast with domain.ErrInvalidQuiz before any question is presented.
func NewSession(quiz domain.Quiz, userID string, composer AnalysisComposer) (*Session, error) {
	return NewSessionWithTiming(quiz, userID, composer, DefaultQuestionSeconds, time.Second)
}

// NewSessionWithTiming controls the per-question allowance and tick interval.
func NewSessionWithTiming(quiz domain.Quiz, userID string, composer AnalysisComposer, questionSeconds int, tick time.Duration) (*Session, error) {
	return newSession(quiz, userID, composer, questionSeconds, tick, time.Now)
}

// NewSessionWithClock is test-only for deterministic completion timestamps.
func NewSessionWithClock(quiz domain.Quiz, userID string, composer AnalysisComposer, questionSeconds int, tick time.Duration, now func() time.Time) (*Session, error) {
	return newSession(quiz, userID, composer, questionSeconds, tick, now)
}

func newSession(quiz domain.Quiz, userID string, composer AnalysisComposer, questionSeconds int, tick time.Duration, now func() time.Time) (*Session, error) {
	if err := quiz.Validate(); err != nil {
		return nil, err
	}
	if questionSeconds <= 0 {
		questionSeconds = DefaultQuestionSeconds
	}
	s := &Session{
		key:         SessionKey(quiz.ID, userID),
		quiz:        quiz,
		userID:      userID,
		composer:    composer,
		timer:       NewDeadlineTimerWithInterval(tick),
		seconds:     questionSeconds,
		now:         now,
		phase:       PhaseAwaitingAnswer,
		subscribers: make(map[chan Snapshot]struct{}),
	}
	s.timer.Start(s.seconds, s.Timeout)
	return s, nil
}

// SessionKey derives the store key for one user's play-through of one quiz.
func SessionKey(quizID, userID string) string {
	return quizID + ":" + userID
}

// Key returns the session's store key.
func (s *Session) Key() string { return s.key }

// Quiz returns the quiz the session was built from.
func (s *Session) Quiz() domain.Quiz { return s.quiz }

// UserID returns the player the session belongs to.
func (s *Session) UserID() string { return s.userID }

// Submit records the user's answer for the current question and moves to
// feedback. A second submit for the same question, or a submit that races a
// timer expiry, is a no-op.
func (s *Session) Submit(answer string) {
	s.record(&answer, "submit")
}

// Timeout is invoked by the deadline timer when the allowance elapses; it is
// equivalent to submitting no answer.
func (s *Session) Timeout() {
	s.record(nil, "timeout")
}

func (s *Session) record(selected *string, op string) {
	// Cancelling before any state mutation is observable keeps the timer and
	// a user submit mutually exclusive.
	s.timer.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingAnswer || len(s.records) != s.index {
		log.Printf("session %s: ignoring %s in phase=%s index=%d records=%d", s.key, op, s.phase, s.index, len(s.records))
		return
	}

	question := s.quiz.Questions[s.index]
	eval := Evaluate(question, selected)
	s.records = append(s.records, domain.AnswerRecord{
		QuestionID:     question.ID,
		SelectedAnswer: selected,
		Correct:        eval.Correct,
		CorrectAnswer:  eval.CorrectAnswer,
	})
	s.phase = PhaseFeedback
	s.broadcastLocked()
}

// Advance leaves feedback for the next question, or finalizes the session
// after the last one. From a previously answered question reached via GoBack
// it steps forward without touching the log.
func (s *Session) Advance() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.phase == PhaseFeedback:
		if s.index+1 < len(s.quiz.Questions) {
			s.index++
			s.phase = PhaseAwaitingAnswer
			s.timer.Start(s.seconds, s.Timeout)
		} else {
			s.completeLocked()
		}
	case s.phase == PhaseAwaitingAnswer && len(s.records) > s.index:
		// Returning forward from a revisited question.
		s.index++
		s.timer.Start(s.seconds, s.Timeout)
	default:
		log.Printf("session %s: ignoring advance in phase=%s index=%d", s.key, s.phase, s.index)
		return
	}
	s.broadcastLocked()
}

// GoBack revisits the previous question. It is only permitted before the
// current question has been answered, is view-only, and never removes a
// recorded answer. At index 0 it is a no-op.
func (s *Session) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseAwaitingAnswer || s.index == 0 || len(s.records) != s.index {
		log.Printf("session %s: ignoring goBack in phase=%s index=%d records=%d", s.key, s.phase, s.index, len(s.records))
		return
	}
	s.index--
	s.timer.Start(s.seconds, s.Timeout)
	s.broadcastLocked()
}

func (s *Session) completeLocked() {
	s.timer.Cancel()
	s.phase = PhaseComplete
	tally := Aggregate(s.records)
	answers := make([]domain.AnswerRecord, len(s.records))
	copy(answers, s.records)
	s.result = &domain.Result{
		QuizID:         s.quiz.ID,
		UserID:         s.userID,
		Score:          tally.Score,
		TotalQuestions: tally.Total,
		Answers:        answers,
		Analysis:       s.composer.Compose(s.quiz, answers),
		CompletedAt:    s.now(),
	}
}

// Result returns the finalized outcome, or nil before completion.
func (s *Session) Result() *domain.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil
	}
	result := *s.result
	return &result
}

// Snapshot returns a read-only view of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	records := make([]domain.AnswerRecord, len(s.records))
	copy(records, s.records)

	snap := Snapshot{
		Phase:          s.phase,
		Index:          s.index,
		TotalQuestions: len(s.quiz.Questions),
		Remaining:      s.timer.Remaining(),
		Records:        records,
		Running:        Aggregate(records),
	}
	if s.result != nil {
		result := *s.result
		snap.Result = &result
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot after every transition,
// starting with the current state. The caller must invoke the returned cancel
// function to avoid leaks.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	initial := s.snapshotLocked()
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked() {
	snap := s.snapshotLocked()
	for ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Drop the stale snapshot so a slow observer never blocks a transition.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

// Close cancels the deadline timer; the session is abandoned, not completed.
func (s *Session) Close() {
	s.timer.Cancel()
}
