package domain

import "errors"

var (
	// ErrQuizNotFound indicates the quiz id does not resolve in the repository.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrResultNotFound indicates the result id does not resolve in the repository.
	ErrResultNotFound = errors.New("result not found")
	// ErrCommentNotFound indicates the comment id does not resolve in the repository.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrInvalidQuiz marks a quiz that cannot back a session: no questions,
	// a question with fewer than two options, or no single option matching
	// the declared correct answer.
	ErrInvalidQuiz = errors.New("invalid quiz")
	// ErrSessionNotFound is returned when a quiz session has not been started.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrSessionNotComplete is returned when a result is requested before the
	// session reached its terminal state.
	ErrSessionNotComplete = errors.New("quiz session not complete")
)
