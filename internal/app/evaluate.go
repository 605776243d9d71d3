package app

import "quixie-quiz-service/internal/domain"

// Evaluation is the outcome of checking a submission against a question.
type Evaluation struct {
	Correct       bool
	CorrectAnswer string
}

// Evaluate checks a submitted answer (nil means timed out with no selection)
// against the question's declared correct answer. Comparison is exact string
// equality; authoring is responsible for clean option text. Pure and total
// over any well-formed question.
func Evaluate(question domain.Question, selected *string) Evaluation {
	if selected == nil {
		return Evaluation{Correct: false, CorrectAnswer: question.CorrectAnswer}
	}
	return Evaluation{
		Correct:       *selected == question.CorrectAnswer,
		CorrectAnswer: question.CorrectAnswer,
	}
}
