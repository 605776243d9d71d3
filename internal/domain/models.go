package domain

import (
	"fmt"
	"time"
)

// Category is one of the fixed quiz categories known to the platform.
type Category string

const (
	CategoryPersonality      Category = "Personality"
	CategoryTrivia           Category = "Trivia"
	CategoryPopCulture       Category = "Pop Culture"
	CategoryHypotheticals    Category = "Hypotheticals"
	CategoryGeneralKnowledge Category = "General Knowledge"
	CategoryBooks            Category = "Books"
	CategoryRelationships    Category = "Love and Relationships"
)

// Categories lists every recognized category in display order.
func Categories() []Category {
	return []Category{
		CategoryPersonality,
		CategoryTrivia,
		CategoryPopCulture,
		CategoryHypotheticals,
		CategoryGeneralKnowledge,
		CategoryBooks,
		CategoryRelationships,
	}
}

// Known reports whether the category is one of the recognized set.
func (c Category) Known() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Option is one selectable answer for a question. Correctness is derived by
// comparing the option text with Question.CorrectAnswer, never stored here.
type Option struct {
	Text string `json:"text"`
}

// Question models an MCQ question with exactly one correct answer value.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Media         string   `json:"media,omitempty"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is an ordered set of questions plus display metadata. Immutable once
// loaded into a session.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	CreatorID   string     `json:"creatorId,omitempty"`
	Questions   []Question `json:"questions"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
}

// Validate enforces the structural invariants a playable quiz must satisfy.
func (q Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return fmt.Errorf("%w: quiz %q has no questions", ErrInvalidQuiz, q.ID)
	}
	for i, question := range q.Questions {
		if len(question.Options) < 2 {
			return fmt.Errorf("%w: question %d has fewer than two options", ErrInvalidQuiz, i)
		}
		matches := 0
		for _, opt := range question.Options {
			if opt.Text == question.CorrectAnswer {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("%w: question %d has %d options matching the correct answer", ErrInvalidQuiz, i, matches)
		}
	}
	return nil
}

// AnswerRecord is the immutable outcome for one question in one session.
// SelectedAnswer is nil when the question timed out with no selection.
// CorrectAnswer captures the canonical value at evaluation time so the record
// stays displayable even if the question set later changes.
type AnswerRecord struct {
	QuestionID     string  `json:"questionId"`
	SelectedAnswer *string `json:"selectedAnswer"`
	Correct        bool    `json:"correct"`
	CorrectAnswer  string  `json:"correctAnswer"`
}

// Result is the finalized outcome of one play-through. Created exactly once at
// session completion; the repository assigns the identity.
type Result struct {
	ID             int64          `json:"id"`
	QuizID         string         `json:"quizId"`
	UserID         string         `json:"userId"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Answers        []AnswerRecord `json:"answers"`
	Analysis       string         `json:"analysis"`
	CompletedAt    time.Time      `json:"completedAt"`
}

// Comment is a user remark attached to a quiz.
type Comment struct {
	ID        int64     `json:"id"`
	QuizID    string    `json:"quizId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	Upvotes   int       `json:"upvotes"`
	CreatedAt time.Time `json:"createdAt"`
}
