package app

import "quixie-quiz-service/internal/domain"

// Score is the tally derived from an answer log.
type Score struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Aggregate counts correct records in the log. Pure, order-independent and
// idempotent; callers recompute it on every transition instead of caching.
func Aggregate(records []domain.AnswerRecord) Score {
	score := 0
	for _, record := range records {
		if record.Correct {
			score++
		}
	}
	return Score{Score: score, Total: len(records)}
}
