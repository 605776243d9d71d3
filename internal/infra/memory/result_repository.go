package memory

import (
	"context"
	"sort"
	"sync"

	"quixie-quiz-service/internal/domain"
)

// ResultRepository keeps finalized results in memory with auto-assigned ids.
type ResultRepository struct {
	mu      sync.RWMutex
	nextID  int64
	results map[int64]domain.Result
}

func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		nextID:  1,
		results: make(map[int64]domain.Result),
	}
}

func (r *ResultRepository) CreateResult(_ context.Context, result domain.Result) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result.ID = r.nextID
	r.nextID++
	r.results[result.ID] = result
	return result, nil
}

func (r *ResultRepository) GetResult(_ context.Context, id int64) (domain.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[id]
	if !ok {
		return domain.Result{}, domain.ErrResultNotFound
	}
	return result, nil
}

func (r *ResultRepository) ResultsByUser(_ context.Context, userID string) ([]domain.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(result domain.Result) bool { return result.UserID == userID }), nil
}

func (r *ResultRepository) ResultsByQuiz(_ context.Context, quizID string) ([]domain.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(result domain.Result) bool { return result.QuizID == quizID }), nil
}

func (r *ResultRepository) filterLocked(keep func(domain.Result) bool) []domain.Result {
	matched := make([]domain.Result, 0, len(r.results))
	for _, result := range r.results {
		if keep(result) {
			matched = append(matched, result)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched
}
