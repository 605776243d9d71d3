package memory

import (
	"context"
	"sort"
	"sync"

	"quixie-quiz-service/internal/domain"
)

// CommentRepository keeps quiz comments in memory with auto-assigned ids.
type CommentRepository struct {
	mu       sync.RWMutex
	nextID   int64
	comments map[int64]domain.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		nextID:   1,
		comments: make(map[int64]domain.Comment),
	}
}

func (r *CommentRepository) CommentsByQuiz(_ context.Context, quizID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]domain.Comment, 0, len(r.comments))
	for _, comment := range r.comments {
		if comment.QuizID == quizID {
			matched = append(matched, comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *CommentRepository) CreateComment(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = r.nextID
	r.nextID++
	r.comments[comment.ID] = comment
	return comment, nil
}

func (r *CommentRepository) UpvoteComment(_ context.Context, id int64) (domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	comment.Upvotes++
	r.comments[id] = comment
	return comment, nil
}
