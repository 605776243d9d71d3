package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"quixie-quiz-service/internal/domain"
)

func TestResultRepositoryAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	first, err := repo.CreateResult(ctx, domain.Result{QuizID: "quiz-1", UserID: "u1", Score: 2, TotalQuestions: 3, CompletedAt: time.Now()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := repo.CreateResult(ctx, domain.Result{QuizID: "quiz-1", UserID: "u2", Score: 3, TotalQuestions: 3, CompletedAt: time.Now()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected sequential ids, got %d and %d", first.ID, second.ID)
	}

	loaded, err := repo.GetResult(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.UserID != "u1" || loaded.Score != 2 {
		t.Fatalf("unexpected result: %+v", loaded)
	}

	if _, err := repo.GetResult(ctx, 99); !errors.Is(err, domain.ErrResultNotFound) {
		t.Fatalf("expected ErrResultNotFound, got %v", err)
	}
}

func TestResultRepositoryFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewResultRepository()

	for _, result := range []domain.Result{
		{QuizID: "quiz-1", UserID: "u1"},
		{QuizID: "quiz-2", UserID: "u1"},
		{QuizID: "quiz-1", UserID: "u2"},
	} {
		if _, err := repo.CreateResult(ctx, result); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	byUser, err := repo.ResultsByUser(ctx, "u1")
	if err != nil || len(byUser) != 2 {
		t.Fatalf("expected 2 results for u1, got %d (%v)", len(byUser), err)
	}
	if byUser[0].ID > byUser[1].ID {
		t.Fatalf("expected ascending id order, got %+v", byUser)
	}

	byQuiz, err := repo.ResultsByQuiz(ctx, "quiz-1")
	if err != nil || len(byQuiz) != 2 {
		t.Fatalf("expected 2 results for quiz-1, got %d (%v)", len(byQuiz), err)
	}
}
