package redis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quixie-quiz-service/internal/domain"
	"quixie-quiz-service/internal/infra/memory"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

type countingLoader struct {
	mu    sync.Mutex
	calls int
	inner memory.QuizLoader
}

func (l *countingLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	l.mu.Lock()
	l.calls++
	l.mu.Unlock()
	return l.inner.LoadQuiz(ctx, quizID)
}

func (l *countingLoader) LoadAll(ctx context.Context) ([]domain.Quiz, error) {
	return l.inner.LoadAll(ctx)
}

func (l *countingLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func sampleQuiz() domain.Quiz {
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
				Explanation:   "Paris has been the capital since 987.",
			},
		},
	}
}

func TestGetQuizFillsCacheOnce(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	loader := &countingLoader{inner: memory.NewStaticQuizLoader(map[string]domain.Quiz{"quiz-1": sampleQuiz()})}
	repo := NewQuizRepository(client, loader, 5*time.Minute)

	for i := 0; i < 3; i++ {
		quiz, err := repo.GetQuiz(ctx, "quiz-1")
		if err != nil {
			t.Fatalf("get quiz: %v", err)
		}
		if quiz.Title != "World Capitals Challenge" || len(quiz.Questions) != 1 {
			t.Fatalf("unexpected quiz: %+v", quiz)
		}
		if quiz.Questions[0].Explanation == "" {
			t.Fatalf("expected full document in cache, explanation lost")
		}
	}
	if got := loader.callCount(); got != 1 {
		t.Fatalf("expected a single loader hit, got %d", got)
	}

	if exists, err := client.Exists(ctx, "quiz:quiz-1").Result(); err != nil || exists != 1 {
		t.Fatalf("expected cache key present, got exists=%d err=%v", exists, err)
	}
}

func TestGetQuizMissPropagatesNotFound(t *testing.T) {
	client := newTestClient(t)
	loader := memory.NewStaticQuizLoader(map[string]domain.Quiz{"quiz-1": sampleQuiz()})
	repo := NewQuizRepository(client, loader, time.Minute)

	if _, err := repo.GetQuiz(context.Background(), "missing"); !errors.Is(err, domain.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestListQuizzesBypassesCache(t *testing.T) {
	client := newTestClient(t)
	loader := &countingLoader{inner: memory.NewStaticQuizLoader(map[string]domain.Quiz{"quiz-1": sampleQuiz()})}
	repo := NewQuizRepository(client, loader, time.Minute)

	quizzes, err := repo.ListQuizzes(context.Background())
	if err != nil {
		t.Fatalf("list quizzes: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "quiz-1" {
		t.Fatalf("unexpected catalog: %+v", quizzes)
	}
}
