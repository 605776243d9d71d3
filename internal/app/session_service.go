package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"quixie-quiz-service/internal/domain"
)

// QuizRepository loads quiz content (from cache/backing store).
type QuizRepository interface {
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
}

// ResultRepository persists finalized results and serves them back for the
// results and profile pages.
type ResultRepository interface {
	CreateResult(ctx context.Context, result domain.Result) (domain.Result, error)
	GetResult(ctx context.Context, id int64) (domain.Result, error)
	ResultsByUser(ctx context.Context, userID string) ([]domain.Result, error)
	ResultsByQuiz(ctx context.Context, quizID string) ([]domain.Result, error)
}

// CommentRepository stores quiz comments.
type CommentRepository interface {
	CommentsByQuiz(ctx context.Context, quizID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	UpvoteComment(ctx context.Context, id int64) (domain.Comment, error)
}

// SessionStore tracks live sessions by key.
type SessionStore interface {
	Put(key string, session *Session)
	Get(key string) (*Session, bool)
	Delete(key string)
}

// SessionService contains the quiz play use cases: starting sessions,
// persisting results, and the read paths backing search and comments.
type SessionService struct {
	quizzes         QuizRepository
	results         ResultRepository
	comments        CommentRepository
	sessions        SessionStore
	composer        AnalysisComposer
	questionSeconds int
	tick            time.Duration
}

func NewSessionService(quizzes QuizRepository, results ResultRepository, comments CommentRepository, sessions SessionStore, composer AnalysisComposer) *SessionService {
	return &SessionService{
		quizzes:         quizzes,
		results:         results,
		comments:        comments,
		sessions:        sessions,
		composer:        composer,
		questionSeconds: DefaultQuestionSeconds,
		tick:            time.Second,
	}
}

// WithTiming overrides the per-question allowance and tick interval.
func (s *SessionService) WithTiming(questionSeconds int, tick time.Duration) *SessionService {
	if questionSeconds > 0 {
		s.questionSeconds = questionSeconds
	}
	if tick > 0 {
		s.tick = tick
	}
	return s
}

// StartSession loads and validates the quiz, then creates a live session for
// the user. An existing session for the same quiz and user is replaced.
func (s *SessionService) StartSession(ctx context.Context, quizID, userID string) (*Session, error) {
	quiz, err := s.quizzes.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if old, ok := s.sessions.Get(SessionKey(quizID, userID)); ok {
		old.Close()
	}
	session, err := NewSessionWithTiming(quiz, userID, s.composer, s.questionSeconds, s.tick)
	if err != nil {
		return nil, err
	}
	s.sessions.Put(session.Key(), session)
	return session, nil
}

// GetSession returns a live session by key.
func (s *SessionService) GetSession(key string) (*Session, error) {
	session, ok := s.sessions.Get(key)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// EndSession drops a live session, cancelling its timer. Results are not
// affected; abandoning mid-play simply discards the state.
func (s *SessionService) EndSession(key string) {
	if session, ok := s.sessions.Get(key); ok {
		session.Close()
	}
	s.sessions.Delete(key)
}

// SaveResult persists the finalized outcome of a completed session. The
// repository assigns the identity; repository failures propagate unchanged.
func (s *SessionService) SaveResult(ctx context.Context, session *Session) (domain.Result, error) {
	result := session.Result()
	if result == nil {
		return domain.Result{}, domain.ErrSessionNotComplete
	}
	return s.results.CreateResult(ctx, *result)
}

// GetResult fetches a stored result by id.
func (s *SessionService) GetResult(ctx context.Context, id int64) (domain.Result, error) {
	return s.results.GetResult(ctx, id)
}

// ResultsByUser lists a user's results, newest first.
func (s *SessionService) ResultsByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	results, err := s.results.ResultsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ID > results[j].ID })
	return results, nil
}

// ResultsByQuiz lists all results recorded for a quiz.
func (s *SessionService) ResultsByQuiz(ctx context.Context, quizID string) ([]domain.Result, error) {
	return s.results.ResultsByQuiz(ctx, quizID)
}

// SearchQuizzes matches the query against title, description and category,
// case-insensitively.
func (s *SessionService) SearchQuizzes(ctx context.Context, query string) ([]domain.Quiz, error) {
	quizzes, err := s.quizzes.ListQuizzes(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(query)
	matched := make([]domain.Quiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		if strings.Contains(strings.ToLower(quiz.Title), term) ||
			strings.Contains(strings.ToLower(quiz.Description), term) ||
			strings.Contains(strings.ToLower(string(quiz.Category)), term) {
			matched = append(matched, quiz)
		}
	}
	return matched, nil
}

// QuizzesByCategory filters the catalog down to one category.
func (s *SessionService) QuizzesByCategory(ctx context.Context, category domain.Category) ([]domain.Quiz, error) {
	quizzes, err := s.quizzes.ListQuizzes(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Quiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		if quiz.Category == category {
			matched = append(matched, quiz)
		}
	}
	return matched, nil
}

// CommentsForQuiz lists comments for a quiz, newest first.
func (s *SessionService) CommentsForQuiz(ctx context.Context, quizID string) ([]domain.Comment, error) {
	comments, err := s.comments.CommentsByQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

// AddComment attaches a comment to a quiz.
func (s *SessionService) AddComment(ctx context.Context, quizID, userID, text string) (domain.Comment, error) {
	return s.comments.CreateComment(ctx, domain.Comment{
		QuizID:    quizID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	})
}

// UpvoteComment increments a comment's upvote count.
func (s *SessionService) UpvoteComment(ctx context.Context, id int64) (domain.Comment, error) {
	return s.comments.UpvoteComment(ctx, id)
}
