package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"quixie-quiz-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// ResultRepository persists finalized results in Postgres. The answer log is
// stored as JSONB so records keep their order and nullable selections.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

func (r *ResultRepository) CreateResult(ctx context.Context, result domain.Result) (domain.Result, error) {
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return domain.Result{}, fmt.Errorf("marshal answers: %w", err)
	}
	err = r.pool.QueryRow(ctx,
		`INSERT INTO results (quiz_id, user_id, score, total_questions, analysis, answers, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		result.QuizID, result.UserID, result.Score, result.TotalQuestions, result.Analysis, answers, result.CompletedAt,
	).Scan(&result.ID)
	if err != nil {
		return domain.Result{}, fmt.Errorf("insert result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) GetResult(ctx context.Context, id int64) (domain.Result, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, quiz_id, user_id, score, total_questions, analysis, answers, completed_at
		 FROM results WHERE id=$1`, id)
	result, err := scanResult(row)
	if err == pgx.ErrNoRows {
		return domain.Result{}, domain.ErrResultNotFound
	}
	if err != nil {
		return domain.Result{}, fmt.Errorf("load result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) ResultsByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	return r.query(ctx,
		`SELECT id, quiz_id, user_id, score, total_questions, analysis, answers, completed_at
		 FROM results WHERE user_id=$1 ORDER BY id`, userID)
}

func (r *ResultRepository) ResultsByQuiz(ctx context.Context, quizID string) ([]domain.Result, error) {
	return r.query(ctx,
		`SELECT id, quiz_id, user_id, score, total_questions, analysis, answers, completed_at
		 FROM results WHERE quiz_id=$1 ORDER BY id`, quizID)
}

func (r *ResultRepository) query(ctx context.Context, sql string, arg interface{}) ([]domain.Result, error) {
	rows, err := r.pool.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var results []domain.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanResult(row rowScanner) (domain.Result, error) {
	var result domain.Result
	var answers []byte
	if err := row.Scan(&result.ID, &result.QuizID, &result.UserID, &result.Score,
		&result.TotalQuestions, &result.Analysis, &answers, &result.CompletedAt); err != nil {
		return domain.Result{}, err
	}
	if err := json.Unmarshal(answers, &result.Answers); err != nil {
		return domain.Result{}, err
	}
	return result, nil
}
