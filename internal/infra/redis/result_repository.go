package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"quixie-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ResultRepository persists finalized results in Redis.
//
// Layout:
//
//	INCR  result:seq                  -> next identity
//	SET   result:{id}                 -> result JSON
//	RPUSH results:user:{userID} {id}  -> per-user index
//	RPUSH results:quiz:{quizID} {id}  -> per-quiz index
type ResultRepository struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) *ResultRepository {
	return &ResultRepository{client: client}
}

func (r *ResultRepository) CreateResult(ctx context.Context, result domain.Result) (domain.Result, error) {
	id, err := r.client.Incr(ctx, "result:seq").Result()
	if err != nil {
		return domain.Result{}, fmt.Errorf("assign result id: %w", err)
	}
	result.ID = id

	data, err := json.Marshal(result)
	if err != nil {
		return domain.Result{}, fmt.Errorf("marshal result: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.resultKey(id), data, 0)
	pipe.RPush(ctx, r.userKey(result.UserID), id)
	pipe.RPush(ctx, r.quizKey(result.QuizID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return domain.Result{}, fmt.Errorf("store result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) GetResult(ctx context.Context, id int64) (domain.Result, error) {
	data, err := r.client.Get(ctx, r.resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Result{}, domain.ErrResultNotFound
	}
	if err != nil {
		return domain.Result{}, fmt.Errorf("load result: %w", err)
	}
	var result domain.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.Result{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return result, nil
}

func (r *ResultRepository) ResultsByUser(ctx context.Context, userID string) ([]domain.Result, error) {
	return r.resultsByIndex(ctx, r.userKey(userID))
}

func (r *ResultRepository) ResultsByQuiz(ctx context.Context, quizID string) ([]domain.Result, error) {
	return r.resultsByIndex(ctx, r.quizKey(quizID))
}

func (r *ResultRepository) resultsByIndex(ctx context.Context, indexKey string) ([]domain.Result, error) {
	ids, err := r.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load result index: %w", err)
	}
	results := make([]domain.Result, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		result, err := r.GetResult(ctx, id)
		if errors.Is(err, domain.ErrResultNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *ResultRepository) resultKey(id int64) string {
	return "result:" + strconv.FormatInt(id, 10)
}

func (r *ResultRepository) userKey(userID string) string {
	return "results:user:" + userID
}

func (r *ResultRepository) quizKey(quizID string) string {
	return "results:quiz:" + quizID
}
