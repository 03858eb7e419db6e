package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const (
	resultsKey = "gomoku:results"
	winsKey    = "gomoku:wins"
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
	CountWins(ctx context.Context, name string) (int64, error)
}

type dbResult struct {
	client       *redis.Client
	historyLimit int64
}

// NewResultRepository keeps the newest historyLimit results; zero or less keeps all of them.
func NewResultRepository(client *redis.Client, historyLimit int64) ResultRepository {
	return &dbResult{
		client:       client,
		historyLimit: historyLimit,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, resultsKey, resultJSON)
		if that.historyLimit > 0 {
			pipe.LTrim(ctx, resultsKey, 0, that.historyLimit-1)
		}
		if result.HasWinner() {
			pipe.HIncrBy(ctx, winsKey, result.Winner, 1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// Recent returns up to limit results, newest first.
func (that *dbResult) Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		return []*entity.MatchResult{}, nil
	}

	response, err := that.client.LRange(ctx, resultsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	results := make([]*entity.MatchResult, 0, len(response))
	for _, raw := range response {
		var result entity.MatchResult
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) CountWins(ctx context.Context, name string) (int64, error) {
	wins, err := that.client.HGet(ctx, winsKey, name).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("%w: wins of %s", apperror.ErrNotFound, name)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count wins: %w", err)
	}

	return wins, nil
}
