package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/console-games/internal/entity"
)

type dbScore struct {
	client *redis.Client
}

// NewScoreRepository - stores the tally as a hash under score:<session>, one field per outcome.
func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

func (that *dbScore) Record(ctx context.Context, sessionID string, result entity.RoundResult) error {
	if err := validate(sessionID, result); err != nil {
		return err
	}

	err := that.client.HIncrBy(ctx, tallyKey(sessionID), string(result.Outcome), 1).Err()
	if err != nil {
		return fmt.Errorf("failed to record round result: %w", err)
	}

	return nil
}

func (that *dbScore) Tally(ctx context.Context, sessionID string) (entity.Tally, error) {
	if sessionID == "" {
		return entity.Tally{}, ErrEmptySessionID
	}

	fields, err := that.client.HGetAll(ctx, tallyKey(sessionID)).Result()
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	var tally entity.Tally
	for outcome, raw := range fields {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return entity.Tally{}, fmt.Errorf("failed to parse %s count %q: %w", outcome, raw, err)
		}

		switch entity.Outcome(outcome) {
		case entity.OutcomeHuman:
			tally.Human = count
		case entity.OutcomeComputer:
			tally.Computer = count
		case entity.OutcomeTie:
			tally.Ties = count
		}
	}

	return tally, nil
}

func tallyKey(sessionID string) string {
	return "score:" + sessionID
}
