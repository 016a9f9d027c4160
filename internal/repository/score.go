package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/console-games/internal/entity"
)

var (
	ErrEmptySessionID = errors.New("session id is empty")
	ErrInvalidResult  = errors.New("round result has no known outcome")
)

// ScoreRepository - keeps the outcome tally of a session.
type ScoreRepository interface {
	Record(ctx context.Context, sessionID string, result entity.RoundResult) error
	Tally(ctx context.Context, sessionID string) (entity.Tally, error)
}

type memoryScore struct {
	mu      sync.Mutex
	tallies map[string]entity.Tally
}

// NewMemoryScoreRepository - the default store, it lives as long as the process.
func NewMemoryScoreRepository() ScoreRepository {
	return &memoryScore{
		tallies: make(map[string]entity.Tally),
	}
}

func (that *memoryScore) Record(_ context.Context, sessionID string, result entity.RoundResult) error {
	if err := validate(sessionID, result); err != nil {
		return err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	tally := that.tallies[sessionID]
	tally.Record(result.Outcome)
	that.tallies[sessionID] = tally

	return nil
}

func (that *memoryScore) Tally(_ context.Context, sessionID string) (entity.Tally, error) {
	if sessionID == "" {
		return entity.Tally{}, ErrEmptySessionID
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return that.tallies[sessionID], nil
}

func validate(sessionID string, result entity.RoundResult) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}

	switch result.Outcome {
	case entity.OutcomeHuman, entity.OutcomeComputer, entity.OutcomeTie:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidResult, result.Outcome)
	}
}
