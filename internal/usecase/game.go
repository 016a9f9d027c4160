package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
)

type consoleDep interface {
	RequestChoice(ctx context.Context, prompt string, validChoices []string) (string, error)
	RequestYesNo(ctx context.Context, prompt string) (bool, error)
	Display(lines []string)
}

type scoreRepoDep interface {
	Record(ctx context.Context, sessionID string, result entity.RoundResult) error
	Tally(ctx context.Context, sessionID string) (entity.Tally, error)
}

// RoundGame - a game driven round by round by the GameManager.
type RoundGame interface {
	Name() string
	Welcome() []string
	Goodbye() []string

	// Setup - resets the shared state for a new round.
	Setup(ctx context.Context) error
	// PlayRound - alternates turns, human first, until the round is over.
	PlayRound(ctx context.Context) error
	// CompleteRound - evaluates and reports the finished round.
	CompleteRound(ctx context.Context) (entity.RoundResult, error)
	// CanContinue - false when the game itself forbids another round.
	CanContinue() bool
}

var ErrUnknownGame = errors.New("unknown game")

// SelectGame - asks which game to play when none is configured.
func SelectGame(ctx context.Context, console consoleDep, configured string) (string, error) {
	if configured != "" {
		if !slices.Contains(entity.Games, configured) {
			return "", fmt.Errorf("%w: %q", ErrUnknownGame, configured)
		}
		return configured, nil
	}

	game, err := console.RequestChoice(ctx, "Which game? (tictactoe, twentyone, rps): ", entity.Games)
	if err != nil {
		return "", fmt.Errorf("failed to select game: %w", err)
	}

	return game, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, apperror.ErrInterrupted) || errors.Is(err, context.Canceled)
}
