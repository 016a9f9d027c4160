package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/console-games/internal/view"
)

type Phase string

const (
	PhaseSetup           Phase = "setup"
	PhaseRoundInProgress Phase = "round-in-progress"
	PhaseRoundComplete   Phase = "round-complete"
	PhaseTerminated      Phase = "terminated"
)

// GameManager - runs the round loop shared by every game.
type GameManager struct {
	logger    *slog.Logger
	console   consoleDep
	scoreRepo scoreRepoDep
	sessionID string

	phase Phase
}

func NewGameManager(logger *slog.Logger, console consoleDep, scoreRepo scoreRepoDep, sessionID string) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		console:   console,
		scoreRepo: scoreRepo,
		sessionID: sessionID,
	}
}

func (that *GameManager) Phase() Phase {
	return that.phase
}

// Play - drives setup, round and completion until the player stops or the game forbids another round.
// Cancellation is only observed between rounds or when the console stops reading.
func (that *GameManager) Play(ctx context.Context, game RoundGame) error {
	log := that.logger.With("method", "Play", "game", game.Name())

	that.console.Display(game.Welcome())
	that.phase = PhaseSetup

	for {
		switch that.phase {
		case PhaseSetup:
			if ctx.Err() != nil {
				log.Info("context done before round", "error", ctx.Err())
				that.phase = PhaseTerminated
				continue
			}

			if err := game.Setup(ctx); err != nil {
				return fmt.Errorf("failed to set up round: %w", err)
			}
			that.phase = PhaseRoundInProgress

		case PhaseRoundInProgress:
			if err := game.PlayRound(ctx); err != nil {
				if isInterrupted(err) {
					log.Info("round interrupted")
					that.phase = PhaseTerminated
					continue
				}
				return fmt.Errorf("failed to play round: %w", err)
			}
			that.phase = PhaseRoundComplete

		case PhaseRoundComplete:
			next, err := that.completeRound(ctx, game)
			if err != nil {
				return err
			}
			that.phase = next

		case PhaseTerminated:
			that.console.Display(game.Goodbye())
			log.Info("session terminated")
			return nil
		}
	}
}

func (that *GameManager) completeRound(ctx context.Context, game RoundGame) (Phase, error) {
	log := that.logger.With("method", "completeRound", "game", game.Name())

	result, err := game.CompleteRound(ctx)
	if err != nil {
		return PhaseTerminated, fmt.Errorf("failed to complete round: %w", err)
	}

	log.Info("round finished", "outcome", result.Outcome)

	if err = that.scoreRepo.Record(ctx, that.sessionID, result); err != nil {
		log.Error("failed to record round result", "error", err)
	}

	tally, err := that.scoreRepo.Tally(ctx, that.sessionID)
	if err != nil {
		log.Error("failed to read session tally", "error", err)
	} else {
		that.console.Display([]string{view.Tally(tally), ""})
	}

	if !game.CanContinue() {
		return PhaseTerminated, nil
	}

	again, err := that.console.RequestYesNo(ctx, "Play again?")
	if err != nil {
		if isInterrupted(err) {
			return PhaseTerminated, nil
		}
		return PhaseTerminated, fmt.Errorf("failed to ask to play again: %w", err)
	}

	if !again {
		return PhaseTerminated, nil
	}

	return PhaseSetup, nil
}
