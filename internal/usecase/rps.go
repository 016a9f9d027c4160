package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/view"
)

type movePicker interface {
	ChooseMove(ctx context.Context, legal []entity.Choice) (entity.Choice, error)
}

// RPS - a round is a match of throws played until one side reaches the winning score.
type RPS struct {
	console  consoleDep
	human    movePicker
	computer movePicker

	choices      []entity.Choice
	winningScore int
	history      *entity.MoveHistory
	score        *entity.Scoreboard
}

// NewRPS - history is shared with any provider that learns from past human moves.
func NewRPS(console consoleDep, human, computer movePicker, choices []entity.Choice, winningScore int, history *entity.MoveHistory) *RPS {
	return &RPS{
		console:      console,
		human:        human,
		computer:     computer,
		choices:      choices,
		winningScore: winningScore,
		history:      history,
		score:        &entity.Scoreboard{},
	}
}

func (that *RPS) Name() string {
	return entity.GameRPS
}

func (that *RPS) Welcome() []string {
	return view.Welcome(entity.GameRPS, that.winningScore)
}

func (that *RPS) Goodbye() []string {
	return view.Goodbye(entity.GameRPS)
}

func (that *RPS) Score() entity.Scoreboard {
	return *that.score
}

func (that *RPS) Setup(_ context.Context) error {
	that.history.Reset()
	that.score.Reset()

	return nil
}

func (that *RPS) PlayRound(ctx context.Context) error {
	for !that.score.HasWinner(that.winningScore) {
		if err := that.throw(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (that *RPS) CompleteRound(_ context.Context) (entity.RoundResult, error) {
	outcome := that.score.Leader(that.winningScore)

	summary := []string{view.Score(that.score)}
	if outcome == entity.OutcomeHuman {
		summary = append(summary, "You won the match!")
	} else {
		summary = append(summary, "The computer won the match.")
	}
	summary = append(summary, "")
	that.console.Display(summary)

	return entity.RoundResult{
		Game:    entity.GameRPS,
		Outcome: outcome,
		Summary: summary,
	}, nil
}

func (that *RPS) CanContinue() bool {
	return true
}

func (that *RPS) throw(ctx context.Context) error {
	human, err := that.pick(ctx, that.human)
	if err != nil {
		return fmt.Errorf("human throw: %w", err)
	}

	computer, err := that.pick(ctx, that.computer)
	if err != nil {
		return fmt.Errorf("computer throw: %w", err)
	}

	that.history.Log(human, computer)

	outcome, err := entity.DetermineWinner(human, computer)
	if err != nil {
		return err
	}
	that.score.Increment(outcome)

	lines := []string{
		fmt.Sprintf("You chose: %s", human),
		fmt.Sprintf("The computer chose: %s", computer),
		view.Verdict(entity.GameRPS, outcome),
		view.Score(that.score),
		"",
	}
	lines = append(lines, view.History(that.history)...)
	that.console.Display(append(lines, ""))

	return nil
}

func (that *RPS) pick(ctx context.Context, picker movePicker) (entity.Choice, error) {
	choice, err := picker.ChooseMove(ctx, slices.Clone(that.choices))
	if err != nil {
		return "", err
	}

	if !slices.Contains(that.choices, choice) {
		return "", fmt.Errorf("%w: %q", apperror.ErrIllegalMove, choice)
	}

	return choice, nil
}
