package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

type prompter interface {
	RequestChoice(ctx context.Context, prompt string, validChoices []string) (string, error)
	RequestYesNo(ctx context.Context, prompt string) (bool, error)
}

// HumanTicTacToe - asks the player for a square until a free one is entered.
type HumanTicTacToe struct {
	prompter prompter
}

func NewHumanTicTacToe(prompter prompter) *HumanTicTacToe {
	return &HumanTicTacToe{prompter: prompter}
}

func (that *HumanTicTacToe) ChooseCell(ctx context.Context, board *entity.Board) (int, error) {
	ids := board.EmptyCellIDs()
	if len(ids) == 0 {
		return 0, ErrNoAvailableMoves
	}

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		valid = append(valid, strconv.Itoa(id))
	}

	prompt := fmt.Sprintf("Choose a square (%s): ", pkg.JoinOr(valid, ", ", "or"))

	answer, err := that.prompter.RequestChoice(ctx, prompt, valid)
	if err != nil {
		return 0, fmt.Errorf("failed to read square: %w", err)
	}

	cell, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("failed to parse square %q: %w", answer, err)
	}

	return cell, nil
}

// HumanRPS - asks for a throw, full names and short aliases are accepted.
type HumanRPS struct {
	prompter prompter
}

func NewHumanRPS(prompter prompter) *HumanRPS {
	return &HumanRPS{prompter: prompter}
}

func (that *HumanRPS) ChooseMove(ctx context.Context, legal []entity.Choice) (entity.Choice, error) {
	if len(legal) == 0 {
		return "", ErrNoAvailableMoves
	}

	aliases := entity.ChoiceAliases(legal)

	valid := make([]string, 0, len(aliases))
	for alias := range aliases {
		valid = append(valid, alias)
	}
	slices.Sort(valid)

	names := make([]string, 0, len(legal))
	for _, choice := range legal {
		names = append(names, string(choice))
	}

	prompt := fmt.Sprintf("Please choose %s: ", pkg.JoinOr(names, ", ", "or"))

	answer, err := that.prompter.RequestChoice(ctx, prompt, valid)
	if err != nil {
		return "", fmt.Errorf("failed to read choice: %w", err)
	}

	return aliases[answer], nil
}

// HumanGambler - decides hit or stay at the prompt.
type HumanGambler struct {
	prompter prompter
}

func NewHumanGambler(prompter prompter) *HumanGambler {
	return &HumanGambler{prompter: prompter}
}

func (that *HumanGambler) WantsHit(ctx context.Context) (bool, error) {
	hit, err := that.prompter.RequestYesNo(ctx, "Do you want to hit?")
	if err != nil {
		return false, fmt.Errorf("failed to read hit or stay: %w", err)
	}

	return hit, nil
}
