package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

const (
	StrategyRandom   = "random"
	StrategyAdaptive = "adaptive"
)

var ErrUnknownStrategy = errors.New("unknown computer strategy")

type RandomRPSBot struct {
	random pkg.Random
}

func NewRandomRPSBot(random pkg.Random) *RandomRPSBot {
	return &RandomRPSBot{random: random}
}

func (that *RandomRPSBot) ChooseMove(_ context.Context, legal []entity.Choice) (entity.Choice, error) {
	if len(legal) == 0 {
		return "", ErrNoAvailableMoves
	}

	return legal[that.random.Intn(len(legal))], nil
}

type humanMoves interface {
	HumanMoves() []entity.Choice
}

// AdaptiveRPSBot - plays the choice that would have done best against every human move so far.
type AdaptiveRPSBot struct {
	random  pkg.Random
	history humanMoves
}

func NewAdaptiveRPSBot(random pkg.Random, history humanMoves) *AdaptiveRPSBot {
	return &AdaptiveRPSBot{
		random:  random,
		history: history,
	}
}

func (that *AdaptiveRPSBot) ChooseMove(_ context.Context, legal []entity.Choice) (entity.Choice, error) {
	if len(legal) == 0 {
		return "", ErrNoAvailableMoves
	}

	past := that.history.HumanMoves()
	if len(past) == 0 {
		return legal[that.random.Intn(len(legal))], nil
	}

	best := legal[0]
	bestScore := winProbability(best, past)
	for _, candidate := range legal[1:] {
		if score := winProbability(candidate, past); score > bestScore {
			best, bestScore = candidate, score
		}
	}

	return best, nil
}

// winProbability - (wins - losses) / total of candidate played against each past move.
func winProbability(candidate entity.Choice, past []entity.Choice) float64 {
	wins, losses := 0, 0
	for _, move := range past {
		switch {
		case entity.Beats(candidate, move):
			wins++
		case entity.Beats(move, candidate):
			losses++
		}
	}

	return float64(wins-losses) / float64(len(past))
}

// RPSPicker - chooses a throw among the legal choices.
type RPSPicker interface {
	ChooseMove(ctx context.Context, legal []entity.Choice) (entity.Choice, error)
}

// NewRPSBot - picks the computer strategy by name.
func NewRPSBot(strategy string, random pkg.Random, history humanMoves) (RPSPicker, error) {
	switch strategy {
	case StrategyRandom:
		return NewRandomRPSBot(random), nil
	case StrategyAdaptive:
		return NewAdaptiveRPSBot(random, history), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
