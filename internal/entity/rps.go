package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/console-games/internal/apperror"
)

type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
	Lizard   Choice = "lizard"
	Spock    Choice = "spock"
)

const (
	VariantClassic     = "classic"
	VariantLizardSpock = "lizard-spock"
)

// beats - each choice and the choices it defeats.
var beats = map[Choice][]Choice{
	Rock:     {Scissors, Lizard},
	Paper:    {Rock, Spock},
	Scissors: {Paper, Lizard},
	Lizard:   {Spock, Paper},
	Spock:    {Rock, Scissors},
}

// ChoicesFor - the active choice set of a rules variant.
func ChoicesFor(variant string) ([]Choice, error) {
	switch variant {
	case VariantClassic:
		return []Choice{Rock, Paper, Scissors}, nil
	case VariantLizardSpock:
		return []Choice{Rock, Paper, Scissors, Lizard, Spock}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownVariant, variant)
	}
}

// Beats - reports whether a defeats b.
func Beats(a, b Choice) bool {
	return slices.Contains(beats[a], b)
}

func DetermineWinner(human, computer Choice) (Outcome, error) {
	switch {
	case human == computer:
		return OutcomeTie, nil
	case Beats(human, computer):
		return OutcomeHuman, nil
	case Beats(computer, human):
		return OutcomeComputer, nil
	default:
		return "", fmt.Errorf("%w: %s vs %s", apperror.ErrUndefinedOutcome, human, computer)
	}
}

// ChoiceAliases - maps every full name and its shortest distinguishing prefix to the choice.
func ChoiceAliases(choices []Choice) map[string]Choice {
	aliases := make(map[string]Choice, len(choices)*2)
	for _, choice := range choices {
		aliases[string(choice)] = choice
	}

	for _, choice := range choices {
		name := string(choice)

		needed := 1
		for _, other := range choices {
			if other == choice {
				continue
			}

			needed = max(needed, commonPrefixLen(name, string(other))+1)
		}

		if needed <= len(name) {
			aliases[name[:needed]] = choice
		}
	}

	return aliases
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

// Round - one throw of a match.
type Round struct {
	Human    Choice `json:"human"`
	Computer Choice `json:"computer"`
}

type MoveHistory struct {
	rounds []Round
}

func NewMoveHistory() *MoveHistory {
	return &MoveHistory{}
}

func (that *MoveHistory) Log(human, computer Choice) {
	that.rounds = append(that.rounds, Round{Human: human, Computer: computer})
}

func (that *MoveHistory) Rounds() []Round {
	return append([]Round(nil), that.rounds...)
}

func (that *MoveHistory) HumanMoves() []Choice {
	moves := make([]Choice, 0, len(that.rounds))
	for _, round := range that.rounds {
		moves = append(moves, round.Human)
	}

	return moves
}

func (that *MoveHistory) Len() int {
	return len(that.rounds)
}

func (that *MoveHistory) Reset() {
	that.rounds = nil
}

// Scoreboard - match wins per side, ties are not counted.
type Scoreboard struct {
	Human    int
	Computer int
}

func (that *Scoreboard) Increment(outcome Outcome) {
	switch outcome {
	case OutcomeHuman:
		that.Human++
	case OutcomeComputer:
		that.Computer++
	}
}

// Leader - the side that reached target wins, or OutcomeTie while nobody has.
func (that *Scoreboard) Leader(target int) Outcome {
	switch {
	case that.Human >= target:
		return OutcomeHuman
	case that.Computer >= target:
		return OutcomeComputer
	default:
		return OutcomeTie
	}
}

func (that *Scoreboard) HasWinner(target int) bool {
	return that.Leader(target) != OutcomeTie
}

func (that *Scoreboard) Reset() {
	that.Human = 0
	that.Computer = 0
}
