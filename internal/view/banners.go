package view

import (
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/entity"
)

func Welcome(game string, target int) []string {
	switch game {
	case entity.GameTicTacToe:
		return []string{"Welcome to Tic-Tac-Toe!"}
	case entity.GameTwentyOne:
		lines := []string{"Let's play Twenty-One!", ""}
		return append(lines, Wrap(fmt.Sprintf(
			"Closest to %d without going over wins. If the dealer gets a natural "+
				"(%d on the deal) the round is over immediately and nobody draws. "+
				"Win a round and you get a dollar, lose one and the dealer takes it.",
			target, target), wrapWidth)...)
	case entity.GameRPS:
		return []string{fmt.Sprintf("Welcome to Rock, Paper, Scissors! First to %d wins the match.", target)}
	default:
		return nil
	}
}

func Goodbye(game string) []string {
	switch game {
	case entity.GameTicTacToe:
		return []string{"Thanks for playing Tic-Tac-Toe. Goodbye."}
	case entity.GameTwentyOne:
		return []string{"Thank you for playing Twenty-One. Goodbye."}
	case entity.GameRPS:
		return []string{"Thanks for playing Rock, Paper, Scissors."}
	default:
		return []string{"Goodbye."}
	}
}

// Verdict - the line reporting a round outcome from the human's point of view.
func Verdict(game string, outcome entity.Outcome) string {
	switch {
	case outcome == entity.OutcomeTie:
		return "It's a tie!"
	case game == entity.GameTwentyOne && outcome == entity.OutcomeHuman:
		return "User wins."
	case game == entity.GameTwentyOne:
		return "Dealer wins."
	case outcome == entity.OutcomeHuman:
		return "You win!"
	default:
		return "Computer wins!"
	}
}
