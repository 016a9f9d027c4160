package entity

const (
	GameTicTacToe = "tictactoe"
	GameTwentyOne = "twentyone"
	GameRPS       = "rps"
)

// Games - the selectable games in menu order.
var Games = []string{GameTicTacToe, GameTwentyOne, GameRPS}

type Outcome string

const (
	OutcomeHuman    Outcome = "human"
	OutcomeComputer Outcome = "computer"
	OutcomeTie      Outcome = "tie"
)

// RoundResult - what a finished round reports.
type RoundResult struct {
	Game    string   `json:"game"`
	Outcome Outcome  `json:"outcome"`
	Summary []string `json:"summary,omitempty"`
}

// Tally - outcome counters across the rounds of a session.
type Tally struct {
	Human    int `json:"human"`
	Computer int `json:"computer"`
	Ties     int `json:"ties"`
}

func (that *Tally) Record(outcome Outcome) {
	switch outcome {
	case OutcomeHuman:
		that.Human++
	case OutcomeComputer:
		that.Computer++
	case OutcomeTie:
		that.Ties++
	}
}

func (that Tally) Rounds() int {
	return that.Human + that.Computer + that.Ties
}

// OutcomeFromMarker - maps the board winner to an outcome.
func OutcomeFromMarker(winner, human, computer Marker) Outcome {
	switch winner {
	case human:
		return OutcomeHuman
	case computer:
		return OutcomeComputer
	default:
		return OutcomeTie
	}
}

// DetermineTwentyOneWinner - busted hands count as zero, the higher score wins.
func DetermineTwentyOneWinner(human, dealer *Hand, target int) Outcome {
	humanScore := human.Score(target)
	dealerScore := dealer.Score(target)

	if humanScore > target {
		humanScore = 0
	}

	if dealerScore > target {
		dealerScore = 0
	}

	switch {
	case humanScore > dealerScore:
		return OutcomeHuman
	case dealerScore > humanScore:
		return OutcomeComputer
	default:
		return OutcomeTie
	}
}
