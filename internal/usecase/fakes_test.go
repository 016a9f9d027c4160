package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

var (
	errScriptExhausted = errors.New("script exhausted")
	errSomeError       = errors.New("some error")
	errRedisDown       = errors.New("redis down")
)

const testSessionID = "session-1"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

type scriptedCells struct {
	cells []int
	calls int
}

func (that *scriptedCells) ChooseCell(_ context.Context, _ *entity.Board) (int, error) {
	if that.calls >= len(that.cells) {
		return 0, errScriptExhausted
	}

	cell := that.cells[that.calls]
	that.calls++

	return cell, nil
}

// firstFree - always takes the lowest free square.
type firstFree struct{}

func (firstFree) ChooseCell(_ context.Context, board *entity.Board) (int, error) {
	ids := board.EmptyCellIDs()
	if len(ids) == 0 {
		return 0, errScriptExhausted
	}

	return ids[0], nil
}

type scriptedHits struct {
	answers []bool
	calls   int
}

func (that *scriptedHits) WantsHit(_ context.Context) (bool, error) {
	defer func() { that.calls++ }()

	if that.calls >= len(that.answers) {
		return false, nil
	}

	return that.answers[that.calls], nil
}

type fixedPolicy bool

func (that fixedPolicy) WantsHit(_ *entity.Hand) bool {
	return bool(that)
}

type scriptedMoves struct {
	moves []entity.Choice
	legal [][]entity.Choice
	err   error
}

func (that *scriptedMoves) ChooseMove(_ context.Context, legal []entity.Choice) (entity.Choice, error) {
	if that.err != nil {
		return "", that.err
	}

	if len(that.legal) >= len(that.moves) {
		return "", errScriptExhausted
	}

	that.legal = append(that.legal, legal)

	return that.moves[len(that.legal)-1], nil
}

func repeatMove(choice entity.Choice, times int) []entity.Choice {
	moves := make([]entity.Choice, times)
	for i := range moves {
		moves[i] = choice
	}

	return moves
}

// stackedDeck - cards are dealt in the order given.
func stackedDeck(cards ...*entity.Card) *entity.Deck {
	deck := entity.NewDeck(0, pkg.NewSeededRandom(1))
	for i := len(cards) - 1; i >= 0; i-- {
		deck.Return(cards[i])
	}

	return deck
}

// stubGame - a RoundGame that only counts its calls.
type stubGame struct {
	outcome     entity.Outcome
	setupErr    error
	playErr     error
	canContinue bool

	setups      int
	rounds      int
	completions int
	goodbyes    int
}

func (that *stubGame) Name() string {
	return "stub"
}

func (that *stubGame) Welcome() []string {
	return []string{"welcome"}
}

func (that *stubGame) Goodbye() []string {
	that.goodbyes++
	return []string{"goodbye"}
}

func (that *stubGame) Setup(_ context.Context) error {
	that.setups++
	return that.setupErr
}

func (that *stubGame) PlayRound(_ context.Context) error {
	that.rounds++
	return that.playErr
}

func (that *stubGame) CompleteRound(_ context.Context) (entity.RoundResult, error) {
	that.completions++
	return entity.RoundResult{Game: that.Name(), Outcome: that.outcome}, nil
}

func (that *stubGame) CanContinue() bool {
	return that.canContinue
}
