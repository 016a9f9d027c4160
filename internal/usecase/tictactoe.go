package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/view"
)

type cellChooser interface {
	ChooseCell(ctx context.Context, board *entity.Board) (int, error)
}

// TicTacToe - one board per round, the human always moves first.
type TicTacToe struct {
	console        consoleDep
	human          cellChooser
	computer       cellChooser
	humanMarker    entity.Marker
	computerMarker entity.Marker

	board *entity.Board
}

func NewTicTacToe(console consoleDep, human, computer cellChooser, humanMarker, computerMarker entity.Marker) *TicTacToe {
	return &TicTacToe{
		console:        console,
		human:          human,
		computer:       computer,
		humanMarker:    humanMarker,
		computerMarker: computerMarker,
		board:          entity.NewBoard(),
	}
}

func (that *TicTacToe) Name() string {
	return entity.GameTicTacToe
}

func (that *TicTacToe) Welcome() []string {
	return view.Welcome(entity.GameTicTacToe, 0)
}

func (that *TicTacToe) Goodbye() []string {
	return view.Goodbye(entity.GameTicTacToe)
}

func (that *TicTacToe) Board() *entity.Board {
	return that.board
}

func (that *TicTacToe) Setup(_ context.Context) error {
	that.board = entity.NewBoard()
	that.console.Display(view.Board(that.board))

	return nil
}

func (that *TicTacToe) PlayRound(ctx context.Context) error {
	for !that.board.IsGameOver() {
		if err := that.takeTurn(ctx, that.human, that.humanMarker); err != nil {
			return fmt.Errorf("human turn: %w", err)
		}

		if that.board.IsGameOver() {
			break
		}

		if err := that.takeTurn(ctx, that.computer, that.computerMarker); err != nil {
			return fmt.Errorf("computer turn: %w", err)
		}

		that.console.Display(view.Board(that.board))
	}

	return nil
}

func (that *TicTacToe) CompleteRound(_ context.Context) (entity.RoundResult, error) {
	outcome := entity.OutcomeFromMarker(that.board.Winner(), that.humanMarker, that.computerMarker)

	summary := append(view.Board(that.board), view.Verdict(entity.GameTicTacToe, outcome))
	that.console.Display(summary)

	return entity.RoundResult{
		Game:    entity.GameTicTacToe,
		Outcome: outcome,
		Summary: summary,
	}, nil
}

func (that *TicTacToe) CanContinue() bool {
	return true
}

// takeTurn - a chosen cell is re-checked against the free cells before it is marked.
func (that *TicTacToe) takeTurn(ctx context.Context, chooser cellChooser, marker entity.Marker) error {
	if that.board.IsGameOver() {
		return apperror.ErrGameFinished
	}

	cell, err := chooser.ChooseCell(ctx, that.board)
	if err != nil {
		return err
	}

	if !slices.Contains(that.board.EmptyCellIDs(), cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrIllegalMove, cell)
	}

	ok, err := that.board.MarkCellAt(cell, marker)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%w: cell %d", apperror.ErrIllegalMove, cell)
	}

	return nil
}
