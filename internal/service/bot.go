package service

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/console-games/internal/entity"
	"github.com/rocketscienceinc/console-games/internal/pkg"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// TicTacToeBot - wins when it can, blocks when it must, then takes the center, then plays randomly.
type TicTacToeBot struct {
	marker   entity.Marker
	opponent entity.Marker
	random   pkg.Random
}

func NewTicTacToeBot(marker, opponent entity.Marker, random pkg.Random) *TicTacToeBot {
	return &TicTacToeBot{
		marker:   marker,
		opponent: opponent,
		random:   random,
	}
}

func (that *TicTacToeBot) ChooseCell(_ context.Context, board *entity.Board) (int, error) {
	availableCells := board.EmptyCellIDs()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	if cell, ok := completingCell(board, that.marker); ok {
		return cell, nil
	}

	if cell, ok := completingCell(board, that.opponent); ok {
		return cell, nil
	}

	if marker, _ := board.MarkerAt(entity.CenterCell); marker == entity.EmptyMarker {
		return entity.CenterCell, nil
	}

	return availableCells[that.random.Intn(len(availableCells))], nil
}

// completingCell - the empty cell of the first line where marker already holds the other two.
func completingCell(board *entity.Board, marker entity.Marker) (int, bool) {
	for _, line := range entity.WinningLines {
		if board.CountMarkersInGroup(marker, line[:]) != len(line)-1 {
			continue
		}

		for _, id := range line {
			if current, _ := board.MarkerAt(id); current == entity.EmptyMarker {
				return id, true
			}
		}
	}

	return 0, false
}
