package entity

import (
	"fmt"

	"github.com/rocketscienceinc/console-games/internal/apperror"
)

type Marker string

const (
	EmptyMarker           Marker = " "
	DefaultHumanMarker    Marker = "X"
	DefaultComputerMarker Marker = "O"

	BoardSize  = 9
	CenterCell = 5
)

// WinningLines - the 3 rows, 3 columns and 2 diagonals of the grid, cell ids are 1-based row-major.
var WinningLines = [8][3]int{
	{1, 2, 3},
	{4, 5, 6},
	{7, 8, 9},
	{1, 4, 7},
	{2, 5, 8},
	{3, 6, 9},
	{1, 5, 9},
	{3, 5, 7},
}

type Cell struct {
	marker Marker
}

func (that *Cell) Marker() Marker {
	if that.marker == "" {
		return EmptyMarker
	}
	return that.marker
}

func (that *Cell) IsEmpty() bool {
	return that.Marker() == EmptyMarker
}

// SetMarker - marks the cell once, an occupied cell is never overwritten.
func (that *Cell) SetMarker(marker Marker) bool {
	if !that.IsEmpty() {
		return false
	}

	that.marker = marker
	return true
}

type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	board := &Board{}
	for i := range board.cells {
		board.cells[i] = Cell{marker: EmptyMarker}
	}

	return board
}

// EmptyCellIDs - returns the ids of unmarked cells in ascending order.
func (that *Board) EmptyCellIDs() []int {
	ids := make([]int, 0, BoardSize)
	for i := range that.cells {
		if that.cells[i].IsEmpty() {
			ids = append(ids, i+1)
		}
	}

	return ids
}

// MarkCellAt - places a marker. It returns false when the cell is already occupied.
func (that *Board) MarkCellAt(id int, marker Marker) (bool, error) {
	if !isValidCellID(id) {
		return false, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, id)
	}

	if marker == EmptyMarker || marker == "" {
		return false, fmt.Errorf("%w: %q", apperror.ErrInvalidMarker, marker)
	}

	return that.cells[id-1].SetMarker(marker), nil
}

func (that *Board) MarkerAt(id int) (Marker, error) {
	if !isValidCellID(id) {
		return EmptyMarker, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, id)
	}

	return that.cells[id-1].Marker(), nil
}

// CountMarkersInGroup - counts cells in ids holding marker. Invalid ids are skipped.
func (that *Board) CountMarkersInGroup(marker Marker, ids []int) int {
	count := 0
	for _, id := range ids {
		if isValidCellID(id) && that.cells[id-1].Marker() == marker {
			count++
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return len(that.EmptyCellIDs()) == 0
}

func (that *Board) IsWinner(marker Marker) bool {
	if marker == EmptyMarker {
		return false
	}

	for _, line := range WinningLines {
		if that.CountMarkersInGroup(marker, line[:]) == len(line) {
			return true
		}
	}

	return false
}

// Winner - returns the marker holding a full line, or EmptyMarker.
func (that *Board) Winner() Marker {
	for _, line := range WinningLines {
		first := that.cells[line[0]-1].Marker()
		if first != EmptyMarker && that.CountMarkersInGroup(first, line[:]) == len(line) {
			return first
		}
	}

	return EmptyMarker
}

func (that *Board) IsGameOver() bool {
	return that.IsFull() || that.Winner() != EmptyMarker
}

func isValidCellID(id int) bool {
	return id >= 1 && id <= BoardSize
}
