package entity

import (
	"testing"

	"github.com/rocketscienceinc/console-games/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markAll(t *testing.T, board *Board, marker Marker, ids ...int) {
	t.Helper()

	for _, id := range ids {
		ok, err := board.MarkCellAt(id, marker)
		require.NoError(t, err)
		require.True(t, ok, "cell %d should be free", id)
	}
}

func TestNewBoard(t *testing.T) {
	// Given: a freshly created board
	board := NewBoard()

	// Then: all nine cells are empty, nobody has won and it is not full
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, board.EmptyCellIDs())
	assert.False(t, board.IsFull())
	assert.False(t, board.IsWinner(DefaultHumanMarker))
	assert.False(t, board.IsWinner(DefaultComputerMarker))
	assert.Equal(t, EmptyMarker, board.Winner())
	assert.False(t, board.IsGameOver())
}

func TestBoard_MarkCellAt(t *testing.T) {
	t.Run("Marks an empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: the human marks cell 5
		ok, err := board.MarkCellAt(5, DefaultHumanMarker)

		// Then: the mark is stored and the cell is no longer empty
		require.NoError(t, err)
		assert.True(t, ok)

		marker, err := board.MarkerAt(5)
		require.NoError(t, err)
		assert.Equal(t, DefaultHumanMarker, marker)
		assert.NotContains(t, board.EmptyCellIDs(), 5)
	})

	t.Run("First writer wins", func(t *testing.T) {
		// Given: a board where cell 1 belongs to the human
		board := NewBoard()
		markAll(t, board, DefaultHumanMarker, 1)

		// When: the computer tries the same cell
		ok, err := board.MarkCellAt(1, DefaultComputerMarker)

		// Then: the call is rejected and the marker is unchanged
		require.NoError(t, err)
		assert.False(t, ok)

		marker, err := board.MarkerAt(1)
		require.NoError(t, err)
		assert.Equal(t, DefaultHumanMarker, marker)
	})

	t.Run("Invalid cell ids", func(t *testing.T) {
		board := NewBoard()

		for _, id := range []int{-1, 0, 10, 20} {
			_, err := board.MarkCellAt(id, DefaultHumanMarker)
			assert.ErrorIs(t, err, apperror.ErrInvalidCell)
		}
	})

	t.Run("Empty marker is rejected", func(t *testing.T) {
		board := NewBoard()

		_, err := board.MarkCellAt(1, EmptyMarker)

		assert.ErrorIs(t, err, apperror.ErrInvalidMarker)
		assert.Len(t, board.EmptyCellIDs(), BoardSize)
	})
}

func TestBoard_CountMarkersInGroup(t *testing.T) {
	// Given: X on 1 and 2, O on 3
	board := NewBoard()
	markAll(t, board, DefaultHumanMarker, 1, 2)
	markAll(t, board, DefaultComputerMarker, 3)

	// Then: counts follow the markers in the group
	assert.Equal(t, 2, board.CountMarkersInGroup(DefaultHumanMarker, []int{1, 2, 3}))
	assert.Equal(t, 1, board.CountMarkersInGroup(DefaultComputerMarker, []int{1, 2, 3}))
	assert.Equal(t, 0, board.CountMarkersInGroup(DefaultHumanMarker, []int{4, 5, 6}))
	assert.Equal(t, 3, board.CountMarkersInGroup(EmptyMarker, []int{4, 5, 6}))
}

func TestBoard_IsWinner(t *testing.T) {
	t.Run("Every winning line wins", func(t *testing.T) {
		for _, line := range WinningLines {
			// Given: a board where one line is full of X
			board := NewBoard()
			markAll(t, board, DefaultHumanMarker, line[:]...)

			// Then: X wins and O does not
			assert.True(t, board.IsWinner(DefaultHumanMarker), "line %v", line)
			assert.False(t, board.IsWinner(DefaultComputerMarker), "line %v", line)
			assert.Equal(t, DefaultHumanMarker, board.Winner())
			assert.True(t, board.IsGameOver())
		}
	})

	t.Run("Matches a brute force check on random boards", func(t *testing.T) {
		random := newTestRandom()

		for range 500 {
			board := NewBoard()
			markers := []Marker{EmptyMarker, DefaultHumanMarker, DefaultComputerMarker}
			for id := 1; id <= BoardSize; id++ {
				if m := markers[random.Intn(len(markers))]; m != EmptyMarker {
					markAll(t, board, m, id)
				}
			}

			for _, marker := range markers[1:] {
				expected := false
				for _, line := range WinningLines {
					uniform := true
					for _, id := range line {
						got, err := board.MarkerAt(id)
						require.NoError(t, err)
						uniform = uniform && got == marker
					}
					expected = expected || uniform
				}

				assert.Equal(t, expected, board.IsWinner(marker))
			}
		}
	})

	t.Run("Tie board has no winner", func(t *testing.T) {
		// Given: a full board without a line
		board := NewBoard()
		markAll(t, board, DefaultHumanMarker, 1, 3, 5, 6, 8)
		markAll(t, board, DefaultComputerMarker, 2, 4, 7, 9)

		// Then: it is full, over and nobody won
		assert.True(t, board.IsFull())
		assert.True(t, board.IsGameOver())
		assert.Equal(t, EmptyMarker, board.Winner())
		assert.False(t, board.IsWinner(EmptyMarker))
	})
}

func TestBoard_WinnerDetectedOnThirdMark(t *testing.T) {
	// Given: a fresh board
	board := NewBoard()

	// When: the human plays 1, 2, 3 while the computer plays elsewhere
	markAll(t, board, DefaultHumanMarker, 1)
	assert.False(t, board.IsWinner(DefaultHumanMarker))
	markAll(t, board, DefaultComputerMarker, 5)

	markAll(t, board, DefaultHumanMarker, 2)
	assert.False(t, board.IsWinner(DefaultHumanMarker))
	markAll(t, board, DefaultComputerMarker, 9)

	markAll(t, board, DefaultHumanMarker, 3)

	// Then: the win shows up exactly with the third mark
	assert.True(t, board.IsWinner(DefaultHumanMarker))
	assert.False(t, board.IsWinner(DefaultComputerMarker))
}
