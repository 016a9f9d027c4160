package apperror

import "errors"

var (
	ErrInvalidChoice    = errors.New("invalid choice")
	ErrInterrupted      = errors.New("input interrupted")
	ErrInvalidCell      = errors.New("invalid cell id")
	ErrInvalidMarker    = errors.New("invalid marker")
	ErrIllegalMove      = errors.New("move is not in the legal set")
	ErrEmptyDeck        = errors.New("deck is empty")
	ErrEmptyHand        = errors.New("hand is empty")
	ErrUndefinedOutcome = errors.New("outcome is not defined by the beats table")
	ErrGameFinished     = errors.New("game is already finished")
	ErrUnknownVariant   = errors.New("unknown rps variant")
)
