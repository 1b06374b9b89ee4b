package domain

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("exactly two players are required")
	ErrTileNotFound       = errors.New("tile not found in hand")
	ErrIndexOutOfRange    = errors.New("hand index out of range")
	ErrInvariantViolation = errors.New("board invariant violated")
)
