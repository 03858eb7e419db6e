package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrInvalidIntent    = errors.New("invalid intent")
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrNotFound         = errors.New("not found")
)
