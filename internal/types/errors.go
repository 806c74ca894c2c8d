package types

import "errors"

var (
	ErrInsufficientUniverse  = errors.New("insufficient universe")
	ErrInvalidRecommendation = errors.New("invalid recommendation")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrPositionNotActive     = errors.New("position not active")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrPositionNotFound      = errors.New("position not found")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrAlgoNotRunning        = errors.New("algo not running")
	ErrUnknownAlgo           = errors.New("unknown algo mode")
)
