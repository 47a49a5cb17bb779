package system

import "errors"

var (
	ErrNoSuchWave   = errors.New("no such wave")
	ErrInvalidPhase = errors.New("transition not allowed in current phase")
)
