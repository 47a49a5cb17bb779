package app

import "errors"

var (
	ErrNotTowerSpot  = errors.New("cell does not accept towers")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrUnknownTower  = errors.New("unknown tower type")
	ErrWrongPhase    = errors.New("not allowed in the current phase")
	ErrNoMoreWaves   = errors.New("no more waves")
)
