package game

import "errors"

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidShipLength  = errors.New("invalid ship length")
	ErrShipOutOfBounds    = errors.New("ship does not fit on the board")
	ErrDuplicateShot      = errors.New("cell was already fired upon")
	ErrPlacementExhausted = errors.New("cannot place fleet")
	ErrInvalidFleet       = errors.New("invalid fleet")
)
