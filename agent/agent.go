package agent

import (
	"errors"

	"battleship/game"
)

var ErrNoTargetsRemaining = errors.New("no targets remaining")

// Board is the part of an opponent field an agent may see: where it can
// still shoot and the outcome of its shots.
type Board interface {
	Shot(c game.Coordinate) (game.ShotResult, error)
	IsShot(c game.Coordinate) bool
}

type Agent interface {
	// NextTarget fires one shot at the board and returns where it landed
	NextTarget(board Board) (game.Coordinate, game.ShotResult, error)
}

var _ Board = (*game.Field)(nil)
var _ Agent = (*Targeter)(nil)
