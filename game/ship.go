package game

import (
	"fmt"
	"slices"
)

const (
	MinShipLength = 1
	MaxShipLength = 3
)

type Orientation int

const (
	Horizontal Orientation = iota // X advances
	Vertical                      // Y advances
)

// Orientations lists the recognised values, used for uniform sampling.
var Orientations = []Orientation{Horizontal, Vertical}

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "h" or "v".
func ParseOrientation(label string) (Orientation, error) {
	switch label {
	case "h", "H":
		return Horizontal, nil
	case "v", "V":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: %q, available orientations are h or v", ErrInvalidOrientation, label)
}

func (o Orientation) step() (dx, dy int) {
	if o == Horizontal {
		return 1, 0
	}
	return 0, 1
}

// Ship has a fixed geometry and a number of hits left before it sinks.
type Ship struct {
	origin        Coordinate
	orientation   Orientation
	length        int
	remainingHits int
}

// NewShip validates orientation, length and bounds, in that order.
func NewShip(origin Coordinate, orientation Orientation, length int) (*Ship, error) {
	if !orientation.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOrientation, orientation)
	}
	if length < MinShipLength || length > MaxShipLength {
		return nil, fmt.Errorf("%w: %d, must be from %d to %d", ErrInvalidShipLength, length, MinShipLength, MaxShipLength)
	}
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: origin %v", ErrShipOutOfBounds, origin)
	}
	dx, dy := orientation.step()
	last := Coordinate{X: origin.X + dx*(length-1), Y: origin.Y + dy*(length-1)}
	if !last.Valid() {
		return nil, fmt.Errorf("%w: %d cells from %v along %v", ErrShipOutOfBounds, length, origin, orientation)
	}
	return &Ship{
		origin:        origin,
		orientation:   orientation,
		length:        length,
		remainingHits: length,
	}, nil
}

func (s *Ship) Origin() Coordinate {
	return s.origin
}

func (s *Ship) Orientation() Orientation {
	return s.orientation
}

func (s *Ship) Length() int {
	return s.length
}

func (s *Ship) RemainingHits() int {
	return s.remainingHits
}

func (s *Ship) IsSunk() bool {
	return s.remainingHits == 0
}

// Cells returns the occupied cells stepping from the origin.
func (s *Ship) Cells() []Coordinate {
	dx, dy := s.orientation.step()
	cells := make([]Coordinate, s.length)
	for i := range cells {
		cells[i] = Coordinate{X: s.origin.X + dx*i, Y: s.origin.Y + dy*i}
	}
	return cells
}

func (s *Ship) Contains(c Coordinate) bool {
	return slices.Contains(s.Cells(), c)
}

// Footprint returns the occupied cells plus every on-board cell touching them,
// diagonals included, without duplicates and in board order.
func (s *Ship) Footprint() []Coordinate {
	set := NewCellSet()
	for _, cell := range s.Cells() {
		for _, n := range cell.Surrounding() {
			set.Add(n)
		}
	}
	return set.Cells()
}

// Border is the footprint without the occupied cells.
func (s *Ship) Border() []Coordinate {
	cells := s.Cells()
	footprint := s.Footprint()
	border := footprint[:0]
	for _, c := range footprint {
		if !slices.Contains(cells, c) {
			border = append(border, c)
		}
	}
	return border
}

// ApplyHit removes one hit point. The caller guarantees the shot landed on the ship.
func (s *Ship) ApplyHit() {
	if s.remainingHits > 0 {
		s.remainingHits--
	}
}

func (s *Ship) String() string {
	return fmt.Sprintf("%v%v%d", s.origin, s.orientation, s.length)
}
