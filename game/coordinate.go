package game

import (
	"fmt"
	"strings"

	"battleship/meta"
)

const (
	letters = "ABCDEF"
	digits  = "123456"
)

// Coordinate is a cell on a field. X is encoded by a letter A..F and Y by a
// digit 1..6, both zero based.
type Coordinate struct {
	X int
	Y int
}

// ParseCoordinate builds a Coordinate from a label such as "A1" or "f6".
func ParseCoordinate(label string) (Coordinate, error) {
	if len(label) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q must be a letter A-F followed by a digit 1-6", ErrInvalidCoordinate, label)
	}
	x := strings.IndexByte(letters, strings.ToUpper(label[:1])[0])
	if x < 0 {
		return Coordinate{}, fmt.Errorf("%w: %q, first character must be a letter A-F", ErrInvalidCoordinate, label)
	}
	y := strings.IndexByte(digits, label[1])
	if y < 0 {
		return Coordinate{}, fmt.Errorf("%w: %q, second character must be a digit 1-6", ErrInvalidCoordinate, label)
	}
	return Coordinate{X: x, Y: y}, nil
}

// NewCoordinate builds a Coordinate from zero based indices.
func NewCoordinate(x, y int) (Coordinate, error) {
	c := Coordinate{X: x, Y: y}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("%w: (%d, %d) is outside [0, %d]", ErrInvalidCoordinate, x, y, meta.BoardSize-1)
	}
	return c, nil
}

// AllCoordinates returns every cell of a field in letter-major order: A1..A6, B1..B6, ...
func AllCoordinates() []Coordinate {
	all := make([]Coordinate, 0, meta.BoardSize*meta.BoardSize)
	for x := 0; x < meta.BoardSize; x++ {
		for y := 0; y < meta.BoardSize; y++ {
			all = append(all, Coordinate{X: x, Y: y})
		}
	}
	return all
}

func (c Coordinate) Valid() bool {
	return c.X >= 0 && c.X < meta.BoardSize && c.Y >= 0 && c.Y < meta.BoardSize
}

// Index is the position of c in AllCoordinates.
func (c Coordinate) Index() int {
	return c.X*meta.BoardSize + c.Y
}

func (c Coordinate) String() string {
	if !c.Valid() {
		return fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return string(letters[c.X]) + string(digits[c.Y])
}

// Neighbors returns the valid orthogonal neighbors in the order right, left, down, up.
func (c Coordinate) Neighbors() []Coordinate {
	candidates := []Coordinate{
		{X: c.X + 1, Y: c.Y},
		{X: c.X - 1, Y: c.Y},
		{X: c.X, Y: c.Y + 1},
		{X: c.X, Y: c.Y - 1},
	}
	out := candidates[:0]
	for _, n := range candidates {
		if n.Valid() {
			out = append(out, n)
		}
	}
	return out
}

// Surrounding returns c and every valid cell within one step, diagonals included.
func (c Coordinate) Surrounding() []Coordinate {
	out := make([]Coordinate, 0, 9)
	for x := c.X - 1; x <= c.X+1; x++ {
		for y := c.Y - 1; y <= c.Y+1; y++ {
			n := Coordinate{X: x, Y: y}
			if n.Valid() {
				out = append(out, n)
			}
		}
	}
	return out
}
