package game

import (
	"battleship/meta"

	"github.com/bits-and-blooms/bitset"
)

const cellCount = meta.BoardSize * meta.BoardSize

// CellSet is a set of board cells backed by a bitset indexed by Coordinate.Index.
type CellSet struct {
	bits *bitset.BitSet
}

func NewCellSet(cells ...Coordinate) CellSet {
	s := CellSet{bits: bitset.New(cellCount)}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

func (s CellSet) Add(c Coordinate) {
	if c.Valid() {
		s.bits.Set(uint(c.Index()))
	}
}

func (s CellSet) Remove(c Coordinate) {
	if c.Valid() {
		s.bits.Clear(uint(c.Index()))
	}
}

func (s CellSet) Contains(c Coordinate) bool {
	return c.Valid() && s.bits.Test(uint(c.Index()))
}

// ContainsAll is the subset test.
func (s CellSet) ContainsAll(cells []Coordinate) bool {
	return s.bits.IsSuperSet(NewCellSet(cells...).bits)
}

func (s CellSet) Len() int {
	return int(s.bits.Count())
}

// Cells returns the members in AllCoordinates order.
func (s CellSet) Cells() []Coordinate {
	out := make([]Coordinate, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, coordinateAt(int(i)))
	}
	return out
}

func coordinateAt(index int) Coordinate {
	return Coordinate{X: index / meta.BoardSize, Y: index % meta.BoardSize}
}
