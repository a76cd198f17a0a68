package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellSet(t *testing.T) {
	t.Run("tracks membership", func(t *testing.T) {
		s := NewCellSet(mustCoordinate(t, "B2"), mustCoordinate(t, "A1"))
		require.True(t, s.Contains(mustCoordinate(t, "A1")))
		require.False(t, s.Contains(mustCoordinate(t, "C3")))
		require.Equal(t, 2, s.Len())

		s.Remove(mustCoordinate(t, "A1"))
		require.False(t, s.Contains(mustCoordinate(t, "A1")))
		require.Equal(t, 1, s.Len())
	})

	t.Run("lists cells in board order", func(t *testing.T) {
		s := NewCellSet(mustCoordinate(t, "F6"), mustCoordinate(t, "A2"), mustCoordinate(t, "C1"), mustCoordinate(t, "A2"))
		require.Equal(t, []string{"A2", "C1", "F6"}, labels(s.Cells()))
		require.Equal(t, AllCoordinates(), NewCellSet(AllCoordinates()...).Cells())
	})

	t.Run("subset test", func(t *testing.T) {
		s := NewCellSet(AllCoordinates()...)
		s.Remove(mustCoordinate(t, "D4"))
		require.True(t, s.ContainsAll([]Coordinate{{X: 0, Y: 0}, {X: 5, Y: 5}}))
		require.False(t, s.ContainsAll([]Coordinate{{X: 0, Y: 0}, {X: 3, Y: 3}}))
		require.True(t, s.ContainsAll(nil))
	})

	t.Run("ignores cells off the board", func(t *testing.T) {
		s := NewCellSet(Coordinate{X: 6, Y: 0})
		require.Equal(t, 0, s.Len())
		require.False(t, s.Contains(Coordinate{X: -1, Y: 0}))
	})
}
