package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireSeparated(t *testing.T, ships []*Ship) {
	t.Helper()
	for i, a := range ships {
		for j, b := range ships {
			if i == j {
				continue
			}
			for _, c := range b.Cells() {
				require.NotContains(t, a.Footprint(), c, "ship %v touches ship %v", a, b)
			}
		}
	}
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("default fleet always places seven separated ships", func(t *testing.T) {
		g, err := NewGenerator(WithSeed(42))
		require.NoError(t, err)

		for i := 0; i < 1000; i++ {
			f := NewField(false)
			_, err := g.Generate(f)
			require.NoError(t, err)

			ships := f.Ships()
			require.Len(t, ships, 7)
			lengths := make([]int, len(ships))
			for k, ship := range ships {
				lengths[k] = ship.Length()
			}
			require.Equal(t, []int{3, 2, 2, 1, 1, 1, 1}, lengths)
			requireSeparated(t, ships)
			require.Equal(t, 0, f.ShotCount())
		}
	})

	t.Run("same seed gives the same field", func(t *testing.T) {
		g1, err := NewGenerator(WithSeed(7))
		require.NoError(t, err)
		g2, err := NewGenerator(WithSeed(7))
		require.NoError(t, err)

		f1, f2 := NewField(false), NewField(false)
		_, err = g1.Generate(f1)
		require.NoError(t, err)
		_, err = g2.Generate(f2)
		require.NoError(t, err)
		require.Equal(t, f1.Grid(), f2.Grid())
	})

	t.Run("regenerating replaces the previous fleet", func(t *testing.T) {
		g, err := NewGenerator(WithSeed(3), WithFleet([]int{2, 1}))
		require.NoError(t, err)

		f := NewField(false)
		_, err = g.Generate(f)
		require.NoError(t, err)
		_, err = g.Generate(f)
		require.NoError(t, err)
		require.Len(t, f.Ships(), 2)
	})

	t.Run("impossible fleet exhausts when restarts are capped", func(t *testing.T) {
		fleet := make([]int, 20)
		for i := range fleet {
			fleet[i] = 3
		}
		g, err := NewGenerator(WithSeed(1), WithFleet(fleet), WithMaxAttempts(50), WithMaxRestarts(3))
		require.NoError(t, err)

		f := NewField(false)
		restarts, err := g.Generate(f)
		require.ErrorIs(t, err, ErrPlacementExhausted)
		require.Equal(t, 3, restarts)
		require.ErrorContains(t, err, "after 4 passes")
		require.Equal(t, 0, f.ShipsRemaining(), "partial fleet is discarded")
	})

	t.Run("one allowed restart means two passes", func(t *testing.T) {
		g, err := NewGenerator(WithSeed(2), WithFleet([]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3}), WithMaxAttempts(10), WithMaxRestarts(1))
		require.NoError(t, err)

		restarts, err := g.Generate(NewField(false))
		require.ErrorIs(t, err, ErrPlacementExhausted)
		require.Equal(t, 1, restarts)
		require.ErrorContains(t, err, "after 2 passes")
	})
}

func TestNewGenerator(t *testing.T) {
	t.Run("rejects empty fleet", func(t *testing.T) {
		_, err := NewGenerator(WithFleet([]int{}))
		require.ErrorIs(t, err, ErrInvalidFleet)
	})

	t.Run("rejects unbuildable lengths", func(t *testing.T) {
		_, err := NewGenerator(WithFleet([]int{3, 4}))
		require.ErrorIs(t, err, ErrInvalidFleet)
	})

	t.Run("fleet is copied", func(t *testing.T) {
		fleet := []int{2, 1}
		g, err := NewGenerator(WithFleet(fleet))
		require.NoError(t, err)
		fleet[0] = 3
		require.Equal(t, []int{2, 1}, g.Fleet())
	})
}
