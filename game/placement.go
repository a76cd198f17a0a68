package game

import (
	"fmt"
	"slices"
	"time"

	"battleship/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type GeneratorOption func(g *Generator)

// Generator fills fields with a fleet using a bounded random search. A field
// that cannot be completed is wiped and placed again from scratch.
type Generator struct {
	fleet       []int
	rng         *rand.Rand
	maxAttempts int
	maxRestarts int // wipes allowed after the first pass, 0 means unbounded
}

func WithFleet(fleet []int) GeneratorOption {
	return func(g *Generator) {
		g.fleet = slices.Clone(fleet)
	}
}

func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

func WithSeed(seed uint64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMaxAttempts(attempts int) GeneratorOption {
	return func(g *Generator) {
		if attempts > 0 {
			g.maxAttempts = attempts
		}
	}
}

func WithMaxRestarts(restarts int) GeneratorOption {
	return func(g *Generator) {
		if restarts >= 0 {
			g.maxRestarts = restarts
		}
	}
}

func NewGenerator(options ...GeneratorOption) (*Generator, error) {
	g := &Generator{ // Default values
		fleet:       slices.Clone(meta.DefaultFleet),
		maxAttempts: meta.MaxPlacementAttempts,
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if err := ValidateFleet(g.fleet); err != nil {
		return nil, err
	}
	return g, nil
}

// ValidateFleet checks that the fleet is non-empty and every length can be built.
func ValidateFleet(fleet []int) error {
	if len(fleet) == 0 {
		return fmt.Errorf("%w: no ships", ErrInvalidFleet)
	}
	for _, length := range fleet {
		if length < MinShipLength || length > MaxShipLength {
			return fmt.Errorf("%w: ship length %d, must be from %d to %d", ErrInvalidFleet, length, MinShipLength, MaxShipLength)
		}
	}
	return nil
}

func (g *Generator) Fleet() []int {
	return slices.Clone(g.fleet)
}

// Generate resets f and places the whole fleet on it. It returns how many
// times the field had to be wiped and started over.
func (g *Generator) Generate(f *Field) (int, error) {
	restarts := 0
	for {
		f.Reset()
		err := g.place(f)
		if err == nil {
			return restarts, nil
		}
		if g.maxRestarts > 0 && restarts >= g.maxRestarts {
			f.Reset()
			return restarts, fmt.Errorf("gave up after %d passes (%d restarts): %w", restarts+1, restarts, err)
		}
		restarts++
		log.Debug().Err(err).Int("restarts", restarts).Msg("regenerating field")
	}
}

// place adds one ship per fleet entry. The free set only loses occupied
// cells, so a new ship whose footprint touches an earlier ship fails the
// subset check.
func (g *Generator) place(f *Field) error {
	free := NewCellSet(AllCoordinates()...)
	for _, length := range g.fleet {
		ship, err := g.placeShip(free, length)
		if err != nil {
			return err
		}
		f.AddShip(ship)
		for _, c := range ship.Cells() {
			free.Remove(c)
		}
	}
	return nil
}

func (g *Generator) placeShip(free CellSet, length int) (*Ship, error) {
	candidates := free.Cells()
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no free cell for a ship of length %d", ErrPlacementExhausted, length)
	}
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		origin := candidates[g.rng.Intn(len(candidates))]
		orientation := Orientations[g.rng.Intn(len(Orientations))]
		ship, err := NewShip(origin, orientation, length)
		if err != nil {
			continue
		}
		if free.ContainsAll(ship.Footprint()) {
			return ship, nil
		}
	}
	return nil, fmt.Errorf("%w: ship of length %d after %d attempts", ErrPlacementExhausted, length, g.maxAttempts)
}
