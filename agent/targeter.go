package agent

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"battleship/experiments/metrics"
	"battleship/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Mode int

const (
	Hunt   Mode = iota // random pick from the pool
	Target             // neighbours of a hit first
)

func (m Mode) String() string {
	if m == Target {
		return "target"
	}
	return "hunt"
}

type Option func(t *Targeter)

// Targeter is the hunt/target opponent. It keeps a shuffled pool of every
// cell and a stack of cells next to hits, and never looks at ship positions.
type Targeter struct {
	rng     *rand.Rand
	pool    []game.Coordinate
	queue   stack
	metrics metrics.Collector
}

func WithRand(rng *rand.Rand) Option {
	return func(t *Targeter) {
		if rng != nil {
			t.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(t *Targeter) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(t *Targeter) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

func NewTargeter(options ...Option) *Targeter {
	t := &Targeter{ // Default values
		pool:    game.AllCoordinates(),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	t.rng.Shuffle(len(t.pool), func(i, j int) {
		t.pool[i], t.pool[j] = t.pool[j], t.pool[i]
	})
	t.metrics.Start()
	return t
}

func (t *Targeter) Mode() Mode {
	if t.queue.len() > 0 {
		return Target
	}
	return Hunt
}

// Remaining is the number of cells not yet chosen from the pool.
func (t *Targeter) Remaining() int {
	return len(t.pool)
}

func (t *Targeter) Metrics() metrics.ShotMetric {
	return t.metrics.Complete()
}

// NextTarget picks a cell, fires at it and updates the stack from the
// outcome. Cells closed since they were queued are skipped.
func (t *Targeter) NextTarget(board Board) (game.Coordinate, game.ShotResult, error) {
	for {
		c, ok := t.pick()
		if !ok {
			return game.Coordinate{}, game.ShotMiss, ErrNoTargetsRemaining
		}

		result, err := board.Shot(c)
		if errors.Is(err, game.ErrDuplicateShot) {
			log.Debug().Str("target", c.String()).Msg("target already closed, picking another")
			t.metrics.AddRetry()
			continue
		}
		if err != nil {
			return c, result, fmt.Errorf("shooting %v: %w", c, err)
		}
		t.metrics.AddShot(result)

		if result == game.ShotHit {
			for _, n := range c.Neighbors() {
				if !board.IsShot(n) {
					t.queue.push(n)
				}
			}
		}
		return c, result, nil
	}
}

func (t *Targeter) pick() (game.Coordinate, bool) {
	if c, ok := t.queue.pop(); ok {
		if i := slices.Index(t.pool, c); i >= 0 {
			t.pool = slices.Delete(t.pool, i, i+1)
		}
		return c, true
	}
	if len(t.pool) == 0 {
		return game.Coordinate{}, false
	}
	last := len(t.pool) - 1
	c := t.pool[last]
	t.pool = t.pool[:last]
	return c, true
}
