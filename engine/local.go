package engine

import (
	"time"

	"battleship/agent"
	"battleship/experiments/metrics"
	"battleship/game"
	"battleship/meta"

	"github.com/rs/zerolog/log"
)

const (
	SidePlayer = "player"
	SideEnemy  = "enemy"
)

// Engine plays a whole match between two agents.
type Engine struct {
	Match    *Match
	Agents   []agent.Agent // player then enemy
	MaxTurns int
}

type metricsReporter interface {
	Metrics() metrics.ShotMetric
}

// LocalEngine sets up a match between two agents. A non-positive maxTurns
// falls back to meta.MaxTurns.
func LocalEngine(gen *game.Generator, agents []agent.Agent, maxTurns int) (*Engine, error) {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	match, err := NewMatch(gen, agents[1])
	if err != nil {
		return nil, err
	}
	if maxTurns <= 0 {
		maxTurns = meta.MaxTurns
	}
	return &Engine{
		Match:    match,
		Agents:   agents,
		MaxTurns: maxTurns,
	}, nil
}

// Run alternates turns until a side has no ships left or MaxTurns is reached.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		MatchID:          e.Match.ID,
		StartingSide:     SidePlayer,
		StartTime:        time.Now(),
		PlacementRetries: e.Match.PlacementRetries,
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Str("match", e.Match.ID).Msgf("%s is starting", SidePlayer)

	for !e.Match.Status().IsOver() && e.Match.Turns() < e.MaxTurns {
		side := SidePlayer
		var (
			target game.Coordinate
			result game.ShotResult
			err    error
		)
		if e.Match.Status() == PlayerTurn {
			target, result, err = e.Match.PlayerAutoShot(e.Agents[0])
		} else {
			side = SideEnemy
			target, result, err = e.Match.EnemyShot()
		}
		if err != nil {
			log.Error().Err(err).Str("match", e.Match.ID).Str("side", side).Msg("turn failed, stopping match")
			break
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:   e.Match.Turns(),
			Side:   side,
			Target: target.String(),
			Result: result.String(),
		})
		log.Debug().Str("match", e.Match.ID).Msgf("turn %d: %s fired at %v: %v", e.Match.Turns(), side, target, result)
	}

	winner := e.Winner()
	if winner == "" {
		log.Warn().Str("match", e.Match.ID).Msgf("stopped after %d turns (no winner yet)", e.Match.Turns())
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalTurns = e.Match.Turns()
	if r, ok := e.Agents[0].(metricsReporter); ok {
		gameMetric.Player = r.Metrics()
	}
	if r, ok := e.Agents[1].(metricsReporter); ok {
		gameMetric.Enemy = r.Metrics()
	}
	return winner, gameMetric, moveMetrics
}

// Winner is empty while the match is still running.
func (e *Engine) Winner() string {
	switch e.Match.Status() {
	case PlayerWon:
		return SidePlayer
	case EnemyWon:
		return SideEnemy
	default:
		return ""
	}
}
