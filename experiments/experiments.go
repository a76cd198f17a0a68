package experiments

import (
	"fmt"

	"battleship/agent"
	"battleship/config"
	"battleship/engine"
	"battleship/experiments/metrics"
	"battleship/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary is what a self-play run reports back once its records are stored.
type Summary struct {
	Matches    int
	PlayerWins int
	EnemyWins  int
	Unfinished int
	Dir        string // where the CSV files were written, empty when not stored
}

// RunSelfPlay plays cfg.Matches games between two targeting agents and stores
// the game and move records under cfg.OutputDir.
func RunSelfPlay(cfg *config.Config) (Summary, error) {
	const name = "selfplay"

	gameRecords, moveRecords, summary, err := playMatches(cfg)
	if err != nil {
		return summary, err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}

func playMatches(cfg *config.Config) ([]metrics.GameRecord, []metrics.MoveRecord, Summary, error) {
	// One seeded source drives every generator and agent so a run can be replayed.
	rng := rand.New(rand.NewSource(cfg.Seed))
	gen, err := game.NewGenerator(
		game.WithFleet(cfg.Fleet),
		game.WithRand(rng),
		game.WithMaxRestarts(cfg.MaxRestarts),
	)
	if err != nil {
		return nil, nil, Summary{}, err
	}

	summary := Summary{Matches: cfg.Matches}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting self-play with %d matches, fleet %v, seed %d...", cfg.Matches, cfg.Fleet, cfg.Seed)

	for i := 0; i < cfg.Matches; i++ {
		agents := []agent.Agent{
			agent.NewTargeter(agent.WithSeed(rng.Uint64()), agent.WithMetrics(metrics.NewCollector())),
			agent.NewTargeter(agent.WithSeed(rng.Uint64()), agent.WithMetrics(metrics.NewCollector())),
		}
		e, err := engine.LocalEngine(gen, agents, cfg.MaxTurns)
		if err != nil {
			return nil, nil, summary, fmt.Errorf("match %d: %w", i+1, err)
		}

		winner, gameMetric, moveMetrics := e.Run()
		switch winner {
		case engine.SidePlayer:
			summary.PlayerWins++
		case engine.SideEnemy:
			summary.EnemyWins++
		default:
			summary.Unfinished++
		}

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed match %d of %d (%s) with winner: %s in %d turns", id, cfg.Matches, gameMetric.MatchID, winner, gameMetric.TotalTurns)
	}

	log.Info().Msgf("completed self-play: player %d, enemy %d, unfinished %d", summary.PlayerWins, summary.EnemyWins, summary.Unfinished)
	return gameRecords, moveRecords, summary, nil
}
