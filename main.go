package main

import (
	"flag"
	"os"
	"time"

	"battleship/config"
	"battleship/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "battleship.yaml", "YAML config file, skipped when missing")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("log_level", cfg.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	summary, err := experiments.RunSelfPlay(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	log.Info().
		Int("matches", summary.Matches).
		Int("player_wins", summary.PlayerWins).
		Int("enemy_wins", summary.EnemyWins).
		Str("dir", summary.Dir).
		Msg("self-play finished")
}
