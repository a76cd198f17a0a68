package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"battleship/config"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Matches = 5
	cfg.Seed = 99
	cfg.OutputDir = t.TempDir()
	return cfg
}

func TestRunSelfPlay(t *testing.T) {
	cfg := testConfig(t)

	summary, err := RunSelfPlay(cfg)
	require.NoError(t, err)
	require.Equal(t, 5, summary.Matches)
	require.Equal(t, 5, summary.PlayerWins+summary.EnemyWins)
	require.Zero(t, summary.Unfinished)
	require.FileExists(t, filepath.Join(summary.Dir, "game_records.csv"))
	require.FileExists(t, filepath.Join(summary.Dir, "move_records.csv"))

	data, err := os.ReadFile(filepath.Join(summary.Dir, "game_records.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "placement_retries")
}

func TestPlayMatchesIsReproducible(t *testing.T) {
	first, firstMoves, _, err := playMatches(testConfig(t))
	require.NoError(t, err)
	second, secondMoves, _, err := playMatches(testConfig(t))
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Winner, second[i].Winner)
		require.Equal(t, first[i].TotalTurns, second[i].TotalTurns)
	}
	require.Equal(t, firstMoves, secondMoves)
}

func TestPlayMatchesCountsCappedMatchesAsUnfinished(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxTurns = 4

	records, _, summary, err := playMatches(cfg)
	require.NoError(t, err)
	require.Equal(t, 5, summary.Unfinished)
	require.Zero(t, summary.PlayerWins+summary.EnemyWins)
	for _, record := range records {
		require.Equal(t, 4, record.TotalTurns)
		require.Empty(t, record.Winner)
	}
}

func TestPlayMatchesRejectsBadFleet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Fleet = []int{5}
	_, _, _, err := playMatches(cfg)
	require.Error(t, err)
}
