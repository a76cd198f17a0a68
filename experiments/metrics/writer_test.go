package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "selfplay")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, filepath.Join(root, "selfplay"), filepath.Dir(w.Dir()))

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1,
			GameMetric: GameMetric{
				MatchID:      "abc123",
				StartingSide: "player",
				Winner:       "enemy",
				StartTime:    start,
				EndTime:      start.Add(time.Second),
				Duration:     time.Second,
				TotalTurns:   40,
				Player:       ShotMetric{Shots: 20, Hits: 9, Sinks: 5, Retries: 2},
				Enemy:        ShotMetric{Shots: 20, Hits: 12, Sinks: 7},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "id", rows[0][0])
		require.Equal(t, []string{"1", "abc123", "player", "enemy", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "40", "0",
			"20", "9", "5", "2", "20", "12", "7", "0"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Side: "player", Target: "A1", Result: "miss"}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Side: "enemy", Target: "C4", Result: "hit"}},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, [][]string{
			{"game", "step", "side", "target", "result"},
			{"1", "1", "player", "A1", "miss"},
			{"1", "2", "enemy", "C4", "hit"},
		}, rows)
	})
}

// failingCloser keeps what was written and fails on Close.
type failingCloser struct {
	bytes.Buffer
}

func (c *failingCloser) Close() error {
	return errors.New("disk full")
}

func TestWriteCSVReportsCloseError(t *testing.T) {
	out := &failingCloser{}
	err := writeCSV(out, "move_records.csv", []string{"game"}, [][]string{{"1"}})
	require.ErrorContains(t, err, "failed to close move_records.csv")
	require.Equal(t, "game\n1\n", out.String(), "rows are flushed before closing")
}

func TestWriterFailsWhenDirectoryIsGone(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "selfplay")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	err = w.WriteMoveRecords(nil)
	require.ErrorContains(t, err, "failed to create move_records.csv")
}
