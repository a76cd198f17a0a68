package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the experiment files.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "match", "starting_side", "winner", "start_time", "end_time", "duration", "turns", "placement_retries",
		"player_shots", "player_hits", "player_sinks", "player_retries",
		"enemy_shots", "enemy_hits", "enemy_sinks", "enemy_retries",
	}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.MatchID,
			record.StartingSide,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalTurns),
			strconv.Itoa(record.PlacementRetries),
		}
		row = append(row, shotColumns(record.Player)...)
		row = append(row, shotColumns(record.Enemy)...)
		rows = append(rows, row)
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "side", "target", "result"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Side,
			record.Target,
			record.Result,
		})
	}
	return w.write("move_records.csv", header, rows)
}

func shotColumns(m ShotMetric) []string {
	return []string{
		strconv.Itoa(m.Shots),
		strconv.Itoa(m.Hits),
		strconv.Itoa(m.Sinks),
		strconv.Itoa(m.Retries),
	}
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	return writeCSV(f, name, header, rows)
}

// writeCSV writes the rows and closes out, reporting a failed close.
func writeCSV(out io.WriteCloser, name string, header []string, rows [][]string) (err error) {
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, closeErr)
		}
	}()

	writer := csv.NewWriter(out)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
