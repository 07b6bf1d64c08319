package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type MatchRecord struct {
	ID     int
	Config int // MatchConfig.ID
	MatchMetric
}

type RoundRecord struct {
	Match          int // MatchRecord.ID
	Round          int
	Winner         string
	PlayerPoints   int
	OpponentPoints int
	Collision      bool
	PlayerHit      bool
	OpponentHit    bool
}

type Writer struct {
	// RunID names the result directory for this experiment run.
	RunID   uuid.UUID
	baseDir string
}

func NewWriter() (*Writer, error) {
	runID := uuid.New()
	baseDir := filepath.Join("results", "throughput", runID.String())
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		RunID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteMatchConfigs(configs []MatchConfig) error {
	path := filepath.Join(w.baseDir, "match_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "board_size", "rounds", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.BoardSize),
			strconv.Itoa(config.Rounds),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMatchRecords(records []MatchRecord) error {
	path := filepath.Join(w.baseDir, "match_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create match records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "config", "start_time", "end_time", "duration", "rounds",
		"player_wins", "opponent_wins", "ties", "collisions", "trap_hits", "rounds_per_second"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write match records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Config),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.Rounds),
			strconv.Itoa(record.PlayerWins),
			strconv.Itoa(record.OpponentWins),
			strconv.Itoa(record.Ties),
			strconv.Itoa(record.Collisions),
			strconv.Itoa(record.TrapHits),
			strconv.FormatFloat(record.RoundsPerSecond, 'f', 2, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write match record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "round_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"match", "round", "winner", "player_points", "opponent_points",
		"collision", "player_hit", "opponent_hit"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Match),
			strconv.Itoa(record.Round),
			record.Winner,
			strconv.Itoa(record.PlayerPoints),
			strconv.Itoa(record.OpponentPoints),
			strconv.FormatBool(record.Collision),
			strconv.FormatBool(record.PlayerHit),
			strconv.FormatBool(record.OpponentHit),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}
