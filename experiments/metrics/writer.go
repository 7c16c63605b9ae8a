package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists one experiment's configs, records and summaries as CSV
// files under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates the result directory for a named experiment.
func NewWriter(resultsDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(resultsDir, fmt.Sprintf("%s-%s", name, timestamp))
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the directory records are written into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "iterations", "duration", "exploration", "seed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Iterations),
			config.Duration.String(),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "starting_player", "winner", "moves", "score0", "score1", "start_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			strconv.Itoa(record.Winner),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Score0),
			strconv.Itoa(record.Score1),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	path := filepath.Join(w.baseDir, "move_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "pit", "extra_turn", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			strconv.Itoa(record.Pit),
			strconv.FormatBool(record.ExtraTurn),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummaries(summaries []MatchupSummary) error {
	path := filepath.Join(w.baseDir, "summaries.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summaries file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"matchup", "agent1", "agent2", "games", "wins1", "wins2", "ties", "win_rate1", "win_rate1_low", "win_rate1_high", "mean_moves", "stddev_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summaries header: %w", err)
	}

	for _, summary := range summaries {
		row := []string{
			summary.Matchup,
			strconv.Itoa(summary.Agent1),
			strconv.Itoa(summary.Agent2),
			strconv.Itoa(summary.Games),
			strconv.Itoa(summary.Wins1),
			strconv.Itoa(summary.Wins2),
			strconv.Itoa(summary.Ties),
			strconv.FormatFloat(summary.WinRate1, 'f', 4, 64),
			strconv.FormatFloat(summary.WinRate1Low, 'f', 4, 64),
			strconv.FormatFloat(summary.WinRate1Hi, 'f', 4, 64),
			strconv.FormatFloat(summary.MeanMoves, 'f', 2, 64),
			strconv.FormatFloat(summary.StddevMoves, 'f', 2, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}
