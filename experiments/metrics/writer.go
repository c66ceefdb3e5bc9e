package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID     int
	Mode   string // searcher.Mode name
	Depth  int
	Seed   uint64
	Budget time.Duration // Per game; zero means no limit
}

type GameRecord struct {
	ID    int
	Black int // AgentConfig.ID
	White int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000")
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

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "mode", "depth", "seed", "budget"}
	return w.writeCSV("agent_configs.csv", header, len(configs), func(i int) []string {
		c := configs[i]
		return []string{
			strconv.Itoa(c.ID),
			c.Mode,
			strconv.Itoa(c.Depth),
			strconv.FormatUint(c.Seed, 10),
			c.Budget.String(),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{
		"id", "black", "white", "starting_player", "winner", "start_time", "end_time", "duration",
		"total_moves", "passes", "black_stones", "white_stones",
	}
	return w.writeCSV("game_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Black),
			strconv.Itoa(r.White),
			r.StartingPlayer,
			r.Winner,
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
			strconv.Itoa(r.TotalMoves),
			strconv.Itoa(r.Passes),
			strconv.Itoa(r.BlackStones),
			strconv.Itoa(r.WhiteStones),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{
		"game", "step", "player", "move", "elapsed", "mode", "depth", "duration",
		"candidates", "nodes", "leaves", "value",
	}
	return w.writeCSV("move_records.csv", header, len(records), func(i int) []string {
		r := records[i]
		return []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			r.Player,
			r.Move,
			r.Elapsed.String(),
			r.Mode,
			strconv.Itoa(r.Depth),
			r.Duration.String(),
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Leaves),
			strconv.Itoa(r.Value),
		}
	})
}

func (w *Writer) writeCSV(file string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for i := 0; i < rows; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", file, err)
	}
	return nil
}
