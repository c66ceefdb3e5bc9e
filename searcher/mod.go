package searcher

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
)

// Mode selects how a Searcher picks among the legal moves.
type Mode int

const (
	RandomMode  Mode = iota // Uniformly random legal move
	GreedyMode              // Best heuristic score one ply ahead
	MinimaxMode             // Fixed-depth minimax from the home side's perspective
)

var modeNames = map[Mode]string{
	RandomMode:  "random",
	GreedyMode:  "greedy",
	MinimaxMode: "minimax",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(text string) (Mode, error) {
	for mode, name := range modeNames {
		if name == text {
			return mode, nil
		}
	}
	return RandomMode, fmt.Errorf("unknown search mode %q", text)
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MoveFinder picks a move for side on board, or game.Pass if side is stuck.
type MoveFinder interface {
	FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric)
}

// Result is the outcome of a single search.
type Result struct {
	Move   game.Move
	Value  int // Score of Move under the searcher's mode; 0 for random and pass
	Metric metrics.SearchMetric
}
