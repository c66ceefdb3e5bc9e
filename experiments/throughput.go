package experiments

import (
	"context"
	"time"

	"othello/experiments/metrics"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Throughput is how fast one minimax depth expands nodes in self-play.
type Throughput struct {
	Agent       int // AgentConfig.ID
	Depth       int
	Moves       int
	Nodes       int
	Duration    time.Duration // Total search time
	NodesPerSec float64
}

// RunThroughputExperiment plays minimax against itself at every depth up to
// maxDepth and reports search speed.
func RunThroughputExperiment(ctx context.Context, settings Settings, maxDepth int) ([]Throughput, error) {
	configs := []metrics.AgentConfig{}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 0; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth + 1, Mode: searcher.MinimaxMode.String(), Depth: depth}
		configs = append(configs, config)
		// Same config for both players for similar game length
		matchUps = append(matchUps, [2]metrics.AgentConfig{config, config})
	}

	report, err := runExperiment(ctx, "throughput", configs, matchUps, settings)
	if err != nil {
		return nil, err
	}

	results := throughput(configs, report)
	for _, r := range results {
		log.Info().Msgf("depth %d: %d nodes in %d moves over %s (%.0f nodes/s)",
			r.Depth, r.Nodes, r.Moves, r.Duration, r.NodesPerSec)
	}
	return results, nil
}

func throughput(configs []metrics.AgentConfig, report Report) []Throughput {
	return lo.Map(configs, func(c metrics.AgentConfig, _ int) Throughput {
		games := lo.SliceToMap(
			lo.Filter(report.Games, func(r metrics.GameRecord, _ int) bool { return r.Black == c.ID && r.White == c.ID }),
			func(r metrics.GameRecord) (int, bool) { return r.ID, true },
		)
		moves := lo.Filter(report.Moves, func(r metrics.MoveRecord, _ int) bool { return games[r.Game] })

		t := Throughput{
			Agent:    c.ID,
			Depth:    c.Depth,
			Moves:    len(moves),
			Nodes:    lo.SumBy(moves, func(r metrics.MoveRecord) int { return r.Nodes }),
			Duration: lo.SumBy(moves, func(r metrics.MoveRecord) time.Duration { return r.Duration }),
		}
		if t.Duration > 0 {
			t.NodesPerSec = float64(t.Nodes) / t.Duration.Seconds()
		}
		return t
	})
}
