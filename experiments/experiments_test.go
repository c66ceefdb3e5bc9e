package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/stretchr/testify/require"
)

func TestRunModeExperiment(t *testing.T) {
	dir := t.TempDir()
	settings := Settings{NumGames: 2, Parallelism: 3, OutDir: dir}

	report, err := RunModeExperiment(context.Background(), settings)
	require.NoError(t, err)

	require.Len(t, report.Games, 6, "Three match ups of two games")
	for i, g := range report.Games {
		require.Equal(t, i+1, g.ID, "Records should be in game order")
		require.NotEqual(t, game.InProgress, g.Winner)
	}
	require.Equal(t, report.Games[0].Black, report.Games[1].White, "Sides alternate within a match up")
	require.Equal(t, report.Games[0].White, report.Games[1].Black)

	total := 0
	for _, g := range report.Games {
		total += g.TotalMoves
	}
	require.Len(t, report.Moves, total, "One move record per played move")

	require.Len(t, report.Standings, 3)
	wins := 0
	for _, s := range report.Standings {
		require.Equal(t, 4, s.Games, "Each agent plays two match ups")
		require.Equal(t, s.Games, s.Wins+s.Losses+s.Draws)
		wins += s.Wins
	}
	draws := 0
	for _, g := range report.Games {
		if g.Winner == game.Draw {
			draws++
		}
	}
	require.Equal(t, len(report.Games)-draws, wins, "Every decided game has one winner")

	runs, err := os.ReadDir(filepath.Join(dir, "modes"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(dir, "modes", runs[0].Name(), file))
	}
}

func TestExperimentsAreReproducible(t *testing.T) {
	settings := Settings{NumGames: 2, Parallelism: 2}

	first, err := RunModeExperiment(context.Background(), settings)
	require.NoError(t, err)
	second, err := RunModeExperiment(context.Background(), settings)
	require.NoError(t, err)

	for i := range first.Games {
		require.Equal(t, first.Games[i].Winner, second.Games[i].Winner, "game %d", i+1)
		require.Equal(t, first.Games[i].BlackStones, second.Games[i].BlackStones, "game %d", i+1)
	}
}

func TestRunDepthExperiment(t *testing.T) {
	report, err := RunDepthExperiment(context.Background(), Settings{NumGames: 1, Parallelism: 2}, 1)
	require.NoError(t, err)

	require.Len(t, report.Games, 2)
	require.Len(t, report.Standings, 3)
	require.Equal(t, 2, report.Standings[0].Games, "The baseline plays every depth")

	for _, m := range report.Moves {
		if m.Mode == "minimax" {
			require.Positive(t, m.Nodes, "Minimax moves should count expanded nodes")
		}
	}
}

func TestRunThroughputExperiment(t *testing.T) {
	results, err := RunThroughputExperiment(context.Background(), Settings{NumGames: 1, Parallelism: 2}, 1)
	require.NoError(t, err)

	require.Len(t, results, 2)
	for _, r := range results {
		require.Positive(t, r.Moves)
		require.Positive(t, r.Nodes)
	}
	require.Greater(t, results[1].Nodes, results[0].Nodes, "Deeper search expands more nodes")
}

func TestCanceledExperiment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunModeExperiment(ctx, Settings{NumGames: 1, Parallelism: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}}
	games := []metrics.GameRecord{
		{ID: 1, Black: 1, White: 2, GameMetric: metrics.GameMetric{Winner: "black", BlackStones: 40, WhiteStones: 24}},
		{ID: 2, Black: 2, White: 1, GameMetric: metrics.GameMetric{Winner: "draw", BlackStones: 32, WhiteStones: 32}},
		{ID: 3, Black: 1, White: 1, GameMetric: metrics.GameMetric{Winner: "white"}},
	}

	standings := summarize(configs, games)

	require.Equal(t, []Standing{
		{Agent: 1, Games: 2, Wins: 1, Losses: 0, Draws: 1, AvgStones: 36},
		{Agent: 2, Games: 2, Wins: 0, Losses: 1, Draws: 1, AvgStones: 28},
	}, standings)
}
