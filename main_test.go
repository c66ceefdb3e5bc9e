package main

import (
	"bytes"
	"strings"
	"testing"

	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context, error) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("othello"), defaults)
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	return &cli, ctx, err
}

func TestMoveCmd(t *testing.T) {
	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		cli, ctx, err := parse(t, append([]string{"move"}, args...)...)
		require.NoError(t, err)
		var out bytes.Buffer
		cli.Move.out = &out
		err = ctx.Run()
		return out.String(), err
	}

	t.Run("greedy opening", func(t *testing.T) {
		out, err := run(t, "--mode", "greedy")
		require.NoError(t, err)
		require.Equal(t, "c4 3\n", out)
	})

	t.Run("stuck side passes", func(t *testing.T) {
		out, err := run(t, "--board", "bw"+strings.Repeat("-", 62), "--side", "white")
		require.NoError(t, err)
		require.Equal(t, "pass 0\n", out)
	})

	t.Run("invalid board", func(t *testing.T) {
		_, err := run(t, "--board", "bw")
		require.Error(t, err)
	})
}

func TestFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cli, _, err := parse(t, "play")
		require.NoError(t, err)
		require.Equal(t, searcher.MinimaxMode, cli.Play.BlackMode)
		require.Equal(t, searcher.GreedyMode, cli.Play.WhiteMode)
		require.Nil(t, cli.Play.Seed)
		require.Equal(t, meta.GameBudget, cli.Play.Budget)
		require.Equal(t, meta.DefaultDepth, cli.Play.BlackDepth)
	})

	t.Run("experiment defaults", func(t *testing.T) {
		cli, _, err := parse(t, "experiment", "modes")
		require.NoError(t, err)
		require.Equal(t, experiments.NumGames, cli.Experiment.Games)
		require.Equal(t, experiments.Parallelism, cli.Experiment.Parallel)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("OTHELLO_WHITE_MODE", "random")
		t.Setenv("OTHELLO_SEED", "9")
		cli, _, err := parse(t, "play")
		require.NoError(t, err)
		require.Equal(t, searcher.RandomMode, cli.Play.WhiteMode)
		require.Equal(t, uint64(9), *cli.Play.Seed)
	})

	t.Run("sides and modes are validated", func(t *testing.T) {
		cli, _, err := parse(t, "move", "--side", "w")
		require.NoError(t, err)
		require.Equal(t, game.White, cli.Move.Side)

		_, _, err = parse(t, "move", "--side", "red")
		require.Error(t, err)
		_, _, err = parse(t, "move", "--mode", "alphabeta")
		require.Error(t, err)
		_, _, err = parse(t, "experiment", "speedup")
		require.Error(t, err)
		_, _, err = parse(t, "move", "--depth=-1")
		require.Error(t, err, "Negative depths are rejected before searching")
		_, _, err = parse(t, "play", "--white-depth=-2")
		require.Error(t, err)
	})
}
