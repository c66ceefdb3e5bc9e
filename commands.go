package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

var errNegativeDepth = errors.New("depth must not be negative")

type PlayCmd struct {
	BlackMode  searcher.Mode `default:"minimax" help:"Search mode for Black (random, greedy, minimax)" env:"OTHELLO_BLACK_MODE"`
	BlackDepth int           `default:"${depth}" help:"Minimax depth for Black" env:"OTHELLO_BLACK_DEPTH"`
	BlackURL   string        `help:"Ask an agent server for Black's moves" env:"OTHELLO_BLACK_URL"`
	WhiteMode  searcher.Mode `default:"greedy" help:"Search mode for White" env:"OTHELLO_WHITE_MODE"`
	WhiteDepth int           `default:"${depth}" help:"Minimax depth for White" env:"OTHELLO_WHITE_DEPTH"`
	WhiteURL   string        `help:"Ask an agent server for White's moves" env:"OTHELLO_WHITE_URL"`
	Seed       *uint64       `help:"Seed for random mode (optional)" env:"OTHELLO_SEED"`
	Budget     time.Duration `default:"${budget}" help:"Thinking time per side, 0 for no limit" env:"OTHELLO_BUDGET"`
}

func (c *PlayCmd) Validate() error {
	if c.BlackDepth < 0 || c.WhiteDepth < 0 {
		return errNegativeDepth
	}
	return nil
}

func (c *PlayCmd) Run() error {
	black := newAgent(game.Black, c.BlackMode, c.BlackDepth, c.BlackURL, c.Seed)
	white := newAgent(game.White, c.WhiteMode, c.WhiteDepth, c.WhiteURL, c.Seed)

	e := engine.LocalEngine(black, white, engine.WithBudget(c.Budget))
	winner, gameMetric, _ := e.Run()

	log.Info().
		Str("winner", winner).
		Int("black", gameMetric.BlackStones).
		Int("white", gameMetric.WhiteStones).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
	fmt.Println(e.State().Board())
	return nil
}

func newAgent(side game.Side, mode searcher.Mode, depth int, url string, seed *uint64) agent.Agent {
	if url != "" {
		return agent.NewRemoteAgent(url, side, mode, depth)
	}
	options := []searcher.Option{searcher.WithDepth(depth)}
	if seed != nil {
		options = append(options, searcher.WithSeed(*seed+uint64(side)))
	}
	return player.NewPlayer(side, mode, options...)
}

type MoveCmd struct {
	Board string        `help:"Board as 64 cells of b, w and - (row by row); the opening when empty"`
	Side  game.Side     `default:"black" help:"Side to move (black, white)"`
	Mode  searcher.Mode `default:"minimax" help:"Search mode (random, greedy, minimax)"`
	Depth int           `default:"${depth}" help:"Minimax depth, searching depth+1 plies"`
	Seed  *uint64       `help:"Seed for random mode (optional)"`

	out io.Writer
}

func (c *MoveCmd) Validate() error {
	if c.Depth < 0 {
		return errNegativeDepth
	}
	return nil
}

func (c *MoveCmd) Run() error {
	board := game.NewBoard()
	if c.Board != "" {
		var err error
		board, err = game.ParseGrid(c.Board)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}
	}

	options := []searcher.Option{searcher.WithDepth(c.Depth)}
	if c.Seed != nil {
		options = append(options, searcher.WithSeed(*c.Seed))
	}
	result := searcher.NewSearcher(c.Mode, options...).Search(board, c.Side)

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	_, err := fmt.Fprintf(out, "%s %d\n", result.Move, result.Value)
	return err
}

type ExperimentCmd struct {
	Name     string `arg:"" enum:"modes,depth,throughput" help:"Experiment to run (modes, depth, throughput)"`
	Games    int    `default:"${games}" help:"Games per match up"`
	Parallel int    `default:"${parallel}" help:"Games played at once"`
	Out      string `default:"experiments" type:"path" help:"Directory for CSV records" env:"OTHELLO_EXPERIMENTS_DIR"`
	MaxDepth int    `default:"3" help:"Deepest minimax depth for depth and throughput"`
}

func (c *ExperimentCmd) Validate() error {
	if c.MaxDepth < 0 {
		return errNegativeDepth
	}
	return nil
}

func (c *ExperimentCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	settings := experiments.Settings{NumGames: c.Games, Parallelism: c.Parallel, OutDir: c.Out}
	var err error
	switch c.Name {
	case "modes":
		_, err = experiments.RunModeExperiment(ctx, settings)
	case "depth":
		_, err = experiments.RunDepthExperiment(ctx, settings, c.MaxDepth)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(ctx, settings, c.MaxDepth)
	}
	return err
}

type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address" env:"OTHELLO_ADDR"`
}

func (c *ServeCmd) Run() error {
	log.Info().Int("defaultDepth", meta.DefaultDepth).Msg("agent server ready")
	return agent.StartAgentServer(c.Addr)
}
