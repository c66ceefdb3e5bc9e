package main

import (
	"strconv"

	"othello/experiments"
	"othello/meta"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"
)

type CLI struct {
	Debug bool `help:"Enable debug logging" env:"OTHELLO_DEBUG"`
	JSON  bool `help:"Log structured JSON instead of console output" env:"OTHELLO_LOG_JSON"`

	Play       PlayCmd       `cmd:"" help:"Play a local game between two agents"`
	Move       MoveCmd       `cmd:"" help:"Choose a move for a board"`
	Experiment ExperimentCmd `cmd:"" help:"Run agent-vs-agent experiments and store CSV records"`
	Serve      ServeCmd      `cmd:"" help:"Serve the findmove endpoint"`
}

// defaults feeds the package constants to flag defaults.
var defaults = kong.Vars{
	"depth":    strconv.Itoa(meta.DefaultDepth),
	"budget":   meta.GameBudget.String(),
	"games":    strconv.Itoa(experiments.NumGames),
	"parallel": strconv.Itoa(experiments.Parallelism),
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("othello"),
		kong.Description("Othello search agent"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		defaults,
	)
	log.Logger = setupLogger(cli.Debug, cli.JSON)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
