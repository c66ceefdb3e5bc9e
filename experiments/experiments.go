package experiments

import (
	"context"
	"fmt"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	NumGames    = 20 // Per match up
	Parallelism = 4
)

type Settings struct {
	NumGames    int
	Parallelism int
	OutDir      string // Records are skipped when empty
}

// Standing is one agent's results over the games it played against others.
type Standing struct {
	Agent     int // AgentConfig.ID
	Games     int
	Wins      int
	Losses    int
	Draws     int
	AvgStones float64
}

type Report struct {
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Standings []Standing
}

// RunModeExperiment plays every search mode against every other.
func RunModeExperiment(ctx context.Context, settings Settings) (Report, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Mode: searcher.RandomMode.String(), Seed: 1},
		{ID: 2, Mode: searcher.GreedyMode.String()},
		{ID: 3, Mode: searcher.MinimaxMode.String(), Depth: 1},
	}
	matchUps := [][2]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[0], configs[2]},
		{configs[1], configs[2]},
	}
	return runExperiment(ctx, "modes", configs, matchUps, settings)
}

// RunDepthExperiment pairs minimax at increasing depths against a greedy
// baseline.
func RunDepthExperiment(ctx context.Context, settings Settings, maxDepth int) (Report, error) {
	baseline := metrics.AgentConfig{ID: 0, Mode: searcher.GreedyMode.String()}
	configs := []metrics.AgentConfig{baseline}
	matchUps := [][2]metrics.AgentConfig{}
	for depth := 0; depth <= maxDepth; depth++ {
		config := metrics.AgentConfig{ID: depth + 1, Mode: searcher.MinimaxMode.String(), Depth: depth}
		configs = append(configs, config)
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return runExperiment(ctx, "depth", configs, matchUps, settings)
}

type gameJob struct {
	id           int
	black, white metrics.AgentConfig
}

type gameResult struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

func runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) (Report, error) {
	// Sides alternate so neither agent always moves first
	jobs := []gameJob{}
	for _, matchUp := range matchUps {
		for i := 0; i < settings.NumGames; i++ {
			black, white := matchUp[0], matchUp[1]
			if i%2 == 1 {
				black, white = white, black
			}
			jobs = append(jobs, gameJob{id: len(jobs) + 1, black: black, white: white})
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", name, len(jobs))

	results := make([]gameResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(settings.Parallelism, 1))
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[job.id-1] = runGame(job)
			log.Info().Msgf("completed game %d of %d (%d vs %d) with winner: %s",
				job.id, len(jobs), job.black.ID, job.white.ID, results[job.id-1].game.Winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("%s experiment interrupted: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)

	report := Report{
		Games: lo.Map(results, func(r gameResult, _ int) metrics.GameRecord { return r.game }),
		Moves: lo.FlatMap(results, func(r gameResult, _ int) []metrics.MoveRecord { return r.moves }),
	}
	report.Standings = summarize(configs, report.Games)
	for _, s := range report.Standings {
		log.Info().Msgf("agent %d: %d wins, %d losses, %d draws in %d games, %.1f stones on average",
			s.Agent, s.Wins, s.Losses, s.Draws, s.Games, s.AvgStones)
	}

	if settings.OutDir != "" {
		if err := writeReport(settings.OutDir, name, configs, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func writeReport(dir, name string, configs []metrics.AgentConfig, report Report) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return nil
}

// runGame plays one game between two fresh players.
func runGame(job gameJob) gameResult {
	black := newPlayer(game.Black, job.black, job.id)
	white := newPlayer(game.White, job.white, job.id)

	options := []engine.Option{}
	if budget := max(job.black.Budget, job.white.Budget); budget > 0 {
		options = append(options, engine.WithBudget(budget))
	}
	_, gameMetric, moveMetrics := engine.LocalEngine(black, white, options...).Run()

	return gameResult{
		game: metrics.GameRecord{
			ID:         job.id,
			Black:      job.black.ID,
			White:      job.white.ID,
			GameMetric: gameMetric,
		},
		moves: lo.Map(moveMetrics, func(mm metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: job.id, MoveMetric: mm}
		}),
	}
}

func newPlayer(side game.Side, config metrics.AgentConfig, gameID int) *player.Player {
	mode, err := searcher.ParseMode(config.Mode)
	if err != nil {
		panic(fmt.Sprintf("agent %d: %v", config.ID, err))
	}
	return player.NewPlayer(side, mode,
		searcher.WithDepth(config.Depth),
		searcher.WithSeed(config.Seed+uint64(gameID)),
		searcher.WithMetrics(nil),
	)
}

// summarize tallies every agent's results. Self-play games are left out.
func summarize(configs []metrics.AgentConfig, games []metrics.GameRecord) []Standing {
	return lo.Map(configs, func(c metrics.AgentConfig, _ int) Standing {
		played := lo.Filter(games, func(r metrics.GameRecord, _ int) bool {
			return r.Black != r.White && (r.Black == c.ID || r.White == c.ID)
		})
		side := func(r metrics.GameRecord) game.Side {
			if r.Black == c.ID {
				return game.Black
			}
			return game.White
		}

		s := Standing{Agent: c.ID, Games: len(played)}
		s.Wins = lo.CountBy(played, func(r metrics.GameRecord) bool { return r.Winner == side(r).String() })
		s.Losses = lo.CountBy(played, func(r metrics.GameRecord) bool { return r.Winner == side(r).Opponent().String() })
		s.Draws = lo.CountBy(played, func(r metrics.GameRecord) bool { return r.Winner == game.Draw })
		if s.Games > 0 {
			stones := lo.SumBy(played, func(r metrics.GameRecord) int {
				if side(r) == game.Black {
					return r.BlackStones
				}
				return r.WhiteStones
			})
			s.AvgStones = float64(stones) / float64(s.Games)
		}
		return s
	})
}
