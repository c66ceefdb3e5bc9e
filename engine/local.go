package engine

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/searcher/agent"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Option func(e *LocalGame)

// LocalGame runs two in-process agents against each other, passing every
// move through a referee.
type LocalGame struct {
	referee *gamemaster.Referee
	agents  [2]agent.Agent // Indexed by game.Side
	clock   quartz.Clock
	budget  time.Duration // Per side; zero means no limit
	left    [2]time.Duration
}

func WithClock(clock quartz.Clock) Option {
	return func(e *LocalGame) {
		e.clock = clock
	}
}

// WithBudget gives each side a total thinking time for the game. An agent
// that exceeds it forfeits.
func WithBudget(budget time.Duration) Option {
	return func(e *LocalGame) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

// WithStart plays from position instead of the opening. The agents must be
// set up with the same board.
func WithStart(position game.Position) Option {
	return func(e *LocalGame) {
		e.referee = gamemaster.NewReferee(position)
	}
}

func LocalEngine(black, white agent.Agent, options ...Option) *LocalGame {
	if black.Side() != game.Black || white.Side() != game.White {
		panic("agents do not match their sides")
	}

	e := &LocalGame{
		referee: gamemaster.NewReferee(nil),
		agents:  [2]agent.Agent{game.Black: black, game.White: white},
		clock:   quartz.NewReal(),
	}
	for _, option := range options {
		option(e)
	}
	e.left = [2]time.Duration{e.budget, e.budget}
	return e
}

func (e *LocalGame) State() game.State {
	return e.referee.State()
}

func (e *LocalGame) History() []gamemaster.Update {
	return e.referee.History()
}

// Run executes the game loop until the game is over. The winner is "black",
// "white", game.Draw, or game.InProgress when the turn cap was hit.
func (e *LocalGame) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.referee.State().Player().String(),
		StartTime:      e.clock.Now(),
	}
	log.Info().Msgf("%s is starting", gameMetric.StartingPlayer)

	var moveMetrics []metrics.MoveMetric
	forfeit := ""
	last := game.Pass
	for step := 1; !e.referee.IsGameOver() && step <= meta.MAX_TURNS; step++ {
		side := e.referee.State().Player()

		msLeft := -1
		if e.budget > 0 {
			msLeft = int(e.left[side].Milliseconds())
		}
		start := e.clock.Now()
		move, search, err := e.agents[side].DoMove(last, msLeft)
		elapsed := e.clock.Since(start)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       side.String(),
			Move:         move.String(),
			Elapsed:      elapsed,
			SearchMetric: search,
		})

		if err != nil {
			log.Warn().Err(err).Str("player", side.String()).Msg("agent failed, forfeiting")
			forfeit = side.Opponent().String()
			break
		}
		if e.budget > 0 {
			e.left[side] -= elapsed
			if e.left[side] < 0 {
				log.Warn().Str("player", side.String()).Dur("over", -e.left[side]).Msg("out of time, forfeiting")
				forfeit = side.Opponent().String()
				break
			}
		}
		if err := e.referee.Play(side, move); err != nil {
			log.Warn().Err(err).Str("player", side.String()).Msg("rejected move, forfeiting")
			forfeit = side.Opponent().String()
			break
		}
		last = move
	}

	winner := forfeit
	if winner == "" {
		winner = e.referee.State().Winner()
	}
	if winner == game.InProgress {
		log.Warn().Msgf("stopped after %d turns without a winner", meta.MAX_TURNS)
	} else {
		log.Info().Msgf("game ended, winner: %s", winner)
	}

	history := e.referee.History()
	board := e.referee.State().Board()
	gameMetric.Winner = winner
	gameMetric.EndTime = e.clock.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(history)
	gameMetric.Passes = lo.CountBy(history, func(u gamemaster.Update) bool { return u.Move.IsPass() })
	gameMetric.BlackStones = board.CountStones(game.Black)
	gameMetric.WhiteStones = board.CountStones(game.White)

	return winner, gameMetric, moveMetrics
}
