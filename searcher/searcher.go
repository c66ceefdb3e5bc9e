package searcher

import (
	"time"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/coder/quartz"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Searcher)

// Searcher chooses moves for one side. It is not safe for concurrent use:
// the random source and metrics collector are per-searcher state.
type Searcher struct {
	mode        Mode
	depth       int
	rng         *rand.Rand
	evaluate    game.Evaluate
	noMoveScore int
	metrics     metrics.Collector
}

// WithDepth sets the minimax depth. Depth d searches d+1 plies. A negative
// depth panics.
func WithDepth(depth int) Option {
	if depth < 0 {
		panic("Search depth must not be negative")
	}
	return func(s *Searcher) {
		s.depth = depth
	}
}

// WithSeed makes random mode reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithNoMoveScore sets the magnitude scored when a side is stuck during
// minimax. It must be positive.
func WithNoMoveScore(score int) Option {
	if score <= 0 {
		panic("No-move score must be positive")
	}
	return func(s *Searcher) {
		s.noMoveScore = score
	}
}

func WithMetrics(clock quartz.Clock) Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector(clock)
	}
}

func NewSearcher(mode Mode, options ...Option) *Searcher {
	if _, ok := modeNames[mode]; !ok {
		panic("unknown search mode")
	}
	s := &Searcher{ // Default values
		mode:        mode,
		depth:       meta.DefaultDepth,
		evaluate:    game.Heuristic,
		noMoveScore: meta.NoMoveScore,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

func (s *Searcher) Mode() Mode {
	return s.mode
}

func (s *Searcher) Depth() int {
	return s.depth
}

// Search picks a move for side on board. The board is never modified. When
// side has no legal placement the result is game.Pass and nothing is
// evaluated.
func (s *Searcher) Search(board game.Board, side game.Side) Result {
	s.metrics.Start(s.mode.String(), s.depth)
	moves := board.LegalMoves(side)
	s.metrics.SetCandidates(len(moves))
	if len(moves) == 0 {
		log.Debug().Str("side", side.String()).Msg("no legal move, passing")
		return Result{Move: game.Pass, Metric: s.metrics.Complete(0)}
	}

	var move game.Move
	var value int
	switch s.mode {
	case RandomMode:
		move = s.randomMove(moves)
	case GreedyMode:
		move, value = s.greedyMove(board, side, moves)
	case MinimaxMode:
		move, value = s.minimaxMove(board, side, moves)
	}

	metric := s.metrics.Complete(value)
	log.Debug().
		Str("side", side.String()).
		Str("mode", s.mode.String()).
		Int("depth", s.depth).
		Int("candidates", len(moves)).
		Stringer("move", move).
		Int("value", value).
		Msg("search complete")
	return Result{Move: move, Value: value, Metric: metric}
}

// FindMove implements MoveFinder.
func (s *Searcher) FindMove(board game.Board, side game.Side) (game.Move, metrics.SearchMetric) {
	result := s.Search(board, side)
	return result.Move, result.Metric
}

// ChooseMove picks a move for side with a fresh searcher. depth only matters
// in MinimaxMode but must not be negative in any mode.
func ChooseMove(board game.Board, side game.Side, mode Mode, depth int) game.Move {
	move, _ := NewSearcher(mode, WithDepth(depth)).FindMove(board, side)
	return move
}
