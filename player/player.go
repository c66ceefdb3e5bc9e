package player

import (
	"fmt"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Player is the home side of a game. It mirrors every move on its own board
// and chooses replies with a searcher picked from the time it has left.
type Player struct {
	home  game.Side
	guest game.Side
	board game.Board

	searcher *searcher.Searcher // Configured search
	lowTime  *searcher.Searcher // Greedy, when the clock runs low
	testing  *searcher.Searcher // Shallow minimax for fixture tests

	// TestingMinimax forces a two-ply minimax search regardless of the clock.
	TestingMinimax bool
}

// NewPlayer returns a player for side starting from the opening position.
// options configure every searcher the player uses.
func NewPlayer(side game.Side, mode searcher.Mode, options ...searcher.Option) *Player {
	shallow := append(options[:len(options):len(options)], searcher.WithDepth(meta.TestingMinimaxDepth))
	return &Player{
		home:     side,
		guest:    side.Opponent(),
		board:    game.NewBoard(),
		searcher: searcher.NewSearcher(mode, options...),
		lowTime:  searcher.NewSearcher(searcher.GreedyMode, options...),
		testing:  searcher.NewSearcher(searcher.MinimaxMode, shallow...),
	}
}

func (p *Player) Side() game.Side {
	return p.home
}

func (p *Player) Board() game.Board {
	return p.board
}

func (p *Player) SetBoard(board game.Board) {
	p.board = board
}

// SetUpBoard replaces the board with a grid fixture, see game.ParseGrid.
func (p *Player) SetUpBoard(grid string) error {
	board, err := game.ParseGrid(grid)
	if err != nil {
		return fmt.Errorf("failed to set up board: %w", err)
	}
	p.board = board
	return nil
}

// DoMove applies the opponent's move, then searches, applies and returns the
// player's own move. It returns game.Pass when the player has no placement.
func (p *Player) DoMove(opponentsMove game.Move, msLeft int) (game.Move, metrics.SearchMetric, error) {
	if !p.board.Apply(p.guest, opponentsMove) && !opponentsMove.IsPass() {
		log.Warn().
			Str("player", p.home.String()).
			Stringer("move", opponentsMove).
			Msg("ignoring illegal opponent move")
	}

	s := p.pickSearcher(msLeft)
	move, metric := s.FindMove(p.board, p.home)
	p.board.Apply(p.home, move)

	log.Debug().
		Str("player", p.home.String()).
		Int("msLeft", msLeft).
		Str("mode", s.Mode().String()).
		Stringer("move", move).
		Msg("player moved")
	return move, metric, nil
}

func (p *Player) pickSearcher(msLeft int) *searcher.Searcher {
	switch {
	case p.TestingMinimax:
		return p.testing
	case msLeft >= 0 && int64(msLeft) < meta.LowTime.Milliseconds():
		return p.lowTime
	default:
		return p.searcher
	}
}
