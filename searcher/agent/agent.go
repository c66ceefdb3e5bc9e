package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Agent plays one side of a game and keeps its own copy of the board.
type Agent interface {
	Side() game.Side
	// DoMove applies the opponent's last move (game.Pass when it had none),
	// then picks, applies and returns a reply. msLeft is the time left on the
	// agent's clock in milliseconds; a negative value means no limit.
	DoMove(opponentsMove game.Move, msLeft int) (game.Move, metrics.SearchMetric, error)
}
