package gamemaster

import (
	"errors"
	"fmt"

	"othello/game"

	"github.com/samber/lo"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrWrongTurn   = errors.New("not this side's turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is one move accepted by the referee and the hash of the position it
// produced.
type Update struct {
	Side game.Side
	Move game.Move
	Hash game.StateHash
}

// UpdateGetter returns the next update its caller has not seen yet, or false
// when it is up to date.
type UpdateGetter func() (Update, bool)

// Referee holds the authoritative game state and only lets legal moves
// through. Unlike game.Board.Apply, every rejected move is an error.
type Referee struct {
	state   game.State
	history []Update
}

// NewReferee starts refereeing from start, or from the opening position when
// start is nil.
func NewReferee(start game.State) *Referee {
	if start == nil {
		start = game.NewPosition()
	}
	return &Referee{state: start}
}

func (r *Referee) State() game.State {
	return r.state
}

func (r *Referee) IsGameOver() bool {
	return len(r.state.LegalMoves()) == 0
}

func (r *Referee) History() []Update {
	return r.history
}

// Updates returns a getter with its own read position, starting from the
// first move of the game.
func (r *Referee) Updates() UpdateGetter {
	next := 0
	return func() (Update, bool) {
		if next >= len(r.history) {
			return Update{}, false
		}
		u := r.history[next]
		next++
		return u, true
	}
}

// Play checks and plays move for side. A pass is only legal when side has no
// placement and the game is not over.
func (r *Referee) Play(side game.Side, move game.Move) error {
	legalMoves := r.state.LegalMoves()
	if len(legalMoves) == 0 {
		return ErrGameOver
	}
	if side != r.state.Player() {
		return fmt.Errorf("%s tried to move on %s's turn: %w", side, r.state.Player(), ErrWrongTurn)
	}
	if !lo.Contains(legalMoves, move) {
		return fmt.Errorf("%s cannot play %s: %w", side, move, ErrIllegalMove)
	}

	r.state = r.state.Play(move)
	r.history = append(r.history, Update{Side: side, Move: move, Hash: r.state.Hash()})
	return nil
}
