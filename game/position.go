package game

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// Position is a board together with the side to move. It implements State.
type Position struct {
	board  Board
	toMove Side
}

// NewPosition returns the standard opening with Black to move.
func NewPosition() Position {
	return Position{board: NewBoard(), toMove: Black}
}

// PositionOf pairs an arbitrary board with the side to move.
func PositionOf(board Board, toMove Side) Position {
	return Position{board: board, toMove: toMove}
}

func (p Position) Player() Side {
	return p.toMove
}

func (p Position) Board() Board {
	return p.board
}

// LegalMoves returns the placements for the side to move, a lone Pass when
// that side is stuck but the opponent is not, and nothing once the game is
// over.
func (p Position) LegalMoves() []Move {
	moves := p.board.LegalMoves(p.toMove)
	if len(moves) > 0 {
		return moves
	}
	if p.board.HasAnyMove(p.toMove.Opponent()) {
		return []Move{Pass}
	}
	return nil
}

// Play returns the position after move. The turn always passes to the
// opponent; an illegal placement leaves the board as it was.
func (p Position) Play(move Move) State {
	next := Position{board: p.board.Copy(), toMove: p.toMove.Opponent()}
	next.board.Apply(p.toMove, move)
	return next
}

func (p Position) Hash() StateHash {
	var buf [17]byte
	binary.LittleEndian.PutUint64(buf[0:8], p.board.taken)
	binary.LittleEndian.PutUint64(buf[8:16], p.board.black)
	buf[16] = byte(p.toMove)
	return StateHash(xxhash.Sum64(buf[:]))
}

// Winner returns the winning side's name, Draw, or InProgress.
func (p Position) Winner() string {
	if !p.board.IsGameOver() {
		return InProgress
	}
	winner, ok := p.board.Winner()
	if !ok {
		return Draw
	}
	return winner.String()
}
