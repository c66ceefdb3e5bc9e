package searcher

import "othello/game"

// minimaxMove returns the root move with the highest backed-up value for
// side, keeping the first on ties.
func (s *Searcher) minimaxMove(board game.Board, side game.Side, moves []game.Move) (game.Move, int) {
	s.metrics.AddNode()
	best := 0
	bestValue := 0
	for i, move := range moves {
		value := s.branch(board, move, side, side, s.depth)
		if i == 0 || value > bestValue {
			best = i
			bestValue = value
		}
	}
	return moves[best], bestValue
}

// Value is the backed-up minimax value of board with toMove to play, scored
// for home with depth plies of lookahead left.
//
// The guest side is modeled as minimizing home's score rather than
// maximizing its own heuristic.
func (s *Searcher) Value(board game.Board, toMove, home game.Side, depth int) int {
	if depth < 0 {
		s.metrics.AddLeaf()
		return 0
	}

	moves := board.LegalMoves(toMove)
	if len(moves) == 0 {
		s.metrics.AddLeaf()
		if toMove == home {
			return -s.noMoveScore
		}
		return s.noMoveScore
	}
	s.metrics.AddNode()

	value := s.branch(board, moves[0], toMove, home, depth)
	for _, move := range moves[1:] {
		v := s.branch(board, move, toMove, home, depth)
		if toMove == home && v > value || toMove != home && v < value {
			value = v
		}
	}
	return value
}

// branch plays move for toMove on a copy of board, searches the reply, and
// adds the mover's heuristic for home or subtracts it for the guest.
func (s *Searcher) branch(board game.Board, move game.Move, toMove, home game.Side, depth int) int {
	child := board.Copy()
	child.Apply(toMove, move)

	value := s.Value(child, toMove.Opponent(), home, depth-1)
	score := s.evaluate(child, move, toMove)
	if toMove == home {
		return value + score
	}
	return value - score
}
