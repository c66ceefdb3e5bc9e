package searcher

import "othello/game"

// greedyMove plays each candidate on a copy of board and keeps the first one
// with the highest heuristic score.
func (s *Searcher) greedyMove(board game.Board, side game.Side, moves []game.Move) (game.Move, int) {
	best := 0
	bestScore := 0
	for i, move := range moves {
		// Simulate move
		hypothetical := board.Copy()
		hypothetical.Apply(side, move)
		s.metrics.AddLeaf()

		score := s.evaluate(hypothetical, move, side)
		if i == 0 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	return moves[best], bestScore
}
