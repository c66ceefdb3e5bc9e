package searcher

import "othello/game"

// randomMove picks uniformly among moves.
func (s *Searcher) randomMove(moves []game.Move) game.Move {
	return moves[s.rng.Intn(len(moves))]
}
