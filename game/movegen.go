package game

// The eight compass directions as (dx, dy).
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Flips returns the stones side would capture by playing move, as a bit set
// indexed x + 8*y. It is zero for passes, occupied or off-grid cells, and
// placements that flank nothing.
func (b Board) Flips(side Side, move Move) uint64 {
	if move.Pass || !OnBoard(move.X, move.Y) || b.IsOccupied(move.X, move.Y) {
		return 0
	}
	other := side.Opponent()
	var flips uint64
	for _, d := range directions {
		var run uint64
		x, y := move.X+d[0], move.Y+d[1]
		for b.ColorAt(other, x, y) {
			run |= bit(x, y)
			x += d[0]
			y += d[1]
		}
		// A run only counts when it is closed by one of side's own stones.
		if run != 0 && b.ColorAt(side, x, y) {
			flips |= run
		}
	}
	return flips
}

// IsLegal reports whether side may play move. A pass is legal only when side
// has no placement available.
func (b Board) IsLegal(side Side, move Move) bool {
	if move.Pass {
		return !b.HasAnyMove(side)
	}
	return b.Flips(side, move) != 0
}

// LegalMoves lists every legal placement for side, scanning columns in the
// outer loop and rows in the inner loop. A pass is never included.
func (b Board) LegalMoves(side Side) []Move {
	var moves []Move
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			move := Move{X: x, Y: y}
			if b.Flips(side, move) != 0 {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// HasAnyMove reports whether side has at least one legal placement.
func (b Board) HasAnyMove(side Side) bool {
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			if b.Flips(side, Move{X: x, Y: y}) != 0 {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether neither side can place a stone.
func (b Board) IsGameOver() bool {
	return !b.HasAnyMove(Black) && !b.HasAnyMove(White)
}

// Apply plays move for side, flipping every flanked run. Passes and illegal
// or off-grid placements leave the board untouched and report false.
func (b *Board) Apply(side Side, move Move) bool {
	flips := b.Flips(side, move)
	if flips == 0 {
		return false
	}
	changed := flips | bit(move.X, move.Y)
	b.taken |= changed
	if side == Black {
		b.black |= changed
	} else {
		b.black &^= changed
	}
	return true
}

// Winner returns the side with more stones once the game is over. ok is
// false while moves remain or when the stone counts are equal.
func (b Board) Winner() (winner Side, ok bool) {
	if !b.IsGameOver() {
		return Black, false
	}
	switch diff := b.CountDifference(Black); {
	case diff > 0:
		return Black, true
	case diff < 0:
		return White, true
	}
	return Black, false
}
