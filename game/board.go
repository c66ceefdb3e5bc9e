package game

import "math/bits"

// Board is an 8x8 Othello position stored as two bit sets indexed x + 8*y.
// black is always a subset of taken. Board is a value: assigning or copying
// it yields an independent board.
type Board struct {
	taken uint64
	black uint64
}

// NewBoard returns the standard opening position.
func NewBoard() Board {
	var b Board
	b.Place(White, 3, 3)
	b.Place(White, 4, 4)
	b.Place(Black, 4, 3)
	b.Place(Black, 3, 4)
	return b
}

func bit(x, y int) uint64 {
	return 1 << uint(x+BoardSize*y)
}

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	return b
}

// IsOccupied reports whether any stone is on (x, y). Cells off the grid are
// never occupied.
func (b Board) IsOccupied(x, y int) bool {
	return OnBoard(x, y) && b.taken&bit(x, y) != 0
}

// ColorAt reports whether (x, y) holds a stone of side's color.
func (b Board) ColorAt(side Side, x, y int) bool {
	if !b.IsOccupied(x, y) {
		return false
	}
	return (b.black&bit(x, y) != 0) == (side == Black)
}

// Place puts a stone of side's color on (x, y), recoloring whatever is there.
func (b *Board) Place(side Side, x, y int) {
	if !OnBoard(x, y) {
		return
	}
	mask := bit(x, y)
	b.taken |= mask
	if side == Black {
		b.black |= mask
	} else {
		b.black &^= mask
	}
}

// stones returns the bit set of side's stones.
func (b Board) stones(side Side) uint64 {
	if side == Black {
		return b.black
	}
	return b.taken &^ b.black
}

func (b Board) CountStones(side Side) int {
	return bits.OnesCount64(b.stones(side))
}

// CountDifference is side's stone count minus the opponent's.
func (b Board) CountDifference(side Side) int {
	return b.CountStones(side) - b.CountStones(side.Opponent())
}

// Empties is the number of unoccupied cells.
func (b Board) Empties() int {
	return BoardSize*BoardSize - bits.OnesCount64(b.taken)
}
