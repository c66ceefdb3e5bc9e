package game

import (
	"errors"
	"fmt"
)

const BoardSize = 8

// ErrInvalidCoordinate is returned for cells outside the 8x8 grid.
var ErrInvalidCoordinate = errors.New("coordinate outside the board")

// Move is a stone placement at column X, row Y, or a pass.
type Move struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Pass bool `json:"pass,omitempty"`
}

// Pass is played when the side to move has no legal placement.
var Pass = Move{Pass: true}

// NewMove returns the placement at (x, y).
func NewMove(x, y int) (Move, error) {
	if err := CheckCoordinate(x, y); err != nil {
		return Move{}, err
	}
	return Move{X: x, Y: y}, nil
}

// OnBoard reports whether (x, y) is a cell of the grid.
func OnBoard(x, y int) bool {
	return 0 <= x && x < BoardSize && 0 <= y && y < BoardSize
}

func CheckCoordinate(x, y int) error {
	if !OnBoard(x, y) {
		return fmt.Errorf("(%d,%d): %w", x, y, ErrInvalidCoordinate)
	}
	return nil
}

func (m Move) IsPass() bool {
	return m.Pass
}

func (m Move) index() int {
	return m.X + BoardSize*m.Y
}

func (m Move) String() string {
	if m.Pass {
		return "pass"
	}
	return fmt.Sprintf("%c%d", 'a'+m.X, m.Y+1)
}
