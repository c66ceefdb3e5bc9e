package game

type StateHash uint64

// Outcomes reported by State.Winner besides a side's name.
const (
	InProgress = ""
	Draw       = "draw"
)

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Side
	Board() Board
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

// Evaluate scores board from side's perspective after lastMove was played.
// Higher is better for side.
type Evaluate func(board Board, lastMove Move, side Side) int
