package game

// Weights are the bonuses and penalties the heuristic adds for where the last
// stone landed. All values are magnitudes; the sign is fixed by the term.
type Weights struct {
	Corner     int // last move took a corner
	Edge       int // last move is on the border but not a corner
	NearCorner int // last move is one of the eight danger squares next to a corner
	NearEdge   int // last move is one step in from the border, away from corners
}

// DefaultWeights favor corners, mildly favor edges, and penalize the squares
// that hand corners and edges to the opponent.
var DefaultWeights = Weights{
	Corner:     40,
	Edge:       10,
	NearCorner: 20,
	NearEdge:   5,
}

// NewEvaluator returns the static heuristic using weights w.
func NewEvaluator(w Weights) Evaluate {
	return func(board Board, lastMove Move, side Side) int {
		// Count tile advantage, then adjust for where the stone went.
		score := board.CountDifference(side)
		if lastMove.Pass {
			return score
		}
		x, y := lastMove.X, lastMove.Y
		if IsCorner(x, y) {
			score += w.Corner
		} else if IsEdge(x, y) {
			score += w.Edge
		}
		if IsNearCorner(x, y) {
			score -= w.NearCorner
		} else if IsNearEdge(x, y) {
			score -= w.NearEdge
		}
		return score
	}
}

// Heuristic is the evaluator with DefaultWeights.
var Heuristic = NewEvaluator(DefaultWeights)

func border(v int) bool {
	return v == 0 || v == BoardSize-1
}

func nextToBorder(v int) bool {
	return v == 1 || v == BoardSize-2
}

// IsCorner reports whether (x, y) is one of the four corners.
func IsCorner(x, y int) bool {
	return border(x) && border(y)
}

// IsEdge reports whether (x, y) is on the border ring but not a corner.
func IsEdge(x, y int) bool {
	return (border(x) || border(y)) && !IsCorner(x, y)
}

// IsNearCorner reports whether (x, y) is one of the eight danger squares
// next to a corner: the four X-squares and the C-squares on the top and
// bottom rows (b1, g1, b8, g8).
func IsNearCorner(x, y int) bool {
	return nextToBorder(x) && (border(y) || nextToBorder(y))
}

// IsNearEdge reports whether (x, y) is an interior cell one step in from the
// border and not diagonal to a corner.
func IsNearEdge(x, y int) bool {
	if border(x) || border(y) {
		return false
	}
	return (nextToBorder(x) || nextToBorder(y)) && !(nextToBorder(x) && nextToBorder(y))
}
