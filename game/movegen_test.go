package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// stuckWhite has a lone white stone next to a black corner: Black can capture
// it, White has nowhere to play.
const stuckWhite = `
	b w - - - - - -
	- - - - - - - -
	- - - - - - - -
	- - - - - - - -
	- - - - - - - -
	- - - - - - - -
	- - - - - - - -
	- - - - - - - -`

func TestLegalMovesOpening(t *testing.T) {
	b := NewBoard()

	got := b.LegalMoves(Black)

	expected := []Move{{X: 2, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 5}, {X: 5, Y: 4}}
	require.Equal(t, expected, got, "Black's opening moves in column-major scan order")
	require.Len(t, b.LegalMoves(White), 4)
}

func TestIsLegal(t *testing.T) {
	b := NewBoard()

	t.Run("occupied cell", func(t *testing.T) {
		require.False(t, b.IsLegal(Black, Move{X: 3, Y: 3}))
	})

	t.Run("empty cell that flanks nothing", func(t *testing.T) {
		require.False(t, b.IsLegal(Black, Move{X: 0, Y: 0}))
	})

	t.Run("adjacent opponent stone without a closing stone", func(t *testing.T) {
		require.False(t, b.IsLegal(Black, Move{X: 2, Y: 2}), "c3 touches d4 diagonally but e5 is white")
	})

	t.Run("off-grid placement", func(t *testing.T) {
		require.False(t, b.IsLegal(Black, Move{X: 8, Y: 3}))
		require.False(t, b.IsLegal(Black, Move{X: -1, Y: -1}))
	})

	t.Run("pass is illegal while placements exist", func(t *testing.T) {
		require.False(t, b.IsLegal(Black, Pass))
	})

	t.Run("pass is legal when stuck", func(t *testing.T) {
		stuck := MustParseGrid(stuckWhite)
		require.True(t, stuck.IsLegal(White, Pass))
		require.False(t, stuck.IsLegal(Black, Pass))
		require.Empty(t, stuck.LegalMoves(White))
		require.Equal(t, []Move{{X: 2, Y: 0}}, stuck.LegalMoves(Black))
	})
}

func TestApplyCapture(t *testing.T) {
	t.Run("black left of center flips one white stone", func(t *testing.T) {
		b := NewBoard()

		applied := b.Apply(Black, Move{X: 2, Y: 3})

		require.True(t, applied)
		require.Equal(t, 4, b.CountStones(Black))
		require.Equal(t, 1, b.CountStones(White))
		require.True(t, b.ColorAt(Black, 3, 3), "d4 should be flipped")
		require.True(t, b.ColorAt(White, 4, 4), "e5 should stay white")
	})

	t.Run("flips runs in several directions at once", func(t *testing.T) {
		b := MustParseGrid(`
			b - b - b - - -
			- w w w - - - -
			b w - w b - - -
			- w w w - - - -
			b - b - b - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -`)

		require.True(t, b.Apply(Black, Move{X: 2, Y: 2}))

		require.Equal(t, 0, b.CountStones(White), "All eight neighbors should be captured")
		require.Equal(t, 17, b.CountStones(Black))
	})

	t.Run("stops at the first own stone", func(t *testing.T) {
		b := MustParseGrid(`
			- w b w b - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -
			- - - - - - - -`)

		require.True(t, b.Apply(Black, Move{X: 0, Y: 0}))

		require.True(t, b.ColorAt(Black, 1, 0))
		require.True(t, b.ColorAt(White, 3, 0), "Stones beyond the closing stone stay put")
	})

	t.Run("illegal moves are ignored", func(t *testing.T) {
		b := NewBoard()
		before := b

		require.False(t, b.Apply(Black, Move{X: 0, Y: 0}))
		require.False(t, b.Apply(Black, Move{X: 3, Y: 3}))
		require.False(t, b.Apply(Black, Move{X: 9, Y: 9}))
		require.False(t, b.Apply(Black, Pass))
		require.Equal(t, before, b, "Board should not change")
	})
}

func TestGameOver(t *testing.T) {
	t.Run("opening is not over", func(t *testing.T) {
		b := NewBoard()
		require.False(t, b.IsGameOver())
		_, ok := b.Winner()
		require.False(t, ok)
	})

	t.Run("one side stuck is not over", func(t *testing.T) {
		require.False(t, MustParseGrid(stuckWhite).IsGameOver())
	})

	t.Run("only one color left", func(t *testing.T) {
		b := MustParseGrid("bb" + strings.Repeat("-", 62))
		require.True(t, b.IsGameOver())
		winner, ok := b.Winner()
		require.True(t, ok)
		require.Equal(t, Black, winner)
	})

	t.Run("drawn full board", func(t *testing.T) {
		var cells [64]Cell
		for i := range cells {
			if i%2 == 0 {
				cells[i] = BlackStone
			} else {
				cells[i] = WhiteStone
			}
		}
		var b Board
		b.LoadGrid(cells)
		require.True(t, b.IsGameOver())
		_, ok := b.Winner()
		require.False(t, ok, "Equal counts should not have a winner")
	})
}

// TestRandomPlayouts checks the occupancy and legality invariants along many
// random games from the opening.
func TestRandomPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		b := NewBoard()
		side := Black
		for !b.IsGameOver() {
			requireLegalityAgreement(t, b, Black)
			requireLegalityAgreement(t, b, White)

			moves := b.LegalMoves(side)
			stones := b.CountStones(Black) + b.CountStones(White)
			if len(moves) == 0 {
				before := b
				require.False(t, b.Apply(side, Pass))
				require.Equal(t, before, b, "A pass should change nothing")
			} else {
				move := moves[rng.Intn(len(moves))]
				require.True(t, b.Apply(side, move))
				require.Equal(t, stones+1, b.CountStones(Black)+b.CountStones(White),
					"Each placement should add exactly one stone")
			}

			require.Zero(t, b.stones(Black)&b.stones(White), "Colors should be disjoint")
			require.Equal(t, b.taken, b.stones(Black)|b.stones(White), "Every stone should have a color")
			require.LessOrEqual(t, b.CountStones(Black)+b.CountStones(White), 64)
			side = side.Opponent()
		}
	}
}

func requireLegalityAgreement(t *testing.T, b Board, side Side) {
	t.Helper()

	moves := b.LegalMoves(side)
	require.Equal(t, b.HasAnyMove(side), !b.IsLegal(side, Pass))
	require.Equal(t, len(moves) > 0, b.HasAnyMove(side))

	legal := make(map[Move]bool, len(moves))
	for _, m := range moves {
		require.True(t, b.IsLegal(side, m), "generated move %s should be legal", m)
		legal[m] = true
	}
	for x := 0; x < BoardSize; x++ {
		for y := 0; y < BoardSize; y++ {
			m := Move{X: x, Y: y}
			require.Equal(t, legal[m], b.IsLegal(side, m), "legality of %s", m)
		}
	}
}
