// meta/meta.go
package meta

import "time"

// DefaultDepth is the minimax depth used when none is configured. Depth d
// looks d+1 plies ahead.
const DefaultDepth = 2

// NoMoveScore is the minimax value of a side being stuck. It exceeds the
// largest heuristic score of a single move.
const NoMoveScore = 128

// MAX_TURNS caps a local game; an Othello game needs at most 60 placements
// plus passes.
const MAX_TURNS = 200

// TestingMinimaxDepth is the depth a player uses when running the minimax
// test harness (two plies).
const TestingMinimaxDepth = 1

// LowTime is the remaining budget under which a player stops searching
// deeply and falls back to the greedy heuristic.
const LowTime = 2 * time.Second

// GameBudget is the default per-game time budget of each player.
const GameBudget = 5 * time.Minute
