package engine

import "othello/experiments/metrics"

type Engine interface {
	// Run plays a game till it is over, an agent forfeits or meta.MAX_TURNS
	// moves have been made
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
