package engine

import (
	"multiagent/experiments/metrics"
	"multiagent/meta"
)

const MaxMoves = meta.MAX_MOVES

type Engine interface {
	// Run plays a game till it is won or lost or a max number of moves is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
