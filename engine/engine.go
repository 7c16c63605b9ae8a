package engine

import "kalaha/experiments/metrics"

// MaxMoves bounds a single game's total sows as a safety stop.
const MaxMoves = 10000

// MaxRetries bounds consecutive rejected moves before the game is
// abandoned, so a policy that keeps producing illegal pits cannot wedge
// the board.
const MaxRetries = 100

// Engine runs one game to completion.
type Engine interface {
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
