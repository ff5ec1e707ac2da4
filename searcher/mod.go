package searcher

import (
	"math"
	"othello/experiments/metrics"
	"othello/game"
)

// Bounds of the search window
const (
	Infinity    = math.MaxInt
	NegInfinity = math.MinInt
)

type Searcher interface {
	// FindMove returns the best move for the player to move and the metrics collected
	// while searching for it
	FindMove(state game.State) (game.Position, metrics.SearchMetric, error)
}
