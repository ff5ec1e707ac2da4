package player

import (
	"othello/experiments/metrics"
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent of the
// experiments; a fixed seed replays the same games.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state *game.GameState, moves []game.Position) (game.Position, metrics.SearchMetric, error) {
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, game.ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
