package searcher

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
)

type Option func(ab *AlphaBeta)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning. The maximizer
// takes the max over its children and its opponent the min, both over the same
// evaluation.
type AlphaBeta struct {
	depth     int
	maximizer game.Player
	evaluate  game.Evaluate
	metrics   metrics.Collector
}

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithMaximizer sets the player whose turns maximize the evaluation.
func WithMaximizer(player game.Player) Option {
	return func(ab *AlphaBeta) {
		if player == game.Black || player == game.White {
			ab.maximizer = player
		}
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{ // Default values
		depth:     meta.SearchDepth,
		maximizer: game.Black,
		evaluate:  game.EvaluatePosition,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// FindMove searches every legal move of the player to move and returns the first one,
// in legal move order, that reaches the best value.
func (ab *AlphaBeta) FindMove(state game.State) (game.Position, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Position{}, metrics.SearchMetric{}, fmt.Errorf("%s cannot move: %w", state.Player(), game.ErrNoLegalMoves)
	}

	ab.metrics.Start(ab.depth)
	ab.metrics.AddNode()

	maximizing := state.Player() == ab.maximizer
	alpha, beta := NegInfinity, Infinity
	best := moves[0]
	bestValue := Infinity
	if maximizing {
		bestValue = NegInfinity
	}

	for _, move := range moves {
		value := ab.search(state.Play(move), ab.depth-1, alpha, beta)
		if maximizing && value > bestValue {
			best, bestValue = move, value
			alpha = max(alpha, value)
		} else if !maximizing && value < bestValue {
			best, bestValue = move, value
			beta = min(beta, value)
		}
	}

	metric := ab.metrics.Complete(bestValue)
	log.Debug().
		Str("player", state.Player().String()).
		Str("move", best.String()).
		Int("value", bestValue).
		Int("depth", ab.depth).
		Msgf("searched %d nodes, %d leaves, %d cutoffs", metric.Nodes, metric.Leaves, metric.Cutoffs)

	return best, metric, nil
}

// Value returns the minimax value of the state at the configured depth.
func (ab *AlphaBeta) Value(state game.State) int {
	return ab.search(state, ab.depth, NegInfinity, Infinity)
}

func (ab *AlphaBeta) search(state game.State, depth int, alpha, beta int) int {
	ab.metrics.AddNode()

	if depth <= 0 || state.IsTerminal() {
		ab.metrics.AddLeaf()
		return ab.evaluate(state)
	}

	moves := state.LegalMoves()
	if len(moves) == 0 {
		// The opponent can still move, so the turn passes without using up a ply
		ab.metrics.AddPass()
		return ab.search(state.Pass(), depth, alpha, beta)
	}

	if state.Player() == ab.maximizer {
		value := NegInfinity
		for _, move := range moves {
			value = max(value, ab.search(state.Play(move), depth-1, alpha, beta))
			if value >= beta {
				ab.metrics.AddCutoff()
				return value
			}
			alpha = max(alpha, value)
		}
		return value
	}

	value := Infinity
	for _, move := range moves {
		value = min(value, ab.search(state.Play(move), depth-1, alpha, beta))
		if value <= alpha {
			ab.metrics.AddCutoff()
			return value
		}
		beta = min(beta, value)
	}
	return value
}
