package player

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// InputSource blocks until the user picks a cell or asks to quit (game.ErrQuit).
type InputSource interface {
	AwaitInput() (game.Position, error)
}

// Human asks the user for a move and keeps asking until a legal one is picked.
type Human struct {
	input InputSource
}

func NewHuman(input InputSource) *Human {
	return &Human{input: input}
}

func (h *Human) FindMove(state *game.GameState, moves []game.Position) (game.Position, metrics.SearchMetric, error) {
	for {
		pos, err := h.input.AwaitInput()
		if err != nil {
			return game.Position{}, metrics.SearchMetric{}, err
		}
		if slices.Contains(moves, pos) {
			return pos, metrics.SearchMetric{}, nil
		}
		log.Debug().Msgf("%s selected illegal move %s, waiting for another", state.ToMove, pos)
	}
}

// Computer picks its moves with a searcher.
type Computer struct {
	searcher searcher.Searcher
}

func NewComputer(s searcher.Searcher) *Computer {
	return &Computer{searcher: s}
}

func (c *Computer) FindMove(state *game.GameState, moves []game.Position) (game.Position, metrics.SearchMetric, error) {
	return c.searcher.FindMove(state)
}
