package ui

import (
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Headless logs the game instead of drawing it. It has no user, so AwaitInput always
// asks to quit; it is meant for games between computer players.
type Headless struct{}

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Render(state *game.GameState) {
	log.Debug().Msgf("%s to move\n%s", state.ToMove, state.Board)
}

func (h *Headless) HighlightLegalMoves(moves []game.Position) {
	log.Trace().Msgf("legal moves: %v", moves)
}

func (h *Headless) Refresh(board game.Board) {
	log.Trace().Msgf("board\n%s", board)
}

func (h *Headless) AwaitInput() (game.Position, error) {
	return game.Position{}, game.ErrQuit
}

func (h *Headless) AnnounceResult(winner game.Player) {
	log.Info().Msgf("result: %s", resultText(winner))
}
