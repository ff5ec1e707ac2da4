package engine

import (
	"othello/experiments/metrics"
	"othello/game"
)

// Renderer draws the game and collects the human player's input.
type Renderer interface {
	// Render draws the full board of the state
	Render(state *game.GameState)
	// HighlightLegalMoves marks the cells the player to move can select
	HighlightLegalMoves(moves []game.Position)
	// Refresh redraws every cell from the board, after each move or pass
	Refresh(board game.Board)
	// AwaitInput blocks until a cell is picked, or returns game.ErrQuit
	AwaitInput() (game.Position, error)
	// AnnounceResult shows the outcome and returns once the user closes the display
	AnnounceResult(winner game.Player)
}

// MoveProvider chooses a move among the legal moves of the player to move.
type MoveProvider interface {
	FindMove(state *game.GameState, moves []game.Position) (game.Position, metrics.SearchMetric, error)
}
