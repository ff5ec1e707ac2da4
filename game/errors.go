package game

import "errors"

var (
	// ErrIllegalMove is returned when a move outside the legal set is played.
	ErrIllegalMove = errors.New("illegal move")
	// ErrNoLegalMoves is returned when a move is requested for a blocked player.
	ErrNoLegalMoves = errors.New("no legal moves available")
	ErrGameOver     = errors.New("game is over - no moves allowed")
	// ErrQuit signals that the user closed the game before it finished.
	ErrQuit = errors.New("quit requested")
)
