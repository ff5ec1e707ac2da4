package game

import "hash/fnv"

// GameState is a snapshot of the game between two turns. It is never modified once
// created: ApplyMove and Pass return new states. Legal moves are not cached on the
// state, LegalMoves computes them afresh on every call.
type GameState struct {
	ToMove  Player // The player whose turn it is
	Utility int    // Disk differential from the point of view of the last mover
	Board   Board
}

// NewGameState returns the starting position with Black to move.
func NewGameState() *GameState {
	return &GameState{
		ToMove: Black,
		Board:  NewBoard(),
	}
}

// Player returns the player to move.
func (gs *GameState) Player() Player {
	return gs.ToMove
}

// LegalMoves returns all legal moves for the player to move.
func (gs *GameState) LegalMoves() []Position {
	return gs.Board.LegalMoves(gs.ToMove)
}

func (gs *GameState) Cells() Board {
	return gs.Board
}

func (gs *GameState) HasAnyLegalMove(player Player) bool {
	return gs.Board.HasAnyLegalMove(player)
}

// ApplyMove returns the state after the player to move places a disk at move.
// The move must be legal.
func (gs *GameState) ApplyMove(move Position) *GameState {
	board := gs.Board
	board.place(move, gs.ToMove)
	return &GameState{
		ToMove:  gs.ToMove.Opponent(),
		Utility: Score(gs.ToMove, board),
		Board:   board,
	}
}

func (gs *GameState) Play(move Position) State {
	return gs.ApplyMove(move)
}

// Pass returns the state with the turn handed over and the board unchanged.
func (gs *GameState) Pass() State {
	return &GameState{
		ToMove:  gs.ToMove.Opponent(),
		Utility: gs.Utility,
		Board:   gs.Board,
	}
}

// IsTerminal reports whether the game is over: neither player has a legal move.
// A single blocked player only passes.
func (gs *GameState) IsTerminal() bool {
	return !gs.Board.HasAnyLegalMove(gs.ToMove) && !gs.Board.HasAnyLegalMove(gs.ToMove.Opponent())
}

// Winner compares the disk counts, None on a tie.
func (gs *GameState) Winner() Player {
	black := Score(Black, gs.Board)
	white := Score(White, gs.Board)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return None
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	hasher.Write([]byte{byte(gs.ToMove)})

	// Hash cells
	cells := make([]byte, 0, len(gs.Board)*len(gs.Board))
	for x := range gs.Board {
		for y := range gs.Board[x] {
			cells = append(cells, byte(gs.Board[x][y]))
		}
	}
	hasher.Write(cells)

	return StateHash(hasher.Sum64())
}
