package game

import "othello/meta"

// FindFlipTarget walks from origin in direction dir and returns the position of the
// player's disk closing a run of at least one opponent disk. ok is false when the
// neighbour is empty, off the board or the player's own, or when the run is not
// bracketed.
func FindFlipTarget(origin Position, player Player, board Board, dir Direction) (target Position, ok bool) {
	opponent := player.Opponent()
	pos := origin.Add(dir)
	cell, onBoard := board.At(pos)
	if !onBoard || cell != opponent {
		return Position{}, false
	}
	for cell == opponent {
		pos = pos.Add(dir)
		cell, onBoard = board.At(pos)
		if !onBoard {
			return Position{}, false
		}
	}
	if cell != player {
		return Position{}, false
	}
	return pos, true
}

// IsLegal reports whether the player may place a disk at pos.
func IsLegal(pos Position, player Player, board Board) bool {
	if cell, ok := board.At(pos); !ok || cell != None {
		return false
	}
	for _, dir := range Directions {
		if _, ok := FindFlipTarget(pos, player, board, dir); ok {
			return true
		}
	}
	return false
}

// LegalMoves returns the player's legal moves in row-major order (X outer, Y inner).
// The order is relied upon for deterministic tie-breaking.
func (b Board) LegalMoves(player Player) []Position {
	moves := []Position{}
	for x := 0; x < meta.BoardSize; x++ {
		for y := 0; y < meta.BoardSize; y++ {
			pos := Position{X: x, Y: y}
			if IsLegal(pos, player, b) {
				moves = append(moves, pos)
			}
		}
	}
	return moves
}

func (b Board) HasAnyLegalMove(player Player) bool {
	for x := 0; x < meta.BoardSize; x++ {
		for y := 0; y < meta.BoardSize; y++ {
			if IsLegal(Position{X: x, Y: y}, player, b) {
				return true
			}
		}
	}
	return false
}

// place puts the player's disk at move and flips every bracketed run.
func (b *Board) place(move Position, player Player) {
	b[move.X][move.Y] = player
	for _, dir := range Directions {
		target, ok := FindFlipTarget(move, player, *b, dir)
		if !ok {
			continue
		}
		for pos := move.Add(dir); pos != target; pos = pos.Add(dir) {
			b[pos.X][pos.Y] = player
		}
	}
}
