package game

import (
	"othello/meta"
	"strings"
)

// Player is the occupant of a cell. None marks an empty cell (and a tie).
type Player int8

const (
	None Player = iota
	Black
	White
)

// Opponent returns the other colour. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "None"
	}
}

// Symbol is the single character used for the player in text boards.
func (p Player) Symbol() byte {
	switch p {
	case Black:
		return 'B'
	case White:
		return 'W'
	default:
		return '.'
	}
}

// Board maps every cell to its occupant, indexed [X][Y]. Being a fixed array it
// always holds exactly BoardSize*BoardSize cells, and assignment copies it.
type Board [meta.BoardSize][meta.BoardSize]Player

var Corners = [4]Position{{0, 0}, {0, 7}, {7, 0}, {7, 7}}

// NewBoard returns the starting layout.
func NewBoard() Board {
	var b Board
	b[3][3] = White
	b[3][4] = Black
	b[4][3] = Black
	b[4][4] = White
	return b
}

// At returns the occupant of pos. ok is false when pos is off the board.
func (b Board) At(pos Position) (player Player, ok bool) {
	if !pos.InBounds() {
		return None, false
	}
	return b[pos.X][pos.Y], true
}

// Count returns the number of disks of the given player.
func (b Board) Count(player Player) int {
	count := 0
	for x := range b {
		for y := range b[x] {
			if b[x][y] == player {
				count++
			}
		}
	}
	return count
}

// String renders the board one row per line, X growing downwards.
func (b Board) String() string {
	var sb strings.Builder
	for x := range b {
		for y := range b[x] {
			if y > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b[x][y].Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
