package game

import (
	"fmt"
	"othello/meta"
)

// Position addresses a cell of the board. X is the row and Y the column.
type Position struct {
	X int
	Y int
}

func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < meta.BoardSize && p.Y >= 0 && p.Y < meta.BoardSize
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the eight compass offsets used to scan for bracketed runs.
type Direction struct {
	DX int
	DY int
}

var Directions = [8]Direction{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
