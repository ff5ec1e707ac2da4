package game

import (
	"fmt"
	"othello/meta"
)

// Weights scale the terms of the evaluation.
type Weights struct {
	Corner    int
	Closeness int
	Mobility  int
}

var DefaultWeights = Weights{
	Corner:    meta.CornerWeight,
	Closeness: meta.ClosenessWeight,
	Mobility:  meta.MobilityWeight,
}

// Score is the disk differential of player over its opponent. It is the final tally
// of a game and the cached utility of a state.
func Score(player Player, board Board) int {
	own, other := 0, 0
	opponent := player.Opponent()
	for x := range board {
		for y := range board[x] {
			switch board[x][y] {
			case player:
				own++
			case opponent:
				other++
			}
		}
	}
	return own - other
}

// EvaluatePosition combines material, corner control and corner closeness from White's
// point of view with the default weights.
func EvaluatePosition(s State) int {
	return WeightedEvaluation(DefaultWeights)(s)
}

// EvaluateMobility adds the difference in available moves to EvaluatePosition.
func EvaluateMobility(s State) int {
	return WeightedMobilityEvaluation(DefaultWeights)(s)
}

func WeightedEvaluation(w Weights) Evaluate {
	return func(s State) int {
		board := boardOf(s)
		return DiskDifference(board) + w.Corner*CornerScore(board) + w.Closeness*CornerCloseness(board)
	}
}

func WeightedMobilityEvaluation(w Weights) Evaluate {
	position := WeightedEvaluation(w)
	return func(s State) int {
		return position(s) + w.Mobility*Mobility(boardOf(s))
	}
}

// EvaluationByName resolves an evaluation from configuration.
func EvaluationByName(name string, w Weights) (Evaluate, error) {
	switch name {
	case "", "position":
		return WeightedEvaluation(w), nil
	case "mobility":
		return WeightedMobilityEvaluation(w), nil
	default:
		return nil, fmt.Errorf("unknown evaluation %q", name)
	}
}

// Boarded is a state that exposes its cells. The evaluations of this package only
// accept such states.
type Boarded interface {
	Cells() Board
}

func boardOf(s State) Board {
	b, ok := s.(Boarded)
	if !ok {
		panic(fmt.Sprintf("evaluation needs a state with Cells(), got %T", s))
	}
	return b.Cells()
}

// DiskDifference is White's disk count minus Black's.
func DiskDifference(board Board) int {
	return board.Count(White) - board.Count(Black)
}

// CornerScore is the number of corners held by White minus those held by Black.
// Corner disks can never be flipped.
func CornerScore(board Board) int {
	white, black := 0, 0
	for _, corner := range Corners {
		switch board[corner.X][corner.Y] {
		case White:
			white++
		case Black:
			black++
		}
	}
	return white - black
}

// CornerCloseness counts White disks on the border lines next to the corners, the
// corners themselves excluded. Only White is counted.
func CornerCloseness(board Board) int {
	last := meta.BoardSize - 1
	white := 0
	for i := 1; i < last; i++ {
		for _, pos := range [4]Position{{i, 0}, {i, last}, {0, i}, {last, i}} {
			if board[pos.X][pos.Y] == White {
				white++
			}
		}
	}
	return white
}

// Mobility is the number of legal moves for White minus those for Black.
func Mobility(board Board) int {
	return len(board.LegalMoves(White)) - len(board.LegalMoves(Black))
}
