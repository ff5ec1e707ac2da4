package game

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Position
	Play(Position) State
	// Pass hands the turn to the opponent without placing a disk.
	Pass() State
	IsTerminal() bool
}

type StateHash uint64

// Evaluate scores a state from the computer's (White's) perspective: positive values
// favour White, negative values favour Black. The evaluations defined here read the
// board through Boarded and panic on states that do not implement it.
type Evaluate func(State) int
