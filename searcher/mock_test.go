package searcher

import "othello/game"

// mockState is a hand-built game tree: moves index into children and leaves carry
// their evaluation.
type mockState struct {
	player   game.Player
	value    int
	children []*mockState
	passTo   *mockState
}

func (m *mockState) Player() game.Player {
	return m.player
}

func (m *mockState) LegalMoves() []game.Position {
	moves := make([]game.Position, len(m.children))
	for i := range m.children {
		moves[i] = game.Position{X: i}
	}
	return moves
}

func (m *mockState) Play(move game.Position) game.State {
	return m.children[move.X]
}

func (m *mockState) Pass() game.State {
	return m.passTo
}

func (m *mockState) IsTerminal() bool {
	return len(m.children) == 0 && m.passTo == nil
}

func mockValue(s game.State) int {
	return s.(*mockState).value
}

func leaves(player game.Player, values ...int) []*mockState {
	nodes := make([]*mockState, len(values))
	for i, v := range values {
		nodes[i] = &mockState{player: player, value: v}
	}
	return nodes
}
