package engine

import (
	"errors"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Phase int

const (
	InProgress Phase = iota
	Finished
)

// Status is the state of the turn loop. Winner is only meaningful once Finished and is
// game.None on a tie.
type Status struct {
	Phase  Phase
	State  *game.GameState
	Winner game.Player
}

type Update struct {
	Move   game.Position
	Passed bool
	State  *game.GameState
	Hash   game.StateHash
}

type Engine struct {
	Renderer  Renderer
	Providers map[game.Player]MoveProvider
	History   []Update

	moveMetrics []metrics.MoveMetric
}

// LocalEngine wires a renderer and one move provider per colour.
func LocalEngine(renderer Renderer, black, white MoveProvider) *Engine {
	if renderer == nil {
		panic("engine needs a renderer")
	}
	if black == nil || white == nil {
		panic("need a move provider for both players")
	}
	return &Engine{
		Renderer: renderer,
		Providers: map[game.Player]MoveProvider{
			game.Black: black,
			game.White: white,
		},
	}
}

// Run plays the game from initial until it is over or a provider fails. A quit
// request is returned as an error wrapping game.ErrQuit, no result is announced then.
func (e *Engine) Run(initial *game.GameState) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e.History = []Update{}
	e.moveMetrics = []metrics.MoveMetric{}
	startTime := time.Now()

	e.Renderer.Render(initial)
	log.Info().Msgf("%s is starting", initial.ToMove)

	status := Status{Phase: InProgress, State: initial}
	for status.Phase == InProgress {
		next, err := e.Step(status)
		if err != nil {
			if errors.Is(err, game.ErrQuit) {
				log.Info().Msgf("quit requested after %d steps", len(e.History))
			}
			return metrics.GameMetric{}, e.moveMetrics, err
		}
		status = next
	}

	final := status.State
	passes := 0
	for _, u := range e.History {
		if u.Passed {
			passes++
		}
	}
	endTime := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: initial.ToMove.String(),
		Winner:         status.Winner.String(),
		BlackDisks:     final.Board.Count(game.Black),
		WhiteDisks:     final.Board.Count(game.White),
		StartTime:      startTime,
		EndTime:        endTime,
		Duration:       endTime.Sub(startTime),
		TotalMoves:     len(e.History) - passes,
		Passes:         passes,
	}

	e.Renderer.AnnounceResult(status.Winner)
	return gameMetric, e.moveMetrics, nil
}

// Step performs one transition of the turn loop: it ends the game, plays one move or
// passes for a blocked player without asking its provider.
func (e *Engine) Step(status Status) (Status, error) {
	if status.Phase == Finished {
		return status, game.ErrGameOver
	}

	state := status.State
	if state.IsTerminal() {
		winner := state.Winner()
		log.Info().
			Int("black", state.Board.Count(game.Black)).
			Int("white", state.Board.Count(game.White)).
			Msgf("game over! Winner: %s", winner)
		return Status{Phase: Finished, State: state, Winner: winner}, nil
	}

	var next *game.GameState
	moves := state.LegalMoves()
	if len(moves) == 0 {
		log.Info().Msgf("%s has no legal move and passes", state.ToMove)
		next = state.Pass().(*game.GameState)
		e.record(state.ToMove, Update{Passed: true, State: next, Hash: next.Hash()}, metrics.SearchMetric{})
	} else {
		e.Renderer.HighlightLegalMoves(moves)

		provider, ok := e.Providers[state.ToMove]
		if !ok {
			return status, fmt.Errorf("no move provider for %s", state.ToMove)
		}
		move, metric, err := provider.FindMove(state, moves)
		if err != nil {
			return status, fmt.Errorf("%s could not move: %w", state.ToMove, err)
		}
		if !slices.Contains(moves, move) {
			return status, fmt.Errorf("%s played %s: %w", state.ToMove, move, game.ErrIllegalMove)
		}

		next = state.ApplyMove(move)
		e.record(state.ToMove, Update{Move: move, State: next, Hash: next.Hash()}, metric)
	}

	e.Renderer.Refresh(next.Board)
	return Status{Phase: InProgress, State: next}, nil
}

func (e *Engine) record(player game.Player, u Update, metric metrics.SearchMetric) {
	e.History = append(e.History, u)

	move := "pass"
	if !u.Passed {
		move = u.Move.String()
	}
	e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
		Step:         len(e.History),
		Player:       player.String(),
		Move:         move,
		SearchMetric: metric,
	})
	log.Debug().Uint64("hash", uint64(u.Hash)).Msgf("step %d: %s played %s", len(e.History), player, move)
}
