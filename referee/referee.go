// Package referee drives a Quoridor game between two strategies,
// alternating turns, applying moves to the authoritative board state and
// detecting the end of the game.
package referee

import (
	"fmt"

	"github.com/theogom/quoridor-go/board"
	"github.com/theogom/quoridor-go/strategy"
)

// Outcome is the result handed back from Play and to both strategies'
// Finalize hook.
type Outcome = strategy.Outcome

// Logger receives diagnostic events as a game is played. Implementations
// must not retain the board.Move values they are passed beyond the call.
type Logger interface {
	BeginGame(n, wallsEach int, black, white string)
	EndGame(o Outcome)
	LogMove(turn int, color board.Color, m board.Move)
	LogForfeit(turn int, color board.Color, err error)
}

// NopLogger discards every event; it is the default when no Logger is
// supplied to New.
type NopLogger struct{}

func (NopLogger) BeginGame(n, wallsEach int, black, white string) {}
func (NopLogger) EndGame(o Outcome)                                {}
func (NopLogger) LogMove(turn int, color board.Color, m board.Move) {}
func (NopLogger) LogForfeit(turn int, color board.Color, err error) {}

// Referee owns the authoritative game state and the two strategies
// playing it.
type Referee struct {
	state   *board.GameState
	players [2]strategy.Strategy // indexed by board.Color
	logger  Logger
}

// New builds a Referee for an N*N board with wallsEach walls per player,
// initializing both strategies with their own private copy of the
// starting position. The first argument strategy always plays Black and
// moves first.
func New(n, wallsEach int, black, white strategy.Strategy, logger Logger) (*Referee, error) {
	if logger == nil {
		logger = NopLogger{}
	}
	state := board.NewGame(n, wallsEach)
	if err := black.Initialize(board.Black, state.Clone()); err != nil {
		return nil, fmt.Errorf("referee: initialize black strategy: %w", err)
	}
	if err := white.Initialize(board.White, state.Clone()); err != nil {
		return nil, fmt.Errorf("referee: initialize white strategy: %w", err)
	}
	return &Referee{
		state:   state,
		players: [2]strategy.Strategy{board.Black: black, board.White: white},
		logger:  logger,
	}, nil
}

// State returns the current authoritative game state. Callers must treat
// it as read-only; Play is the only thing that mutates it. This is never
// handed to a Strategy — see strategy.Strategy.
func (r *Referee) State() *board.GameState { return r.state }

// Play runs the game to completion: it alternates turns, asking the
// active strategy for a move — passing it only the opponent's previous
// move, never the referee's own board — validating and applying the
// reply, and checking for a win. A strategy that errors or returns an
// illegal move forfeits the game to its opponent immediately.
func (r *Referee) Play() Outcome {
	black, white := r.players[board.Black], r.players[board.White]
	r.logger.BeginGame(r.state.Board.N(), r.state.Player(board.Black).WallsRemaining, black.Name(), white.Name())

	turn := 0
	var previous board.Move // board.NoMove: nothing precedes the first move of the game
	for {
		turn++
		color := r.state.Active
		mover := r.players[color]

		m, err := mover.Play(previous)
		if err != nil {
			r.logger.LogForfeit(turn, color, err)
			return r.finish(Outcome{Winner: color.Opposite(), Reason: strategy.ReasonInvalidMove})
		}
		if err := r.state.Apply(color, m); err != nil {
			r.logger.LogForfeit(turn, color, err)
			return r.finish(Outcome{Winner: color.Opposite(), Reason: strategy.ReasonInvalidMove})
		}
		r.logger.LogMove(turn, color, m)

		if winner, ok := r.state.Winner(); ok {
			return r.finish(Outcome{Winner: winner, Reason: strategy.ReasonGoalReached})
		}
		r.state.Active = color.Opposite()
		previous = m
	}
}

func (r *Referee) finish(o Outcome) Outcome {
	r.players[board.Black].Finalize(o)
	r.players[board.White].Finalize(o)
	r.logger.EndGame(o)
	return o
}
