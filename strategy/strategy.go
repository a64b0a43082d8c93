// Package strategy defines the contract a Quoridor player implements,
// independent of how it chooses moves.
package strategy

import "github.com/theogom/quoridor-go/board"

// Reason records why a game ended.
type Reason string

const (
	ReasonGoalReached Reason = "goal_reached"
	ReasonInvalidMove Reason = "invalid_move"
	ReasonTimeout     Reason = "timeout"
)

// Outcome is the final result of a game, handed to both strategies'
// Finalize so each can tear down (or simply ignore it).
type Outcome struct {
	Winner board.Color
	Reason Reason
}

// Strategy is a pluggable Quoridor player. The referee's own board is
// never handed to a Strategy: Initialize hands it a private copy of the
// starting position, and every Play call after that tells it only the
// opponent's last move, exactly as the original engine's player contract
// does (initialize takes an owned copy of the graph; play receives
// nothing but the previous move). A strategy is responsible for keeping
// its own copy in sync by applying both the opponent's reported move and
// its own chosen move before returning.
//
// Implementations are not expected to be safe for concurrent use; the
// referee calls them sequentially from a single goroutine.
type Strategy interface {
	// Name identifies the strategy for logging and CLI selection.
	Name() string

	// Initialize is called once before the first move, with the colour
	// this strategy will play and a private copy of the starting
	// position. The strategy owns gs outright from this point on.
	Initialize(color board.Color, gs *board.GameState) error

	// Play is called once per turn with the opponent's previous move
	// (the zero board.Move, board.NoMove, on the very first call for
	// whichever side moves first) and must return the move this
	// strategy chooses to make next. The returned move need not be
	// legal; an illegal move forfeits the game to the opponent (see
	// referee.Referee).
	Play(previous board.Move) (board.Move, error)

	// Finalize is called once after the game ends, win or forfeit.
	Finalize(outcome Outcome)
}
