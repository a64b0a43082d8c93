// Package search implements an iterative-deepening alpha-beta Quoridor
// player: deepen one ply at a time against a fixed per-move time budget,
// keeping the best move found by the last depth that finished in time.
package search

import (
	"errors"
	"time"

	"github.com/theogom/quoridor-go/board"
	"github.com/theogom/quoridor-go/strategy"
)

// avgTurnsPerGame divides a total game time budget into a flat per-move
// allocation; a real game runs shorter or longer than this, but a fixed
// estimate avoids the complexity of a clock that must be renegotiated
// after every move.
const avgTurnsPerGame = 100

// maxDepth caps iterative deepening independently of the clock, bounding
// recursion depth when iterations finish faster than the per-move budget
// runs out; normal games are stopped by the clock long before reaching it.
const maxDepth = 48

const infinity = 1 << 30

// Search is an iterative-deepening negamax/alpha-beta player. Like every
// Strategy it keeps its own copy of the position, handed to it once at
// Initialize; Play mirrors the opponent's reported move onto that copy
// before searching, and its own chosen move before returning.
type Search struct {
	color         board.Color
	state         *board.GameState
	perMoveBudget time.Duration
}

var _ strategy.Strategy = (*Search)(nil)

// New returns a Search strategy allotted totalBudget worth of thinking
// time across the whole game.
func New(totalBudget time.Duration) *Search {
	return &Search{perMoveBudget: totalBudget / avgTurnsPerGame}
}

func (s *Search) Name() string { return "search" }

func (s *Search) Initialize(color board.Color, gs *board.GameState) error {
	s.color = color
	s.state = gs
	if s.perMoveBudget <= 0 {
		s.perMoveBudget = 100 * time.Millisecond
	}
	return nil
}

func (s *Search) Finalize(strategy.Outcome) {}

// Play runs iterative deepening until the time budget for this move is
// exhausted, returning the best move found by the last depth that
// completed; a depth aborted partway through contributes nothing.
func (s *Search) Play(previous board.Move) (board.Move, error) {
	opp := s.color.Opposite()
	if previous.Kind != board.NoMove {
		if err := s.state.Apply(opp, previous); err != nil {
			return board.Move{}, err
		}
	}

	moves := genMoves(s.state, s.color)
	if len(moves) == 0 {
		return board.Move{}, errors.New("search: no legal moves available")
	}
	best := moves[0]

	tc := NewTimeControl(s.perMoveBudget)
	tc.Start()
	for depth := 1; depth <= maxDepth && tc.NextDepth(); depth++ {
		mv, aborted := s.searchRoot(depth, tc)
		if aborted {
			break
		}
		best = mv
	}

	chosen := best.toMove()
	if err := s.state.Apply(s.color, chosen); err != nil {
		return board.Move{}, err
	}
	return chosen, nil
}

func (s *Search) searchRoot(depth int, tc *TimeControl) (move, bool) {
	_, mv, aborted := negamax(s.state, s.color, depth, 0, -infinity, infinity, tc)
	return mv, aborted
}

// negamax searches depth plies from color's point of view, ply plies from
// the root, and returns the position's value, the best move found
// (meaningless if aborted), and whether the time budget ran out partway
// through. The clock is only consulted once per call, at depth == 1, to
// keep the overhead of timing off the hot path deeper in the tree.
func negamax(gs *board.GameState, color board.Color, depth, ply int, alpha, beta int, tc *TimeControl) (int, move, bool) {
	if depth == 1 && tc.Stopped() {
		return 0, 0, true
	}
	if depth == 0 {
		return evaluate(gs, color, ply), 0, false
	}

	moves := genMoves(gs, color)
	if len(moves) == 0 {
		return evaluate(gs, color, ply), 0, false
	}

	bestVal := -infinity
	var bestMove move
	for _, m := range moves {
		undo := apply(gs, color, m)
		val, _, aborted := negamax(gs, color.Opposite(), depth-1, ply+1, -beta, -alpha, tc)
		undo()
		if aborted {
			return 0, 0, true
		}
		val = -val
		if val > bestVal {
			bestVal = val
			bestMove = m
		}
		if val > alpha {
			alpha = val
		}
		if alpha >= beta {
			break
		}
	}
	return bestVal, bestMove, false
}
