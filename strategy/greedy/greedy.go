// Package greedy implements a distance-minimising Quoridor player: step
// toward the target row along the shortest path, and occasionally spend
// a wall to slow the opponent down when it is not itself ahead in the
// race.
package greedy

import (
	"github.com/theogom/quoridor-go/board"
	"github.com/theogom/quoridor-go/strategy"
)

// Greedy never looks more than one ply ahead: every decision is made
// purely from the current distance-to-goal of both players. It keeps its
// own copy of the position, handed to it once at Initialize, and mirrors
// every move — its opponent's and its own — onto that copy as the game
// goes; the referee's board is never touched.
type Greedy struct {
	color board.Color
	state *board.GameState
}

var _ strategy.Strategy = (*Greedy)(nil)

// New returns a fresh Greedy strategy.
func New() *Greedy { return &Greedy{} }

func (g *Greedy) Name() string { return "greedy" }

func (g *Greedy) Initialize(color board.Color, gs *board.GameState) error {
	g.color = color
	g.state = gs
	return nil
}

func (g *Greedy) Finalize(strategy.Outcome) {}

// Play places a wall when it is behind or tied in the race and a wall is
// available that sets the opponent back; otherwise it steps toward its
// own target row along the shortest available path, breaking ties in
// compass order.
func (g *Greedy) Play(previous board.Move) (board.Move, error) {
	opp := g.color.Opposite()
	if previous.Kind != board.NoMove {
		if err := g.state.Apply(opp, previous); err != nil {
			return board.Move{}, err
		}
	}

	myDist := board.DistanceToGoal(g.state.Board, g.color, g.state.Player(g.color).Position)
	oppDist := board.DistanceToGoal(g.state.Board, opp, g.state.Opponent(g.color).Position)

	var m board.Move
	if g.state.Player(g.color).WallsRemaining > 0 && oppDist <= myDist {
		if wall, ok := g.goodWall(oppDist); ok {
			m = wall
		} else {
			m = g.bestStep()
		}
	} else {
		m = g.bestStep()
	}

	if err := g.state.Apply(g.color, m); err != nil {
		return board.Move{}, err
	}
	return m, nil
}

// goodWall returns the first legal wall (in board order) that strictly
// increases the opponent's distance to its goal beyond its current
// value, grounded on the "first improving wall wins" rule the algorithm
// this strategy is modelled on uses instead of maximising over every
// candidate.
func (g *Greedy) goodWall(oppDistBefore int) (board.Move, bool) {
	opp := g.color.Opposite()
	oppPos := g.state.Opponent(g.color).Position

	for _, m := range board.LegalWalls(g.state, g.color) {
		if err := g.state.Board.PlaceWall(m.Anchor, m.Orientation); err != nil {
			continue
		}
		after := board.DistanceToGoal(g.state.Board, opp, oppPos)
		_ = g.state.Board.RemoveWall(m.Anchor, m.Orientation)
		if after > oppDistBefore {
			return m, true
		}
	}
	return board.Move{}, false
}

// bestStep returns the legal step/jump that leaves the mover closest to
// its target row, preferring the first such cell in compass order.
func (g *Greedy) bestStep() board.Move {
	best := g.state.Player(g.color).Position
	bestDist := 0
	found := false
	for _, c := range board.LegalSteps(g.state, g.color) {
		d := board.DistanceToGoal(g.state.Board, g.color, c)
		if !found || d < bestDist {
			found = true
			bestDist = d
			best = c
		}
	}
	return board.NewStep(best)
}
