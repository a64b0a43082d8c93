package search

import "github.com/theogom/quoridor-go/board"

// winScore and lossScore anchor a reached goal; invalidScore is returned
// for a position where either side has no path to its target row at all
// (which a correctly enforced anti-blockade rule should never hand to an
// in-tree position, but a defensive sentinel costs nothing). Both outrank
// any reachable evaluate() value yet stay well inside the alpha-beta
// bound (infinity) so they never break pruning.
const (
	winScore     = 1 << 20
	lossScore    = -winScore
	invalidScore = 1 << 24
)

// evaluate scores gs from color's point of view at the given ply count
// from the search root: positive favours color, negative favours its
// opponent. A win or loss already on the board is scored apart from the
// ongoing race, and scaled by ply so a forced mate found sooner always
// outranks one found later (a faster win, a slower loss). Otherwise the
// score is the squared distance-to-goal differential, adjusted by how
// far off the centre column each player's pawn sits.
func evaluate(gs *board.GameState, color board.Color, ply int) int {
	opp := color.Opposite()
	n := gs.Board.N()
	myPos := gs.Player(color).Position
	oppPos := gs.Opponent(color).Position
	myDist := board.DistanceToGoal(gs.Board, color, myPos)
	oppDist := board.DistanceToGoal(gs.Board, opp, oppPos)

	if myDist == board.NoPath || oppDist == board.NoPath {
		return -invalidScore
	}
	if myDist == 0 {
		return winScore - ply*ply
	}
	if oppDist == 0 {
		return lossScore + ply*ply
	}

	center := n / 2
	myCol := myPos.Col(n)
	oppCol := oppPos.Col(n)
	return oppDist*oppDist - myDist*myDist - abs(myCol-center) + abs(oppCol-center)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
