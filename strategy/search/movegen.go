package search

import "github.com/theogom/quoridor-go/board"

// genMoves lists every legal move for color in gs, regardless of whose
// turn gs.Active says it is — the search walks both sides of the tree
// through the same GameState, and board's legality queries only ever
// look at the colour passed in.
func genMoves(gs *board.GameState, color board.Color) []move {
	steps := board.LegalSteps(gs, color)
	walls := board.LegalWalls(gs, color)

	moves := make([]move, 0, len(steps)+len(walls))
	for _, c := range steps {
		moves = append(moves, encodeStep(c))
	}
	for _, w := range walls {
		moves = append(moves, encodeWall(w.Anchor, w.Orientation))
	}
	return moves
}

// apply mutates gs in place for color's move m and returns a function
// that undoes exactly that mutation. Every call site must invoke the
// returned undo exactly once, in LIFO order with any nested apply, before
// gs is used for anything else — this is the "exact, total" apply/undo
// pair the search relies on to explore the tree without ever copying the
// board.
func apply(gs *board.GameState, color board.Color, m move) func() {
	if m.isWall() {
		anchor, o := m.payload(), m.orientation()
		// genMoves only ever proposes walls board.LegalWalls already
		// vetted, so PlaceWall cannot fail here.
		_ = gs.Board.PlaceWall(anchor, o)
		gs.Players[color].WallsRemaining--
		return func() {
			gs.Players[color].WallsRemaining++
			_ = gs.Board.RemoveWall(anchor, o)
		}
	}

	prev := gs.Players[color].Position
	gs.Players[color].Position = m.payload()
	return func() {
		gs.Players[color].Position = prev
	}
}
