package board

import "errors"

// ErrIllegalMove is returned by GameState.Apply when the given move is not
// legal in the current position, whatever the reason (occupied/blocked
// destination, wall stock exhausted, geometry conflict, or anti-blockade).
var ErrIllegalMove = errors.New("board: illegal move")

// LegalSteps enumerates every cell color may step or jump its pawn to,
// including straight and diagonal jumps over the opponent, in compass
// order.
func LegalSteps(gs *GameState, color Color) []Cell {
	b := gs.Board
	me := gs.Player(color).Position
	opp := gs.Opponent(color).Position

	var out []Cell
	for _, d := range Directions {
		nb, ok := b.Neighbour(me, d)
		if !ok {
			continue
		}
		if nb != opp {
			out = append(out, nb)
			continue
		}

		// Opponent sits directly ahead: try the straight jump first, and
		// only fall back to diagonals when the straight landing square
		// is blocked (off-board or walled).
		if landing, ok := b.Neighbour(opp, d); ok {
			out = append(out, landing)
			continue
		}
		for _, pd := range d.Perpendicular() {
			if diag, ok := b.Neighbour(opp, pd); ok {
				out = append(out, diag)
			}
		}
	}
	return out
}

// IsLegalStep reports whether moving color's pawn to "to" is among its
// legal steps/jumps in the current position.
func IsLegalStep(gs *GameState, color Color, to Cell) bool {
	for _, c := range LegalSteps(gs, color) {
		if c == to {
			return true
		}
	}
	return false
}

// LegalWall reports whether color may place a wall of orientation o
// anchored at a: the mover must have stock remaining, the geometry must
// be open and non-crossing, and — checked by tentatively placing the
// wall, querying both players' distance to their own target row, and
// reverting — the wall must leave both players at least one path to their
// goal.
func LegalWall(gs *GameState, color Color, a Cell, o Orientation) bool {
	if gs.Player(color).WallsRemaining <= 0 {
		return false
	}
	b := gs.Board
	if !b.CanPlaceWall(a, o) {
		return false
	}
	if err := b.PlaceWall(a, o); err != nil {
		return false
	}
	defer b.RemoveWall(a, o)

	for _, c := range [...]Color{Black, White} {
		p := gs.Players[c]
		if Distance(b, p.Position, b.TargetRow(c)) == NoPath {
			return false
		}
	}
	return true
}

// LegalWalls enumerates every (anchor, orientation) wall color may
// legally place in the current position.
func LegalWalls(gs *GameState, color Color) []Move {
	n := gs.Board.N()
	var out []Move
	for row := 0; row <= n-2; row++ {
		for col := 0; col <= n-2; col++ {
			a := CellAt(row, col, n)
			for _, o := range [...]Orientation{Horizontal, Vertical} {
				if LegalWall(gs, color, a, o) {
					out = append(out, NewWall(a, o))
				}
			}
		}
	}
	return out
}

// LegalMoves enumerates every legal move (steps, jumps and walls)
// available to color.
func LegalMoves(gs *GameState, color Color) []Move {
	moves := make([]Move, 0)
	for _, to := range LegalSteps(gs, color) {
		moves = append(moves, NewStep(to))
	}
	moves = append(moves, LegalWalls(gs, color)...)
	return moves
}

// Apply validates and applies m as color's move, mutating gs in place.
// It returns ErrIllegalMove (never a wrapped board.PlaceWall error) if m
// is not legal, leaving gs unchanged.
func (g *GameState) Apply(color Color, m Move) error {
	switch m.Kind {
	case Step:
		if !IsLegalStep(g, color, m.To) {
			return ErrIllegalMove
		}
		g.Players[color].Position = m.To
		return nil
	case Wall:
		if !LegalWall(g, color, m.Anchor, m.Orientation) {
			return ErrIllegalMove
		}
		if err := g.Board.PlaceWall(m.Anchor, m.Orientation); err != nil {
			return ErrIllegalMove
		}
		g.Players[color].WallsRemaining--
		return nil
	default:
		return ErrIllegalMove
	}
}
