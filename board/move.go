package board

import "fmt"

// Kind discriminates the two legal move shapes a player can submit.
type Kind uint8

const (
	// NoMove is the zero value; never itself a legal move, it stands in
	// for "nothing chosen yet", and is the previous move passed to the
	// first Play call of the game.
	NoMove Kind = iota
	Step
	Wall
)

func (k Kind) String() string {
	switch k {
	case Step:
		return "step"
	case Wall:
		return "wall"
	default:
		return "none"
	}
}

// Move is a pending or applied action. A Step carries only its destination
// cell; the source is always the mover's current position and is supplied
// by whichever caller applies the move (the referee, or board.GameState),
// never stored on the move itself. A Wall carries its canonical anchor and
// orientation (see CanonicalAnchor).
//
// The colour making the move is likewise attached by the caller: a Move
// value alone never names who is moving.
type Move struct {
	Kind        Kind
	To          Cell
	Anchor      Cell
	Orientation Orientation
}

// NewStep builds a displacement move to cell to.
func NewStep(to Cell) Move { return Move{Kind: Step, To: to} }

// NewWall builds a wall move at its canonical anchor and orientation.
func NewWall(anchor Cell, o Orientation) Move {
	return Move{Kind: Wall, Anchor: anchor, Orientation: o}
}

// NewWallFromEdges builds a wall move from an arbitrary pair of edges,
// canonicalising them first; ok is false if the four given cells do not
// describe a valid wall geometry.
func NewWallFromEdges(n int, e1u, e1v, e2u, e2v Cell) (Move, bool) {
	anchor, o, ok := CanonicalAnchor(n, e1u, e1v, e2u, e2v)
	if !ok {
		return Move{}, false
	}
	return NewWall(anchor, o), true
}

func (m Move) String() string {
	switch m.Kind {
	case Step:
		return fmt.Sprintf("step %s", m.To)
	case Wall:
		return fmt.Sprintf("wall %s@%s", m.Orientation, m.Anchor)
	default:
		return "none"
	}
}
