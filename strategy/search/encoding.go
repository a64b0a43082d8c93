package search

import "github.com/theogom/quoridor-go/board"

// move is a move packed into a single machine word: bit 0 selects step vs
// wall, bit 1 selects the wall orientation (meaningless for a step), and
// the remaining bits carry the destination cell (step) or anchor cell
// (wall). Packing keeps the move generator's working set flat integers
// instead of board.Move structs, which matters once the search is
// generating and discarding thousands of candidates per move.
type move int32

const (
	kindStep = 0
	kindWall = 1

	orientationBit = 1 << 1
	payloadShift   = 2
)

func encodeStep(to board.Cell) move {
	return move(int32(to) << payloadShift)
}

func encodeWall(anchor board.Cell, o board.Orientation) move {
	m := move(int32(anchor)<<payloadShift) | kindWall
	if o == board.Vertical {
		m |= orientationBit
	}
	return m
}

func fromMove(m board.Move) move {
	if m.Kind == board.Wall {
		return encodeWall(m.Anchor, m.Orientation)
	}
	return encodeStep(m.To)
}

func (m move) isWall() bool { return m&kindWall != 0 }

func (m move) orientation() board.Orientation {
	if m&orientationBit != 0 {
		return board.Vertical
	}
	return board.Horizontal
}

func (m move) payload() board.Cell { return board.Cell(int32(m) >> payloadShift) }

func (m move) toMove() board.Move {
	if m.isWall() {
		return board.NewWall(m.payload(), m.orientation())
	}
	return board.NewStep(m.payload())
}
