package main

import (
	"testing"

	"github.com/theogom/quoridor-go/board"
)

// On an empty 5x5 board with two walls each, perft at depth 1 counts
// exactly the moves LegalMoves reports for the starting position (3 steps
// plus every wall slot), and depth 2 is the sum over each of those of the
// opponent's reply count.
func TestPerftDepthOneMatchesLegalMoveCount(t *testing.T) {
	gs := board.NewGame(5, 2)
	want := uint64(len(board.LegalMoves(gs, board.Black)))
	got := perft(gs, board.Black, 1)
	if got != want {
		t.Errorf("perft(depth=1) = %d, want %d", got, want)
	}
}

func TestPerftZeroDepthIsOneLeaf(t *testing.T) {
	gs := board.NewGame(5, 2)
	if got := perft(gs, board.Black, 0); got != 1 {
		t.Errorf("perft(depth=0) = %d, want 1", got)
	}
}

func TestPerftRestoresBoardState(t *testing.T) {
	gs := board.NewGame(5, 2)
	beforeBlack := *gs.Player(board.Black)
	beforeWhite := *gs.Player(board.White)

	perft(gs, board.Black, 2)

	if *gs.Player(board.Black) != beforeBlack {
		t.Errorf("black player state mutated: got %+v, want %+v", gs.Player(board.Black), beforeBlack)
	}
	if *gs.Player(board.White) != beforeWhite {
		t.Errorf("white player state mutated: got %+v, want %+v", gs.Player(board.White), beforeWhite)
	}
}

func BenchmarkPerftDepthTwo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		gs := board.NewGame(9, 10)
		perft(gs, board.Black, 2)
	}
}
