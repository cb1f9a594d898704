package engine

import (
	"testing"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/testutil"
)

func TestIsClearPath(t *testing.T) {
	board := testutil.MustBuildBoard(t, 8,
		p(chess.King, white, 7, 7),
		p(chess.Rook, white, 0, 3),
		p(chess.King, black, 5, 3),
	)
	rook := board.PieceAt(sq(0, 3))

	if !IsClearPath(board, nil, rook, sq(5, 3)) {
		t.Fatal("IsClearPath(rook -> 5,3) = false; want true")
	}

	blocker := board.Add(chess.Pawn, black, sq(2, 3))
	if IsClearPath(board, nil, rook, sq(5, 3)) {
		t.Error("IsClearPath(rook -> 5,3) with pawn on 2,3 = true; want false")
	}
	if !IsClearPath(board, blocker, rook, sq(5, 3)) {
		t.Error("IsClearPath(ignore pawn) = false; want true")
	}

	bishop := board.Add(chess.Bishop, white, sq(3, 1))
	if !IsClearPath(board, nil, bishop, sq(5, 3)) {
		t.Error("IsClearPath(bishop -> 5,3) = false; want true")
	}
	board.Add(chess.Pawn, black, sq(4, 2))
	if IsClearPath(board, nil, bishop, sq(5, 3)) {
		t.Error("IsClearPath(bishop -> 5,3) with pawn on 4,2 = true; want false")
	}
}

func TestIsClearPath_Leapers(t *testing.T) {
	board := testutil.MustBuildBoard(t, 8,
		p(chess.Knight, white, 0, 1),
		p(chess.Pawn, white, 1, 1),
		p(chess.Pawn, white, 1, 2),
		p(chess.Pawn, white, 0, 2),
	)
	knight := board.PieceAt(sq(0, 1))

	if !IsClearPath(board, nil, knight, sq(2, 2)) {
		t.Error("IsClearPath(knight -> 2,2) = false; want true")
	}
}

func TestIsClearPath_PawnOpening(t *testing.T) {
	board := testutil.MustBuildBoard(t, 8,
		p(chess.Pawn, white, 1, 4),
		p(chess.Knight, black, 2, 4),
	)
	pawn := board.PieceAt(sq(1, 4))

	if IsClearPath(board, nil, pawn, sq(3, 4)) {
		t.Error("IsClearPath(pawn double step over knight) = true; want false")
	}
	if CanMove(board, sq(1, 4), sq(3, 4), white) {
		t.Error("CanMove(pawn jumps knight) = true; want false")
	}
}

func TestIsClearPath_NilArgs(t *testing.T) {
	board := chess.NewBoard(8)
	if IsClearPath(board, nil, nil, sq(1, 1)) {
		t.Error("IsClearPath(nil mover) = true; want false")
	}
	if IsClearPath(nil, nil, chess.NewPiece(chess.Rook, white, sq(0, 0)), sq(0, 5)) {
		t.Error("IsClearPath(nil board) = true; want false")
	}
}
