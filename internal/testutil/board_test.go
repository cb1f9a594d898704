package testutil

import (
	"testing"

	"github.com/lgbarn/variant-chess-go/internal/chess"
)

func TestMustBuildBoard(t *testing.T) {
	b := MustBuildBoard(t, 5,
		P(chess.King, chess.White, 0, 2),
		P(chess.Pawn, chess.Black, 3, 1),
	)

	want := []PlacedPiece{
		{Kind: chess.King, Colour: chess.White, Square: chess.Sq(0, 2)},
		{Kind: chess.Pawn, Colour: chess.Black, Square: chess.Sq(3, 1), FirstMove: true},
	}
	AssertEqual(t, Snapshot(b), want)
}

func TestIdentities(t *testing.T) {
	b := MustBuildBoard(t, 4, P(chess.Rook, chess.White, 1, 1))
	ids := Identities(b)

	if len(ids) != 1 {
		t.Fatalf("len(Identities()) = %d; want 1", len(ids))
	}
	if ids[chess.Sq(1, 1)] != b.PieceAt(chess.Sq(1, 1)) {
		t.Error("Identities() does not hold the board's piece pointer")
	}
}
