package testutil

import (
	"testing"

	"github.com/lgbarn/variant-chess-go/internal/chess"
)

// P is shorthand for a piece specification on (row, col).
func P(kind chess.Kind, colour chess.Colour, row, col int) chess.PieceSpec {
	return chess.PieceSpec{Kind: kind, Colour: colour, Square: chess.Sq(row, col)}
}

// MustBuildBoard builds a size x size board holding pieces.
// It calls t.Fatal if the setup is rejected.
func MustBuildBoard(t *testing.T, size int, pieces ...chess.PieceSpec) *chess.Board {
	t.Helper()
	return MustBuild(t, chess.BoardSpec{Size: size, Pieces: pieces})
}

// MustBuild materialises spec, calling t.Fatal on error.
func MustBuild(t *testing.T, spec chess.BoardSpec) *chess.Board {
	t.Helper()
	b, err := chess.BuildBoard(spec)
	if err != nil {
		t.Fatalf("BuildBoard(%+v) error: %v", spec, err)
	}
	return b
}

// PlacedPiece is a value snapshot of one piece, comparable with AssertEqual.
type PlacedPiece struct {
	Kind      chess.Kind
	Colour    chess.Colour
	Square    chess.Square
	FirstMove bool
}

// Snapshot captures every piece on the board in row-major order.
func Snapshot(b *chess.Board) []PlacedPiece {
	pieces := b.Pieces()
	out := make([]PlacedPiece, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, PlacedPiece{Kind: p.Kind, Colour: p.Colour, Square: p.Square, FirstMove: p.FirstMove})
	}
	return out
}

// Identities maps each occupied square to the piece pointer standing on it,
// for checks that the very same pieces come back after an undo.
func Identities(b *chess.Board) map[chess.Square]*chess.Piece {
	ids := make(map[chess.Square]*chess.Piece)
	for _, p := range b.Pieces() {
		ids[p.Square] = p
	}
	return ids
}
