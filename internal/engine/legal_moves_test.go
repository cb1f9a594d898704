package engine

import (
	"testing"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/testutil"
)

func TestLegalMoves_StandardOpening(t *testing.T) {
	board := chess.NewStandardBoard()

	for _, colour := range []chess.Colour{white, black} {
		moves := LegalMoves(board, colour)
		if len(moves) != 20 {
			t.Errorf("len(LegalMoves(%v)) = %d; want 20", colour, len(moves))
		}
		for _, m := range moves {
			if !CanMove(board, m.From, m.To, colour) {
				t.Errorf("LegalMoves(%v) lists %v but CanMove disagrees", colour, m)
			}
		}
	}
}

func TestLegalDestinations(t *testing.T) {
	board := chess.NewStandardBoard()

	tests := []struct {
		name string
		from chess.Square
		want []chess.Square
	}{
		{"white knight", sq(0, 1), []chess.Square{sq(2, 0), sq(2, 2)}},
		{"black pawn", sq(6, 4), []chess.Square{sq(4, 4), sq(5, 4)}},
		{"boxed-in rook", sq(0, 0), nil},
		{"empty square", sq(4, 4), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, LegalDestinations(board, tt.from), tt.want, "LegalDestinations(%v)", tt.from)
		})
	}
}

func TestLegalMoves_Ordering(t *testing.T) {
	board := testutil.MustBuildBoard(t, 3,
		p(chess.King, white, 0, 0),
		p(chess.King, black, 2, 2),
	)

	want := []chess.Move{
		{From: sq(0, 0), To: sq(0, 1)},
		{From: sq(0, 0), To: sq(1, 0)},
	}
	testutil.AssertEqual(t, LegalMoves(board, white), want)
}

func TestPlayerStuck(t *testing.T) {
	t.Run("one trapped pawn is not a stuck player", func(t *testing.T) {
		board := testutil.MustBuildBoard(t, 8,
			p(chess.King, white, 7, 7),
			p(chess.King, black, 7, 0),
			p(chess.Pawn, white, 0, 3),
			p(chess.Pawn, white, 1, 4),
			p(chess.Pawn, white, 0, 5),
			p(chess.Pawn, black, 1, 3),
			p(chess.Pawn, black, 1, 5),
			p(chess.Pawn, black, 0, 4),
		)
		if PlayerStuck(board, black) {
			t.Error("PlayerStuck(Black) = true; want false")
		}
		if got := LegalDestinations(board, sq(0, 4)); got != nil {
			t.Errorf("LegalDestinations(trapped pawn) = %v; want nil", got)
		}
	})

	t.Run("stalemated king", func(t *testing.T) {
		board := testutil.MustBuildBoard(t, 8,
			p(chess.King, white, 5, 6),
			p(chess.Queen, white, 6, 5),
			p(chess.King, black, 7, 7),
		)
		if !PlayerStuck(board, black) {
			t.Error("PlayerStuck(Black) = false; want true")
		}
		if PlayerStuck(board, white) {
			t.Error("PlayerStuck(White) = true; want false")
		}
	})

	t.Run("no pieces", func(t *testing.T) {
		if !PlayerStuck(chess.NewBoard(4), white) {
			t.Error("PlayerStuck(empty board) = false; want true")
		}
	})
}

func TestPlayerStuck_MatchesLegalMoves(t *testing.T) {
	boards := map[string]*chess.Board{
		"standard": chess.NewStandardBoard(),
		"custom":   chess.NewCustomBoard(),
		"stalemate": testutil.MustBuildBoard(t, 8,
			p(chess.King, white, 5, 6),
			p(chess.Queen, white, 6, 5),
			p(chess.King, black, 7, 7),
		),
	}

	for name, board := range boards {
		for _, colour := range []chess.Colour{white, black} {
			stuck := PlayerStuck(board, colour)
			if none := len(LegalMoves(board, colour)) == 0; stuck != none {
				t.Errorf("%s: PlayerStuck(%v) = %v but LegalMoves empty = %v", name, colour, stuck, none)
			}
		}
	}
}
