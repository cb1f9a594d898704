// Package engine decides move legality, check, checkmate and stalemate on a
// chess.Board. Every function is a pure query: the board is never mutated,
// and hypothetical positions are modelled with values rather than by moving
// pieces.
package engine

import (
	"github.com/lgbarn/variant-chess-go/internal/chess"
)

// CanMove reports whether the player mover may move the piece on from to to.
//
// A move is legal when both squares are playable, the piece on from belongs
// to mover, and it either moves to an empty square or captures an opponent
// along a clear path. In addition the move must leave mover's king safe,
// resolve a single check by capture or block, or capture the opposing king
// outright. Capturing a king is always allowed; it is how a game that was not
// stopped at checkmate ends.
//
// CanMove is total: absent pieces and unplayable squares give false.
func CanMove(board *chess.Board, from, to chess.Square, mover chess.Colour) bool {
	if board == nil || !board.IsPlayable(from) || !board.IsPlayable(to) {
		return false
	}

	piece := board.PieceAt(from)
	if piece == nil || piece.Colour != mover {
		return false
	}

	target := board.PieceAt(to)
	if !reaches(board, piece, target, to) {
		return false
	}

	if target != nil && target.Kind == chess.King {
		return true
	}
	if len(EndangersKing(board, piece, to)) == 0 {
		return true
	}
	return piece.Kind != chess.King && IsInCheck(board, mover) && CanSaveKing(board, mover, to)
}

// reaches reports whether piece can get to to, by capture when target is
// present and by plain movement otherwise.
func reaches(board *chess.Board, piece, target *chess.Piece, to chess.Square) bool {
	if target != nil {
		return piece.CanCapture(target) && IsClearPath(board, nil, piece, to)
	}
	return piece.CanMoveTo(to) && IsClearPath(board, nil, piece, to)
}
