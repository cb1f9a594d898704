package engine

import "github.com/lgbarn/variant-chess-go/internal/chess"

// IsClearPath reports whether no piece other than ignore stands strictly
// between mover and to along mover's line of travel. Passing a piece as
// ignore treats its square as already vacated.
func IsClearPath(board *chess.Board, ignore, mover *chess.Piece, to chess.Square) bool {
	if board == nil || mover == nil {
		return false
	}
	for _, middle := range board.Pieces() {
		if middle == ignore || middle == mover {
			continue
		}
		if mover.IsBetween(middle.Square, to) {
			return false
		}
	}
	return true
}
