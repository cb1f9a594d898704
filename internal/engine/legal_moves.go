package engine

import "github.com/lgbarn/variant-chess-go/internal/chess"

// LegalMoves returns every legal move for colour, ordered by source square
// then destination square (both row-major).
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	if board == nil {
		return nil
	}
	var moves []chess.Move
	squares := board.PlayableSquares()
	for _, piece := range board.Pieces() {
		if piece.Colour != colour {
			continue
		}
		for _, to := range squares {
			if CanMove(board, piece.Square, to, colour) {
				moves = append(moves, chess.Move{From: piece.Square, To: to})
			}
		}
	}
	return moves
}

// LegalDestinations returns the squares the piece on from may legally move
// to, for the piece's own colour. It returns nil for an empty square.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	if board == nil {
		return nil
	}
	piece := board.PieceAt(from)
	if piece == nil {
		return nil
	}
	var dests []chess.Square
	for _, to := range board.PlayableSquares() {
		if CanMove(board, from, to, piece.Colour) {
			dests = append(dests, to)
		}
	}
	return dests
}

// PlayerStuck returns true if colour has no legal move at all, trying every
// piece against every playable square.
func PlayerStuck(board *chess.Board, colour chess.Colour) bool {
	if board == nil {
		return true
	}
	squares := board.PlayableSquares()
	for _, piece := range board.Pieces() {
		if piece.Colour != colour {
			continue
		}
		for _, to := range squares {
			if CanMove(board, piece.Square, to, colour) {
				return false
			}
		}
	}
	return true
}
