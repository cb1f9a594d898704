package engine

import "github.com/lgbarn/variant-chess-go/internal/chess"

// EndangersKing returns the opposing pieces that could capture the king of
// mover's colour if mover were moved to to. When mover is the king itself,
// the king is considered to stand on to; otherwise it stays put. Attackers
// blocked by mover's new square are not counted. A piece standing on to
// still counts, so a pinned piece may not take its pinner unless that
// resolves a check. The board is not modified.
//
// A nil result means the king would be safe. A side with no king is never
// endangered.
func EndangersKing(board *chess.Board, mover *chess.Piece, to chess.Square) []*chess.Piece {
	if board == nil || mover == nil {
		return nil
	}
	king := board.King(mover.Colour)
	if king == nil {
		return nil
	}
	if mover == king {
		king = &chess.Piece{Kind: chess.King, Colour: king.Colour, Square: to}
	}

	var attackers []*chess.Piece
	for _, p := range board.Pieces() {
		if !p.CanCapture(king) {
			continue
		}
		if p.IsBetween(to, king.Square) {
			continue
		}
		if IsClearPath(board, mover, p, king.Square) {
			attackers = append(attackers, p)
		}
	}
	return attackers
}

// IsInCheck returns true if the given colour's king is attacked where it stands.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	if board == nil {
		return false
	}
	king := board.King(colour)
	if king == nil {
		return false
	}
	return len(EndangersKing(board, king, king.Square)) > 0
}

// CanSaveKing reports whether a non-king move to to resolves the current
// check on colour's king. That needs exactly one attacker, and to must be
// the attacker's square or a square strictly between it and the king.
// Double check can only be escaped by moving the king.
func CanSaveKing(board *chess.Board, colour chess.Colour, to chess.Square) bool {
	if board == nil {
		return false
	}
	king := board.King(colour)
	if king == nil {
		return false
	}

	attackers := EndangersKing(board, king, king.Square)
	if len(attackers) != 1 {
		return false
	}
	attacker := attackers[0]
	return attacker.Square == to || attacker.IsBetween(to, king.Square)
}
