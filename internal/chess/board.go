package chess

import (
	"slices"

	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// Board is a sparse placement of pieces on a size x size grid. Squares may
// be carved out as structurally invalid to give the playable area a
// non-square shape. At most one piece occupies any square.
type Board struct {
	size    int
	pieces  map[Square]*Piece
	invalid map[Square]bool

	// The piece evicted by the most recent placement, kept for a one-ply undo.
	lastCaptured *Piece
}

// NewBoard creates a new empty board with the given side length.
func NewBoard(size int) *Board {
	return &Board{
		size:    size,
		pieces:  make(map[Square]*Piece),
		invalid: make(map[Square]bool),
	}
}

// Size returns the side length of the board's square extent.
func (b *Board) Size() int {
	return b.size
}

// inExtent reports whether sq lies within [0,size) on both axes.
func (b *Board) inExtent(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.size && sq.Col >= 0 && sq.Col < b.size
}

// MarkInvalid removes sq from the playable area. Marking a square outside
// the board extent is a configuration fault.
func (b *Board) MarkInvalid(sq Square) error {
	if !b.inExtent(sq) {
		return &errors.SquareError{Err: errors.ErrOutOfBounds, Row: sq.Row, Col: sq.Col, Size: b.size}
	}
	b.invalid[sq] = true
	return nil
}

// IsPlayable reports whether sq is on the board and not structurally invalid.
func (b *Board) IsPlayable(sq Square) bool {
	return b.inExtent(sq) && !b.invalid[sq]
}

// Place puts piece on at. It is a no-op for a nil piece or an unplayable
// square. Any prior occupant of at is evicted into the undo journal; an
// empty target clears the journal. Place does not vacate any square the
// piece already stands on; use Relocate to move a piece.
func (b *Board) Place(piece *Piece, at Square) {
	if piece == nil || !b.IsPlayable(at) {
		return
	}
	b.lastCaptured = b.pieces[at]
	b.pieces[at] = piece
	piece.Square = at
}

// Remove deletes any piece standing on at.
func (b *Board) Remove(at Square) {
	delete(b.pieces, at)
}

// Relocate moves piece from its current square to to, capturing whatever
// stood there. Callers must not relocate a piece onto its own square.
func (b *Board) Relocate(piece *Piece, to Square) {
	if piece == nil || !b.IsPlayable(to) || piece.Square == to {
		return
	}
	from := piece.Square
	b.Place(piece, to)
	b.Remove(from)
}

// PieceAt returns the piece on sq, or nil if the square is empty.
func (b *Board) PieceAt(sq Square) *Piece {
	return b.pieces[sq]
}

// LastCaptured returns the piece evicted by the most recent placement, or nil.
func (b *Board) LastCaptured() *Piece {
	return b.lastCaptured
}

// Pieces returns every piece on the board in row-major order of their squares.
func (b *Board) Pieces() []*Piece {
	pieces := make([]*Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		pieces = append(pieces, p)
	}
	slices.SortFunc(pieces, func(x, y *Piece) int {
		return compareSquares(x.Square, y.Square)
	})
	return pieces
}

// PlayableSquares returns every playable square in row-major order.
func (b *Board) PlayableSquares() []Square {
	squares := make([]Square, 0, b.size*b.size)
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sq := Sq(row, col)
			if b.IsPlayable(sq) {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}

// King returns the king of the given colour, or nil if there is none.
// If a hand-built board holds several, the first in row-major order wins.
func (b *Board) King(colour Colour) *Piece {
	for _, p := range b.Pieces() {
		if p.Kind == King && p.Colour == colour {
			return p
		}
	}
	return nil
}

// Undo reverses the most recent Relocate of a piece from from to to: the
// piece goes back to from and any piece it captured is reinstated on to.
// A pawn returned to row 1 or row size-2 regains its opening privilege.
// The undo journal is cleared afterwards.
func (b *Board) Undo(from, to Square) {
	moved := b.pieces[to]
	putBack := b.lastCaptured
	b.lastCaptured = nil
	if moved == nil {
		return
	}

	b.Relocate(moved, from)
	if putBack != nil {
		b.Place(putBack, to)
	}
	if moved.Kind == Pawn && (from.Row == 1 || from.Row == b.size-2) {
		moved.FirstMove = true
	}
	b.lastCaptured = nil
}

func compareSquares(a, b Square) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
