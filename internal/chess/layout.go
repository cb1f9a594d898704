package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// Layout names a stock board setup.
type Layout string

const (
	LayoutStandard Layout = "standard" // 8x8, the usual army for each side
	LayoutCustom   Layout = "custom"   // standard plus an UltraKnight and an UltraRook per side
)

// StandardSize is the side length of the stock layouts.
const StandardSize = 8

// ParseLayout converts a layout name (any case) to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutStandard:
		return LayoutStandard, nil
	case LayoutCustom:
		return LayoutCustom, nil
	}
	return "", fmt.Errorf("%q: %w", s, errors.ErrUnknownLayout)
}

// NewLayoutBoard creates a board set up with the named stock layout.
func NewLayoutBoard(layout Layout) (*Board, error) {
	switch layout {
	case LayoutStandard:
		return NewStandardBoard(), nil
	case LayoutCustom:
		return NewCustomBoard(), nil
	}
	return nil, fmt.Errorf("%q: %w", layout, errors.ErrUnknownLayout)
}

// NewStandardBoard creates an 8x8 board in the standard starting position.
// White occupies rows 0 and 1, Black rows 6 and 7.
func NewStandardBoard() *Board {
	b := NewBoard(StandardSize)
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < StandardSize; col++ {
		b.Add(backRank[col], White, Sq(0, col))
		b.Add(Pawn, White, Sq(1, col))
		b.Add(Pawn, Black, Sq(StandardSize-2, col))
		b.Add(backRank[col], Black, Sq(StandardSize-1, col))
	}
	return b
}

// NewCustomBoard creates the standard position with an UltraKnight and an
// UltraRook added in front of each side's pawns, mirrored by colour.
func NewCustomBoard() *Board {
	b := NewStandardBoard()
	b.Add(UltraKnight, White, Sq(2, 3))
	b.Add(UltraKnight, Black, Sq(5, 3))
	b.Add(UltraRook, White, Sq(2, 5))
	b.Add(UltraRook, Black, Sq(5, 5))
	return b
}

// Add creates a piece and places it on sq, returning it. It returns nil if
// sq is not playable.
func (b *Board) Add(kind Kind, colour Colour, sq Square) *Piece {
	if !b.IsPlayable(sq) {
		return nil
	}
	p := NewPiece(kind, colour, sq)
	b.Place(p, sq)
	return p
}

// PieceSpec describes one piece of a board specification.
type PieceSpec struct {
	Kind   Kind
	Colour Colour
	Square Square
}

// BoardSpec describes an arbitrary board shape and setup.
type BoardSpec struct {
	Size    int
	Invalid []Square
	Pieces  []PieceSpec
}

// BuildBoard materialises a board specification. Invalid squares are
// carved out before pieces are placed; a piece on an unplayable square or
// on an occupied square, and a second king of one colour, are
// configuration errors.
func BuildBoard(spec BoardSpec) (*Board, error) {
	if spec.Size <= 0 {
		return nil, fmt.Errorf("board size %d: %w", spec.Size, errors.ErrInvalidConfig)
	}

	b := NewBoard(spec.Size)
	for _, sq := range spec.Invalid {
		if err := b.MarkInvalid(sq); err != nil {
			return nil, errors.Wrap(err, "marking invalid square")
		}
	}

	for _, ps := range spec.Pieces {
		if !b.IsPlayable(ps.Square) {
			return nil, errors.Wrapf(&errors.SquareError{
				Err: errors.ErrInvalidConfig, Row: ps.Square.Row, Col: ps.Square.Col, Size: spec.Size,
			}, "placing %s %s on unplayable square", ps.Colour, ps.Kind)
		}
		if existing := b.PieceAt(ps.Square); existing != nil {
			return nil, errors.Wrapf(&errors.SquareError{
				Err: errors.ErrInvalidConfig, Row: ps.Square.Row, Col: ps.Square.Col, Size: spec.Size,
			}, "placing %s %s on square held by %s", ps.Colour, ps.Kind, existing)
		}
		if ps.Kind == King {
			if king := b.King(ps.Colour); king != nil {
				return nil, errors.Wrapf(&errors.SquareError{
					Err: errors.ErrInvalidConfig, Row: ps.Square.Row, Col: ps.Square.Col, Size: spec.Size,
				}, "placing second %s King, first is at %s", ps.Colour, king.Square)
			}
		}
		b.Add(ps.Kind, ps.Colour, ps.Square)
	}

	b.lastCaptured = nil
	return b, nil
}
