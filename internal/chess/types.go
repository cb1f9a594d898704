// Package chess provides the core value types of the variant chess engine:
// colours, piece kinds, squares, pieces and the sparse board they live on.
package chess

import (
	"fmt"
	"strings"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the single letter representation of a colour ('W' or 'B').
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the direction pawns advance in rows).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// ParseColour converts "W"/"White" or "B"/"Black" (any case) to a Colour.
func ParseColour(s string) (Colour, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "W"), strings.EqualFold(s, "White"):
		return White, true
	case strings.EqualFold(s, "B"), strings.EqualFold(s, "Black"):
		return Black, true
	}
	return Black, false
}

// Kind identifies the movement rules of a piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	UltraKnight // Knight plus any distance rightward along its row
	UltraRook   // Rook plus a single step up-and-right
	NumKinds
)

var kindNames = [NumKinds]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "UltraKnight", "UltraRook"}

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K', 'U', 'T'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a kind name as returned by String (any case) to a Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for k := Pawn; k < NumKinds; k++ {
		if strings.EqualFold(s, kindNames[k]) {
			return k, true
		}
	}
	return Pawn, false
}

// Square is a (row, column) coordinate. It carries no validity of its own;
// whether a square is playable depends on the board.
type Square struct {
	Row int
	Col int
}

// NoSquare stands for an absent square. It is never playable.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// String returns the square as "row,col".
func (s Square) String() string {
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move as "row,col->row,col".
func (m Move) String() string {
	return m.From.String() + "->" + m.To.String()
}
