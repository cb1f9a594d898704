package chess

// Piece is a single piece in play. Pieces are handled by pointer: the board
// and its undo journal rely on identity, so a captured piece is restored as
// the same *Piece rather than an equal copy.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square

	// FirstMove is the pawn's two-square opening privilege.
	// It is meaningless for other kinds.
	FirstMove bool
}

// NewPiece creates a piece of the given kind standing on sq.
// Pawns start with their two-square privilege.
func NewPiece(kind Kind, colour Colour, sq Square) *Piece {
	return &Piece{
		Kind:      kind,
		Colour:    colour,
		Square:    sq,
		FirstMove: kind == Pawn,
	}
}

// CanMoveTo reports whether moving to the (assumed empty) square to is
// geometrically legal for this piece, ignoring occupancy and check.
// It is always false for the piece's own square.
func (p *Piece) CanMoveTo(to Square) bool {
	dr := to.Row - p.Square.Row
	dc := to.Col - p.Square.Col

	switch p.Kind {
	case Pawn:
		return pawnAdvance(p, dr, dc)
	case Knight:
		return knightJump(dr, dc)
	case Bishop:
		return diagonal(dr, dc)
	case Rook:
		return straight(dr, dc)
	case Queen:
		return diagonal(dr, dc) || straight(dr, dc)
	case King:
		return max(abs(dr), abs(dc)) == 1
	case UltraKnight:
		return knightJump(dr, dc) || (dr == 0 && dc > 0)
	case UltraRook:
		return straight(dr, dc) || (dr == 1 && dc == 1)
	}
	return false
}

// CanCapture reports whether this piece could capture other: other must be
// an opponent standing on a square this piece attacks. Pawns capture one
// square diagonally forward; every other kind captures the way it moves.
func (p *Piece) CanCapture(other *Piece) bool {
	if other == nil || other.Colour == p.Colour {
		return false
	}
	if p.Kind == Pawn {
		dr := other.Square.Row - p.Square.Row
		dc := other.Square.Col - p.Square.Col
		return dr == p.Colour.Forward() && abs(dc) == 1
	}
	return p.CanMoveTo(other.Square)
}

// IsBetween reports whether middle lies strictly inside the path this piece
// travels toward end. Endpoints are never between. Leapers and single-step
// movers have no intermediate squares.
func (p *Piece) IsBetween(middle, end Square) bool {
	switch p.Kind {
	case Pawn:
		return pawnOpeningStep(p, middle, end)
	case Bishop:
		return onLine(p.Square, middle, end, true, false)
	case Rook, UltraRook:
		return onLine(p.Square, middle, end, false, true)
	case Queen:
		return onLine(p.Square, middle, end, true, true)
	case UltraKnight:
		return p.Square.Row == middle.Row && middle.Row == end.Row &&
			p.Square.Col < middle.Col && middle.Col < end.Col
	}
	return false
}

// Glyph returns the unicode symbol used to draw this piece.
func (p *Piece) Glyph() string {
	return Glyph(p.Kind, p.Colour)
}

// Letter returns an ascii label: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short description such as "White Rook at 0,3".
func (p *Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String() + " at " + p.Square.String()
}

var glyphs = [NumKinds][2]string{
	Pawn:        {"♟", "♙"},
	Knight:      {"♞", "♘"},
	Bishop:      {"♝", "♗"},
	Rook:        {"♜", "♖"},
	Queen:       {"♛", "♕"},
	King:        {"♚", "♔"},
	UltraKnight: {"♦", "♢"},
	UltraRook:   {"♠", "♤"},
}

// Glyph returns the unicode symbol for a (kind, colour) pair.
func Glyph(kind Kind, colour Colour) string {
	if kind < 0 || kind >= NumKinds {
		return "?"
	}
	return glyphs[kind][colour]
}

// pawnAdvance handles the straight pawn push, including the opening double step.
func pawnAdvance(p *Piece, dr, dc int) bool {
	if dc != 0 {
		return false
	}
	fwd := p.Colour.Forward()
	return dr == fwd || (p.FirstMove && dr == 2*fwd)
}

// pawnOpeningStep reports the square skipped over by the opening double step.
func pawnOpeningStep(p *Piece, middle, end Square) bool {
	if !p.FirstMove {
		return false
	}
	fwd := p.Colour.Forward()
	sameCol := middle.Col == p.Square.Col && end.Col == p.Square.Col
	return sameCol && middle.Row == p.Square.Row+fwd && end.Row == p.Square.Row+2*fwd
}

func knightJump(dr, dc int) bool {
	ar, ac := abs(dr), abs(dc)
	return (ar == 1 && ac == 2) || (ar == 2 && ac == 1)
}

func diagonal(dr, dc int) bool {
	return dr != 0 && abs(dr) == abs(dc)
}

func straight(dr, dc int) bool {
	return (dr == 0) != (dc == 0)
}

// onLine reports whether middle lies strictly between from and end on a
// diagonal or straight line (as permitted) joining them.
func onLine(from, middle, end Square, diagonals, straights bool) bool {
	dr := end.Row - from.Row
	dc := end.Col - from.Col
	if !(diagonals && diagonal(dr, dc)) && !(straights && straight(dr, dc)) {
		return false
	}

	n := max(abs(dr), abs(dc))
	mr := middle.Row - from.Row
	mc := middle.Col - from.Col
	k := max(abs(mr), abs(mc))
	return k > 0 && k < n && mr == sign(dr)*k && mc == sign(dc)*k
}
