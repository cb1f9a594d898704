package output

import "github.com/lgbarn/variant-chess-go/internal/chess"

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	SessionID string      `json:"sessionId,omitempty"`
	Size      int         `json:"size"`
	Invalid   [][2]int    `json:"invalid,omitempty"`
	Pieces    []JSONPiece `json:"pieces"`
	ToMove    string      `json:"toMove"`
	State     string      `json:"state"`
	Winner    string      `json:"winner,omitempty"`
	LastMove  *JSONMove   `json:"lastMove,omitempty"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Kind      string `json:"kind"`
	Colour    string `json:"colour"`
	At        [2]int `json:"at"`
	FirstMove bool   `json:"firstMove,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	From [2]int `json:"from"`
	To   [2]int `json:"to"`
}

// PositionToJSON converts a view to its JSON form. Pieces are listed in
// row-major order.
func PositionToJSON(v View) *JSONPosition {
	b := v.Board
	jp := &JSONPosition{
		SessionID: v.SessionID,
		Size:      b.Size(),
		Pieces:    make([]JSONPiece, 0),
		ToMove:    v.Status.ToMove.String(),
		State:     v.Status.State.String(),
	}
	if v.Status.HasWinner {
		jp.Winner = v.Status.Winner.String()
	}

	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			if !b.IsPlayable(chess.Sq(row, col)) {
				jp.Invalid = append(jp.Invalid, [2]int{row, col})
			}
		}
	}

	for _, p := range b.Pieces() {
		jp.Pieces = append(jp.Pieces, JSONPiece{
			Kind:      p.Kind.String(),
			Colour:    p.Colour.String(),
			At:        pair(p.Square),
			FirstMove: p.Kind == chess.Pawn && p.FirstMove,
		})
	}

	if v.LastMove != nil {
		jp.LastMove = &JSONMove{From: pair(v.LastMove.From), To: pair(v.LastMove.To)}
	}
	return jp
}

func pair(sq chess.Square) [2]int {
	return [2]int{sq.Row, sq.Col}
}
