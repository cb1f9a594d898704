package game

import "github.com/lgbarn/variant-chess-go/internal/chess"

// State is the condition of a game as seen by the player to move.
type State int

const (
	StateNormal State = iota
	StateCheck
	StateCheckmate
	StateStalemate
	StateForfeited
	StateKingCaptured // the last move took the king of the player to move
)

var stateNames = [...]string{"normal", "check", "checkmate", "stalemate", "forfeited", "king_captured"}

// String returns the lowercase name of the state.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Status reports where a game stands.
type Status struct {
	State  State
	ToMove chess.Colour

	// Winner is set only when HasWinner is true.
	Winner    chess.Colour
	HasWinner bool
}

// Over reports whether no further moves will be accepted.
func (s Status) Over() bool {
	switch s.State {
	case StateCheckmate, StateStalemate, StateForfeited, StateKingCaptured:
		return true
	}
	return false
}
