package output

import (
	"fmt"

	"github.com/lgbarn/variant-chess-go/internal/game"
)

// FormatStatus describes a game status in one line.
func FormatStatus(st game.Status) string {
	switch st.State {
	case game.StateCheck:
		return fmt.Sprintf("%s is in check", st.ToMove)
	case game.StateCheckmate:
		return fmt.Sprintf("Checkmate! %s wins", st.Winner)
	case game.StateStalemate:
		return fmt.Sprintf("Stalemate: %s has no legal move", st.ToMove)
	case game.StateKingCaptured:
		return fmt.Sprintf("%s king captured. %s wins", st.ToMove, st.Winner)
	case game.StateForfeited:
		return fmt.Sprintf("%s forfeits. %s wins", st.ToMove, st.Winner)
	}
	return fmt.Sprintf("%s to move", st.ToMove)
}
