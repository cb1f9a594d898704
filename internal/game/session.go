// Package game runs a two-player session on top of the rules engine: whose
// turn it is, the last move for a single undo, and how the game stands.
// Every rule decision is delegated to package engine.
package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/engine"
	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// Session is a single game. It owns its board; sessions never share state,
// so independent games may run side by side. A Session is not safe for
// concurrent use.
type Session struct {
	id       string
	board    *chess.Board
	turn     chess.Colour
	lastMove *chess.Move

	forfeited bool
	winner    chess.Colour

	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for move and game-state events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// NewSession starts a game on a stock layout with first to move.
func NewSession(first chess.Colour, layout chess.Layout, opts ...Option) (*Session, error) {
	board, err := chess.NewLayoutBoard(layout)
	if err != nil {
		return nil, errors.Wrap(err, "creating session")
	}
	return NewSessionWithBoard(first, board, opts...), nil
}

// NewSessionWithBoard starts a game on a prepared board, which the session
// takes ownership of.
func NewSessionWithBoard(first chess.Colour, board *chess.Board, opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		board:  board,
		turn:   first,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.id))
	s.logger.Info("session_start",
		zap.Stringer("first", first),
		zap.Int("board_size", board.Size()),
		zap.Int("pieces", len(board.Pieces())),
	)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Board returns the session's board. Callers must not mutate it.
func (s *Session) Board() *chess.Board { return s.board }

// CurrentPlayer returns the colour to move.
func (s *Session) CurrentPlayer() chess.Colour { return s.turn }

// PieceAt returns the piece on sq, or nil.
func (s *Session) PieceAt(sq chess.Square) *chess.Piece { return s.board.PieceAt(sq) }

// PlayableSquares lists the board's playable squares in row-major order.
func (s *Session) PlayableSquares() []chess.Square { return s.board.PlayableSquares() }

// BoardSize returns the side length of the board.
func (s *Session) BoardSize() int { return s.board.Size() }

// MovePiece plays from -> to for the player to move. It returns false, and
// changes nothing, if the move is illegal, the game was forfeited or the
// player to move has just lost their king.
func (s *Session) MovePiece(from, to chess.Square) bool {
	if s.forfeited || s.kingCaptured() || !engine.CanMove(s.board, from, to, s.turn) {
		s.logger.Debug("move_rejected",
			zap.Stringer("colour", s.turn),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
			zap.Bool("forfeited", s.forfeited),
			zap.Bool("king_captured", s.kingCaptured()),
		)
		return false
	}

	piece := s.board.PieceAt(from)
	if piece.Kind == chess.Pawn {
		piece.FirstMove = false
	}
	s.board.Relocate(piece, to)
	s.lastMove = &chess.Move{From: from, To: to}

	fields := []zap.Field{
		zap.Stringer("colour", s.turn),
		zap.Stringer("piece", piece.Kind),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	}
	if captured := s.board.LastCaptured(); captured != nil {
		fields = append(fields, zap.Stringer("captured", captured.Kind))
	}
	s.logger.Debug("move_accepted", fields...)

	s.turn = s.turn.Opposite()
	s.logState()
	return true
}

// UndoLastMove takes back the most recent move. Only one move can be taken
// back; it returns false if there is nothing to undo or the game was
// forfeited.
func (s *Session) UndoLastMove() bool {
	if s.lastMove == nil || s.forfeited {
		return false
	}
	m := *s.lastMove
	s.board.Undo(m.From, m.To)
	s.turn = s.turn.Opposite()
	s.lastMove = nil

	s.logger.Info("undo",
		zap.Stringer("from", m.From),
		zap.Stringer("to", m.To),
		zap.Stringer("to_move", s.turn),
	)
	return true
}

// CanUndo reports whether UndoLastMove would take a move back.
func (s *Session) CanUndo() bool { return s.lastMove != nil && !s.forfeited }

// LastMove returns the move that UndoLastMove would take back.
func (s *Session) LastMove() (chess.Move, bool) {
	if s.lastMove == nil {
		return chess.Move{}, false
	}
	return *s.lastMove, true
}

// IsCheck reports whether the player to move is in check.
func (s *Session) IsCheck() bool { return engine.IsInCheck(s.board, s.turn) }

// IsCheckmate reports whether the player to move is checkmated.
func (s *Session) IsCheckmate() bool { return engine.IsCheckmate(s.board, s.turn) }

// IsStalemate reports whether the player to move is stalemated.
func (s *Session) IsStalemate() bool { return engine.IsStalemate(s.board, s.turn) }

// LegalDestinations lists where the piece on from may go, provided it
// belongs to the player to move.
func (s *Session) LegalDestinations(from chess.Square) []chess.Square {
	if p := s.board.PieceAt(from); p == nil || p.Colour != s.turn || s.forfeited || s.kingCaptured() {
		return nil
	}
	return engine.LegalDestinations(s.board, from)
}

// LegalMoves lists every legal move for the player to move.
func (s *Session) LegalMoves() []chess.Move {
	if s.forfeited || s.kingCaptured() {
		return nil
	}
	return engine.LegalMoves(s.board, s.turn)
}

// Forfeit concedes the game for the player to move; the opponent wins.
func (s *Session) Forfeit() error {
	if st := s.Status(); st.Over() {
		return errors.Wrapf(errors.ErrGameOver, "cannot forfeit after %s", st.State)
	}
	s.forfeited = true
	s.winner = s.turn.Opposite()
	s.logger.Info("forfeit",
		zap.Stringer("loser", s.turn),
		zap.Stringer("winner", s.winner),
	)
	return nil
}

// Status evaluates the position for the player to move.
func (s *Session) Status() Status {
	st := Status{State: StateNormal, ToMove: s.turn}
	if s.forfeited {
		st.State = StateForfeited
		st.Winner, st.HasWinner = s.winner, true
		return st
	}

	if s.kingCaptured() {
		st.State = StateKingCaptured
		st.Winner, st.HasWinner = s.turn.Opposite(), true
		return st
	}

	check := engine.IsInCheck(s.board, s.turn)
	stuck := engine.PlayerStuck(s.board, s.turn)
	switch {
	case check && stuck:
		st.State = StateCheckmate
		st.Winner, st.HasWinner = s.turn.Opposite(), true
	case stuck:
		st.State = StateStalemate
	case check:
		st.State = StateCheck
	}
	return st
}

// kingCaptured reports whether the last move took the king of the player
// to move. Undoing that move clears it.
func (s *Session) kingCaptured() bool {
	if s.lastMove == nil {
		return false
	}
	c := s.board.LastCaptured()
	return c != nil && c.Kind == chess.King && c.Colour == s.turn
}

// logState reports check and game-ending positions. The full position
// search only runs when Info is enabled.
func (s *Session) logState() {
	if !s.logger.Core().Enabled(zapcore.InfoLevel) {
		return
	}
	st := s.Status()
	if st.State == StateNormal {
		return
	}
	fields := []zap.Field{
		zap.Stringer("state", st.State),
		zap.Stringer("to_move", st.ToMove),
	}
	if st.HasWinner {
		fields = append(fields, zap.Stringer("winner", st.Winner))
	}
	s.logger.Info("game_state", fields...)
}
