package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/config"
	"github.com/lgbarn/variant-chess-go/internal/game"
)

// View is a position to be written: the board, the move that led to it and
// where the game stands.
type View struct {
	SessionID string
	Board     *chess.Board
	LastMove  *chess.Move
	Status    game.Status
}

// SessionView captures what a writer needs from a running session.
func SessionView(s *game.Session) View {
	v := View{SessionID: s.ID(), Board: s.Board(), Status: s.Status()}
	if m, ok := s.LastMove(); ok {
		v.LastMove = &m
	}
	return v
}

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different formats (text, JSON).
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(v View) error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.OutputConfig) PositionWriter {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter draws positions as text boards followed by a status line.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition draws the board and its status.
func (tw *TextWriter) WritePosition(v View) error {
	if err := RenderBoard(tw.w, v.Board, v.LastMove, tw.cfg); err != nil {
		return err
	}
	_, err := fmt.Fprintln(tw.w, FormatStatus(v.Status))
	return err
}

// JSONWriter writes each position as one indented JSON object.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WritePosition encodes the position.
func (jw *JSONWriter) WritePosition(v View) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(PositionToJSON(v))
}
