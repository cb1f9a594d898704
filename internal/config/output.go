package config

import (
	"fmt"

	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// GlyphSet selects how pieces are drawn.
type GlyphSet string

const (
	GlyphsUnicode GlyphSet = "unicode" // chess symbols
	GlyphsASCII   GlyphSet = "ascii"   // letters, uppercase for White
)

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Glyphs selects unicode symbols or ascii letters for pieces
	Glyphs GlyphSet

	// Coordinates labels the rows and columns around the board
	Coordinates bool

	// HighlightLastMove marks the squares of the most recent move
	HighlightLastMove bool

	// JSONFormat prints positions as JSON objects instead of a drawn board
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Glyphs:            GlyphsUnicode,
		Coordinates:       true,
		HighlightLastMove: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	switch o.Glyphs {
	case GlyphsUnicode, GlyphsASCII:
		return nil
	}
	return fmt.Errorf("glyph set %q (want unicode or ascii): %w", o.Glyphs, errors.ErrInvalidConfig)
}
