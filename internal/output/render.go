// Package output draws positions for the terminal driver, either as a text
// board or as JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/config"
)

// Cell symbols for squares without a piece.
const (
	EmptySquare   = "."
	InvalidSquare = "#"
)

// RenderBoard draws b with row size-1 at the top, so White (rows 0 and 1 in
// the stock layouts) sits at the bottom. The squares of last, if given, are
// bracketed when opts.HighlightLastMove is set.
func RenderBoard(w io.Writer, b *chess.Board, last *chess.Move, opts *config.OutputConfig) error {
	if opts == nil {
		opts = config.NewOutputConfig()
	}
	size := b.Size()
	width := len(strconv.Itoa(size - 1))

	var sb strings.Builder
	for row := size - 1; row >= 0; row-- {
		var line strings.Builder
		if opts.Coordinates {
			fmt.Fprintf(&line, "%*d ", width, row)
		}
		for col := 0; col < size; col++ {
			sq := chess.Sq(row, col)
			cell := Symbol(b, sq, opts.Glyphs)
			if opts.HighlightLastMove && last != nil && (sq == last.From || sq == last.To) {
				line.WriteString("[" + cell + "]")
			} else {
				line.WriteString(" " + cell + " ")
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}

	if opts.Coordinates {
		var footer strings.Builder
		footer.WriteString(strings.Repeat(" ", width+1))
		for col := 0; col < size; col++ {
			fmt.Fprintf(&footer, "%2d ", col)
		}
		sb.WriteString(strings.TrimRight(footer.String(), " "))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Symbol returns the cell text for sq: the piece in the chosen glyph set,
// EmptySquare, or InvalidSquare for squares outside the playable area.
func Symbol(b *chess.Board, sq chess.Square, glyphs config.GlyphSet) string {
	if !b.IsPlayable(sq) {
		return InvalidSquare
	}
	p := b.PieceAt(sq)
	if p == nil {
		return EmptySquare
	}
	if glyphs == config.GlyphsASCII {
		return string(p.Letter())
	}
	return p.Glyph()
}
