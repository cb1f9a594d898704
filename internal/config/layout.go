package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// LayoutFile is the YAML description of a board shape and setup:
//
//	size: 6
//	invalid: [[0, 0], [0, 5]]
//	pieces:
//	  - {kind: King, colour: W, at: [0, 2]}
//	  - {kind: UltraRook, colour: B, at: [5, 3]}
type LayoutFile struct {
	Size    int           `yaml:"size"`
	Invalid [][]int       `yaml:"invalid"`
	Pieces  []LayoutPiece `yaml:"pieces"`
}

// LayoutPiece is one piece entry of a LayoutFile.
type LayoutPiece struct {
	Kind   string `yaml:"kind"`
	Colour string `yaml:"colour"`
	At     []int  `yaml:"at"`
}

// LoadLayout reads and decodes a YAML layout file.
func LoadLayout(path string) (*LayoutFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	lf, err := ParseLayout(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return lf, nil
}

// ParseLayout decodes a YAML layout document. Unknown keys are rejected.
func ParseLayout(b []byte) (*LayoutFile, error) {
	var lf LayoutFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&lf); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty layout: %w", errors.ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return &lf, nil
}

// BoardSpec converts the file to a chess.BoardSpec, resolving kind and
// colour names. Bounds and occupancy are checked later by chess.BuildBoard.
func (lf *LayoutFile) BoardSpec() (chess.BoardSpec, error) {
	spec := chess.BoardSpec{Size: lf.Size}

	for i, pair := range lf.Invalid {
		sq, err := squareOf(pair)
		if err != nil {
			return chess.BoardSpec{}, errors.Wrapf(err, "invalid[%d]", i)
		}
		spec.Invalid = append(spec.Invalid, sq)
	}

	for i, lp := range lf.Pieces {
		kind, ok := chess.ParseKind(lp.Kind)
		if !ok {
			return chess.BoardSpec{}, fmt.Errorf("pieces[%d]: kind %q: %w", i, lp.Kind, errors.ErrInvalidConfig)
		}
		colour, ok := chess.ParseColour(lp.Colour)
		if !ok {
			return chess.BoardSpec{}, fmt.Errorf("pieces[%d]: colour %q: %w", i, lp.Colour, errors.ErrInvalidConfig)
		}
		sq, err := squareOf(lp.At)
		if err != nil {
			return chess.BoardSpec{}, errors.Wrapf(err, "pieces[%d]", i)
		}
		spec.Pieces = append(spec.Pieces, chess.PieceSpec{Kind: kind, Colour: colour, Square: sq})
	}
	return spec, nil
}

func squareOf(pair []int) (chess.Square, error) {
	if len(pair) != 2 {
		return chess.NoSquare, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    fmt.Sprint(pair),
			Expected: "[row, col]",
			Got:      fmt.Sprintf("%d values", len(pair)),
		}
	}
	return chess.Sq(pair[0], pair[1]), nil
}
