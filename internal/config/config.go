// Package config holds the settings of the variant-chess command: which
// board to play on, who moves first, how the board is drawn and how the
// session logs.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/variant-chess-go/internal/chess"
	"github.com/lgbarn/variant-chess-go/internal/errors"
)

// LayoutFromFile selects a board described by a YAML layout file.
const LayoutFromFile = "file"

// Config holds all program configuration.
type Config struct {
	// Board selection
	Layout      string // standard, custom or file
	LayoutFile  string // YAML layout, used when Layout is "file"
	FirstPlayer string // W or B

	// Verbosity: 0=board only, 1=status after each move, 2=also list legal moves
	Verbosity int

	// Streams
	Input      io.Reader
	OutputFile io.Writer

	Output *OutputConfig
	Log    *LogConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Layout:      string(chess.LayoutStandard),
		FirstPlayer: "W",
		Verbosity:   1,
		Input:       os.Stdin,
		OutputFile:  os.Stdout,
		Output:      NewOutputConfig(),
		Log:         NewLogConfig(),
	}
}

// FirstColour returns the colour named by FirstPlayer.
func (c *Config) FirstColour() (chess.Colour, error) {
	colour, ok := chess.ParseColour(c.FirstPlayer)
	if !ok {
		return chess.White, fmt.Errorf("first player %q (want W or B): %w", c.FirstPlayer, errors.ErrInvalidConfig)
	}
	return colour, nil
}

// NewBoard creates the board selected by Layout.
func (c *Config) NewBoard() (*chess.Board, error) {
	if strings.EqualFold(strings.TrimSpace(c.Layout), LayoutFromFile) {
		lf, err := LoadLayout(c.LayoutFile)
		if err != nil {
			return nil, err
		}
		spec, err := lf.BoardSpec()
		if err != nil {
			return nil, errors.Wrapf(err, "layout file %s", c.LayoutFile)
		}
		board, err := chess.BuildBoard(spec)
		if err != nil {
			return nil, errors.Wrapf(err, "layout file %s", c.LayoutFile)
		}
		return board, nil
	}

	layout, err := chess.ParseLayout(c.Layout)
	if err != nil {
		return nil, err
	}
	return chess.NewLayoutBoard(layout)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if strings.EqualFold(strings.TrimSpace(c.Layout), LayoutFromFile) {
		if strings.TrimSpace(c.LayoutFile) == "" {
			return fmt.Errorf("layout %q needs a layout file: %w", c.Layout, errors.ErrInvalidConfig)
		}
	} else if _, err := chess.ParseLayout(c.Layout); err != nil {
		return errors.Wrap(err, "layout")
	}

	if _, err := c.FirstColour(); err != nil {
		return err
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d (want 0-2): %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Output != nil {
		if err := c.Output.Validate(); err != nil {
			return err
		}
	}
	if c.Log != nil {
		if err := c.Log.Validate(); err != nil {
			return err
		}
	}
	return nil
}
