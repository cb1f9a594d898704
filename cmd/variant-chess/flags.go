// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/variant-chess-go/internal/config"
)

var (
	// Board selection
	layoutName  = flag.String("layout", "standard", "Board layout: standard, custom or file")
	layoutFile  = flag.String("f", "", "YAML layout file (implies -layout file)")
	firstPlayer = flag.String("first", "W", "Player to move first: W or B")

	// Output options
	glyphs     = flag.String("glyphs", "unicode", "Piece glyphs: unicode or ascii")
	noCoords   = flag.Bool("nocoords", false, "Don't label rows and columns")
	noHilite   = flag.Bool("nohighlight", false, "Don't mark the squares of the last move")
	jsonOutput = flag.Bool("J", false, "Print positions in JSON format")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=board only, 1=status, 2=status and legal moves")
	quiet      = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Logging
	logLevel  = flag.String("loglevel", "warn", "Log level: debug, info, warn or error")
	logFormat = flag.String("logformat", "console", "Log format: console, json or legacy")
	logFile   = flag.String("l", "", "Append session log to this file (default: stderr)")
	logCaller = flag.Bool("logcaller", false, "Annotate log entries with the calling file and line")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyBoardFlags(cfg)
	applyOutputFlags(cfg)
	applyLogFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyBoardFlags configures the board and the first player.
func applyBoardFlags(cfg *config.Config) {
	cfg.Layout = *layoutName
	if *layoutFile != "" {
		cfg.Layout = config.LayoutFromFile
		cfg.LayoutFile = *layoutFile
	}
	cfg.FirstPlayer = *firstPlayer
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.Glyphs = config.GlyphSet(*glyphs)
	cfg.Output.Coordinates = !*noCoords
	cfg.Output.HighlightLastMove = !*noHilite
	cfg.Output.JSONFormat = *jsonOutput
}

// applyLogFlags configures session logging.
func applyLogFlags(cfg *config.Config) {
	cfg.Log.Level = *logLevel
	cfg.Log.Format = *logFormat
	cfg.Log.File = *logFile
	cfg.Log.Caller = *logCaller
}
