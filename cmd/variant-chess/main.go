// variant-chess plays two-player chess in the terminal on standard, custom
// and file-defined boards.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lgbarn/variant-chess-go/internal/config"
	"github.com/lgbarn/variant-chess-go/internal/logging"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("variant-chess-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog := setupLogger(cfg)
	defer closeLog()

	m, err := newMatch(cfg, logger)
	if err != nil {
		logger.Error("match_setup_failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	if err := m.run(cfg.Input); err != nil {
		logger.Error("input_failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogger builds the session logger from the log configuration. The
// returned function flushes the logger and closes the log file.
func setupLogger(cfg *config.Config) (*zap.Logger, func()) {
	opts := cfg.Log.Options()
	var file *os.File
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.Log.File, err)
			os.Exit(1)
		}
		file = f
		opts.Writer = f
	}

	logger := logging.New(opts)
	return logger, func() {
		_ = logger.Sync()
		if file != nil {
			file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: variant-chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess on standard, custom and file-defined boards.\n")
	fmt.Fprintf(os.Stderr, "Commands are read from stdin, one per line.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nLayouts (-layout):\n")
	fmt.Fprintf(os.Stderr, "  standard  8x8 board, standard pieces (default)\n")
	fmt.Fprintf(os.Stderr, "  custom    standard plus an UltraKnight and an UltraRook per side\n")
	fmt.Fprintf(os.Stderr, "  file      board read from the YAML file given with -f\n")
	fmt.Fprintf(os.Stderr, "\n%s", commandHelp)
}
