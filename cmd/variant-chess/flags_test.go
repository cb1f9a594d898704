package main

import (
	"testing"

	"github.com/lgbarn/variant-chess-go/internal/config"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyBoardFlags(t *testing.T) {
	t.Run("stock layout", func(t *testing.T) {
		defer saveRestoreString(layoutName, "custom")()
		defer saveRestoreString(layoutFile, "")()
		defer saveRestoreString(firstPlayer, "B")()
		cfg := config.NewConfig()
		applyBoardFlags(cfg)
		if cfg.Layout != "custom" {
			t.Errorf("Layout = %q; want custom", cfg.Layout)
		}
		if cfg.FirstPlayer != "B" {
			t.Errorf("FirstPlayer = %q; want B", cfg.FirstPlayer)
		}
	})

	t.Run("layout file overrides layout name", func(t *testing.T) {
		defer saveRestoreString(layoutName, "standard")()
		defer saveRestoreString(layoutFile, "boards/cross.yaml")()
		cfg := config.NewConfig()
		applyBoardFlags(cfg)
		if cfg.Layout != config.LayoutFromFile {
			t.Errorf("Layout = %q; want %q", cfg.Layout, config.LayoutFromFile)
		}
		if cfg.LayoutFile != "boards/cross.yaml" {
			t.Errorf("LayoutFile = %q; want boards/cross.yaml", cfg.LayoutFile)
		}
	})
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name       string
		glyphs     string
		noCoords   bool
		noHilite   bool
		json       bool
		wantCoords bool
		wantHilite bool
	}{
		{"defaults", "unicode", false, false, false, true, true},
		{"bare ascii", "ascii", true, true, false, false, false},
		{"json", "unicode", false, false, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(glyphs, tt.glyphs)()
			defer saveRestoreBool(noCoords, tt.noCoords)()
			defer saveRestoreBool(noHilite, tt.noHilite)()
			defer saveRestoreBool(jsonOutput, tt.json)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)
			if cfg.Output.Glyphs != config.GlyphSet(tt.glyphs) {
				t.Errorf("Glyphs = %q; want %q", cfg.Output.Glyphs, tt.glyphs)
			}
			if cfg.Output.Coordinates != tt.wantCoords {
				t.Errorf("Coordinates = %v; want %v", cfg.Output.Coordinates, tt.wantCoords)
			}
			if cfg.Output.HighlightLastMove != tt.wantHilite {
				t.Errorf("HighlightLastMove = %v; want %v", cfg.Output.HighlightLastMove, tt.wantHilite)
			}
			if cfg.Output.JSONFormat != tt.json {
				t.Errorf("JSONFormat = %v; want %v", cfg.Output.JSONFormat, tt.json)
			}
		})
	}
}

func TestApplyLogFlags(t *testing.T) {
	defer saveRestoreString(logLevel, "debug")()
	defer saveRestoreString(logFormat, "json")()
	defer saveRestoreString(logFile, "logs/chess.log")()
	defer saveRestoreBool(logCaller, true)()

	cfg := config.NewConfig()
	applyLogFlags(cfg)
	want := config.LogConfig{Level: "debug", Format: "json", File: "logs/chess.log", Caller: true}
	if *cfg.Log != want {
		t.Errorf("Log = %+v; want %+v", *cfg.Log, want)
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		quiet     bool
		want      int
	}{
		{"default", 1, false, 1},
		{"verbose", 2, false, 2},
		{"quiet wins", 2, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(verbosity, tt.verbosity)()
			defer saveRestoreBool(quiet, tt.quiet)()
			cfg := config.NewConfig()
			applyFlags(cfg)
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_DefaultsValidate(t *testing.T) {
	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with default flags: %v", err)
	}
}
