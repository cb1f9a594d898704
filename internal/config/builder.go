package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLayout selects a stock layout by name.
func (b *ConfigBuilder) WithLayout(name string) *ConfigBuilder {
	b.cfg.Layout = name
	return b
}

// WithLayoutFile selects a board described by a YAML file.
func (b *ConfigBuilder) WithLayoutFile(path string) *ConfigBuilder {
	b.cfg.Layout = LayoutFromFile
	b.cfg.LayoutFile = path
	return b
}

// WithFirstPlayer sets who moves first ("W" or "B").
func (b *ConfigBuilder) WithFirstPlayer(player string) *ConfigBuilder {
	b.cfg.FirstPlayer = player
	return b
}

// WithGlyphs sets the piece glyph set.
func (b *ConfigBuilder) WithGlyphs(glyphs GlyphSet) *ConfigBuilder {
	b.cfg.Output.Glyphs = glyphs
	return b
}

// WithCoordinates controls the row and column labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Output.Coordinates = enabled
	return b
}

// WithJSONOutput enables JSON position output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log encoder.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithInput sets the reader commands are read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
