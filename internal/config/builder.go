package config

import (
	"io"

	"github.com/rbridson/DadChess/internal/chess"
)

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

// WithUserColour sets the side the human plays.
func (b *ConfigBuilder) WithUserColour(colour chess.Colour) *ConfigBuilder {
	b.cfg.UserColour = colour
	return b
}

// WithSeed fixes the random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithJitter sets the profile jitter ratio.
func (b *ConfigBuilder) WithJitter(ratio float64) *ConfigBuilder {
	b.cfg.Scoring.Jitter = ratio
	return b
}

// WithFuzz sets the width of the board score noise.
func (b *ConfigBuilder) WithFuzz(fuzz float64) *ConfigBuilder {
	b.cfg.Scoring.Fuzz = fuzz
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLog sets the diagnostic writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithStatsDir enables statistics stored under dir.
func (b *ConfigBuilder) WithStatsDir(dir string) *ConfigBuilder {
	b.cfg.StatsDir = dir
	return b
}

// WithColour controls ANSI colour output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithUnicode controls chess glyph output.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}
