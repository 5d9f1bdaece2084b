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

// WithForcedCapture sets whether capturing is mandatory.
func (b *ConfigBuilder) WithForcedCapture(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ForcedCapture = enabled
	return b
}

// WithCrowningEndsTurn sets whether promotion ends a capture chain.
func (b *ConfigBuilder) WithCrowningEndsTurn(enabled bool) *ConfigBuilder {
	b.cfg.Rules.CrowningEndsTurn = enabled
	return b
}

// WithQuietPlyLimit sets the draw limit.
func (b *ConfigBuilder) WithQuietPlyLimit(n int) *ConfigBuilder {
	b.cfg.Rules.QuietPlyLimit = n
	return b
}

// WithFirstSide sets the side that moves first.
func (b *ConfigBuilder) WithFirstSide(side string) *ConfigBuilder {
	b.cfg.Rules.FirstSide = side
	return b
}

// WithUnicode enables unicode board glyphs.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Display.Unicode = enabled
	return b
}

// WithCoordinates toggles row and column labels around the board.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithHints enables listing legal moves after each board.
func (b *ConfigBuilder) WithHints(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowHints = enabled
	return b
}

// WithWorkers sets the replay parallelism.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Replay.Workers = n
	return b
}

// WithDuplicateDetection enables duplicate final-position detection.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Replay.DetectDuplicates = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Replay.JSONFormat = enabled
	b.cfg.Display.JSON = enabled
	return b
}

// WithStopOnError stops a replay run at the first failing record.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Replay.StopOnError = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
