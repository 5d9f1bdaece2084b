// Package config provides configuration for the checkers tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // warnings and errors only
	Normal  = 1 // one line per game
	Verbose = 2 // running commentary, one line per move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Rules   *RulesConfig
	Display *DisplayConfig
	Replay  *ReplayConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Rules:      NewRulesConfig(),
		Display:    NewDisplayConfig(),
		Replay:     NewReplayConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < Quiet || c.Verbosity > Verbose {
		return fmt.Errorf("verbosity %d out of range %d..%d: %w", c.Verbosity, Quiet, Verbose, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	return c.Replay.Validate()
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}
