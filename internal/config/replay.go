package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// ReplayConfig holds settings for checking game-record files.
type ReplayConfig struct {
	// Workers is the number of records replayed in parallel (0 = NumCPU)
	Workers int

	// BufferSize is the size of the work and result queues (0 = 2*Workers)
	BufferSize int

	// DetectDuplicates flags records that end in an already seen position
	DetectDuplicates bool

	// JSONFormat writes one JSON object per record instead of text
	JSONFormat bool

	// StopOnError abandons remaining records after the first failure
	StopOnError bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{
		DetectDuplicates: true,
	}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.BufferSize < 0 {
		return fmt.Errorf("buffer size %d is negative: %w", r.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
