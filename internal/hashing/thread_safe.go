package hashing

import (
	"sync"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// DetectorStats is a point-in-time view of a detector's counters.
type DetectorStats struct {
	Unique     int
	Duplicates int
	Full       bool
}

// SharedDetector is a DuplicateDetector safe for use from several
// goroutines, e.g. replay runs over different files feeding one report.
type SharedDetector struct {
	mu    sync.Mutex
	inner *DuplicateDetector
}

// NewSharedDetector creates a SharedDetector. maxCapacity of 0 means
// no limit.
func NewSharedDetector(exactMatch bool, maxCapacity int) *SharedDetector {
	return &SharedDetector{inner: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd reports whether the position was seen before and records it.
func (s *SharedDetector) CheckAndAdd(board *checkers.Board, toMove checkers.Side, plies int) bool {
	s.mu.Lock()
	dup := s.inner.CheckAndAdd(board, toMove, plies)
	s.mu.Unlock()
	return dup
}

// Stats returns the counters under a single lock so they agree.
func (s *SharedDetector) Stats() DetectorStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DetectorStats{
		Unique:     s.inner.UniqueCount(),
		Duplicates: s.inner.DuplicateCount(),
		Full:       s.inner.IsFull(),
	}
}
