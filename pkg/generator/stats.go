package generator

import (
	"sync/atomic"
	"time"
)

// RunStats holds the shared counters for one search run. Workers fold local
// attempt counts into the attempts counter; the remaining counter is only
// ever mutated through ClaimMatch, so the accepted-match total can never
// exceed the requested count.
type RunStats struct {
	attempts  atomic.Uint64
	remaining atomic.Int64
	startTime time.Time
}

// NewRunStats creates counters for a run targeting count matches.
func NewRunStats(count int) *RunStats {
	s := &RunStats{startTime: time.Now()}
	s.remaining.Store(int64(count))
	return s
}

// AddAttempts folds a worker-local attempt count into the shared counter
// and returns the new total.
func (s *RunStats) AddAttempts(n uint64) uint64 {
	return s.attempts.Add(n)
}

// Attempts returns the total attempts folded in so far.
func (s *RunStats) Attempts() uint64 {
	return s.attempts.Load()
}

// Remaining returns the number of matches still to be found.
func (s *RunStats) Remaining() int64 {
	return s.remaining.Load()
}

// ClaimMatch decrements the remaining counter only if it is still positive.
// It reports whether the caller won a slot for its match. Losing means the
// target count was already reached and the match must be discarded.
func (s *RunStats) ClaimMatch() bool {
	for {
		r := s.remaining.Load()
		if r <= 0 {
			return false
		}
		if s.remaining.CompareAndSwap(r, r-1) {
			return true
		}
	}
}

// StartTime returns when the run began.
func (s *RunStats) StartTime() time.Time {
	return s.startTime
}

// Snapshot returns a consistent-enough view for progress reporting.
// It takes no locks so it never slows the workers down.
func (s *RunStats) Snapshot() Stats {
	attempts := s.attempts.Load()
	elapsed := time.Since(s.startTime).Seconds()

	var hashRate float64
	if elapsed > 0 {
		hashRate = float64(attempts) / elapsed
	}

	return Stats{
		Attempts:    attempts,
		Remaining:   s.remaining.Load(),
		HashRate:    hashRate,
		ElapsedSecs: elapsed,
	}
}
