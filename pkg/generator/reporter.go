package generator

import (
	"time"

	"github.com/solmint/mintgen/internal/log"
)

// Reporter periodically samples a RunStats and logs search progress.
// Sampling is read-only on atomics, so workers are never blocked.
type Reporter struct {
	stats    *RunStats
	interval time.Duration
}

// NewReporter creates a progress reporter. A non-positive interval falls
// back to 5 seconds.
func NewReporter(stats *RunStats, interval time.Duration) *Reporter {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Reporter{stats: stats, interval: interval}
}

// Run logs progress on every tick until done is closed. Call it in its own
// goroutine.
func (r *Reporter) Run(done <-chan struct{}) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			st := r.stats.Snapshot()
			log.Info("search progress",
				"attempts", st.Attempts,
				"remaining", st.Remaining,
				"elapsed", time.Duration(st.ElapsedSecs*float64(time.Second)).Round(time.Second),
				"rate", uint64(st.HashRate),
			)
		}
	}
}
