// Package cpu runs the vanity search on a fixed pool of goroutines, one
// CPU-bound loop per worker.
package cpu

import (
	"context"
	"sync"

	"github.com/solmint/mintgen/internal/log"
	"github.com/solmint/mintgen/pkg/generator"
	"github.com/solmint/mintgen/pkg/generator/solana"
)

// Workers fold their local attempt count into the shared counter every
// foldInterval attempts, so the hot loop touches the shared cache line
// rarely while the reporter still sees fresh totals.
const foldInterval = 512

// Dispatcher owns the worker pool for one or more search runs.
//
// The exact-count protocol: a worker that finds a match calls
// RunStats.ClaimMatch, a decrement-if-positive compare-and-swap on the
// matches-remaining counter. Only a winning worker publishes its result, so
// exactly Job.Count results are ever published no matter how many workers
// race on the final match. Every worker also re-checks the counter at the
// top of its loop and exits once it reads zero.
type Dispatcher struct{}

// NewDispatcher creates a dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Run spawns job.Workers search goroutines against the shared stats and
// returns the channel they publish accepted results on. The channel is
// buffered to job.Count so no worker ever blocks on publish, and it is
// closed only after every worker has exited; draining it to the end is
// therefore also a join on the pool.
func (d *Dispatcher) Run(ctx context.Context, job *generator.Job, stats *generator.RunStats) (<-chan generator.Result, error) {
	// Each worker gets its own matcher: the scratch encode buffer inside
	// is not safe to share.
	matchers := make([]*solana.Matcher, job.Workers)
	for i := range matchers {
		m, err := solana.NewMatcher(job.Suffix)
		if err != nil {
			return nil, err
		}
		matchers[i] = m
	}

	results := make(chan generator.Result, job.Count)

	var wg sync.WaitGroup
	for i := 0; i < job.Workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			d.worker(ctx, id, job, matchers[id], stats, results)
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	log.Debug("search workers started", "workers", job.Workers, "suffix", job.Suffix)
	return results, nil
}

// worker is one generate/match/claim loop. It performs no I/O.
func (d *Dispatcher) worker(ctx context.Context, id int, job *generator.Job, matcher *solana.Matcher, stats *generator.RunStats, results chan<- generator.Result) {
	var unfolded uint64
	defer func() {
		if unfolded > 0 {
			stats.AddAttempts(unfolded)
		}
	}()

	for {
		if stats.Remaining() == 0 {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		kp, err := solana.NewKeypair()
		if err != nil {
			// The secure random source is gone; nothing sensible to retry.
			log.Fatal("secure random source unavailable", "worker", id, "err", err)
		}

		unfolded++
		if unfolded >= foldInterval {
			stats.AddAttempts(unfolded)
			unfolded = 0
		}

		addr, ok := matcher.Match(kp.Public)
		if !ok {
			continue
		}

		if !stats.ClaimMatch() {
			// Another worker took the last slot while we were encoding.
			return
		}

		attemptIndex := stats.AddAttempts(unfolded)
		unfolded = 0

		results <- generator.Result{
			Address:      addr,
			PrivateKey:   kp.PrivateKeyDisplay(),
			Type:         job.Type,
			AttemptIndex: attemptIndex,
			WorkerID:     id,
		}

		if stats.Remaining() == 0 {
			return
		}
	}
}
