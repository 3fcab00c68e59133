// Package uploader drains accepted matches from the search and hands them
// to the database sink in batches, with per-record fallback when a batch
// call fails and an optional local backup file that is written regardless
// of upload outcome.
package uploader

import (
	"context"

	"github.com/solmint/mintgen/internal/log"
	"github.com/solmint/mintgen/internal/supabase"
	"github.com/solmint/mintgen/pkg/generator"
)

// Client is the database sink consumed by the batcher.
type Client interface {
	InsertBatch(ctx context.Context, records []supabase.Record) error
	InsertOne(ctx context.Context, record supabase.Record) error
}

// BatchStatus tags the outcome of one batch upload.
type BatchStatus int

const (
	BatchSuccess        BatchStatus = iota // every record stored
	BatchPartialFailure                    // fallback ran, some records failed
	BatchTotalFailure                      // fallback ran, every record failed
)

// ItemOutcome is the result of one fallback single-record insert.
type ItemOutcome struct {
	Record supabase.Record
	Err    error
}

// BatchOutcome is the aggregated result of one batch call site.
type BatchOutcome struct {
	Status   BatchStatus
	Inserted int
	Items    []ItemOutcome // per-record outcomes, set only when fallback ran
	Reason   error         // the batch-call error, set on total failure
}

// Summary is the upload-side portion of the run summary.
type Summary struct {
	Found        int
	Uploaded     int
	FailedUpload int
	BackedUp     int
}

// Batcher groups drained results into upload batches.
type Batcher struct {
	client    Client
	batchSize int // 0 = bulk: one upload after the channel is drained
	backup    *BackupWriter
}

// NewBatcher creates a batcher. backup may be nil when local backup is off.
func NewBatcher(client Client, batchSize int, backup *BackupWriter) *Batcher {
	return &Batcher{client: client, batchSize: batchSize, backup: backup}
}

// Drain consumes results until the channel is closed and returns the upload
// summary. total is the requested match count, used only for log context.
// Records are backed up as they arrive, before any upload attempt, so an
// upload failure can never lose a generated keypair.
func (b *Batcher) Drain(ctx context.Context, total int, results <-chan generator.Result) Summary {
	var sum Summary
	var pending []supabase.Record

	for res := range results {
		sum.Found++
		log.Info("found address",
			"index", sum.Found, "total", total,
			"address", res.Address, "worker", res.WorkerID)

		rec := supabase.Record{
			PubKey:     res.Address,
			PrivateKey: res.PrivateKey,
			SuffixType: string(res.Type),
		}

		if b.backup != nil {
			if err := b.backup.Append(rec); err != nil {
				log.Warn("local backup write failed", "address", rec.PubKey, "err", err)
			} else {
				sum.BackedUp++
			}
		}

		pending = append(pending, rec)
		if b.batchSize > 0 && len(pending) >= b.batchSize {
			b.flush(ctx, pending, &sum)
			pending = pending[:0]
		}
	}

	if len(pending) > 0 {
		b.flush(ctx, pending, &sum)
	}
	return sum
}

func (b *Batcher) flush(ctx context.Context, batch []supabase.Record, sum *Summary) {
	out := b.Upload(ctx, batch)
	sum.Uploaded += out.Inserted
	sum.FailedUpload += len(batch) - out.Inserted

	switch out.Status {
	case BatchSuccess:
		log.Info("batch uploaded", "records", len(batch))
	case BatchPartialFailure:
		log.Warn("batch partially uploaded", "records", len(batch), "inserted", out.Inserted)
	case BatchTotalFailure:
		log.Error("batch upload failed entirely", "records", len(batch), "err", out.Reason)
	}
}

// Upload performs one batch call. On failure it falls back to inserting the
// records one at a time; each record succeeds or fails on its own, so one
// bad record never blocks the rest of the batch.
func (b *Batcher) Upload(ctx context.Context, batch []supabase.Record) BatchOutcome {
	err := b.client.InsertBatch(ctx, batch)
	if err == nil {
		return BatchOutcome{Status: BatchSuccess, Inserted: len(batch)}
	}

	log.Warn("batch insert failed, retrying records individually", "records", len(batch), "err", err)

	items := make([]ItemOutcome, 0, len(batch))
	inserted := 0
	for _, rec := range batch {
		itemErr := b.client.InsertOne(ctx, rec)
		if itemErr == nil {
			inserted++
		} else {
			log.Warn("individual insert failed", "address", rec.PubKey, "err", itemErr)
		}
		items = append(items, ItemOutcome{Record: rec, Err: itemErr})
	}

	switch inserted {
	case len(batch):
		return BatchOutcome{Status: BatchSuccess, Inserted: inserted, Items: items}
	case 0:
		return BatchOutcome{Status: BatchTotalFailure, Inserted: 0, Items: items, Reason: err}
	default:
		return BatchOutcome{Status: BatchPartialFailure, Inserted: inserted, Items: items}
	}
}
