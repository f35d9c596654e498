package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"HedgeRouter/internal/observability"
)

// RouterOutput mirrors router.RouterOutput to avoid an import cycle.
// The orchestrator (cmd/hedgerouter) bridges between the two.
type RouterOutput struct {
	EventRow EventRow
}

// AuditWorker drains the persist channel and batch-writes to Postgres.
// The persist channel uses BLOCKING sends from the emitter, so if this
// worker falls behind, compositions stall — guaranteeing no audit record is
// lost.
type AuditWorker struct {
	writer       *AuditLogWriter
	db           *sql.DB
	inputChan    <-chan RouterOutput
	batchSize    int
	flushTimeout time.Duration
	metrics      *observability.Metrics
}

func NewAuditWorker(
	db *sql.DB,
	inputChan <-chan RouterOutput,
	batchSize int,
	flushTimeout time.Duration,
	metrics *observability.Metrics,
) *AuditWorker {
	return &AuditWorker{
		writer:       NewAuditLogWriter(db),
		db:           db,
		inputChan:    inputChan,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
		metrics:      metrics,
	}
}

// Run starts the worker loop. It batches incoming outputs and flushes either
// when the batch is full or the flush timeout expires. Blocks until ctx is
// cancelled or the channel closes.
func (w *AuditWorker) Run(ctx context.Context) error {
	batch := make([]EventRow, 0, w.batchSize)

	timer := time.NewTimer(w.flushTimeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			// Graceful shutdown: flush remaining
			if len(batch) > 0 {
				if err := w.flush(context.Background(), batch); err != nil {
					log.Printf("ERROR: final flush failed: %v", err)
				}
			}
			return ctx.Err()

		case output, ok := <-w.inputChan:
			if !ok {
				if len(batch) > 0 {
					if err := w.flush(context.Background(), batch); err != nil {
						log.Printf("ERROR: final flush failed: %v", err)
					}
				}
				return nil
			}

			batch = append(batch, output.EventRow)

			if len(batch) >= w.batchSize {
				if err := w.flushWithRetry(ctx, batch); err != nil {
					log.Printf("ERROR: batch flush failed after retries: %v", err)
				}
				batch = batch[:0]
				timer.Reset(w.flushTimeout)
			}

		case <-timer.C:
			if len(batch) > 0 {
				if err := w.flushWithRetry(ctx, batch); err != nil {
					log.Printf("ERROR: timeout flush failed after retries: %v", err)
				}
				batch = batch[:0]
			}
			timer.Reset(w.flushTimeout)
		}
	}
}

// flushWithRetry attempts to flush with exponential backoff. The worker
// NEVER drops audit records — it retries until the write succeeds or the
// context is cancelled (graceful shutdown).
func (w *AuditWorker) flushWithRetry(ctx context.Context, batch []EventRow) error {
	backoff := 100 * time.Millisecond
	const maxBackoff = 30 * time.Second

	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			log.Printf("WARN: audit persist retry attempt %d (backoff=%v, events=%d)",
				attempt, backoff, len(batch))
			select {
			case <-ctx.Done():
				// Graceful shutdown — attempt one final flush with a
				// background context to avoid losing the batch.
				if finalErr := w.flush(context.Background(), batch); finalErr != nil {
					return fmt.Errorf("final flush on shutdown failed: %w", finalErr)
				}
				return nil
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		err := w.flush(ctx, batch)
		if err == nil {
			if attempt > 0 {
				log.Printf("INFO: audit flush succeeded after %d retries", attempt)
			}
			return nil
		}

		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("retry").Inc()
		}
	}
}

func (w *AuditWorker) flush(ctx context.Context, batch []EventRow) error {
	start := time.Now()

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_begin").Inc()
		}
		return err
	}
	defer tx.Rollback()

	if err := w.writer.WriteEventBatch(ctx, batch, tx); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("write_events").Inc()
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if w.metrics != nil {
			w.metrics.PersistErrors.WithLabelValues("tx_commit").Inc()
		}
		return err
	}

	if w.metrics != nil {
		w.metrics.PersistBatchDur.Observe(time.Since(start).Seconds())
		w.metrics.PersistBatchSize.Observe(float64(len(batch)))
		w.metrics.PersistEventsWritten.Add(float64(len(batch)))
		w.metrics.PersistLastSequence.Set(float64(batch[len(batch)-1].Sequence))
	}

	return nil
}

// GetWriter returns the underlying writer for startup recovery queries.
func (w *AuditWorker) GetWriter() *AuditLogWriter {
	return w.writer
}

// MarshalPayload is a convenience wrapper for JSON-encoding event payloads.
func MarshalPayload(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("WARN: failed to marshal payload: %v", err)
		return []byte("{}")
	}
	return data
}
