package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for HedgeRouter.
type Metrics struct {
	// --- Composition core ---
	CompositionsStarted   *prometheus.CounterVec
	CompositionsCompleted *prometheus.CounterVec
	CompositionsFailed    *prometheus.CounterVec
	CompositionDuration   *prometheus.HistogramVec
	PremiumPaidTotal      *prometheus.CounterVec
	RefundTotal           *prometheus.CounterVec

	// --- Guards ---
	ReentrancyRejections prometheus.Counter
	PausedRejections     prometheus.Counter
	PauseTransitions     *prometheus.CounterVec

	// --- Unwind (compensating actions) ---
	UnwindReplays  prometheus.Counter
	UnwindSteps    prometheus.Counter
	UnwindFailures prometheus.Counter

	// --- Events & audit chain ---
	EventsEmitted       *prometheus.CounterVec
	AuditSequence       prometheus.Gauge
	PersistBackpressure prometheus.Counter
	PublishDrops        prometheus.Counter

	// --- Idempotency ---
	IdempotencyLRUSize   prometheus.Gauge
	IdempotencyEvictions prometheus.Gauge

	// --- Quote ---
	QuoteRequests *prometheus.CounterVec
	QuoteDuration prometheus.Histogram

	// --- Persistence ---
	PersistEventsWritten prometheus.Counter
	PersistBatchDur      prometheus.Histogram
	PersistBatchSize     prometheus.Histogram
	PersistErrors        *prometheus.CounterVec
	PersistLastSequence  prometheus.Gauge

	// --- Outbound publisher ---
	EventsPublished prometheus.Counter
	PublishErrors   prometheus.Counter

	// --- Query API ---
	QueryRequests *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	QueryErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	// Compositions make several collaborator round trips, so buckets span
	// RPC latencies rather than in-process apply times.
	composeBuckets := []float64{
		0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5,
	}

	return &Metrics{
		CompositionsStarted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_compositions_started_total",
			Help: "Compositions entered past the guards",
		}, []string{"path"}),

		CompositionsCompleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_compositions_completed_total",
			Help: "Compositions completed successfully",
		}, []string{"path"}),

		CompositionsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_compositions_failed_total",
			Help: "Compositions aborted (validation, state, transfer, internal)",
		}, []string{"path", "reason"}),

		CompositionDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hedge_composition_duration_seconds",
			Help:    "End-to-end composition latency",
			Buckets: composeBuckets,
		}, []string{"path"}),

		PremiumPaidTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_premium_paid_total",
			Help: "Total premium routed to protection contracts (token base units)",
		}, []string{"path"}),

		RefundTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_refund_total",
			Help: "Total unconsumed funds returned to callers (token base units)",
		}, []string{"path"}),

		ReentrancyRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_reentrancy_rejections_total",
			Help: "Calls rejected while another call held the router",
		}),

		PausedRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_paused_rejections_total",
			Help: "Calls rejected by the circuit breaker",
		}),

		PauseTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_pause_transitions_total",
			Help: "Circuit breaker transitions",
		}, []string{"state"}),

		UnwindReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_unwind_replays_total",
			Help: "Aborted calls that replayed the compensation log",
		}),

		UnwindSteps: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_unwind_steps_total",
			Help: "Compensating actions replayed",
		}),

		UnwindFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_unwind_failures_total",
			Help: "Rollbacks that left at least one compensator failed",
		}),

		EventsEmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_events_emitted_total",
			Help: "Audit events emitted",
		}, []string{"event_type"}),

		AuditSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hedge_audit_sequence",
			Help: "Last assigned audit-log sequence",
		}),

		PersistBackpressure: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_persist_backpressure_total",
			Help: "Times the emitter blocked on the persist channel",
		}),

		PublishDrops: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_publish_drops_total",
			Help: "Events dropped due to full publish channel",
		}),

		IdempotencyLRUSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hedge_idempotency_lru_size",
			Help: "Request IDs held in the in-memory dedup tier",
		}),

		IdempotencyEvictions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hedge_idempotency_lru_evictions",
			Help: "Keys evicted from the in-memory dedup tier since start",
		}),

		QuoteRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_quote_requests_total",
			Help: "Quote requests",
		}, []string{"status"}),

		QuoteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hedge_quote_duration_seconds",
			Help:    "Quote latency (two pricing round trips)",
			Buckets: composeBuckets,
		}),

		PersistEventsWritten: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_persist_events_written_total",
			Help: "Audit events written to Postgres",
		}),

		PersistBatchDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hedge_persist_batch_duration_seconds",
			Help:    "Postgres batch write duration",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),

		PersistBatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "hedge_persist_batch_size",
			Help:    "Events per batch",
			Buckets: []float64{1, 5, 10, 25, 50, 100},
		}),

		PersistErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_persist_errors_total",
			Help: "Persistence errors",
		}, []string{"error_type"}),

		PersistLastSequence: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hedge_persist_last_sequence",
			Help: "Last persisted audit sequence",
		}),

		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_events_published_total",
			Help: "Events published to NATS",
		}),

		PublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hedge_publish_errors_total",
			Help: "NATS publish failures (non-fatal)",
		}),

		QueryRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_query_requests_total",
			Help: "Query requests",
		}, []string{"endpoint", "status"}),

		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hedge_query_duration_seconds",
			Help:    "Query latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"endpoint"}),

		QueryErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hedge_query_errors_total",
			Help: "Query errors",
		}, []string{"endpoint", "code"}),
	}
}
