package router

import (
	"encoding/json"
	"sync"
	"time"

	"HedgeRouter/internal/event"
	"HedgeRouter/internal/observability"
)

// RouterOutput carries a completed event to the persistence worker and the
// outbound publisher.
type RouterOutput struct {
	Envelope *event.EventEnvelope
	Payload  event.Event
}

// Emitter assigns audit-log sequences, maintains the event hash chain, and
// fans completed events out to downstream workers. The persist channel uses
// a blocking send (no event is ever dropped); the publish channel drops when
// full (consumers can read the audit log).
type Emitter struct {
	mu       sync.Mutex
	sequence int64
	hasher   *event.ChainHasher

	persistChan chan<- RouterOutput
	publishChan chan<- RouterOutput

	metrics *observability.Metrics
}

func NewEmitter(startSequence int64, persistChan, publishChan chan<- RouterOutput, metrics *observability.Metrics) *Emitter {
	return &Emitter{
		sequence:    startSequence,
		hasher:      event.NewChainHasher(),
		persistChan: persistChan,
		publishChan: publishChan,
		metrics:     metrics,
	}
}

// Emit seals evt into an envelope and hands it to the workers. Returns the
// assigned sequence.
func (e *Emitter) Emit(evt event.Event, at time.Time) int64 {
	e.mu.Lock()

	payload, err := json.Marshal(evt)
	if err != nil {
		// Payload types are plain structs; a marshal failure is a
		// programming error, but the envelope still gets logged.
		payload = []byte("{}")
	}

	seq := e.sequence
	e.sequence++

	// Capture the chain tip before ComputeHash advances it.
	prevHash := e.hasher.GetPrevHash()

	envelope := &event.EventEnvelope{
		Sequence:       seq,
		IdempotencyKey: evt.IdempotencyKey(),
		EventType:      evt.EventType(),
		Timestamp:      at,
		Payload:        payload,
		EventHash:      e.hasher.ComputeHash(seq, payload),
		PrevHash:       prevHash,
	}

	e.mu.Unlock()

	output := RouterOutput{Envelope: envelope, Payload: evt}

	// Blocking send: if the persistence worker falls behind, compositions
	// stall rather than lose audit records.
	select {
	case e.persistChan <- output:
	default:
		if e.metrics != nil {
			e.metrics.PersistBackpressure.Inc()
		}
		e.persistChan <- output
	}

	select {
	case e.publishChan <- output:
	default:
		if e.metrics != nil {
			e.metrics.PublishDrops.Inc()
		}
	}

	if e.metrics != nil {
		e.metrics.EventsEmitted.WithLabelValues(evt.EventType().String()).Inc()
		e.metrics.AuditSequence.Set(float64(seq))
	}

	return seq
}

// Sequence returns the next sequence to be assigned.
func (e *Emitter) Sequence() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sequence
}
