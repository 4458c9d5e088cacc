// Package audit forwards audit events to their durable store off the hot
// path. Losing an event degrades observability, never correctness, so the
// sink buffers and batches instead of blocking callers on the store.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/caretrust/medledger-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Sink batches audit events into the store.
type Sink struct {
	logger  *zap.Logger
	batcher *batcher.Batcher[model.AuditEvent]
}

// NewSink builds a Sink flushing at flushSize events or every flushInterval,
// with at most rps flushes per second.
func NewSink(store Store, logger *zap.Logger, flushSize int, flushInterval time.Duration, rps int) (*Sink, error) {
	if store == nil {
		return nil, errors.New("audit store is required")
	}
	if flushSize <= 0 {
		return nil, errors.New("flush size must be positive")
	}
	if flushInterval <= 0 {
		return nil, errors.New("flush interval must be positive")
	}
	if rps <= 0 {
		return nil, errors.New("rps must be positive")
	}

	logger = logger.Named("audit")
	return &Sink{
		logger:  logger,
		batcher: batcher.New(logger, store.InsertAuditEvents, flushSize, flushInterval, rps),
	}, nil
}

// Start begins the background flushing loop.
func (s *Sink) Start(ctx context.Context) {
	s.batcher.Start(ctx)
}

// Stop flushes buffered events and stops the loop.
func (s *Sink) Stop() {
	s.batcher.Stop()
}

// Record queues one audit event. Fire-and-forget: a full buffer or stopped
// sink drops the event with a warning.
func (s *Sink) Record(event model.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := s.batcher.Add(ctx, event); err != nil {
		s.logger.Warn("audit event dropped",
			zap.String("event_id", event.EventID),
			zap.String("action", string(event.Action)),
			zap.Error(err),
		)
	}
}
