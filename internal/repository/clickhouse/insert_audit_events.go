package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

// InsertAuditEvents stores audit event rows in ClickHouse.
func (r *Repository) InsertAuditEvents(ctx context.Context, events []model.AuditEvent) error {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_audit_events", err, started)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO audit_events (
	event_id,
	action,
	actor,
	patient_id,
	subject,
	block_index,
	detail,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare audit events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			event.EventID,
			string(event.Action),
			string(event.Actor),
			event.PatientID,
			event.Subject,
			event.BlockIndex,
			event.Detail,
			event.OccurredAt,
		); err != nil {
			return fmt.Errorf("append audit event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert audit events: %w", err)
	}
	return nil
}
