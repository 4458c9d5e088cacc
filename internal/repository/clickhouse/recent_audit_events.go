package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

// RecentAuditEvents returns the newest audit events, optionally filtered by
// patient id.
func (r *Repository) RecentAuditEvents(ctx context.Context, patientID string, limit uint64) ([]model.AuditEvent, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_audit_events", err, started)
	}()

	const query = `
SELECT
	event_id,
	action,
	actor,
	patient_id,
	subject,
	block_index,
	detail,
	occurred_at
FROM audit_events
WHERE ? = '' OR patient_id = ?
ORDER BY occurred_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, patientID, patientID, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent audit events: %w", err)
	}
	defer rows.Close()

	var events []model.AuditEvent
	for rows.Next() {
		var (
			event  model.AuditEvent
			action string
			actor  string
		)
		if err = rows.Scan(
			&event.EventID,
			&action,
			&actor,
			&event.PatientID,
			&event.Subject,
			&event.BlockIndex,
			&event.Detail,
			&event.OccurredAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Action = model.AuditAction(action)
		event.Actor = model.Identity(actor)
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
