package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

// AuditEventCounts aggregates stored audit events per action.
func (r *Repository) AuditEventCounts(ctx context.Context) ([]model.AuditActionCount, error) {
	started := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("audit_event_counts", err, started)
	}()

	const query = `
SELECT action, count() AS cnt
FROM audit_events
GROUP BY action
ORDER BY action ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query audit event counts: %w", err)
	}
	defer rows.Close()

	var counts []model.AuditActionCount
	for rows.Next() {
		var (
			action string
			count  uint64
		)
		if err = rows.Scan(&action, &count); err != nil {
			return nil, fmt.Errorf("scan audit event count: %w", err)
		}
		counts = append(counts, model.AuditActionCount{
			Action: model.AuditAction(action),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit event counts: %w", err)
	}
	return counts, nil
}
