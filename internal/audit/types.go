package audit

import (
	"context"

	"github.com/caretrust/medledger-backend/internal/model"
)

type (
	// Store is the durable audit event backend.
	Store interface {
		InsertAuditEvents(ctx context.Context, events []model.AuditEvent) error
	}
)
