package anchor

import (
	"context"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Gatekeeper answers the access-control questions the anchor service
	// asks before any chain write.
	Gatekeeper interface {
		HasRole(identity model.Identity, role model.Role) bool
		IsAuthorizedDoctor(patientID string, professional model.Identity) bool
		Paused() bool
	}

	// Ledger is the append side of the chain.
	Ledger interface {
		Append(ctx context.Context, payload model.BlockPayload) (model.Block, error)
		Replay(fn func(model.Block) error) error
	}

	// AuditSink receives audit events without blocking the caller.
	AuditSink interface {
		Record(event model.AuditEvent)
	}

	// Metrics tracks anchor operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
