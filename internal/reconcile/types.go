package reconcile

import (
	"context"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// DocumentStore is the durable off-chain store. It is the source of
	// truth for application data; the ledger only checkpoints it.
	DocumentStore interface {
		SaveDocument(ctx context.Context, doc model.Document) error
		Document(ctx context.Context, kind model.DocumentKind, id string) (model.Document, error)
		UnanchoredDocuments(ctx context.Context, limit int) ([]model.Document, error)
	}

	// Anchorer is the write side of the anchor service.
	Anchorer interface {
		RegisterPatient(ctx context.Context, actor model.Identity, patientID string, identityPayload map[string]any) (model.PatientIdentity, model.Block, error)
		AddRecord(ctx context.Context, actor model.Identity, patientID string, recordPayload map[string]any, recordType model.RecordType) (model.RecordAnchorEntry, model.Block, error)
	}

	// AnchorLookup resolves already-anchored entries when a resubmission
	// collides with an anchor that landed earlier.
	AnchorLookup interface {
		PatientAnchor(patientID string) (model.PatientIdentity, model.BlockRef, error)
		RecordAnchor(fp string) (model.RecordAnchorEntry, model.BlockRef, error)
	}

	// Metrics tracks reconciliation outcomes.
	Metrics interface {
		ObserveJob(kind model.DocumentKind, status model.AnchorStatus, started time.Time)
		ObserveSweep(err error, resubmitted int, started time.Time)
		SetQueueDepth(depth int)
	}
)
