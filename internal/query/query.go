// Package query is the read-only facade over the ledger subsystem.
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/caretrust/medledger-backend/internal/fingerprint"
	"github.com/caretrust/medledger-backend/internal/model"
	"go.uber.org/zap"
)

//go:generate mockgen -source=query.go -destination=mocks_test.go -package=query

type (
	// AnchorIndex is the read side of the anchored-entry index.
	AnchorIndex interface {
		Patient(patientID string) (model.PatientIdentity, error)
		Record(fp string) (model.RecordAnchorEntry, error)
		RecordExists(fp string) bool
		Stats() model.Stats
	}

	// Ledger is the read side of the chain.
	Ledger interface {
		Verify(ctx context.Context) model.VerifyResult
		BlockByIndex(ctx context.Context, index uint64) (model.Block, error)
		Length() uint64
	}

	// DocumentReader loads off-chain documents for targeted verification.
	DocumentReader interface {
		Document(ctx context.Context, kind model.DocumentKind, id string) (model.Document, error)
	}
)

// Service never mutates anything; every method is safe under pause.
type Service struct {
	logger    *zap.Logger
	index     AnchorIndex
	ledger    Ledger
	documents DocumentReader
}

// NewService builds the query facade.
func NewService(index AnchorIndex, ledger Ledger, documents DocumentReader, logger *zap.Logger) (*Service, error) {
	if index == nil {
		return nil, errors.New("anchor index is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if documents == nil {
		return nil, errors.New("document reader is required")
	}
	return &Service{
		logger:    logger.Named("query"),
		index:     index,
		ledger:    ledger,
		documents: documents,
	}, nil
}

// VerifyRecord reports whether fingerprint has an active anchor entry.
func (s *Service) VerifyRecord(fp string) bool {
	return s.index.RecordExists(fp)
}

// RecordDetails returns the anchor entry for fingerprint.
func (s *Service) RecordDetails(fp string) (model.RecordAnchorEntry, error) {
	return s.index.Record(fp)
}

// PatientDetails returns the anchored registration for patientID.
func (s *Service) PatientDetails(patientID string) (model.PatientIdentity, error) {
	return s.index.Patient(patientID)
}

// ChainVerification replays the full chain. A broken link is surfaced as
// ErrChainIntegrityViolation alongside the scan result; it is never
// auto-corrected here or anywhere else.
func (s *Service) ChainVerification(ctx context.Context) (model.VerifyResult, error) {
	result := s.ledger.Verify(ctx)
	if !result.Valid {
		return result, fmt.Errorf("broken link at block %d: %w",
			result.FirstInvalidIndex, model.ErrChainIntegrityViolation)
	}
	return result, nil
}

// Block returns the block at index for the ledger explorer.
func (s *Service) Block(ctx context.Context, index uint64) (model.Block, error) {
	return s.ledger.BlockByIndex(ctx, index)
}

// Stats counts active anchored entries.
func (s *Service) Stats() model.Stats {
	return s.index.Stats()
}

// VerifyDocument recomputes the fingerprint of a stored document and checks
// it against both the stored value and the anchored entry. A mismatch means
// the off-chain payload was tampered with after anchoring.
func (s *Service) VerifyDocument(ctx context.Context, kind model.DocumentKind, id string) error {
	doc, err := s.documents.Document(ctx, kind, id)
	if err != nil {
		return fmt.Errorf("load document %s/%s: %w", kind, id, err)
	}
	if !doc.Anchored || doc.Fingerprint == "" {
		return fmt.Errorf("document %s/%s: %w", kind, id, model.ErrAnchorPending)
	}

	recomputed, err := fingerprint.Fingerprint(doc.Payload)
	if err != nil {
		return fmt.Errorf("fingerprint document %s/%s: %w", kind, id, err)
	}
	if recomputed != doc.Fingerprint {
		s.logger.Error("document fingerprint mismatch",
			zap.String("kind", string(kind)),
			zap.String("id", id),
		)
		return fmt.Errorf("document %s/%s: %w", kind, id, model.ErrHashMismatch)
	}
	switch doc.Kind {
	case model.DocumentRecord:
		if !s.index.RecordExists(doc.Fingerprint) {
			return fmt.Errorf("record fingerprint not anchored: %w", model.ErrNotFound)
		}
	case model.DocumentPatient:
		identity, err := s.index.Patient(doc.PatientID)
		if err != nil {
			return fmt.Errorf("patient %q not anchored: %w", doc.PatientID, model.ErrNotFound)
		}
		if identity.IdentityFingerprint != doc.Fingerprint {
			return fmt.Errorf("anchored identity fingerprint differs: %w", model.ErrHashMismatch)
		}
	}
	return nil
}
