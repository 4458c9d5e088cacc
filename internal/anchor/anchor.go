// Package anchor computes deterministic fingerprints and submits authorized
// anchor entries to the ledger chain.
package anchor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caretrust/medledger-backend/internal/fingerprint"
	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service anchors patient registrations and medical records. Side effects
// are strictly append-only: once a block is appended no entry is mutated or
// removed; deactivation would be a later compensating entry.
type Service struct {
	logger  *zap.Logger
	gate    Gatekeeper
	ledger  Ledger
	index   *Index
	audit   AuditSink
	metrics Metrics
	now     func() time.Time

	// Serializes the duplicate check with the append that follows it, so
	// two concurrent submissions of the same payload cannot both pass.
	mu sync.Mutex
}

// NewService builds the anchor service and rebuilds the index from a full
// chain replay.
func NewService(gate Gatekeeper, ledger Ledger, index *Index, audit AuditSink, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if gate == nil {
		return nil, errors.New("gatekeeper is required")
	}
	if ledger == nil {
		return nil, errors.New("ledger is required")
	}
	if index == nil {
		return nil, errors.New("anchor index is required")
	}
	if audit == nil {
		return nil, errors.New("audit sink is required")
	}
	if metrics == nil {
		return nil, errors.New("anchor metrics is required")
	}

	s := &Service{
		logger:  logger.Named("anchor"),
		gate:    gate,
		ledger:  ledger,
		index:   index,
		audit:   audit,
		metrics: metrics,
		now:     time.Now,
	}

	if err := ledger.Replay(func(block model.Block) error {
		index.ApplyBlock(block)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("rebuild anchor index: %w", err)
	}

	return s, nil
}

// RegisterPatient anchors a patient identity fingerprint. Administrator-only;
// patientID is a natural key and immutable after creation.
func (s *Service) RegisterPatient(ctx context.Context, actor model.Identity, patientID string, identityPayload map[string]any) (model.PatientIdentity, model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("register_patient", err, started)
	}()

	if patientID == "" {
		err = errors.New("patient id is required")
		return model.PatientIdentity{}, model.Block{}, err
	}
	if s.gate.Paused() {
		err = model.ErrSystemPaused
		return model.PatientIdentity{}, model.Block{}, err
	}
	if !s.gate.HasRole(actor, model.RoleAdministrator) {
		err = fmt.Errorf("actor %q may not register patients: %w", actor, model.ErrNotAuthorized)
		s.rejected(actor, patientID, err)
		return model.PatientIdentity{}, model.Block{}, err
	}

	fp, err := fingerprint.Fingerprint(identityPayload)
	if err != nil {
		return model.PatientIdentity{}, model.Block{}, fmt.Errorf("fingerprint identity payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index.PatientExists(patientID) {
		err = fmt.Errorf("patient %q: %w", patientID, model.ErrDuplicateRegistration)
		s.rejected(actor, patientID, err)
		return model.PatientIdentity{}, model.Block{}, err
	}

	identity := model.PatientIdentity{
		PatientID:           patientID,
		IdentityFingerprint: fp,
		RegisteredBy:        actor,
		RegisteredAt:        s.now().UTC(),
		Active:              true,
	}

	block, err := s.ledger.Append(ctx, model.BlockPayload{
		Kind:    model.PayloadPatient,
		Patient: &identity,
	})
	if err != nil {
		return model.PatientIdentity{}, model.Block{}, fmt.Errorf("anchor patient %q: %w", patientID, err)
	}

	s.index.ApplyBlock(block)
	s.audit.Record(model.AuditEvent{
		EventID:    uuid.NewString(),
		Action:     model.AuditPatientAnchored,
		Actor:      actor,
		PatientID:  patientID,
		Subject:    fp,
		BlockIndex: block.Index,
		OccurredAt: identity.RegisteredAt,
	})
	s.logger.Info("patient anchored",
		zap.String("patient_id", patientID),
		zap.Uint64("block", block.Index),
	)

	return identity, block, nil
}

// AddRecord anchors a medical-record fingerprint for a patient. The caller
// must hold a current per-patient authorization.
func (s *Service) AddRecord(ctx context.Context, actor model.Identity, patientID string, recordPayload map[string]any, recordType model.RecordType) (model.RecordAnchorEntry, model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("add_record", err, started)
	}()

	if s.gate.Paused() {
		err = model.ErrSystemPaused
		return model.RecordAnchorEntry{}, model.Block{}, err
	}
	if !s.index.PatientExists(patientID) {
		err = fmt.Errorf("patient %q: %w", patientID, model.ErrUnknownPatient)
		return model.RecordAnchorEntry{}, model.Block{}, err
	}
	if !s.gate.IsAuthorizedDoctor(patientID, actor) {
		err = fmt.Errorf("professional %q is not authorized for patient %q: %w", actor, patientID, model.ErrNotAuthorized)
		s.rejected(actor, patientID, err)
		return model.RecordAnchorEntry{}, model.Block{}, err
	}

	fp, err := fingerprint.Fingerprint(recordPayload)
	if err != nil {
		return model.RecordAnchorEntry{}, model.Block{}, fmt.Errorf("fingerprint record payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Protects against double-anchoring retries: one entry per fingerprint.
	if s.index.RecordExists(fp) {
		err = fmt.Errorf("fingerprint %s: %w", fp, model.ErrDuplicateRecord)
		s.rejected(actor, patientID, err)
		return model.RecordAnchorEntry{}, model.Block{}, err
	}

	entry := model.RecordAnchorEntry{
		PatientID:         patientID,
		RecordFingerprint: fp,
		RecordType:        recordType,
		AnchoredBy:        actor,
		AnchoredAt:        s.now().UTC(),
		Active:            true,
	}

	block, err := s.ledger.Append(ctx, model.BlockPayload{
		Kind:   model.PayloadRecord,
		Record: &entry,
	})
	if err != nil {
		return model.RecordAnchorEntry{}, model.Block{}, fmt.Errorf("anchor record for %q: %w", patientID, err)
	}

	s.index.ApplyBlock(block)
	s.audit.Record(model.AuditEvent{
		EventID:    uuid.NewString(),
		Action:     model.AuditRecordAnchored,
		Actor:      actor,
		PatientID:  patientID,
		Subject:    fp,
		BlockIndex: block.Index,
		Detail:     string(recordType),
		OccurredAt: entry.AnchoredAt,
	})
	s.logger.Info("record anchored",
		zap.String("patient_id", patientID),
		zap.String("record_type", string(recordType)),
		zap.Uint64("block", block.Index),
	)

	return entry, block, nil
}

// Index exposes the read side for the query facade.
func (s *Service) Index() *Index {
	return s.index
}

func (s *Service) rejected(actor model.Identity, patientID string, cause error) {
	s.audit.Record(model.AuditEvent{
		EventID:    uuid.NewString(),
		Action:     model.AuditAnchorRejected,
		Actor:      actor,
		PatientID:  patientID,
		Detail:     cause.Error(),
		OccurredAt: s.now().UTC(),
	})
}
