// Package registry gates mutating ledger operations by identity and
// per-patient scope.
package registry

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// grantChange is one tombstoned authorization transition. Revocations append
// a new change instead of deleting the grant, so history survives.
type grantChange struct {
	granted   bool
	changedBy model.Identity
	changedAt time.Time
}

// Registry holds global roles and per-patient authorization relations. All
// maps are owned exclusively by the registry; other components go through
// the exported operations.
type Registry struct {
	logger   *zap.Logger
	patients PatientDirectory
	audit    AuditSink
	now      func() time.Time

	mu     sync.RWMutex
	roles  map[model.Identity]map[model.Role]struct{}
	grants map[string]map[model.Identity][]grantChange
	paused bool
}

// New builds a Registry. bootstrapAdmins hold RoleAdministrator from the
// start; without at least one the registry could never be mutated.
func New(patients PatientDirectory, audit AuditSink, logger *zap.Logger, bootstrapAdmins ...model.Identity) (*Registry, error) {
	if patients == nil {
		return nil, errors.New("patient directory is required")
	}
	if audit == nil {
		return nil, errors.New("audit sink is required")
	}
	if len(bootstrapAdmins) == 0 {
		return nil, errors.New("at least one bootstrap administrator is required")
	}

	roles := make(map[model.Identity]map[model.Role]struct{}, len(bootstrapAdmins))
	for _, admin := range bootstrapAdmins {
		roles[admin] = map[model.Role]struct{}{model.RoleAdministrator: {}}
	}

	return &Registry{
		logger:   logger.Named("registry"),
		patients: patients,
		audit:    audit,
		now:      time.Now,
		roles:    roles,
		grants:   map[string]map[model.Identity][]grantChange{},
	}, nil
}

// GrantRole assigns role to identity. Administrator-only, idempotent.
func (r *Registry) GrantRole(actor, identity model.Identity, role model.Role) error {
	if !role.Valid() {
		return fmt.Errorf("role %q: %w", role, model.ErrNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if r.paused {
		return model.ErrSystemPaused
	}

	held, ok := r.roles[identity]
	if !ok {
		held = map[model.Role]struct{}{}
		r.roles[identity] = held
	}
	if _, already := held[role]; already {
		return nil
	}
	held[role] = struct{}{}

	r.emitLocked(model.AuditRoleGranted, actor, "", string(identity), string(role))
	r.logger.Info("role granted",
		zap.String("identity", string(identity)),
		zap.String("role", string(role)),
	)
	return nil
}

// RevokeRole removes role from identity. Administrator-only, idempotent.
func (r *Registry) RevokeRole(actor, identity model.Identity, role model.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if r.paused {
		return model.ErrSystemPaused
	}

	held, ok := r.roles[identity]
	if !ok {
		return nil
	}
	if _, has := held[role]; !has {
		return nil
	}
	delete(held, role)

	r.emitLocked(model.AuditRoleRevoked, actor, "", string(identity), string(role))
	return nil
}

// HasRole reports whether identity currently holds role.
func (r *Registry) HasRole(identity model.Identity, role model.Role) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.roles[identity][role]
	return ok
}

// AuthorizeDoctor sets the (patient, professional) relation to authorized.
// Administrator-only. The patient must already be registered and the grantee
// must already hold the medical-professional role; an unrecognized identity
// can never become patient-authorized.
func (r *Registry) AuthorizeDoctor(actor model.Identity, patientID string, professional model.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if r.paused {
		return model.ErrSystemPaused
	}
	if !r.patients.PatientExists(patientID) {
		return fmt.Errorf("patient %q: %w", patientID, model.ErrUnknownPatient)
	}
	if _, ok := r.roles[professional][model.RoleMedicalProfessional]; !ok {
		return fmt.Errorf("grantee %q lacks the medical-professional role: %w", professional, model.ErrNotAuthorized)
	}

	r.appendGrantLocked(patientID, professional, true, actor)
	r.emitLocked(model.AuditDoctorAuthorized, actor, patientID, string(professional), "")
	r.logger.Info("doctor authorized",
		zap.String("patient_id", patientID),
		zap.String("professional", string(professional)),
	)
	return nil
}

// RevokeDoctor sets the relation to unauthorized without erasing history.
func (r *Registry) RevokeDoctor(actor model.Identity, patientID string, professional model.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if r.paused {
		return model.ErrSystemPaused
	}
	if !r.patients.PatientExists(patientID) {
		return fmt.Errorf("patient %q: %w", patientID, model.ErrUnknownPatient)
	}

	r.appendGrantLocked(patientID, professional, false, actor)
	r.emitLocked(model.AuditDoctorRevoked, actor, patientID, string(professional), "")
	return nil
}

// IsAuthorizedDoctor reports the current relation. Pure read: never fails,
// returns false for unknown patients, stays available while paused.
func (r *Registry) IsAuthorizedDoctor(patientID string, professional model.Identity) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.grants[patientID][professional]
	if len(history) == 0 {
		return false
	}
	return history[len(history)-1].granted
}

// AuthorizationHistory returns the tombstoned grant transitions for audit
// display, newest last.
func (r *Registry) AuthorizationHistory(patientID string, professional model.Identity) []model.AuditEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.grants[patientID][professional]
	out := make([]model.AuditEvent, 0, len(history))
	for _, change := range history {
		action := model.AuditDoctorRevoked
		if change.granted {
			action = model.AuditDoctorAuthorized
		}
		out = append(out, model.AuditEvent{
			Action:     action,
			Actor:      change.changedBy,
			PatientID:  patientID,
			Subject:    string(professional),
			OccurredAt: change.changedAt,
		})
	}
	return out
}

// Pause short-circuits all mutating operations with ErrSystemPaused.
// Reads remain available. Administrator-only, idempotent.
func (r *Registry) Pause(actor model.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if r.paused {
		return nil
	}
	r.paused = true
	r.emitLocked(model.AuditSystemPaused, actor, "", "", "")
	r.logger.Warn("system paused", zap.String("actor", string(actor)))
	return nil
}

// Unpause re-enables mutating operations. Administrator-only, idempotent.
func (r *Registry) Unpause(actor model.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.requireAdminLocked(actor); err != nil {
		return err
	}
	if !r.paused {
		return nil
	}
	r.paused = false
	r.emitLocked(model.AuditSystemUnpaused, actor, "", "", "")
	r.logger.Info("system unpaused", zap.String("actor", string(actor)))
	return nil
}

// Paused reports the pause switch state.
func (r *Registry) Paused() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.paused
}

func (r *Registry) requireAdminLocked(actor model.Identity) error {
	if _, ok := r.roles[actor][model.RoleAdministrator]; !ok {
		return fmt.Errorf("actor %q is not an administrator: %w", actor, model.ErrNotAuthorized)
	}
	return nil
}

func (r *Registry) appendGrantLocked(patientID string, professional model.Identity, granted bool, actor model.Identity) {
	byProfessional, ok := r.grants[patientID]
	if !ok {
		byProfessional = map[model.Identity][]grantChange{}
		r.grants[patientID] = byProfessional
	}
	byProfessional[professional] = append(byProfessional[professional], grantChange{
		granted:   granted,
		changedBy: actor,
		changedAt: r.now().UTC(),
	})
}

func (r *Registry) emitLocked(action model.AuditAction, actor model.Identity, patientID, subject, detail string) {
	r.audit.Record(model.AuditEvent{
		EventID:    uuid.NewString(),
		Action:     action,
		Actor:      actor,
		PatientID:  patientID,
		Subject:    subject,
		Detail:     detail,
		OccurredAt: r.now().UTC(),
	})
}
