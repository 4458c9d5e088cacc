// Package transport exposes the HTTP API.
package transport

import (
	"context"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// AccessRegistry is the role and authorization control plane.
	AccessRegistry interface {
		GrantRole(actor, identity model.Identity, role model.Role) error
		RevokeRole(actor, identity model.Identity, role model.Role) error
		AuthorizeDoctor(actor model.Identity, patientID string, professional model.Identity) error
		RevokeDoctor(actor model.Identity, patientID string, professional model.Identity) error
		IsAuthorizedDoctor(patientID string, professional model.Identity) bool
		AuthorizationHistory(patientID string, professional model.Identity) []model.AuditEvent
		Pause(actor model.Identity) error
		Unpause(actor model.Identity) error
		Paused() bool
	}

	// Anchors is the asynchronous write path: submissions are durable
	// immediately, the anchor confirms in the background.
	Anchors interface {
		SubmitPatient(ctx context.Context, actor model.Identity, patientID string, identityPayload map[string]any) (model.AnchorState, error)
		SubmitRecord(ctx context.Context, actor model.Identity, patientID string, recordPayload map[string]any, recordType model.RecordType) (model.AnchorState, error)
		Wait(ctx context.Context, jobID string) (model.AnchorState, error)
		State(jobID string) (model.AnchorState, error)
		FailureCause(jobID string) error
		SweepUnanchored(ctx context.Context) (int, error)
	}

	// Queries is the read-only ledger facade.
	Queries interface {
		VerifyRecord(fp string) bool
		RecordDetails(fp string) (model.RecordAnchorEntry, error)
		PatientDetails(patientID string) (model.PatientIdentity, error)
		ChainVerification(ctx context.Context) (model.VerifyResult, error)
		Block(ctx context.Context, index uint64) (model.Block, error)
		Stats() model.Stats
		VerifyDocument(ctx context.Context, kind model.DocumentKind, id string) error
	}

	// AuditLog reads the stored audit trail.
	AuditLog interface {
		RecentAuditEvents(ctx context.Context, patientID string, limit uint64) ([]model.AuditEvent, error)
		AuditEventCounts(ctx context.Context) ([]model.AuditActionCount, error)
	}

	// Metrics tracks handled requests.
	Metrics interface {
		Observe(method, route string, code int, started time.Time)
	}
)
