package model

import "time"

// AuditAction enumerates auditable ledger operations.
type AuditAction string

const (
	AuditRoleGranted      AuditAction = "role_granted"
	AuditRoleRevoked      AuditAction = "role_revoked"
	AuditDoctorAuthorized AuditAction = "doctor_authorized"
	AuditDoctorRevoked    AuditAction = "doctor_revoked"
	AuditSystemPaused     AuditAction = "system_paused"
	AuditSystemUnpaused   AuditAction = "system_unpaused"
	AuditPatientAnchored  AuditAction = "patient_anchored"
	AuditRecordAnchored   AuditAction = "record_anchored"
	AuditAnchorRejected   AuditAction = "anchor_rejected"
)

// AuditEvent is one append-only audit row. Events are batched into the audit
// store off the hot path; losing an event degrades observability, never
// correctness, so the sink is fire-and-forget.
type AuditEvent struct {
	EventID    string      `json:"event_id"`
	Action     AuditAction `json:"action"`
	Actor      Identity    `json:"actor"`
	PatientID  string      `json:"patient_id,omitempty"`
	Subject    string      `json:"subject,omitempty"`
	BlockIndex uint64      `json:"block_index,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// AuditActionCount is an aggregate row of audit events per action.
type AuditActionCount struct {
	Action AuditAction `json:"action"`
	Count  uint64      `json:"count"`
}
