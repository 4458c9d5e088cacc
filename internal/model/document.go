package model

import "time"

// DocumentKind separates off-chain document namespaces.
type DocumentKind string

const (
	DocumentPatient DocumentKind = "patient"
	DocumentRecord  DocumentKind = "record"
)

// Document is the off-chain envelope persisted before anchoring. The document
// store is the durable source of truth for application data; the ledger is an
// integrity checkpoint layered on top.
type Document struct {
	Kind        DocumentKind   `json:"kind"`
	ID          string         `json:"id"`
	PatientID   string         `json:"patient_id"`
	RecordType  RecordType     `json:"record_type,omitempty"`
	Payload     map[string]any `json:"payload"`
	SubmittedBy Identity       `json:"submitted_by"`
	CreatedAt   time.Time      `json:"created_at"`

	Anchored    bool      `json:"anchored"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	AnchorBlock *BlockRef `json:"anchor_block,omitempty"`
}

// AnchorStatus is the reconciliation state of one logical write.
type AnchorStatus string

const (
	// AnchorStatusPending: off-chain commit done, anchor not yet attempted.
	AnchorStatusPending AnchorStatus = "pending"
	// AnchorStatusAnchoring: the anchor attempt is in flight.
	AnchorStatusAnchoring AnchorStatus = "anchoring"
	// AnchorStatusAnchored: the chain accepted the entry.
	AnchorStatusAnchored AnchorStatus = "anchored"
	// AnchorStatusFailed: the anchor attempt failed; the document stays
	// unanchored and may be resubmitted.
	AnchorStatusFailed AnchorStatus = "anchor_failed"
)

// AnchorState is the observable snapshot of a reconciliation job.
type AnchorState struct {
	JobID       string       `json:"job_id"`
	DocumentID  string       `json:"document_id"`
	Kind        DocumentKind `json:"kind"`
	Status      AnchorStatus `json:"status"`
	Fingerprint string       `json:"fingerprint,omitempty"`
	AnchorBlock *BlockRef    `json:"anchor_block,omitempty"`
	Cause       string       `json:"cause,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
