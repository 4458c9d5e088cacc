// Package model defines domain models for the record-integrity ledger.
package model

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Role is a global capability assigned to an identity.
type Role string

const (
	// RoleAdministrator may manage roles, authorizations and patients.
	RoleAdministrator Role = "administrator"
	// RoleMedicalProfessional may write records for patients that authorized it.
	RoleMedicalProfessional Role = "medical_professional"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleMedicalProfessional
}

// Identity is an opaque caller address. It identifies a key, not a person record.
type Identity string

// RecordType classifies an anchored medical record.
type RecordType string

// PatientIdentity is the anchored registration of a patient.
type PatientIdentity struct {
	PatientID           string    `json:"patient_id"`
	IdentityFingerprint string    `json:"identity_fingerprint"`
	RegisteredBy        Identity  `json:"registered_by"`
	RegisteredAt        time.Time `json:"registered_at"`
	Active              bool      `json:"active"`
}

// RecordAnchorEntry is one anchored medical-record fingerprint.
type RecordAnchorEntry struct {
	PatientID         string     `json:"patient_id"`
	RecordFingerprint string     `json:"record_fingerprint"`
	RecordType        RecordType `json:"record_type"`
	AnchoredBy        Identity   `json:"anchored_by"`
	AnchoredAt        time.Time  `json:"anchored_at"`
	Active            bool       `json:"active"`
}

// PayloadKind discriminates block payload variants.
type PayloadKind string

const (
	PayloadGenesis PayloadKind = "genesis"
	PayloadPatient PayloadKind = "patient_identity"
	PayloadRecord  PayloadKind = "record_anchor"
)

// BlockPayload is the tagged union carried by a block. Exactly one of the
// event pointers is set for non-genesis payloads.
type BlockPayload struct {
	Kind    PayloadKind        `json:"kind"`
	Patient *PatientIdentity   `json:"patient,omitempty"`
	Record  *RecordAnchorEntry `json:"record,omitempty"`
}

// GenesisPayload is the fixed sentinel carried by block 0.
func GenesisPayload() BlockPayload {
	return BlockPayload{Kind: PayloadGenesis}
}

// Block is one entry of the hash-linked ledger. Blocks are immutable once
// appended; PrevHash of block i equals the recomputed hash of block i-1.
type Block struct {
	Index     uint64         `json:"index"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   BlockPayload   `json:"payload"`
	PrevHash  chainhash.Hash `json:"prev_hash"`
	Hash      chainhash.Hash `json:"hash"`
}

// BlockRef points a document at the block that anchored it.
type BlockRef struct {
	Index uint64 `json:"index"`
	Hash  string `json:"hash"`
}

// VerifyResult is the outcome of a full chain verification scan.
type VerifyResult struct {
	Valid             bool   `json:"valid"`
	FirstInvalidIndex uint64 `json:"first_invalid_index,omitempty"`
	Length            uint64 `json:"length"`
}

// Stats aggregates active anchored entries.
type Stats struct {
	TotalPatients uint64 `json:"total_patients"`
	TotalRecords  uint64 `json:"total_records"`
}
