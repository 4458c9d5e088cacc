package model

import "errors"

// Error taxonomy of the ledger subsystem. Gate failures surface synchronously
// to the caller; network-shaped failures degrade the write to unanchored and
// are reported through reconciliation state instead.
var (
	// ErrNotAuthorized means the caller lacks the role or per-patient grant.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrDuplicateRegistration means the patient id is already registered.
	ErrDuplicateRegistration = errors.New("duplicate registration")
	// ErrDuplicateRecord means the record fingerprint is already anchored.
	ErrDuplicateRecord = errors.New("duplicate record")
	// ErrUnknownPatient means the patient id has never been registered.
	ErrUnknownPatient = errors.New("unknown patient")
	// ErrSystemPaused means mutating operations are suspended.
	ErrSystemPaused = errors.New("system paused")
	// ErrChainUnavailable means the submission path is unreachable.
	ErrChainUnavailable = errors.New("chain unavailable")
	// ErrAnchorPending means the anchor was submitted but not yet confirmed.
	ErrAnchorPending = errors.New("anchor pending")
	// ErrChainIntegrityViolation means verification found a broken link.
	// Never auto-corrected; reliance on the chain must halt until investigated.
	ErrChainIntegrityViolation = errors.New("chain integrity violation")
	// ErrHashMismatch means a recomputed fingerprint differs from the stored one.
	ErrHashMismatch = errors.New("hash mismatch")
	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
