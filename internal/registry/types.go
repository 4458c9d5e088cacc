package registry

import "github.com/caretrust/medledger-backend/internal/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// PatientDirectory reports whether a patient id has been registered.
	// Backed by the anchor index; the registry never reaches into it directly.
	PatientDirectory interface {
		PatientExists(patientID string) bool
	}

	// AuditSink receives audit events. Implementations must not block the
	// caller; dropping an event under pressure is acceptable.
	AuditSink interface {
		Record(event model.AuditEvent)
	}
)
