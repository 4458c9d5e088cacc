package anchor

import (
	"fmt"
	"sync"

	"github.com/caretrust/medledger-backend/internal/model"
)

type patientEntry struct {
	identity model.PatientIdentity
	ref      model.BlockRef
}

type recordEntry struct {
	entry model.RecordAnchorEntry
	ref   model.BlockRef
}

// Index is the in-memory view of anchored entries, keyed by patient id and
// record fingerprint. It is derived state: the chain remains the single
// source of truth and the index is rebuilt from a replay at startup.
type Index struct {
	mu       sync.RWMutex
	patients map[string]patientEntry
	records  map[string]recordEntry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		patients: map[string]patientEntry{},
		records:  map[string]recordEntry{},
	}
}

// PatientExists reports whether patientID has an active registration.
func (i *Index) PatientExists(patientID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	p, ok := i.patients[patientID]
	return ok && p.identity.Active
}

// Patient returns the registration for patientID.
func (i *Index) Patient(patientID string) (model.PatientIdentity, error) {
	identity, _, err := i.PatientAnchor(patientID)
	return identity, err
}

// PatientAnchor returns the registration and the block that anchored it.
func (i *Index) PatientAnchor(patientID string) (model.PatientIdentity, model.BlockRef, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	p, ok := i.patients[patientID]
	if !ok {
		return model.PatientIdentity{}, model.BlockRef{}, fmt.Errorf("patient %q: %w", patientID, model.ErrNotFound)
	}
	return p.identity, p.ref, nil
}

// RecordExists reports whether fingerprint has an active anchor entry.
func (i *Index) RecordExists(fp string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	r, ok := i.records[fp]
	return ok && r.entry.Active
}

// Record returns the anchor entry for fingerprint.
func (i *Index) Record(fp string) (model.RecordAnchorEntry, error) {
	entry, _, err := i.RecordAnchor(fp)
	return entry, err
}

// RecordAnchor returns the anchor entry and the block that anchored it.
func (i *Index) RecordAnchor(fp string) (model.RecordAnchorEntry, model.BlockRef, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	r, ok := i.records[fp]
	if !ok {
		return model.RecordAnchorEntry{}, model.BlockRef{}, fmt.Errorf("record %q: %w", fp, model.ErrNotFound)
	}
	return r.entry, r.ref, nil
}

// Stats counts active entries.
func (i *Index) Stats() model.Stats {
	i.mu.RLock()
	defer i.mu.RUnlock()

	stats := model.Stats{}
	for _, p := range i.patients {
		if p.identity.Active {
			stats.TotalPatients++
		}
	}
	for _, r := range i.records {
		if r.entry.Active {
			stats.TotalRecords++
		}
	}
	return stats
}

// ApplyBlock folds one block into the index. Later entries win: a
// compensating deactivation entry overwrites the active flag without
// touching chain history.
func (i *Index) ApplyBlock(block model.Block) {
	i.mu.Lock()
	defer i.mu.Unlock()

	ref := model.BlockRef{Index: block.Index, Hash: block.Hash.String()}
	switch block.Payload.Kind {
	case model.PayloadPatient:
		if block.Payload.Patient != nil {
			i.patients[block.Payload.Patient.PatientID] = patientEntry{
				identity: *block.Payload.Patient,
				ref:      ref,
			}
		}
	case model.PayloadRecord:
		if block.Payload.Record != nil {
			i.records[block.Payload.Record.RecordFingerprint] = recordEntry{
				entry: *block.Payload.Record,
				ref:   ref,
			}
		}
	case model.PayloadGenesis:
	}
}
