// Package reconcile keeps the durable off-chain store and the ledger
// consistent while the anchor write remains a separate, possibly failing,
// possibly slow operation.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caretrust/medledger-backend/internal/fingerprint"
	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/caretrust/medledger-backend/pkg/workerpool"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultQueueCapacity = 256
	defaultSweepWorkers  = 4
	defaultSweepLimit    = 500

	// How many finished jobs stay queryable via State before the oldest are
	// evicted. Keeps the job map bounded on long-running processes.
	defaultFinishedRetention = 1024
)

type job struct {
	id  string
	doc model.Document
}

type jobState struct {
	state model.AnchorState
	cause error
	done  chan struct{}
}

// Coordinator performs the off-chain write first, then anchors in the
// background. Anchor jobs flow through a single worker goroutine so the
// ledger sees one logical writer; the off-chain writes themselves may run
// concurrently across patients and records.
type Coordinator struct {
	logger  *zap.Logger
	store   DocumentStore
	anchors Anchorer
	lookup  AnchorLookup
	metrics Metrics
	now     func() time.Time

	queue chan job
	wg    sync.WaitGroup
	stop  chan struct{}

	mu        sync.RWMutex
	jobs      map[string]*jobState
	finished  []string
	retention int
}

// New builds a Coordinator. Start must be called before submissions.
func New(store DocumentStore, anchors Anchorer, lookup AnchorLookup, metrics Metrics, logger *zap.Logger) (*Coordinator, error) {
	if store == nil {
		return nil, errors.New("document store is required")
	}
	if anchors == nil {
		return nil, errors.New("anchorer is required")
	}
	if lookup == nil {
		return nil, errors.New("anchor lookup is required")
	}
	if metrics == nil {
		return nil, errors.New("reconcile metrics is required")
	}

	return &Coordinator{
		logger:  logger.Named("reconcile"),
		store:   store,
		anchors: anchors,
		lookup:  lookup,
		metrics: metrics,
		now:     time.Now,
		queue:     make(chan job, defaultQueueCapacity),
		stop:      make(chan struct{}),
		jobs:      map[string]*jobState{},
		retention: defaultFinishedRetention,
	}, nil
}

// Start launches the anchor worker.
func (c *Coordinator) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop drains nothing: queued jobs stay pending in the store and are picked
// up by a later sweep. Safe to call once.
func (c *Coordinator) Stop() {
	close(c.stop)
	c.wg.Wait()
}

// SubmitPatient commits the patient document off-chain and queues the anchor.
// Returns immediately; the anchor outcome is observable via State or Wait.
func (c *Coordinator) SubmitPatient(ctx context.Context, actor model.Identity, patientID string, identityPayload map[string]any) (model.AnchorState, error) {
	doc := model.Document{
		Kind:        model.DocumentPatient,
		ID:          patientID,
		PatientID:   patientID,
		Payload:     identityPayload,
		SubmittedBy: actor,
		CreatedAt:   c.now().UTC(),
	}
	return c.submit(ctx, doc)
}

// SubmitRecord commits the record document off-chain and queues the anchor.
func (c *Coordinator) SubmitRecord(ctx context.Context, actor model.Identity, patientID string, recordPayload map[string]any, recordType model.RecordType) (model.AnchorState, error) {
	doc := model.Document{
		Kind:        model.DocumentRecord,
		ID:          uuid.NewString(),
		PatientID:   patientID,
		RecordType:  recordType,
		Payload:     recordPayload,
		SubmittedBy: actor,
		CreatedAt:   c.now().UTC(),
	}
	return c.submit(ctx, doc)
}

func (c *Coordinator) submit(ctx context.Context, doc model.Document) (model.AnchorState, error) {
	if err := c.store.SaveDocument(ctx, doc); err != nil {
		return model.AnchorState{}, fmt.Errorf("persist %s document: %w", doc.Kind, err)
	}

	j := job{id: uuid.NewString(), doc: doc}
	state := &jobState{
		state: model.AnchorState{
			JobID:      j.id,
			DocumentID: doc.ID,
			Kind:       doc.Kind,
			Status:     model.AnchorStatusPending,
			UpdatedAt:  c.now().UTC(),
		},
		done: make(chan struct{}),
	}

	c.mu.Lock()
	c.jobs[j.id] = state
	c.mu.Unlock()

	select {
	case c.queue <- j:
		c.metrics.SetQueueDepth(len(c.queue))
		return state.state, nil
	case <-ctx.Done():
		// The document is already durable; a sweep will resubmit it under a
		// fresh job. This job is done as far as this coordinator is
		// concerned, so Wait returns immediately with the pending snapshot.
		c.transition(j.id, func(s *model.AnchorState) {
			s.Cause = ctx.Err().Error()
		})
		c.finish(j.id)
		return state.state, nil
	}
}

// State returns the current snapshot of a reconciliation job.
func (c *Coordinator) State(jobID string) (model.AnchorState, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	js, ok := c.jobs[jobID]
	if !ok {
		return model.AnchorState{}, fmt.Errorf("job %q: %w", jobID, model.ErrNotFound)
	}
	return js.state, nil
}

// FailureCause returns the typed error that failed a job, nil while the job
// is running or after it anchored.
func (c *Coordinator) FailureCause(jobID string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	js, ok := c.jobs[jobID]
	if !ok {
		return fmt.Errorf("job %q: %w", jobID, model.ErrNotFound)
	}
	return js.cause
}

// Wait blocks until the job reaches a terminal state or ctx expires. On
// timeout the current snapshot is returned: an anchor still in flight is
// pending, not failed, and may land later.
func (c *Coordinator) Wait(ctx context.Context, jobID string) (model.AnchorState, error) {
	c.mu.RLock()
	js, ok := c.jobs[jobID]
	c.mu.RUnlock()
	if !ok {
		return model.AnchorState{}, fmt.Errorf("job %q: %w", jobID, model.ErrNotFound)
	}

	select {
	case <-js.done:
	case <-ctx.Done():
	}
	return c.State(jobID)
}

// SweepUnanchored resubmits documents whose anchor never landed. Safe to run
// repeatedly: anchoring is idempotent on duplicate fingerprints and patient
// ids, and duplicates resolve against the existing anchor.
func (c *Coordinator) SweepUnanchored(ctx context.Context) (int, error) {
	started := time.Now()
	var err error
	var resubmitted int
	defer func() {
		c.metrics.ObserveSweep(err, resubmitted, started)
	}()

	docs, err := c.store.UnanchoredDocuments(ctx, defaultSweepLimit)
	if err != nil {
		return 0, fmt.Errorf("list unanchored documents: %w", err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	c.logger.Info("sweeping unanchored documents", zap.Int("count", len(docs)))

	var mu sync.Mutex
	err = workerpool.Process(ctx, defaultSweepWorkers, docs, func(ctx context.Context, doc model.Document) error {
		state, submitErr := c.submit(ctx, doc)
		if submitErr != nil {
			return submitErr
		}
		if _, waitErr := c.Wait(ctx, state.JobID); waitErr != nil {
			return waitErr
		}
		mu.Lock()
		resubmitted++
		mu.Unlock()
		return nil
	})
	if err != nil {
		return resubmitted, fmt.Errorf("sweep unanchored documents: %w", err)
	}
	return resubmitted, nil
}

func (c *Coordinator) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		case j := <-c.queue:
			c.metrics.SetQueueDepth(len(c.queue))
			c.process(ctx, j)
		}
	}
}

func (c *Coordinator) process(ctx context.Context, j job) {
	started := time.Now()
	c.transition(j.id, func(s *model.AnchorState) {
		s.Status = model.AnchorStatusAnchoring
	})

	fp, ref, err := c.anchor(ctx, j.doc)
	switch {
	case err == nil:
		c.complete(ctx, j, fp, ref)
	case errors.Is(err, model.ErrDuplicateRegistration) || errors.Is(err, model.ErrDuplicateRecord):
		// The anchor already exists, typically a retried submission whose
		// first attempt landed. Resolve against the existing entry.
		if fp, ref, err = c.resolveExisting(j.doc); err == nil {
			c.complete(ctx, j, fp, ref)
		} else {
			c.fail(j, err)
		}
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, model.ErrAnchorPending):
		// Submitted but unconfirmed: the entry may still land. Back to
		// pending so a sweep reconciles it instead of declaring failure.
		// The worker is done with the job either way.
		c.transition(j.id, func(s *model.AnchorState) {
			s.Status = model.AnchorStatusPending
			s.Cause = model.ErrAnchorPending.Error()
		})
		c.finish(j.id)
	default:
		c.fail(j, err)
	}

	c.mu.RLock()
	status := c.jobs[j.id].state.Status
	c.mu.RUnlock()
	c.metrics.ObserveJob(j.doc.Kind, status, started)
}

func (c *Coordinator) anchor(ctx context.Context, doc model.Document) (string, model.BlockRef, error) {
	switch doc.Kind {
	case model.DocumentPatient:
		identity, block, err := c.anchors.RegisterPatient(ctx, doc.SubmittedBy, doc.PatientID, doc.Payload)
		if err != nil {
			return "", model.BlockRef{}, err
		}
		return identity.IdentityFingerprint, model.BlockRef{Index: block.Index, Hash: block.Hash.String()}, nil
	case model.DocumentRecord:
		entry, block, err := c.anchors.AddRecord(ctx, doc.SubmittedBy, doc.PatientID, doc.Payload, doc.RecordType)
		if err != nil {
			return "", model.BlockRef{}, err
		}
		return entry.RecordFingerprint, model.BlockRef{Index: block.Index, Hash: block.Hash.String()}, nil
	default:
		return "", model.BlockRef{}, fmt.Errorf("unknown document kind %q", doc.Kind)
	}
}

func (c *Coordinator) resolveExisting(doc model.Document) (string, model.BlockRef, error) {
	switch doc.Kind {
	case model.DocumentPatient:
		identity, ref, err := c.lookup.PatientAnchor(doc.PatientID)
		if err != nil {
			return "", model.BlockRef{}, err
		}
		return identity.IdentityFingerprint, ref, nil
	case model.DocumentRecord:
		fp, err := fingerprint.Fingerprint(doc.Payload)
		if err != nil {
			return "", model.BlockRef{}, err
		}
		entry, ref, lookupErr := c.lookup.RecordAnchor(fp)
		if lookupErr != nil {
			return "", model.BlockRef{}, lookupErr
		}
		return entry.RecordFingerprint, ref, nil
	default:
		return "", model.BlockRef{}, fmt.Errorf("unknown document kind %q", doc.Kind)
	}
}

func (c *Coordinator) complete(ctx context.Context, j job, fp string, ref model.BlockRef) {
	doc := j.doc
	doc.Anchored = true
	doc.Fingerprint = fp
	doc.AnchorBlock = &ref

	if err := c.store.SaveDocument(ctx, doc); err != nil {
		// The anchor landed; only the off-chain stamp is missing. The
		// sweep resolves this as a duplicate next time around.
		c.logger.Error("anchored but failed to stamp document",
			zap.String("document_id", doc.ID),
			zap.Error(err),
		)
		c.fail(j, err)
		return
	}

	c.transition(j.id, func(s *model.AnchorState) {
		s.Status = model.AnchorStatusAnchored
		s.Fingerprint = fp
		s.AnchorBlock = &ref
		s.Cause = ""
	})
	c.finish(j.id)
}

func (c *Coordinator) fail(j job, cause error) {
	c.logger.Warn("anchor failed",
		zap.String("document_id", j.doc.ID),
		zap.String("kind", string(j.doc.Kind)),
		zap.Error(cause),
	)
	c.transition(j.id, func(s *model.AnchorState) {
		s.Status = model.AnchorStatusFailed
		s.Cause = cause.Error()
	})

	c.mu.Lock()
	if js, ok := c.jobs[j.id]; ok {
		js.cause = cause
	}
	c.mu.Unlock()
	c.finish(j.id)
}

func (c *Coordinator) transition(jobID string, mutate func(*model.AnchorState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	js, ok := c.jobs[jobID]
	if !ok {
		return
	}
	mutate(&js.state)
	js.state.UpdatedAt = c.now().UTC()
}

// finish releases waiters and queues the job for eviction. The finished list
// is FIFO: once it outgrows the retention cap, the oldest jobs stop being
// queryable so the map stays bounded.
func (c *Coordinator) finish(jobID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	js, ok := c.jobs[jobID]
	if !ok {
		return
	}
	select {
	case <-js.done:
		return
	default:
		close(js.done)
	}

	c.finished = append(c.finished, jobID)
	for len(c.finished) > c.retention {
		delete(c.jobs, c.finished[0])
		c.finished = c.finished[1:]
	}
}
