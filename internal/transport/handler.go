package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/caretrust/medledger-backend/pkg/safe"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	actorHeader       = "X-Actor-Id"
	defaultAnchorWait = 5 * time.Second
	defaultAuditLimit = 50
	maxAuditLimit     = 1000
)

// Handler serves the ledger HTTP API.
type Handler struct {
	logger   *zap.Logger
	registry AccessRegistry
	anchors  Anchors
	queries  Queries
	audit    AuditLog
	metrics  Metrics

	// How long a write request waits for its anchor before answering 202.
	anchorWait time.Duration
}

// NewHandler builds the API handler.
func NewHandler(registry AccessRegistry, anchors Anchors, queries Queries, audit AuditLog, metrics Metrics, logger *zap.Logger, anchorWait time.Duration) (*Handler, error) {
	if registry == nil {
		return nil, errors.New("access registry is required")
	}
	if anchors == nil {
		return nil, errors.New("anchors is required")
	}
	if queries == nil {
		return nil, errors.New("queries is required")
	}
	if audit == nil {
		return nil, errors.New("audit log is required")
	}
	if metrics == nil {
		return nil, errors.New("transport metrics is required")
	}
	if anchorWait <= 0 {
		anchorWait = defaultAnchorWait
	}

	return &Handler{
		logger:     logger.Named("transport"),
		registry:   registry,
		anchors:    anchors,
		queries:    queries,
		audit:      audit,
		metrics:    metrics,
		anchorWait: anchorWait,
	}, nil
}

// Router wires all routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.instrument)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/patients", h.registerPatient).Methods(http.MethodPost)
	v1.HandleFunc("/patients/{id}", h.patientDetails).Methods(http.MethodGet)
	v1.HandleFunc("/patients/{id}/records", h.addRecord).Methods(http.MethodPost)
	v1.HandleFunc("/patients/{id}/authorizations", h.authorizeDoctor).Methods(http.MethodPost)
	v1.HandleFunc("/patients/{id}/authorizations/{professional}", h.authorizationStatus).Methods(http.MethodGet)
	v1.HandleFunc("/patients/{id}/authorizations/{professional}", h.revokeDoctor).Methods(http.MethodDelete)
	v1.HandleFunc("/records/{fingerprint}", h.recordDetails).Methods(http.MethodGet)
	v1.HandleFunc("/records/{fingerprint}/verify", h.verifyRecord).Methods(http.MethodGet)
	v1.HandleFunc("/documents/{kind}/{id}/verify", h.verifyDocument).Methods(http.MethodGet)
	v1.HandleFunc("/chain/verify", h.chainVerification).Methods(http.MethodGet)
	v1.HandleFunc("/chain/blocks/{index}", h.block).Methods(http.MethodGet)
	v1.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	v1.HandleFunc("/jobs/{id}", h.jobState).Methods(http.MethodGet)

	admin := v1.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/roles", h.grantRole).Methods(http.MethodPost)
	admin.HandleFunc("/roles", h.revokeRole).Methods(http.MethodDelete)
	admin.HandleFunc("/pause", h.pause).Methods(http.MethodPost)
	admin.HandleFunc("/unpause", h.unpause).Methods(http.MethodPost)
	admin.HandleFunc("/sweep", h.sweep).Methods(http.MethodPost)
	admin.HandleFunc("/audit", h.auditEvents).Methods(http.MethodGet)

	return r
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		h.metrics.Observe(r.Method, route, recorder.code, started)
	})
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type registerPatientRequest struct {
	PatientID string         `json:"patient_id"`
	Identity  map[string]any `json:"identity"`
}

type anchorResponse struct {
	JobID       string          `json:"job_id"`
	Status      string          `json:"status"`
	Fingerprint string          `json:"fingerprint,omitempty"`
	AnchorBlock *model.BlockRef `json:"anchor_block,omitempty"`
	Cause       string          `json:"cause,omitempty"`
}

func (h *Handler) registerPatient(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req registerPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.PatientID == "" || len(req.Identity) == 0 {
		h.writeError(w, r, http.StatusBadRequest, errors.New("patient_id and identity are required"))
		return
	}

	state, err := h.anchors.SubmitPatient(r.Context(), actor, req.PatientID, req.Identity)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.respondAnchor(w, r, state.JobID)
}

type addRecordRequest struct {
	RecordType string         `json:"record_type"`
	Payload    map[string]any `json:"payload"`
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req addRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if len(req.Payload) == 0 {
		h.writeError(w, r, http.StatusBadRequest, errors.New("payload is required"))
		return
	}

	patientID := mux.Vars(r)["id"]
	state, err := h.anchors.SubmitRecord(r.Context(), actor, patientID, req.Payload, model.RecordType(req.RecordType))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.respondAnchor(w, r, state.JobID)
}

// respondAnchor waits a bounded time for the anchor to land. Confirmed
// anchors answer 201, in-flight ones 202 with the job id for polling.
func (h *Handler) respondAnchor(w http.ResponseWriter, r *http.Request, jobID string) {
	ctx, cancel := context.WithTimeout(r.Context(), h.anchorWait)
	defer cancel()

	state, err := h.anchors.Wait(ctx, jobID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	switch state.Status {
	case model.AnchorStatusAnchored:
		h.writeJSON(w, http.StatusCreated, anchorResponse{
			JobID:       state.JobID,
			Status:      string(state.Status),
			Fingerprint: state.Fingerprint,
			AnchorBlock: state.AnchorBlock,
		})
	case model.AnchorStatusFailed:
		cause := h.anchors.FailureCause(jobID)
		if cause == nil {
			cause = errors.New(state.Cause)
		}
		h.writeServiceError(w, r, cause)
	default:
		h.writeJSON(w, http.StatusAccepted, anchorResponse{
			JobID:  state.JobID,
			Status: string(state.Status),
			Cause:  state.Cause,
		})
	}
}

func (h *Handler) patientDetails(w http.ResponseWriter, r *http.Request) {
	identity, err := h.queries.PatientDetails(mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, identity)
}

type authorizeDoctorRequest struct {
	Professional string `json:"professional"`
}

func (h *Handler) authorizeDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req authorizeDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	if req.Professional == "" {
		h.writeError(w, r, http.StatusBadRequest, errors.New("professional is required"))
		return
	}

	patientID := mux.Vars(r)["id"]
	if err := h.registry.AuthorizeDoctor(actor, patientID, model.Identity(req.Professional)); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"patient_id":   patientID,
		"professional": req.Professional,
		"authorized":   true,
	})
}

func (h *Handler) revokeDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := h.registry.RevokeDoctor(actor, vars["id"], model.Identity(vars["professional"])); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"patient_id":   vars["id"],
		"professional": vars["professional"],
		"authorized":   false,
	})
}

func (h *Handler) authorizationStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professional := model.Identity(vars["professional"])

	h.writeJSON(w, http.StatusOK, map[string]any{
		"patient_id":   vars["id"],
		"professional": vars["professional"],
		"authorized":   h.registry.IsAuthorizedDoctor(vars["id"], professional),
		"history":      h.registry.AuthorizationHistory(vars["id"], professional),
	})
}

func (h *Handler) recordDetails(w http.ResponseWriter, r *http.Request) {
	entry, err := h.queries.RecordDetails(mux.Vars(r)["fingerprint"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) verifyRecord(w http.ResponseWriter, r *http.Request) {
	fp := mux.Vars(r)["fingerprint"]
	status := "unverified"
	if h.queries.VerifyRecord(fp) {
		status = "verified"
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"fingerprint": fp,
		"status":      status,
	})
}

func (h *Handler) verifyDocument(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	kind := model.DocumentKind(vars["kind"])
	id := vars["id"]

	err := h.queries.VerifyDocument(r.Context(), kind, id)
	status := "verified"
	switch {
	case err == nil:
	case errors.Is(err, model.ErrAnchorPending):
		status = "pending"
	case errors.Is(err, model.ErrHashMismatch), errors.Is(err, model.ErrNotFound):
		status = "unverified"
	default:
		h.writeServiceError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"kind":   string(kind),
		"id":     id,
		"status": status,
	})
}

func (h *Handler) chainVerification(w http.ResponseWriter, r *http.Request) {
	result, err := h.queries.ChainVerification(r.Context())
	if err != nil && !errors.Is(err, model.ErrChainIntegrityViolation) {
		h.writeServiceError(w, r, err)
		return
	}
	// An invalid chain is a successful verification with a negative result.
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) block(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(mux.Vars(r)["index"], 10, 64)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	block, err := h.queries.Block(r.Context(), index)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, block)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats := h.queries.Stats()

	response := map[string]any{
		"total_patients": stats.TotalPatients,
		"total_records":  stats.TotalRecords,
		"paused":         h.registry.Paused(),
	}
	if counts, err := h.audit.AuditEventCounts(r.Context()); err == nil {
		response["audit"] = counts
	} else {
		h.logger.Warn("audit counts unavailable", zap.Error(err))
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) jobState(w http.ResponseWriter, r *http.Request) {
	state, err := h.anchors.State(mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, state)
}

type roleRequest struct {
	Identity string `json:"identity"`
	Role     string `json:"role"`
}

func (h *Handler) grantRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.registry.GrantRole)
}

func (h *Handler) revokeRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, h.registry.RevokeRole)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request, change func(actor, identity model.Identity, role model.Role) error) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	role := model.Role(req.Role)
	if req.Identity == "" || !role.Valid() {
		h.writeError(w, r, http.StatusBadRequest, errors.New("identity and a valid role are required"))
		return
	}

	if err := change(actor, model.Identity(req.Identity), role); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"identity": req.Identity,
		"role":     req.Role,
	})
}

func (h *Handler) pause(w http.ResponseWriter, r *http.Request) {
	h.switchPause(w, r, h.registry.Pause)
}

func (h *Handler) unpause(w http.ResponseWriter, r *http.Request) {
	h.switchPause(w, r, h.registry.Unpause)
}

func (h *Handler) switchPause(w http.ResponseWriter, r *http.Request, change func(actor model.Identity) error) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	if err := change(actor); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"paused": h.registry.Paused()})
}

func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.actor(w, r); !ok {
		return
	}

	resubmitted, err := h.anchors.SweepUnanchored(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int{"resubmitted": resubmitted})
}

func (h *Handler) auditEvents(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxAuditLimit {
			h.writeError(w, r, http.StatusBadRequest, errors.New("limit must be between 1 and 1000"))
			return
		}
		limit = parsed
	}
	safeLimit, err := safe.Uint64(limit)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	events, err := h.audit.RecentAuditEvents(r.Context(), r.URL.Query().Get("patient_id"), safeLimit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (model.Identity, bool) {
	actor := model.Identity(r.Header.Get(actorHeader))
	if actor == "" {
		h.writeError(w, r, http.StatusUnauthorized, errors.New("missing "+actorHeader+" header"))
		return "", false
	}
	return actor, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	h.writeError(w, r, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUnknownPatient), errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicateRegistration), errors.Is(err, model.ErrDuplicateRecord), errors.Is(err, model.ErrHashMismatch):
		return http.StatusConflict
	case errors.Is(err, model.ErrSystemPaused):
		return http.StatusLocked
	case errors.Is(err, model.ErrChainUnavailable), errors.Is(err, model.ErrChainIntegrityViolation):
		return http.StatusServiceUnavailable
	case errors.Is(err, model.ErrAnchorPending):
		return http.StatusAccepted
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}
	h.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
