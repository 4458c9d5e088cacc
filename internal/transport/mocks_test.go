// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package transport is a generated GoMock package.
package transport

import (
	context "context"
	reflect "reflect"
	time "time"

	model "github.com/caretrust/medledger-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
)

// MockAccessRegistry is a mock of AccessRegistry interface.
type MockAccessRegistry struct {
	ctrl     *gomock.Controller
	recorder *MockAccessRegistryMockRecorder
}

// MockAccessRegistryMockRecorder is the mock recorder for MockAccessRegistry.
type MockAccessRegistryMockRecorder struct {
	mock *MockAccessRegistry
}

// NewMockAccessRegistry creates a new mock instance.
func NewMockAccessRegistry(ctrl *gomock.Controller) *MockAccessRegistry {
	mock := &MockAccessRegistry{ctrl: ctrl}
	mock.recorder = &MockAccessRegistryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccessRegistry) EXPECT() *MockAccessRegistryMockRecorder {
	return m.recorder
}

// AuthorizationHistory mocks base method.
func (m *MockAccessRegistry) AuthorizationHistory(patientID string, professional model.Identity) []model.AuditEvent {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthorizationHistory", patientID, professional)
	ret0, _ := ret[0].([]model.AuditEvent)
	return ret0
}

// AuthorizationHistory indicates an expected call of AuthorizationHistory.
func (mr *MockAccessRegistryMockRecorder) AuthorizationHistory(patientID, professional interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthorizationHistory", reflect.TypeOf((*MockAccessRegistry)(nil).AuthorizationHistory), patientID, professional)
}

// AuthorizeDoctor mocks base method.
func (m *MockAccessRegistry) AuthorizeDoctor(actor model.Identity, patientID string, professional model.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuthorizeDoctor", actor, patientID, professional)
	ret0, _ := ret[0].(error)
	return ret0
}

// AuthorizeDoctor indicates an expected call of AuthorizeDoctor.
func (mr *MockAccessRegistryMockRecorder) AuthorizeDoctor(actor, patientID, professional interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuthorizeDoctor", reflect.TypeOf((*MockAccessRegistry)(nil).AuthorizeDoctor), actor, patientID, professional)
}

// GrantRole mocks base method.
func (m *MockAccessRegistry) GrantRole(actor, identity model.Identity, role model.Role) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GrantRole", actor, identity, role)
	ret0, _ := ret[0].(error)
	return ret0
}

// GrantRole indicates an expected call of GrantRole.
func (mr *MockAccessRegistryMockRecorder) GrantRole(actor, identity, role interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GrantRole", reflect.TypeOf((*MockAccessRegistry)(nil).GrantRole), actor, identity, role)
}

// IsAuthorizedDoctor mocks base method.
func (m *MockAccessRegistry) IsAuthorizedDoctor(patientID string, professional model.Identity) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsAuthorizedDoctor", patientID, professional)
	ret0, _ := ret[0].(bool)
	return ret0
}

// IsAuthorizedDoctor indicates an expected call of IsAuthorizedDoctor.
func (mr *MockAccessRegistryMockRecorder) IsAuthorizedDoctor(patientID, professional interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsAuthorizedDoctor", reflect.TypeOf((*MockAccessRegistry)(nil).IsAuthorizedDoctor), patientID, professional)
}

// Pause mocks base method.
func (m *MockAccessRegistry) Pause(actor model.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Pause", actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// Pause indicates an expected call of Pause.
func (mr *MockAccessRegistryMockRecorder) Pause(actor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Pause", reflect.TypeOf((*MockAccessRegistry)(nil).Pause), actor)
}

// Paused mocks base method.
func (m *MockAccessRegistry) Paused() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Paused")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Paused indicates an expected call of Paused.
func (mr *MockAccessRegistryMockRecorder) Paused() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Paused", reflect.TypeOf((*MockAccessRegistry)(nil).Paused))
}

// RevokeDoctor mocks base method.
func (m *MockAccessRegistry) RevokeDoctor(actor model.Identity, patientID string, professional model.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeDoctor", actor, patientID, professional)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeDoctor indicates an expected call of RevokeDoctor.
func (mr *MockAccessRegistryMockRecorder) RevokeDoctor(actor, patientID, professional interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeDoctor", reflect.TypeOf((*MockAccessRegistry)(nil).RevokeDoctor), actor, patientID, professional)
}

// RevokeRole mocks base method.
func (m *MockAccessRegistry) RevokeRole(actor, identity model.Identity, role model.Role) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevokeRole", actor, identity, role)
	ret0, _ := ret[0].(error)
	return ret0
}

// RevokeRole indicates an expected call of RevokeRole.
func (mr *MockAccessRegistryMockRecorder) RevokeRole(actor, identity, role interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevokeRole", reflect.TypeOf((*MockAccessRegistry)(nil).RevokeRole), actor, identity, role)
}

// Unpause mocks base method.
func (m *MockAccessRegistry) Unpause(actor model.Identity) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Unpause", actor)
	ret0, _ := ret[0].(error)
	return ret0
}

// Unpause indicates an expected call of Unpause.
func (mr *MockAccessRegistryMockRecorder) Unpause(actor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Unpause", reflect.TypeOf((*MockAccessRegistry)(nil).Unpause), actor)
}

// MockAnchors is a mock of Anchors interface.
type MockAnchors struct {
	ctrl     *gomock.Controller
	recorder *MockAnchorsMockRecorder
}

// MockAnchorsMockRecorder is the mock recorder for MockAnchors.
type MockAnchorsMockRecorder struct {
	mock *MockAnchors
}

// NewMockAnchors creates a new mock instance.
func NewMockAnchors(ctrl *gomock.Controller) *MockAnchors {
	mock := &MockAnchors{ctrl: ctrl}
	mock.recorder = &MockAnchorsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnchors) EXPECT() *MockAnchorsMockRecorder {
	return m.recorder
}

// FailureCause mocks base method.
func (m *MockAnchors) FailureCause(jobID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FailureCause", jobID)
	ret0, _ := ret[0].(error)
	return ret0
}

// FailureCause indicates an expected call of FailureCause.
func (mr *MockAnchorsMockRecorder) FailureCause(jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FailureCause", reflect.TypeOf((*MockAnchors)(nil).FailureCause), jobID)
}

// State mocks base method.
func (m *MockAnchors) State(jobID string) (model.AnchorState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "State", jobID)
	ret0, _ := ret[0].(model.AnchorState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// State indicates an expected call of State.
func (mr *MockAnchorsMockRecorder) State(jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "State", reflect.TypeOf((*MockAnchors)(nil).State), jobID)
}

// SubmitPatient mocks base method.
func (m *MockAnchors) SubmitPatient(ctx context.Context, actor model.Identity, patientID string, identityPayload map[string]any) (model.AnchorState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitPatient", ctx, actor, patientID, identityPayload)
	ret0, _ := ret[0].(model.AnchorState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitPatient indicates an expected call of SubmitPatient.
func (mr *MockAnchorsMockRecorder) SubmitPatient(ctx, actor, patientID, identityPayload interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitPatient", reflect.TypeOf((*MockAnchors)(nil).SubmitPatient), ctx, actor, patientID, identityPayload)
}

// SubmitRecord mocks base method.
func (m *MockAnchors) SubmitRecord(ctx context.Context, actor model.Identity, patientID string, recordPayload map[string]any, recordType model.RecordType) (model.AnchorState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitRecord", ctx, actor, patientID, recordPayload, recordType)
	ret0, _ := ret[0].(model.AnchorState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubmitRecord indicates an expected call of SubmitRecord.
func (mr *MockAnchorsMockRecorder) SubmitRecord(ctx, actor, patientID, recordPayload, recordType interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitRecord", reflect.TypeOf((*MockAnchors)(nil).SubmitRecord), ctx, actor, patientID, recordPayload, recordType)
}

// SweepUnanchored mocks base method.
func (m *MockAnchors) SweepUnanchored(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SweepUnanchored", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SweepUnanchored indicates an expected call of SweepUnanchored.
func (mr *MockAnchorsMockRecorder) SweepUnanchored(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SweepUnanchored", reflect.TypeOf((*MockAnchors)(nil).SweepUnanchored), ctx)
}

// Wait mocks base method.
func (m *MockAnchors) Wait(ctx context.Context, jobID string) (model.AnchorState, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Wait", ctx, jobID)
	ret0, _ := ret[0].(model.AnchorState)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Wait indicates an expected call of Wait.
func (mr *MockAnchorsMockRecorder) Wait(ctx, jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Wait", reflect.TypeOf((*MockAnchors)(nil).Wait), ctx, jobID)
}

// MockQueries is a mock of Queries interface.
type MockQueries struct {
	ctrl     *gomock.Controller
	recorder *MockQueriesMockRecorder
}

// MockQueriesMockRecorder is the mock recorder for MockQueries.
type MockQueriesMockRecorder struct {
	mock *MockQueries
}

// NewMockQueries creates a new mock instance.
func NewMockQueries(ctrl *gomock.Controller) *MockQueries {
	mock := &MockQueries{ctrl: ctrl}
	mock.recorder = &MockQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockQueries) EXPECT() *MockQueriesMockRecorder {
	return m.recorder
}

// Block mocks base method.
func (m *MockQueries) Block(ctx context.Context, index uint64) (model.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Block", ctx, index)
	ret0, _ := ret[0].(model.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Block indicates an expected call of Block.
func (mr *MockQueriesMockRecorder) Block(ctx, index interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Block", reflect.TypeOf((*MockQueries)(nil).Block), ctx, index)
}

// ChainVerification mocks base method.
func (m *MockQueries) ChainVerification(ctx context.Context) (model.VerifyResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ChainVerification", ctx)
	ret0, _ := ret[0].(model.VerifyResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ChainVerification indicates an expected call of ChainVerification.
func (mr *MockQueriesMockRecorder) ChainVerification(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ChainVerification", reflect.TypeOf((*MockQueries)(nil).ChainVerification), ctx)
}

// PatientDetails mocks base method.
func (m *MockQueries) PatientDetails(patientID string) (model.PatientIdentity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PatientDetails", patientID)
	ret0, _ := ret[0].(model.PatientIdentity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PatientDetails indicates an expected call of PatientDetails.
func (mr *MockQueriesMockRecorder) PatientDetails(patientID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PatientDetails", reflect.TypeOf((*MockQueries)(nil).PatientDetails), patientID)
}

// RecordDetails mocks base method.
func (m *MockQueries) RecordDetails(fp string) (model.RecordAnchorEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordDetails", fp)
	ret0, _ := ret[0].(model.RecordAnchorEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecordDetails indicates an expected call of RecordDetails.
func (mr *MockQueriesMockRecorder) RecordDetails(fp interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordDetails", reflect.TypeOf((*MockQueries)(nil).RecordDetails), fp)
}

// Stats mocks base method.
func (m *MockQueries) Stats() model.Stats {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats")
	ret0, _ := ret[0].(model.Stats)
	return ret0
}

// Stats indicates an expected call of Stats.
func (mr *MockQueriesMockRecorder) Stats() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockQueries)(nil).Stats))
}

// VerifyDocument mocks base method.
func (m *MockQueries) VerifyDocument(ctx context.Context, kind model.DocumentKind, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyDocument", ctx, kind, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// VerifyDocument indicates an expected call of VerifyDocument.
func (mr *MockQueriesMockRecorder) VerifyDocument(ctx, kind, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyDocument", reflect.TypeOf((*MockQueries)(nil).VerifyDocument), ctx, kind, id)
}

// VerifyRecord mocks base method.
func (m *MockQueries) VerifyRecord(fp string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VerifyRecord", fp)
	ret0, _ := ret[0].(bool)
	return ret0
}

// VerifyRecord indicates an expected call of VerifyRecord.
func (mr *MockQueriesMockRecorder) VerifyRecord(fp interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VerifyRecord", reflect.TypeOf((*MockQueries)(nil).VerifyRecord), fp)
}

// MockAuditLog is a mock of AuditLog interface.
type MockAuditLog struct {
	ctrl     *gomock.Controller
	recorder *MockAuditLogMockRecorder
}

// MockAuditLogMockRecorder is the mock recorder for MockAuditLog.
type MockAuditLogMockRecorder struct {
	mock *MockAuditLog
}

// NewMockAuditLog creates a new mock instance.
func NewMockAuditLog(ctrl *gomock.Controller) *MockAuditLog {
	mock := &MockAuditLog{ctrl: ctrl}
	mock.recorder = &MockAuditLogMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAuditLog) EXPECT() *MockAuditLogMockRecorder {
	return m.recorder
}

// AuditEventCounts mocks base method.
func (m *MockAuditLog) AuditEventCounts(ctx context.Context) ([]model.AuditActionCount, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AuditEventCounts", ctx)
	ret0, _ := ret[0].([]model.AuditActionCount)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AuditEventCounts indicates an expected call of AuditEventCounts.
func (mr *MockAuditLogMockRecorder) AuditEventCounts(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AuditEventCounts", reflect.TypeOf((*MockAuditLog)(nil).AuditEventCounts), ctx)
}

// RecentAuditEvents mocks base method.
func (m *MockAuditLog) RecentAuditEvents(ctx context.Context, patientID string, limit uint64) ([]model.AuditEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecentAuditEvents", ctx, patientID, limit)
	ret0, _ := ret[0].([]model.AuditEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecentAuditEvents indicates an expected call of RecentAuditEvents.
func (mr *MockAuditLogMockRecorder) RecentAuditEvents(ctx, patientID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecentAuditEvents", reflect.TypeOf((*MockAuditLog)(nil).RecentAuditEvents), ctx, patientID, limit)
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// Observe mocks base method.
func (m *MockMetrics) Observe(method, route string, code int, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Observe", method, route, code, started)
}

// Observe indicates an expected call of Observe.
func (mr *MockMetricsMockRecorder) Observe(method, route, code, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Observe", reflect.TypeOf((*MockMetrics)(nil).Observe), method, route, code, started)
}
