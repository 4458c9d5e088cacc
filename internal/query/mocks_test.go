// Code generated by MockGen. DO NOT EDIT.
// Source: query.go

// Package query is a generated GoMock package.
package query

import (
	context "context"
	reflect "reflect"

	model "github.com/caretrust/medledger-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
)

// MockAnchorIndex is a mock of AnchorIndex interface.
type MockAnchorIndex struct {
	ctrl     *gomock.Controller
	recorder *MockAnchorIndexMockRecorder
}

// MockAnchorIndexMockRecorder is the mock recorder for MockAnchorIndex.
type MockAnchorIndexMockRecorder struct {
	mock *MockAnchorIndex
}

// NewMockAnchorIndex creates a new mock instance.
func NewMockAnchorIndex(ctrl *gomock.Controller) *MockAnchorIndex {
	mock := &MockAnchorIndex{ctrl: ctrl}
	mock.recorder = &MockAnchorIndexMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAnchorIndex) EXPECT() *MockAnchorIndexMockRecorder {
	return m.recorder
}

// Patient mocks base method.
func (m *MockAnchorIndex) Patient(patientID string) (model.PatientIdentity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Patient", patientID)
	ret0, _ := ret[0].(model.PatientIdentity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Patient indicates an expected call of Patient.
func (mr *MockAnchorIndexMockRecorder) Patient(patientID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Patient", reflect.TypeOf((*MockAnchorIndex)(nil).Patient), patientID)
}

// Record mocks base method.
func (m *MockAnchorIndex) Record(fp string) (model.RecordAnchorEntry, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Record", fp)
	ret0, _ := ret[0].(model.RecordAnchorEntry)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Record indicates an expected call of Record.
func (mr *MockAnchorIndexMockRecorder) Record(fp interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockAnchorIndex)(nil).Record), fp)
}

// RecordExists mocks base method.
func (m *MockAnchorIndex) RecordExists(fp string) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecordExists", fp)
	ret0, _ := ret[0].(bool)
	return ret0
}

// RecordExists indicates an expected call of RecordExists.
func (mr *MockAnchorIndexMockRecorder) RecordExists(fp interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecordExists", reflect.TypeOf((*MockAnchorIndex)(nil).RecordExists), fp)
}

// Stats mocks base method.
func (m *MockAnchorIndex) Stats() model.Stats {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stats")
	ret0, _ := ret[0].(model.Stats)
	return ret0
}

// Stats indicates an expected call of Stats.
func (mr *MockAnchorIndexMockRecorder) Stats() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stats", reflect.TypeOf((*MockAnchorIndex)(nil).Stats))
}

// MockLedger is a mock of Ledger interface.
type MockLedger struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerMockRecorder
}

// MockLedgerMockRecorder is the mock recorder for MockLedger.
type MockLedgerMockRecorder struct {
	mock *MockLedger
}

// NewMockLedger creates a new mock instance.
func NewMockLedger(ctrl *gomock.Controller) *MockLedger {
	mock := &MockLedger{ctrl: ctrl}
	mock.recorder = &MockLedgerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedger) EXPECT() *MockLedgerMockRecorder {
	return m.recorder
}

// BlockByIndex mocks base method.
func (m *MockLedger) BlockByIndex(ctx context.Context, index uint64) (model.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockByIndex", ctx, index)
	ret0, _ := ret[0].(model.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BlockByIndex indicates an expected call of BlockByIndex.
func (mr *MockLedgerMockRecorder) BlockByIndex(ctx, index interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockByIndex", reflect.TypeOf((*MockLedger)(nil).BlockByIndex), ctx, index)
}

// Length mocks base method.
func (m *MockLedger) Length() uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Length")
	ret0, _ := ret[0].(uint64)
	return ret0
}

// Length indicates an expected call of Length.
func (mr *MockLedgerMockRecorder) Length() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Length", reflect.TypeOf((*MockLedger)(nil).Length))
}

// Verify mocks base method.
func (m *MockLedger) Verify(ctx context.Context) model.VerifyResult {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Verify", ctx)
	ret0, _ := ret[0].(model.VerifyResult)
	return ret0
}

// Verify indicates an expected call of Verify.
func (mr *MockLedgerMockRecorder) Verify(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockLedger)(nil).Verify), ctx)
}

// MockDocumentReader is a mock of DocumentReader interface.
type MockDocumentReader struct {
	ctrl     *gomock.Controller
	recorder *MockDocumentReaderMockRecorder
}

// MockDocumentReaderMockRecorder is the mock recorder for MockDocumentReader.
type MockDocumentReaderMockRecorder struct {
	mock *MockDocumentReader
}

// NewMockDocumentReader creates a new mock instance.
func NewMockDocumentReader(ctrl *gomock.Controller) *MockDocumentReader {
	mock := &MockDocumentReader{ctrl: ctrl}
	mock.recorder = &MockDocumentReaderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDocumentReader) EXPECT() *MockDocumentReaderMockRecorder {
	return m.recorder
}

// Document mocks base method.
func (m *MockDocumentReader) Document(ctx context.Context, kind model.DocumentKind, id string) (model.Document, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Document", ctx, kind, id)
	ret0, _ := ret[0].(model.Document)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Document indicates an expected call of Document.
func (mr *MockDocumentReaderMockRecorder) Document(ctx, kind, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Document", reflect.TypeOf((*MockDocumentReader)(nil).Document), ctx, kind, id)
}
