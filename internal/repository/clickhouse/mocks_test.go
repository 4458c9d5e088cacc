// Code generated by MockGen. DO NOT EDIT.
// Source: repository.go

// Package clickhouse is a generated GoMock package.
package clickhouse

import (
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
)

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
func (m *MockMetrics) Observe(operation string, err error, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Observe", operation, err, started)
}

// Observe indicates an expected call of Observe.
func (mr *MockMetricsMockRecorder) Observe(operation, err, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Observe", reflect.TypeOf((*MockMetrics)(nil).Observe), operation, err, started)
}
