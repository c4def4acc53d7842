//	mockgen -source=internal/usecase/interfaces.go -destination=internal/usecase/mocks/mock_interfaces.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	decimal "github.com/shopspring/decimal"
	gomock "go.uber.org/mock/gomock"

	domain "github.com/semtexzv/tproc/internal/domain"
)

// MockAccountStore is a mock of AccountStore interface.
type MockAccountStore struct {
	ctrl     *gomock.Controller
	recorder *MockAccountStoreMockRecorder
	isgomock struct{}
}

// MockAccountStoreMockRecorder is the mock recorder for MockAccountStore.
type MockAccountStoreMockRecorder struct {
	mock *MockAccountStore
}

// NewMockAccountStore creates a new mock instance.
func NewMockAccountStore(ctrl *gomock.Controller) *MockAccountStore {
	mock := &MockAccountStore{ctrl: ctrl}
	mock.recorder = &MockAccountStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountStore) EXPECT() *MockAccountStoreMockRecorder {
	return m.recorder
}

// GetOrCreate mocks base method.
func (m *MockAccountStore) GetOrCreate(clientID uint16) *domain.Account {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreate", clientID)
	ret0, _ := ret[0].(*domain.Account)
	return ret0
}

// GetOrCreate indicates an expected call of GetOrCreate.
func (mr *MockAccountStoreMockRecorder) GetOrCreate(clientID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreate", reflect.TypeOf((*MockAccountStore)(nil).GetOrCreate), clientID)
}

// Len mocks base method.
func (m *MockAccountStore) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockAccountStoreMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockAccountStore)(nil).Len))
}

// Snapshot mocks base method.
func (m *MockAccountStore) Snapshot() []domain.AccountRow {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Snapshot")
	ret0, _ := ret[0].([]domain.AccountRow)
	return ret0
}

// Snapshot indicates an expected call of Snapshot.
func (mr *MockAccountStoreMockRecorder) Snapshot() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Snapshot", reflect.TypeOf((*MockAccountStore)(nil).Snapshot))
}

// MockDisputeStore is a mock of DisputeStore interface.
type MockDisputeStore struct {
	ctrl     *gomock.Controller
	recorder *MockDisputeStoreMockRecorder
	isgomock struct{}
}

// MockDisputeStoreMockRecorder is the mock recorder for MockDisputeStore.
type MockDisputeStoreMockRecorder struct {
	mock *MockDisputeStore
}

// NewMockDisputeStore creates a new mock instance.
func NewMockDisputeStore(ctrl *gomock.Controller) *MockDisputeStore {
	mock := &MockDisputeStore{ctrl: ctrl}
	mock.recorder = &MockDisputeStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDisputeStore) EXPECT() *MockDisputeStoreMockRecorder {
	return m.recorder
}

// Len mocks base method.
func (m *MockDisputeStore) Len() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Len")
	ret0, _ := ret[0].(int)
	return ret0
}

// Len indicates an expected call of Len.
func (mr *MockDisputeStoreMockRecorder) Len() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Len", reflect.TypeOf((*MockDisputeStore)(nil).Len))
}

// Lookup mocks base method.
func (m *MockDisputeStore) Lookup(txID uint32) (*domain.DisputeEntry, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lookup", txID)
	ret0, _ := ret[0].(*domain.DisputeEntry)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Lookup indicates an expected call of Lookup.
func (mr *MockDisputeStoreMockRecorder) Lookup(txID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lookup", reflect.TypeOf((*MockDisputeStore)(nil).Lookup), txID)
}

// MarkDisputed mocks base method.
func (m *MockDisputeStore) MarkDisputed(txID uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MarkDisputed", txID)
}

// MarkDisputed indicates an expected call of MarkDisputed.
func (mr *MockDisputeStoreMockRecorder) MarkDisputed(txID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkDisputed", reflect.TypeOf((*MockDisputeStore)(nil).MarkDisputed), txID)
}

// MarkResolved mocks base method.
func (m *MockDisputeStore) MarkResolved(txID uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "MarkResolved", txID)
}

// MarkResolved indicates an expected call of MarkResolved.
func (mr *MockDisputeStoreMockRecorder) MarkResolved(txID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkResolved", reflect.TypeOf((*MockDisputeStore)(nil).MarkResolved), txID)
}

// Record mocks base method.
func (m *MockDisputeStore) Record(txID uint32, clientID uint16, amount decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Record", txID, clientID, amount)
	ret0, _ := ret[0].(error)
	return ret0
}

// Record indicates an expected call of Record.
func (mr *MockDisputeStoreMockRecorder) Record(txID, clientID, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Record", reflect.TypeOf((*MockDisputeStore)(nil).Record), txID, clientID, amount)
}

// Retire mocks base method.
func (m *MockDisputeStore) Retire(txID uint32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Retire", txID)
}

// Retire indicates an expected call of Retire.
func (mr *MockDisputeStoreMockRecorder) Retire(txID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retire", reflect.TypeOf((*MockDisputeStore)(nil).Retire), txID)
}

// MockRecordSource is a mock of RecordSource interface.
type MockRecordSource struct {
	ctrl     *gomock.Controller
	recorder *MockRecordSourceMockRecorder
	isgomock struct{}
}

// MockRecordSourceMockRecorder is the mock recorder for MockRecordSource.
type MockRecordSourceMockRecorder struct {
	mock *MockRecordSource
}

// NewMockRecordSource creates a new mock instance.
func NewMockRecordSource(ctrl *gomock.Controller) *MockRecordSource {
	mock := &MockRecordSource{ctrl: ctrl}
	mock.recorder = &MockRecordSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRecordSource) EXPECT() *MockRecordSourceMockRecorder {
	return m.recorder
}

// Next mocks base method.
func (m *MockRecordSource) Next() (domain.Record, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next")
	ret0, _ := ret[0].(domain.Record)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Next indicates an expected call of Next.
func (mr *MockRecordSourceMockRecorder) Next() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockRecordSource)(nil).Next))
}

// MockAccountSink is a mock of AccountSink interface.
type MockAccountSink struct {
	ctrl     *gomock.Controller
	recorder *MockAccountSinkMockRecorder
	isgomock struct{}
}

// MockAccountSinkMockRecorder is the mock recorder for MockAccountSink.
type MockAccountSinkMockRecorder struct {
	mock *MockAccountSink
}

// NewMockAccountSink creates a new mock instance.
func NewMockAccountSink(ctrl *gomock.Controller) *MockAccountSink {
	mock := &MockAccountSink{ctrl: ctrl}
	mock.recorder = &MockAccountSinkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAccountSink) EXPECT() *MockAccountSinkMockRecorder {
	return m.recorder
}

// Write mocks base method.
func (m *MockAccountSink) Write(rows []domain.AccountRow) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", rows)
	ret0, _ := ret[0].(error)
	return ret0
}

// Write indicates an expected call of Write.
func (mr *MockAccountSinkMockRecorder) Write(rows any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockAccountSink)(nil).Write), rows)
}

// MockIDGenerator is a mock of IDGenerator interface.
type MockIDGenerator struct {
	ctrl     *gomock.Controller
	recorder *MockIDGeneratorMockRecorder
	isgomock struct{}
}

// MockIDGeneratorMockRecorder is the mock recorder for MockIDGenerator.
type MockIDGeneratorMockRecorder struct {
	mock *MockIDGenerator
}

// NewMockIDGenerator creates a new mock instance.
func NewMockIDGenerator(ctrl *gomock.Controller) *MockIDGenerator {
	mock := &MockIDGenerator{ctrl: ctrl}
	mock.recorder = &MockIDGeneratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIDGenerator) EXPECT() *MockIDGeneratorMockRecorder {
	return m.recorder
}

// Generate mocks base method.
func (m *MockIDGenerator) Generate() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generate")
	ret0, _ := ret[0].(string)
	return ret0
}

// Generate indicates an expected call of Generate.
func (mr *MockIDGeneratorMockRecorder) Generate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generate", reflect.TypeOf((*MockIDGenerator)(nil).Generate))
}
