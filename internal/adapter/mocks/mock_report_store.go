// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/glossa/internal/model"
)

// MockReportStore is a mock type for the ReportStore type.
type MockReportStore struct {
	mock.Mock
}

// MockReportStore_Expecter wraps the mock for typed expectations.
type MockReportStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (_m *MockReportStore) EXPECT() *MockReportStore_Expecter {
	return &MockReportStore_Expecter{mock: &_m.Mock}
}

// SaveReport provides a mock function with given fields: dir, report.
func (_m *MockReportStore) SaveReport(dir m.Path, report m.Report) (m.Path, error) {
	ret := _m.Called(dir, report)

	if len(ret) == 0 {
		panic("no return value specified for SaveReport")
	}

	var r0 m.Path
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(m.Path)
	}

	return r0, ret.Error(1)
}

// MockReportStore_SaveReport_Call wraps mock.Call for SaveReport.
type MockReportStore_SaveReport_Call struct {
	*mock.Call
}

// SaveReport is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) SaveReport(dir interface{}, report interface{}) *MockReportStore_SaveReport_Call {
	return &MockReportStore_SaveReport_Call{Call: _e.mock.On("SaveReport", dir, report)}
}

// Run sets a callback invoked with the call arguments.
func (_c *MockReportStore_SaveReport_Call) Run(run func(dir m.Path, report m.Report)) *MockReportStore_SaveReport_Call {
	_c.Call.Run(func(a mock.Arguments) {
		run(a[0].(m.Path), a[1].(m.Report))
	})

	return _c
}

// Return sets the return values.
func (_c *MockReportStore_SaveReport_Call) Return(_a0 m.Path, _a1 error) *MockReportStore_SaveReport_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// LoadReports provides a mock function with given fields: dir.
func (_m *MockReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	ret := _m.Called(dir)

	if len(ret) == 0 {
		panic("no return value specified for LoadReports")
	}

	var r0 []m.Report
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]m.Report)
	}

	return r0, ret.Error(1)
}

// MockReportStore_LoadReports_Call wraps mock.Call for LoadReports.
type MockReportStore_LoadReports_Call struct {
	*mock.Call
}

// LoadReports is a helper method to define mock.On call.
func (_e *MockReportStore_Expecter) LoadReports(dir interface{}) *MockReportStore_LoadReports_Call {
	return &MockReportStore_LoadReports_Call{Call: _e.mock.On("LoadReports", dir)}
}

// Return sets the return values.
func (_c *MockReportStore_LoadReports_Call) Return(_a0 []m.Report, _a1 error) *MockReportStore_LoadReports_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockReportStore creates a new instance of MockReportStore. It also
// registers a cleanup function to assert the mocks expectations.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mk := &MockReportStore{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
