// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	m "github.com/mouse-blink/glossa/internal/model"
)

// MockUI is a mock type for the UI type.
type MockUI struct {
	mock.Mock
}

// MockUI_Expecter wraps the mock for typed expectations.
type MockUI_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (_m *MockUI) EXPECT() *MockUI_Expecter {
	return &MockUI_Expecter{mock: &_m.Mock}
}

// DisplayChange provides a mock function with given fields: source, change.
func (_m *MockUI) DisplayChange(source m.Path, change m.Change) {
	_m.Called(source, change)
}

// MockUI_DisplayChange_Call wraps mock.Call for DisplayChange.
type MockUI_DisplayChange_Call struct {
	*mock.Call
}

// DisplayChange is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayChange(source interface{}, change interface{}) *MockUI_DisplayChange_Call {
	return &MockUI_DisplayChange_Call{Call: _e.mock.On("DisplayChange", source, change)}
}

// Run sets a callback invoked with the call arguments.
func (_c *MockUI_DisplayChange_Call) Run(run func(source m.Path, change m.Change)) *MockUI_DisplayChange_Call {
	_c.Call.Run(func(a mock.Arguments) {
		run(a[0].(m.Path), a[1].(m.Change))
	})

	return _c
}

// Return finalizes the expectation.
func (_c *MockUI_DisplayChange_Call) Return() *MockUI_DisplayChange_Call {
	_c.Call.Return()
	return _c
}

// DisplaySummary provides a mock function with given fields: report.
func (_m *MockUI) DisplaySummary(report m.Report) error {
	ret := _m.Called(report)

	if len(ret) == 0 {
		panic("no return value specified for DisplaySummary")
	}

	return ret.Error(0)
}

// MockUI_DisplaySummary_Call wraps mock.Call for DisplaySummary.
type MockUI_DisplaySummary_Call struct {
	*mock.Call
}

// DisplaySummary is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplaySummary(report interface{}) *MockUI_DisplaySummary_Call {
	return &MockUI_DisplaySummary_Call{Call: _e.mock.On("DisplaySummary", report)}
}

// Run sets a callback invoked with the call arguments.
func (_c *MockUI_DisplaySummary_Call) Run(run func(report m.Report)) *MockUI_DisplaySummary_Call {
	_c.Call.Run(func(a mock.Arguments) {
		run(a[0].(m.Report))
	})

	return _c
}

// Return sets the return value.
func (_c *MockUI_DisplaySummary_Call) Return(_a0 error) *MockUI_DisplaySummary_Call {
	_c.Call.Return(_a0)
	return _c
}

// DisplayScan provides a mock function with given fields: source, changes.
func (_m *MockUI) DisplayScan(source m.Path, changes []m.Change) error {
	ret := _m.Called(source, changes)

	if len(ret) == 0 {
		panic("no return value specified for DisplayScan")
	}

	return ret.Error(0)
}

// MockUI_DisplayScan_Call wraps mock.Call for DisplayScan.
type MockUI_DisplayScan_Call struct {
	*mock.Call
}

// DisplayScan is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayScan(source interface{}, changes interface{}) *MockUI_DisplayScan_Call {
	return &MockUI_DisplayScan_Call{Call: _e.mock.On("DisplayScan", source, changes)}
}

// Run sets a callback invoked with the call arguments.
func (_c *MockUI_DisplayScan_Call) Run(run func(source m.Path, changes []m.Change)) *MockUI_DisplayScan_Call {
	_c.Call.Run(func(a mock.Arguments) {
		run(a[0].(m.Path), a[1].([]m.Change))
	})

	return _c
}

// Return sets the return value.
func (_c *MockUI_DisplayScan_Call) Return(_a0 error) *MockUI_DisplayScan_Call {
	_c.Call.Return(_a0)
	return _c
}

// DisplayLanguages provides a mock function with given fields: langs.
func (_m *MockUI) DisplayLanguages(langs []m.Language) error {
	ret := _m.Called(langs)

	if len(ret) == 0 {
		panic("no return value specified for DisplayLanguages")
	}

	return ret.Error(0)
}

// MockUI_DisplayLanguages_Call wraps mock.Call for DisplayLanguages.
type MockUI_DisplayLanguages_Call struct {
	*mock.Call
}

// DisplayLanguages is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayLanguages(langs interface{}) *MockUI_DisplayLanguages_Call {
	return &MockUI_DisplayLanguages_Call{Call: _e.mock.On("DisplayLanguages", langs)}
}

// Return sets the return value.
func (_c *MockUI_DisplayLanguages_Call) Return(_a0 error) *MockUI_DisplayLanguages_Call {
	_c.Call.Return(_a0)
	return _c
}

// DisplayReports provides a mock function with given fields: reports.
func (_m *MockUI) DisplayReports(reports []m.Report) error {
	ret := _m.Called(reports)

	if len(ret) == 0 {
		panic("no return value specified for DisplayReports")
	}

	return ret.Error(0)
}

// MockUI_DisplayReports_Call wraps mock.Call for DisplayReports.
type MockUI_DisplayReports_Call struct {
	*mock.Call
}

// DisplayReports is a helper method to define mock.On call.
func (_e *MockUI_Expecter) DisplayReports(reports interface{}) *MockUI_DisplayReports_Call {
	return &MockUI_DisplayReports_Call{Call: _e.mock.On("DisplayReports", reports)}
}

// Return sets the return value.
func (_c *MockUI_DisplayReports_Call) Return(_a0 error) *MockUI_DisplayReports_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockUI creates a new instance of MockUI. It also registers a cleanup
// function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mk := &MockUI{}
	mk.Mock.Test(t)

	t.Cleanup(func() { mk.AssertExpectations(t) })

	return mk
}
