// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/glossa/internal/domain"
)

// MockWorkflow is a mock type for the Workflow type.
type MockWorkflow struct {
	mock.Mock
}

// MockWorkflow_Expecter wraps the mock for typed expectations.
type MockWorkflow_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expectation builder.
func (_m *MockWorkflow) EXPECT() *MockWorkflow_Expecter {
	return &MockWorkflow_Expecter{mock: &_m.Mock}
}

// Translate provides a mock function with given fields: args.
func (_m *MockWorkflow) Translate(args domain.TranslateArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Translate")
	}

	if rf, ok := ret.Get(0).(func(domain.TranslateArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_Translate_Call wraps mock.Call for Translate.
type MockWorkflow_Translate_Call struct {
	*mock.Call
}

// Translate is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Translate(args interface{}) *MockWorkflow_Translate_Call {
	return &MockWorkflow_Translate_Call{Call: _e.mock.On("Translate", args)}
}

// Run sets a callback invoked with the call arguments.
func (_c *MockWorkflow_Translate_Call) Run(run func(args domain.TranslateArgs)) *MockWorkflow_Translate_Call {
	_c.Call.Run(func(a mock.Arguments) {
		run(a[0].(domain.TranslateArgs))
	})

	return _c
}

// Return sets the return value.
func (_c *MockWorkflow_Translate_Call) Return(_a0 error) *MockWorkflow_Translate_Call {
	_c.Call.Return(_a0)
	return _c
}

// Scan provides a mock function with given fields: args.
func (_m *MockWorkflow) Scan(args domain.ScanArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for Scan")
	}

	if rf, ok := ret.Get(0).(func(domain.ScanArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_Scan_Call wraps mock.Call for Scan.
type MockWorkflow_Scan_Call struct {
	*mock.Call
}

// Scan is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Scan(args interface{}) *MockWorkflow_Scan_Call {
	return &MockWorkflow_Scan_Call{Call: _e.mock.On("Scan", args)}
}

// Return sets the return value.
func (_c *MockWorkflow_Scan_Call) Return(_a0 error) *MockWorkflow_Scan_Call {
	_c.Call.Return(_a0)
	return _c
}

// Languages provides a mock function with no fields.
func (_m *MockWorkflow) Languages() error {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Languages")
	}

	if rf, ok := ret.Get(0).(func() error); ok {
		return rf()
	}

	return ret.Error(0)
}

// MockWorkflow_Languages_Call wraps mock.Call for Languages.
type MockWorkflow_Languages_Call struct {
	*mock.Call
}

// Languages is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) Languages() *MockWorkflow_Languages_Call {
	return &MockWorkflow_Languages_Call{Call: _e.mock.On("Languages")}
}

// Return sets the return value.
func (_c *MockWorkflow_Languages_Call) Return(_a0 error) *MockWorkflow_Languages_Call {
	_c.Call.Return(_a0)
	return _c
}

// View provides a mock function with given fields: args.
func (_m *MockWorkflow) View(args domain.ViewArgs) error {
	ret := _m.Called(args)

	if len(ret) == 0 {
		panic("no return value specified for View")
	}

	if rf, ok := ret.Get(0).(func(domain.ViewArgs) error); ok {
		return rf(args)
	}

	return ret.Error(0)
}

// MockWorkflow_View_Call wraps mock.Call for View.
type MockWorkflow_View_Call struct {
	*mock.Call
}

// View is a helper method to define mock.On call.
func (_e *MockWorkflow_Expecter) View(args interface{}) *MockWorkflow_View_Call {
	return &MockWorkflow_View_Call{Call: _e.mock.On("View", args)}
}

// Return sets the return value.
func (_c *MockWorkflow_View_Call) Return(_a0 error) *MockWorkflow_View_Call {
	_c.Call.Return(_a0)
	return _c
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a
// cleanup function to assert the mocks expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	m := &MockWorkflow{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
