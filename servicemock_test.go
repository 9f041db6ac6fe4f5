package mockdeck_test

import (
	"github.com/mockdeck/mockdeck"
)

// Service is the interface the example mock below stands in for. It covers
// the receiver shapes a mocked interface can have: no-arg methods, methods
// with arguments, methods with results, a mutating method, and a consuming
// method.
type Service interface {
	Foo()
	Bar(arg uint32)
	Baz() uint32
	Modify()
	Ask(arg uint32) uint32
	Consume()
}

// ServiceMock is a hand-written example of the per-interface layer an
// external generator produces: one forwarding method per interface method,
// one <Method>Call builder per interface method, all funneling through the
// engine's Mock handle.
type ServiceMock struct {
	handle *mockdeck.Mock
}

var _ Service = (*ServiceMock)(nil)

// NewServiceMock creates a Service mock with an anonymous identity.
func NewServiceMock(scenario *mockdeck.Scenario) *ServiceMock {
	return &ServiceMock{handle: scenario.CreateMock("Service")}
}

// NewNamedServiceMock creates a Service mock whose identity renders as name.
func NewNamedServiceMock(scenario *mockdeck.Scenario, name string) *ServiceMock {
	return &ServiceMock{handle: scenario.CreateNamedMock("Service", name)}
}

func (m *ServiceMock) Foo() {
	m.handle.Call("Foo")
}

func (m *ServiceMock) Bar(arg uint32) {
	m.handle.Call("Bar", arg)
}

func (m *ServiceMock) Baz() uint32 {
	return m.handle.Call("Baz")[0].(uint32)
}

func (m *ServiceMock) Modify() {
	m.handle.Call("Modify")
}

func (m *ServiceMock) Ask(arg uint32) uint32 {
	return m.handle.Call("Ask", arg)[0].(uint32)
}

func (m *ServiceMock) Consume() {
	m.handle.Call("Consume")
}

// FooCall starts an expectation for Foo.
func (m *ServiceMock) FooCall() *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Foo")
}

// BarCall starts an expectation for Bar. arg is a literal or a Matcher.
func (m *ServiceMock) BarCall(arg any) *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Bar", arg)
}

// BazCall starts an expectation for Baz.
func (m *ServiceMock) BazCall() *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Baz")
}

// ModifyCall starts an expectation for Modify.
func (m *ServiceMock) ModifyCall() *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Modify")
}

// AskCall starts an expectation for Ask. arg is a literal or a Matcher.
func (m *ServiceMock) AskCall(arg any) *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Ask", arg)
}

// ConsumeCall starts an expectation for Consume.
func (m *ServiceMock) ConsumeCall() *mockdeck.CallBuilder {
	return m.handle.ExpectCall("Consume")
}
