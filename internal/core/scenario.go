// Package core provides the internal implementation of the mock-object
// verification engine: identity registry, matcher and action abstractions,
// the ordered expectation queue, call dispatch, and teardown verification.
package core

import (
	"fmt"
	"strings"

	"github.com/eapache/queue"
)

// TestReporter is the minimal interface the engine needs from test
// frameworks. testing.T and testing.B both implement it.
type TestReporter interface {
	Helper()
	Fatalf(format string, args ...any)
}

// UnsatisfiedExpectationsError reports expectations still queued at teardown.
// Its Error string is the exact user-visible diagnostic.
type UnsatisfiedExpectationsError struct {
	Expectations []*Expectation
}

// Error renders one line per remaining expectation, in queue order, with a
// trailing newline after the last entry.
func (e *UnsatisfiedExpectationsError) Error() string {
	builder := strings.Builder{}
	builder.WriteString("Expected calls are not performed:\n")

	for _, exp := range e.Expectations {
		builder.WriteString("`")
		builder.WriteString(exp.describe())
		builder.WriteString("`\n")
	}

	return builder.String()
}

// Scenario owns the ordered expectation queue and every mock identity it has
// issued. One Scenario is created per test; at end of test scope its
// verification entry points check the remaining queue.
//
// All operations are single-threaded by contract: the engine is driven
// synchronously by the test goroutine and holds no locks.
type Scenario struct {
	registry *identityRegistry
	queue    *queue.Queue // of *Expectation
	failed   bool
}

// NewScenario creates an empty scenario with no mocks and no expectations.
func NewScenario() *Scenario {
	return &Scenario{
		registry: newIdentityRegistry(),
		queue:    queue.New(),
	}
}

// CreateMock issues a mock handle with an anonymous identity for the given
// interface name. Anonymous indices count up per interface name from 0.
func (s *Scenario) CreateMock(iface string) *Mock {
	return &Mock{scenario: s, id: s.registry.allocate(iface)}
}

// CreateNamedMock issues a mock handle whose identity renders as name
// verbatim. Name uniqueness is the caller's responsibility.
func (s *Scenario) CreateNamedMock(iface, name string) *Mock {
	return &Mock{scenario: s, id: s.registry.allocateNamed(iface, name)}
}

// Expect appends a finalized expectation to the queue. Expectations are
// matched strictly in registration order, globally across all mocks owned by
// this scenario.
func (s *Scenario) Expect(exp *Expectation) {
	s.queue.Add(exp)
}

// Check inspects the remaining queue without failing. It returns nil when
// every expectation has been consumed, or an *UnsatisfiedExpectationsError
// listing the remaining expectations in queue order.
func (s *Scenario) Check() error {
	if s.queue.Length() == 0 {
		return nil
	}

	remaining := make([]*Expectation, 0, s.queue.Length())
	for i := 0; i < s.queue.Length(); i++ {
		remaining = append(remaining, s.queue.Get(i).(*Expectation))
	}

	return &UnsatisfiedExpectationsError{Expectations: remaining}
}

// Verify performs teardown verification. Defer it right after creating the
// scenario:
//
//	scenario := core.NewScenario()
//	defer scenario.Verify()
//
// If a panic is already unwinding through the deferred call - the test is
// failing for an unrelated reason - Verify re-raises it untouched instead of
// masking it with a secondary unsatisfied-expectations diagnostic. The check
// is likewise suppressed after a failure this scenario itself raised.
func (s *Scenario) Verify() {
	if r := recover(); r != nil {
		s.failed = true

		panic(r)
	}

	if s.failed {
		return
	}

	if err := s.Check(); err != nil {
		panic(err.Error())
	}
}

// AssertSatisfied is the TestReporter-routed flavor of Verify, suitable for
// t.Cleanup. The unsatisfied-expectations check is suppressed when the test
// has already failed.
func (s *Scenario) AssertSatisfied(t TestReporter) {
	t.Helper()

	if s.failed {
		return
	}

	if ft, ok := t.(interface{ Failed() bool }); ok && ft.Failed() {
		return
	}

	if err := s.Check(); err != nil {
		t.Fatalf("%s", err.Error())
	}
}

// dispatch is the call-matching algorithm. Every mocked method call funnels
// here with its owner identity, method name, and actual arguments.
//
// Matching is strictly ordered against the queue head: a call that would
// match a later queue entry is still unexpected if it does not match the
// head. The wrong-call check runs strictly before argument matching, so a
// call to the wrong method never produces an argument-mismatch diagnostic.
func (s *Scenario) dispatch(id MockID, method string, args []any) []any {
	if s.queue.Length() == 0 {
		s.fail(fmt.Sprintf("Unexpected call of `%s`, no calls are expected",
			renderActualCall(id, method, args)))
	}

	head := s.queue.Peek().(*Expectation)

	if head.owner != id || head.method != method {
		s.fail(fmt.Sprintf("Unexpected call of `%s`, `%s` call is expected",
			renderActualCall(id, method, args), head.describe()))
	}

	// Only a broken dispatch layer can get the arity wrong for a matching
	// method, but fail with a clear diagnostic rather than indexing past the
	// matcher slice.
	if len(args) != len(head.args) {
		s.fail(fmt.Sprintf("%s: expected %d args, got %d",
			renderActualCall(id, method, args), len(head.args), len(args)))
	}

	for i, expected := range head.args {
		ok, failure := MatchValue(args[i], expected)
		if !ok {
			s.fail(failure)
		}
	}

	s.queue.Remove()
	head.consumed = true

	return head.action.perform(args)
}

// fail raises a test-terminating failure carrying msg verbatim and records
// that this scenario already failed, so teardown verification stays silent.
func (s *Scenario) fail(msg string) {
	s.failed = true

	panic(msg)
}
