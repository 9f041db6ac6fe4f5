// Package mockdeck provides a runtime mock-object verification engine for
// test suites: a per-test Scenario owns an ordered queue of expectations,
// mock handles forward interface-method calls into the scenario's
// dispatcher, and teardown verification fails the test when registered
// expectations were never performed.
//
// The per-interface mock types (one forwarding method plus one builder
// method per interface method) are produced outside this module; they talk
// to the engine purely through Mock.Call and Mock.ExpectCall.
//
// This is the public API entry point. Implementation lives in internal/core.
package mockdeck

import (
	"github.com/mockdeck/mockdeck/internal/core"
)

// Action represents what a matched call does: return values, panic with a
// message, or delegate to caller-supplied logic.
type Action = core.Action

// CallBuilder is a half-built expectation, finalized by AndReturn, AndPanic,
// or AndCall.
type CallBuilder = core.CallBuilder

// Expectation is a declared, one-shot rule pairing argument matchers with an
// action, tied to one mock identity and method.
type Expectation = core.Expectation

// Matcher defines the interface for flexible argument matching.
// Compatible with gomega.GomegaMatcher via duck typing.
type Matcher = core.Matcher

// Mock is the caller-facing handle the generated layer forwards calls
// through.
type Mock = core.Mock

// MockID identifies a mock instance within a scenario.
type MockID = core.MockID

// Scenario is the per-test owner of the expectation queue and the
// verification authority at test-scope end.
type Scenario = core.Scenario

// TestReporter is the minimal interface mockdeck needs from test frameworks.
type TestReporter = core.TestReporter

// UnsatisfiedExpectationsError is the typed error Scenario.Check returns for
// expectations still queued at teardown.
type UnsatisfiedExpectationsError = core.UnsatisfiedExpectationsError

// NewScenario creates an empty scenario. Defer its Verify method to run
// teardown verification at end of test scope:
//
//	scenario := mockdeck.NewScenario()
//	defer scenario.Verify()
func NewScenario() *Scenario {
	return core.NewScenario()
}

// Any returns a matcher that matches any value.
func Any() Matcher {
	return core.Any()
}

// ReturnValues builds an action that hands the given values back to the
// mocked method's caller. The CallBuilder finalizers cover normal use; this
// is exposed for code that composes actions directly.
func ReturnValues(values ...any) Action {
	return core.ReturnValues(values...)
}

// PanicWith builds an action that panics with exactly the given message.
func PanicWith(message string) Action {
	return core.PanicWith(message)
}

// CallFunc builds an action that delegates to fn; its result becomes the
// call's result.
func CallFunc(fn func(args []any) []any) Action {
	return core.CallFunc(fn)
}

// MatchValue checks if actual matches expected, treating a non-Matcher
// expected value as an implicit exact matcher.
func MatchValue(actual, expected any) (bool, string) {
	return core.MatchValue(actual, expected)
}

// Satisfies returns a matcher that uses a predicate function to check for a
// match.
func Satisfies[T any](predicate func(T) error) Matcher {
	return core.Satisfies(predicate)
}
