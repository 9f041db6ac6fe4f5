// Package match provides argument matchers for mockdeck expectations.
// This package is designed to be dot-imported alongside gomega matchers:
//
//	import (
//	    . "github.com/mockdeck/mockdeck/match"
//	    . "github.com/onsi/gomega"
//	)
//
//	scenario.Expect(mock.BarCall(Lt(3)).AndReturn())
//
// Every matcher implements Match and FailureMessage (the gomega-compatible
// subset mockdeck matches with) plus Describe, the descriptor mockdeck
// renders in diagnostics such as the unsatisfied-expectations report.
package match

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// errTypeMismatch is a sentinel error for type assertion failures.
var errTypeMismatch = errors.New("type mismatch")

// Matcher defines the interface for flexible value matching.
// Compatible with gomega.GomegaMatcher via duck typing - any type
// implementing Match and FailureMessage will work.
type Matcher interface {
	Match(actual any) (success bool, err error)
	FailureMessage(actual any) string
}

// Any is a matcher that matches any value. Renders as "_" in diagnostics.
//
//nolint:gochecknoglobals // Intentional exported constant-like value
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Describe() string { return "_" }

func (anyMatcher) FailureMessage(any) string { return "" }

func (anyMatcher) Match(any) (bool, error) { return true, nil }

// Eq returns a matcher that checks for equality with the given value.
// It renders as the value's textual form, exactly like a bare literal.
func Eq[T comparable](expected T) Matcher {
	return &cmpMatcher[T]{
		expected: expected,
		op:       func(actual, bound T) bool { return actual == bound },
		verb:     "is not equal to",
		describe: formatValue(expected),
	}
}

// Ne returns a matcher that checks for inequality with the given value.
func Ne[T comparable](expected T) Matcher {
	return &cmpMatcher[T]{
		expected: expected,
		op:       func(actual, bound T) bool { return actual != bound },
		verb:     "is equal to",
		describe: fmt.Sprintf("ne(%s)", formatValue(expected)),
	}
}

// Lt returns a matcher that checks the value is strictly less than bound.
func Lt[T cmp.Ordered](bound T) Matcher {
	return &cmpMatcher[T]{
		expected: bound,
		op:       func(actual, bound T) bool { return actual < bound },
		verb:     "is not less than",
		describe: fmt.Sprintf("lt(%s)", formatValue(bound)),
	}
}

// Le returns a matcher that checks the value is less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher {
	return &cmpMatcher[T]{
		expected: bound,
		op:       func(actual, bound T) bool { return actual <= bound },
		verb:     "is not less than or equal to",
		describe: fmt.Sprintf("le(%s)", formatValue(bound)),
	}
}

// Gt returns a matcher that checks the value is strictly greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher {
	return &cmpMatcher[T]{
		expected: bound,
		op:       func(actual, bound T) bool { return actual > bound },
		verb:     "is not greater than",
		describe: fmt.Sprintf("gt(%s)", formatValue(bound)),
	}
}

// Ge returns a matcher that checks the value is greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher {
	return &cmpMatcher[T]{
		expected: bound,
		op:       func(actual, bound T) bool { return actual >= bound },
		verb:     "is not greater than or equal to",
		describe: fmt.Sprintf("ge(%s)", formatValue(bound)),
	}
}

// cmpMatcher implements the comparison matcher family. The failure message
// has the fixed format "<actual> <verb> <expected>", e.g.
// "4 is not less than 3".
type cmpMatcher[T comparable] struct {
	expected T
	op       func(actual, bound T) bool
	verb     string
	describe string
}

func (m *cmpMatcher[T]) Describe() string {
	return m.describe
}

func (m *cmpMatcher[T]) FailureMessage(actual any) string {
	return fmt.Sprintf("%s %s %s", formatValue(actual), m.verb, formatValue(m.expected))
}

func (m *cmpMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, m.expected, actual)
	}

	return m.op(val, m.expected), nil
}

// InRange returns a matcher that checks lo <= value < hi.
func InRange[T cmp.Ordered](lo, hi T) Matcher {
	return &rangeMatcher[T]{lo: lo, hi: hi}
}

type rangeMatcher[T cmp.Ordered] struct {
	lo, hi T
}

func (m *rangeMatcher[T]) Describe() string {
	return fmt.Sprintf("in_range(%s, %s)", formatValue(m.lo), formatValue(m.hi))
}

func (m *rangeMatcher[T]) FailureMessage(actual any) string {
	return fmt.Sprintf("%s is not in range [%s, %s)",
		formatValue(actual), formatValue(m.lo), formatValue(m.hi))
}

func (m *rangeMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, m.lo, actual)
	}

	return m.lo <= val && val < m.hi, nil
}

// Not returns a matcher that inverts the given matcher.
func Not(inner Matcher) Matcher {
	return &notMatcher{inner: inner}
}

type notMatcher struct {
	inner Matcher
}

func (m *notMatcher) Describe() string {
	return fmt.Sprintf("not(%s)", describe(m.inner))
}

func (m *notMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("%s matches %s", formatValue(actual), describe(m.inner))
}

func (m *notMatcher) Match(actual any) (bool, error) {
	ok, err := m.inner.Match(actual)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

// AllOf returns a matcher satisfied only when every given matcher matches.
func AllOf(matchers ...Matcher) Matcher {
	return &allOfMatcher{matchers: matchers}
}

type allOfMatcher struct {
	matchers []Matcher
	lastFail Matcher
}

func (m *allOfMatcher) Describe() string {
	return fmt.Sprintf("all_of(%s)", describeAll(m.matchers))
}

func (m *allOfMatcher) FailureMessage(actual any) string {
	if m.lastFail != nil {
		return m.lastFail.FailureMessage(actual)
	}

	return fmt.Sprintf("%s does not match %s", formatValue(actual), m.Describe())
}

func (m *allOfMatcher) Match(actual any) (bool, error) {
	for _, inner := range m.matchers {
		ok, err := inner.Match(actual)
		if err != nil {
			return false, err
		}

		if !ok {
			m.lastFail = inner

			return false, nil
		}
	}

	m.lastFail = nil

	return true, nil
}

// AnyOf returns a matcher satisfied when at least one given matcher matches.
func AnyOf(matchers ...Matcher) Matcher {
	return &anyOfMatcher{matchers: matchers}
}

type anyOfMatcher struct {
	matchers []Matcher
}

func (m *anyOfMatcher) Describe() string {
	return fmt.Sprintf("any_of(%s)", describeAll(m.matchers))
}

func (m *anyOfMatcher) FailureMessage(actual any) string {
	return fmt.Sprintf("%s does not match %s", formatValue(actual), m.Describe())
}

func (m *anyOfMatcher) Match(actual any) (bool, error) {
	for _, inner := range m.matchers {
		ok, err := inner.Match(actual)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// Satisfy returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not.
//
// Example:
//
//	mock.ProcessCall(Satisfy(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	}))
func Satisfy[T any](predicate func(T) error) Matcher {
	return &satisfyMatcher[T]{predicate: predicate}
}

type satisfyMatcher[T any] struct {
	predicate func(T) error
	lastErr   error
}

func (m *satisfyMatcher[T]) Describe() string {
	return fmt.Sprintf("satisfies(func(%T) error)", *new(T))
}

func (m *satisfyMatcher[T]) FailureMessage(actual any) string {
	if m.lastErr != nil {
		return fmt.Sprintf("value %v does not satisfy predicate: %v", actual, m.lastErr)
	}

	return fmt.Sprintf("value %v does not satisfy predicate", actual)
}

func (m *satisfyMatcher[T]) Match(actual any) (bool, error) {
	val, ok := actual.(T)

	if !ok {
		return false, fmt.Errorf("%w: expected %T, got %T", errTypeMismatch, *new(T), actual)
	}

	m.lastErr = m.predicate(val)

	return m.lastErr == nil, nil
}

// describe renders a matcher's descriptor when it has one.
func describe(m Matcher) string {
	if d, ok := m.(interface{ Describe() string }); ok {
		return d.Describe()
	}

	return fmt.Sprintf("<%T>", m)
}

func describeAll(matchers []Matcher) string {
	parts := make([]string, len(matchers))
	for i, m := range matchers {
		parts[i] = describe(m)
	}

	return strings.Join(parts, ", ")
}

// formatValue renders a value in its natural textual form, quoting strings.
func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}

	return fmt.Sprintf("%v", v)
}
