package mockdeck_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"github.com/stretchr/testify/require"

	"github.com/mockdeck/mockdeck"
)

// mockdeck is compatible with third-party matchers like gomega via duck
// typing: any value implementing Match(any) (bool, error) and
// FailureMessage(any) string works as an argument matcher.

func TestGomegaMatcherAccepts(t *testing.T) {
	t.Parallel()

	scenario := mockdeck.NewScenario()
	defer scenario.Verify()

	mock := NewServiceMock(scenario)

	scenario.Expect(mock.BarCall(BeNumerically("<", 3)).AndReturn())

	mock.Bar(2)
}

func TestGomegaMatcherRejects(t *testing.T) {
	t.Parallel()

	scenario := mockdeck.NewScenario()
	mock := NewServiceMock(scenario)

	scenario.Expect(mock.BarCall(BeNumerically("<", 3)).AndReturn())

	// The failure message is gomega's own; only assert that the call fails.
	require.Panics(t, func() { mock.Bar(4) })
}

func TestGomegaMatcherCombinators(t *testing.T) {
	t.Parallel()

	scenario := mockdeck.NewScenario()
	defer scenario.Verify()

	mock := NewServiceMock(scenario)

	scenario.Expect(mock.AskCall(And(
		BeNumerically(">", 0),
		BeNumerically("<", 10),
	)).AndReturn(uint32(1)))

	require.Equal(t, uint32(1), mock.Ask(5))
}
