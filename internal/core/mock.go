package core

// Mock is the handle the generated per-interface layer forwards into. It is
// bound to one identity and holds a non-owning reference back to the owning
// scenario; it must not be used after the scenario's teardown.
type Mock struct {
	scenario *Scenario
	id       MockID
}

// ID returns this handle's identity.
func (m *Mock) ID() MockID {
	return m.id
}

// Call dispatches a method call against the scenario's expectation queue and
// returns the matched expectation's action result. The generated layer calls
// this from each interface method, then converts the result slice back to
// the method's concrete return types.
func (m *Mock) Call(method string, args ...any) []any {
	return m.scenario.dispatch(m.id, method, args)
}

// ExpectCall starts an expectation for a future call of method on this mock.
// Each argument is either a Matcher or a bare literal, which is matched
// exactly. The returned builder is finalized with AndReturn, AndPanic, or
// AndCall and the result registered via Scenario.Expect. ExpectCall never
// dispatches anything itself.
func (m *Mock) ExpectCall(method string, args ...any) *CallBuilder {
	return &CallBuilder{owner: m.id, method: method, args: args}
}
