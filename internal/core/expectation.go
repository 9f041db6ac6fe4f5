package core

// Expectation is a declared, one-shot rule pairing an owner identity and
// method name with one matcher per argument position and one Action.
// It is immutable once the builder finalizes it and is consumed at most
// once, synchronously with a successful match.
type Expectation struct {
	owner    MockID
	method   string
	args     []any // bare literals (implicit exact match) or Matchers
	action   Action
	consumed bool
}

// Owner returns the identity of the mock this expectation belongs to.
func (e *Expectation) Owner() MockID {
	return e.owner
}

// Method returns the expected method name.
func (e *Expectation) Method() string {
	return e.method
}

// Consumed reports whether this expectation already matched a call.
func (e *Expectation) Consumed() bool {
	return e.consumed
}

// describe renders the expectation for diagnostics, with each argument
// matcher rendered via its descriptor.
func (e *Expectation) describe() string {
	rendered := make([]string, len(e.args))
	for i, arg := range e.args {
		rendered[i] = describeArg(arg)
	}

	return renderCall(e.owner, e.method, rendered)
}

// CallBuilder holds a half-built expectation: owner, method, and argument
// matchers are fixed, the action is still missing. One of AndReturn,
// AndPanic, or AndCall finalizes it.
type CallBuilder struct {
	owner  MockID
	method string
	args   []any
}

// AndReturn finalizes the expectation with values to hand back to the
// mocked method's caller.
func (b *CallBuilder) AndReturn(values ...any) *Expectation {
	return b.finalize(ReturnValues(values...))
}

// AndPanic finalizes the expectation with a panic carrying exactly message.
func (b *CallBuilder) AndPanic(message string) *Expectation {
	return b.finalize(PanicWith(message))
}

// AndCall finalizes the expectation with a delegate invoked with the actual
// arguments; its result becomes the call's result.
func (b *CallBuilder) AndCall(fn func(args []any) []any) *Expectation {
	return b.finalize(CallFunc(fn))
}

// And finalizes the expectation with a pre-built action. Useful when the
// same action is shared across several expectations.
func (b *CallBuilder) And(action Action) *Expectation {
	return b.finalize(action)
}

func (b *CallBuilder) finalize(action Action) *Expectation {
	return &Expectation{
		owner:  b.owner,
		method: b.method,
		args:   b.args,
		action: action,
	}
}
