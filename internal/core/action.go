package core

// actionKind tags the variant an Action carries.
type actionKind int

const (
	actionReturn actionKind = iota
	actionPanic
	actionCall
)

// Action represents what happens when a matched call is dispatched: return
// values to the caller, panic with a message, or delegate to caller-supplied
// logic. Exactly one Action is attached per Expectation.
type Action struct {
	kind    actionKind
	values  []any
	message string
	call    func(args []any) []any
}

// ReturnValues builds an action that hands the given values back to the
// mocked method's caller.
func ReturnValues(values ...any) Action {
	return Action{kind: actionReturn, values: values}
}

// PanicWith builds an action that panics with exactly the given message.
// The owning expectation is consumed before the panic is raised.
func PanicWith(message string) Action {
	return Action{kind: actionPanic, message: message}
}

// CallFunc builds an action that delegates to fn, invoked synchronously with
// the actual arguments; its result becomes the call's result.
func CallFunc(fn func(args []any) []any) Action {
	return Action{kind: actionCall, call: fn}
}

// perform executes the action variant against the actual call arguments.
func (a Action) perform(args []any) []any {
	switch a.kind {
	case actionPanic:
		panic(a.message)
	case actionCall:
		return a.call(args)
	default:
		return a.values
	}
}
