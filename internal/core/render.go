package core

import (
	"fmt"
	"strconv"
	"strings"
)

// formatValue renders an argument value in its natural textual form.
// Strings are quoted so diagnostics stay unambiguous when a string argument
// contains separators.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// describeArg renders one declared argument matcher for diagnostics.
// Bare literals render as their value, matchers render via their Describe
// descriptor when they have one.
func describeArg(arg any) string {
	if d, ok := arg.(Describer); ok {
		return d.Describe()
	}

	if _, ok := arg.(Matcher); ok {
		// Foreign matcher (e.g. gomega) with no descriptor.
		return fmt.Sprintf("<%T>", arg)
	}

	return formatValue(arg)
}

// renderCall renders "<ID>::<method>(<args>)". Zero-argument calls render
// with no parentheses at all.
func renderCall(id MockID, method string, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf("%s::%s", id, method)
	}

	return fmt.Sprintf("%s::%s(%s)", id, method, strings.Join(args, ", "))
}

// renderActualCall renders a dispatched call with its actual argument values.
func renderActualCall(id MockID, method string, args []any) string {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = formatValue(arg)
	}

	return renderCall(id, method, rendered)
}
