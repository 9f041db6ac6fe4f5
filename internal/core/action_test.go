package core

import "testing"

func TestReturnValuesAction(t *testing.T) {
	t.Parallel()

	action := ReturnValues(2, nil)

	result := action.perform(nil)

	if len(result) != 2 {
		t.Fatalf("expected 2 result values, got %d", len(result))
	}

	if result[0] != 2 {
		t.Errorf("expected first result 2, got %v", result[0])
	}

	if result[1] != nil {
		t.Errorf("expected second result nil, got %v", result[1])
	}
}

func TestReturnValuesAction_Empty(t *testing.T) {
	t.Parallel()

	action := ReturnValues()

	if result := action.perform(nil); len(result) != 0 {
		t.Errorf("expected no result values, got %v", result)
	}
}

// TestPanicWithAction verifies the panic action raises exactly the
// configured message.
func TestPanicWithAction(t *testing.T) {
	t.Parallel()

	action := PanicWith("boom!")

	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected panic, got none")
		}

		if recovered != "boom!" {
			t.Errorf("expected panic boom!, got %v", recovered)
		}
	}()

	action.perform(nil)
}

// TestCallFuncAction verifies the delegate runs with the actual arguments
// and its result becomes the call's result.
func TestCallFuncAction(t *testing.T) {
	t.Parallel()

	action := CallFunc(func(args []any) []any {
		return []any{args[0].(int) + 1}
	})

	result := action.perform([]any{2})

	if len(result) != 1 || result[0] != 3 {
		t.Errorf("expected [3], got %v", result)
	}
}
