package core

import "testing"

// TestIdentityRegistry_AnonymousIndices verifies anonymous indices count up
// per interface name, starting at 0.
func TestIdentityRegistry_AnonymousIndices(t *testing.T) {
	t.Parallel()

	registry := newIdentityRegistry()

	first := registry.allocate("A")
	second := registry.allocate("A")
	other := registry.allocate("B")

	if got := first.String(); got != "A#0" {
		t.Errorf("expected A#0, got %s", got)
	}

	if got := second.String(); got != "A#1" {
		t.Errorf("expected A#1, got %s", got)
	}

	if got := other.String(); got != "B#0" {
		t.Errorf("expected B#0, got %s", got)
	}
}

// TestIdentityRegistry_NamedIdentity verifies custom names render verbatim
// and don't consume anonymous indices.
func TestIdentityRegistry_NamedIdentity(t *testing.T) {
	t.Parallel()

	registry := newIdentityRegistry()

	named := registry.allocateNamed("A", "amock")
	if got := named.String(); got != "amock" {
		t.Errorf("expected amock, got %s", got)
	}

	if got := named.Interface(); got != "A" {
		t.Errorf("expected interface A, got %s", got)
	}

	anon := registry.allocate("A")
	if got := anon.String(); got != "A#0" {
		t.Errorf("expected A#0, got %s", got)
	}
}

// TestMockID_Equality verifies identities compare by value, so two anonymous
// mocks of the same interface are distinct owners.
func TestMockID_Equality(t *testing.T) {
	t.Parallel()

	registry := newIdentityRegistry()

	first := registry.allocate("A")
	second := registry.allocate("A")

	if first == second {
		t.Error("expected distinct identities for separate allocations")
	}

	if first != (MockID{iface: "A"}) {
		t.Error("expected the first anonymous identity to be A#0")
	}
}
