package core

import "fmt"

// MockID identifies a single mock instance within a Scenario.
// Anonymous mocks render as "<interface>#<n>" where n counts prior anonymous
// mocks of the same interface; named mocks render as the name verbatim.
// A MockID is assigned once at mock creation and never changes.
type MockID struct {
	iface string
	name  string
	index uint32
	named bool
}

// Interface returns the interface name this identity was allocated for.
func (id MockID) Interface() string {
	return id.iface
}

// String renders the identity the way it appears in diagnostics.
func (id MockID) String() string {
	if id.named {
		return id.name
	}

	return fmt.Sprintf("%s#%d", id.iface, id.index)
}

// identityRegistry hands out MockIDs. Anonymous indices are tracked per
// interface name, starting at 0 and strictly increasing.
type identityRegistry struct {
	nextIndex map[string]uint32
}

func newIdentityRegistry() *identityRegistry {
	return &identityRegistry{nextIndex: map[string]uint32{}}
}

// allocate returns the next anonymous identity for the given interface name.
func (r *identityRegistry) allocate(iface string) MockID {
	index := r.nextIndex[iface]
	r.nextIndex[iface] = index + 1

	return MockID{iface: iface, index: index}
}

// allocateNamed returns a custom-named identity. Name uniqueness is the
// caller's responsibility; the registry does not enforce it.
func (r *identityRegistry) allocateNamed(iface, name string) MockID {
	return MockID{iface: iface, name: name, named: true}
}
