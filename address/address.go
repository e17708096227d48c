// Package address implements the stable (id, index) addressing scheme
// shared by the selection tree and the behavior tree: id is the stable
// logical identifier, index is a slot into the owning vector. Lookups
// verify id matches after indexing; a mismatch is a hard error, which lets
// definitions live in dense slices while still catching stale references.
package address

// Address is a copyable value pointing at a slot in an owning slice.
type Address struct {
	ID    int32
	Index int
}

// New constructs an Address.
func New(id int32, index int) Address { return Address{ID: id, Index: index} }

// Matches reports whether id equals the address's stable identifier.
func (a Address) Matches(id int32) bool { return a.ID == id }

// Addressable is implemented by anything stored at an Address-indexed
// slot, so generic lookup helpers can verify id coherence.
type Addressable interface {
	AddressID() int32
}

// Lookup indexes items at addr.Index, returning onMissing() when the index
// is out of range, and verifies addr.ID matches the item's own id,
// returning onMismatch() when it doesn't (callers pass constructors for
// their specific error kinds so the message/type matches their
// component's error taxonomy).
func Lookup[T Addressable](items []T, addr Address, onMissing func() error, onMismatch func() error) (T, error) {
	var zero T
	if addr.Index < 0 || addr.Index >= len(items) {
		return zero, onMissing()
	}
	item := items[addr.Index]
	if !addr.Matches(item.AddressID()) {
		return zero, onMismatch()
	}
	return item, nil
}
