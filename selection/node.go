package selection

import (
	"fmt"

	"github.com/joeycumines/content-bt/address"
	"github.com/joeycumines/content-bt/value"
)

// NodesContext is the opaque capability set supplied by the caller to
// Node.SelectCommand. The core requires no methods of it, so the interface
// is empty; it exists purely so external collaborators can pass richer
// lookup capabilities through without the core needing to know their shape.
type NodesContext interface{}

// Node is the tagged union over selection-tree node variants. The variant
// set is closed: Simple and Dictionary.
type Node interface {
	AddressID() int32
	// OutgoingEdges returns this node's outgoing edges in declaration
	// order; that order is authoritative for tie-breaking during a walk.
	OutgoingEdges() []address.Address
	// SelectCommand resolves the CommandAddress this node emits for payload.
	SelectCommand(payload value.Payload, ctx NodesContext) (CommandAddress, error)
}

// Simple is a Node variant that always emits a single fixed command.
type Simple struct {
	ID      int32
	Edges   []address.Address
	Command CommandAddress
}

func (n Simple) AddressID() int32                 { return n.ID }
func (n Simple) OutgoingEdges() []address.Address { return n.Edges }
func (n Simple) SelectCommand(value.Payload, NodesContext) (CommandAddress, error) {
	return n.Command, nil
}

// DictionaryEntry maps one key Holder to the command emitted for it. A
// slice (rather than a Go map) is used deliberately: Holder variants
// Integer/Decimal wrap *big.Int/*big.Rat, which are not comparable as map
// keys, and lookup is defined by value equality (value.Compare), not by
// Go's map key identity.
type DictionaryEntry struct {
	Key     value.Holder
	Command CommandAddress
}

// Dictionary is a Node variant that looks up payload[KeyName] among
// Entries and emits the matching command, or Default if the key's value
// isn't present in Entries.
type Dictionary struct {
	ID      int32
	Edges   []address.Address
	KeyName string
	Default CommandAddress
	Entries []DictionaryEntry
}

func (n Dictionary) AddressID() int32                 { return n.ID }
func (n Dictionary) OutgoingEdges() []address.Address { return n.Edges }

// MissingDictionaryKeyError reports that the payload lacked the entry for
// a Dictionary node's KeyName (distinct from the key's value being absent
// from Entries, which falls back to Default).
type MissingDictionaryKeyError struct{ Name string }

func (e MissingDictionaryKeyError) Error() string {
	return fmt.Sprintf(`selection: missing dictionary key %q`, e.Name)
}

func (n Dictionary) SelectCommand(payload value.Payload, _ NodesContext) (CommandAddress, error) {
	v, ok := payload.Get(n.KeyName)
	if !ok {
		return CommandAddress{}, MissingDictionaryKeyError{Name: n.KeyName}
	}
	for _, entry := range n.Entries {
		if entry.Key.Kind() != v.Kind() {
			continue
		}
		eq, err := value.Compare(entry.Key, v, value.Eq)
		if err == nil && eq {
			return entry.Command, nil
		}
	}
	return n.Default, nil
}
