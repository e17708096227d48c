package value

// Payload is the immutable, eagerly-constructed mapping from value name to
// Holder supplied per request. Construction is total: every referenced
// name must be present before evaluation begins.
type Payload struct {
	values map[string]Holder
}

// NewPayload builds a Payload from values. The map is copied defensively so
// later mutation of the caller's map cannot change an in-flight Payload.
func NewPayload(values map[string]Holder) Payload {
	cp := make(map[string]Holder, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return Payload{values: cp}
}

// Get returns the Holder for name, or false if the payload has no such key.
func (p Payload) Get(name string) (Holder, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Len reports the number of entries in the payload.
func (p Payload) Len() int { return len(p.values) }

// Entries returns a defensive copy of the payload's name->Holder mapping,
// for callers (e.g. serialization) that need to walk every entry.
func (p Payload) Entries() map[string]Holder {
	cp := make(map[string]Holder, len(p.values))
	for k, v := range p.values {
		cp[k] = v
	}
	return cp
}
