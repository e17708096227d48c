// Package reactive implements the registry of cancellation handles for
// in-flight asynchronous behavior-tree node executions. The registry is
// safe for concurrent mutation from many ticking threads; each node's
// handle list is guarded by its own lock, rather than a single global
// one, so unrelated tick threads never serialize on each other.
package reactive

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// AbortHandle is a token that, when Abort is called, signals an
// asynchronous task to terminate cooperatively.
type AbortHandle interface {
	Abort()
}

// Handle is the default AbortHandle: it carries a correlation id (purely
// for log correlation, never for equality or business logic) and forwards
// Abort to an arbitrary cancel function, e.g. a context.CancelFunc.
type Handle struct {
	ID     uuid.UUID
	Cancel func()
}

// NewHandle wraps cancel in a Handle with a fresh correlation id.
func NewHandle(cancel func()) Handle {
	return Handle{ID: uuid.New(), Cancel: cancel}
}

// Abort signals the wrapped cancel function, if any.
func (h Handle) Abort() {
	if h.Cancel != nil {
		h.Cancel()
	}
}

// AbortOrder controls the order handles are signalled in by Abort.
type AbortOrder int

const (
	Fifo AbortOrder = iota
	Lifo
)

// AbortEntryNotFoundError reports that a node id has no AbortEntry -
// either it was never initialized, or CleanupNodes already removed it.
type AbortEntryNotFoundError struct{ NodeID int32 }

func (e AbortEntryNotFoundError) Error() string {
	return fmt.Sprintf(`reactive: abort entry not found for node %d`, e.NodeID)
}

// AbortEntryLockError reports that a node's handle list lock could not be
// acquired because a prior critical section panicked, poisoning the lock.
type AbortEntryLockError struct {
	NodeID int32
	Cause  error
}

func (e AbortEntryLockError) Error() string {
	return fmt.Sprintf(`reactive: abort entry lock error for node %d: %v`, e.NodeID, e.Cause)
}
func (e AbortEntryLockError) Unwrap() error { return e.Cause }

// Option configures a Service at construction using the functional-option
// pattern.
type Option func(*Service) error

// WithAbortOrder overrides the default Fifo abort order.
func WithAbortOrder(order AbortOrder) Option {
	return func(s *Service) error {
		s.order = order
		return nil
	}
}

// Service is the registry of AbortEntry values, one per known BT node id.
type Service struct {
	order   AbortOrder
	mu      sync.RWMutex
	entries map[int32]*entry
}

// NewService constructs an empty Service.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{order: Fifo, entries: make(map[int32]*entry)}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// InitializeNodes creates an empty AbortEntry for each id. Re-initializing
// an id that already has an entry overwrites it (idempotent
// initialization).
func (s *Service) InitializeNodes(ids []int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.entries[id] = &entry{nodeID: id}
	}
}

// CleanupNodes removes the AbortEntry for each id. Subsequent Register or
// Abort calls for those ids fail with AbortEntryNotFoundError.
func (s *Service) CleanupNodes(ids []int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		delete(s.entries, id)
	}
}

func (s *Service) lookup(nodeID int32) (*entry, error) {
	s.mu.RLock()
	e, ok := s.entries[nodeID]
	s.mu.RUnlock()
	if !ok {
		return nil, AbortEntryNotFoundError{NodeID: nodeID}
	}
	return e, nil
}

// Register appends handle under node's entry.
func (s *Service) Register(nodeID int32, handle AbortHandle) error {
	e, err := s.lookup(nodeID)
	if err != nil {
		return err
	}
	return e.push(handle)
}

// Abort signals every handle currently registered for nodeID, in the
// Service's configured AbortOrder. Aborted handles remain registered;
// calling Abort again simply re-signals them (idempotent abort is benign).
func (s *Service) Abort(nodeID int32) error {
	e, err := s.lookup(nodeID)
	if err != nil {
		return err
	}
	return e.abort(s.order)
}

// entry is one AbortEntry: a node id plus its mutex-guarded handle list.
type entry struct {
	nodeID int32
	lock   safeMutex
	handles []AbortHandle
}

func (e *entry) push(h AbortHandle) error {
	return e.withLock(func() error {
		e.handles = append(e.handles, h)
		return nil
	})
}

func (e *entry) abort(order AbortOrder) error {
	return e.withLock(func() error {
		if order == Lifo {
			for i := len(e.handles) - 1; i >= 0; i-- {
				e.handles[i].Abort()
			}
			return nil
		}
		for _, h := range e.handles {
			h.Abort()
		}
		return nil
	})
}

func (e *entry) withLock(fn func() error) (err error) {
	if lockErr := e.lock.lock(); lockErr != nil {
		return AbortEntryLockError{NodeID: e.nodeID, Cause: lockErr}
	}
	defer func() {
		if r := recover(); r != nil {
			e.lock.poison()
			e.lock.unlock()
			err = AbortEntryLockError{NodeID: e.nodeID, Cause: fmt.Errorf(`panic: %v`, r)}
		}
	}()
	err = fn()
	e.lock.unlock()
	return
}
