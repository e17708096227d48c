package reactive

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrMutexPoisoned is returned once a safeMutex's critical section has
// panicked; Go's sync.Mutex has no native poisoning, so this flag
// simulates it: once poisoned, every future lock attempt fails rather
// than silently acquiring a mutex whose protected state may be corrupt.
var ErrMutexPoisoned = errors.New(`reactive: mutex poisoned by a prior panic`)

// safeMutex is a sync.Mutex that permanently refuses to lock again once a
// critical section running under it has panicked.
type safeMutex struct {
	mu        sync.Mutex
	poisoned  atomic.Bool
}

func (m *safeMutex) lock() error {
	if m.poisoned.Load() {
		return ErrMutexPoisoned
	}
	m.mu.Lock()
	if m.poisoned.Load() {
		m.mu.Unlock()
		return ErrMutexPoisoned
	}
	return nil
}

func (m *safeMutex) unlock() { m.mu.Unlock() }

func (m *safeMutex) poison() { m.poisoned.Store(true) }
