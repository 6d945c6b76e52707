package rcsync

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// checkedMutex is the portable backend for plain locks: a sync.Mutex with
// error-checking semantics layered on top.
//
// Properties:
//   - Re-locking by the holder reports errDeadlock instead of hanging.
//   - Unlocking by a non-holder reports errNotOwner instead of releasing
//     someone else's critical section.
//   - destroy reports errBusy while the lock is held.
//
// assertOwner is not enforced.
type checkedMutex struct {
	_     noCopy
	mu    sync.Mutex
	owner atomic.Int64
}

func (m *checkedMutex) lock() error {
	me := goid.Get()
	if m.owner.Load() == me {
		return errDeadlock
	}
	m.mu.Lock()
	m.owner.Store(me)
	return nil
}

func (m *checkedMutex) unlock() error {
	if m.owner.Load() != goid.Get() {
		return errNotOwner
	}
	m.owner.Store(0)
	m.mu.Unlock()
	return nil
}

func (m *checkedMutex) assertOwner() error { return nil }

func (m *checkedMutex) destroy() error {
	if !m.mu.TryLock() {
		return errBusy
	}
	m.mu.Unlock()
	return nil
}

func (m *checkedMutex) name() string { return backendErrorCheck }
