package rcsync

import (
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// recursiveMutex is the backend for recursive locks.
//
// The holder may lock again; every lock must be paired with an unlock and
// the lock is released when the nesting depth returns to zero.
// assertOwner is not enforced.
type recursiveMutex struct {
	_     noCopy
	mu    sync.Mutex
	owner atomic.Int64
	// depth is only touched by the holder.
	depth int
}

func (m *recursiveMutex) lock() error {
	me := goid.Get()
	if m.owner.Load() == me {
		m.depth++
		return nil
	}
	m.mu.Lock()
	m.owner.Store(me)
	m.depth = 1
	return nil
}

func (m *recursiveMutex) unlock() error {
	if m.owner.Load() != goid.Get() {
		return errNotOwner
	}
	m.depth--
	if m.depth == 0 {
		m.owner.Store(0)
		m.mu.Unlock()
	}
	return nil
}

func (m *recursiveMutex) assertOwner() error { return nil }

func (m *recursiveMutex) destroy() error {
	if !m.mu.TryLock() {
		return errBusy
	}
	m.mu.Unlock()
	return nil
}

func (m *recursiveMutex) name() string { return backendRecursive }
