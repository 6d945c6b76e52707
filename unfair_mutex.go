package rcsync

import (
	"sync/atomic"

	"github.com/petermattis/goid"

	"github.com/llxisdsh/rcsync/internal/opt"
)

// unfairMutex is the fast backend for plain locks.
//
// It is non-reentrant and unfair: Unlock releases the lock word before the
// woken waiter runs, so a goroutine arriving in between may take the lock
// ahead of every parked waiter. That barging is what makes it cheaper than
// sync.Mutex under contention, and why it has no starvation mode.
//
// Like a platform unfair lock it records the owner in the lock itself, so
// re-locking by the owner, unlocking by a non-owner and assertOwner are all
// checked for free.
//
// Size: 24 bytes (8 byte state + 8 byte owner + 4 byte sema, padded).
type unfairMutex struct {
	_ noCopy
	// state 64-bit:
	//   bit 0:     locked
	//   bits 1-63: parked waiter count
	state atomic.Uint64
	// owner is the goroutine id of the holder, 0 while free.
	// It is cleared before the lock word is released.
	owner atomic.Int64
	sema  opt.Sema
}

const (
	unfairLocked    = 1
	unfairOneWaiter = 2 // 1 << 1
)

func (m *unfairMutex) lock() error {
	me := goid.Get()
	if m.state.CompareAndSwap(0, unfairLocked) {
		m.owner.Store(me)
		return nil
	}
	if m.owner.Load() == me {
		return errDeadlock
	}
	m.lockSlow()
	m.owner.Store(me)
	return nil
}

func (m *unfairMutex) lockSlow() {
	var spins int
	for {
		s := m.state.Load()
		if s&unfairLocked == 0 {
			if m.state.CompareAndSwap(s, s|unfairLocked) {
				return
			}
			continue
		}
		if trySpin(&spins) {
			continue
		}
		// Only park while the lock is held: the holder is then guaranteed
		// to see us in the waiter count and release the sema.
		if m.state.CompareAndSwap(s, s+unfairOneWaiter) {
			m.sema.Acquire()
			spins = 0
		}
	}
}

func (m *unfairMutex) unlock() error {
	if m.owner.Load() != goid.Get() {
		return errNotOwner
	}
	m.owner.Store(0)
	for {
		s := m.state.Load()
		if s == unfairLocked {
			if m.state.CompareAndSwap(s, 0) {
				return nil
			}
			continue
		}
		// Drop the lock and take one waiter off the count in a single step.
		// The waiter competes for the lock again once woken.
		if m.state.CompareAndSwap(s, s-unfairLocked-unfairOneWaiter) {
			m.sema.Release()
			return nil
		}
	}
}

func (m *unfairMutex) assertOwner() error {
	if m.owner.Load() != goid.Get() {
		return errNotOwned
	}
	return nil
}

func (m *unfairMutex) destroy() error { return nil }

func (m *unfairMutex) name() string { return backendUnfair }
