package rcsync

import (
	"sync/atomic"

	"github.com/llxisdsh/pb"
)

// lockBox owns one backend for the lifetime of the handles that refer to it.
type lockBox struct {
	m     mutex
	freed atomic.Bool
}

// live holds every box between alloc and Dealloc.
var live pb.MapOf[*lockBox, struct{}]

func register(m mutex) *lockBox {
	b := &lockBox{m: m}
	live.Store(b, struct{}{})
	return b
}

// backend returns the box's backend, escalating if the handle is not live.
func (b *lockBox) backend(op string) mutex {
	if b == nil || b.freed.Load() {
		fail(op, "", errNotLive)
		return nil
	}
	return b.m
}

func (b *lockBox) lock() {
	m := b.backend("lock")
	if err := m.lock(); err != nil {
		fail("lock", m.name(), err)
	}
}

func (b *lockBox) unlock() {
	m := b.backend("unlock")
	if err := m.unlock(); err != nil {
		fail("unlock", m.name(), err)
	}
}

func (b *lockBox) assertOwner() {
	m := b.backend("assert_owner")
	if err := m.assertOwner(); err != nil {
		fail("assert_owner", m.name(), err)
	}
}

func (b *lockBox) dealloc() {
	if b == nil || !b.freed.CompareAndSwap(false, true) {
		fail("dealloc", "", errNotLive)
		return
	}
	live.Delete(b)
	if err := b.m.destroy(); err != nil {
		fail("dealloc", b.m.name(), err)
	}
}

// LiveLocks returns the number of locks allocated and not yet deallocated.
func LiveLocks() int {
	return live.Size()
}

// PlainLock is a handle to a non-reentrant lock.
//
// A handle is a single pointer and is meant to be copied; copies are aliases
// of one lock. Exactly one of them must be passed to Dealloc, after which
// every alias is dead. The zero PlainLock is not live.
//
// Misuse (re-locking while held, unlocking without holding, using a dead
// handle) is not reported as an error: it aborts the process with a
// diagnostic, see SetLogger.
type PlainLock struct {
	opaque *lockBox
}

// AllocPlainLock allocates a plain lock backed by the fastest backend the
// platform offers, see Backend.
func AllocPlainLock() PlainLock {
	return PlainLock{register(newMutex(plainFlavor, hostPlatform()))}
}

// Lock blocks until the calling goroutine holds the lock.
// No fairness is promised between waiters.
func (l PlainLock) Lock() { l.opaque.lock() }

// Unlock releases the lock held by the calling goroutine.
func (l PlainLock) Unlock() { l.opaque.unlock() }

// AssertOwner aborts unless the calling goroutine holds the lock.
// Only the unfair backend enforces it; elsewhere it is a no-op.
func (l PlainLock) AssertOwner() { l.opaque.assertOwner() }

// Dealloc releases the lock. The handle and all its copies become dead.
func (l PlainLock) Dealloc() { l.opaque.dealloc() }

// RecursiveLock is a handle to a reentrant lock. The goroutine holding it
// may lock it again, and must unlock it once per Lock before any other
// goroutine can acquire it.
//
// Copying and Dealloc follow the same rules as PlainLock.
type RecursiveLock struct {
	opaque *lockBox
}

// AllocRecursiveLock allocates a recursive lock.
func AllocRecursiveLock() RecursiveLock {
	return RecursiveLock{register(newMutex(recursiveFlavor, hostPlatform()))}
}

// Lock acquires the lock, or deepens the nesting if the calling goroutine
// already holds it.
func (l RecursiveLock) Lock() { l.opaque.lock() }

// Unlock undoes one Lock. The lock is released when every Lock has been
// undone.
func (l RecursiveLock) Unlock() { l.opaque.unlock() }

// AssertOwner is a no-op: the recursive backend does not enforce ownership
// checks.
func (l RecursiveLock) AssertOwner() { l.opaque.assertOwner() }

// Dealloc releases the lock. The handle and all its copies become dead.
func (l RecursiveLock) Dealloc() { l.opaque.dealloc() }
