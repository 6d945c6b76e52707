package rcsync

import (
	"errors"
)

// Failures never reach callers as values: they only appear as the "error"
// field of the diagnostic written before the process aborts.
var (
	// errDeadlock is reported when the holder of a non-reentrant lock tries to
	// acquire it again.
	errDeadlock = errors.New("rcsync: lock already held by the calling goroutine")

	// errNotOwner is reported when a lock is released by a goroutine that does
	// not hold it, including releasing a lock nobody holds.
	errNotOwner = errors.New("rcsync: unlock by a goroutine that does not hold the lock")

	// errNotOwned is reported by AssertOwner on backends that enforce it.
	errNotOwned = errors.New("rcsync: lock not held by the calling goroutine")

	// errBusy is reported when a lock is deallocated while still held.
	errBusy = errors.New("rcsync: lock deallocated while held")

	// errNotLive is reported for zero handles, handles used after Dealloc
	// and handles deallocated twice.
	errNotLive = errors.New("rcsync: handle is not live")
)

// lockError records a failed lock primitive operation for the diagnostic.
type lockError struct {
	Op      string
	Backend string
	Err     error
}

func (e *lockError) Error() string {
	if e.Backend == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Backend + ": " + e.Err.Error()
}

func (e *lockError) Unwrap() error { return e.Err }
