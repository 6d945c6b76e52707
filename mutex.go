package rcsync

import (
	_ "unsafe" // for linkname
)

// mutex is the capability set every lock backend implements.
//
// Failures come back as one of the package sentinel errors. The handle
// layer turns any of them into an escalation; nothing here aborts.
type mutex interface {
	lock() error
	unlock() error
	// assertOwner reports errNotOwned if the calling goroutine does not hold
	// the lock. Backends that cannot check it cheaply return nil.
	assertOwner() error
	// destroy releases the backend. It is called exactly once.
	destroy() error
	name() string
}

// Backend names, as reported by Backend and in escalation diagnostics.
const (
	backendUnfair     = "unfair"
	backendErrorCheck = "errorcheck"
	backendRecursive  = "recursive"
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func trySpin(spins *int) bool {
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
