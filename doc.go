// Package rcsync provides the low-level primitives a reactive-stream runtime
// builds on: a process-wide identifier stream and lock handles whose backend
// is chosen for the running platform.
//
// Identifiers:
//
//	id := rcsync.NextIdentifier() // 0, 1, 2, ... across all goroutines
//
// Locks come in two flavors that must not be mixed: PlainLock, which is
// non-reentrant, and RecursiveLock. Both are small copyable handles with an
// explicit lifetime:
//
//	l := rcsync.AllocPlainLock()
//	defer l.Dealloc()
//	l.Lock()
//	// critical section
//	l.Unlock()
//
// Plain locks use an unfair, spin-then-park lock where the platform has a
// kernel wait primitive for it, and an error-checking sync.Mutex otherwise
// (see Backend). Build with -tags=rcsync_portable to always use the latter.
//
// Nothing here returns an error. A failed lock operation means the program
// is broken, so it is logged (see SetLogger) and the process is aborted.
package rcsync
